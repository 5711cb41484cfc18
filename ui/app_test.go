package ui

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gomonte/app"
	"gomonte/domain/run"
	"gomonte/internal"
	"gomonte/internal/config"
	"gomonte/internal/testkit"
)

func newTestApp() *App {
	logger := internal.NewLogger(internal.LogLevelError)
	runs := app.NewRunService(testkit.NewInMemoryRunRepository(), logger)
	sim := config.SimulationConfig{
		DefaultSeed:    1000,
		DefaultSamples: 2000,
		MaxSamples:     100000,
		Workers:        2,
	}
	return NewApp(runs, sim, logger)
}

func doJSON(t *testing.T, a *App, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, req)

	out := map[string]interface{}{}
	if strings.HasPrefix(rec.Body.String(), "{") {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
	}
	return rec, out
}

func TestListScenarios(t *testing.T) {
	a := newTestApp()
	req := httptest.NewRequest(http.MethodGet, "/api/scenarios", nil)
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}

	var scenarios []scenarioResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &scenarios); err != nil {
		t.Fatal(err)
	}
	if len(scenarios) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(scenarios))
	}
}

func TestCreateRun(t *testing.T) {
	a := newTestApp()

	rec, body := doJSON(t, a, http.MethodPost, "/api/runs", `{"scenario": "coin", "seed": 1000, "samples": 2000}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if body["scenario"] != "coin" {
		t.Fatalf("scenario %v, want coin", body["scenario"])
	}
	if body["status"] != string(run.StatusComplete) {
		t.Fatalf("status %v, want complete", body["status"])
	}
	if _, ok := body["confidence_low"]; !ok {
		t.Fatal("completed run response missing confidence interval")
	}

	// Same seed and samples must reproduce the same estimate.
	_, body2 := doJSON(t, a, http.MethodPost, "/api/runs", `{"scenario": "coin", "seed": 1000, "samples": 2000}`)
	if body["estimate"] != body2["estimate"] {
		t.Fatalf("same seed gave different estimates: %v != %v", body["estimate"], body2["estimate"])
	}
}

func TestCreateRunValidation(t *testing.T) {
	a := newTestApp()

	t.Run("unknown scenario", func(t *testing.T) {
		rec, _ := doJSON(t, a, http.MethodPost, "/api/runs", `{"scenario": "roulette"}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status %d, want 404", rec.Code)
		}
	})

	t.Run("samples above limit", func(t *testing.T) {
		rec, _ := doJSON(t, a, http.MethodPost, "/api/runs", `{"scenario": "coin", "samples": 99999999}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status %d, want 400", rec.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		rec, _ := doJSON(t, a, http.MethodPost, "/api/runs", `{"scenario":`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status %d, want 400", rec.Code)
		}
	})
}

func TestGetRun(t *testing.T) {
	a := newTestApp()

	_, created := doJSON(t, a, http.MethodPost, "/api/runs", `{"scenario": "pi", "samples": 1000}`)
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatal("created run has no ID")
	}

	rec, fetched := doJSON(t, a, http.MethodGet, fmt.Sprintf("/api/runs/%s", id), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if fetched["id"] != id {
		t.Fatalf("fetched ID %v, want %v", fetched["id"], id)
	}

	rec, _ = doJSON(t, a, http.MethodGet, "/api/runs/00000000-0000-0000-0000-000000000000", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
}

func TestListRuns(t *testing.T) {
	a := newTestApp()

	doJSON(t, a, http.MethodPost, "/api/runs", `{"scenario": "coin", "samples": 500}`)
	doJSON(t, a, http.MethodPost, "/api/runs", `{"scenario": "montyhall", "samples": 500}`)

	req := httptest.NewRequest(http.MethodGet, "/api/runs", nil)
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var runs []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &runs); err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
}
