package scenario

import (
	"fmt"

	"gomonte/internal/errors"
	"gomonte/ports"
)

// All returns the built-in scenarios in stable order.
func All() []ports.Scenario {
	return []ports.Scenario{Coin{}, Pi{}, MontyHall{}}
}

// Lookup resolves a scenario by its registered name.
func Lookup(name string) (ports.Scenario, error) {
	for _, s := range All() {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, errors.NotFound(fmt.Sprintf("scenario %q", name))
}
