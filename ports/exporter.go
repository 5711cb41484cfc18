package ports

import "gomonte/domain/run"

// RunExporter writes a completed run and its convergence path to a file.
type RunExporter interface {
	Export(r *run.Run, samples []run.Sample, path string) error
}
