// Package report collects test outcomes. Reporting is injectable: suites
// talk to the Reporter interface, and the default is a no-op, so the
// framework runs identically with reporting disabled.
package report

import "time"

// Run identifies one invocation of the test binary.
type Run struct {
	ID        string
	Env       string
	Browser   string
	StartedAt time.Time
}

// Result is the outcome of one test, including the failure screenshot when
// one was captured.
type Result struct {
	Name       string
	Passed     bool
	Duration   time.Duration
	FinishedAt time.Time
	Error      string
	Screenshot []byte
}

type Reporter interface {
	StartRun(run Run)
	Record(result Result)
	Finish() error
}

// Noop is the default reporter.
type Noop struct{}

func (Noop) StartRun(Run)  {}
func (Noop) Record(Result) {}
func (Noop) Finish() error { return nil }

// Multi fans out to several reporters. Finish returns the first error but
// finishes every reporter.
type Multi []Reporter

func (m Multi) StartRun(run Run) {
	for _, r := range m {
		r.StartRun(run)
	}
}

func (m Multi) Record(result Result) {
	for _, r := range m {
		r.Record(result)
	}
}

func (m Multi) Finish() error {
	var first error
	for _, r := range m {
		if err := r.Finish(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
