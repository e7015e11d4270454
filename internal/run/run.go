// Package run layers debug and dry-run behavior over the named steps the
// resolver and installer execute.
package run

import (
	"fmt"
	"io"

	"github.com/conn-castle/gover/internal/messages"
)

// Runner executes named steps. Debug echoes every step to the error stream
// before executing it. DryRun echoes mutating steps and skips them; queries
// still execute so version and availability information is still reported.
type Runner struct {
	Debug  bool
	DryRun bool
	Stderr io.Writer
}

// Step runs a mutating step. In dry-run mode it is echoed and skipped,
// reporting success.
func (r *Runner) Step(desc string, fn func() error) error {
	if r.DryRun {
		_, _ = fmt.Fprintf(r.stderr(), messages.StepSkippedFmt, desc)
		return nil
	}
	if r.Debug {
		_, _ = fmt.Fprintf(r.stderr(), messages.StepFmt, desc)
	}
	return fn()
}

// Query runs a read-only step. It executes in every mode, including dry-run.
func (r *Runner) Query(desc string, fn func() error) error {
	if r.Debug {
		_, _ = fmt.Fprintf(r.stderr(), messages.StepFmt, desc)
	}
	return fn()
}

// Tee duplicates rd to the error stream when debug mode is active, so
// intermediate query data can be inspected. Otherwise rd passes through
// unchanged.
func (r *Runner) Tee(rd io.Reader) io.Reader {
	if !r.Debug {
		return rd
	}
	return io.TeeReader(rd, r.stderr())
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr == nil {
		return io.Discard
	}
	return r.Stderr
}
