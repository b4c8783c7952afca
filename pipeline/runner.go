// Package pipeline composes the I/O steps into the example programs.
//
// A Runner executes named steps in order and stops at the first failure.
// Status validation always runs before any decode step.
package pipeline

import (
	"context"

	"github.com/jmgilman/iostep/errors"
	"github.com/jmgilman/iostep/logging"
)

// Step is one named unit of work.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Runner executes steps strictly in sequence.
type Runner struct {
	logger *logging.Logger
}

// NewRunner returns a Runner that logs through logger. A nil logger
// discards output.
func NewRunner(logger *logging.Logger) *Runner {
	return &Runner{logger: logging.OrNop(logger).WithComponent("pipeline")}
}

// Run executes steps in order. The first failing step aborts the run; its
// name is added to the error under the "step" context key. A cancelled
// context aborts before the next step starts.
func (r *Runner) Run(ctx context.Context, steps ...Step) error {
	for _, step := range steps {
		log := r.logger.WithStep(step.Name)

		if err := ctx.Err(); err != nil {
			wrapped := errors.WrapWithContext(err, errors.CodeInternal, "pipeline cancelled",
				map[string]any{"step": step.Name})
			log.Debug(ctx, "pipeline cancelled", "error", err)
			return wrapped
		}

		log.Debug(ctx, "step started")
		if err := step.Run(ctx); err != nil {
			log.Debug(ctx, "step failed", "code", errors.GetCode(err), "error", err)
			return errors.WithContext(err, "step", step.Name)
		}
		log.Debug(ctx, "step finished")
	}
	return nil
}

// FailedStep returns the name of the step that produced err.
func FailedStep(err error) (string, bool) {
	v, ok := errors.GetContext(err, "step")
	if !ok {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}
