// Package signup assembles the signup pipeline: clean an email, validate it,
// check it is not taken, then store it.
package signup

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ib-77/railway/pkg/api"
	"github.com/ib-77/railway/pkg/repository"
	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/pipeline"
	"github.com/ib-77/railway/pkg/rop/solo"
	"github.com/ib-77/railway/pkg/steps"
)

// New returns the default signup pipeline over repo. The insert step runs
// last, after every check has passed.
func New(repo repository.Repository, minLength int) rop.Step[string] {
	return pipeline.Assemble(
		steps.Trim,
		steps.Lower,
		steps.MinLength(minLength),
		steps.NotIn(repo),
		steps.Insert(repo),
	)
}

// FromConfig builds the pipeline described by p. Every failure is prefixed
// with the name of the stage that produced it and each run is traced on
// logger.
func FromConfig(p *api.Pipeline, repo repository.Repository, logger *slog.Logger) (rop.Step[string], error) {
	stages := make([]pipeline.Stage[string], 0, len(p.Steps))
	for _, cfg := range p.Steps {
		step, err := steps.NewStep(cfg, repo)
		if err != nil {
			return nil, fmt.Errorf("creating step %q: %w", cfg.Name, err)
		}
		stages = append(stages, pipeline.Named(cfg.Name, step))
	}
	return pipeline.Traced(logger, pipeline.Labeled(stages...)...), nil
}

// Seed inserts the configured existing entries into repo.
func Seed(p *api.Pipeline, repo repository.Repository) {
	for _, existing := range p.Existing {
		repo.Insert(existing)
	}
}

// Message renders a one-line diagnostic for a pipeline result.
func Message(r rop.Result[string]) string {
	return solo.Finally(r,
		func(email string) string {
			return "Signup successful: " + email
		},
		func(err error) string {
			return "Error: " + strings.Join(rop.Causes(err), ": ")
		})
}
