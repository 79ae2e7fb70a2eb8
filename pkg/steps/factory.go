package steps

import (
	"fmt"

	"github.com/ib-77/railway/pkg/api"
	"github.com/ib-77/railway/pkg/repository"
	"github.com/ib-77/railway/pkg/rop"
)

// NewStep builds the step described by cfg. Repository-backed steps bind repo
// by reference. An insert step against a repository with an atomic insert
// also refuses values that appeared after the availability check.
func NewStep(cfg api.StepConfig, repo repository.Repository) (rop.Step[string], error) {
	switch cfg.Type {
	case api.StepTypeTrim:
		return Trim, nil
	case api.StepTypeLower:
		return Lower, nil
	case api.StepTypeMinLength:
		return MinLength(cfg.MinLength), nil
	case api.StepTypeNotInRepository:
		if repo == nil {
			return nil, fmt.Errorf("step %q requires a repository", cfg.Name)
		}
		return NotIn(repo), nil
	case api.StepTypeInsert:
		if repo == nil {
			return nil, fmt.Errorf("step %q requires a repository", cfg.Name)
		}
		if _, ok := repo.(repository.AtomicInserter); ok {
			return InsertIfAbsent(repo), nil
		}
		return Insert(repo), nil
	case api.StepTypeDeny:
		return DenyPatterns(cfg.Patterns...)
	case api.StepTypeTemplate:
		return Template(cfg.Template)
	default:
		return nil, fmt.Errorf("unknown step type: %s", cfg.Type)
	}
}
