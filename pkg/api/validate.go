package api

import "fmt"

var validStepTypes = map[string]bool{
	StepTypeTrim:            true,
	StepTypeLower:           true,
	StepTypeMinLength:       true,
	StepTypeNotInRepository: true,
	StepTypeInsert:          true,
	StepTypeDeny:            true,
	StepTypeTemplate:        true,
}

// Validate checks the pipeline configuration for errors.
func (p *Pipeline) Validate() error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("pipeline has no steps")
	}

	names := make(map[string]int)
	inserts := 0

	for i, step := range p.Steps {
		if step.Name == "" {
			return fmt.Errorf("step %d: name is required", i)
		}
		if prev, exists := names[step.Name]; exists {
			return fmt.Errorf("step %d: duplicate step name %q (first defined at step %d)", i, step.Name, prev)
		}
		names[step.Name] = i

		if !validStepTypes[step.Type] {
			return fmt.Errorf("step %q: unknown type %q", step.Name, step.Type)
		}

		if err := validateStepConfig(step); err != nil {
			return fmt.Errorf("step %q: %w", step.Name, err)
		}

		if step.Type == StepTypeInsert {
			inserts++
		}
	}

	// a run may insert at most once
	if inserts > 1 {
		return fmt.Errorf("pipeline has %d insert steps, at most one is allowed", inserts)
	}

	return nil
}

func validateStepConfig(step StepConfig) error {
	switch step.Type {
	case StepTypeMinLength:
		if step.MinLength < 1 {
			return fmt.Errorf("minLength must be at least 1, got %d", step.MinLength)
		}
	case StepTypeDeny:
		if len(step.Patterns) == 0 {
			return fmt.Errorf("deny step requires at least one pattern")
		}
	case StepTypeTemplate:
		if step.Template == "" {
			return fmt.Errorf("template step requires a template")
		}
	}
	return nil
}
