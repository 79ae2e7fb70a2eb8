package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		steps   []StepConfig
		wantErr string
	}{
		{
			name:  "valid",
			steps: Default(3).Steps,
		},
		{
			name:    "empty",
			wantErr: "pipeline has no steps",
		},
		{
			name:    "missing name",
			steps:   []StepConfig{{Type: StepTypeTrim}},
			wantErr: "step 0: name is required",
		},
		{
			name:    "duplicate name",
			steps:   []StepConfig{{Name: "a", Type: StepTypeTrim}, {Name: "a", Type: StepTypeLower}},
			wantErr: `step 1: duplicate step name "a" (first defined at step 0)`,
		},
		{
			name:    "unknown type",
			steps:   []StepConfig{{Name: "a", Type: "nope"}},
			wantErr: `step "a": unknown type "nope"`,
		},
		{
			name:    "min-length zero",
			steps:   []StepConfig{{Name: "len", Type: StepTypeMinLength}},
			wantErr: `step "len": minLength must be at least 1, got 0`,
		},
		{
			name:    "deny without patterns",
			steps:   []StepConfig{{Name: "deny", Type: StepTypeDeny}},
			wantErr: `step "deny": deny step requires at least one pattern`,
		},
		{
			name:    "template without text",
			steps:   []StepConfig{{Name: "tpl", Type: StepTypeTemplate}},
			wantErr: `step "tpl": template step requires a template`,
		},
		{
			name:    "two inserts",
			steps:   []StepConfig{{Name: "a", Type: StepTypeInsert}, {Name: "b", Type: StepTypeInsert}},
			wantErr: "pipeline has 2 insert steps, at most one is allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Pipeline{Steps: tt.steps}
			err := p.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
