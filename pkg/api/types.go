package api

const (
	StepTypeTrim            = "trim"
	StepTypeLower           = "lower"
	StepTypeMinLength       = "min-length"
	StepTypeNotInRepository = "not-in-repository"
	StepTypeInsert          = "insert"
	StepTypeDeny            = "deny"
	StepTypeTemplate        = "template"

	DefaultMinLength = 5
	DefaultExisting  = "test@example.com"
)

// Pipeline is the signup pipeline configuration file format.
type Pipeline struct {
	// Existing seeds the repository before any input is processed.
	Existing []string     `yaml:"existing"`
	Steps    []StepConfig `yaml:"steps"`

	// Set by the loader, not from YAML.
	FilePath string `yaml:"-"`
}

// StepConfig defines a single step within a pipeline.
type StepConfig struct {
	Name      string   `yaml:"name"`
	Type      string   `yaml:"type"`
	MinLength int      `yaml:"minLength,omitempty"`
	Patterns  []string `yaml:"patterns,omitempty"`
	Template  string   `yaml:"template,omitempty"`
}

// Default is the classic signup sequence: trim, lower, min-length,
// not-in-repository, insert.
func Default(minLength int) *Pipeline {
	return &Pipeline{
		Existing: []string{DefaultExisting},
		Steps: []StepConfig{
			{Name: "trim", Type: StepTypeTrim},
			{Name: "lower", Type: StepTypeLower},
			{Name: "min-length", Type: StepTypeMinLength, MinLength: minLength},
			{Name: "available", Type: StepTypeNotInRepository},
			{Name: "insert", Type: StepTypeInsert},
		},
	}
}
