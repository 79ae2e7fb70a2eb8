// Package pipeline assembles ordered rop.Step values into a single Step.
//
// Assemble folds solo.Bind left to right over Success(input): the first
// failure ends the run and is returned as the pipeline's result. An assembled
// pipeline is itself a Step and can be nested inside another pipeline.
//
// Stages attach a name to a step. Labeled prefixes a stage's failure with its
// name and Traced logs each stage through log/slog under a per-run id.
package pipeline
