package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/solo"
)

// Assemble returns a Step that runs steps in the given order. The slice is
// copied, so later changes to it do not affect the returned Step. With no
// steps the result is the identity pipeline.
func Assemble[T any](steps ...rop.Step[T]) rop.Step[T] {
	own := make([]rop.Step[T], len(steps))
	for i, step := range steps {
		if step == nil {
			panic(fmt.Sprintf("pipeline: step %d is nil", i))
		}
		own[i] = step
	}

	return func(in T) rop.Result[T] {
		res := rop.Success(in)
		for _, step := range own {
			if res = solo.Bind(res, step); res.IsFailure() {
				break
			}
		}
		return res
	}
}

type Stage[T any] struct {
	Name string
	Step rop.Step[T]
}

func Named[T any](name string, step rop.Step[T]) Stage[T] {
	return Stage[T]{Name: name, Step: step}
}

func Steps[T any](stages ...Stage[T]) []rop.Step[T] {
	steps := make([]rop.Step[T], 0, len(stages))
	for _, stage := range stages {
		steps = append(steps, stage.Step)
	}
	return steps
}

// Labeled wraps every stage so its failure carries the stage name as context.
func Labeled[T any](stages ...Stage[T]) []Stage[T] {
	labeled := make([]Stage[T], 0, len(stages))
	for _, stage := range stages {
		if stage.Step == nil {
			panic(fmt.Sprintf("pipeline: stage %q has no step", stage.Name))
		}
		labeled = append(labeled, Named(stage.Name, solo.WrapFailure(stage.Step, stage.Name)))
	}
	return labeled
}

// Traced behaves like Assemble over the stages' steps and logs the run. A nil
// logger means slog.Default().
func Traced[T any](logger *slog.Logger, stages ...Stage[T]) rop.Step[T] {
	own := make([]Stage[T], len(stages))
	for i, stage := range stages {
		if stage.Step == nil {
			panic(fmt.Sprintf("pipeline: stage %q has no step", stage.Name))
		}
		own[i] = stage
	}

	return func(in T) rop.Result[T] {
		log := logger
		if log == nil {
			log = slog.Default()
		}
		log = log.With("run", uuid.NewString())

		res := rop.Success(in)
		for i, stage := range own {
			log.Debug("running stage", "stage", stage.Name, "index", i)
			if res = solo.Bind(res, stage.Step); res.IsFailure() {
				log.Info("stage failed", "stage", stage.Name, "index", i, "error", res.Err())
				return res
			}
		}

		log.Debug("pipeline succeeded", "stages", len(own))
		return res
	}
}
