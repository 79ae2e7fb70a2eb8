package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ib-77/railway/pkg/rop"
)

var ErrNotProcessed = errors.New("input not processed")

type indexed[T any] struct {
	i int
	v T
}

// Run applies step to every input using lines workers. Inputs left over when
// ctx is done fail with ErrNotProcessed joined with the context error.
func Run[T any](ctx context.Context, inputs []T, step rop.Step[T], lines int) []rop.Result[T] {
	if step == nil {
		panic("batch: Run called with nil step")
	}
	if lines < 1 {
		lines = 1
	}

	results := make([]rop.Result[T], len(inputs))
	processed := make([]bool, len(inputs))

	inputCh := toChan(ctx, inputs)
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go locomotive(ctx, inputCh, step, results, processed, wg)
	}
	wg.Wait()

	for i, done := range processed {
		if !done {
			results[i] = rop.Fail[T](notProcessed(ctx))
		}
	}
	return results
}

func locomotive[T any](ctx context.Context, inputCh <-chan indexed[T], step rop.Step[T],
	results []rop.Result[T], processed []bool, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok || ctx.Err() != nil {
				return
			}
			results[in.i] = step(in.v)
			processed[in.i] = true
		}
	}
}

func toChan[T any](ctx context.Context, values []T) <-chan indexed[T] {
	in := make(chan indexed[T])

	go func() {
		defer close(in)

		for i, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- indexed[T]{i: i, v: v}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func notProcessed(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrNotProcessed, err)
	}
	return ErrNotProcessed
}
