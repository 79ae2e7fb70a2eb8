package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type variant uint8

const (
	unset variant = iota
	success
	failure
)

// Result holds either a success value or an error, never both.
// The zero value holds neither and every accessor panics on it.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	variant   variant
}

// Step is a single pipeline stage. Its success type equals its input type so
// steps chain without conversion.
type Step[T any] func(T) Result[T]

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		variant:   success,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail panics on a nil error: a failure must always say why.
func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		panic("rop: Fail called with nil error")
	}
	return Result[T]{
		err:       err,
		variant:   failure,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom carries the error of a failed result over to another value type.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.Err(),
		variant:   failure,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Result returns the success value. Calling it on a failure is a defect.
func (r Result[T]) Result() T {
	if r.mustBeSet() != success {
		panic(fmt.Errorf("rop: Result() called on failure: %w", r.err))
	}
	return r.result
}

// Err returns the failure error. Calling it on a success is a defect.
func (r Result[T]) Err() error {
	if r.mustBeSet() != failure {
		panic("rop: Err() called on success")
	}
	return r.err
}

func (r Result[T]) Unwrap() (T, error) {
	if r.mustBeSet() == failure {
		var zero T
		return zero, r.err
	}
	return r.result, nil
}

func (r Result[T]) IsSuccess() bool {
	return r.mustBeSet() == success
}

func (r Result[T]) IsFailure() bool {
	return r.mustBeSet() == failure
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) String() string {
	if r.mustBeSet() == success {
		return fmt.Sprintf("Success(%v)", r.result)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}

func (r Result[T]) mustBeSet() variant {
	if r.variant == unset {
		panic("rop: uninitialized Result, use Success or Fail")
	}
	return r.variant
}
