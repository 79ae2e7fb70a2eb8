package chain

import (
	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/solo"
)

// Chain wraps a rop.Result to enable fluent chaining
type Chain[T any] struct {
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](result rop.Result[T]) Chain[T] {
	return Chain[T]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) Chain[T] {
	return Start(rop.Success(value))
}

// Result returns the underlying rop.Result
func (c Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then binds a step that keeps the value type
func (c Chain[T]) Then(step rop.Step[T]) Chain[T] {
	return Chain[T]{result: solo.Bind(c.result, step)}
}

// ThenTry binds a function that returns (T, error)
func (c Chain[T]) ThenTry(try func(T) (T, error)) Chain[T] {
	return Chain[T]{result: solo.Try(c.result, try)}
}

// Ensure performs a side effect without changing the result
func (c Chain[T]) Ensure(onSuccess func(T)) Chain[T] {
	return Chain[T]{result: solo.Tee(c.result, onSuccess)}
}

// TurnTo binds a function that returns rop.Result[U]
func TurnTo[T, U any](c Chain[T], onSuccess func(T) rop.Result[U]) Chain[U] {
	return Chain[U]{result: solo.Bind(c.result, onSuccess)}
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onSuccess func(T) U) Chain[U] {
	return Chain[U]{result: solo.Map(c.result, onSuccess)}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c Chain[T], onSuccess func(T) U, onFailure func(error) U) U {
	return solo.Finally(c.result, onSuccess, onFailure)
}
