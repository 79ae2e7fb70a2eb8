package curry

import "github.com/ib-77/railway/pkg/rop"

func Curry2[A, T any](f func(a A, in T) rop.Result[T]) func(a A) rop.Step[T] {
	mustFunc(f)
	return func(a A) rop.Step[T] {
		return func(in T) rop.Result[T] {
			return f(a, in)
		}
	}
}

func Curry3[A, B, T any](f func(a A, b B, in T) rop.Result[T]) func(a A) func(b B) rop.Step[T] {
	mustFunc(f)
	return func(a A) func(b B) rop.Step[T] {
		return func(b B) rop.Step[T] {
			return func(in T) rop.Result[T] {
				return f(a, b, in)
			}
		}
	}
}

func Curry4[A, B, C, T any](f func(a A, b B, c C, in T) rop.Result[T]) func(a A) func(b B) func(c C) rop.Step[T] {
	mustFunc(f)
	return func(a A) func(b B) func(c C) rop.Step[T] {
		return func(b B) func(c C) rop.Step[T] {
			return func(c C) rop.Step[T] {
				return func(in T) rop.Result[T] {
					return f(a, b, c, in)
				}
			}
		}
	}
}

func Partial2[A, T any](f func(a A, in T) rop.Result[T], a A) rop.Step[T] {
	return Curry2(f)(a)
}

func Partial3[A, B, T any](f func(a A, b B, in T) rop.Result[T], a A, b B) rop.Step[T] {
	return Curry3(f)(a)(b)
}

func Partial4[A, B, C, T any](f func(a A, b B, c C, in T) rop.Result[T], a A, b B, c C) rop.Step[T] {
	return Curry4(f)(a)(b)(c)
}

// Lift adapts a total function into a step that always succeeds.
func Lift[T any](f func(in T) T) rop.Step[T] {
	mustFunc(f)
	return func(in T) rop.Result[T] {
		return rop.Success(f(in))
	}
}

// LiftErr adapts a fallible function; a non-nil error becomes a failure.
func LiftErr[T any](f func(in T) (T, error)) rop.Step[T] {
	mustFunc(f)
	return func(in T) rop.Result[T] {
		out, err := f(in)
		if err != nil {
			return rop.Fail[T](err)
		}
		return rop.Success(out)
	}
}

func mustFunc(f any) {
	if rop.IsNil(f) {
		panic("curry: nil function")
	}
}
