package solo

import (
	"errors"

	"github.com/ib-77/railway/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

// Bind invokes onSuccess with the value of a successful input. A failed input
// is returned as is and onSuccess is never called.
func Bind[In, Out any](input rop.Result[In], onSuccess func(r In) rop.Result[Out]) rop.Result[Out] {
	if onSuccess == nil {
		panic("solo: Bind called with nil step")
	}

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}

	if same, ok := any(input).(rop.Result[Out]); ok {
		return same
	}
	return rop.FailFrom[In, Out](input)
}

func Validate[T any](input T, validate func(in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(Succeed(input), validate)
}

func AndValidate[T any](input rop.Result[T], validate func(in T) (valid bool, errMsg string)) rop.Result[T] {
	if input.IsSuccess() {
		if isValid, errMsg := validate(input.Result()); !isValid {
			return rop.Fail[T](rop.Validation(errMsg))
		}
	}
	return input
}

// ValidateAll runs every validator against the same value. With breakOnError
// the first failure is returned; otherwise all failures are joined. Success
// values produced by validators are discarded.
func ValidateAll[T any](breakOnError bool, validators ...rop.Step[T]) rop.Step[T] {
	return func(in T) rop.Result[T] {
		var errs []error
		for _, validate := range validators {
			res := validate(in)
			if res.IsSuccess() {
				continue
			}
			if breakOnError {
				return res
			}
			errs = append(errs, res.Err())
		}

		if len(errs) > 0 {
			return rop.Fail[T](errors.Join(errs...))
		}
		return rop.Success(in)
	}
}

func Map[In, Out any](input rop.Result[In], onSuccess func(r In) Out) rop.Result[Out] {
	return Bind(input, func(r In) rop.Result[Out] {
		return rop.Success(onSuccess(r))
	})
}

func Try[In, Out any](input rop.Result[In], onTryExecute func(r In) (Out, error)) rop.Result[Out] {
	return Bind(input, func(r In) rop.Result[Out] {
		out, err := onTryExecute(r)
		if err != nil {
			return rop.Fail[Out](err)
		}
		return rop.Success(out)
	})
}

func FailOnError[T any](input rop.Result[T], maybeErr func(in T) error) rop.Result[T] {
	if input.IsSuccess() {
		if err := maybeErr(input.Result()); err != nil {
			return rop.Fail[T](err)
		}
	}
	return input
}

func Tee[T any](input rop.Result[T], onSuccess func(r T)) rop.Result[T] {
	if input.IsSuccess() {
		onSuccess(input.Result())
	}
	return input
}

func DoubleTee[T any](input rop.Result[T], onSuccess func(r T), onFailure func(err error)) rop.Result[T] {
	if input.IsSuccess() {
		onSuccess(input.Result())
	} else {
		onFailure(input.Err())
	}
	return input
}

func Finally[In, Out any](input rop.Result[In], onSuccess func(r In) Out, onFailure func(err error) Out) Out {
	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onFailure(input.Err())
}

// WrapFailure re-signals any failure of step with context prepended.
func WrapFailure[T any](step rop.Step[T], context string) rop.Step[T] {
	return func(in T) rop.Result[T] {
		res := step(in)
		if res.IsFailure() {
			return rop.Fail[T](rop.Wrap(res.Err(), context))
		}
		return res
	}
}

// OrElse runs alternative on the original input when primary fails.
func OrElse[T any](primary, alternative rop.Step[T]) rop.Step[T] {
	return func(in T) rop.Result[T] {
		if res := primary(in); res.IsSuccess() {
			return res
		}
		return alternative(in)
	}
}

// Retry calls step up to attempts times and stops at the first success.
// The last failure is returned when every attempt fails.
func Retry[T any](step rop.Step[T], attempts int) rop.Step[T] {
	if attempts < 1 {
		attempts = 1
	}
	return func(in T) rop.Result[T] {
		res := step(in)
		for i := 1; i < attempts && res.IsFailure(); i++ {
			res = step(in)
		}
		return res
	}
}
