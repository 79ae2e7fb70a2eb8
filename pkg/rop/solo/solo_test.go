package solo

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// outcome reduces a result to comparable data, ignoring id and timestamp.
func outcome[T any](r rop.Result[T]) string {
	return Finally(r,
		func(v T) string { return fmt.Sprintf("success:%v", v) },
		func(err error) string { return "failure:" + err.Error() })
}

func counting[T any](calls *int, step rop.Step[T]) rop.Step[T] {
	return func(in T) rop.Result[T] {
		*calls++
		return step(in)
	}
}

func TestBind_ShortCircuit(t *testing.T) {
	t.Parallel()

	failed := rop.Fail[int](rop.Validation("Too short, must be ≥ 5"))
	calls := 0
	step := counting(&calls, func(v int) rop.Result[int] { return rop.Success(v + 1) })

	out := Bind(failed, step)

	require.True(t, out.IsFailure())
	assert.Equal(t, 0, calls)
	assert.Same(t, failed.Err(), out.Err())
	assert.Equal(t, failed.Id(), out.Id())
	assert.Equal(t, failed, out)
}

func TestBind_ShortCircuitChangesType(t *testing.T) {
	t.Parallel()

	called := false
	out := Bind(rop.Fail[int](errors.New("boom")), func(v int) rop.Result[string] {
		called = true
		return rop.Success("x")
	})

	require.True(t, out.IsFailure())
	assert.EqualError(t, out.Err(), "boom")
	assert.False(t, called)
}

func TestBind_SuccessInvokesStep(t *testing.T) {
	t.Parallel()

	out := Bind(rop.Success(21), func(v int) rop.Result[string] {
		return rop.Success(strconv.Itoa(v * 2))
	})

	require.True(t, out.IsSuccess())
	assert.Equal(t, "42", out.Result())
}

func TestBind_NilStepPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Bind[int, int](rop.Success(1), nil) })
}

func TestBind_Associativity(t *testing.T) {
	t.Parallel()

	double := func(v int) rop.Result[int] { return rop.Success(v * 2) }
	nonNegative := func(v int) rop.Result[int] {
		if v < 0 {
			return rop.Fail[int](rop.Validation("negative"))
		}
		return rop.Success(v)
	}
	belowHundred := func(v int) rop.Result[int] {
		if v >= 100 {
			return rop.Fail[int](rop.Validationf("%d is too large", v))
		}
		return rop.Success(v + 3)
	}
	steps := map[string]rop.Step[int]{"double": double, "nonNegative": nonNegative, "belowHundred": belowHundred}

	starts := []rop.Result[int]{rop.Fail[int](errors.New("initial"))}
	for _, v := range []int{-7, -1, 0, 1, 20, 49, 50, 99, 100, 1000} {
		starts = append(starts, rop.Success(v))
	}

	for fName, f := range steps {
		for gName, g := range steps {
			for _, r := range starts {
				left := Bind(Bind(r, f), g)
				right := Bind(r, func(x int) rop.Result[int] { return Bind(f(x), g) })
				assert.Equal(t, outcome(left), outcome(right), "f=%s g=%s r=%s", fName, gName, outcome(r))
			}
		}
	}

	// three-step grouping
	for _, r := range starts {
		left := Bind(Bind(Bind(r, double), nonNegative), belowHundred)
		right := Bind(r, func(x int) rop.Result[int] {
			return Bind(double(x), func(y int) rop.Result[int] { return Bind(nonNegative(y), belowHundred) })
		})
		assert.Equal(t, outcome(left), outcome(right))
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	minFive := func(in string) (bool, string) {
		return len(in) >= 5, "Too short, must be ≥ 5"
	}

	ok := Validate("hello", minFive)
	require.True(t, ok.IsSuccess())
	assert.Equal(t, "hello", ok.Result())

	bad := Validate("abc", minFive)
	require.True(t, bad.IsFailure())
	assert.EqualError(t, bad.Err(), "Too short, must be ≥ 5")
	assert.ErrorIs(t, bad.Err(), rop.ErrValidation)

	called := false
	skipped := AndValidate(rop.Fail[string](errors.New("earlier")), func(in string) (bool, string) {
		called = true
		return true, ""
	})
	assert.EqualError(t, skipped.Err(), "earlier")
	assert.False(t, called)
}

func validateNonNegative(v int) rop.Result[int] {
	if v < 0 {
		return rop.Fail[int](rop.Validation("negative"))
	}
	return rop.Success(v)
}

func validateEven(v int) rop.Result[int] {
	if v%2 != 0 {
		return rop.Fail[int](rop.Validation("odd"))
	}
	return rop.Success(v)
}

func TestValidateAll(t *testing.T) {
	t.Parallel()

	t.Run("all success", func(t *testing.T) {
		res := ValidateAll(true, validateNonNegative, validateEven)(10)
		require.True(t, res.IsSuccess())
		assert.Equal(t, 10, res.Result())
	})

	t.Run("break on first", func(t *testing.T) {
		executed := 0
		res := ValidateAll(true, counting(&executed, validateNonNegative), counting(&executed, validateEven))(-1)
		require.True(t, res.IsFailure())
		assert.Equal(t, 1, executed)
		assert.EqualError(t, res.Err(), "negative")
	})

	t.Run("accumulate", func(t *testing.T) {
		res := ValidateAll(false, validateNonNegative, validateNonNegative, validateEven)(-3)
		require.True(t, res.IsFailure())

		errs := rop.GetErrors(res.Err())
		require.Len(t, errs, 3)
		assert.Equal(t, []string{"negative", "negative", "odd"}, rop.Causes(res.Err()))
		assert.ErrorIs(t, res.Err(), rop.ErrValidation)
	})

	t.Run("no validators", func(t *testing.T) {
		res := ValidateAll[int](false)(7)
		require.True(t, res.IsSuccess())
		assert.Equal(t, 7, res.Result())
	})
}

func TestMapAndTry(t *testing.T) {
	t.Parallel()

	mapped := Map(rop.Success(5), func(v int) string { return "n:" + strconv.Itoa(v) })
	assert.Equal(t, "success:n:5", outcome(mapped))

	mappedFail := Map(rop.Fail[int](errors.New("oops")), func(v int) string { return "ignored" })
	assert.Equal(t, "failure:oops", outcome(mappedFail))

	parsed := Try(rop.Success("42"), strconv.Atoi)
	assert.Equal(t, "success:42", outcome(parsed))

	notParsed := Try(rop.Success("x"), strconv.Atoi)
	require.True(t, notParsed.IsFailure())
	var numErr *strconv.NumError
	assert.ErrorAs(t, notParsed.Err(), &numErr)
}

func TestFailOnError(t *testing.T) {
	t.Parallel()

	res := FailOnError(rop.Success(3), func(in int) error { return nil })
	assert.Equal(t, "success:3", outcome(res))

	res = FailOnError(rop.Success(3), func(in int) error { return errors.New("no") })
	assert.Equal(t, "failure:no", outcome(res))
}

func TestTeeAndDoubleTee(t *testing.T) {
	t.Parallel()

	seen := 0
	Tee(rop.Success(11), func(v int) { seen = v })
	assert.Equal(t, 11, seen)

	seen = 0
	Tee(rop.Fail[int](errors.New("x")), func(v int) { seen = v })
	assert.Equal(t, 0, seen)

	var gotErr error
	DoubleTee(rop.Fail[int](errors.New("bad")), func(v int) { seen = v }, func(err error) { gotErr = err })
	assert.EqualError(t, gotErr, "bad")
	assert.Equal(t, 0, seen)
}

func TestWrapFailure(t *testing.T) {
	t.Parallel()

	step := WrapFailure(validateEven, "parity check")

	assert.Equal(t, "success:4", outcome(step(4)))

	res := step(3)
	require.True(t, res.IsFailure())
	assert.EqualError(t, res.Err(), "parity check: odd")
	assert.Equal(t, []string{"parity check", "odd"}, rop.Causes(res.Err()))
	assert.ErrorIs(t, res.Err(), rop.ErrValidation)
	assert.ErrorIs(t, res.Err(), rop.ErrWrapped)
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	alternativeCalls := 0
	alternative := counting(&alternativeCalls, func(v int) rop.Result[int] { return rop.Success(v + 1) })
	step := OrElse(validateEven, alternative)

	assert.Equal(t, "success:2", outcome(step(2)))
	assert.Equal(t, 0, alternativeCalls)

	assert.Equal(t, "success:4", outcome(step(3)))
	assert.Equal(t, 1, alternativeCalls)
}

func TestRetry(t *testing.T) {
	t.Parallel()

	calls := 0
	flaky := func(v int) rop.Result[int] {
		calls++
		if calls < 3 {
			return rop.Fail[int](fmt.Errorf("attempt %d", calls))
		}
		return rop.Success(v)
	}

	res := Retry(flaky, 5)(9)
	assert.Equal(t, "success:9", outcome(res))
	assert.Equal(t, 3, calls)

	calls = 0
	res = Retry(flaky, 2)(9)
	assert.Equal(t, "failure:attempt 2", outcome(res))
	assert.Equal(t, 2, calls)

	calls = 0
	res = Retry(flaky, 0)(9)
	assert.Equal(t, "failure:attempt 1", outcome(res))
	assert.Equal(t, 1, calls)
}
