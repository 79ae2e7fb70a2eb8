package steps

import (
	"fmt"

	"github.com/ib-77/railway/pkg/rop"
)

// SafeCleanup adapts a fallible cleanup function into a step. A returned
// error or a panic is kept as the cause under a line naming the input that
// failed.
func SafeCleanup(cleanup func(string) (string, error)) rop.Step[string] {
	if cleanup == nil {
		panic("steps: SafeCleanup called with nil function")
	}
	return func(email string) (res rop.Result[string]) {
		defer func() {
			if err := rop.Recovered(recover()); err != nil {
				res = rop.Fail[string](cleanupFailed(err, email))
			}
		}()

		out, err := cleanup(email)
		if err != nil {
			return rop.Fail[string](cleanupFailed(err, email))
		}
		return rop.Success(out)
	}
}

func cleanupFailed(err error, email string) error {
	return rop.Wrap(err, fmt.Sprintf("Cleanup step failed on '%s'", email))
}
