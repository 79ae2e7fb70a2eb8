package steps

import (
	"fmt"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/curry"
)

// DenyPatterns fails values matching any of the glob patterns, for example
// "*@spam.example" or "*@{junk,spam}.example".
func DenyPatterns(patterns ...string) (rop.Step[string], error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("no deny patterns given")
	}
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid deny pattern %q", p)
		}
	}
	return curry.Partial2(deny, slices.Clone(patterns)), nil
}

func deny(patterns []string, email string) rop.Result[string] {
	for _, p := range patterns {
		// patterns were validated up front, so Match cannot fail here
		if matched, _ := doublestar.Match(p, email); matched {
			return rop.Fail[string](rop.Validationf("Not allowed, matches %q", p))
		}
	}
	return rop.Success(email)
}
