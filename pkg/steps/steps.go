// Package steps is a library of string pipeline steps for signup-style
// workflows. Configurable steps are plain multi-argument functions curried
// into rop.Step values, so thresholds and repositories are bound once at
// assembly time.
package steps

import (
	"strings"

	"github.com/ib-77/railway/pkg/repository"
	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/curry"
)

const AlreadyExists = "Already exists"

var (
	Trim  = curry.Lift(strings.TrimSpace)
	Lower = curry.Lift(strings.ToLower)

	// MinLength(n) fails values shorter than n runes.
	MinLength = curry.Curry2(minLength)
	// NotIn(repo) fails values already present in repo.
	NotIn = curry.Curry2(notIn)
	// Insert(repo) adds the value to repo and passes it on.
	Insert = curry.Curry2(insert)
	// InsertIfAbsent(repo) checks and inserts in one step.
	InsertIfAbsent = curry.Curry2(insertIfAbsent)
)

func minLength(n int, email string) rop.Result[string] {
	if len([]rune(email)) < n {
		return rop.Fail[string](rop.Validationf("Too short, must be ≥ %d", n))
	}
	return rop.Success(email)
}

func notIn(repo repository.Repository, email string) rop.Result[string] {
	if repo.Contains(email) {
		return rop.Fail[string](rop.Conflict(AlreadyExists))
	}
	return rop.Success(email)
}

func insert(repo repository.Repository, email string) rop.Result[string] {
	repo.Insert(email)
	return rop.Success(email)
}

// insertIfAbsent uses the repository's atomic insert when it has one and
// falls back to Contains followed by Insert otherwise.
func insertIfAbsent(repo repository.Repository, email string) rop.Result[string] {
	if atomic, ok := repo.(repository.AtomicInserter); ok {
		if !atomic.InsertIfAbsent(email) {
			return rop.Fail[string](rop.Conflict(AlreadyExists))
		}
		return rop.Success(email)
	}

	if repo.Contains(email) {
		return rop.Fail[string](rop.Conflict(AlreadyExists))
	}
	repo.Insert(email)
	return rop.Success(email)
}
