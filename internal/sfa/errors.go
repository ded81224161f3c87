package sfa

import (
	"errors"

	"svpa/internal/budget"
)

// ErrTimeout is returned by any operation whose budget expired (spec.md
// §7, error kind 1). Re-exported from internal/budget so callers of this
// package never need to import budget just to compare errors.
var ErrTimeout = budget.ErrTimeout

// ErrMalformed is the sentinel for a malformed SFA (spec.md §7, error
// kind 2). No function in this package returns it: MkSFA adds an initial
// or final state that no move mentions to the state set instead of
// rejecting it.
var ErrMalformed = errors.New("svpa: malformed SFA")
