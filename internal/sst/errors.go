package sst

import (
	"errors"

	"svpa/internal/budget"
)

// ErrTimeout re-exports budget.ErrTimeout for callers that only import
// package sst.
var ErrTimeout = budget.ErrTimeout

// ErrMalformed reports an SST built with inconsistent update lengths or
// undeclared variable references (MkSST wraps the register package's
// validation error with it), or a Shuffle call with no components
// (spec.md §7, kind 2). Violations of the epsilon-closure tree invariant
// are reported as ErrAmbiguousEpsilon instead.
var ErrMalformed = errors.New("svpa: malformed SST")

// ErrAmbiguousEpsilon reports two distinct epsilon paths reaching the
// same state during epsilon-elimination, or two distinct epsilon-reachable
// final states, whatever their outputs (spec.md §7, kind 2; scenario 1).
var ErrAmbiguousEpsilon = errors.New("svpa: ambiguous epsilon closure")
