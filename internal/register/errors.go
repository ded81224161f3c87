package register

import "errors"

// ErrMalformed is the sentinel wrapped by every structural validation
// error in this package (spec.md §7, error kind 2: "Malformed input" —
// inconsistent update lengths or undeclared variable references).
var ErrMalformed = errors.New("svpa: malformed variable update")
