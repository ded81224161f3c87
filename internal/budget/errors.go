package budget

import "errors"

// ErrTimeout is returned by any bounded operation that exceeded its
// budget (spec.md §7, error kind 1: "Timeout"). Callers decide whether to
// retry with a larger budget; the operation that returned it produced no
// partial result.
var ErrTimeout = errors.New("svpa: operation exceeded its timeout budget")
