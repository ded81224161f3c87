// Package budget tracks the timeout that bounds every long-running
// SFA/SST construction, and counts the steps it takes (spec.md §5: "Long-running primitives
// ... accept a timeout budget in milliseconds and check the wall clock at
// coarse-grained safe points: per state popped from a worklist, per
// minterm generated, per satisfiability query. On exceeded budget they
// fail fast with a timeout error.").
//
// Grounded on internal/engine/context.go's ExecutionContext, which does
// the same amortized-clock-check trick for query execution
// (StatesVisited/TermsMatched limits, a Deadline, a check-every-N-calls
// counter); this generalizes it from query limits to construction limits.
package budget

import (
	"log/slog"
	"time"
)

// checkInterval amortizes time.Now() calls the same way
// ExecutionContext.checkInterval does for query execution.
const checkInterval = 128

// Budget bounds one call into a long-running SFA/SST algorithm
// (Determinize, Minimize, HopcroftKarpEquivalent, AmbiguousInput,
// GetMinterms, ...). The zero value is an unbounded budget: no deadline.
// The step counters below only record work done; no step count ever
// fails a check.
type Budget struct {
	deadline time.Time
	hasLimit bool

	// Logger, if set, receives a warning with the step counters when a
	// deadline check finds the deadline exceeded; nothing is logged at
	// the other safe points. Mirrors the teacher's pattern of an
	// injected, defaultable *slog.Logger; nil means "don't log".
	Logger *slog.Logger

	checkCounter int

	StatesVisited     int
	MintermsGenerated int
	SatQueries        int
}

// New creates a Budget with a wall-clock deadline timeout from now.
// A non-positive timeout means unbounded.
func New(timeout time.Duration) *Budget {
	b := &Budget{}
	if timeout > 0 {
		b.deadline = time.Now().Add(timeout)
		b.hasLimit = true
	}
	return b
}

// Unbounded returns a Budget with no deadline, for callers that accept
// spec.md's default of "no timeout supplied".
func Unbounded() *Budget { return &Budget{} }

// CheckState records a state popped from a worklist and checks the
// deadline (amortized).
func (b *Budget) CheckState() error {
	if b == nil {
		return nil
	}
	b.StatesVisited++
	return b.checkDeadline()
}

// CheckMinterm records a minterm produced by GetMinterms and checks the
// deadline (amortized).
func (b *Budget) CheckMinterm() error {
	if b == nil {
		return nil
	}
	b.MintermsGenerated++
	return b.checkDeadline()
}

// CheckSat records a satisfiability query and checks the deadline
// (amortized).
func (b *Budget) CheckSat() error {
	if b == nil {
		return nil
	}
	b.SatQueries++
	return b.checkDeadline()
}

func (b *Budget) checkDeadline() error {
	if !b.hasLimit {
		return nil
	}
	b.checkCounter++
	if b.checkCounter%checkInterval != 0 {
		return nil
	}
	if time.Now().After(b.deadline) {
		if b.Logger != nil {
			b.Logger.Warn("budget exceeded",
				"states_visited", b.StatesVisited,
				"minterms_generated", b.MintermsGenerated,
				"sat_queries", b.SatQueries)
		}
		return ErrTimeout
	}
	return nil
}
