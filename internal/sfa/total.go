package sfa

import (
	"svpa/internal/budget"
	"svpa/internal/move"
)

// MkTotal totalizes a: it determinizes first if necessary, then for every
// state computes the guard psi = not(or(outgoing guards)); if psi is
// satisfiable, adds a transition to a fresh shared sink state (with a
// True self-loop) — spec.md §4.5.
func (a *SFA[P, F, S]) MkTotal(bgt *budget.Budget) (*SFA[P, F, S], error) {
	det := a
	if !a.isDeterministic {
		var err error
		det, err = a.Determinize(bgt)
		if err != nil {
			return nil, err
		}
	}
	if det.isTotal {
		return det.Clone(), nil
	}

	sinkID := det.maxStateID + 1
	var inputMoves []move.InputMove[P, move.None]
	needSink := false
	for _, s := range det.GetStates() {
		ms := det.inputMoves[s]
		inputMoves = append(inputMoves, ms...)

		var disj P
		if len(ms) == 0 {
			disj = det.alg.False()
		} else {
			disj = ms[0].Guard
			for _, m := range ms[1:] {
				disj = det.alg.MkOr(disj, m.Guard)
			}
		}
		psi := det.alg.MkNot(disj)
		if det.alg.IsSatisfiable(psi) {
			inputMoves = append(inputMoves, move.InputMove[P, move.None]{From: s, To: sinkID, Guard: psi})
			needSink = true
		}
	}
	if needSink {
		inputMoves = append(inputMoves, move.InputMove[P, move.None]{From: sinkID, To: sinkID, Guard: det.alg.True()})
	}

	return MkSFA[P, F, S](inputMoves, nil, det.initial, det.GetFinalStates(), det.alg, false, false)
}
