package sfa

import (
	"svpa/internal/move"
)

// Concatenate returns an SFA accepting L(a)·L(b) (spec.md §4.7): b's
// states are renumbered past a's, an epsilon move links every final state
// of a to b's initial state, and the final states are exactly b's
// original final states, as in the classical Thompson construction. If b
// accepts the empty word, a word of L(a) still reaches a final state
// through that epsilon link.
func (a *SFA[P, F, S]) Concatenate(b *SFA[P, F, S]) (*SFA[P, F, S], error) {
	offset := a.maxStateID + 1

	var inputMoves []move.InputMove[P, move.None]
	var epsilonMoves []move.EpsilonMove[move.None]

	for _, s := range a.GetStates() {
		inputMoves = append(inputMoves, a.inputMoves[s]...)
		for _, m := range a.epsilonMoves[s] {
			epsilonMoves = append(epsilonMoves, m)
		}
	}
	for _, s := range b.GetStates() {
		for _, m := range b.inputMoves[s] {
			inputMoves = append(inputMoves, move.InputMove[P, move.None]{
				From: m.From + offset, To: m.To + offset, Guard: m.Guard,
			})
		}
		for _, m := range b.epsilonMoves[s] {
			epsilonMoves = append(epsilonMoves, move.EpsilonMove[move.None]{
				From: m.From + offset, To: m.To + offset,
			})
		}
	}
	for _, f := range a.GetFinalStates() {
		epsilonMoves = append(epsilonMoves, move.EpsilonMove[move.None]{From: f, To: b.initial + offset})
	}

	var finals []int
	for _, f := range b.GetFinalStates() {
		finals = append(finals, f+offset)
	}

	return MkSFA[P, F, S](inputMoves, epsilonMoves, a.initial, finals, a.alg, true, false)
}

// Star returns an SFA accepting L(a)* (spec.md §4.7): a fresh initial
// state, also final, links via epsilon to a's original initial state; an
// epsilon move loops every final state of a back to a's initial state.
func (a *SFA[P, F, S]) Star() (*SFA[P, F, S], error) {
	newInit := a.maxStateID + 1

	var inputMoves []move.InputMove[P, move.None]
	var epsilonMoves []move.EpsilonMove[move.None]
	for _, s := range a.GetStates() {
		inputMoves = append(inputMoves, a.inputMoves[s]...)
		epsilonMoves = append(epsilonMoves, a.epsilonMoves[s]...)
	}
	epsilonMoves = append(epsilonMoves, move.EpsilonMove[move.None]{From: newInit, To: a.initial})
	for _, f := range a.GetFinalStates() {
		epsilonMoves = append(epsilonMoves, move.EpsilonMove[move.None]{From: f, To: a.initial})
	}

	finals := append([]int{newInit}, a.GetFinalStates()...)
	return MkSFA[P, F, S](inputMoves, epsilonMoves, newInit, finals, a.alg, true, false)
}
