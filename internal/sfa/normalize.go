package sfa

import "svpa/internal/move"

// Normalize returns an equivalent SFA with parallel input moves collapsed
// (their guards disjoined) and duplicate epsilon moves collapsed, without
// otherwise changing the state space. This is the standalone entry point
// mirroring the normalize flag MkSFA takes at construction time, for
// callers that build moves outside MkSFA and only want the collapsing
// pass (SVPAlib's own separately-exposed normalization step).
func (a *SFA[P, F, S]) Normalize() (*SFA[P, F, S], error) {
	var inputMoves []move.InputMove[P, move.None]
	var epsilonMoves []move.EpsilonMove[move.None]
	for _, s := range a.GetStates() {
		inputMoves = append(inputMoves, a.inputMoves[s]...)
		epsilonMoves = append(epsilonMoves, a.epsilonMoves[s]...)
	}
	return MkSFA[P, F, S](inputMoves, epsilonMoves, a.initial, a.GetFinalStates(), a.alg, false, true)
}
