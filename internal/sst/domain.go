package sst

import (
	"svpa/internal/move"
	"svpa/internal/sfa"
)

// GetDomain projects t onto an SFA accepting exactly the words for
// which t's output is defined (spec.md §4.15): register updates are
// forgotten from every move, and the final states are exactly the keys
// of t's output function.
func (t *SST[P, F, S]) GetDomain() (*sfa.SFA[P, F, S], error) {
	var inputMoves []move.InputMove[P, move.None]
	var epsilonMoves []move.EpsilonMove[move.None]
	for _, s := range t.GetStates() {
		for _, m := range t.inputMoves[s] {
			inputMoves = append(inputMoves, move.InputMove[P, move.None]{From: m.From, To: m.To, Guard: m.Guard})
		}
		for _, m := range t.epsilonMoves[s] {
			epsilonMoves = append(epsilonMoves, move.EpsilonMove[move.None]{From: m.From, To: m.To})
		}
	}
	return sfa.MkSFA[P, F, S](inputMoves, epsilonMoves, t.initial, t.GetFinalStates(), t.alg, true, false)
}
