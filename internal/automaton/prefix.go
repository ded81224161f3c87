package automaton

import (
	"svpa/internal/charba"
	"svpa/internal/move"
	"svpa/internal/sfa"
)

// NewPrefixSFA builds a deterministic SFA accepting every string that
// starts with prefix: one state per prefix byte, then a self-looping
// accepting state consuming anything. Grounded on the teacher's
// PrefixAutomaton state-numbering scheme, rebuilt directly as a
// move.InputMove list rather than a bespoke Step function so it shares
// internal/sfa's construction path with every other SFA in the module.
func NewPrefixSFA(prefix []byte) (*sfa.SFA[charba.Pred, charba.Func, byte], error) {
	alg := charba.New()

	var inputMoves []move.InputMove[charba.Pred, move.None]
	state := 0
	for _, b := range prefix {
		next := state + 1
		inputMoves = append(inputMoves, move.InputMove[charba.Pred, move.None]{From: state, To: next, Guard: charba.Char(b)})
		state = next
	}
	inputMoves = append(inputMoves, move.InputMove[charba.Pred, move.None]{From: state, To: state, Guard: alg.True()})

	return sfa.MkSFA[charba.Pred, charba.Func, byte](inputMoves, nil, 0, []int{state}, alg, false, true)
}
