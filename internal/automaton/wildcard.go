package automaton

import (
	"errors"

	"svpa/internal/charba"
	"svpa/internal/move"
	"svpa/internal/sfa"
)

// MaxWildcardPatternLength bounds the patterns NewWildcardSFA accepts, the
// same guardrail the teacher's DFA compiler used to cap state growth.
const MaxWildcardPatternLength = 256

// ErrWildcardPatternTooLong is returned when a pattern exceeds
// MaxWildcardPatternLength.
var ErrWildcardPatternTooLong = errors.New("wildcard pattern exceeds maximum length")

// NewWildcardSFA compiles a wildcard pattern ('*' matches zero or more
// bytes, '?' matches exactly one, anything else matches itself) into a
// deterministic SFA over the byte Boolean algebra. It grounds the same
// NFA-then-subset-construction shape the teacher's hand-rolled DFA
// compiler used, but builds the NFA out of internal/move's tagged moves
// and hands epsilon-elimination and determinization to internal/sfa
// instead of reimplementing subset construction (spec.md §4.4).
func NewWildcardSFA(pattern []byte) (*sfa.SFA[charba.Pred, charba.Func, byte], error) {
	if len(pattern) > MaxWildcardPatternLength {
		return nil, ErrWildcardPatternTooLong
	}
	alg := charba.New()

	var inputMoves []move.InputMove[charba.Pred, move.None]
	var epsilonMoves []move.EpsilonMove[move.None]

	state := 0
	for _, ch := range pattern {
		next := state + 1
		switch ch {
		case '*':
			// Skip the star entirely, or loop consuming any byte.
			epsilonMoves = append(epsilonMoves, move.EpsilonMove[move.None]{From: state, To: next})
			inputMoves = append(inputMoves, move.InputMove[charba.Pred, move.None]{From: next, To: next, Guard: alg.True()})
		case '?':
			inputMoves = append(inputMoves, move.InputMove[charba.Pred, move.None]{From: state, To: next, Guard: alg.True()})
		default:
			inputMoves = append(inputMoves, move.InputMove[charba.Pred, move.None]{From: state, To: next, Guard: charba.Char(ch)})
		}
		state = next
	}

	built, err := sfa.MkSFA[charba.Pred, charba.Func, byte](inputMoves, epsilonMoves, 0, []int{state}, alg, false, true)
	if err != nil {
		return nil, err
	}
	return built.Determinize(nil)
}
