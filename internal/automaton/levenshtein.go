package automaton

import (
	"errors"

	"svpa/internal/charba"
	"svpa/internal/move"
	"svpa/internal/sfa"
)

// MaxEditDistance bounds the edit distance NewLevenshteinSFA accepts.
// Larger distances blow up the determinized automaton this builds, the same
// limit the teacher's fixed-arity state encoding enforced.
const MaxEditDistance = 2

// ErrEditDistanceTooLarge is returned when maxDist exceeds MaxEditDistance
// or is negative.
var ErrEditDistanceTooLarge = errors.New("edit distance exceeds maximum of 2")

// NewLevenshteinSFA builds a deterministic SFA accepting every string
// within maxDist edits (substitution, insertion, deletion) of target.
// States are encoded as (position in target, edits spent so far), the
// teacher's encoding scheme; but where the teacher's Step approximated
// deletion by picking a single "best" successor state, this builds the
// textbook Levenshtein NFA — a genuine epsilon move per deletion, an
// input move per substitution/insertion/match — and lets internal/sfa's
// epsilon-elimination and minterm-based determinization resolve the
// overlap, rather than hand-picking a winner.
func NewLevenshteinSFA(target []byte, maxDist int) (*sfa.SFA[charba.Pred, charba.Func, byte], error) {
	if maxDist < 0 || maxDist > MaxEditDistance {
		return nil, ErrEditDistanceTooLarge
	}
	alg := charba.New()
	encode := func(pos, edits int) int { return pos*(maxDist+1) + edits }

	var inputMoves []move.InputMove[charba.Pred, move.None]
	var epsilonMoves []move.EpsilonMove[move.None]
	var finals []int

	n := len(target)
	for pos := 0; pos <= n; pos++ {
		for edits := 0; edits <= maxDist; edits++ {
			from := encode(pos, edits)
			if n-pos <= maxDist-edits {
				finals = append(finals, from)
			}
			if pos < n {
				matched := charba.Char(target[pos])
				inputMoves = append(inputMoves, move.InputMove[charba.Pred, move.None]{
					From: from, To: encode(pos+1, edits), Guard: matched,
				})
				if edits < maxDist {
					inputMoves = append(inputMoves, move.InputMove[charba.Pred, move.None]{
						From: from, To: encode(pos+1, edits+1), Guard: alg.MkNot(matched),
					})
					epsilonMoves = append(epsilonMoves, move.EpsilonMove[move.None]{
						From: from, To: encode(pos+1, edits+1),
					})
				}
			}
			if edits < maxDist {
				inputMoves = append(inputMoves, move.InputMove[charba.Pred, move.None]{
					From: from, To: encode(pos, edits+1), Guard: alg.True(),
				})
			}
		}
	}

	built, err := sfa.MkSFA[charba.Pred, charba.Func, byte](inputMoves, epsilonMoves, encode(0, 0), finals, alg, true, true)
	if err != nil {
		return nil, err
	}
	return built.Determinize(nil)
}
