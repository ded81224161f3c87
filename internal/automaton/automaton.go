// Package automaton builds concrete example SFAs over the byte Boolean
// algebra (internal/charba): wildcard, prefix, and Levenshtein matching.
// It exists to exercise internal/sfa's construction and determinization
// with realistic, hand-checkable automata, and to back the package-level
// Example tests at the repository root.
package automaton

import "svpa/internal/sfa"

// Accepts runs input through a deterministic SFA byte by byte, following
// the unique enabled move at each step, and reports whether the final
// state is accepting. If no move is enabled for some byte it returns
// false; on a non-deterministic SFA it follows the first enabled move
// only.
func Accepts[P, F any](a *sfa.SFA[P, F, byte], input string) bool {
	state := a.GetInitialState()
	alg := a.Algebra()
	for i := 0; i < len(input); i++ {
		next := -1
		for _, m := range a.GetInputMovesFrom(state) {
			if alg.IsSatisfiedBy(m.Guard, input[i]) {
				next = m.To
				break
			}
		}
		if next == -1 {
			return false
		}
		state = next
	}
	return a.IsFinal(state)
}
