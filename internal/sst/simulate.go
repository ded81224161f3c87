package sst

import (
	"svpa/internal/budget"
	"svpa/internal/register"
)

// Simulate runs t on word (spec.md §4.14): it tracks, for every
// currently-reachable state, the set of possible register assignments
// reached by some run of that prefix. It starts with the initial state
// bound to the all-empty assignment; on each symbol, every
// (state, assignment) pair advances along every input move whose guard
// is satisfied by the symbol, applying the move's update to the
// assignment. t must be epsilon-free; OutputOn is the entry point that
// handles that on callers' behalf, mirroring the original's outputOn.
func (t *SST[P, F, S]) Simulate(word []S) map[int][]register.VariableAssignment[S] {
	frontier := map[int][]register.VariableAssignment[S]{
		t.initial: {register.NewAssignment[S](t.numVars)},
	}
	for _, sym := range word {
		next := make(map[int][]register.VariableAssignment[S])
		for state, assignments := range frontier {
			for _, m := range t.inputMoves[state] {
				if !t.alg.IsSatisfiedBy(m.Guard, sym) {
					continue
				}
				for _, a := range assignments {
					updated := register.ApplyTo(m.Update, a, sym, t.alg.ApplyFunc)
					next[m.To] = append(next[m.To], updated)
				}
			}
		}
		frontier = next
	}
	return frontier
}

// OutputOn eliminates epsilon moves if t has any, runs Simulate to
// completion, and, if any final state was reached with a nonempty
// assignment set, applies that state's output update and returns the
// resulting register-0 string (spec.md §4.14), mirroring the original's
// outputOn(sstWithEps, input, ba) which removes epsilon moves as its
// first step rather than requiring callers to do so. The second return
// value is false if no final state was reached, including when t's
// epsilon moves are ambiguous (spec.md §7) and can't be eliminated.
func (t *SST[P, F, S]) OutputOn(word []S) ([]S, bool) {
	free := t
	if !t.isEpsilonFree {
		var err error
		free, err = t.RemoveEpsilonMoves(budget.Unbounded())
		if err != nil {
			return nil, false
		}
	}
	frontier := free.Simulate(word)
	for _, s := range free.GetFinalStates() {
		assignments, ok := frontier[s]
		if !ok || len(assignments) == 0 {
			continue
		}
		out, _ := free.Output(s)
		applied := register.ApplySimple(out, assignments[0])
		if len(applied) == 0 {
			return nil, true
		}
		return applied[0], true
	}
	return nil, false
}
