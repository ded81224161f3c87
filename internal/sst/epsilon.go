package sst

import (
	"svpa/internal/budget"
	"svpa/internal/move"
	"svpa/internal/register"
)

// closureEntry is one entry of a state's epsilon-closure map: a
// reachable state together with the SimpleVariableUpdate obtained by
// composing every edge update along the (unique) epsilon path that
// reaches it (spec.md §4.11).
type closureEntry[S any] struct {
	state  int
	update register.SimpleVariableUpdate[S]
}

// epsilonClosure computes the closure map of s: source binds to the
// identity update; every other entry is reached by exactly one epsilon
// path. A state discovered by a second, distinct path — or a second
// distinct final state reachable from s — violates the tree invariant
// spec.md §7 (kind 2) and §8 scenario 1 require, and is reported as
// ErrAmbiguousEpsilon.
func (t *SST[P, F, S]) epsilonClosure(s int) ([]closureEntry[S], error) {
	visited := map[int]register.SimpleVariableUpdate[S]{
		s: register.IdentityVarUp[register.NoFunc, S](t.numVars),
	}
	order := []int{s}
	queue := []int{s}
	finalsSeen := 0
	if t.IsFinal(s) {
		finalsSeen = 1
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curUpdate := visited[cur]
		for _, m := range t.epsilonMoves[cur] {
			if _, ok := visited[m.To]; ok {
				return nil, ErrAmbiguousEpsilon
			}
			composed := register.ComposeSimple(curUpdate, m.Update)
			visited[m.To] = composed
			order = append(order, m.To)
			queue = append(queue, m.To)
			if t.IsFinal(m.To) {
				finalsSeen++
				if finalsSeen > 1 {
					return nil, ErrAmbiguousEpsilon
				}
			}
		}
	}
	out := make([]closureEntry[S], len(order))
	for i, st := range order {
		out[i] = closureEntry[S]{state: st, update: visited[st]}
	}
	return out, nil
}

// RemoveEpsilonMoves eliminates epsilon moves via per-state closure
// composition (spec.md §4.11): every state keeps its original id (the
// tree invariant guarantees a state's closure is unambiguous, so no
// subset construction is needed); its outgoing moves become the
// composition of its closure update with every non-epsilon move out of
// every state in its closure, and its output — if any state in its
// closure is final — is the composition of that state's closure update
// with its original output.
func (t *SST[P, F, S]) RemoveEpsilonMoves(bgt *budget.Budget) (*SST[P, F, S], error) {
	if t.isEpsilonFree {
		return t.Clone(), nil
	}
	if bgt == nil {
		bgt = budget.Unbounded()
	}

	inputMoves := make(map[int][]move.InputMove[P, register.VariableUpdate[F, S]])
	output := make(map[int]register.SimpleVariableUpdate[S])

	for _, s := range t.GetStates() {
		if err := bgt.CheckState(); err != nil {
			return nil, err
		}
		closure, err := t.epsilonClosure(s)
		if err != nil {
			return nil, err
		}
		for _, entry := range closure {
			for _, m := range t.inputMoves[entry.state] {
				newUpdate := register.ComposeWith(entry.update, m.Update)
				inputMoves[s] = append(inputMoves[s], move.InputMove[P, register.VariableUpdate[F, S]]{
					From: s, To: m.To, Guard: m.Guard, Update: newUpdate,
				})
			}
			if out, ok := t.output[entry.state]; ok {
				output[s] = register.ComposeSimple(entry.update, out)
			}
		}
	}

	var flatInput []move.InputMove[P, register.VariableUpdate[F, S]]
	for _, ms := range inputMoves {
		flatInput = append(flatInput, ms...)
	}

	return MkSST[P, F, S](flatInput, nil, t.initial, t.numVars, output, t.alg, false)
}
