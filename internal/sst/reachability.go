package sst

import (
	"svpa/internal/move"
	"svpa/internal/register"
)

// RemoveUnreachableStates drops every state not forward-reachable from
// the initial state, closing the gap the constructor leaves open
// (SPEC_FULL.md's supplemented parity pass with the SFA side, spec.md
// §9's open question on "the SST constructor currently retains
// unreachable states pending a documented removeUnreachableStates
// pass").
func (t *SST[P, F, S]) RemoveUnreachableStates() *SST[P, F, S] {
	reachable := map[int]struct{}{t.initial: {}}
	queue := []int{t.initial}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, m := range t.inputMoves[s] {
			if _, ok := reachable[m.To]; !ok {
				reachable[m.To] = struct{}{}
				queue = append(queue, m.To)
			}
		}
		for _, m := range t.epsilonMoves[s] {
			if _, ok := reachable[m.To]; !ok {
				reachable[m.To] = struct{}{}
				queue = append(queue, m.To)
			}
		}
	}

	states := make(map[int]struct{}, len(reachable))
	inputMoves := make(map[int][]move.InputMove[P, register.VariableUpdate[F, S]])
	epsilonMoves := make(map[int][]move.EpsilonMove[register.SimpleVariableUpdate[S]])
	output := make(map[int]register.SimpleVariableUpdate[S])
	maxID := t.initial
	for s := range reachable {
		states[s] = struct{}{}
		if s > maxID {
			maxID = s
		}
		if ms, ok := t.inputMoves[s]; ok {
			var kept []move.InputMove[P, register.VariableUpdate[F, S]]
			for _, m := range ms {
				if _, ok := reachable[m.To]; ok {
					kept = append(kept, m)
				}
			}
			if kept != nil {
				inputMoves[s] = kept
			}
		}
		if ms, ok := t.epsilonMoves[s]; ok {
			var kept []move.EpsilonMove[register.SimpleVariableUpdate[S]]
			for _, m := range ms {
				if _, ok := reachable[m.To]; ok {
					kept = append(kept, m)
				}
			}
			if kept != nil {
				epsilonMoves[s] = kept
			}
		}
		if u, ok := t.output[s]; ok {
			output[s] = u
		}
	}

	return &SST[P, F, S]{
		alg:             t.alg,
		states:          states,
		initial:         t.initial,
		numVars:         t.numVars,
		output:          output,
		inputMoves:      inputMoves,
		epsilonMoves:    epsilonMoves,
		isDeterministic: t.isDeterministic,
		isEpsilonFree:   t.isEpsilonFree,
		isTotal:         t.isTotal,
		maxStateID:      maxID,
	}
}
