// Package sfa implements the Symbolic Finite Automaton engine: a
// closure-complete regular-language toolkit (intersection, union,
// complement, difference, concatenation, Kleene star, epsilon-elimination,
// minterm-based determinization, Hopcroft–Karp equivalence,
// Moore/Hopcroft-style minimization, ambiguity detection) parameterized
// over an abstract Boolean algebra (spec.md §4.2–§4.10).
//
// Every constructor and combinator returns a fresh value; SFA values are
// immutable after construction (spec.md §3, "Lifecycle").
package sfa

import (
	"sort"

	"svpa/internal/ba"
	"svpa/internal/move"
)

// SFA is (states, initial, finals, inputMoves, epsilonMoves) plus the
// memoized flags spec.md §3 lists. P is the predicate type, S the
// alphabet element type; F (the BA's deferred-function type) is carried
// only so the algebra handle's type matches — the SFA engine never
// constructs or evaluates an F itself.
type SFA[P, F, S any] struct {
	alg ba.Algebra[P, F, S]

	states map[int]struct{}
	initial int
	finals  map[int]struct{}

	inputMoves   map[int][]move.InputMove[P, move.None]
	epsilonMoves map[int][]move.EpsilonMove[move.None]

	isDeterministic bool
	isEpsilonFree   bool
	isTotal         bool
	isEmpty         bool
	maxStateID      int
}

// Algebra returns the Boolean algebra this SFA is defined over.
func (a *SFA[P, F, S]) Algebra() ba.Algebra[P, F, S] { return a.alg }

// StateCount returns the number of states.
func (a *SFA[P, F, S]) StateCount() int { return len(a.states) }

// TransitionCount returns the number of input moves plus epsilon moves.
func (a *SFA[P, F, S]) TransitionCount() int {
	n := 0
	for _, ms := range a.inputMoves {
		n += len(ms)
	}
	for _, ms := range a.epsilonMoves {
		n += len(ms)
	}
	return n
}

// GetStates returns every state id, ascending.
func (a *SFA[P, F, S]) GetStates() []int {
	out := make([]int, 0, len(a.states))
	for s := range a.states {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// GetFinalStates returns every final state id, ascending.
func (a *SFA[P, F, S]) GetFinalStates() []int {
	out := make([]int, 0, len(a.finals))
	for s := range a.finals {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// GetInitialState returns the initial state id.
func (a *SFA[P, F, S]) GetInitialState() int { return a.initial }

// IsFinal reports whether s is a final state.
func (a *SFA[P, F, S]) IsFinal(s int) bool {
	_, ok := a.finals[s]
	return ok
}

// HasState reports whether s belongs to this automaton.
func (a *SFA[P, F, S]) HasState(s int) bool {
	_, ok := a.states[s]
	return ok
}

// GetInputMovesFrom returns the input moves leaving s.
func (a *SFA[P, F, S]) GetInputMovesFrom(s int) []move.InputMove[P, move.None] {
	return a.inputMoves[s]
}

// GetEpsilonFrom returns the epsilon moves leaving s.
func (a *SFA[P, F, S]) GetEpsilonFrom(s int) []move.EpsilonMove[move.None] {
	return a.epsilonMoves[s]
}

// GetTransitionsFrom returns every move (input and epsilon) leaving s, for
// external inspection (spec.md §6).
func (a *SFA[P, F, S]) GetTransitionsFrom(s int) (in []move.InputMove[P, move.None], eps []move.EpsilonMove[move.None]) {
	return a.inputMoves[s], a.epsilonMoves[s]
}

// GetTransitionsTo returns every move (input and epsilon) entering s.
func (a *SFA[P, F, S]) GetTransitionsTo(s int) (in []move.InputMove[P, move.None], eps []move.EpsilonMove[move.None]) {
	for _, ms := range a.inputMoves {
		for _, m := range ms {
			if m.To == s {
				in = append(in, m)
			}
		}
	}
	for _, ms := range a.epsilonMoves {
		for _, m := range ms {
			if m.To == s {
				eps = append(eps, m)
			}
		}
	}
	return in, eps
}

// GetEpsilonTo returns the epsilon moves entering s.
func (a *SFA[P, F, S]) GetEpsilonTo(s int) []move.EpsilonMove[move.None] {
	var out []move.EpsilonMove[move.None]
	for _, ms := range a.epsilonMoves {
		for _, m := range ms {
			if m.To == s {
				out = append(out, m)
			}
		}
	}
	return out
}

// IsDeterministic reports the memoized determinism flag.
func (a *SFA[P, F, S]) IsDeterministic() bool { return a.isDeterministic }

// IsEpsilonFree reports the memoized epsilon-freedom flag.
func (a *SFA[P, F, S]) IsEpsilonFree() bool { return a.isEpsilonFree }

// IsTotal reports the memoized totality flag.
func (a *SFA[P, F, S]) IsTotal() bool { return a.isTotal }

// IsEmpty reports whether the automaton's language is empty.
func (a *SFA[P, F, S]) IsEmpty() bool { return a.isEmpty }

// MaxStateID returns the largest state id of this automaton (used by
// combinators to allocate disjoint ids).
func (a *SFA[P, F, S]) MaxStateID() int { return a.maxStateID }

// Clone returns a deep-immutable copy: since SFA values are never mutated
// after construction, Clone only needs to copy the top-level maps so that
// a caller cannot accidentally observe another value's internals through
// aliasing (spec.md §6, "Cloning: deep-immutable clone").
func (a *SFA[P, F, S]) Clone() *SFA[P, F, S] {
	c := &SFA[P, F, S]{
		alg:             a.alg,
		states:          make(map[int]struct{}, len(a.states)),
		initial:         a.initial,
		finals:          make(map[int]struct{}, len(a.finals)),
		inputMoves:      make(map[int][]move.InputMove[P, move.None], len(a.inputMoves)),
		epsilonMoves:    make(map[int][]move.EpsilonMove[move.None], len(a.epsilonMoves)),
		isDeterministic: a.isDeterministic,
		isEpsilonFree:   a.isEpsilonFree,
		isTotal:         a.isTotal,
		isEmpty:         a.isEmpty,
		maxStateID:      a.maxStateID,
	}
	for s := range a.states {
		c.states[s] = struct{}{}
	}
	for s := range a.finals {
		c.finals[s] = struct{}{}
	}
	for s, ms := range a.inputMoves {
		c.inputMoves[s] = append([]move.InputMove[P, move.None](nil), ms...)
	}
	for s, ms := range a.epsilonMoves {
		c.epsilonMoves[s] = append([]move.EpsilonMove[move.None](nil), ms...)
	}
	return c
}
