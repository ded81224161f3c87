// Package ba defines the effective Boolean algebra contract that the
// symbolic automaton and transducer engines are parameterized over. The
// package contains no implementation of a concrete algebra: predicates,
// functions, and alphabet elements are opaque type parameters, reasoned
// about only through the operations declared here.
package ba

import (
	"github.com/bits-and-blooms/bitset"

	"svpa/internal/budget"
)

// Algebra is an effective Boolean algebra over predicates of type P,
// deferred functions of type F applied to alphabet elements of type S.
//
// Implementations MUST be safe for concurrent read-only use: every
// operation is called with the algebra borrowed read-only for the
// duration of one automaton/transducer construction (spec.md §5, "Shared
// resources").
//
// P is never compared structurally by callers in this module; it is
// reasoned about only through the operations below.
type Algebra[P, F, S any] interface {
	// True returns the predicate satisfied by every element of S.
	True() P
	// False returns the predicate satisfied by no element of S.
	False() P

	// MkAnd returns the conjunction of a and b.
	MkAnd(a, b P) P
	// MkAndMultiple returns the conjunction of every predicate in preds,
	// or True() if preds is empty.
	MkAndMultiple(preds []P) P
	// MkOr returns the disjunction of a and b.
	MkOr(a, b P) P
	// MkNot returns the negation of a.
	MkNot(a P) P

	// IsSatisfiable reports whether some element of S satisfies p.
	IsSatisfiable(p P) bool
	// IsSatisfiedBy reports whether the concrete element s satisfies p
	// (SVPAlib's InputMove.hasModel), the primitive SFA/SST run and
	// simulation drive a single input symbol through a guard with.
	IsSatisfiedBy(p P, s S) bool
	// AreEquivalent reports whether p and q are satisfied by exactly the
	// same elements of S. Optional: implementations that cannot decide
	// this efficiently may fall back to And/Not/IsSatisfiable.
	AreEquivalent(p, q P) bool

	// GenerateWitness returns some element of S satisfying p. The second
	// return value is false if p is unsatisfiable.
	GenerateWitness(p P) (S, bool)

	// ApplyFunc evaluates a deferred BA function against an input symbol.
	ApplyFunc(f F, s S) S

	// GetMinterms partitions True() into the maximal conjunctions of
	// literals over preds: every minterm is satisfiable, minterms are
	// pairwise unsatisfiable-in-conjunction with each other, and their
	// disjunction is equivalent to True(). Bits[i] of a returned minterm
	// is set iff the minterm entails preds[i].
	//
	// GetMinterms checks bgt for an exceeded timeout budget at
	// coarse-grained safe points (per minterm produced, per satisfiability
	// query); bgt may be nil, meaning unbounded.
	GetMinterms(bgt *budget.Budget, preds []P) ([]Minterm[P], error)
}

// Minterm is one entry of a minterm partition returned by GetMinterms: a
// satisfiable predicate together with the bitvector of which input
// predicates it entails.
type Minterm[P any] struct {
	Pred P
	Bits *bitset.BitSet
}

// Entails reports whether the minterm entails the i-th input predicate
// passed to GetMinterms.
func (m Minterm[P]) Entails(i uint) bool {
	if m.Bits == nil {
		return false
	}
	return m.Bits.Test(i)
}
