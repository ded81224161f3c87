package charba

import (
	"github.com/bits-and-blooms/bitset"

	"svpa/internal/ba"
	"svpa/internal/budget"
)

// Algebra is the byte Boolean algebra: predicates are bitsets over the
// 256 possible byte values, satisfiability and equivalence are direct
// bitset queries, and minterms are computed by the standard
// intersect-then-split refinement (spec.md §4.1).
type Algebra struct{}

// New returns a byte Boolean algebra instance. Algebra is stateless, so
// every call returns an equally usable value; New exists for parity with
// the constructor style the rest of the module uses.
func New() *Algebra { return &Algebra{} }

func (a *Algebra) True() Pred {
	p := newPred()
	p.bits.FlipRange(0, alphabetSize)
	return p
}

func (a *Algebra) False() Pred { return newPred() }

func (a *Algebra) MkAnd(x, y Pred) Pred {
	return Pred{bits: x.bits.Intersection(y.bits)}
}

func (a *Algebra) MkAndMultiple(preds []Pred) Pred {
	if len(preds) == 0 {
		return a.True()
	}
	acc := preds[0].bits.Clone()
	for _, p := range preds[1:] {
		acc = acc.Intersection(p.bits)
	}
	return Pred{bits: acc}
}

func (a *Algebra) MkOr(x, y Pred) Pred {
	return Pred{bits: x.bits.Union(y.bits)}
}

func (a *Algebra) MkNot(x Pred) Pred {
	full := a.True()
	return Pred{bits: full.bits.Difference(x.bits)}
}

func (a *Algebra) IsSatisfiable(p Pred) bool {
	return p.bits != nil && p.bits.Any()
}

func (a *Algebra) AreEquivalent(p, q Pred) bool {
	return p.bits.Equal(q.bits)
}

func (a *Algebra) GenerateWitness(p Pred) (byte, bool) {
	if p.bits == nil {
		return 0, false
	}
	i, ok := p.bits.NextSet(0)
	if !ok {
		return 0, false
	}
	return byte(i), true
}

func (a *Algebra) IsSatisfiedBy(p Pred, s byte) bool {
	return p.bits != nil && p.bits.Test(uint(s))
}

func (a *Algebra) ApplyFunc(f Func, s byte) byte {
	switch f.Kind {
	case ToUpper:
		if s >= 'a' && s <= 'z' {
			return s - 32
		}
	case ToLower:
		if s >= 'A' && s <= 'Z' {
			return s + 32
		}
	}
	return s
}

// GetMinterms partitions True() into the minterms of preds by
// iteratively splitting the running partition on each predicate's
// satisfiable intersection and difference (spec.md §4.1). Bits[i] of a
// returned minterm is set iff the minterm's set is a subset of
// preds[i]'s set.
func (a *Algebra) GetMinterms(bgt *budget.Budget, preds []Pred) ([]ba.Minterm[Pred], error) {
	if bgt == nil {
		bgt = budget.Unbounded()
	}
	current := []Pred{a.True()}
	for _, p := range preds {
		var next []Pred
		for _, mt := range current {
			if err := bgt.CheckSat(); err != nil {
				return nil, err
			}
			in := a.MkAnd(mt, p)
			if a.IsSatisfiable(in) {
				next = append(next, in)
			}
			out := a.MkAnd(mt, a.MkNot(p))
			if a.IsSatisfiable(out) {
				next = append(next, out)
			}
		}
		current = next
	}

	minterms := make([]ba.Minterm[Pred], 0, len(current))
	for _, mt := range current {
		if err := bgt.CheckMinterm(); err != nil {
			return nil, err
		}
		bits := bitset.New(uint(len(preds)))
		for i, p := range preds {
			if isSubset(mt.bits, p.bits) {
				bits.Set(uint(i))
			}
		}
		minterms = append(minterms, ba.Minterm[Pred]{Pred: mt, Bits: bits})
	}
	return minterms, nil
}

// isSubset reports whether every bit set in sub is also set in super.
func isSubset(sub, super *bitset.BitSet) bool {
	diff := sub.Difference(super)
	return diff.None()
}
