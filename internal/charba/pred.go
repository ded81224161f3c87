// Package charba is a concrete effective Boolean algebra over bytes,
// used by tests and examples exercising the ba, sfa, and sst packages
// (spec.md §12, "Out of scope: the concrete Boolean algebra
// implementations" — charba is that external collaborator's reference
// implementation, not part of the core). Predicates are represented as
// 256-bit membership sets, grounded on internal/automaton/wildcard.go's
// byte-alphabet DFA construction and github.com/bits-and-blooms/bitset's
// bitvector operations.
package charba

import "github.com/bits-and-blooms/bitset"

const alphabetSize = 256

// Pred is a predicate over bytes: the set of bytes it accepts.
type Pred struct {
	bits *bitset.BitSet
}

func newPred() Pred {
	return Pred{bits: bitset.New(alphabetSize)}
}

// Char returns the predicate satisfied by exactly b.
func Char(b byte) Pred {
	p := newPred()
	p.bits.Set(uint(b))
	return p
}

// Range returns the predicate satisfied by every byte in [lo, hi]
// (inclusive on both ends).
func Range(lo, hi byte) Pred {
	p := newPred()
	for i := int(lo); i <= int(hi); i++ {
		p.bits.Set(uint(i))
	}
	return p
}

// Set returns the predicate satisfied by exactly the bytes in bs.
func Set(bs ...byte) Pred {
	p := newPred()
	for _, b := range bs {
		p.bits.Set(uint(b))
	}
	return p
}

// String renders p as a sorted list of maximal contiguous ranges, e.g.
// "[0-9a-z]".
func (p Pred) String() string {
	if p.bits == nil || p.bits.None() {
		return "[]"
	}
	out := "["
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		if start == end {
			out += byteLabel(byte(start))
		} else {
			out += byteLabel(byte(start)) + "-" + byteLabel(byte(end))
		}
		start = -1
	}
	for i := 0; i < alphabetSize; i++ {
		if p.bits.Test(uint(i)) {
			if start < 0 {
				start = i
			}
		} else {
			flush(i - 1)
		}
	}
	flush(alphabetSize - 1)
	return out + "]"
}

func byteLabel(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return string(rune(b))
	}
	return "\\x" + hexDigits(b)
}

func hexDigits(b byte) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[b>>4], digits[b&0xf]})
}
