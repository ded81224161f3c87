// Package svpa implements symbolic finite automata (SFA) and symbolic
// streaming string transducers (SST) over a parametric effective Boolean
// algebra.
//
// An SFA (internal/sfa) is a finite automaton whose transitions carry
// predicates from an algebra ba.Algebra[P, F, S] rather than single
// alphabet symbols, letting one state stand in for what would otherwise
// be many symbol-labeled states — a range guard covers a whole interval
// of bytes, say, in one edge. SFAs support the closure algorithms a
// symbolic engine needs: determinization, totalization, complement,
// intersection, union, difference, concatenation, Kleene star,
// Hopcroft-Karp-style equivalence, and block-refinement minimization.
//
// An SST (internal/sst) extends the same idea to string-to-string
// transduction: each transition additionally carries a register update,
// a small program over a fixed set of string-valued registers that
// builds the transducer's output as it consumes input. SSTs support
// epsilon-elimination, the same family of automata combinators
// (Combine, Union, Concatenate, Star, LeftStar), and projecting back
// down to the SFA recognizing a transducer's domain.
//
// Both containers are parameterized over the predicate type P, the
// deferred-function type F, and the alphabet element type S; the
// algebra evaluating them is supplied by the caller and never assumed
// to be any particular representation. internal/charba is one such
// algebra — bytes with interval predicates — included for tests and
// the examples in this file; internal/automaton builds a few
// hand-checkable byte matchers (wildcard, prefix, Levenshtein distance)
// on top of it.
package svpa
