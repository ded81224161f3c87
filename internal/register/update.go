package register

import "fmt"

// VariableUpdate is a vector of length equal to the register count;
// entry i is the new value of register x_i, a concatenation of tokens
// whose right-hand sides reference the *pre-update* values (spec.md §3:
// "Assignment is simultaneous"). F is the token function type; a
// FunctionalVariableUpdate is VariableUpdate[F, S] for a concrete F, used
// on input moves. A SimpleVariableUpdate below is the same shape with F
// pinned to NoFunc, used on epsilon moves, output functions, and wherever
// composition has already resolved the input symbol.
type VariableUpdate[F, S any] []TokenSeq[F, S]

// SimpleVariableUpdate is a VariableUpdate restricted (by convention, not
// by the type system — see NoFunc) to constant and variable tokens.
type SimpleVariableUpdate[S any] = VariableUpdate[NoFunc, S]

// IdentityVarUp returns the n-register update that leaves every register
// unchanged: register i's right-hand side is exactly Var(i). It is the
// left- and right-identity of ComposeWith (spec.md §8, "identityVarUp is
// a left- and right-identity of update composition").
func IdentityVarUp[F, S any](n int) VariableUpdate[F, S] {
	u := make(VariableUpdate[F, S], n)
	for i := range u {
		u[i] = TokenSeq[F, S]{Var[F, S](i)}
	}
	return u
}

// EmptyVarUp returns the n-register update that clears every register to
// the empty string, used by combinator constructions that introduce
// fresh accumulator/buffer registers (spec.md §4.13).
func EmptyVarUp[F, S any](n int) VariableUpdate[F, S] {
	return make(VariableUpdate[F, S], n)
}

// LiftToNVars pads u to length n by appending empty right-hand sides for
// the newly introduced registers (spec.md §4.12, "liftToNVars(n)").
// Panics if n is smaller than len(u) — that would drop existing
// registers, which is never what a caller wants.
func LiftToNVars[F, S any](u VariableUpdate[F, S], n int) VariableUpdate[F, S] {
	if n < len(u) {
		panic(fmt.Sprintf("register: LiftToNVars(%d) shrinks a %d-register update", n, len(u)))
	}
	if n == len(u) {
		return u
	}
	out := make(VariableUpdate[F, S], n)
	copy(out, u)
	return out
}

// RenameVars rewrites every TokenVariable reference inside u through
// mapping (spec.md §4.12, "renameVars(map)"). The returned update has the
// same length and row order as u — RenameVars only rewrites which
// register a token *refers to*, not which row of the vector each entry
// occupies; combinators that embed u's rows at new vector positions do so
// explicitly (see CombineUpdates).
func RenameVars[F, S any](u VariableUpdate[F, S], mapping map[int]int) VariableUpdate[F, S] {
	out := make(VariableUpdate[F, S], len(u))
	for i, seq := range u {
		out[i] = RenameTokenSeq(seq, mapping)
	}
	return out
}

// Validate checks the structural invariants spec.md §3/§7 require of a
// well-formed update against a register space of size n: the vector has
// exactly n rows and every TokenVariable reference is in range.
func Validate[F, S any](u VariableUpdate[F, S], n int) error {
	if len(u) != n {
		return fmt.Errorf("%w: update has %d registers, want %d", ErrMalformed, len(u), n)
	}
	for i, seq := range u {
		for _, tok := range seq {
			if tok.Kind == TokenVariable && (tok.Variable < 0 || tok.Variable >= n) {
				return fmt.Errorf("%w: register %d references undeclared variable %d", ErrMalformed, i, tok.Variable)
			}
		}
	}
	return nil
}
