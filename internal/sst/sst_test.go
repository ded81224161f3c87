package sst_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"svpa/internal/charba"
	"svpa/internal/move"
	"svpa/internal/register"
	"svpa/internal/sst"
)

// upperSST accumulates the upper-cased input into register 0: a single
// state, self-looping on every byte, outputting register 0.
func upperSST(t *testing.T) *sst.SST[charba.Pred, charba.Func, byte] {
	t.Helper()
	alg := charba.New()
	upd := register.VariableUpdate[charba.Func, byte]{
		register.TokenSeq[charba.Func, byte]{
			register.Var[charba.Func, byte](0),
			register.Fn[charba.Func, byte](charba.Func{Kind: charba.ToUpper}),
		},
	}
	inputMoves := []move.InputMove[charba.Pred, register.VariableUpdate[charba.Func, byte]]{
		{From: 0, To: 0, Guard: alg.True(), Update: upd},
	}
	output := map[int]register.SimpleVariableUpdate[byte]{
		0: register.IdentityVarUp[register.NoFunc, byte](1),
	}
	built, err := sst.MkSST[charba.Pred, charba.Func, byte](inputMoves, nil, 0, 1, output, alg, false)
	require.NoError(t, err)
	return built
}

// bangSST reads exactly one byte b and outputs it followed by "!".
func bangSST(t *testing.T, b byte) *sst.SST[charba.Pred, charba.Func, byte] {
	t.Helper()
	alg := charba.New()
	update := register.VariableUpdate[charba.Func, byte]{
		register.TokenSeq[charba.Func, byte]{
			register.Const[charba.Func, byte](b), register.Const[charba.Func, byte]('!'),
		},
	}
	built, err := sst.SinglePredicate[charba.Pred, charba.Func, byte](charba.Char(b), update, alg)
	require.NoError(t, err)
	return built
}

// echoBangSST reads exactly one arbitrary byte and outputs it followed
// by "!", used to observe the order star/leftStar accumulate iterations
// in (bangSST can't, since every iteration produces identical output).
func echoBangSST(t *testing.T) *sst.SST[charba.Pred, charba.Func, byte] {
	t.Helper()
	alg := charba.New()
	update := register.VariableUpdate[charba.Func, byte]{
		register.TokenSeq[charba.Func, byte]{
			register.Fn[charba.Func, byte](charba.Func{Kind: charba.Identity}),
			register.Const[charba.Func, byte]('!'),
		},
	}
	built, err := sst.SinglePredicate[charba.Pred, charba.Func, byte](alg.True(), update, alg)
	require.NoError(t, err)
	return built
}

func TestOutputOn_SelfLoop(t *testing.T) {
	trans := upperSST(t)
	out, ok := trans.OutputOn([]byte("hello"))
	require.True(t, ok)
	require.Equal(t, []byte("HELLO"), out)

	out, ok = trans.OutputOn(nil)
	require.True(t, ok)
	require.Empty(t, out)
}

func TestOutputOn_NoRunRejects(t *testing.T) {
	trans := bangSST(t, 'a')
	_, ok := trans.OutputOn([]byte("b"))
	require.False(t, ok)
}

func TestCombine(t *testing.T) {
	a := upperSST(t)
	b := upperSST(t)
	combined, err := sst.Combine(a, b, nil)
	require.NoError(t, err)

	out, ok := combined.OutputOn([]byte("ab"))
	require.True(t, ok)
	require.Equal(t, []byte("ABAB"), out)
}

func TestConcatenate(t *testing.T) {
	a := bangSST(t, 'a')
	b := bangSST(t, 'b')
	cat, err := sst.Concatenate(a, b)
	require.NoError(t, err)
	require.False(t, cat.IsEpsilonFree())

	// OutputOn eliminates epsilon moves internally, so callers never
	// have to call RemoveEpsilonMoves themselves.
	out, ok := cat.OutputOn([]byte("ab"))
	require.True(t, ok)
	require.Equal(t, []byte("a!b!"), out)
}

func TestStarAndLeftStar(t *testing.T) {
	a := echoBangSST(t)

	star, err := a.Star()
	require.NoError(t, err)
	out, ok := star.OutputOn([]byte("ab"))
	require.True(t, ok)
	require.Equal(t, []byte("a!b!"), out)

	out, ok = star.OutputOn(nil)
	require.True(t, ok)
	require.Empty(t, out)

	leftStar, err := a.LeftStar()
	require.NoError(t, err)
	out, ok = leftStar.OutputOn([]byte("ab"))
	require.True(t, ok)
	require.Equal(t, []byte("b!a!"), out)
}

func TestUnion(t *testing.T) {
	a := bangSST(t, 'a')
	b := bangSST(t, 'b')
	u, err := sst.Union(a, b)
	require.NoError(t, err)

	out, ok := u.OutputOn([]byte("a"))
	require.True(t, ok)
	require.Equal(t, []byte("a!"), out)

	out, ok = u.OutputOn([]byte("b"))
	require.True(t, ok)
	require.Equal(t, []byte("b!"), out)

	_, ok = u.OutputOn([]byte("c"))
	require.False(t, ok)
}

func TestGetDomain(t *testing.T) {
	trans := bangSST(t, 'x')
	dom, err := trans.GetDomain()
	require.NoError(t, err)

	alg := dom.Algebra()
	require.True(t, alg.IsSatisfiedBy(dom.GetInputMovesFrom(dom.GetInitialState())[0].Guard, 'x'))
	require.False(t, dom.IsFinal(dom.GetInitialState()))
}

func TestRemoveUnreachableStates(t *testing.T) {
	alg := charba.New()
	inputMoves := []move.InputMove[charba.Pred, register.VariableUpdate[charba.Func, byte]]{
		{From: 0, To: 1, Guard: charba.Char('a'), Update: register.IdentityVarUp[charba.Func, byte](1)},
		// state 2 is never reachable from 0.
		{From: 2, To: 2, Guard: alg.True(), Update: register.IdentityVarUp[charba.Func, byte](1)},
	}
	output := map[int]register.SimpleVariableUpdate[byte]{
		1: register.IdentityVarUp[register.NoFunc, byte](1),
		2: register.IdentityVarUp[register.NoFunc, byte](1),
	}
	built, err := sst.MkSST[charba.Pred, charba.Func, byte](inputMoves, nil, 0, 1, output, alg, true)
	require.NoError(t, err)

	require.False(t, built.HasState(2))
}
