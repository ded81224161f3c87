package register

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeWith_SubstitutesVariables(t *testing.T) {
	// x0 := "a" . x1, x1 := "b"
	simple := SimpleVariableUpdate[byte]{
		TokenSeq[NoFunc, byte]{Const[NoFunc, byte]('a'), Var[NoFunc, byte](1)},
		TokenSeq[NoFunc, byte]{Const[NoFunc, byte]('b')},
	}
	// next: x0 := x0 . x1
	next := VariableUpdate[NoFunc, byte]{
		TokenSeq[NoFunc, byte]{Var[NoFunc, byte](0), Var[NoFunc, byte](1)},
		TokenSeq[NoFunc, byte]{},
	}

	composed := ComposeWith(simple, next)
	require.Len(t, composed, 2)
	// x0's new value expands to: (a . x1) . (b) = a, x1, b
	require.Equal(t, TokenSeq[NoFunc, byte]{
		Const[NoFunc, byte]('a'), Var[NoFunc, byte](1), Const[NoFunc, byte]('b'),
	}, composed[0])
}

func TestComposeWith_PreservesFunctionTokens(t *testing.T) {
	simple := SimpleVariableUpdate[byte]{
		TokenSeq[NoFunc, byte]{Const[NoFunc, byte]('a')},
	}
	next := VariableUpdate[int, byte]{
		TokenSeq[int, byte]{Fn[int, byte](1), Var[int, byte](0)},
	}
	composed := ComposeWith(simple, next)
	require.Equal(t, TokenKind(TokenFunction), composed[0][0].Kind)
	require.Equal(t, TokenKind(TokenConstant), composed[0][1].Kind)
	require.Equal(t, byte('a'), composed[0][1].Symbol)
}

func TestComposeSimple_Identity(t *testing.T) {
	id := IdentityVarUp[NoFunc, byte](2)
	u := SimpleVariableUpdate[byte]{
		TokenSeq[NoFunc, byte]{Const[NoFunc, byte]('x')},
		TokenSeq[NoFunc, byte]{Var[NoFunc, byte](0)},
	}
	require.Equal(t, u, ComposeSimple(id, u))
	require.Equal(t, u, ComposeSimple(u, id))
}

func TestCombineUpdates(t *testing.T) {
	uA := VariableUpdate[NoFunc, byte]{TokenSeq[NoFunc, byte]{Var[NoFunc, byte](0)}}
	uB := VariableUpdate[NoFunc, byte]{TokenSeq[NoFunc, byte]{Var[NoFunc, byte](0)}}
	renameA := map[int]int{0: 0}
	renameB := map[int]int{0: 1}

	combined := CombineUpdates(renameA, renameB, uA, uB, 2)
	require.Len(t, combined, 2)
	require.Equal(t, 0, combined[0][0].Variable)
	require.Equal(t, 1, combined[1][0].Variable)
}

func TestCombineOutputUpdates(t *testing.T) {
	outA := SimpleVariableUpdate[byte]{TokenSeq[NoFunc, byte]{Const[NoFunc, byte]('a')}}
	outB := SimpleVariableUpdate[byte]{TokenSeq[NoFunc, byte]{Const[NoFunc, byte]('b')}}
	renameA := map[int]int{0: 0}
	renameB := map[int]int{0: 1}

	combined := CombineOutputUpdates(renameA, renameB, outA, outB, 2)
	require.Equal(t, TokenSeq[NoFunc, byte]{
		Const[NoFunc, byte]('a'), Const[NoFunc, byte]('b'),
	}, combined[0])
}
