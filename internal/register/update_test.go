package register

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentityVarUp(t *testing.T) {
	u := IdentityVarUp[NoFunc, byte](3)
	require.Len(t, u, 3)
	for i, seq := range u {
		require.Equal(t, TokenSeq[NoFunc, byte]{Var[NoFunc, byte](i)}, seq)
	}
}

func TestEmptyVarUp(t *testing.T) {
	u := EmptyVarUp[NoFunc, byte](2)
	require.Len(t, u, 2)
	require.Nil(t, u[0])
	require.Nil(t, u[1])
}

func TestLiftToNVars(t *testing.T) {
	u := IdentityVarUp[NoFunc, byte](2)
	lifted := LiftToNVars(u, 4)
	require.Len(t, lifted, 4)
	require.Equal(t, u[0], lifted[0])
	require.Equal(t, u[1], lifted[1])
	require.Nil(t, lifted[2])
	require.Nil(t, lifted[3])
}

func TestLiftToNVars_PanicsOnShrink(t *testing.T) {
	u := IdentityVarUp[NoFunc, byte](3)
	require.Panics(t, func() { LiftToNVars(u, 1) })
}

func TestRenameVars(t *testing.T) {
	u := VariableUpdate[NoFunc, byte]{
		TokenSeq[NoFunc, byte]{Var[NoFunc, byte](0), Const[NoFunc, byte]('x')},
	}
	renamed := RenameVars(u, map[int]int{0: 5})
	require.Equal(t, 5, renamed[0][0].Variable)
	require.Equal(t, byte('x'), renamed[0][1].Symbol)
}

func TestValidate(t *testing.T) {
	ok := IdentityVarUp[NoFunc, byte](2)
	require.NoError(t, Validate(ok, 2))

	wrongLen := IdentityVarUp[NoFunc, byte](2)
	require.ErrorIs(t, Validate(wrongLen, 3), ErrMalformed)

	outOfRange := VariableUpdate[NoFunc, byte]{
		TokenSeq[NoFunc, byte]{Var[NoFunc, byte](7)},
	}
	require.ErrorIs(t, Validate(outOfRange, 1), ErrMalformed)
}
