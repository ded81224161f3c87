package register

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyTo_ConstantAndVariable(t *testing.T) {
	// x0 := x0 . "!" , consuming input symbol 'z' unused.
	u := VariableUpdate[NoFunc, byte]{
		TokenSeq[NoFunc, byte]{Var[NoFunc, byte](0), Const[NoFunc, byte]('!')},
	}
	assignment := VariableAssignment[byte]{[]byte("hi")}
	out := ApplyTo[NoFunc, byte](u, assignment, 'z', func(NoFunc, byte) byte { panic("unused") })
	require.Equal(t, []byte("hi!"), out[0])
}

func TestApplyTo_FunctionToken(t *testing.T) {
	u := VariableUpdate[int, byte]{
		TokenSeq[int, byte]{Fn[int, byte](1)},
	}
	assignment := NewAssignment[byte](1)
	out := ApplyTo(u, assignment, 'a', func(f int, s byte) byte {
		require.Equal(t, 1, f)
		return s - 32 // toupper
	})
	require.Equal(t, []byte{'A'}, out[0])
}

func TestApplySimple(t *testing.T) {
	u := SimpleVariableUpdate[byte]{
		TokenSeq[NoFunc, byte]{Var[NoFunc, byte](1), Var[NoFunc, byte](0)},
	}
	assignment := VariableAssignment[byte]{[]byte("a"), []byte("b")}
	out := ApplySimple(u, assignment)
	require.Equal(t, []byte("ba"), out[0])
}

func TestAssignment_Clone_Independent(t *testing.T) {
	a := VariableAssignment[byte]{[]byte("abc")}
	clone := a.Clone()
	clone[0][0] = 'z'
	require.Equal(t, byte('a'), a[0][0])
}
