package svpa_test

import (
	"fmt"

	"svpa/internal/automaton"
	"svpa/internal/charba"
	"svpa/internal/move"
	"svpa/internal/register"
	"svpa/internal/sfa"
	"svpa/internal/sst"
)

// This example builds a deterministic SFA that matches shell-style
// wildcard patterns over bytes and runs it against a few inputs.
func Example_wildcardMatch() {
	pattern, err := automaton.NewWildcardSFA([]byte("go*.go"))
	if err != nil {
		panic(err)
	}
	for _, input := range []string{"go.go", "gopher.go", "gopher.txt"} {
		fmt.Printf("%s: %v\n", input, automaton.Accepts(pattern, input))
	}
	// Output:
	// go.go: true
	// gopher.go: true
	// gopher.txt: false
}

// This example combines two single-symbol SFAs with Union and
// determinizes the result to show the closure algebra composing.
func Example_sfaCombinators() {
	alg := charba.New()
	digits, _ := sfa.SinglePredicate[charba.Pred, charba.Func, byte](charba.Range('0', '9'), alg)
	letters, _ := sfa.SinglePredicate[charba.Pred, charba.Func, byte](charba.Range('a', 'z'), alg)

	either, _ := digits.Union(letters, nil)
	det, _ := either.Determinize(nil)

	fmt.Println(automaton.Accepts(det, "5"))
	fmt.Println(automaton.Accepts(det, "q"))
	fmt.Println(automaton.Accepts(det, "!"))
	// Output:
	// true
	// true
	// false
}

// This example builds a one-state SST that upper-cases its input, using
// a functional register update, and runs it end to end.
func Example_sstUpperCase() {
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
	upper, err := sst.MkSST[charba.Pred, charba.Func, byte](inputMoves, nil, 0, 1, output, alg, false)
	if err != nil {
		panic(err)
	}
	out, _ := upper.OutputOn([]byte("gophers"))
	fmt.Println(string(out))
	// Output:
	// GOPHERS
}
