package automaton

import "testing"

func FuzzWildcardSFA(f *testing.F) {
	f.Add("hel*", "hello")
	f.Add("*orld", "world")
	f.Add("h?llo", "hello")
	f.Add("*", "anything")
	f.Add("", "")
	f.Add("a*b*c", "abc")
	f.Add("???", "abc")

	f.Fuzz(func(t *testing.T, pattern, input string) {
		if len(pattern) > MaxWildcardPatternLength {
			return
		}
		a, err := NewWildcardSFA([]byte(pattern))
		if err != nil {
			return // Invalid pattern is acceptable.
		}
		_ = Accepts(a, input) // Must not panic.
	})
}

func FuzzLevenshteinSFA(f *testing.F) {
	f.Add("hello", 1, "hallo")
	f.Add("cat", 0, "cat")
	f.Add("test", 2, "tset")
	f.Add("", 1, "a")

	f.Fuzz(func(t *testing.T, target string, maxDist int, input string) {
		if maxDist < 0 || maxDist > MaxEditDistance {
			return
		}
		if len(target) > 100 {
			return
		}
		a, err := NewLevenshteinSFA([]byte(target), maxDist)
		if err != nil {
			return
		}
		_ = Accepts(a, input)
	})
}

func FuzzPrefixSFA(f *testing.F) {
	f.Add("hel", "hello")
	f.Add("", "anything")
	f.Add("abc", "ab")

	f.Fuzz(func(t *testing.T, prefix, input string) {
		if len(prefix) > 1000 {
			return
		}
		a, err := NewPrefixSFA([]byte(prefix))
		if err != nil {
			return
		}
		_ = Accepts(a, input)
	})
}
