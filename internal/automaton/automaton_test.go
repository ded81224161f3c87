package automaton

import "testing"

// --- Prefix SFA tests ---

func TestPrefixSFA_Accepts(t *testing.T) {
	a, err := NewPrefixSFA([]byte("hel"))
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range []string{"hel", "hell", "hello", "help", "helmet"} {
		if !Accepts(a, s) {
			t.Errorf("prefix(hel) should accept %q", s)
		}
	}
}

func TestPrefixSFA_Rejects(t *testing.T) {
	a, err := NewPrefixSFA([]byte("hel"))
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range []string{"he", "h", "world", "", "HEL"} {
		if Accepts(a, s) {
			t.Errorf("prefix(hel) should reject %q", s)
		}
	}
}

func TestPrefixSFA_EmptyPrefix(t *testing.T) {
	a, err := NewPrefixSFA([]byte(""))
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range []string{"", "a", "hello", "anything"} {
		if !Accepts(a, s) {
			t.Errorf("prefix('') should accept %q", s)
		}
	}
}

// --- Wildcard SFA tests ---

func TestWildcardSFA_Star(t *testing.T) {
	a, err := NewWildcardSFA([]byte("h*o"))
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range []string{"ho", "heo", "hello", "hallo"} {
		if !Accepts(a, s) {
			t.Errorf("wildcard(h*o) should accept %q", s)
		}
	}
	for _, s := range []string{"h", "hello!", "world", "o"} {
		if Accepts(a, s) {
			t.Errorf("wildcard(h*o) should reject %q", s)
		}
	}
}

func TestWildcardSFA_Question(t *testing.T) {
	a, err := NewWildcardSFA([]byte("h?llo"))
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range []string{"hallo", "hello", "hxllo"} {
		if !Accepts(a, s) {
			t.Errorf("wildcard(h?llo) should accept %q", s)
		}
	}
	for _, s := range []string{"hllo", "heello", "llo"} {
		if Accepts(a, s) {
			t.Errorf("wildcard(h?llo) should reject %q", s)
		}
	}
}

func TestWildcardSFA_LeadingStar(t *testing.T) {
	a, err := NewWildcardSFA([]byte("*tion"))
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range []string{"tion", "action", "section", "mention"} {
		if !Accepts(a, s) {
			t.Errorf("wildcard(*tion) should accept %q", s)
		}
	}
	for _, s := range []string{"tio", "actions", ""} {
		if Accepts(a, s) {
			t.Errorf("wildcard(*tion) should reject %q", s)
		}
	}
}

func TestWildcardSFA_AllStar(t *testing.T) {
	a, err := NewWildcardSFA([]byte("*"))
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range []string{"", "a", "hello", "anything"} {
		if !Accepts(a, s) {
			t.Errorf("wildcard(*) should accept %q", s)
		}
	}
}

func TestWildcardSFA_ExactMatch(t *testing.T) {
	a, err := NewWildcardSFA([]byte("hello"))
	if err != nil {
		t.Fatal(err)
	}

	if !Accepts(a, "hello") {
		t.Error("should accept exact match")
	}
	if Accepts(a, "hell") {
		t.Error("should reject partial match")
	}
	if Accepts(a, "helloo") {
		t.Error("should reject longer string")
	}
}

func TestWildcardSFA_TooLong(t *testing.T) {
	pattern := make([]byte, MaxWildcardPatternLength+1)
	for i := range pattern {
		pattern[i] = 'a'
	}
	if _, err := NewWildcardSFA(pattern); err == nil {
		t.Error("expected error for pattern exceeding max length")
	}
}

// --- Levenshtein SFA tests ---

func TestLevenshteinSFA_ExactMatch(t *testing.T) {
	a, err := NewLevenshteinSFA([]byte("hello"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if !Accepts(a, "hello") {
		t.Error("should accept exact match (0 edits)")
	}
}

func TestLevenshteinSFA_Substitution(t *testing.T) {
	a, err := NewLevenshteinSFA([]byte("hello"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if !Accepts(a, "hallo") {
		t.Error("should accept 1 substitution")
	}
}

func TestLevenshteinSFA_Insertion(t *testing.T) {
	a, err := NewLevenshteinSFA([]byte("hello"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if !Accepts(a, "helloo") {
		t.Error("should accept 1 insertion at end")
	}
}

func TestLevenshteinSFA_Deletion(t *testing.T) {
	a, err := NewLevenshteinSFA([]byte("hello"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if !Accepts(a, "hllo") {
		t.Error("should accept 1 deletion")
	}
}

func TestLevenshteinSFA_Rejects(t *testing.T) {
	a, err := NewLevenshteinSFA([]byte("hello"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if Accepts(a, "world") {
		t.Error("should reject 'world' (4 edits)")
	}
}

func TestLevenshteinSFA_Distance0(t *testing.T) {
	a, err := NewLevenshteinSFA([]byte("cat"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if !Accepts(a, "cat") {
		t.Error("should accept exact match with distance 0")
	}
	if Accepts(a, "bat") {
		t.Error("should reject 1 edit with distance 0")
	}
}

func TestLevenshteinSFA_MaxDistanceExceeded(t *testing.T) {
	if _, err := NewLevenshteinSFA([]byte("hello"), 3); err == nil {
		t.Error("expected error for distance > 2")
	}
}
