package compile

import (
	"testing"

	"github.com/llregex/llregex/nfa"
)

// runNFA is a tiny anchored-match helper used only to keep these tests
// readable; the real simulator lives in the vm package.
func runNFA(n *nfa.NFA, s string) bool {
	frontier := []nfa.StateID{n.Start()}
	closure := epsClose(n, frontier)
	for i := 0; i < len(s); i++ {
		b := s[i]
		var next []nfa.StateID
		for _, id := range closure {
			st := n.State(id)
			if st == nil {
				continue
			}
			if tgt, ok := st.Step(b); ok {
				next = append(next, tgt)
			}
		}
		if len(next) == 0 {
			return false
		}
		closure = epsClose(n, next)
	}
	for _, id := range closure {
		if n.IsAccept(id) {
			return true
		}
	}
	return false
}

func epsClose(n *nfa.NFA, seed []nfa.StateID) []nfa.StateID {
	seen := map[nfa.StateID]bool{}
	var out []nfa.StateID
	var stack []nfa.StateID
	for _, s := range seed {
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
		if st := n.State(id); st != nil {
			stack = append(stack, st.Eps()...)
		}
	}
	return out
}

func TestCompileLiteral(t *testing.T) {
	n, err := Compile("abc")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !runNFA(n, "abc") {
		t.Error("want match on \"abc\"")
	}
	if runNFA(n, "abd") {
		t.Error("want no match on \"abd\"")
	}
}

func TestCompileAlternation(t *testing.T) {
	n, err := Compile("cat|dog")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for _, s := range []string{"cat", "dog"} {
		if !runNFA(n, s) {
			t.Errorf("want match on %q", s)
		}
	}
	if runNFA(n, "cow") {
		t.Error("want no match on \"cow\"")
	}
}

func TestCompileStarPlusQuestion(t *testing.T) {
	cases := []struct {
		pattern string
		match   string
		want    bool
	}{
		{"a*", "", true},
		{"a*", "aaaa", true},
		{"a+", "", false},
		{"a+", "a", true},
		{"a?", "", true},
		{"a?", "a", true},
		{"a?", "aa", false},
	}
	for _, c := range cases {
		n, err := Compile(c.pattern)
		if err != nil {
			t.Fatalf("Compile(%q): %v", c.pattern, err)
		}
		if got := runNFA(n, c.match); got != c.want {
			t.Errorf("%q on %q = %v, want %v", c.pattern, c.match, got, c.want)
		}
	}
}

func TestCompileDotAndClass(t *testing.T) {
	n, err := Compile("a.c")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !runNFA(n, "abc") || !runNFA(n, "aZc") {
		t.Error("want '.' to match any byte")
	}

	n, err = Compile("[a-c]")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for _, b := range []string{"a", "b", "c"} {
		if !runNFA(n, b) {
			t.Errorf("want [a-c] to match %q", b)
		}
	}
	if runNFA(n, "d") {
		t.Error("want [a-c] to reject \"d\"")
	}
}

func TestCompileNegatedClass(t *testing.T) {
	n, err := Compile("[^a-c]")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if runNFA(n, "a") {
		t.Error("want [^a-c] to reject \"a\"")
	}
	if !runNFA(n, "z") {
		t.Error("want [^a-c] to accept \"z\"")
	}
}

func TestCompileExactRepeat(t *testing.T) {
	n, err := Compile("(ab[e-h]){3,3}")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !runNFA(n, "abeabfabh") {
		t.Error("want exact-3 repeat to match")
	}
	if runNFA(n, "abeabf") {
		t.Error("want exact-3 repeat to reject a short input")
	}
	if runNFA(n, "abeabfabhabe") {
		t.Error("want exact-3 repeat to reject a longer input")
	}
}

func TestCompileBoundedRepeat(t *testing.T) {
	n, err := Compile("a{2,4}")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for _, c := range []struct {
		s    string
		want bool
	}{
		{"a", false},
		{"aa", true},
		{"aaa", true},
		{"aaaa", true},
		{"aaaaa", false},
	} {
		if got := runNFA(n, c.s); got != c.want {
			t.Errorf("a{2,4} on %q = %v, want %v", c.s, got, c.want)
		}
	}
}

func TestCompileUnboundedRepeatFrom(t *testing.T) {
	n, err := Compile("a{2,}")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if runNFA(n, "a") {
		t.Error("want a{2,} to reject a single 'a'")
	}
	if !runNFA(n, "aa") || !runNFA(n, "aaaaaa") {
		t.Error("want a{2,} to accept 2 or more 'a's")
	}
}

func TestCompileEscapes(t *testing.T) {
	for _, m := range []byte("()*|+?.{},[]-^\\") {
		pattern := "\\" + string(m)
		n, err := Compile(pattern)
		if err != nil {
			t.Fatalf("Compile(%q): %v", pattern, err)
		}
		if !runNFA(n, string(m)) {
			t.Errorf("%q: want match on the literal byte %q", pattern, m)
		}
	}
}

func TestCompileUnbalancedParenFails(t *testing.T) {
	_, err := Compile("(ab|(c+d|[e-h]+z)e")
	if err == nil {
		t.Fatal("want a parse error on an unbalanced '('")
	}
}

func TestCompileBadClassRangeFails(t *testing.T) {
	_, err := Compile("[z-a]")
	if err == nil {
		t.Fatal("want a parse error on a backwards class range")
	}
	var pe *ParseError
	if !errorsAsParseError(err, &pe) {
		t.Fatalf("want *ParseError, got %T: %v", err, err)
	}
}

func errorsAsParseError(err error, target **ParseError) bool {
	if pe, ok := err.(*ParseError); ok {
		*target = pe
		return true
	}
	return false
}

func TestCompileScenarioThree(t *testing.T) {
	n, err := Compile("[^a-zA-Z0-9]*([x-zep]|RE)+")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !runNFA(n, "$&^#xxyzyyeREREREepyyp") {
		t.Error("want scenario 3's input to match")
	}
}
