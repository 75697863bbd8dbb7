package main

import "testing"

func TestRunMatchMode(t *testing.T) {
	if err := run("a+", []string{"aaa", "b"}, "match"); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunSearchMode(t *testing.T) {
	if err := run("a*", []string{"aaab"}, "search"); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunBadPatternFails(t *testing.T) {
	if err := run("(unbalanced", []string{"x"}, "match"); err == nil {
		t.Fatal("want an error compiling an unbalanced pattern")
	}
}

func TestRunUnknownModeFails(t *testing.T) {
	if err := run("a", []string{"a"}, "bogus"); err == nil {
		t.Fatal("want an error on an unknown mode")
	}
}
