package stream

import (
	"strings"
	"testing"
)

func TestBufferReadsWholeString(t *testing.T) {
	src := NewStringSource("hello")
	b := New(src)

	var got []byte
	for {
		c, ok := b.Current()
		if !ok {
			if !b.HasMore() {
				break
			}
			b.Fill()
			continue
		}
		got = append(got, c)
		b.Advance()
	}

	if string(got) != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestBufferRetreatRewindsOneByte(t *testing.T) {
	b := New(NewStringSource("ab"))

	c0, ok := b.Current()
	if !ok || c0 != 'a' {
		t.Fatalf("Current() = %q, %v, want 'a', true", c0, ok)
	}
	b.Advance()
	c1, ok := b.Current()
	if !ok || c1 != 'b' {
		t.Fatalf("Current() = %q, %v, want 'b', true", c1, ok)
	}

	b.Retreat()
	c0again, ok := b.Current()
	if !ok || c0again != 'a' {
		t.Fatalf("after Retreat, Current() = %q, %v, want 'a', true", c0again, ok)
	}
}

func TestBufferSpansMultipleHalfPages(t *testing.T) {
	// Force many Fill() cycles with a tiny capacity.
	pattern := "abcdefghijklmnopqrstuvwxyz"
	b := NewSize(NewStringSource(pattern), 8)

	var got []byte
	for {
		c, ok := b.Current()
		if !ok {
			if !b.HasMore() {
				break
			}
			b.Fill()
			continue
		}
		got = append(got, c)
		b.Advance()
	}

	if string(got) != pattern {
		t.Fatalf("got %q, want %q", got, pattern)
	}
}

func TestBufferEmptySource(t *testing.T) {
	b := New(NewStringSource(""))
	_, ok := b.Current()
	if ok {
		t.Fatal("Current() on empty source returned ok=true")
	}
	if b.HasMore() {
		t.Fatal("HasMore() on empty source returned true")
	}
}

func TestNewSizeRejectsBadCapacity(t *testing.T) {
	for _, cap := range []int{0, 1, 2, 3, 6, 255} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("capacity %d: expected panic", cap)
				}
			}()
			NewSize(NewStringSource("x"), cap)
		}()
	}
}

func TestReaderSource(t *testing.T) {
	src := NewReaderSource(strings.NewReader("hi there"))
	b := New(src)

	var got []byte
	for {
		c, ok := b.Current()
		if !ok {
			if !b.HasMore() {
				break
			}
			b.Fill()
			continue
		}
		got = append(got, c)
		b.Advance()
	}
	if string(got) != "hi there" {
		t.Fatalf("got %q, want %q", got, "hi there")
	}
}
