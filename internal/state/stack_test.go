package state

import (
	"errors"
	"testing"
)

func TestStackOrder(t *testing.T) {
	s := NewStack[string](2)
	s.Push("a")
	s.Push("b")
	if top, ok := s.Peek(); !ok || top != "b" {
		t.Fatalf("Peek() = %q, %v", top, ok)
	}
	if got, _ := s.Pop(); got != "b" {
		t.Fatalf("Pop() = %q, want b", got)
	}
	if got, _ := s.Pop(); got != "a" {
		t.Fatalf("Pop() = %q, want a", got)
	}
	if _, ok := s.Pop(); ok {
		t.Fatalf("Pop() on empty stack ok = true")
	}
}

func TestStackWithin(t *testing.T) {
	var s Stack[int]
	errStop := errors.New("stop")
	err := s.Within(1, func() error {
		if top, _ := s.Peek(); top != 1 {
			t.Fatalf("Peek() inside Within = %d", top)
		}
		return errStop
	})
	if !errors.Is(err, errStop) {
		t.Fatalf("Within() error = %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("Len() after Within = %d", s.Len())
	}
}

func TestStackNil(t *testing.T) {
	var s *Stack[int]
	if s.Len() != 0 {
		t.Fatalf("nil Len() != 0")
	}
	if _, ok := s.Peek(); ok {
		t.Fatalf("nil Peek() ok = true")
	}
	s.Reset()
}
