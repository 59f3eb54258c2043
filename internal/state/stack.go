// Package state holds small containers for traversal state.
package state

// Stack is a LIFO stack. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

// NewStack creates a stack with an optional capacity hint.
func NewStack[T any](capacity int) *Stack[T] {
	if capacity <= 0 {
		return &Stack[T]{}
	}
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push adds value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.items = append(s.items, value)
}

// Pop removes and returns the top value.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s == nil || len(s.items) == 0 {
		return zero, false
	}
	last := len(s.items) - 1
	value := s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]
	return value, true
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if s == nil || len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Within pushes value, runs fn and pops value again, returning fn's error.
func (s *Stack[T]) Within(value T, fn func() error) error {
	s.Push(value)
	defer s.Pop()
	return fn()
}

// Len reports the stack depth.
func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Reset empties the stack and keeps its capacity.
func (s *Stack[T]) Reset() {
	if s == nil {
		return
	}
	clear(s.items)
	s.items = s.items[:0]
}
