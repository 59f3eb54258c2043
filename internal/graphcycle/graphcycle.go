// Package graphcycle finds cycles in directed graphs given as neighbor
// functions.
package graphcycle

import (
	"fmt"
	"strings"
)

type visitState uint8

const (
	stateVisiting visitState = iota + 1
	stateDone
)

// MissingPolicy controls behavior when a referenced node is missing.
type MissingPolicy uint8

const (
	MissingPolicyIgnore MissingPolicy = iota
	MissingPolicyError
)

// CycleError reports a cycle. Path starts and ends at Key.
type CycleError[K comparable] struct {
	Key  K
	Path []K
}

// Error returns the error string.
func (e CycleError[K]) Error() string {
	if len(e.Path) == 0 {
		return "cycle detected"
	}
	parts := make([]string, 0, len(e.Path))
	for _, k := range e.Path {
		parts = append(parts, fmt.Sprint(k))
	}
	return "cycle detected: " + strings.Join(parts, " -> ")
}

// MissingError reports a missing referenced node.
type MissingError[K comparable] struct {
	From K
	Key  K
}

// Error returns the error string.
func (e MissingError[K]) Error() string {
	return fmt.Sprintf("missing node %v referenced from %v", e.Key, e.From)
}

// Config configures generic cycle detection traversal.
type Config[K comparable] struct {
	Exists  func(K) bool
	Next    func(K) ([]K, error)
	Starts  []K
	Missing MissingPolicy
}

// Detect walks directed edges from Starts and reports the first cycle or
// traversal error.
func Detect[K comparable](cfg Config[K]) error {
	w, err := newWalker(cfg, false)
	if err != nil {
		return err
	}
	return w.run()
}

// Cycles walks directed edges from Starts and returns every cycle reached,
// each reported once in discovery order. Missing nodes are reported as an
// error only under MissingPolicyError.
func Cycles[K comparable](cfg Config[K]) ([]CycleError[K], error) {
	w, err := newWalker(cfg, true)
	if err != nil {
		return nil, err
	}
	if err := w.run(); err != nil {
		return w.cycles, err
	}
	return w.cycles, nil
}

type walker[K comparable] struct {
	cfg     Config[K]
	states  map[K]visitState
	path    []K
	collect bool
	cycles  []CycleError[K]
}

func newWalker[K comparable](cfg Config[K], collect bool) (*walker[K], error) {
	if cfg.Next == nil {
		return nil, fmt.Errorf("cycle detect: next function is nil")
	}
	return &walker[K]{
		cfg:     cfg,
		states:  make(map[K]visitState, len(cfg.Starts)),
		collect: collect,
	}, nil
}

func (w *walker[K]) run() error {
	var zero K
	for _, start := range w.cfg.Starts {
		if err := w.visit(start, zero, false); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker[K]) visit(key, from K, hasFrom bool) error {
	switch w.states[key] {
	case stateVisiting:
		cycle := CycleError[K]{Key: key, Path: w.cyclePath(key)}
		if !w.collect {
			return cycle
		}
		w.cycles = append(w.cycles, cycle)
		return nil
	case stateDone:
		return nil
	}

	exists := true
	if w.cfg.Exists != nil {
		exists = w.cfg.Exists(key)
	}
	if !exists {
		if w.cfg.Missing == MissingPolicyIgnore {
			return nil
		}
		if !hasFrom {
			var zero K
			from = zero
		}
		return MissingError[K]{From: from, Key: key}
	}

	w.states[key] = stateVisiting
	w.path = append(w.path, key)
	neighbors, err := w.cfg.Next(key)
	if err != nil {
		return err
	}
	for _, next := range neighbors {
		if err := w.visit(next, key, true); err != nil {
			return err
		}
	}
	w.path = w.path[:len(w.path)-1]
	w.states[key] = stateDone
	return nil
}

func (w *walker[K]) cyclePath(key K) []K {
	for i, k := range w.path {
		if k == key {
			out := make([]K, 0, len(w.path)-i+1)
			out = append(out, w.path[i:]...)
			return append(out, key)
		}
	}
	return []K{key}
}
