package graphcycle

import (
	"errors"
	"testing"
)

func TestDetectCycle(t *testing.T) {
	graph := map[int][]int{
		1: {2},
		2: {3},
		3: {1},
	}
	err := Detect(Config[int]{
		Starts:  []int{1},
		Missing: MissingPolicyError,
		Exists: func(n int) bool {
			_, ok := graph[n]
			return ok
		},
		Next: func(n int) ([]int, error) {
			return graph[n], nil
		},
	})
	if err == nil {
		t.Fatalf("Detect() expected cycle error")
	}
	var cycleError CycleError[int]
	if !errors.As(err, &cycleError) {
		t.Fatalf("Detect() error = %T, want CycleError[int]", err)
	}
}

func TestDetectMissingPolicy(t *testing.T) {
	graph := map[int][]int{
		1: {2},
	}
	err := Detect(Config[int]{
		Starts:  []int{1},
		Missing: MissingPolicyError,
		Exists: func(n int) bool {
			_, ok := graph[n]
			return ok
		},
		Next: func(n int) ([]int, error) {
			return graph[n], nil
		},
	})
	if err == nil {
		t.Fatalf("Detect() expected missing error")
	}
	var missing MissingError[int]
	ok := errors.As(err, &missing)
	if !ok {
		t.Fatalf("Detect() error = %T, want MissingError[int]", err)
	}
	if missing.From != 1 || missing.Key != 2 {
		t.Fatalf("missing = %+v, want from=1 key=2", missing)
	}

	err = Detect(Config[int]{
		Starts:  []int{1},
		Missing: MissingPolicyIgnore,
		Exists: func(n int) bool {
			_, ok := graph[n]
			return ok
		},
		Next: func(n int) ([]int, error) {
			return graph[n], nil
		},
	})
	if err != nil {
		t.Fatalf("Detect() with MissingIgnore error = %v", err)
	}
}

func TestDetectNilNext(t *testing.T) {
	err := Detect(Config[int]{Starts: []int{1}})
	if err == nil {
		t.Fatal("Detect() error = nil, want error")
	}
}

func TestDetectCyclePath(t *testing.T) {
	graph := map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": {"b"},
	}
	err := Detect(Config[string]{
		Starts: []string{"a"},
		Next: func(n string) ([]string, error) {
			return graph[n], nil
		},
	})
	var cycle CycleError[string]
	if !errors.As(err, &cycle) {
		t.Fatalf("Detect() error = %v, want CycleError", err)
	}
	if got, want := cycle.Error(), "cycle detected: b -> c -> b"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestCyclesCollectsEveryCycle(t *testing.T) {
	graph := map[string][]string{
		"a": {"b"},
		"b": {"a"},
		"c": {"c"},
		"d": {"a"},
	}
	cycles, err := Cycles(Config[string]{
		Starts: []string{"a", "c", "d"},
		Next: func(n string) ([]string, error) {
			return graph[n], nil
		},
	})
	if err != nil {
		t.Fatalf("Cycles() error = %v", err)
	}
	if len(cycles) != 2 {
		t.Fatalf("Cycles() = %v, want 2 cycles", cycles)
	}
	if cycles[0].Key != "a" || len(cycles[0].Path) != 3 {
		t.Fatalf("first cycle = %+v", cycles[0])
	}
	if cycles[1].Key != "c" || len(cycles[1].Path) != 2 {
		t.Fatalf("second cycle = %+v", cycles[1])
	}
}

func TestCyclesAcyclic(t *testing.T) {
	graph := map[int][]int{1: {2}, 2: {3}}
	cycles, err := Cycles(Config[int]{
		Starts: []int{1, 2, 3},
		Next: func(n int) ([]int, error) {
			return graph[n], nil
		},
	})
	if err != nil || len(cycles) != 0 {
		t.Fatalf("Cycles() = %v, %v, want none", cycles, err)
	}
}
