package typewalk

// Next returns the parent of current and whether one exists.
type Next[T comparable] func(current T) (T, bool)

// Walk traverses a single-parent chain from start until visit returns false,
// next reports no parent, or a node is reached a second time.
func Walk[T comparable](start T, next Next[T], visit func(T) bool) {
	if visit == nil {
		return
	}
	seen := make(map[T]bool)
	current, ok := start, true
	for ok {
		if seen[current] {
			return
		}
		seen[current] = true
		if !visit(current) {
			return
		}
		if next == nil {
			return
		}
		current, ok = next(current)
	}
}

// Chain collects the nodes visited by Walk, starting with start.
func Chain[T comparable](start T, next Next[T]) []T {
	var chain []T
	Walk(start, next, func(current T) bool {
		chain = append(chain, current)
		return true
	})
	return chain
}
