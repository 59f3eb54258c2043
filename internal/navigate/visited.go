package navigate

import "github.com/jacoelho/otm/internal/model"

// visitedSet records nodes reached during one traversal. Declared nodes are
// keyed by pointer; ghosts are keyed by what they stand for so that two
// ghosts for the same inherited structure count as one node.
type visitedSet map[any]bool

func (s visitedSet) add(node any) bool {
	key := nodeKey(node)
	if s[key] {
		return false
	}
	s[key] = true
	return true
}

func (s visitedSet) has(node any) bool {
	return s[nodeKey(node)]
}

type ghostFacetKey struct {
	owner    any
	identity string
}

type ghostActionKey struct {
	owner *model.Resource
	name  string
}

type ghostAliasKey struct {
	owner any
	name  string
}

func nodeKey(node any) any {
	switch v := node.(type) {
	case *model.Facet:
		if v.IsGhost() {
			return ghostFacetKey{owner: nodeKey(v.Owner), identity: v.Identity()}
		}
	case *model.ActionFacet:
		if v.IsGhost() {
			return ghostActionKey{owner: v.Owner, name: v.LocalName}
		}
	case *model.Alias:
		if v.IsGhost() {
			return ghostAliasKey{owner: nodeKey(v.Owner), name: v.LocalName}
		}
	}
	return node
}
