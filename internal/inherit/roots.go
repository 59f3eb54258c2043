package inherit

import "github.com/jacoelho/otm/internal/model"

// Root identifies the top of an inheritance hierarchy. Owner is the root
// facet owner; Facet is the facet identity path below it, empty for owners.
type Root struct {
	Owner model.QName
	Facet string
}

// InheritanceRoot returns the root of the hierarchy t belongs to. Facets,
// list facets, aliases and extensible facet owners have a root; every other
// entity reports false.
func InheritanceRoot(t model.NamedEntity) (Root, bool) {
	return inheritanceRoot(t, 0)
}

// maxNesting bounds alias and nested facet recursion on malformed graphs.
const maxNesting = 64

func inheritanceRoot(t model.NamedEntity, depth int) (Root, bool) {
	if depth > maxNesting || model.IsNil(t) {
		return Root{}, false
	}
	switch e := t.(type) {
	case *model.Alias:
		return inheritanceRoot(e.Owner, depth+1)
	case *model.BusinessObject, *model.CoreObject, *model.ChoiceObject, *model.Operation:
		owner := e.(model.FacetOwner)
		return Root{Owner: ExtensionRoot(owner).Name()}, true
	case *model.Facet:
		if parent, ok := e.Owner.(*model.Facet); ok {
			root, ok := inheritanceRoot(parent, depth+1)
			if !ok {
				return Root{}, false
			}
			root.Facet += "/" + e.Identity()
			return root, true
		}
		if model.IsNil(e.Owner) {
			return Root{}, false
		}
		return Root{Owner: ExtensionRoot(e.Owner).Name(), Facet: e.Identity()}, true
	case *model.SimpleFacet:
		if e.Owner == nil {
			return Root{}, false
		}
		return Root{Owner: ExtensionRoot(e.Owner).Name(), Facet: model.KindSimple.Identity()}, true
	case *model.ListFacet:
		if e.Owner == nil || model.IsNil(e.Item) {
			return Root{}, false
		}
		return Root{
			Owner: ExtensionRoot(e.Owner).Name(),
			Facet: e.Item.FacetKind().Identity() + model.ListSuffix,
		}, true
	}
	return Root{}, false
}
