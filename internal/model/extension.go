package model

// Extension is the single "extends" edge from an entity to its parent.
type Extension struct {
	Owner         NamedEntity
	Extends       NamedEntity
	ExtendsName   QName
	Documentation *Documentation
}

// Target returns the resolved parent, or nil if the edge is dangling.
func (e *Extension) Target() NamedEntity {
	if e == nil || IsNil(e.Extends) {
		return nil
	}
	return e.Extends
}

// ExtensionOf returns the extension edge declared by entity, if any.
func ExtensionOf(entity NamedEntity) *Extension {
	switch e := entity.(type) {
	case *BusinessObject:
		if e != nil {
			return e.Extension
		}
	case *CoreObject:
		if e != nil {
			return e.Extension
		}
	case *ChoiceObject:
		if e != nil {
			return e.Extension
		}
	case *Operation:
		if e != nil {
			return e.Extension
		}
	case *OpenEnumeration:
		if e != nil {
			return e.Extension
		}
	case *ClosedEnumeration:
		if e != nil {
			return e.Extension
		}
	case *Resource:
		if e != nil {
			return e.Extension
		}
	case *ExtensionPointFacet:
		if e != nil {
			return e.Extension
		}
	}
	return nil
}
