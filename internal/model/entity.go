package model

// NamedEntity is any entity addressable by a qualified name. The set of
// implementations is closed to this package.
type NamedEntity interface {
	Name() QName
	OwningLibrary() *Library
	namedEntity()
}

// FacetOwner is implemented by *BusinessObject, *CoreObject, *ChoiceObject,
// *Operation and contextual *Facet values.
type FacetOwner interface {
	NamedEntity
	facetOwner()
}

// AbstractFacet is implemented by every facet-shaped entity: *Facet,
// *SimpleFacet, *ListFacet and *ExtensionPointFacet.
type AbstractFacet interface {
	NamedEntity
	FacetKind() FacetKind
	// FacetOwner returns nil for extension point facets.
	FacetOwner() FacetOwner
	FacetAliases() []*Alias
}

// Named carries the name and library shared by top-level library members.
type Named struct {
	LocalName     string
	Library       *Library
	Documentation *Documentation
}

// Name returns the qualified name of the entity.
func (n *Named) Name() QName {
	if n == nil {
		return QName{}
	}
	var ns NamespaceURI
	if n.Library != nil {
		ns = n.Library.Namespace
	}
	return QName{Namespace: ns, Local: n.LocalName}
}

// OwningLibrary returns the library the entity is declared in.
func (n *Named) OwningLibrary() *Library {
	if n == nil {
		return nil
	}
	return n.Library
}

func as[T any](value any) (T, bool) {
	v, ok := value.(T)
	return v, ok
}

// AsBusinessObject performs a type assertion to *BusinessObject.
func AsBusinessObject(e NamedEntity) (*BusinessObject, bool) {
	return as[*BusinessObject](e)
}

// AsCoreObject performs a type assertion to *CoreObject.
func AsCoreObject(e NamedEntity) (*CoreObject, bool) {
	return as[*CoreObject](e)
}

// AsChoiceObject performs a type assertion to *ChoiceObject.
func AsChoiceObject(e NamedEntity) (*ChoiceObject, bool) {
	return as[*ChoiceObject](e)
}

// AsFacet performs a type assertion to *Facet.
func AsFacet(e NamedEntity) (*Facet, bool) {
	return as[*Facet](e)
}

// AsAlias performs a type assertion to *Alias.
func AsAlias(e NamedEntity) (*Alias, bool) {
	return as[*Alias](e)
}

// AsFacetOwner performs a type assertion to FacetOwner.
func AsFacetOwner(e NamedEntity) (FacetOwner, bool) {
	return as[FacetOwner](e)
}

// AsAbstractFacet performs a type assertion to AbstractFacet.
func AsAbstractFacet(e NamedEntity) (AbstractFacet, bool) {
	return as[AbstractFacet](e)
}

// IsNil reports whether e is nil or a typed nil pointer.
func IsNil(e NamedEntity) bool {
	if e == nil {
		return true
	}
	switch v := e.(type) {
	case *BusinessObject:
		return v == nil
	case *CoreObject:
		return v == nil
	case *ChoiceObject:
		return v == nil
	case *Operation:
		return v == nil
	case *Facet:
		return v == nil
	case *SimpleFacet:
		return v == nil
	case *ListFacet:
		return v == nil
	case *ExtensionPointFacet:
		return v == nil
	case *Alias:
		return v == nil
	case *SimpleType:
		return v == nil
	case *ValueWithAttributes:
		return v == nil
	case *OpenEnumeration:
		return v == nil
	case *ClosedEnumeration:
		return v == nil
	case *Service:
		return v == nil
	case *Resource:
		return v == nil
	case *ActionFacet:
		return v == nil
	case *LegacyElement:
		return v == nil
	case *LegacyComplexType:
		return v == nil
	case *LegacySimpleType:
		return v == nil
	}
	return false
}
