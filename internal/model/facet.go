package model

// Facet is a member-bearing sub-structure of a facet owner. Contextual facets
// are themselves facet owners and may nest further contextual facets of
// their own kind.
type Facet struct {
	Kind          FacetKind
	Owner         FacetOwner
	Context       string
	Label         string
	Attributes    []*Attribute
	Properties    []*Property
	Indicators    []*Indicator
	Aliases       []*Alias
	Contextual    []*Facet
	Local         bool
	NotExtendable bool
	Documentation *Documentation
	Equivalents   []*Equivalent

	ghost   bool
	ghostOf *Facet
}

// SimpleFacet is the simple-valued facet of a core object.
type SimpleFacet struct {
	Owner         *CoreObject
	Type          NamedEntity
	TypeName      QName
	Aliases       []*Alias
	Documentation *Documentation
	Equivalents   []*Equivalent
	Examples      []*Example
}

// ListFacet is the repeating form of a core object facet.
type ListFacet struct {
	Owner   *CoreObject
	Item    AbstractFacet
	Aliases []*Alias
}

// ExtensionPointFacet contributes members to a facet declared elsewhere.
// Its Extension points at the extended facet.
type ExtensionPointFacet struct {
	Library       *Library
	Extension     *Extension
	Attributes    []*Attribute
	Properties    []*Property
	Indicators    []*Indicator
	Documentation *Documentation
}

func (*Facet) namedEntity()               {}
func (*SimpleFacet) namedEntity()         {}
func (*ListFacet) namedEntity()           {}
func (*ExtensionPointFacet) namedEntity() {}

func (*Facet) facetOwner() {}

// Identity returns the facet identity used for matching across owners.
func (f *Facet) Identity() string {
	if f == nil {
		return ""
	}
	return ComposeIdentity(f.Kind, f.Context, f.Label)
}

// LocalName returns the derived facet name.
func (f *Facet) LocalName() string {
	if f == nil {
		return ""
	}
	if IsNil(f.Owner) {
		return f.Identity()
	}
	if _, ok := f.Owner.(*Operation); ok {
		return f.Owner.Name().Local + f.Identity()
	}
	return f.Owner.Name().Local + "_" + f.Identity()
}

// Name returns the qualified facet name.
func (f *Facet) Name() QName {
	if f == nil {
		return QName{}
	}
	var ns NamespaceURI
	if !IsNil(f.Owner) {
		ns = f.Owner.Name().Namespace
	}
	return QName{Namespace: ns, Local: f.LocalName()}
}

// OwningLibrary returns the library of the facet owner.
func (f *Facet) OwningLibrary() *Library {
	if f == nil || IsNil(f.Owner) {
		return nil
	}
	return f.Owner.OwningLibrary()
}

// FacetKind returns the facet kind.
func (f *Facet) FacetKind() FacetKind {
	if f == nil {
		return KindUnknown
	}
	return f.Kind
}

// FacetOwner returns the owner of the facet.
func (f *Facet) FacetOwner() FacetOwner {
	if f == nil {
		return nil
	}
	return f.Owner
}

// FacetAliases returns the aliases declared on the facet.
func (f *Facet) FacetAliases() []*Alias {
	if f == nil {
		return nil
	}
	return f.Aliases
}

// IsContextual reports whether the facet kind is contextual.
func (f *Facet) IsContextual() bool {
	return f != nil && f.Kind.IsContextual()
}

// IsGhost reports whether the facet was synthesized during resolution.
func (f *Facet) IsGhost() bool {
	return f != nil && f.ghost
}

// GhostOf returns the ancestor facet a ghost stands for.
func (f *Facet) GhostOf() *Facet {
	if f == nil {
		return nil
	}
	return f.ghostOf
}

// HasDeclaredMembers reports whether the facet declares any member locally.
func (f *Facet) HasDeclaredMembers() bool {
	return f != nil && (len(f.Attributes) > 0 || len(f.Properties) > 0 || len(f.Indicators) > 0)
}

// Name returns the qualified simple facet name.
func (f *SimpleFacet) Name() QName {
	if f == nil || f.Owner == nil {
		return QName{}
	}
	owner := f.Owner.Name()
	return QName{Namespace: owner.Namespace, Local: owner.Local + "_" + KindSimple.Identity()}
}

// OwningLibrary returns the library of the owning core object.
func (f *SimpleFacet) OwningLibrary() *Library {
	if f == nil || f.Owner == nil {
		return nil
	}
	return f.Owner.Library
}

// FacetKind returns KindSimple.
func (f *SimpleFacet) FacetKind() FacetKind {
	return KindSimple
}

// FacetOwner returns the owning core object.
func (f *SimpleFacet) FacetOwner() FacetOwner {
	if f == nil || f.Owner == nil {
		return nil
	}
	return f.Owner
}

// FacetAliases returns the aliases declared on the simple facet.
func (f *SimpleFacet) FacetAliases() []*Alias {
	if f == nil {
		return nil
	}
	return f.Aliases
}

// Name returns the qualified list facet name.
func (f *ListFacet) Name() QName {
	if f == nil || IsNil(f.Item) {
		return QName{}
	}
	item := f.Item.Name()
	return QName{Namespace: item.Namespace, Local: item.Local + ListSuffix}
}

// OwningLibrary returns the library of the owning core object.
func (f *ListFacet) OwningLibrary() *Library {
	if f == nil || f.Owner == nil {
		return nil
	}
	return f.Owner.Library
}

// FacetKind returns the kind of the item facet.
func (f *ListFacet) FacetKind() FacetKind {
	if f == nil || IsNil(f.Item) {
		return KindUnknown
	}
	return f.Item.FacetKind()
}

// FacetOwner returns the owning core object.
func (f *ListFacet) FacetOwner() FacetOwner {
	if f == nil || f.Owner == nil {
		return nil
	}
	return f.Owner
}

// FacetAliases returns the aliases declared on the list facet.
func (f *ListFacet) FacetAliases() []*Alias {
	if f == nil {
		return nil
	}
	return f.Aliases
}

// ExtendedFacet returns the facet this extension point contributes to.
func (f *ExtensionPointFacet) ExtendedFacet() AbstractFacet {
	if f == nil || f.Extension == nil || IsNil(f.Extension.Extends) {
		return nil
	}
	target, _ := AsAbstractFacet(f.Extension.Extends)
	return target
}

// Name returns the qualified extension point facet name.
func (f *ExtensionPointFacet) Name() QName {
	if f == nil {
		return QName{}
	}
	var ns NamespaceURI
	if f.Library != nil {
		ns = f.Library.Namespace
	}
	local := "ExtensionPoint"
	if target := f.ExtendedFacet(); target != nil {
		local += "_" + target.Name().Local
	} else if f.Extension != nil && f.Extension.ExtendsName.Local != "" {
		local += "_" + f.Extension.ExtendsName.Local
	}
	return QName{Namespace: ns, Local: local}
}

// OwningLibrary returns the library the extension point is declared in.
func (f *ExtensionPointFacet) OwningLibrary() *Library {
	if f == nil {
		return nil
	}
	return f.Library
}

// FacetKind returns the kind of the extended facet.
func (f *ExtensionPointFacet) FacetKind() FacetKind {
	if target := f.ExtendedFacet(); target != nil {
		return target.FacetKind()
	}
	return KindUnknown
}

// FacetOwner returns nil: extension points are not owned by a facet owner.
func (f *ExtensionPointFacet) FacetOwner() FacetOwner {
	return nil
}

// FacetAliases returns nil: extension points carry no aliases.
func (f *ExtensionPointFacet) FacetAliases() []*Alias {
	return nil
}
