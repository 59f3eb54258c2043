package model

// Alias is an alternate reference name for a facet owner, facet or list
// facet. It owns no structural content.
type Alias struct {
	LocalName string
	Owner     NamedEntity

	ghost   bool
	ghostOf *Alias
}

func (*Alias) namedEntity() {}

// Name returns the qualified alias name in the owner's namespace.
func (a *Alias) Name() QName {
	if a == nil {
		return QName{}
	}
	var ns NamespaceURI
	if !IsNil(a.Owner) {
		ns = a.Owner.Name().Namespace
	}
	return QName{Namespace: ns, Local: a.LocalName}
}

// OwningLibrary returns the library of the alias owner.
func (a *Alias) OwningLibrary() *Library {
	if a == nil || IsNil(a.Owner) {
		return nil
	}
	return a.Owner.OwningLibrary()
}

// IsGhost reports whether the alias was synthesized during resolution.
func (a *Alias) IsGhost() bool {
	return a != nil && a.ghost
}

// GhostOf returns the declared alias a ghost alias was derived from, if any.
func (a *Alias) GhostOf() *Alias {
	if a == nil {
		return nil
	}
	return a.ghostOf
}

// FindAlias returns the alias with the given local name among aliases.
func FindAlias(aliases []*Alias, local string) *Alias {
	for _, alias := range aliases {
		if alias != nil && alias.LocalName == local {
			return alias
		}
	}
	return nil
}
