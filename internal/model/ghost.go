package model

// NewGhostFacet returns a transient facet standing for source on owner. The
// ghost copies the identity of source and declares no members. It is never
// attached to owner.
func NewGhostFacet(source *Facet, owner FacetOwner) *Facet {
	if source == nil {
		return nil
	}
	return &Facet{
		Kind:          source.Kind,
		Owner:         owner,
		Context:       source.Context,
		Label:         source.Label,
		Local:         source.Local,
		NotExtendable: source.NotExtendable,
		ghost:         true,
		ghostOf:       source,
	}
}

// NewGhostFacetOfKind returns a transient facet of a non-contextual kind for
// owners that never declared the slot.
func NewGhostFacetOfKind(kind FacetKind, owner FacetOwner) *Facet {
	return &Facet{Kind: kind, Owner: owner, ghost: true}
}

// NewGhostActionFacet returns a transient action facet standing for source
// on resource. Reference settings and base payload are copied verbatim.
func NewGhostActionFacet(source *ActionFacet, resource *Resource) *ActionFacet {
	if source == nil {
		return nil
	}
	return &ActionFacet{
		Owner:              resource,
		LocalName:          source.LocalName,
		ReferenceType:      source.ReferenceType,
		ReferenceFacetName: source.ReferenceFacetName,
		ReferenceRepeat:    source.ReferenceRepeat,
		BasePayload:        source.BasePayload,
		BasePayloadName:    source.BasePayloadName,
		Documentation:      source.Documentation,
		ghost:              true,
		ghostOf:            source,
	}
}

// NewGhostAlias returns a transient alias named local and bound to owner.
// source records the declared alias the ghost mirrors and may be nil.
func NewGhostAlias(local string, owner NamedEntity, source *Alias) *Alias {
	return &Alias{
		LocalName: local,
		Owner:     owner,
		ghost:     true,
		ghostOf:   source,
	}
}
