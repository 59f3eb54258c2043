package model

// Model is the set of libraries a generator works on.
type Model struct {
	Libraries []*Library
}

// Library groups named entities under one namespace. Members keep their
// declaration order.
type Library struct {
	Namespace     NamespaceURI
	Prefix        string
	Name          string
	Version       string
	Builtin       bool
	Members       []NamedEntity
	Contexts      []*Context
	Documentation *Documentation
}

// Context declares a context identifier usable by contextual facets,
// equivalents and examples.
type Context struct {
	ContextID          string
	ApplicationContext string
	Documentation      *Documentation
}

// AddMember appends a member and binds it to the library.
func (l *Library) AddMember(member NamedEntity) {
	if l == nil || member == nil {
		return
	}
	if n := namedOf(member); n != nil {
		n.Library = l
	}
	switch m := member.(type) {
	case *Service:
		for _, op := range m.Operations {
			op.Library = l
		}
	case *ExtensionPointFacet:
		m.Library = l
	}
	l.Members = append(l.Members, member)
}

// Member returns the library member with the given local name.
func (l *Library) Member(local string) (NamedEntity, bool) {
	if l == nil {
		return nil, false
	}
	for _, member := range l.Members {
		if member.Name().Local == local {
			return member, true
		}
	}
	return nil, false
}

// AddLibrary appends a library to the model.
func (m *Model) AddLibrary(lib *Library) {
	if m == nil || lib == nil {
		return
	}
	m.Libraries = append(m.Libraries, lib)
}

// Lookup finds a top-level member by qualified name.
func (m *Model) Lookup(name QName) (NamedEntity, bool) {
	if m == nil {
		return nil, false
	}
	for _, lib := range m.Libraries {
		if lib.Namespace != name.Namespace {
			continue
		}
		if member, ok := lib.Member(name.Local); ok {
			return member, true
		}
	}
	return nil, false
}

func namedOf(e NamedEntity) *Named {
	switch v := e.(type) {
	case *BusinessObject:
		return &v.Named
	case *CoreObject:
		return &v.Named
	case *ChoiceObject:
		return &v.Named
	case *Operation:
		return &v.Named
	case *Service:
		return &v.Named
	case *SimpleType:
		return &v.Named
	case *ValueWithAttributes:
		return &v.Named
	case *OpenEnumeration:
		return &v.Named
	case *ClosedEnumeration:
		return &v.Named
	case *Resource:
		return &v.Named
	case *LegacyElement:
		return &v.Named
	case *LegacyComplexType:
		return &v.Named
	case *LegacySimpleType:
		return &v.Named
	}
	return nil
}
