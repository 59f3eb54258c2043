package loader

import (
	otmerrors "github.com/jacoelho/otm/errors"
	"github.com/jacoelho/otm/internal/facets"
	"github.com/jacoelho/otm/internal/model"
)

// reference is a pending edge from a declared entity to a named target.
type reference struct {
	scope   *scope
	ref     Ref
	subject string
	field   string
	accept  func(model.NamedEntity) bool
	bind    func(model.NamedEntity, model.QName)
}

// require records a mandatory reference.
func (b *builder) require(s *scope, ref Ref, subject, field string, accept func(model.NamedEntity) bool, bind func(model.NamedEntity, model.QName)) {
	if ref.IsZero() {
		b.errorf(otmerrors.ErrInvalidDocument, b.pos(s, ref), subject, "%s has no %s", subject, field)
		return
	}
	b.optional(s, ref, subject, field, accept, bind)
}

// optional records a reference that may be absent.
func (b *builder) optional(s *scope, ref Ref, subject, field string, accept func(model.NamedEntity) bool, bind func(model.NamedEntity, model.QName)) {
	if ref.IsZero() {
		return
	}
	b.refs = append(b.refs, reference{
		scope:   s,
		ref:     ref,
		subject: subject,
		field:   field,
		accept:  accept,
		bind:    bind,
	})
}

// extends records the extension edge of entity. The edge exists even when
// its target cannot be resolved.
func (b *builder) extends(s *scope, entity model.NamedEntity, ref Ref, subject string, accept func(model.NamedEntity) bool, slot **model.Extension) {
	if ref.IsZero() {
		return
	}
	ext := &model.Extension{Owner: entity, ExtendsName: model.QName{Local: ref.Local}}
	*slot = ext
	b.optional(s, ref, subject, "extends", accept, func(e model.NamedEntity, q model.QName) {
		ext.Extends, ext.ExtendsName = e, q
	})
}

func (b *builder) pos(s *scope, ref Ref) Pos {
	pos := ref.Pos
	if pos.File == "" && s != nil {
		pos.File = s.doc.File
	}
	return pos
}

// qualify turns a reference into a qualified name. The second result is
// false when the prefix is unknown.
func (b *builder) qualify(s *scope, ref Ref) (model.QName, bool) {
	switch {
	case ref.Namespace != "":
		return model.QName{Namespace: model.NamespaceURI(ref.Namespace), Local: ref.Local}, true
	case ref.Prefix != "":
		if ns, ok := s.imports[ref.Prefix]; ok {
			return model.QName{Namespace: ns, Local: ref.Local}, true
		}
		if ref.Prefix == s.library.Prefix {
			return model.QName{Namespace: s.library.Namespace, Local: ref.Local}, true
		}
		for _, lib := range b.model.Libraries {
			if lib.Prefix == ref.Prefix {
				return model.QName{Namespace: lib.Namespace, Local: ref.Local}, true
			}
		}
		return model.QName{Local: ref.Local}, false
	default:
		return model.QName{Namespace: s.library.Namespace, Local: ref.Local}, true
	}
}

func (b *builder) resolve(s *scope, ref Ref) (model.NamedEntity, model.QName, bool) {
	q, known := b.qualify(s, ref)
	if !known {
		return nil, q, false
	}
	if e, ok := b.index.lookup(q); ok {
		return e, q, true
	}
	if ref.Prefix == "" && ref.Namespace == "" {
		builtin := model.QName{Namespace: XSDNamespace, Local: ref.Local}
		if e, ok := b.index.lookup(builtin); ok {
			return e, builtin, true
		}
	}
	return nil, q, false
}

func (b *builder) link() {
	for _, r := range b.refs {
		target, q, ok := b.resolve(r.scope, r.ref)
		pos := b.pos(r.scope, r.ref)
		if !ok {
			b.unresolved(pos, r.subject, "%s %s does not name a known entity", r.field, r.ref)
			if b.config.AllowUnresolved {
				r.bind(nil, q)
			}
			continue
		}
		if !r.accept(target) {
			b.errorf(otmerrors.ErrKindMismatch, pos, r.subject, "%s %s is a %s", r.field, r.ref, describe(target))
			continue
		}
		r.bind(target, target.Name())
	}
}

// unresolved reports a dangling reference, as a warning when the loader
// tolerates them.
func (b *builder) unresolved(pos Pos, subject, format string, args ...any) {
	if b.config.AllowUnresolved {
		b.warnf(otmerrors.ErrUnresolvedReference, pos, subject, format, args...)
		return
	}
	b.errorf(otmerrors.ErrUnresolvedReference, pos, subject, format, args...)
}

func is[T model.NamedEntity](e model.NamedEntity) bool {
	_, ok := e.(T)
	return ok
}

func acceptAny(model.NamedEntity) bool { return true }

func acceptSimpleParent(e model.NamedEntity) bool {
	switch e.(type) {
	case *model.SimpleType, *model.LegacySimpleType, *model.OpenEnumeration, *model.ClosedEnumeration:
		return true
	}
	return false
}

func acceptValueParent(e model.NamedEntity) bool {
	return acceptSimpleParent(e) || is[*model.ValueWithAttributes](e)
}

func acceptExtendedFacet(e model.NamedEntity) bool {
	switch e.(type) {
	case *model.Facet, *model.SimpleFacet, *model.ListFacet:
		return true
	}
	return false
}

func acceptBasePayload(e model.NamedEntity) bool {
	return is[*model.CoreObject](e) || is[*model.ChoiceObject](e)
}

func describe(e model.NamedEntity) string {
	switch e.(type) {
	case *model.BusinessObject:
		return "business object"
	case *model.CoreObject:
		return "core object"
	case *model.ChoiceObject:
		return "choice object"
	case *model.Operation:
		return "operation"
	case *model.Service:
		return "service"
	case *model.Facet:
		return "facet"
	case *model.SimpleFacet:
		return "simple facet"
	case *model.ListFacet:
		return "list facet"
	case *model.ExtensionPointFacet:
		return "extension point facet"
	case *model.Alias:
		return "alias"
	case *model.SimpleType, *model.LegacySimpleType:
		return "simple type"
	case *model.ValueWithAttributes:
		return "value with attributes"
	case *model.OpenEnumeration:
		return "open enumeration"
	case *model.ClosedEnumeration:
		return "closed enumeration"
	case *model.Resource:
		return "resource"
	case *model.ActionFacet:
		return "action facet"
	}
	return "named entity"
}

// entityIndex maps qualified names to every addressable entity: library
// members, operations, facets, list facets, aliases and action facets.
type entityIndex struct {
	byName map[model.QName]model.NamedEntity
	order  []model.NamedEntity
}

func (idx *entityIndex) lookup(q model.QName) (model.NamedEntity, bool) {
	e, ok := idx.byName[q]
	return e, ok
}

func (b *builder) buildIndex() *entityIndex {
	idx := &entityIndex{byName: make(map[model.QName]model.NamedEntity)}
	for _, lib := range b.model.Libraries {
		file := ""
		if s := b.scopes[lib]; s != nil {
			file = s.doc.File
		}
		add := func(e model.NamedEntity) {
			if model.IsNil(e) {
				return
			}
			q := e.Name()
			if existing, ok := idx.byName[q]; ok {
				if existing != e {
					b.errorf(otmerrors.ErrDuplicateMember, Pos{File: file}, q.String(), "name %s is used by a %s and a %s", q.Local, describe(existing), describe(e))
				}
				return
			}
			idx.byName[q] = e
			idx.order = append(idx.order, e)
		}
		for _, member := range lib.Members {
			switch m := member.(type) {
			case *model.ExtensionPointFacet:
				// Named after the facet they extend; never a reference target.
				continue
			case *model.Service:
				add(m)
				for _, op := range m.Operations {
					add(op)
					indexFacets(add, op)
				}
			case model.FacetOwner:
				add(m)
				indexFacets(add, m)
			case *model.Resource:
				add(m)
				for _, af := range m.ActionFacets {
					add(af)
				}
			default:
				add(m)
			}
		}
	}
	return idx
}

func indexFacets(add func(model.NamedEntity), owner model.FacetOwner) {
	for _, alias := range model.OwnerAliases(owner) {
		add(alias)
	}
	if core, ok := owner.(*model.CoreObject); ok {
		add(core.Simple)
		if core.Simple != nil {
			for _, alias := range core.Simple.Aliases {
				add(alias)
			}
		}
	}
	for _, f := range facets.AllFacets(owner) {
		add(f)
		if f.IsContextual() {
			indexFacets(add, f)
			continue
		}
		for _, alias := range f.Aliases {
			add(alias)
		}
	}
	if core, ok := owner.(*model.CoreObject); ok {
		for _, list := range facets.ListFacets(core) {
			add(list)
			for _, alias := range list.Aliases {
				add(alias)
			}
		}
	}
}
