// Package navigate walks the entity graph depth first and reports every
// reached node to a visitor.Visitor. A navigator visits each node at most
// once and must not be reused for an unrelated traversal.
package navigate

import (
	"github.com/jacoelho/otm/internal/facets"
	"github.com/jacoelho/otm/internal/model"
	"github.com/jacoelho/otm/internal/visitor"
)

// Structural visits every declared child of every entity: library members,
// facets, aliases, members, documentation, equivalents and examples. It
// never synthesizes ghosts.
type Structural struct {
	v       visitor.Visitor
	visited visitedSet
}

// NewStructural returns a structural navigator reporting to v.
func NewStructural(v visitor.Visitor) *Structural {
	if v == nil {
		v = visitor.Adapter{}
	}
	return &Structural{v: v, visited: make(visitedSet)}
}

// Reset forgets every visited node.
func (n *Structural) Reset() {
	n.visited = make(visitedSet)
}

// NavigateModel visits every library of m in order.
func (n *Structural) NavigateModel(m *model.Model) error {
	if m == nil {
		return nil
	}
	for _, lib := range m.Libraries {
		n.library(lib)
	}
	return nil
}

// NavigateLibrary visits lib and its members in declaration order.
func (n *Structural) NavigateLibrary(lib *model.Library) error {
	n.library(lib)
	return nil
}

// NavigateEntity visits e and its declared children.
func (n *Structural) NavigateEntity(e model.NamedEntity) error {
	n.entity(e)
	return nil
}

func (n *Structural) library(lib *model.Library) {
	if lib == nil || !n.visited.add(lib) || !n.v.VisitLibrary(lib) {
		return
	}
	n.documentation(nil, lib.Documentation)
	for _, ctx := range lib.Contexts {
		if ctx != nil && n.visited.add(ctx) && n.v.VisitContext(ctx) {
			n.documentation(nil, ctx.Documentation)
		}
	}
	for _, member := range lib.Members {
		n.entity(member)
	}
}

func (n *Structural) entity(e model.NamedEntity) {
	if model.IsNil(e) || !n.visited.add(e) {
		return
	}
	switch t := e.(type) {
	case *model.SimpleType:
		if n.v.VisitSimpleType(t) {
			n.documentation(t, t.Documentation)
			n.equivalents(t, t.Equivalents)
			n.examples(t, t.Examples)
		}
	case *model.ValueWithAttributes:
		if n.v.VisitValueWithAttributes(t) {
			n.documentation(t, t.Documentation)
			n.attributes(t.Attributes)
			n.indicators(t.Indicators)
			n.equivalents(t, t.Equivalents)
			n.examples(t, t.Examples)
		}
	case *model.OpenEnumeration:
		if n.v.VisitOpenEnumeration(t) {
			n.documentation(t, t.Documentation)
			n.enumValues(t, t.Values)
			n.extension(t, t.Extension)
		}
	case *model.ClosedEnumeration:
		if n.v.VisitClosedEnumeration(t) {
			n.documentation(t, t.Documentation)
			n.enumValues(t, t.Values)
			n.extension(t, t.Extension)
		}
	case *model.BusinessObject:
		if n.v.VisitBusinessObject(t) {
			n.documentation(t, t.Documentation)
			n.aliases(t.Aliases)
			n.facets(t)
			n.extension(t, t.Extension)
			n.equivalents(t, t.Equivalents)
		}
	case *model.CoreObject:
		if n.v.VisitCoreObject(t) {
			n.documentation(t, t.Documentation)
			n.aliases(t.Aliases)
			for _, role := range t.Roles {
				if role != nil && n.visited.add(role) && n.v.VisitRole(role) {
					n.documentation(t, role.Documentation)
				}
			}
			n.entity(t.Simple)
			n.facets(t)
			for _, list := range facets.ListFacets(t) {
				n.entity(list)
			}
			n.extension(t, t.Extension)
			n.equivalents(t, t.Equivalents)
		}
	case *model.ChoiceObject:
		if n.v.VisitChoiceObject(t) {
			n.documentation(t, t.Documentation)
			n.aliases(t.Aliases)
			n.facets(t)
			n.extension(t, t.Extension)
			n.equivalents(t, t.Equivalents)
		}
	case *model.Service:
		if n.v.VisitService(t) {
			n.documentation(t, t.Documentation)
			for _, op := range t.Operations {
				n.entity(op)
			}
			n.equivalents(t, t.Equivalents)
		}
	case *model.Operation:
		if n.v.VisitOperation(t) {
			n.documentation(t, t.Documentation)
			n.facets(t)
			n.extension(t, t.Extension)
			n.equivalents(t, t.Equivalents)
		}
	case *model.Facet:
		if n.v.VisitFacet(t) {
			n.documentation(t, t.Documentation)
			n.aliases(t.Aliases)
			n.attributes(t.Attributes)
			n.properties(t.Properties)
			n.indicators(t.Indicators)
			n.facets(t)
			n.equivalents(t, t.Equivalents)
		}
	case *model.SimpleFacet:
		if n.v.VisitSimpleFacet(t) {
			n.documentation(t, t.Documentation)
			n.aliases(t.Aliases)
			n.equivalents(t, t.Equivalents)
			n.examples(t, t.Examples)
		}
	case *model.ListFacet:
		if n.v.VisitListFacet(t) {
			n.aliases(t.Aliases)
		}
	case *model.ExtensionPointFacet:
		if n.v.VisitExtensionPointFacet(t) {
			n.documentation(t, t.Documentation)
			n.extension(t, t.Extension)
			n.attributes(t.Attributes)
			n.properties(t.Properties)
			n.indicators(t.Indicators)
		}
	case *model.Alias:
		n.v.VisitAlias(t)
	case *model.Resource:
		if n.v.VisitResource(t) {
			n.resource(t)
		}
	case *model.ActionFacet:
		if n.v.VisitActionFacet(t) {
			n.documentation(t, t.Documentation)
		}
	case *model.LegacyElement:
		n.v.VisitLegacyElement(t)
	case *model.LegacyComplexType:
		n.v.VisitLegacyComplexType(t)
	case *model.LegacySimpleType:
		n.v.VisitLegacySimpleType(t)
	}
}

func (n *Structural) facets(owner model.FacetOwner) {
	for _, facet := range facets.AllFacets(owner) {
		n.entity(facet)
	}
}

func (n *Structural) resource(r *model.Resource) {
	n.documentation(r, r.Documentation)
	n.extension(r, r.Extension)
	for _, ref := range r.ParentRefs {
		if ref != nil && n.visited.add(ref) && n.v.VisitResourceParentRef(ref) {
			n.documentation(r, ref.Documentation)
		}
	}
	for _, group := range r.ParamGroups {
		if group == nil || !n.visited.add(group) || !n.v.VisitParamGroup(group) {
			continue
		}
		n.documentation(r, group.Documentation)
		for _, param := range group.Parameters {
			if param == nil || !n.visited.add(param) || !n.v.VisitParameter(param) {
				continue
			}
			n.documentation(r, param.Documentation)
			n.equivalents(r, param.Equivalents)
			n.examples(r, param.Examples)
		}
	}
	for _, facet := range r.ActionFacets {
		n.entity(facet)
	}
	for _, action := range r.Actions {
		if action == nil || !n.visited.add(action) || !n.v.VisitAction(action) {
			continue
		}
		n.documentation(r, action.Documentation)
		if req := action.Request; req != nil && n.visited.add(req) && n.v.VisitActionRequest(req) {
			n.documentation(r, req.Documentation)
		}
		for _, resp := range action.Responses {
			if resp != nil && n.visited.add(resp) && n.v.VisitActionResponse(resp) {
				n.documentation(r, resp.Documentation)
			}
		}
	}
}

func (n *Structural) aliases(list []*model.Alias) {
	for _, alias := range list {
		n.entity(alias)
	}
}

func (n *Structural) attributes(list []*model.Attribute) {
	for _, attr := range list {
		if attr == nil || !n.visited.add(attr) || !n.v.VisitAttribute(attr) {
			continue
		}
		n.documentation(attr.Owner, attr.Documentation)
		n.equivalents(attr.Owner, attr.Equivalents)
		n.examples(attr.Owner, attr.Examples)
	}
}

func (n *Structural) properties(list []*model.Property) {
	for _, prop := range list {
		if prop == nil || !n.visited.add(prop) || !n.v.VisitProperty(prop) {
			continue
		}
		n.documentation(prop.Owner, prop.Documentation)
		n.equivalents(prop.Owner, prop.Equivalents)
		n.examples(prop.Owner, prop.Examples)
	}
}

func (n *Structural) indicators(list []*model.Indicator) {
	for _, ind := range list {
		if ind == nil || !n.visited.add(ind) || !n.v.VisitIndicator(ind) {
			continue
		}
		n.documentation(ind.Owner, ind.Documentation)
		n.equivalents(ind.Owner, ind.Equivalents)
	}
}

func (n *Structural) enumValues(owner model.NamedEntity, values []*model.EnumValue) {
	for _, value := range values {
		if value == nil || !n.visited.add(value) || !n.v.VisitEnumValue(value) {
			continue
		}
		n.documentation(owner, value.Documentation)
		n.equivalents(owner, value.Equivalents)
	}
}

func (n *Structural) extension(owner model.NamedEntity, ext *model.Extension) {
	if ext == nil || !n.visited.add(ext) || !n.v.VisitExtension(ext) {
		return
	}
	n.documentation(owner, ext.Documentation)
}

func (n *Structural) documentation(owner model.NamedEntity, doc *model.Documentation) {
	if doc == nil || !n.visited.add(doc) {
		return
	}
	n.v.VisitDocumentation(owner, doc)
}

func (n *Structural) equivalents(owner model.NamedEntity, list []*model.Equivalent) {
	for _, eq := range list {
		if eq != nil && n.visited.add(eq) {
			n.v.VisitEquivalent(owner, eq)
		}
	}
}

func (n *Structural) examples(owner model.NamedEntity, list []*model.Example) {
	for _, ex := range list {
		if ex != nil && n.visited.add(ex) {
			n.v.VisitExample(owner, ex)
		}
	}
}
