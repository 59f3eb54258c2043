package navigate

import (
	"fmt"

	"github.com/jacoelho/otm/internal/aliases"
	"github.com/jacoelho/otm/internal/content"
	"github.com/jacoelho/otm/internal/facets"
	"github.com/jacoelho/otm/internal/ghost"
	"github.com/jacoelho/otm/internal/inherit"
	"github.com/jacoelho/otm/internal/model"
	"github.com/jacoelho/otm/internal/state"
	"github.com/jacoelho/otm/internal/substitute"
	"github.com/jacoelho/otm/internal/visitor"
)

// Options configures a dependency navigator.
type Options struct {
	// Checker enables substitution of element types that have no content.
	// Schema navigators fall back to content.Default when it is nil.
	Checker content.Checker
	// SkipGhosts disables navigation of inherited contextual facets that
	// an owner does not declare.
	SkipGhosts bool
}

// Dependency visits the part of the graph a generator needs to resolve
// types: assigned types of inherited members, facet owners, extended
// parents, resource subjects and payloads. Facet members are the inherited
// ones, not the locally declared ones.
type Dependency struct {
	v       visitor.Visitor
	opts    Options
	visited visitedSet
	pruned  visitedSet
	// descents records (entity, alias) pairs already navigated under an
	// alias context; navigated records aliases whose owner was walked.
	descents  map[descentKey]bool
	navigated visitedSet
	// context is nil unless the navigator threads alias context.
	context *state.Stack[*model.Alias]
}

type descentKey struct {
	entity any
	alias  any
}

// NewDependency returns a general-purpose dependency navigator.
func NewDependency(v visitor.Visitor, opts Options) *Dependency {
	if v == nil {
		v = visitor.Adapter{}
	}
	return &Dependency{
		v:         v,
		opts:      opts,
		visited:   make(visitedSet),
		pruned:    make(visitedSet),
		descents:  make(map[descentKey]bool),
		navigated: make(visitedSet),
	}
}

// NewSchemaDependency returns a dependency navigator for schema output. While
// an alias is navigated, every step also visits the alias that corresponds
// to the entity reached, so aliases of facets and owners are discovered in
// the same pass.
func NewSchemaDependency(v visitor.Visitor, opts Options) *Dependency {
	if opts.Checker == nil {
		opts.Checker = content.Default
	}
	n := NewDependency(v, opts)
	n.context = state.NewStack[*model.Alias](8)
	return n
}

// Reset forgets every visited node.
func (n *Dependency) Reset() {
	n.visited = make(visitedSet)
	n.pruned = make(visitedSet)
	n.descents = make(map[descentKey]bool)
	n.navigated = make(visitedSet)
	n.context.Reset()
}

// NavigateModel navigates the members of every library of m in order.
func (n *Dependency) NavigateModel(m *model.Model) error {
	if m == nil {
		return nil
	}
	for _, lib := range m.Libraries {
		if err := n.NavigateLibrary(lib); err != nil {
			return err
		}
	}
	return nil
}

// NavigateLibrary navigates the members of lib in declaration order.
func (n *Dependency) NavigateLibrary(lib *model.Library) error {
	if lib == nil || !n.visited.add(lib) || !n.v.VisitLibrary(lib) {
		return nil
	}
	for _, member := range lib.Members {
		if err := n.NavigateEntity(member); err != nil {
			return err
		}
	}
	return nil
}

// NavigateEntity navigates e and its dependencies.
func (n *Dependency) NavigateEntity(e model.NamedEntity) error {
	return n.navigate(e)
}

func (n *Dependency) currentAlias() *model.Alias {
	if n.context == nil {
		return nil
	}
	alias, _ := n.context.Peek()
	return alias
}

// enter reports whether the children of e are navigated. The visitor is
// called once per entity; an entity reached again under a new alias context
// is navigated again so that corresponding aliases are found.
func (n *Dependency) enter(e model.NamedEntity, visit func() bool) bool {
	alias := n.currentAlias()
	if n.visited.add(e) {
		if !visit() {
			n.pruned.add(e)
			return false
		}
		if alias != nil {
			n.descents[descentKey{entity: nodeKey(e), alias: nodeKey(alias)}] = true
		}
		return true
	}
	if alias == nil || n.pruned.has(e) {
		return false
	}
	key := descentKey{entity: nodeKey(e), alias: nodeKey(alias)}
	if n.descents[key] {
		return false
	}
	n.descents[key] = true
	return true
}

// step navigates child, threading the alias that corresponds to it.
func (n *Dependency) step(child model.NamedEntity) error {
	if model.IsNil(child) {
		return nil
	}
	if n.context == nil {
		return n.navigate(child)
	}
	next := aliases.Corresponding(n.currentAlias(), child)
	if next != nil {
		if n.visited.add(next) && !n.v.VisitAlias(next) {
			n.pruned.add(next)
		}
		if n.pruned.has(next) {
			next = nil
		}
	}
	return n.context.Within(next, func() error {
		return n.navigate(child)
	})
}

func (n *Dependency) navigate(e model.NamedEntity) error {
	if model.IsNil(e) {
		return nil
	}
	switch t := e.(type) {
	case *model.Alias:
		return n.alias(t)
	case *model.SimpleType:
		if n.enter(t, func() bool { return n.v.VisitSimpleType(t) }) {
			return n.step(t.Parent)
		}
	case *model.ValueWithAttributes:
		if n.enter(t, func() bool { return n.v.VisitValueWithAttributes(t) }) {
			return n.valueWithAttributes(t)
		}
	case *model.OpenEnumeration:
		if n.enter(t, func() bool { return n.v.VisitOpenEnumeration(t) }) {
			return n.extension(t.Extension)
		}
	case *model.ClosedEnumeration:
		if n.enter(t, func() bool { return n.v.VisitClosedEnumeration(t) }) {
			return n.extension(t.Extension)
		}
	case *model.BusinessObject:
		if n.enter(t, func() bool { return n.v.VisitBusinessObject(t) }) {
			return n.owner(t, t.Aliases, t.Extension)
		}
	case *model.CoreObject:
		if n.enter(t, func() bool { return n.v.VisitCoreObject(t) }) {
			return n.coreObject(t)
		}
	case *model.ChoiceObject:
		if n.enter(t, func() bool { return n.v.VisitChoiceObject(t) }) {
			return n.owner(t, t.Aliases, t.Extension)
		}
	case *model.Service:
		if n.enter(t, func() bool { return n.v.VisitService(t) }) {
			for _, op := range t.Operations {
				if err := n.step(op); err != nil {
					return err
				}
			}
		}
	case *model.Operation:
		if n.enter(t, func() bool { return n.v.VisitOperation(t) }) {
			return n.owner(t, nil, t.Extension)
		}
	case *model.Facet:
		if n.enter(t, func() bool { return n.v.VisitFacet(t) }) {
			return n.facet(t)
		}
	case *model.SimpleFacet:
		if n.enter(t, func() bool { return n.v.VisitSimpleFacet(t) }) {
			if t.Owner != nil {
				if err := n.step(t.Owner); err != nil {
					return err
				}
			}
			return n.step(t.Type)
		}
	case *model.ListFacet:
		if n.enter(t, func() bool { return n.v.VisitListFacet(t) }) {
			if t.Owner != nil {
				if err := n.step(t.Owner); err != nil {
					return err
				}
			}
			return n.step(t.Item)
		}
	case *model.ExtensionPointFacet:
		if n.enter(t, func() bool { return n.v.VisitExtensionPointFacet(t) }) {
			return n.extensionPoint(t)
		}
	case *model.Resource:
		if n.enter(t, func() bool { return n.v.VisitResource(t) }) {
			return n.resource(t)
		}
	case *model.ActionFacet:
		if n.enter(t, func() bool { return n.v.VisitActionFacet(t) }) {
			return n.actionFacet(t)
		}
	case *model.LegacyElement:
		n.enter(t, func() bool { return n.v.VisitLegacyElement(t) })
	case *model.LegacyComplexType:
		n.enter(t, func() bool { return n.v.VisitLegacyComplexType(t) })
	case *model.LegacySimpleType:
		n.enter(t, func() bool { return n.v.VisitLegacySimpleType(t) })
	}
	return nil
}

// alias visits a and navigates its owner with a as the alias context.
func (n *Dependency) alias(a *model.Alias) error {
	if n.visited.add(a) && !n.v.VisitAlias(a) {
		n.pruned.add(a)
	}
	if n.pruned.has(a) || !n.navigated.add(a) {
		return nil
	}
	if n.context == nil {
		return n.navigate(a.Owner)
	}
	return n.context.Within(a, func() error {
		return n.navigate(a.Owner)
	})
}

func (n *Dependency) owner(owner model.FacetOwner, declared []*model.Alias, ext *model.Extension) error {
	for _, alias := range declared {
		if err := n.step(alias); err != nil {
			return err
		}
	}
	if err := n.ownedFacets(owner); err != nil {
		return err
	}
	return n.extension(ext)
}

func (n *Dependency) coreObject(core *model.CoreObject) error {
	for _, alias := range core.Aliases {
		if err := n.step(alias); err != nil {
			return err
		}
	}
	if core.Simple != nil {
		if err := n.step(core.Simple); err != nil {
			return err
		}
	}
	if err := n.ownedFacets(core); err != nil {
		return err
	}
	for _, list := range facets.ListFacets(core) {
		if err := n.step(list); err != nil {
			return err
		}
	}
	return n.extension(core.Extension)
}

// ownedFacets navigates the declared facets of owner followed by the
// ghosts of the contextual facets it inherits.
func (n *Dependency) ownedFacets(owner model.FacetOwner) error {
	for _, facet := range facets.AllFacets(owner) {
		if err := n.step(facet); err != nil {
			return err
		}
	}
	if n.opts.SkipGhosts {
		return nil
	}
	for _, facet := range ghost.FindAllGhostFacets(owner) {
		if err := n.step(facet); err != nil {
			return err
		}
	}
	return nil
}

func (n *Dependency) facet(f *model.Facet) error {
	if err := n.step(f.Owner); err != nil {
		return err
	}
	hierarchy := facets.LocalHierarchy(f)
	for _, level := range hierarchy[:len(hierarchy)-1] {
		if err := n.step(level); err != nil {
			return err
		}
	}
	for _, attr := range inherit.InheritedAttributes(f, false) {
		if n.visited.add(attr) && n.v.VisitAttribute(attr) {
			if err := n.step(attr.Type); err != nil {
				return err
			}
		}
	}
	if err := n.properties(f, inherit.InheritedProperties(f)); err != nil {
		return err
	}
	for _, ind := range inherit.InheritedIndicators(f) {
		if n.visited.add(ind) {
			n.v.VisitIndicator(ind)
		}
	}
	if f.IsContextual() {
		return n.ownedFacets(f)
	}
	return nil
}

// properties navigates the element types of origin, replacing facet types
// without content when a checker is configured.
func (n *Dependency) properties(origin model.AbstractFacet, props []*model.Property) error {
	for _, prop := range props {
		if !n.visited.add(prop) || !n.v.VisitProperty(prop) {
			continue
		}
		target := prop.Type
		if referenced, ok := target.(model.AbstractFacet); ok && n.opts.Checker != nil {
			substituted, err := substitute.FindNonEmptyFacet(n.opts.Checker, origin, referenced)
			if err != nil {
				return fmt.Errorf("navigate element %s of %s: %w", prop.DeclaredName(), origin.Name().Local, err)
			}
			target = substituted
		}
		if err := n.step(target); err != nil {
			return err
		}
	}
	return nil
}

func (n *Dependency) valueWithAttributes(vwa *model.ValueWithAttributes) error {
	if err := n.step(vwa.Parent); err != nil {
		return err
	}
	for _, attr := range inherit.ValueAttributes(vwa, false) {
		if n.visited.add(attr) && n.v.VisitAttribute(attr) {
			if err := n.step(attr.Type); err != nil {
				return err
			}
		}
	}
	for _, ind := range inherit.ValueIndicators(vwa) {
		if n.visited.add(ind) {
			n.v.VisitIndicator(ind)
		}
	}
	return nil
}

func (n *Dependency) extensionPoint(f *model.ExtensionPointFacet) error {
	if err := n.extension(f.Extension); err != nil {
		return err
	}
	for _, attr := range f.Attributes {
		if n.visited.add(attr) && n.v.VisitAttribute(attr) {
			if err := n.step(attr.Type); err != nil {
				return err
			}
		}
	}
	if err := n.properties(f, f.Properties); err != nil {
		return err
	}
	for _, ind := range f.Indicators {
		if n.visited.add(ind) {
			n.v.VisitIndicator(ind)
		}
	}
	return nil
}

func (n *Dependency) extension(ext *model.Extension) error {
	if ext == nil || !n.visited.add(ext) || !n.v.VisitExtension(ext) {
		return nil
	}
	return n.step(ext.Target())
}

func (n *Dependency) resource(r *model.Resource) error {
	if r.BusinessObject != nil {
		if err := n.step(r.BusinessObject); err != nil {
			return err
		}
	}
	if err := n.extension(r.Extension); err != nil {
		return err
	}
	for _, ref := range r.ParentRefs {
		if ref == nil || ref.Parent == nil || !n.visited.add(ref) || !n.v.VisitResourceParentRef(ref) {
			continue
		}
		if err := n.step(ref.Parent); err != nil {
			return err
		}
	}
	for _, group := range r.ParamGroups {
		if group == nil || !n.visited.add(group) || !n.v.VisitParamGroup(group) {
			continue
		}
		if err := n.step(group.Facet); err != nil {
			return err
		}
	}
	for _, facet := range r.ActionFacets {
		if err := n.step(facet); err != nil {
			return err
		}
	}
	if !n.opts.SkipGhosts {
		for _, facet := range ghost.FindGhostActionFacets(r) {
			if err := n.step(facet); err != nil {
				return err
			}
		}
	}
	for _, action := range r.Actions {
		if err := n.action(action); err != nil {
			return err
		}
	}
	return nil
}

func (n *Dependency) action(action *model.Action) error {
	if action == nil || !n.visited.add(action) || !n.v.VisitAction(action) {
		return nil
	}
	if req := action.Request; req != nil && n.visited.add(req) && n.v.VisitActionRequest(req) {
		if req.Payload != nil {
			if err := n.step(req.Payload); err != nil {
				return err
			}
		}
	}
	for _, resp := range action.Responses {
		if resp == nil || !n.visited.add(resp) || !n.v.VisitActionResponse(resp) {
			continue
		}
		if resp.Payload != nil {
			if err := n.step(resp.Payload); err != nil {
				return err
			}
		}
	}
	return nil
}

func (n *Dependency) actionFacet(f *model.ActionFacet) error {
	if f.Owner != nil {
		if err := n.step(f.Owner); err != nil {
			return err
		}
	}
	if err := n.step(f.BasePayload); err != nil {
		return err
	}
	return n.step(ReferencedFacet(f))
}

// ReferencedFacet returns the business object facet an action facet
// references, or nil when it references none.
func ReferencedFacet(f *model.ActionFacet) model.NamedEntity {
	if f == nil || f.ReferenceType == model.ReferenceNone || f.Owner == nil || f.Owner.BusinessObject == nil {
		return nil
	}
	if facet := facets.FacetByIdentity(f.Owner.BusinessObject, f.ReferenceFacetName); facet != nil {
		return facet
	}
	return nil
}
