package loader

import (
	"context"
	"maps"
	"slices"
	"strings"

	otmerrors "github.com/jacoelho/otm/errors"
	"github.com/jacoelho/otm/internal/ctxlog"
	"github.com/jacoelho/otm/internal/model"
)

// builder turns decoded documents into a linked model. Members are declared
// first, then references are bound once every library is known.
type builder struct {
	ctx    context.Context
	config Config

	model     *model.Model
	libraries map[model.NamespaceURI]*model.Library
	scopes    map[*model.Library]*scope

	index *entityIndex
	refs  []reference
	late  []func()

	diags    otmerrors.DiagnosticList
	warnings otmerrors.DiagnosticList
}

// scope resolves prefixes for references written in one document.
type scope struct {
	doc     *Document
	library *model.Library
	imports map[string]model.NamespaceURI
}

func newBuilder(ctx context.Context, cfg Config) *builder {
	return &builder{
		ctx:       ctx,
		config:    cfg,
		model:     &model.Model{},
		libraries: make(map[model.NamespaceURI]*model.Library),
		scopes:    make(map[*model.Library]*scope),
	}
}

func (b *builder) errorf(code otmerrors.ErrorCode, pos Pos, subject, format string, args ...any) {
	d := otmerrors.NewDiagnosticf(code, subject, format, args...)
	d.File, d.Line, d.Column = pos.File, pos.Line, pos.Column
	b.diags = append(b.diags, d)
}

func (b *builder) warnf(code otmerrors.ErrorCode, pos Pos, subject, format string, args ...any) {
	d := otmerrors.NewDiagnosticf(code, subject, format, args...)
	d.File, d.Line, d.Column = pos.File, pos.Line, pos.Column
	b.warnings = append(b.warnings, d)
}

func (b *builder) run(docs []*Document) (*Result, error) {
	logger := ctxlog.FromContext(b.ctx)

	var declared []*scope
	for _, doc := range docs {
		if s := b.declareLibrary(doc); s != nil {
			declared = append(declared, s)
		}
	}
	b.addBuiltins()
	for _, s := range declared {
		b.declareMembers(s)
	}
	if len(b.diags) > 0 {
		return nil, b.diags
	}
	logger.Debug("declared libraries", "libraries", len(b.model.Libraries), "references", len(b.refs))

	b.index = b.buildIndex()
	b.link()
	for _, fn := range b.late {
		fn()
	}
	if len(b.diags) > 0 {
		return nil, b.diags
	}
	logger.Debug("linked references", "entities", len(b.index.order), "warnings", len(b.warnings))

	b.detectCycles()
	return &Result{Model: b.model, Warnings: b.warnings}, nil
}

func (b *builder) declareLibrary(doc *Document) *scope {
	pos := Pos{File: doc.File}
	ns := model.NamespaceURI(strings.TrimSpace(doc.Library.Namespace))
	if ns.IsEmpty() {
		b.errorf(otmerrors.ErrInvalidDocument, pos, doc.Library.Name, "library has no namespace")
		return nil
	}
	if _, exists := b.libraries[ns]; exists {
		b.errorf(otmerrors.ErrDuplicateLibrary, pos, ns.String(), "namespace %s declared by more than one document", ns)
		return nil
	}
	lib := &model.Library{
		Namespace:     ns,
		Prefix:        doc.Library.Prefix,
		Name:          doc.Library.Name,
		Version:       doc.Library.Version,
		Documentation: toDocumentation(doc.Library.Documentation),
	}
	for _, c := range doc.Contexts {
		lib.Contexts = append(lib.Contexts, &model.Context{
			ContextID:          c.ID,
			ApplicationContext: c.ApplicationContext,
			Documentation:      toDocumentation(c.Documentation),
		})
	}
	b.libraries[ns] = lib
	b.model.AddLibrary(lib)

	s := &scope{doc: doc, library: lib, imports: make(map[string]model.NamespaceURI)}
	for _, imp := range doc.Imports {
		s.imports[imp.Prefix] = model.NamespaceURI(imp.Namespace)
	}
	b.scopes[lib] = s
	return s
}

func (b *builder) addMember(s *scope, member model.NamedEntity, name string) bool {
	if name == "" {
		b.errorf(otmerrors.ErrInvalidDocument, Pos{File: s.doc.File}, "", "library %s declares a member without a name", s.library.Name)
		return false
	}
	if _, exists := s.library.Member(name); exists {
		b.errorf(otmerrors.ErrDuplicateMember, Pos{File: s.doc.File}, name, "member %s declared twice in %s", name, s.library.Namespace)
		return false
	}
	s.library.AddMember(member)
	return true
}

func (b *builder) declareMembers(s *scope) {
	doc := s.doc
	for i := range doc.SimpleTypes {
		b.simpleType(s, &doc.SimpleTypes[i])
	}
	for i := range doc.ValueTypes {
		b.valueType(s, &doc.ValueTypes[i])
	}
	for i := range doc.Enumerations {
		b.enumeration(s, &doc.Enumerations[i])
	}
	for i := range doc.CoreObjects {
		b.coreObject(s, &doc.CoreObjects[i])
	}
	for i := range doc.BusinessObjects {
		b.businessObject(s, &doc.BusinessObjects[i])
	}
	for i := range doc.ChoiceObjects {
		b.choiceObject(s, &doc.ChoiceObjects[i])
	}
	for i := range doc.Services {
		b.service(s, &doc.Services[i])
	}
	for i := range doc.ExtensionPoints {
		b.extensionPoint(s, &doc.ExtensionPoints[i])
	}
	for i := range doc.Resources {
		b.resource(s, &doc.Resources[i])
	}
}

func (b *builder) simpleType(s *scope, d *SimpleTypeDoc) {
	st := &model.SimpleType{
		Named:       model.Named{LocalName: d.Name, Documentation: toDocumentation(d.Documentation)},
		ListTypeInd: d.List,
		Pattern:     d.Pattern,
		MinLength:   d.MinLength,
		MaxLength:   d.MaxLength,
		Equivalents: toEquivalents(d.Equivalents),
		Examples:    toExamples(d.Examples),
	}
	if !b.addMember(s, st, d.Name) {
		return
	}
	b.require(s, d.Parent, d.Name, "parent", acceptSimpleParent, func(e model.NamedEntity, q model.QName) {
		st.Parent, st.ParentName = e, q
	})
}

func (b *builder) valueType(s *scope, d *ValueTypeDoc) {
	vwa := &model.ValueWithAttributes{
		Named:       model.Named{LocalName: d.Name, Documentation: toDocumentation(d.Documentation)},
		Equivalents: toEquivalents(d.Equivalents),
		Examples:    toExamples(d.Examples),
	}
	if !b.addMember(s, vwa, d.Name) {
		return
	}
	vwa.Attributes = b.attributes(s, vwa, d.Name, d.Attributes)
	vwa.Indicators = b.indicators(vwa, d.Indicators)
	b.require(s, d.Parent, d.Name, "parent", acceptValueParent, func(e model.NamedEntity, q model.QName) {
		vwa.Parent, vwa.ParentName = e, q
	})
}

func (b *builder) enumeration(s *scope, d *EnumerationDoc) {
	var (
		entity model.NamedEntity
		values *[]*model.EnumValue
		ext    **model.Extension
		accept func(model.NamedEntity) bool
	)
	named := model.Named{LocalName: d.Name, Documentation: toDocumentation(d.Documentation)}
	if d.Open {
		open := &model.OpenEnumeration{Named: named}
		entity, values, ext = open, &open.Values, &open.Extension
		accept = is[*model.OpenEnumeration]
	} else {
		closed := &model.ClosedEnumeration{Named: named}
		entity, values, ext = closed, &closed.Values, &closed.Extension
		accept = is[*model.ClosedEnumeration]
	}
	if !b.addMember(s, entity, d.Name) {
		return
	}
	for _, v := range d.Values {
		*values = append(*values, &model.EnumValue{
			Owner:         entity,
			Literal:       v.Literal,
			Label:         v.Label,
			Documentation: toDocumentation(v.Documentation),
			Equivalents:   toEquivalents(v.Equivalents),
		})
	}
	b.extends(s, entity, d.Extends, d.Name, accept, ext)
}

func (b *builder) businessObject(s *scope, d *BusinessObjectDoc) {
	bo := &model.BusinessObject{
		Named:         model.Named{LocalName: d.Name, Documentation: toDocumentation(d.Documentation)},
		NotExtendable: d.NotExtendable,
		Equivalents:   toEquivalents(d.Equivalents),
	}
	if !b.addMember(s, bo, d.Name) {
		return
	}
	bo.ID = b.facet(s, bo, model.KindID, d.ID)
	bo.Summary = b.facet(s, bo, model.KindSummary, d.Summary)
	bo.Detail = b.facet(s, bo, model.KindDetail, d.Detail)
	bo.Custom = b.contextual(s, bo, model.KindCustom, d.Custom)
	bo.Query = b.contextual(s, bo, model.KindQuery, d.Query)
	bo.Update = b.contextual(s, bo, model.KindUpdate, d.Update)
	b.ownerAliases(bo, d.Aliases)
	b.extends(s, bo, d.Extends, d.Name, is[*model.BusinessObject], &bo.Extension)
}

func (b *builder) coreObject(s *scope, d *CoreObjectDoc) {
	core := &model.CoreObject{
		Named:         model.Named{LocalName: d.Name, Documentation: toDocumentation(d.Documentation)},
		NotExtendable: d.NotExtendable,
		Equivalents:   toEquivalents(d.Equivalents),
	}
	if !b.addMember(s, core, d.Name) {
		return
	}
	core.Simple = &model.SimpleFacet{Owner: core}
	if sd := d.Simple; sd != nil {
		core.Simple.Documentation = toDocumentation(sd.Documentation)
		core.Simple.Equivalents = toEquivalents(sd.Equivalents)
		core.Simple.Examples = toExamples(sd.Examples)
		simple := core.Simple
		b.require(s, sd.Type, core.Simple.Name().Local, "type", acceptSimpleParent, func(e model.NamedEntity, q model.QName) {
			simple.Type, simple.TypeName = e, q
		})
	}
	core.Summary = b.facet(s, core, model.KindSummary, d.Summary)
	core.Detail = b.facet(s, core, model.KindDetail, d.Detail)
	core.SimpleList = &model.ListFacet{Owner: core, Item: core.Simple}
	core.SummaryList = &model.ListFacet{Owner: core, Item: core.Summary}
	core.DetailList = &model.ListFacet{Owner: core, Item: core.Detail}
	for _, role := range d.Roles {
		core.Roles = append(core.Roles, &model.Role{Owner: core, LocalName: role})
	}
	b.ownerAliases(core, d.Aliases)
	b.extends(s, core, d.Extends, d.Name, is[*model.CoreObject], &core.Extension)
}

func (b *builder) choiceObject(s *scope, d *ChoiceObjectDoc) {
	choice := &model.ChoiceObject{
		Named:         model.Named{LocalName: d.Name, Documentation: toDocumentation(d.Documentation)},
		NotExtendable: d.NotExtendable,
		Equivalents:   toEquivalents(d.Equivalents),
	}
	if !b.addMember(s, choice, d.Name) {
		return
	}
	choice.Shared = b.facet(s, choice, model.KindShared, d.Shared)
	choice.Choice = b.contextual(s, choice, model.KindChoice, d.Choice)
	b.ownerAliases(choice, d.Aliases)
	b.extends(s, choice, d.Extends, d.Name, is[*model.ChoiceObject], &choice.Extension)
}

func (b *builder) service(s *scope, d *ServiceDoc) {
	svc := &model.Service{
		Named:       model.Named{LocalName: d.Name, Documentation: toDocumentation(d.Documentation)},
		Equivalents: toEquivalents(d.Equivalents),
	}
	seen := make(map[string]bool, len(d.Operations))
	for i := range d.Operations {
		od := &d.Operations[i]
		if seen[od.Name] {
			b.errorf(otmerrors.ErrDuplicateMember, Pos{File: s.doc.File}, od.Name, "operation %s declared twice in service %s", od.Name, d.Name)
			continue
		}
		seen[od.Name] = true
		op := &model.Operation{
			Named:         model.Named{LocalName: od.Name, Documentation: toDocumentation(od.Documentation)},
			Service:       svc,
			NotExtendable: od.NotExtendable,
			Equivalents:   toEquivalents(od.Equivalents),
		}
		op.Request = b.facet(s, op, model.KindRequest, od.Request)
		op.Response = b.facet(s, op, model.KindResponse, od.Response)
		op.Notification = b.facet(s, op, model.KindNotification, od.Notification)
		svc.Operations = append(svc.Operations, op)
		b.extends(s, op, od.Extends, od.Name, is[*model.Operation], &op.Extension)
	}
	b.addMember(s, svc, d.Name)
}

func (b *builder) extensionPoint(s *scope, d *ExtensionPointDoc) {
	ep := &model.ExtensionPointFacet{Documentation: toDocumentation(d.Documentation)}
	ep.Extension = &model.Extension{Owner: ep, ExtendsName: model.QName{Local: d.Extends.Local}}
	subject := "ExtensionPoint_" + d.Extends.Local
	ep.Attributes = b.attributes(s, ep, subject, d.Attributes)
	ep.Properties = b.properties(s, ep, subject, d.Elements)
	ep.Indicators = b.indicators(ep, d.Indicators)
	s.library.AddMember(ep)
	b.require(s, d.Extends, subject, "extends", acceptExtendedFacet, func(e model.NamedEntity, q model.QName) {
		ep.Extension.Extends, ep.Extension.ExtendsName = e, q
	})
}

// facet builds a fixed facet slot. Undeclared slots get an empty facet so
// every owner exposes its full set of fixed facets.
func (b *builder) facet(s *scope, owner model.FacetOwner, kind model.FacetKind, d *FacetDoc) *model.Facet {
	f := &model.Facet{Kind: kind, Owner: owner}
	if d != nil {
		b.facetMembers(s, f, d)
	}
	return f
}

func (b *builder) facetMembers(s *scope, f *model.Facet, d *FacetDoc) {
	subject := f.LocalName()
	f.Attributes = b.attributes(s, f, subject, d.Attributes)
	f.Properties = b.properties(s, f, subject, d.Elements)
	f.Indicators = b.indicators(f, d.Indicators)
	f.Documentation = toDocumentation(d.Documentation)
	f.Equivalents = toEquivalents(d.Equivalents)
}

func (b *builder) contextual(s *scope, owner model.FacetOwner, kind model.FacetKind, docs []ContextualFacetDoc) []*model.Facet {
	var out []*model.Facet
	seen := make(map[string]bool, len(docs))
	for i := range docs {
		d := &docs[i]
		f := &model.Facet{
			Kind:          kind,
			Owner:         owner,
			Context:       d.Context,
			Label:         d.Label,
			Local:         d.Local,
			NotExtendable: d.NotExtendable,
		}
		identity := f.Identity()
		if seen[identity] {
			b.errorf(otmerrors.ErrDuplicateFacet, Pos{File: s.doc.File}, f.LocalName(), "facet %s declared twice", f.LocalName())
			continue
		}
		seen[identity] = true
		b.facetMembers(s, f, &d.FacetDoc)
		f.Contextual = b.contextual(s, f, kind, d.Contextual)
		out = append(out, f)
	}
	return out
}

// ownerAliases declares owner aliases and the facet aliases derived from
// them. Facets must already be attached to owner.
func (b *builder) ownerAliases(owner model.FacetOwner, names []string) {
	for _, name := range names {
		if model.FindAlias(model.OwnerAliases(owner), name) != nil {
			continue
		}
		model.AddOwnerAlias(owner, name)
	}
}

func (b *builder) attributes(s *scope, owner model.NamedEntity, subject string, docs []AttributeDoc) []*model.Attribute {
	var out []*model.Attribute
	for i := range docs {
		d := &docs[i]
		attr := &model.Attribute{
			Owner:         owner,
			LocalName:     d.Name,
			Reference:     d.Reference,
			Mandatory:     d.Mandatory,
			Documentation: toDocumentation(d.Documentation),
			Equivalents:   toEquivalents(d.Equivalents),
			Examples:      toExamples(d.Examples),
		}
		b.require(s, d.Type, subject+"/@"+d.Name, "type", acceptAny, func(e model.NamedEntity, q model.QName) {
			attr.Type, attr.TypeName = e, q
		})
		out = append(out, attr)
	}
	return out
}

func (b *builder) properties(s *scope, owner model.NamedEntity, subject string, docs []ElementDoc) []*model.Property {
	var out []*model.Property
	for i := range docs {
		d := &docs[i]
		prop := &model.Property{
			Owner:         owner,
			LocalName:     d.Name,
			Reference:     d.Reference,
			Repeat:        d.Repeat,
			Mandatory:     d.Mandatory,
			Documentation: toDocumentation(d.Documentation),
			Equivalents:   toEquivalents(d.Equivalents),
			Examples:      toExamples(d.Examples),
		}
		name := d.Name
		if name == "" {
			name = d.Type.Local
		}
		b.require(s, d.Type, subject+"/"+name, "type", acceptAny, func(e model.NamedEntity, q model.QName) {
			prop.Type, prop.TypeName = e, q
		})
		out = append(out, prop)
	}
	return out
}

func (b *builder) indicators(owner model.NamedEntity, docs []IndicatorDoc) []*model.Indicator {
	var out []*model.Indicator
	for _, d := range docs {
		out = append(out, &model.Indicator{
			Owner:            owner,
			LocalName:        d.Name,
			PublishAsElement: d.PublishAsElement,
			Documentation:    toDocumentation(d.Documentation),
			Equivalents:      toEquivalents(d.Equivalents),
		})
	}
	return out
}

func toDocumentation(d *DocumentationDoc) *model.Documentation {
	if d == nil {
		return nil
	}
	doc := &model.Documentation{
		Description:  d.Description,
		Deprecations: d.Deprecations,
		References:   d.References,
		Implementers: d.Implementers,
		MoreInfos:    d.MoreInfos,
	}
	if doc.IsEmpty() {
		return nil
	}
	return doc
}

func toEquivalents(m map[string]string) []*model.Equivalent {
	var out []*model.Equivalent
	for _, ctx := range slices.Sorted(maps.Keys(m)) {
		out = append(out, &model.Equivalent{Context: ctx, Value: m[ctx]})
	}
	return out
}

func toExamples(m map[string]string) []*model.Example {
	var out []*model.Example
	for _, ctx := range slices.Sorted(maps.Keys(m)) {
		out = append(out, &model.Example{Context: ctx, Value: m[ctx]})
	}
	return out
}
