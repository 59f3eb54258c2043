package loader

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	otmerrors "github.com/jacoelho/otm/errors"
	"github.com/jacoelho/otm/internal/ctxlog"
	"github.com/jacoelho/otm/internal/ghost"
	"github.com/jacoelho/otm/internal/model"
)

const commonHCL = `
library "Common" {
  namespace = "urn:test:common"
  prefix    = "com"
  version   = "1.0"
}

simple_type "Code" {
  parent   = xsd.string
  pattern  = "[A-Z]{3}"
  examples = { default = "USD", count = 3 }
}

core_object "Money" {
  aliases = ["Amount"]

  simple {
    type     = xsd.decimal
    examples = { default = 10.5 }
  }

  summary {
    attribute "currency" {
      type = Code
    }
  }
}
`

const ordersHCL = `
library "Orders" {
  namespace = "urn:test:orders"
  prefix    = "ord"
}

import "com" {
  namespace = "urn:test:common"
}

business_object "Base" {
  id {
    attribute "id" {
      type = xsd.string
    }
  }

  custom "Info" {
    element {
      type = com.Money
    }
  }
}

business_object "Order" {
  extends = "ord:Base"
  aliases = ["Purchase"]

  summary {
    element {
      name      = "Total"
      type      = com.Money
      mandatory = true
    }
    indicator "rush" {
      publish_as_element = true
    }
  }
}
`

func member[T model.NamedEntity](t *testing.T, m *model.Model, ns, local string) T {
	t.Helper()
	e, ok := m.Lookup(model.QName{Namespace: model.NamespaceURI(ns), Local: local})
	require.True(t, ok, "member %s not found", local)
	v, ok := e.(T)
	require.True(t, ok, "member %s has type %T", local, e)
	return v
}

func load(t *testing.T, cfg Config, sources ...Source) (*Result, error) {
	t.Helper()
	ctx := ctxlog.WithLogger(context.Background(), ctxlog.Discard())
	return New(cfg).LoadSources(ctx, sources...)
}

func TestLoadHCLLinksAcrossLibraries(t *testing.T) {
	res, err := load(t, Config{},
		Source{Name: "orders.hcl", Data: []byte(ordersHCL)},
		Source{Name: "common.hcl", Data: []byte(commonHCL)},
	)
	require.NoError(t, err)
	require.Empty(t, res.Warnings)
	require.Len(t, res.Model.Libraries, 3)
	require.True(t, res.Model.Libraries[2].Builtin)

	money := member[*model.CoreObject](t, res.Model, "urn:test:common", "Money")
	base := member[*model.BusinessObject](t, res.Model, "urn:test:orders", "Base")
	order := member[*model.BusinessObject](t, res.Model, "urn:test:orders", "Order")
	code := member[*model.SimpleType](t, res.Model, "urn:test:common", "Code")

	require.Same(t, base, order.Extension.Target())
	require.Equal(t, "Base", order.Extension.ExtendsName.Local)

	total := order.Summary.Properties[0]
	require.Equal(t, "Total", total.DeclaredName())
	require.Same(t, money, total.Type)
	require.True(t, total.Mandatory)
	require.True(t, order.Summary.Indicators[0].PublishAsElement)

	require.Same(t, code, money.Summary.Attributes[0].Type)
	decimal, ok := money.Simple.Type.(*model.LegacySimpleType)
	require.True(t, ok)
	require.Equal(t, loaderQName(XSDNamespace, "decimal"), decimal.Name())
	require.Equal(t, []*model.Example{{Context: "default", Value: "10.5"}}, money.Simple.Examples)
	require.Equal(t, []*model.Example{{Context: "count", Value: "3"}, {Context: "default", Value: "USD"}}, code.Examples)

	require.NotNil(t, model.FindAlias(order.Summary.Aliases, "Purchase_Summary"))
	require.NotNil(t, model.FindAlias(money.SummaryList.Aliases, "Amount_Summary_List"))
	require.NotNil(t, model.FindAlias(money.Simple.Aliases, "Amount_Simple"))

	ghosts := ghost.FindGhostFacets(order, model.KindCustom)
	require.Len(t, ghosts, 1)
	require.Equal(t, "Order_Custom_Info", ghosts[0].LocalName())
	require.Same(t, base.Custom[0], ghosts[0].GhostOf())
}

func loaderQName(ns model.NamespaceURI, local string) model.QName {
	return model.QName{Namespace: ns, Local: local}
}

const shopYAML = `
library:
  name: Shop
  namespace: urn:test:shop
  prefix: shop
business_objects:
  - name: Product
    aliases: [Item]
    id:
      attributes:
        - name: sku
          type: xsd:string
    summary:
      elements:
        - name: Price
          type: xsd:decimal
    custom:
      - label: Stock
        contextual:
          - label: Warehouse
resources:
  - name: ProductResource
    business_object: Product
    base_path: /products
    param_groups:
      - name: ByID
        id_group: true
        facet: ID
        parameters:
          - field: sku
            location: path
    action_facets:
      - name: ProductSummary
        reference_type: required
        reference_facet: Summary
    actions:
      - id: GetProduct
        request:
          method: get
          path_template: "/{sku}"
          param_group: ByID
        responses:
          - status_codes: [200]
            payload: ProductSummary
`

func TestLoadYAMLResources(t *testing.T) {
	res, err := load(t, Config{}, Source{Name: "shop.yaml", Data: []byte(shopYAML)})
	require.NoError(t, err)

	product := member[*model.BusinessObject](t, res.Model, "urn:test:shop", "Product")
	r := member[*model.Resource](t, res.Model, "urn:test:shop", "ProductResource")

	require.Same(t, product, r.BusinessObject)
	require.Same(t, product.ID, r.ParamGroups[0].Facet)
	require.Equal(t, model.ParamPath, r.ParamGroups[0].Parameters[0].Location)

	af := r.ActionFacets[0]
	require.Equal(t, model.ReferenceRequired, af.ReferenceType)
	require.Equal(t, "ProductResource_ProductSummary", af.Name().Local)

	action := r.Actions[0]
	require.Equal(t, "GET", action.Request.HTTPMethod)
	require.Same(t, r.ParamGroups[0], action.Request.ParamGroup)
	require.Same(t, af, action.Responses[0].Payload)
	require.Equal(t, []int{200}, action.Responses[0].StatusCodes)

	stock := product.Custom[0]
	require.Len(t, stock.Contextual, 1)
	require.Equal(t, "Product_Custom_Stock_Custom_Warehouse", stock.Contextual[0].LocalName())
	require.NotNil(t, model.FindAlias(stock.Contextual[0].Aliases, "Item_Custom_Stock_Custom_Warehouse"))
}

func TestLoadYAMLMultipleDocuments(t *testing.T) {
	src := `
library: {name: A, namespace: "urn:test:a", prefix: a}
core_objects:
  - name: Amount
    simple: {type: "b:Decimal"}
---
library: {name: B, namespace: "urn:test:b", prefix: b}
simple_types:
  - name: Decimal
    parent: xsd:decimal
`
	res, err := load(t, Config{}, Source{Name: "multi.yml", Data: []byte(src)})
	require.NoError(t, err)
	amount := member[*model.CoreObject](t, res.Model, "urn:test:a", "Amount")
	dec := member[*model.SimpleType](t, res.Model, "urn:test:b", "Decimal")
	require.Same(t, dec, amount.Simple.Type)
}

func TestLoadReportsExtensionCycleAsWarning(t *testing.T) {
	src := `
library: {name: Loop, namespace: "urn:test:loop", prefix: loop}
core_objects:
  - name: A
    extends: B
  - name: B
    extends: A
`
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	res, err := New(Config{}).LoadSources(ctx, Source{Name: "loop.yaml", Data: []byte(src)})
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	require.Equal(t, string(otmerrors.ErrExtensionCycle), res.Warnings[0].Code)
	require.Contains(t, buf.String(), "extension cycle detected")
}

func TestLoadReportsParentTypeCycle(t *testing.T) {
	src := `
library: {name: Loop, namespace: "urn:test:loop", prefix: loop}
simple_types:
  - name: A
    parent: B
  - name: B
    parent: A
`
	res, err := load(t, Config{}, Source{Name: "loop.yaml", Data: []byte(src)})
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	require.Equal(t, string(otmerrors.ErrParentTypeCycle), res.Warnings[0].Code)
}

const unresolvedYAML = `
library: {name: U, namespace: "urn:test:u", prefix: u}
business_objects:
  - name: Order
    summary:
      attributes:
        - name: status
          type: Missing
`

func TestLoadUnresolvedReference(t *testing.T) {
	_, err := load(t, Config{}, Source{Name: "u.yaml", Data: []byte(unresolvedYAML)})
	require.Error(t, err)
	require.True(t, otmerrors.HasCode(err, otmerrors.ErrUnresolvedReference))
	diags, ok := otmerrors.AsDiagnostics(err)
	require.True(t, ok)
	require.Equal(t, "u.yaml", diags[0].File)
	require.Equal(t, 8, diags[0].Line)
}

func TestLoadAllowUnresolved(t *testing.T) {
	res, err := load(t, Config{AllowUnresolved: true}, Source{Name: "u.yaml", Data: []byte(unresolvedYAML)})
	require.NoError(t, err)
	require.True(t, otmerrors.HasCode(res.Warnings, otmerrors.ErrUnresolvedReference))

	order := member[*model.BusinessObject](t, res.Model, "urn:test:u", "Order")
	attr := order.Summary.Attributes[0]
	require.Nil(t, attr.Type)
	require.Equal(t, loaderQName("urn:test:u", "Missing"), attr.TypeName)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  Source
		code otmerrors.ErrorCode
	}{
		{
			name: "kind mismatch",
			src: Source{Name: "k.yaml", Data: []byte(`
library: {name: K, namespace: "urn:test:k", prefix: k}
core_objects:
  - name: Money
business_objects:
  - name: Order
    extends: Money
`)},
			code: otmerrors.ErrKindMismatch,
		},
		{
			name: "duplicate member",
			src: Source{Name: "d.yaml", Data: []byte(`
library: {name: D, namespace: "urn:test:d", prefix: d}
core_objects:
  - name: Money
  - name: Money
`)},
			code: otmerrors.ErrDuplicateMember,
		},
		{
			name: "duplicate facet",
			src: Source{Name: "f.yaml", Data: []byte(`
library: {name: F, namespace: "urn:test:f", prefix: f}
business_objects:
  - name: Order
    custom:
      - label: Info
      - label: Info
`)},
			code: otmerrors.ErrDuplicateFacet,
		},
		{
			name: "unknown yaml field",
			src: Source{Name: "x.yaml", Data: []byte(`
library: {name: X, namespace: "urn:test:x", prefix: x}
widgets: []
`)},
			code: otmerrors.ErrParse,
		},
		{
			name: "hcl syntax",
			src:  Source{Name: "broken.hcl", Data: []byte(`library "X" {`)},
			code: otmerrors.ErrParse,
		},
		{
			name: "hcl without library",
			src:  Source{Name: "empty.hcl", Data: []byte(``)},
			code: otmerrors.ErrInvalidDocument,
		},
		{
			name: "unknown format",
			src:  Source{Name: "model.txt", Data: []byte(`library: {}`)},
			code: otmerrors.ErrUnknownFormat,
		},
		{
			name: "missing namespace",
			src:  Source{Name: "n.yaml", Data: []byte(`library: {name: N}`)},
			code: otmerrors.ErrInvalidDocument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, Config{}, tt.src)
			require.Error(t, err)
			require.True(t, otmerrors.HasCode(err, tt.code), "error %v lacks %s", err, tt.code)
		})
	}
}

func TestLoadFormatOverride(t *testing.T) {
	res, err := load(t, Config{Format: FormatHCL}, Source{Name: "common.model", Data: []byte(commonHCL)})
	require.NoError(t, err)
	member[*model.CoreObject](t, res.Model, "urn:test:common", "Money")
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"models/common.hcl": {Data: []byte(commonHCL)},
		"models/orders.hcl": {Data: []byte(ordersHCL)},
		"models/shop.yaml":  {Data: []byte(shopYAML)},
		"models/README.md":  {Data: []byte("# models")},
		"standalone/u.yaml": {Data: []byte(unresolvedYAML)},
	}
	sources, err := ReadSources(fsys, "models")
	require.NoError(t, err)
	names := make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, s.Name)
	}
	require.Equal(t, []string{"models/common.hcl", "models/orders.hcl", "models/shop.yaml"}, names)

	res, err := New(Config{FS: fsys}).Load(context.Background(), "models")
	require.NoError(t, err)
	require.Len(t, res.Model.Libraries, 4)

	_, err = New(Config{}).Load(context.Background(), "models")
	require.Error(t, err)

	_, err = ReadSources(fsys, "missing.hcl")
	require.Error(t, err)
}

func TestParseRefAndFormat(t *testing.T) {
	require.Equal(t, Ref{Prefix: "com", Local: "Money"}, ParseRef("com:Money"))
	require.Equal(t, Ref{Namespace: "urn:a", Local: "Money"}, ParseRef("{urn:a}Money"))
	require.Equal(t, Ref{Local: "Money"}, ParseRef(" Money "))
	require.Equal(t, "com:Money", ParseRef("com:Money").String())

	f, err := ParseFormat("YML")
	require.NoError(t, err)
	require.Equal(t, FormatYAML, f)
	_, err = ParseFormat("xml")
	require.Error(t, err)
	require.Equal(t, FormatHCL, DetectFormat("a/b.HCL"))
	require.Equal(t, FormatAuto, DetectFormat("a/b.json"))
}
