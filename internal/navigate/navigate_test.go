package navigate

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jacoelho/otm/internal/content"
	"github.com/jacoelho/otm/internal/model"
	"github.com/jacoelho/otm/internal/modeltest"
	"github.com/jacoelho/otm/internal/visitor"
)

func locals(names []model.QName) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, name.Local)
	}
	return out
}

func countOf(names []string) map[string]int {
	counts := make(map[string]int, len(names))
	for _, name := range names {
		counts[name]++
	}
	return counts
}

func TestStructuralLibraryOrder(t *testing.T) {
	lib := modeltest.Library("")
	order := modeltest.BusinessObject(lib, "Order")
	modeltest.Contextual(order, model.KindCustom, "Info")
	model.AddOwnerAlias(order, "Purchase")
	modeltest.CoreObject(lib, "Money")

	rec := &visitor.Recorder{}
	if err := NewStructural(rec).NavigateLibrary(lib); err != nil {
		t.Fatalf("NavigateLibrary() error = %v", err)
	}
	want := []string{
		"Order", "Purchase",
		"Order_ID", "Purchase_ID",
		"Order_Summary", "Purchase_Summary",
		"Order_Detail", "Purchase_Detail",
		"Order_Custom_Info", "Purchase_Custom_Info",
		"Money", "Money_Simple", "Money_Summary", "Money_Detail",
		"Money_Simple_List", "Money_Summary_List", "Money_Detail_List",
	}
	if diff := cmp.Diff(want, locals(rec.Names)); diff != "" {
		t.Fatalf("visit order mismatch (-want +got):\n%s", diff)
	}
}

type docCounter struct {
	visitor.Adapter
	docs, attrs int
}

func (d *docCounter) VisitDocumentation(model.NamedEntity, *model.Documentation) bool {
	d.docs++
	return false
}

func (d *docCounter) VisitAttribute(*model.Attribute) bool {
	d.attrs++
	return true
}

func TestStructuralVisitsMembersAndDocumentation(t *testing.T) {
	lib := modeltest.Library("")
	order := modeltest.BusinessObject(lib, "Order")
	order.Documentation = &model.Documentation{Description: "an order"}
	attrs := modeltest.Attrs(order.Summary, "id", "name")
	attrs[0].Documentation = &model.Documentation{Description: "identifier"}

	counter := &docCounter{}
	if err := NewStructural(counter).NavigateEntity(order); err != nil {
		t.Fatalf("NavigateEntity() error = %v", err)
	}
	if counter.docs != 2 || counter.attrs != 2 {
		t.Fatalf("docs = %d, attrs = %d, want 2, 2", counter.docs, counter.attrs)
	}
}

type pruneBusiness struct {
	visitor.Recorder
}

func (p *pruneBusiness) VisitBusinessObject(bo *model.BusinessObject) bool {
	p.Recorder.VisitBusinessObject(bo)
	return false
}

func TestNavigatorPrunes(t *testing.T) {
	lib := modeltest.Library("")
	modeltest.BusinessObject(lib, "Order")

	structural := &pruneBusiness{}
	if err := NewStructural(structural).NavigateLibrary(lib); err != nil {
		t.Fatalf("NavigateLibrary() error = %v", err)
	}
	if diff := cmp.Diff([]string{"Order"}, locals(structural.Names)); diff != "" {
		t.Fatalf("structural mismatch (-want +got):\n%s", diff)
	}

	deps := &pruneBusiness{}
	if err := NewDependency(deps, Options{}).NavigateLibrary(lib); err != nil {
		t.Fatalf("NavigateLibrary() error = %v", err)
	}
	if diff := cmp.Diff([]string{"Order"}, locals(deps.Names)); diff != "" {
		t.Fatalf("dependency mismatch (-want +got):\n%s", diff)
	}
}

func TestNavigatorsTerminateOnExtensionCycle(t *testing.T) {
	lib := modeltest.Library("")
	x := modeltest.BusinessObject(lib, "X")
	y := modeltest.BusinessObject(lib, "Y")
	modeltest.Extend(x, y)
	modeltest.Extend(y, x)
	modeltest.Contextual(x, model.KindCustom, "FromX")
	modeltest.Contextual(y, model.KindCustom, "FromY")
	modeltest.Prop(x.Summary, "Other", y.Summary)
	modeltest.Prop(y.Summary, "Back", x)

	navigators := map[string]interface {
		NavigateEntity(model.NamedEntity) error
	}{}
	recorders := map[string]*visitor.Recorder{
		"structural": {}, "dependency": {}, "schema": {},
	}
	navigators["structural"] = NewStructural(recorders["structural"])
	navigators["dependency"] = NewDependency(recorders["dependency"], Options{})
	navigators["schema"] = NewSchemaDependency(recorders["schema"], Options{})

	for name, nav := range navigators {
		t.Run(name, func(t *testing.T) {
			if err := nav.NavigateEntity(x); err != nil {
				t.Fatalf("NavigateEntity() error = %v", err)
			}
			names := locals(recorders[name].Names)
			for local, n := range countOf(names) {
				if n != 1 {
					t.Fatalf("%s visited %d times", local, n)
				}
			}
			if name != "structural" && !slices.Contains(names, "Y") {
				t.Fatalf("Y not visited: %v", names)
			}
		})
	}
}

func TestDependencyVisitsGhostsOnce(t *testing.T) {
	lib := modeltest.Library("")
	order := modeltest.BusinessObject(lib, "Order")
	orderV2 := modeltest.BusinessObject(lib, "OrderV2")
	modeltest.Extend(orderV2, order)
	modeltest.Contextual(order, model.KindCustom, "Custom1")

	rec := &visitor.Recorder{}
	nav := NewDependency(rec, Options{})
	if err := nav.NavigateEntity(orderV2); err != nil {
		t.Fatalf("NavigateEntity() error = %v", err)
	}
	counts := countOf(locals(rec.Names))
	if counts["OrderV2_Custom_Custom1"] != 1 {
		t.Fatalf("ghost visited %d times, want 1", counts["OrderV2_Custom_Custom1"])
	}
	if counts["Order_Custom_Custom1"] != 1 {
		t.Fatalf("ancestor facet visited %d times, want 1", counts["Order_Custom_Custom1"])
	}

	skip := &visitor.Recorder{}
	if err := NewDependency(skip, Options{SkipGhosts: true}).NavigateEntity(orderV2); err != nil {
		t.Fatalf("NavigateEntity() error = %v", err)
	}
	if slices.Contains(locals(skip.Names), "OrderV2_Custom_Custom1") {
		t.Fatalf("ghost visited with SkipGhosts")
	}
}

func TestDependencySubstitutesEmptyFacets(t *testing.T) {
	lib := modeltest.Library("")
	money := modeltest.CoreObject(lib, "Money")
	modeltest.Attrs(money.Summary, "currency")
	order := modeltest.BusinessObject(lib, "Order")
	modeltest.Prop(order.Summary, "Price", money.Detail)

	index := func(names []string, name string) int {
		return slices.Index(names, name)
	}

	plain := &visitor.Recorder{}
	if err := NewDependency(plain, Options{}).NavigateEntity(order.Summary); err != nil {
		t.Fatalf("NavigateEntity() error = %v", err)
	}
	names := locals(plain.Names)
	if index(names, "Money_Detail") > index(names, "Money_Summary") {
		t.Fatalf("without checker Money_Detail should be reached first: %v", names)
	}

	substituted := &visitor.Recorder{}
	if err := NewDependency(substituted, Options{Checker: content.Default}).NavigateEntity(order.Summary); err != nil {
		t.Fatalf("NavigateEntity() error = %v", err)
	}
	names = locals(substituted.Names)
	if index(names, "Money_Summary") > index(names, "Money_Detail") {
		t.Fatalf("with checker Money_Summary should be reached first: %v", names)
	}
}

func TestDependencyPropagatesCheckerError(t *testing.T) {
	lib := modeltest.Library("")
	money := modeltest.CoreObject(lib, "Money")
	order := modeltest.BusinessObject(lib, "Order")
	modeltest.Prop(order.Summary, "Price", money.Detail)
	errBoom := errors.New("boom")
	checker := content.CheckerFunc(func(model.AbstractFacet) (bool, error) {
		return false, errBoom
	})

	err := NewSchemaDependency(nil, Options{Checker: checker}).NavigateEntity(order)
	if !errors.Is(err, errBoom) {
		t.Fatalf("NavigateEntity() error = %v, want %v", err, errBoom)
	}
}

func TestSchemaDependencyThreadsAliases(t *testing.T) {
	lib := modeltest.Library("")
	order := modeltest.BusinessObject(lib, "Order")
	modeltest.Contextual(order, model.KindCustom, "Info")
	model.AddOwnerAlias(order, "Purchase")
	orderV2 := modeltest.BusinessObject(lib, "OrderV2")
	modeltest.Extend(orderV2, order)
	model.AddOwnerAlias(orderV2, "PurchaseV2")

	shipment := modeltest.BusinessObject(lib, "Shipment")
	modeltest.Prop(shipment.Summary, "Order", model.FindAlias(order.Summary.Aliases, "Purchase_Summary"))
	modeltest.Prop(shipment.Summary, "OrderV2", model.FindAlias(orderV2.Aliases, "PurchaseV2"))

	schema := &visitor.Recorder{}
	if err := NewSchemaDependency(schema, Options{}).NavigateEntity(shipment); err != nil {
		t.Fatalf("NavigateEntity() error = %v", err)
	}
	names := locals(schema.Names)
	for _, want := range []string{
		"Purchase_Summary", "Purchase", "Purchase_ID", "Purchase_Detail", "Purchase_Custom_Info",
		"PurchaseV2", "PurchaseV2_Summary", "PurchaseV2_Custom_Info",
	} {
		if !slices.Contains(names, want) {
			t.Fatalf("schema navigation missed alias %s: %v", want, names)
		}
	}
	for name, n := range countOf(names) {
		if n != 1 {
			t.Fatalf("%s visited %d times", name, n)
		}
	}

	general := &visitor.Recorder{}
	if err := NewDependency(general, Options{}).NavigateEntity(shipment); err != nil {
		t.Fatalf("NavigateEntity() error = %v", err)
	}
	if slices.Contains(locals(general.Names), "Purchase_Detail") {
		t.Fatalf("general navigation threaded alias context")
	}
}

func TestReferencedFacet(t *testing.T) {
	lib := modeltest.Library("")
	order := modeltest.BusinessObject(lib, "Order")
	info := modeltest.Contextual(order, model.KindCustom, "Info")
	res := &model.Resource{Named: model.Named{LocalName: "Orders"}, BusinessObject: order}
	lib.AddMember(res)
	facet := &model.ActionFacet{Owner: res, LocalName: "Create", ReferenceType: model.ReferenceRequired, ReferenceFacetName: "Custom_Info"}

	if got := ReferencedFacet(facet); got != model.NamedEntity(info) {
		t.Fatalf("ReferencedFacet() = %v, want Order_Custom_Info", got)
	}
	facet.ReferenceType = model.ReferenceNone
	if got := ReferencedFacet(facet); got != nil {
		t.Fatalf("ReferencedFacet(none) = %v", got)
	}
}
