package ghost

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jacoelho/otm/internal/model"
	"github.com/jacoelho/otm/internal/modeltest"
)

func identities(list []*model.Facet) []string {
	out := make([]string, 0, len(list))
	for _, f := range list {
		out = append(out, f.Identity())
	}
	return out
}

func TestFindGhostFacetsInheritedCustom(t *testing.T) {
	lib := modeltest.Library("")
	order := modeltest.BusinessObject(lib, "Order")
	orderV2 := modeltest.BusinessObject(lib, "OrderV2")
	modeltest.Extend(orderV2, order)
	custom1 := modeltest.Contextual(order, model.KindCustom, "Custom1")
	modeltest.Attrs(custom1, "note")

	ghosts := FindGhostFacets(orderV2, model.KindCustom)
	if len(ghosts) != 1 {
		t.Fatalf("len(FindGhostFacets()) = %d, want 1", len(ghosts))
	}
	g := ghosts[0]
	if g.Identity() != "Custom_Custom1" {
		t.Fatalf("Identity() = %q", g.Identity())
	}
	if g.Owner != model.FacetOwner(orderV2) {
		t.Fatalf("ghost owner = %v, want OrderV2", g.Owner)
	}
	if g.HasDeclaredMembers() {
		t.Fatalf("ghost declares members")
	}
	if !g.IsGhost() || g.GhostOf() != custom1 {
		t.Fatalf("ghost does not record its source")
	}
	if g.LocalName() != "OrderV2_Custom_Custom1" {
		t.Fatalf("LocalName() = %q", g.LocalName())
	}
	if len(orderV2.Custom) != 0 {
		t.Fatalf("ghost attached to owner")
	}
}

func TestFindGhostFacetsSkipsDeclared(t *testing.T) {
	lib := modeltest.Library("")
	base := modeltest.BusinessObject(lib, "Base")
	leaf := modeltest.BusinessObject(lib, "Leaf")
	modeltest.Extend(leaf, base)
	modeltest.Contextual(base, model.KindQuery, "Find")
	modeltest.Contextual(base, model.KindQuery, "List")
	modeltest.Contextual(leaf, model.KindQuery, "Find")

	got := identities(FindGhostFacets(leaf, model.KindQuery))
	if diff := cmp.Diff([]string{"Query_List"}, got); diff != "" {
		t.Fatalf("FindGhostFacets() mismatch (-want +got):\n%s", diff)
	}
}

func TestFindGhostFacetsNearestAncestorWins(t *testing.T) {
	lib := modeltest.Library("")
	base := modeltest.BusinessObject(lib, "Base")
	mid := modeltest.BusinessObject(lib, "Mid")
	leaf := modeltest.BusinessObject(lib, "Leaf")
	modeltest.Extend(mid, base)
	modeltest.Extend(leaf, mid)
	modeltest.Contextual(base, model.KindCustom, "Info")
	modeltest.Contextual(base, model.KindCustom, "Audit")
	midInfo := modeltest.Contextual(mid, model.KindCustom, "Info")

	ghosts := FindGhostFacets(leaf, model.KindCustom)
	if diff := cmp.Diff([]string{"Custom_Info", "Custom_Audit"}, identities(ghosts)); diff != "" {
		t.Fatalf("FindGhostFacets() mismatch (-want +got):\n%s", diff)
	}
	if ghosts[0].GhostOf() != midInfo {
		t.Fatalf("ghost Info stands for %v, want Mid's facet", ghosts[0].GhostOf().LocalName())
	}
}

func TestFindGhostFacetsExcludesLocal(t *testing.T) {
	lib := modeltest.Library("")
	base := modeltest.BusinessObject(lib, "Base")
	leaf := modeltest.BusinessObject(lib, "Leaf")
	modeltest.Extend(leaf, base)
	local := modeltest.Contextual(base, model.KindCustom, "Private")
	local.Local = true

	if got := FindGhostFacets(leaf, model.KindCustom); len(got) != 0 {
		t.Fatalf("FindGhostFacets() = %v, want none", identities(got))
	}
}

func TestFindGhostFacetsFreshAllocation(t *testing.T) {
	lib := modeltest.Library("")
	base := modeltest.ChoiceObject(lib, "Payment")
	leaf := modeltest.ChoiceObject(lib, "PaymentV2")
	modeltest.Extend(leaf, base)
	modeltest.Contextual(base, model.KindChoice, "Card")

	first := FindGhostFacets(leaf, model.KindChoice)
	second := FindGhostFacets(leaf, model.KindChoice)
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("ghost counts = %d, %d, want 1, 1", len(first), len(second))
	}
	if first[0] == second[0] {
		t.Fatalf("ghosts are shared across calls")
	}
	if first[0].Identity() != second[0].Identity() || first[0].Owner != second[0].Owner || first[0].GhostOf() != second[0].GhostOf() {
		t.Fatalf("ghosts differ structurally across calls")
	}
}

func TestFindGhostFacetsCycle(t *testing.T) {
	lib := modeltest.Library("")
	x := modeltest.BusinessObject(lib, "X")
	y := modeltest.BusinessObject(lib, "Y")
	modeltest.Extend(x, y)
	modeltest.Extend(y, x)
	modeltest.Contextual(x, model.KindUpdate, "Patch")
	modeltest.Contextual(y, model.KindUpdate, "Put")

	got := identities(FindGhostFacets(x, model.KindUpdate))
	if diff := cmp.Diff([]string{"Update_Put"}, got); diff != "" {
		t.Fatalf("FindGhostFacets() mismatch (-want +got):\n%s", diff)
	}
}

func TestFindGhostFacetsNested(t *testing.T) {
	lib := modeltest.Library("")
	base := modeltest.BusinessObject(lib, "Base")
	leaf := modeltest.BusinessObject(lib, "Leaf")
	modeltest.Extend(leaf, base)
	baseInfo := modeltest.Contextual(base, model.KindCustom, "Info")
	modeltest.Contextual(baseInfo, model.KindCustom, "More")
	leafInfo := modeltest.Contextual(leaf, model.KindCustom, "Info")

	got := FindGhostFacets(leafInfo, model.KindCustom)
	if diff := cmp.Diff([]string{"Custom_More"}, identities(got)); diff != "" {
		t.Fatalf("FindGhostFacets(nested) mismatch (-want +got):\n%s", diff)
	}
	if got[0].LocalName() != "Leaf_Custom_Info_Custom_More" {
		t.Fatalf("LocalName() = %q", got[0].LocalName())
	}
}

func TestFindAllGhostFacets(t *testing.T) {
	lib := modeltest.Library("")
	base := modeltest.BusinessObject(lib, "Base")
	leaf := modeltest.BusinessObject(lib, "Leaf")
	modeltest.Extend(leaf, base)
	modeltest.Contextual(base, model.KindUpdate, "Patch")
	modeltest.Contextual(base, model.KindCustom, "Info")
	modeltest.Contextual(base, model.KindQuery, "Find")

	got := identities(FindAllGhostFacets(leaf))
	want := []string{"Custom_Info", "Query_Find", "Update_Patch"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FindAllGhostFacets() mismatch (-want +got):\n%s", diff)
	}
	if got := FindGhostFacets(leaf, model.KindShared); got != nil {
		t.Fatalf("FindGhostFacets(unsupported kind) = %v", identities(got))
	}
}

func TestFindGhostActionFacets(t *testing.T) {
	lib := modeltest.Library("")
	bo := modeltest.BusinessObject(lib, "Order")
	base := &model.Resource{Named: model.Named{LocalName: "OrderResource"}, BusinessObject: bo}
	leaf := &model.Resource{Named: model.Named{LocalName: "OrderResourceV2"}, BusinessObject: bo}
	lib.AddMember(base)
	lib.AddMember(leaf)
	modeltest.Extend(leaf, base)
	base.ActionFacets = []*model.ActionFacet{
		{Owner: base, LocalName: "Create", ReferenceType: model.ReferenceRequired, ReferenceFacetName: "Detail", ReferenceRepeat: 3, BasePayload: bo.Summary},
		{Owner: base, LocalName: "Read", ReferenceType: model.ReferenceOptional},
	}
	leaf.ActionFacets = []*model.ActionFacet{{Owner: leaf, LocalName: "Read"}}

	ghosts := FindGhostActionFacets(leaf)
	if len(ghosts) != 1 {
		t.Fatalf("len(FindGhostActionFacets()) = %d, want 1", len(ghosts))
	}
	g := ghosts[0]
	if g.Owner != leaf || g.LocalName != "Create" || !g.IsGhost() {
		t.Fatalf("ghost = %+v", g)
	}
	if g.ReferenceType != model.ReferenceRequired || g.ReferenceFacetName != "Detail" || g.ReferenceRepeat != 3 {
		t.Fatalf("ghost reference not copied: %+v", g)
	}
	if g.BasePayload != model.NamedEntity(bo.Summary) {
		t.Fatalf("ghost base payload not copied")
	}
	if g.Name().Local != "OrderResourceV2_Create" {
		t.Fatalf("Name() = %q", g.Name().Local)
	}
	if FindGhostActionFacets(base) != nil {
		t.Fatalf("root resource has ghosts")
	}
}
