package aliases

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jacoelho/otm/internal/facets"
	"github.com/jacoelho/otm/internal/ghost"
	"github.com/jacoelho/otm/internal/model"
	"github.com/jacoelho/otm/internal/modeltest"
)

func aliasNames(list []*model.Alias) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.LocalName)
	}
	return out
}

func TestAliasRoundTrip(t *testing.T) {
	lib := modeltest.Library("")
	order := modeltest.BusinessObject(lib, "Order")
	modeltest.Contextual(order, model.KindCustom, "Info")
	model.AddOwnerAlias(order, "Purchase")

	for _, facet := range facets.AllFacets(order) {
		for _, a := range facet.Aliases {
			owner := OwnerAlias(a)
			if owner == nil || owner.IsGhost() {
				t.Fatalf("OwnerAlias(%s) = %v, want declared owner alias", a.LocalName, owner)
			}
			back := FacetAlias(owner, facet.Kind, facet.Context, facet.Label)
			if back != a {
				t.Fatalf("FacetAlias(OwnerAlias(%s)) = %v", a.LocalName, back)
			}
		}
	}
}

func TestOwnerAliasGhost(t *testing.T) {
	lib := modeltest.Library("")
	order := modeltest.BusinessObject(lib, "Order")
	inherited := &model.Alias{LocalName: "Legacy_Summary", Owner: order.Summary}
	order.Summary.Aliases = append(order.Summary.Aliases, inherited)

	got := OwnerAlias(inherited)
	if got == nil || !got.IsGhost() {
		t.Fatalf("OwnerAlias() = %v, want a ghost", got)
	}
	if got.LocalName != "Legacy" || got.Owner != model.NamedEntity(order) {
		t.Fatalf("ghost = %s on %v", got.LocalName, got.Owner)
	}
	if len(order.Aliases) != 0 {
		t.Fatalf("ghost alias attached to owner")
	}
	if OwnerAlias(&model.Alias{LocalName: "Other", Owner: order.Summary}) != nil {
		t.Fatalf("OwnerAlias() of a non-derived name != nil")
	}
	if OwnerAlias(&model.Alias{LocalName: "Purchase", Owner: order}) != nil {
		t.Fatalf("OwnerAlias() of an owner alias != nil")
	}
}

func TestSiblingAlias(t *testing.T) {
	lib := modeltest.Library("")
	order := modeltest.BusinessObject(lib, "Order")
	model.AddOwnerAlias(order, "Purchase")
	summary := model.FindAlias(order.Summary.Aliases, "Purchase_Summary")

	got := SiblingAlias(summary, model.KindDetail)
	if got != model.FindAlias(order.Detail.Aliases, "Purchase_Detail") {
		t.Fatalf("SiblingAlias(Detail) = %v", got)
	}

	order.ID = nil
	got = SiblingAlias(summary, model.KindID)
	if got == nil || !got.IsGhost() || got.LocalName != "Purchase_ID" {
		t.Fatalf("SiblingAlias(missing ID) = %v, want ghost Purchase_ID", got)
	}
	ghostFacet, ok := got.Owner.(*model.Facet)
	if !ok || !ghostFacet.IsGhost() || ghostFacet.Owner != model.FacetOwner(order) {
		t.Fatalf("ghost alias owner = %v, want ghost ID facet of Order", got.Owner)
	}
	if SiblingAlias(summary, model.KindShared) != nil {
		t.Fatalf("SiblingAlias(unsupported kind) != nil")
	}
}

func TestCoreObjectAliases(t *testing.T) {
	lib := modeltest.Library("")
	money := modeltest.CoreObject(lib, "Money")
	cash := model.AddOwnerAlias(money, "Cash")

	simple := FacetAlias(cash, model.KindSimple, "", "")
	if simple == nil || simple.LocalName != "Cash_Simple" {
		t.Fatalf("FacetAlias(Simple) = %v", simple)
	}
	if got := OwnerAlias(simple); got != cash {
		t.Fatalf("OwnerAlias(Cash_Simple) = %v", got)
	}

	list := ListFacetAlias(cash, model.KindDetail)
	if list == nil || list.LocalName != "Cash_Detail_List" {
		t.Fatalf("ListFacetAlias(Detail) = %v", list)
	}
	if got := OwnerAlias(list); got != cash {
		t.Fatalf("OwnerAlias(Cash_Detail_List) = %v", got)
	}
	if got := SiblingAlias(simple, model.KindSummary); got != FacetAlias(cash, model.KindSummary, "", "") {
		t.Fatalf("SiblingAlias(Summary) = %v", got)
	}
}

func TestGhostFacetAliases(t *testing.T) {
	lib := modeltest.Library("")
	order := modeltest.BusinessObject(lib, "Order")
	orderV2 := modeltest.BusinessObject(lib, "OrderV2")
	modeltest.Extend(orderV2, order)
	modeltest.Contextual(order, model.KindCustom, "Info")
	model.AddOwnerAlias(orderV2, "PurchaseV2")
	model.AddOwnerAlias(orderV2, "Buy")

	ghosts := ghost.FindGhostFacets(orderV2, model.KindCustom)
	if len(ghosts) != 1 {
		t.Fatalf("len(FindGhostFacets()) = %d, want 1", len(ghosts))
	}
	got := GhostFacetAliases(ghosts[0])
	if diff := cmp.Diff([]string{"PurchaseV2_Custom_Info", "Buy_Custom_Info"}, aliasNames(got)); diff != "" {
		t.Fatalf("GhostFacetAliases() mismatch (-want +got):\n%s", diff)
	}
	for _, a := range got {
		if !a.IsGhost() || a.Owner != model.NamedEntity(ghosts[0]) {
			t.Fatalf("alias %s is not a ghost of the ghost facet", a.LocalName)
		}
		owner := OwnerAlias(a)
		if owner == nil || owner.IsGhost() || owner.Owner != model.NamedEntity(orderV2) {
			t.Fatalf("OwnerAlias(%s) = %v", a.LocalName, owner)
		}
	}
	if len(ghosts[0].Aliases) != 0 {
		t.Fatalf("ghost aliases attached to the ghost facet")
	}
}

func TestNestedGhostFacetAliases(t *testing.T) {
	lib := modeltest.Library("")
	base := modeltest.BusinessObject(lib, "B")
	child := modeltest.BusinessObject(lib, "C")
	modeltest.Extend(child, base)
	outer := modeltest.Contextual(base, model.KindCustom, "c")
	modeltest.Contextual(outer, model.KindCustom, "n")
	model.AddOwnerAlias(child, "CA")

	outerGhosts := ghost.FindGhostFacets(child, model.KindCustom)
	if len(outerGhosts) != 1 {
		t.Fatalf("len(FindGhostFacets(C)) = %d, want 1", len(outerGhosts))
	}
	if diff := cmp.Diff([]string{"CA_Custom_c"}, aliasNames(GhostFacetAliases(outerGhosts[0]))); diff != "" {
		t.Fatalf("outer GhostFacetAliases() mismatch (-want +got):\n%s", diff)
	}

	inner := ghost.FindGhostFacets(outerGhosts[0], model.KindCustom)
	if len(inner) != 1 {
		t.Fatalf("len(FindGhostFacets(outer ghost)) = %d, want 1", len(inner))
	}
	got := GhostFacetAliases(inner[0])
	if diff := cmp.Diff([]string{"CA_Custom_c_Custom_n"}, aliasNames(got)); diff != "" {
		t.Fatalf("nested GhostFacetAliases() mismatch (-want +got):\n%s", diff)
	}
	if !got[0].IsGhost() || got[0].Owner != model.NamedEntity(inner[0]) {
		t.Fatalf("alias %s is not a ghost of the nested ghost facet", got[0].LocalName)
	}
}

func TestCorresponding(t *testing.T) {
	lib := modeltest.Library("")
	order := modeltest.BusinessObject(lib, "Order")
	info := modeltest.Contextual(order, model.KindCustom, "Info")
	more := modeltest.Contextual(info, model.KindCustom, "More")
	purchase := model.AddOwnerAlias(order, "Purchase")
	summary := model.FindAlias(order.Summary.Aliases, "Purchase_Summary")
	infoAlias := model.FindAlias(info.Aliases, "Purchase_Custom_Info")
	money := modeltest.CoreObject(lib, "Money")
	cash := model.AddOwnerAlias(money, "Cash")

	cases := []struct {
		name   string
		alias  *model.Alias
		target model.NamedEntity
		want   string
	}{
		{name: "self", alias: purchase, target: order, want: "Purchase"},
		{name: "owner to facet", alias: purchase, target: order.Detail, want: "Purchase_Detail"},
		{name: "facet to owner", alias: summary, target: order, want: "Purchase"},
		{name: "facet to sibling", alias: summary, target: order.ID, want: "Purchase_ID"},
		{name: "contextual to nested", alias: infoAlias, target: more, want: "Purchase_Custom_Info_Custom_More"},
		{name: "contextual to sibling", alias: infoAlias, target: order.Summary, want: "Purchase_Summary"},
		{name: "core to list", alias: cash, target: money.SummaryList, want: "Cash_Summary_List"},
		{name: "unrelated", alias: purchase, target: money},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Corresponding(tc.alias, tc.target)
			var name string
			if got != nil {
				name = got.LocalName
			}
			if name != tc.want {
				t.Fatalf("Corresponding() = %q, want %q", name, tc.want)
			}
		})
	}
}
