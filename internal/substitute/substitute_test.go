package substitute

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jacoelho/otm/internal/content"
	"github.com/jacoelho/otm/internal/model"
	"github.com/jacoelho/otm/internal/modeltest"
)

func facetNames(list []model.AbstractFacet) []string {
	out := make([]string, 0, len(list))
	for _, f := range list {
		out = append(out, f.Name().Local)
	}
	return out
}

func TestFindNonEmptyFacetMoney(t *testing.T) {
	lib := modeltest.Library("")
	money := modeltest.CoreObject(lib, "Money")
	order := modeltest.BusinessObject(lib, "Order")

	got, err := FindNonEmptyFacet(nil, order.Summary, money.Detail)
	if err != nil {
		t.Fatalf("FindNonEmptyFacet() error = %v", err)
	}
	if got != model.AbstractFacet(money.Detail) {
		t.Fatalf("FindNonEmptyFacet() = %s, want unchanged when nothing has content", got.Name().Local)
	}

	money.Simple.Type = modeltest.String(lib)
	got, err = FindNonEmptyFacet(nil, order.Summary, money.Detail)
	if err != nil {
		t.Fatalf("FindNonEmptyFacet() error = %v", err)
	}
	if got != model.AbstractFacet(money.Simple) {
		t.Fatalf("FindNonEmptyFacet() = %s, want Money_Simple", got.Name().Local)
	}

	modeltest.Attrs(money.Summary, "currency")
	got, err = FindNonEmptyFacet(nil, order.Summary, money.Detail)
	if err != nil {
		t.Fatalf("FindNonEmptyFacet() error = %v", err)
	}
	if got != model.AbstractFacet(money.Summary) {
		t.Fatalf("FindNonEmptyFacet() = %s, want Money_Summary", got.Name().Local)
	}
}

func TestFindNonEmptyFacetKeepsContent(t *testing.T) {
	lib := modeltest.Library("")
	order := modeltest.BusinessObject(lib, "Order")
	customer := modeltest.BusinessObject(lib, "Customer")
	modeltest.Attrs(customer.Detail, "email")
	modeltest.Attrs(customer.ID, "id")

	got, err := FindNonEmptyFacet(content.Default, order.Detail, customer.Detail)
	if err != nil {
		t.Fatalf("FindNonEmptyFacet() error = %v", err)
	}
	if got != model.AbstractFacet(customer.Detail) {
		t.Fatalf("FindNonEmptyFacet() = %s, want Customer_Detail", got.Name().Local)
	}

	got, err = FindNonEmptyFacet(content.Default, order.Detail, customer.Summary)
	if err != nil {
		t.Fatalf("FindNonEmptyFacet() error = %v", err)
	}
	if got != model.AbstractFacet(customer.ID) {
		t.Fatalf("FindNonEmptyFacet() = %s, want Customer_ID", got.Name().Local)
	}
}

func TestFindNonEmptyFacetInheritedContent(t *testing.T) {
	lib := modeltest.Library("")
	base := modeltest.BusinessObject(lib, "Base")
	leaf := modeltest.BusinessObject(lib, "Leaf")
	order := modeltest.BusinessObject(lib, "Order")
	modeltest.Extend(leaf, base)
	modeltest.Attrs(base.Summary, "name")

	got, err := FindNonEmptyFacet(nil, order.Summary, leaf.Summary)
	if err != nil {
		t.Fatalf("FindNonEmptyFacet() error = %v", err)
	}
	if got != model.AbstractFacet(leaf.Summary) {
		t.Fatalf("FindNonEmptyFacet() = %s, want the inherited-content facet", got.Name().Local)
	}
}

func TestFindNonEmptyFacetIdempotent(t *testing.T) {
	lib := modeltest.Library("")
	order := modeltest.BusinessObject(lib, "Order")
	customer := modeltest.BusinessObject(lib, "Customer")
	modeltest.Attrs(customer.ID, "id")
	money := modeltest.CoreObject(lib, "Money")
	modeltest.Attrs(money.Summary, "currency")

	refs := []model.AbstractFacet{customer.ID, customer.Summary, customer.Detail, money.Simple, money.Summary, money.Detail}
	for _, ref := range refs {
		first, err := FindNonEmptyFacet(nil, order.Detail, ref)
		if err != nil {
			t.Fatalf("FindNonEmptyFacet(%s) error = %v", ref.Name().Local, err)
		}
		second, err := FindNonEmptyFacet(nil, order.Detail, first)
		if err != nil {
			t.Fatalf("FindNonEmptyFacet(%s) error = %v", first.Name().Local, err)
		}
		if first != second {
			t.Fatalf("not idempotent for %s: %s then %s", ref.Name().Local, first.Name().Local, second.Name().Local)
		}
	}
}

func TestFindNonEmptyFacetCheckerError(t *testing.T) {
	lib := modeltest.Library("")
	order := modeltest.BusinessObject(lib, "Order")
	customer := modeltest.BusinessObject(lib, "Customer")
	errBoom := errors.New("boom")

	calls := 0
	checker := content.CheckerFunc(func(facet model.AbstractFacet) (bool, error) {
		calls++
		if facet == model.AbstractFacet(customer.ID) {
			return false, errBoom
		}
		return false, nil
	})
	got, err := FindNonEmptyFacet(checker, order.Summary, customer.Summary)
	if !errors.Is(err, errBoom) {
		t.Fatalf("FindNonEmptyFacet() error = %v, want %v", err, errBoom)
	}
	if got != model.AbstractFacet(customer.Summary) {
		t.Fatalf("FindNonEmptyFacet() = %s on error, want the referenced facet", got.Name().Local)
	}
	if calls != 2 {
		t.Fatalf("checker calls = %d, want 2", calls)
	}
}

func TestAlternateFacets(t *testing.T) {
	lib := modeltest.Library("")
	order := modeltest.BusinessObject(lib, "Order")
	customer := modeltest.BusinessObject(lib, "Customer")
	find := modeltest.Contextual(order, model.KindQuery, "Find")
	info := modeltest.Contextual(customer, model.KindCustom, "Info")
	money := modeltest.CoreObject(lib, "Money")
	amount := modeltest.CoreObject(lib, "Amount")
	payment := modeltest.ChoiceObject(lib, "Payment")
	ext := &model.ExtensionPointFacet{Extension: &model.Extension{Extends: order.Summary}}
	lib.AddMember(ext)

	cases := []struct {
		name       string
		origin     model.AbstractFacet
		referenced model.AbstractFacet
		want       []string
	}{
		{name: "bo to bo summary", origin: order.Detail, referenced: customer.Summary, want: []string{"Customer_ID", "Customer_Detail"}},
		{name: "bo to bo id", origin: order.Detail, referenced: customer.ID, want: []string{"Customer_Summary", "Customer_Detail"}},
		{name: "bo to bo detail", origin: order.Detail, referenced: customer.Detail, want: []string{"Customer_Summary", "Customer_ID"}},
		{name: "bo to bo custom", origin: order.Detail, referenced: info, want: []string{"Customer_Summary", "Customer_ID"}},
		{name: "query origin never upward", origin: find, referenced: customer.Summary, want: []string{"Customer_ID"}},
		{name: "bo to core detail", origin: order.Summary, referenced: money.Detail, want: []string{"Money_Summary", "Money_Simple"}},
		{name: "core to core summary", origin: amount.Summary, referenced: money.Summary, want: []string{"Money_Simple", "Money_Detail"}},
		{name: "core to core simple", origin: amount.Summary, referenced: money.Simple, want: []string{}},
		{name: "core to bo id", origin: amount.Detail, referenced: customer.ID, want: []string{"Customer_Summary", "Customer_Detail"}},
		{name: "core to bo custom", origin: amount.Detail, referenced: info, want: []string{}},
		{name: "extension to bo summary", origin: ext, referenced: customer.Summary, want: []string{"Customer_ID"}},
		{name: "extension to bo id", origin: ext, referenced: customer.ID, want: []string{}},
		{name: "extension to core detail", origin: ext, referenced: money.Detail, want: []string{"Money_Summary"}},
		{name: "core to list", origin: amount.Detail, referenced: money.SummaryList, want: []string{"Money_Simple_List", "Money_Detail_List"}},
		{name: "choice origin", origin: payment.Shared, referenced: customer.Summary, want: []string{}},
		{name: "bo to list", origin: order.Summary, referenced: money.DetailList, want: []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := facetNames(AlternateFacets(tc.origin, tc.referenced))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("AlternateFacets() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOwnerPairString(t *testing.T) {
	if got := pairCoreToList.String(); got != "core->list" {
		t.Fatalf("String() = %q", got)
	}
}
