package match

import (
	"slices"
	"sort"
	"testing"
)

func TestRankCandidates(t *testing.T) {
	candidates := RankCandidates("shop.Order", []string{"Placed", "order_line", "OrderBuilder", "shop.Order"})

	want := []string{"shop.Order", "OrderBuilder", "Placed", "order_line"}
	for i, name := range want {
		if candidates[i].Name != name {
			t.Errorf("position %d: got %s, want %s", i, candidates[i].Name, name)
		}
	}
}

func TestRankCandidates_StemsBuilderSuffix(t *testing.T) {
	candidates := RankCandidates("Order", []string{"Placed", "order_line", "OrderBuilder", "Order"})

	want := []string{"Order", "OrderBuilder", "order_line", "Placed"}
	for i, name := range want {
		if candidates[i].Name != name {
			t.Errorf("position %d: got %s, want %s", i, candidates[i].Name, name)
		}
	}

	if candidates[1].Score != 1 {
		t.Errorf("OrderBuilder should stem to a full match, got %f", candidates[1].Score)
	}
}

func TestRankCandidates_SpellingVariants(t *testing.T) {
	candidates := RankCandidates("CustomerID", []string{"Customer", "customer_id", "Placed", "CustomerID"})

	for _, c := range candidates[:2] {
		if c.Score != 1 {
			t.Errorf("%s: got score %f, want 1", c.Name, c.Score)
		}
	}

	if candidates[2].Name != "Customer" {
		t.Errorf("got %s third, want Customer", candidates[2].Name)
	}
}

func TestCandidateList_Sorting(t *testing.T) {
	candidates := CandidateList{
		{Name: "Tags", Score: 0.5},
		{Name: "Total", Score: 0.9},
		{Name: "Items", Score: 0.5},
	}

	sort.Sort(candidates)

	want := []string{"Total", "Items", "Tags"}
	for i, name := range want {
		if candidates[i].Name != name {
			t.Errorf("position %d: got %s, want %s", i, candidates[i].Name, name)
		}
	}
}

func TestCandidateList_TopAndThreshold(t *testing.T) {
	candidates := CandidateList{
		{Name: "A", Score: 0.9},
		{Name: "B", Score: 0.5},
		{Name: "C", Score: 0.3},
	}

	if got := len(candidates.Top(2)); got != 2 {
		t.Errorf("Top(2): got %d candidates", got)
	}

	if got := len(candidates.Top(10)); got != 3 {
		t.Errorf("Top(10): got %d candidates", got)
	}

	if got := len(candidates.AboveThreshold(0.5)); got != 2 {
		t.Errorf("AboveThreshold(0.5): got %d candidates", got)
	}
}

func TestSuggest(t *testing.T) {
	names := []string{"Order", "Address", "LineItem", "Money"}

	tests := []struct {
		target string
		want   []string
	}{
		{"Ordr", []string{"Order"}},
		{"Adress", []string{"Address"}},
		{"line_item", []string{"LineItem"}},
		{"MoneyBuilder", []string{"Money"}},
		{"orderValue", []string{"Order"}},
		{"Customer", nil},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			if got := Suggest(tt.target, names, DefaultSuggestions); !slices.Equal(got, tt.want) {
				t.Errorf("Suggest(%q) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}

	if got := Suggest("Order", nil, DefaultSuggestions); got != nil {
		t.Errorf("no names: got %v", got)
	}
}

func TestSuggest_QualifiedNamesRankBelowBareOnes(t *testing.T) {
	names := []string{"Address", "Money", "Order", "order.Address", "order.Money", "order.Order"}

	if got := Suggest("Adress", names, DefaultSuggestions); !slices.Equal(got, []string{"Address"}) {
		t.Errorf("got %v, want [Address]", got)
	}
}
