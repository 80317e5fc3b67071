package match

import (
	"slices"
	"testing"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"Items", []string{"items"}},
		{"orderID", []string{"order", "id"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"getHTTPResponse", []string{"get", "http", "response"}},
		{"HTTP2Server", []string{"http2", "server"}},
		{"line_item", []string{"line", "item"}},
		{"shop.Order", []string{"shop.", "order"}},
	}

	for _, tt := range tests {
		if got := Tokens(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("Tokens(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeAndStem(t *testing.T) {
	tests := []struct {
		in, norm, stem string
	}{
		{"LineItem", "lineitem", "lineitem"},
		{"line_item", "lineitem", "lineitem"},
		{"OrderBuilder", "orderbuilder", "order"},
		{"orderValue", "ordervalue", "order"},
		{"Builder", "builder", "builder"},
		{"AddressBuilderFactory", "addressbuilderfactory", "addressbuilderfactory"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.norm {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.norm)
		}

		if got := Stem(tt.in); got != tt.stem {
			t.Errorf("Stem(%q) = %q, want %q", tt.in, got, tt.stem)
		}
	}
}
