package arabicdate

import (
	"context"
	"slices"
	"testing"
)

func TestConversionConfigSupports(t *testing.T) {
	tests := []struct {
		name      string
		supported []string
		locale    string
		expected  bool
	}{
		{"default list", nil, "ar", true},
		{"default list other", nil, "en", false},
		{"case insensitive", nil, "AR", true},
		{"underscore region", nil, "ar_SA", true},
		{"script and region", nil, "ar-Arab-EG", true},
		{"blank locale", nil, "", false},
		{"empty list", []string{}, "ar", false},
		{"regional only", []string{"ar-EG"}, "ar", false},
		{"regional exact", []string{"ar-EG"}, "ar_eg", true},
		{"several", []string{"fa", "ar"}, "fa-IR", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.SupportedLocales = tt.supported
			if got := cfg.Supports(tt.locale); got != tt.expected {
				t.Errorf("Supports(%q) with %v = %v; want %v", tt.locale, tt.supported, got, tt.expected)
			}
		})
	}
}

func TestConversionConfigMatchLocale(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SupportedLocales = []string{"ar", "fa"}

	tests := []struct {
		header   string
		expected string
		ok       bool
	}{
		{"ar-SA,en;q=0.8", "ar", true},
		{"en;q=0.9, fa-IR;q=0.5", "fa", true},
		{"en-US", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, ok := cfg.MatchLocale(tt.header)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("MatchLocale(%q) = %q, %v; want %q, %v", tt.header, got, ok, tt.expected, tt.ok)
			}
		})
	}

	cfg.SupportedLocales = []string{}
	if _, ok := cfg.MatchLocale("ar"); ok {
		t.Fatal("expected no match with an empty list")
	}
}

func TestLocaleChain(t *testing.T) {
	chain := localeChain(" ar_Arab_EG ")
	if len(chain) == 0 || chain[0] != "ar-Arab-EG" {
		t.Fatalf("localeChain head = %v", chain)
	}
	if !slices.Contains(chain, "ar") {
		t.Fatalf("localeChain(%q) = %v; want it to reach ar", "ar_Arab_EG", chain)
	}
	if got := localeChain(""); got != nil {
		t.Fatalf("localeChain(\"\") = %v", got)
	}
}

func TestNormalizeLocales(t *testing.T) {
	got := normalizeLocales([]string{" fa ", "ar_SA", "ar-SA", "", "ar"})
	want := []string{"ar", "ar-SA", "fa"}
	if !slices.Equal(got, want) {
		t.Fatalf("normalizeLocales() = %v; want %v", got, want)
	}
	if got := normalizeLocales([]string{" ", ""}); got != nil {
		t.Fatalf("normalizeLocales(blank) = %v", got)
	}
}

func TestLocaleContext(t *testing.T) {
	ctx := ContextWithLocale(context.Background(), "ar_EG")
	if got := LocaleFromContext(ctx); got != "ar-EG" {
		t.Fatalf("LocaleFromContext() = %q", got)
	}
	if got := LocaleFromContext(context.Background()); got != "" {
		t.Fatalf("LocaleFromContext(empty) = %q", got)
	}
	if got := ctxKeyLocale.String(); got != "arabicdate/locale" {
		t.Fatalf("context key = %q", got)
	}
}
