package service

import (
	"strings"
	"testing"

	"curio_backend/platform/validator"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestResolveLanguage(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"NL", "nl"},
		{" fr ", "fr"},
		{"de", "de"},
		{"es", "es"},
		{"it", "it"},
		{"pt", "pt"},
		{"ja", "en"},
		{"", "en"},
		{"en-US", "en"},
	}

	for _, tc := range cases {
		if got := resolveLanguage(tc.in); got != tc.want {
			t.Errorf("resolveLanguage(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildSpokenText_NotFound(t *testing.T) {
	got := buildSpokenText("nl", "Barolo", nil)
	if !strings.Contains(got, "Barolo") || !strings.Contains(got, "niet vinden") {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestBuildSpokenText_SingleMatchWithValueAndQuantity(t *testing.T) {
	items := []spokenItem{{Name: "Barolo 2015", EstimatedValue: floatPtr(45), Quantity: intPtr(3)}}

	got := buildSpokenText("en", "barolo", items)
	for _, fragment := range []string{"Barolo 2015", "45 euros", "3 of them"} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("reply %q missing %q", got, fragment)
		}
	}
}

func TestBuildSpokenText_OmitsZeroValueAndSingleQuantity(t *testing.T) {
	items := []spokenItem{{Name: "Old lamp", EstimatedValue: floatPtr(0), Quantity: intPtr(1)}}

	got := buildSpokenText("en", "lamp", items)
	if strings.Contains(got, "euros") {
		t.Fatalf("zero value must not be spoken: %q", got)
	}
	if strings.Contains(got, "of them") {
		t.Fatalf("quantity of one must not be spoken: %q", got)
	}
}

func TestBuildSpokenText_MultipleMatches(t *testing.T) {
	items := []spokenItem{{Name: "Kind of Blue"}, {Name: "Kind of Blue (reissue)"}}

	got := buildSpokenText("en", "kind of blue", items)
	if !strings.Contains(got, "2 items") {
		t.Fatalf("match count missing from %q", got)
	}
	if !strings.Contains(got, "Kind of Blue is in your collection.") {
		t.Fatalf("most recent match missing from %q", got)
	}
}

func TestBuildSpokenText_EveryLanguageHasCompleteTemplates(t *testing.T) {
	items := []spokenItem{{Name: "X", EstimatedValue: floatPtr(10), Quantity: intPtr(2)}}

	for lang := range spokenPhrases {
		found := buildSpokenText(lang, "X", items)
		missing := buildSpokenText(lang, "X", nil)
		if found == "" || missing == "" {
			t.Fatalf("language %q produced empty reply", lang)
		}
		if strings.Contains(found, "%!") || strings.Contains(missing, "%!") {
			t.Fatalf("language %q has a malformed template: %q / %q", lang, found, missing)
		}
	}
}

func TestSpokenPhrasesMatchSupportedLanguages(t *testing.T) {
	for lang := range spokenPhrases {
		if !validator.IsSupportedLanguage(lang) {
			t.Errorf("template language %q is not in the supported set", lang)
		}
	}
	for _, lang := range []string{"en", "nl", "fr", "de", "es", "it", "pt"} {
		if _, ok := spokenPhrases[lang]; !ok {
			t.Errorf("supported language %q has no templates", lang)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := formatAmount(45); got != "45" {
		t.Fatalf("expected 45, got %q", got)
	}
	if got := formatAmount(12.5); got != "12.5" {
		t.Fatalf("expected 12.5, got %q", got)
	}
}
