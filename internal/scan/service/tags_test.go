package service

import (
	"strings"
	"testing"
)

func TestResolveTags_SystemVocabularyFirst(t *testing.T) {
	resolved := ResolveTags([]string{"antique", "rare"})

	if len(resolved) != len(systemTagVocabulary)+2 {
		t.Fatalf("expected %d tags, got %d", len(systemTagVocabulary)+2, len(resolved))
	}
	if resolved[0] != systemTagVocabulary[0] {
		t.Fatalf("expected system tags first, got %q", resolved[0])
	}
	if resolved[len(resolved)-1] != "rare" {
		t.Fatalf("expected caller tags last, got %q", resolved[len(resolved)-1])
	}
}

func TestResolveTags_CaseInsensitiveDedupe(t *testing.T) {
	resolved := ResolveTags([]string{"Wine", "WINE", "wine"})

	count := 0
	for _, tag := range resolved {
		if strings.EqualFold(tag, "wine") {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one wine tag, got %d", count)
	}
	// first-seen casing wins; the system vocabulary is lowercase
	for _, tag := range resolved {
		if tag == "Wine" || tag == "WINE" {
			t.Fatalf("caller casing overrode first-seen casing: %q", tag)
		}
	}
}

func TestResolveTags_Idempotent(t *testing.T) {
	once := ResolveTags(nil)
	twice := ResolveTags(once)

	if len(once) != len(twice) {
		t.Fatalf("resolution not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("order changed at %d: %q vs %q", i, once[i], twice[i])
		}
	}
}

func TestResolveTags_BlankTagsIgnored(t *testing.T) {
	resolved := ResolveTags([]string{"", "   ", "valid"})

	for _, tag := range resolved {
		if strings.TrimSpace(tag) == "" {
			t.Fatal("blank tag survived resolution")
		}
	}
	if resolved[len(resolved)-1] != "valid" {
		t.Fatalf("expected valid tag kept, got %q", resolved[len(resolved)-1])
	}
}
