package i18n

import (
	"sort"
	"testing"

	"golang.org/x/text/language"
)

func TestCatalogsDefineSameKeys(t *testing.T) {
	t.Parallel()

	en := Keys(language.English)
	fr := Keys(language.French)
	sort.Strings(en)
	sort.Strings(fr)
	if len(en) != len(fr) {
		t.Fatalf("catalog sizes differ: en=%d fr=%d", len(en), len(fr))
	}
	for i := range en {
		if en[i] != fr[i] {
			t.Fatalf("catalog keys differ at %d: en=%q fr=%q", i, en[i], fr[i])
		}
	}
}

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value  string
		want   language.Tag
		wantOK bool
	}{
		{value: "fr", want: language.French, wantOK: true},
		{value: "fr-CA", want: language.French, wantOK: true},
		{value: "en-GB", want: language.English, wantOK: true},
		{value: "de", want: language.English, wantOK: false},
		{value: "", want: language.English, wantOK: false},
		{value: "!!", want: language.English, wantOK: false},
	}
	for _, tc := range tests {
		got, ok := ParseTag(tc.value)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("ParseTag(%q) = %v, %t, want %v, %t", tc.value, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestMatchTags(t *testing.T) {
	t.Parallel()

	tags, _, err := language.ParseAcceptLanguage("de-DE,fr;q=0.8,en;q=0.5")
	if err != nil {
		t.Fatalf("parse accept language: %v", err)
	}
	if got := MatchTags(tags); got != language.French {
		t.Fatalf("MatchTags() = %v, want fr", got)
	}
	if got := MatchTags(nil); got != language.English {
		t.Fatalf("MatchTags(nil) = %v, want en", got)
	}
}

func TestTextFormatsArguments(t *testing.T) {
	t.Parallel()

	if got := Text(language.English, "pbox.nodes", 3); got != "Number of nodes: 3" {
		t.Fatalf("Text(en) = %q", got)
	}
	if got := Text(language.French, "pbox.nodes", 3); got != "Nombre de nœuds : 3" {
		t.Fatalf("Text(fr) = %q", got)
	}
}

func TestFormatRendersMetadata(t *testing.T) {
	t.Parallel()

	got := Format(language.English, "error.UNKNOWN_COLUMN", map[string]string{"Column": "age"})
	if got != "Unknown column age." {
		t.Fatalf("Format() = %q", got)
	}
	got = Format(language.French, "radial.error.l_max", map[string]string{"N": "2", "Max": "1"})
	if got != "Pour n = 2, la valeur maximale de l est 1." {
		t.Fatalf("Format(fr) = %q", got)
	}
	if got := Format(language.English, "missing.key", nil); got != "missing.key" {
		t.Fatalf("Format(missing) = %q, want key", got)
	}
}
