package query

import (
	"net/url"
	"slices"
	"testing"

	apperrors "github.com/louisbranch/chartlab/internal/platform/errors"
)

func TestInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "blank uses default", raw: "", want: 7},
		{name: "parses", raw: " 12 ", want: 12},
		{name: "negative", raw: "-3", want: -3},
		{name: "invalid", raw: "twelve", wantErr: true},
		{name: "float", raw: "1.5", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Int(url.Values{"n": {tc.raw}}, "n", 7)
			if tc.wantErr {
				if apperrors.GetCode(err) != apperrors.CodeInvalidArgument {
					t.Fatalf("Int(%q) code = %v, want %v", tc.raw, apperrors.GetCode(err), apperrors.CodeInvalidArgument)
				}
				if field := apperrors.Metadata(err)["Field"]; field != "n" {
					t.Fatalf("Field = %q, want %q", field, "n")
				}
				return
			}
			if err != nil {
				t.Fatalf("Int(%q) error = %v", tc.raw, err)
			}
			if got != tc.want {
				t.Fatalf("Int(%q) = %d, want %d", tc.raw, got, tc.want)
			}
		})
	}
}

func TestFloat(t *testing.T) {
	t.Parallel()

	if got, err := Float(url.Values{}, "r1", 0.5); err != nil || got != 0.5 {
		t.Fatalf("Float(blank) = %v, %v, want 0.5", got, err)
	}
	if got, err := Float(url.Values{"r1": {"2.25"}}, "r1", 0); err != nil || got != 2.25 {
		t.Fatalf("Float(2.25) = %v, %v, want 2.25", got, err)
	}
	for _, raw := range []string{"abc", "NaN", "Inf"} {
		if _, err := Float(url.Values{"r1": {raw}}, "r1", 0); err == nil {
			t.Fatalf("Float(%q) error = nil, want error", raw)
		}
	}
}

func TestBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		def  bool
		want bool
	}{
		{raw: "on", want: true},
		{raw: "TRUE", want: true},
		{raw: "off", def: true, want: false},
		{raw: "0", def: true, want: false},
		{raw: "", def: true, want: true},
		{raw: "maybe", want: false},
	}
	for _, tc := range tests {
		if got := Bool(url.Values{"wf": {tc.raw}}, "wf", tc.def); got != tc.want {
			t.Fatalf("Bool(%q, %v) = %v, want %v", tc.raw, tc.def, got, tc.want)
		}
	}
}

func TestStringsSkipsBlanks(t *testing.T) {
	t.Parallel()

	got := Strings(url.Values{"dim": {"height", " ", "PTS "}}, "dim")
	if want := []string{"height", "PTS"}; !slices.Equal(got, want) {
		t.Fatalf("Strings() = %v, want %v", got, want)
	}
	if got := String(url.Values{}, "x", "height"); got != "height" {
		t.Fatalf("String(blank) = %q, want %q", got, "height")
	}
}
