package colour

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func findSuggestion(t *testing.T, report SchemeReport, name string) Suggestion {
	t.Helper()
	for _, s := range report.Suggestions {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("suggestion %q not found in %s", name, report.Type)
	return Suggestion{}
}

func generate(t *testing.T, id, hex string) SchemeReport {
	t.Helper()
	scheme, err := SchemeByID(id)
	if err != nil {
		t.Fatalf("SchemeByID(%q) error = %v", id, err)
	}
	return scheme.Generate(MustParseHex(hex))
}

func TestComplementaryOfRed(t *testing.T) {
	report := generate(t, SchemeComplementary, "#ff0000")

	direct := findSuggestion(t, report, "Direct Complement")
	if direct.Target != (HSL{H: 180, S: 100, L: 50}) {
		t.Errorf("Target = %v, want hsl(180, 100%%, 50%%)", direct.Target)
	}
	if direct.Colour.Hex() != "#00ffff" {
		t.Errorf("Hex = %s, want #00ffff", direct.Colour.Hex())
	}
}

func TestSchemeAdjustments(t *testing.T) {
	tests := []struct {
		scheme string
		base   string
		name   string
		want   HSL
	}{
		{SchemeComplementary, "#3366cc", "Rich Complement", HSL{H: 40, S: 75, L: 30}},
		{SchemeComplementary, "#3366cc", "Soft Complement", HSL{H: 40, S: 40, L: 70}},
		{SchemeComplementary, "#ffffff", "Soft Complement", HSL{H: 180, S: 30, L: 90}},
		{SchemeComplementary, "#000000", "Rich Complement", HSL{H: 180, S: 15, L: 20}},
		{SchemeShadesTints, "#ffffff", "Tint 1", HSL{H: 0, S: 0, L: 98}},
		{SchemeShadesTints, "#000000", "Shade 3", HSL{H: 0, S: 0, L: 5}},
		{SchemeMonochromatic, "#3366cc", "Very Light Tint", HSL{H: 220, S: 20, L: 90}},
		{SchemeMonochromatic, "#3366cc", "Vibrant Tone", HSL{H: 220, S: 90, L: 50}},
		{SchemeSplitComplementary, "#3366cc", "Soft Split +30°", HSL{H: 70, S: 45, L: 65}},
		{SchemeAnalogous, "#ff0055", "Analogous 30° Right", HSL{H: 10, S: 100, L: 50}},
		{SchemeAnalogous, "#ff0055", "Analogous 60° Left", HSL{H: 280, S: 100, L: 50}},
		{SchemeDoubleComplementary, "#ff0055", "Second Complement", HSL{H: 190, S: 100, L: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.scheme+"/"+tt.name, func(t *testing.T) {
			got := findSuggestion(t, generate(t, tt.scheme, tt.base), tt.name)
			if got.Target != tt.want {
				t.Errorf("Target = %v, want %v", got.Target, tt.want)
			}
			want := FromHSL(float64(tt.want.H), float64(tt.want.S), float64(tt.want.L))
			if got.Colour != want {
				t.Errorf("Colour = %v, want %v", got.Colour, want)
			}
		})
	}
}

func TestGenerateSuggestions(t *testing.T) {
	base := MustParseHex("#3366cc")
	report := GenerateSuggestions(base)

	if report.Base != base {
		t.Errorf("Base = %v, want %v", report.Base, base)
	}

	wantTypes := []string{
		"Complementary",
		"Analogous",
		"Triadic",
		"Split-Complementary",
		"Tetradic (Square)",
		"Rectangular (Compound)",
		"Monochromatic",
		"Double-Complementary",
		"Shades & Tints",
	}
	wantCounts := []int{3, 4, 4, 4, 3, 3, 6, 3, 6}

	var gotTypes []string
	var gotCounts []int
	for _, h := range report.Harmonies {
		gotTypes = append(gotTypes, h.Type)
		gotCounts = append(gotCounts, len(h.Suggestions))

		for _, s := range h.Suggestions {
			if s.Target.H < 0 || s.Target.H >= 360 {
				t.Errorf("%s/%s: hue %d out of range", h.Type, s.Name, s.Target.H)
			}
			if s.Target.S < 0 || s.Target.S > 100 || s.Target.L < 0 || s.Target.L > 100 {
				t.Errorf("%s/%s: target %v out of range", h.Type, s.Name, s.Target)
			}
		}
	}

	if diff := cmp.Diff(wantTypes, gotTypes); diff != "" {
		t.Errorf("scheme order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantCounts, gotCounts); diff != "" {
		t.Errorf("suggestion counts mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateSuggestionsExtremes(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#808080", "#ff00ff"} {
		for _, h := range GenerateSuggestions(MustParseHex(hex)).Harmonies {
			for _, s := range h.Suggestions {
				if s.Target.S < 0 || s.Target.S > 100 || s.Target.L < 0 || s.Target.L > 100 {
					t.Errorf("%s %s/%s: target %v out of range", hex, h.Type, s.Name, s.Target)
				}
			}
		}
	}
}

func TestSchemeByID(t *testing.T) {
	s, err := SchemeByID("Split-Complementary")
	if err != nil {
		t.Fatalf("SchemeByID() error = %v", err)
	}
	if s.ID != SchemeSplitComplementary {
		t.Errorf("ID = %q, want %q", s.ID, SchemeSplitComplementary)
	}

	if _, err := SchemeByID("pentadic"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}

	if got := len(SchemeIDs()); got != 9 {
		t.Errorf("len(SchemeIDs()) = %d, want 9", got)
	}
}

func TestGeneratePaletteSuggestions(t *testing.T) {
	reports, err := GeneratePaletteSuggestions(mustPalette(t, "#ff0000", "#00ff00"))
	if err != nil {
		t.Fatalf("GeneratePaletteSuggestions() error = %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	if reports[1].Base.Hex() != "#00ff00" {
		t.Errorf("second base = %s, want #00ff00", reports[1].Base.Hex())
	}

	if _, err := GeneratePaletteSuggestions(NewPalette(nil)); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("expected ErrEmptyPalette, got %v", err)
	}
}

func TestSuggestionJSON(t *testing.T) {
	report := generate(t, SchemeComplementary, "#ff0000")
	data, err := json.Marshal(report.Suggestions[0])
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	for _, want := range []string{`"hex":"#00ffff"`, `"target_hsl":{"h":180,"s":100,"l":50}`, `"name":"Direct Complement"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("JSON %s missing %s", data, want)
		}
	}
}
