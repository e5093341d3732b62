package colour

import (
	"encoding/json"
	"fmt"
	"strings"
)

// adjust is a clamped additive change to a saturation or lightness percentage.
type adjust struct {
	delta  int
	lo, hi int
}

// keep leaves a channel unchanged.
var keep = adjust{lo: 0, hi: 100}

// by shifts a channel by delta within the full [0, 100] range.
func by(delta int) adjust { return adjust{delta: delta, lo: 0, hi: 100} }

// floor shifts a channel by delta but never below lo.
func floor(delta, lo int) adjust { return adjust{delta: delta, lo: lo, hi: 100} }

// ceil shifts a channel by delta but never above hi.
func ceil(delta, hi int) adjust { return adjust{delta: delta, lo: 0, hi: hi} }

func (a adjust) apply(v int) int {
	return clampInt(v+a.delta, a.lo, a.hi)
}

// variant derives one suggestion from the base colour.
type variant struct {
	hueOffset   float64
	saturation  adjust
	lightness   adjust
	name        string
	description string
}

// Scheme describes a named harmony and how its companion colours are derived.
type Scheme struct {
	ID          string
	Type        string
	Angle       string
	Description string
	UseCases    []string
	Mood        string
	Examples    string
	variants    []variant
}

// Suggestion is a generated companion colour. Target is the HSL that was
// requested before conversion; the colour's own HSL is recomputed from RGB
// and may differ from it by rounding.
type Suggestion struct {
	Colour      Colour
	Target      HSL
	Name        string
	Description string
}

// MarshalJSON implements json.Marshaler.
func (s Suggestion) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ColourJSON
		Target      HSL    `json:"target_hsl"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}{
		ColourJSON:  ColourJSON{Hex: s.Colour.hex, RGB: s.Colour.rgb, HSL: s.Colour.hsl},
		Target:      s.Target,
		Name:        s.Name,
		Description: s.Description,
	})
}

// SchemeReport is a scheme's metadata together with its generated suggestions.
type SchemeReport struct {
	Type        string       `json:"type"`
	Angle       string       `json:"angle"`
	Description string       `json:"description"`
	UseCases    []string     `json:"use_cases"`
	Mood        string       `json:"mood"`
	Examples    string       `json:"examples"`
	Suggestions []Suggestion `json:"suggestions"`
}

// SuggestionReport holds every scheme generated for one base colour.
type SuggestionReport struct {
	Base      Colour         `json:"base_color"`
	Harmonies []SchemeReport `json:"harmonies"`
}

// Generate derives the scheme's suggestions for base.
func (s Scheme) Generate(base Colour) SchemeReport {
	hsl := base.HSL()
	suggestions := make([]Suggestion, len(s.variants))
	for i, v := range s.variants {
		target := HSL{
			H: int(NormaliseHue(float64(hsl.H) + v.hueOffset)),
			S: v.saturation.apply(hsl.S),
			L: v.lightness.apply(hsl.L),
		}
		suggestions[i] = Suggestion{
			Colour:      NewColour(HSLToRGB(float64(target.H), float64(target.S), float64(target.L))),
			Target:      target,
			Name:        v.name,
			Description: v.description,
		}
	}

	return SchemeReport{
		Type:        s.Type,
		Angle:       s.Angle,
		Description: s.Description,
		UseCases:    append([]string(nil), s.UseCases...),
		Mood:        s.Mood,
		Examples:    s.Examples,
		Suggestions: suggestions,
	}
}

// Schemes returns every harmony scheme in report order.
func Schemes() []Scheme {
	return append([]Scheme(nil), schemes...)
}

// SchemeIDs returns the identifiers accepted by SchemeByID.
func SchemeIDs() []string {
	ids := make([]string, len(schemes))
	for i, s := range schemes {
		ids[i] = s.ID
	}
	return ids
}

// SchemeByID looks up a scheme by identifier (e.g. "split-complementary").
// Matching is case-insensitive.
func SchemeByID(id string) (Scheme, error) {
	for _, s := range schemes {
		if strings.EqualFold(s.ID, id) {
			return s, nil
		}
	}
	return Scheme{}, fmt.Errorf("%w: unknown scheme %q (valid: %s)", ErrInvalidParameter, id, strings.Join(SchemeIDs(), ", "))
}

// GenerateSuggestions produces all nine scheme reports for base.
func GenerateSuggestions(base Colour) *SuggestionReport {
	report := &SuggestionReport{
		Base:      base,
		Harmonies: make([]SchemeReport, len(schemes)),
	}
	for i, s := range schemes {
		report.Harmonies[i] = s.Generate(base)
	}
	return report
}

// GeneratePaletteSuggestions produces one report per palette colour.
func GeneratePaletteSuggestions(p *Palette) ([]*SuggestionReport, error) {
	if p == nil || p.Len() == 0 {
		return nil, fmt.Errorf("%w: suggestions need at least 1 colour", ErrEmptyPalette)
	}
	reports := make([]*SuggestionReport, p.Len())
	for i, c := range p.Colours {
		reports[i] = GenerateSuggestions(c)
	}
	return reports, nil
}
