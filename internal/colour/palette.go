// Package colour provides colour extraction, harmony and accessibility analysis.
package colour

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a colour in 8-bit sRGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// HSL is a colour's hue (0-359 degrees), saturation and lightness (0-100 percent),
// rounded to whole numbers.
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// String returns the HSL colour as a string in the format "hsl(h, s%, l%)".
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hsl.H, hsl.S, hsl.L)
}

// Colour is an immutable colour value. Its RGB, HSL and hex forms are derived
// from each other when the value is built and never change afterwards.
type Colour struct {
	rgb RGB
	hsl HSL
	hex string
}

// NewColour builds a Colour from an RGB triple.
func NewColour(rgb RGB) Colour {
	h, s, l := RGBToHSL(rgb)
	return Colour{
		rgb: rgb,
		hsl: roundHSL(h, s, l),
		hex: rgb.Hex(),
	}
}

// FromHSL builds a Colour from hue (degrees), saturation and lightness (percent).
// Out-of-range saturation and lightness are clamped and the hue is normalised.
func FromHSL(h, s, l float64) Colour {
	return NewColour(HSLToRGB(NormaliseHue(h), clampPercent(s), clampPercent(l)))
}

// ParseHex parses a hex colour string such as "#1a2b3c", "1A2B3C" or "#abc".
// Digits are validated here; go-colorful only converts, since its Sscanf-based
// parser accepts sign characters such as "#+1+1+1".
func ParseHex(s string) (Colour, error) {
	digits := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if len(digits) != 3 && len(digits) != 6 {
		return Colour{}, fmt.Errorf("%w: invalid hex colour %q: must be 3 or 6 hex digits", ErrInvalidParameter, s)
	}
	for _, c := range digits {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return Colour{}, fmt.Errorf("%w: invalid hex colour %q: unexpected character %q", ErrInvalidParameter, s, c)
		}
	}

	parsed, err := colorful.Hex("#" + digits)
	if err != nil {
		return Colour{}, fmt.Errorf("convert hex colour %q: %w", s, err)
	}
	r, g, b := parsed.RGB255()
	return NewColour(RGB{R: r, G: g, B: b}), nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for package-level constants and tests.
func MustParseHex(s string) Colour {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGB returns the colour's sRGB channels.
func (c Colour) RGB() RGB { return c.rgb }

// HSL returns the colour's rounded HSL representation.
func (c Colour) HSL() HSL { return c.hsl }

// Hex returns the colour as a lowercase "#rrggbb" string.
func (c Colour) Hex() string { return c.hex }

// String implements fmt.Stringer.
func (c Colour) String() string {
	return fmt.Sprintf("%s (%s, %s)", c.hex, c.rgb, c.hsl)
}

// colorful converts the colour for use with go-colorful.
func (c Colour) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.rgb.R) / 255.0,
		G: float64(c.rgb.G) / 255.0,
		B: float64(c.rgb.B) / 255.0,
	}
}

// DeltaE returns the CIEDE2000 perceptual difference between two colours.
func DeltaE(a, b Colour) float64 {
	return a.colorful().DistanceCIEDE2000(b.colorful()) * 100
}

// ColourJSON is the wire shape of a Colour.
type ColourJSON struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
	HSL HSL    `json:"hsl"`
}

// MarshalJSON implements json.Marshaler.
func (c Colour) MarshalJSON() ([]byte, error) {
	return json.Marshal(ColourJSON{Hex: c.hex, RGB: c.rgb, HSL: c.hsl})
}

// UnmarshalJSON implements json.Unmarshaler. The hex field wins when present;
// otherwise the colour is rebuilt from rgb. Any supplied hsl is recomputed.
func (c *Colour) UnmarshalJSON(data []byte) error {
	var raw struct {
		Hex string `json:"hex"`
		RGB *RGB   `json:"rgb"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.Hex != "":
		parsed, err := ParseHex(raw.Hex)
		if err != nil {
			return err
		}
		*c = parsed
	case raw.RGB != nil:
		*c = NewColour(*raw.RGB)
	default:
		return fmt.Errorf("%w: colour requires hex or rgb", ErrInvalidParameter)
	}
	return nil
}

// Palette is an ordered collection of colours. Weights, when present, hold
// the share of sampled pixels each colour represents and sum to 1.
type Palette struct {
	Colours []Colour
	Weights []float64
}

// NewPalette creates a new Palette with the given colours.
func NewPalette(colours []Colour) *Palette {
	return &Palette{Colours: colours}
}

// NewPaletteWithWeights creates a Palette carrying per-colour weights.
func NewPaletteWithWeights(colours []Colour, weights []float64) *Palette {
	return &Palette{Colours: colours, Weights: weights}
}

// ParsePalette parses a list of hex strings into a Palette.
func ParsePalette(hexes []string) (*Palette, error) {
	colours := make([]Colour, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		colours = append(colours, c)
	}
	return NewPalette(colours), nil
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colours)
}

// Hues returns the hue of every colour in palette order.
func (p *Palette) Hues() []float64 {
	hues := make([]float64, len(p.Colours))
	for i, c := range p.Colours {
		hues[i] = float64(c.hsl.H)
	}
	return hues
}

// ToHex converts the palette colours to hex strings.
func (p *Palette) ToHex() []string {
	hexColours := make([]string, len(p.Colours))
	for i, c := range p.Colours {
		hexColours[i] = c.hex
	}
	return hexColours
}

// ExtractedColourJSON is a palette entry in JSON output.
type ExtractedColourJSON struct {
	ColourJSON
	Weight float64 `json:"weight,omitempty"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count   int                   `json:"count"`
	Colours []ExtractedColourJSON `json:"colors"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p.JSON(), "", "  ")
}

// JSON returns the palette's wire shape.
func (p *Palette) JSON() PaletteJSON {
	colours := make([]ExtractedColourJSON, len(p.Colours))
	for i, c := range p.Colours {
		colours[i] = ExtractedColourJSON{
			ColourJSON: ColourJSON{Hex: c.hex, RGB: c.rgb, HSL: c.hsl},
		}
		if i < len(p.Weights) {
			colours[i].Weight = roundTo(p.Weights[i], 4)
		}
	}
	return PaletteJSON{Count: len(p.Colours), Colours: colours}
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Colours) == 0 {
		return "Empty palette"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Palette with %d colours:\n", len(p.Colours))
	for i, c := range p.Colours {
		fmt.Fprintf(&sb, "  %2d: %s (%s, %s)\n", i+1, c.hex, c.rgb, c.hsl)
	}
	return sb.String()
}
