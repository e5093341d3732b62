package colour

import (
	"fmt"
	"math"
)

// WCAG 2.1 contrast thresholds.
const (
	ContrastAANormal  = 4.5
	ContrastAALarge   = 3.0
	ContrastAAANormal = 7.0
	ContrastAAALarge  = 4.5
)

// IssueLowContrast marks a pair that fails even the AA large-text threshold.
const IssueLowContrast = "low_contrast"

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(rgb RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect linearises a colour component using the WCAG threshold.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// Rating is the WCAG compliance of a single contrast ratio.
type Rating struct {
	Ratio     float64 `json:"ratio"`
	AANormal  bool    `json:"aa_normal"`
	AALarge   bool    `json:"aa_large"`
	AAANormal bool    `json:"aaa_normal"`
	AAALarge  bool    `json:"aaa_large"`
}

// Rate classifies a contrast ratio. Flags use the unrounded ratio; the
// reported ratio is rounded to two decimals.
func Rate(ratio float64) Rating {
	return Rating{
		Ratio:     roundTo(ratio, 2),
		AANormal:  ratio >= ContrastAANormal,
		AALarge:   ratio >= ContrastAALarge,
		AAANormal: ratio >= ContrastAAANormal,
		AAALarge:  ratio >= ContrastAAALarge,
	}
}

// AccessibilityPair is the contrast rating of two palette colours.
type AccessibilityPair struct {
	Colour1 string `json:"color1"`
	Colour2 string `json:"color2"`
	Rating
}

// AccessibilityIssue describes a flagged pair.
type AccessibilityIssue struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// AccessibilitySummary counts compliant pairs across a palette.
type AccessibilitySummary struct {
	TotalPairs   int `json:"total_pairs"`
	AACompliant  int `json:"aa_compliant"`
	AAACompliant int `json:"aaa_compliant"`
}

// AccessibilityReport holds every pairwise rating of a palette.
type AccessibilityReport struct {
	Pairs   []AccessibilityPair  `json:"pairs"`
	Issues  []AccessibilityIssue `json:"issues"`
	Summary AccessibilitySummary `json:"summary"`
}

// AnalyseAccessibility rates every unordered pair of palette colours, in
// lexicographic index order. At least two colours are required.
func AnalyseAccessibility(p *Palette) (*AccessibilityReport, error) {
	if p == nil || p.Len() < 2 {
		n := 0
		if p != nil {
			n = p.Len()
		}
		return nil, fmt.Errorf("%w: accessibility analysis needs at least 2 colours, got %d", ErrEmptyPalette, n)
	}

	n := p.Len()
	report := &AccessibilityReport{
		Pairs:  make([]AccessibilityPair, 0, n*(n-1)/2),
		Issues: make([]AccessibilityIssue, 0),
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := p.Colours[i], p.Colours[j]
			rating := Rate(ContrastRatio(a.rgb, b.rgb))

			report.Pairs = append(report.Pairs, AccessibilityPair{
				Colour1: a.hex,
				Colour2: b.hex,
				Rating:  rating,
			})
			report.Summary.TotalPairs++
			if rating.AANormal {
				report.Summary.AACompliant++
			}
			if rating.AAANormal {
				report.Summary.AAACompliant++
			}

			if !rating.AALarge {
				report.Issues = append(report.Issues, AccessibilityIssue{
					Type:     IssueLowContrast,
					Message:  fmt.Sprintf("Low contrast detected between %s and %s (ratio: %.2f)", a.hex, b.hex, rating.Ratio),
					Severity: "warning",
				})
			}
		}
	}

	return report, nil
}

var (
	black = RGB{}
	white = RGB{R: 255, G: 255, B: 255}
)

// BestTextColour returns black or white, whichever contrasts more with bg.
func BestTextColour(bg RGB) RGB {
	if ContrastRatio(bg, black) >= ContrastRatio(bg, white) {
		return black
	}
	return white
}
