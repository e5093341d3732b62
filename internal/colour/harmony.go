package colour

import (
	"fmt"
	"math"
	"sort"
)

// DefaultHarmonyTolerance is the angular slack, in degrees, allowed around
// each pattern's target separation.
const DefaultHarmonyTolerance = 30.0

// Split-complementary flanks must sit within this band around the exact complement.
const (
	splitFlankMin = 20.0
	splitFlankMax = 40.0
)

// Monochromatic palettes keep every hue this close to the first one and vary
// saturation or lightness by more than monoMinSpread points.
const (
	monoHueWindow = 15.0
	monoMinSpread = 10
)

// HarmonyMatch is a tuple of palette indices that satisfy a pattern.
type HarmonyMatch []int

// DetectComplementary finds pairs whose hues are roughly 180° apart.
func DetectComplementary(hues []float64, tolerance float64) []HarmonyMatch {
	matches := make([]HarmonyMatch, 0)
	for i := range hues {
		for j := i + 1; j < len(hues); j++ {
			if math.Abs(HueDistance(hues[i], hues[j])-180) <= tolerance {
				matches = append(matches, HarmonyMatch{i, j})
			}
		}
	}
	return matches
}

// DetectAnalogous finds pairs whose hue distance falls in [30-tol, 60+tol].
func DetectAnalogous(hues []float64, tolerance float64) []HarmonyMatch {
	matches := make([]HarmonyMatch, 0)
	for i := range hues {
		for j := i + 1; j < len(hues); j++ {
			d := HueDistance(hues[i], hues[j])
			if d >= 30-tolerance && d <= 60+tolerance {
				matches = append(matches, HarmonyMatch{i, j})
			}
		}
	}
	return matches
}

// DetectTriadic finds triples whose pairwise hue distances are all roughly 120°.
func DetectTriadic(hues []float64, tolerance float64) []HarmonyMatch {
	matches := make([]HarmonyMatch, 0)
	n := len(hues)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				if near(HueDistance(hues[i], hues[j]), 120, tolerance) &&
					near(HueDistance(hues[j], hues[k]), 120, tolerance) &&
					near(HueDistance(hues[k], hues[i]), 120, tolerance) {
					matches = append(matches, HarmonyMatch{i, j, k})
				}
			}
		}
	}
	return matches
}

// DetectTetradic finds quadruples whose sorted hues, taken cyclically, are
// all roughly 90° apart. Only consecutive gaps are checked, so some uneven
// arrangements also pass.
func DetectTetradic(hues []float64, tolerance float64) []HarmonyMatch {
	matches := make([]HarmonyMatch, 0)
	n := len(hues)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				for l := k + 1; l < n; l++ {
					if isSquare(hues[i], hues[j], hues[k], hues[l], tolerance) {
						matches = append(matches, HarmonyMatch{i, j, k, l})
					}
				}
			}
		}
	}
	return matches
}

func isSquare(a, b, c, d, tolerance float64) bool {
	h := []float64{a, b, c, d}
	sort.Float64s(h)
	for i := range h {
		if !near(HueDistance(h[i], h[(i+1)%len(h)]), 90, tolerance) {
			return false
		}
	}
	return true
}

// DetectSplitComplementary finds, for each base hue, two other hues lying
// 20-40° from the base's exact complement. The first two flanks in index
// order are reported.
func DetectSplitComplementary(hues []float64) []HarmonyMatch {
	matches := make([]HarmonyMatch, 0)
	for i, base := range hues {
		complement := NormaliseHue(base + 180)
		var flanks []int
		for j, h := range hues {
			if i == j {
				continue
			}
			d := HueDistance(h, complement)
			if d >= splitFlankMin && d <= splitFlankMax {
				flanks = append(flanks, j)
			}
		}
		if len(flanks) >= 2 {
			matches = append(matches, HarmonyMatch{i, flanks[0], flanks[1]})
		}
	}
	return matches
}

// DetectMonochromatic reports whether all hues stay within 15° of the first
// and saturation or lightness varies by more than 10 points.
func DetectMonochromatic(hsls []HSL) bool {
	if len(hsls) < 2 {
		return false
	}

	base := float64(hsls[0].H)
	for _, c := range hsls[1:] {
		if HueDistance(base, float64(c.H)) > monoHueWindow {
			return false
		}
	}

	sats, lights := channels(hsls)
	return spread(sats) > monoMinSpread || spread(lights) > monoMinSpread
}

func near(v, target, tolerance float64) bool {
	return math.Abs(v-target) <= tolerance
}

// Harmonies holds the matches of every pattern detector.
type Harmonies struct {
	Complementary      []HarmonyMatch `json:"complementary"`
	Analogous          []HarmonyMatch `json:"analogous"`
	Triadic            []HarmonyMatch `json:"triadic"`
	Tetradic           []HarmonyMatch `json:"tetradic"`
	SplitComplementary []HarmonyMatch `json:"split_complementary"`
	Monochromatic      bool           `json:"monochromatic"`
}

// DetectHarmonies runs every detector over a palette.
func DetectHarmonies(p *Palette, tolerance float64) Harmonies {
	hues := p.Hues()
	return Harmonies{
		Complementary:      DetectComplementary(hues, tolerance),
		Analogous:          DetectAnalogous(hues, tolerance),
		Triadic:            DetectTriadic(hues, tolerance),
		Tetradic:           DetectTetradic(hues, tolerance),
		SplitComplementary: DetectSplitComplementary(hues),
		Monochromatic:      DetectMonochromatic(paletteHSL(p)),
	}
}

// Pattern score bonuses.
const (
	baseScore               = 50
	bonusComplementary      = 15
	bonusTriadic            = 20
	bonusTetradic           = 20
	bonusAnalogous          = 10
	bonusSplitComplementary = 15
	bonusMonochromatic      = 10
	bonusSaturationBalance  = 5
	bonusLightnessBalance   = 5
	penaltyUnstructured     = 10
)

// HarmonyScore rates a palette from 0 to 100.
func HarmonyScore(hsls []HSL, h Harmonies) int {
	score := baseScore

	if len(h.Complementary) > 0 {
		score += bonusComplementary
	}
	if len(h.Triadic) > 0 {
		score += bonusTriadic
	}
	if len(h.Tetradic) > 0 {
		score += bonusTetradic
	}
	if len(h.Analogous) > 0 {
		score += bonusAnalogous
	}
	if len(h.SplitComplementary) > 0 {
		score += bonusSplitComplementary
	}
	if h.Monochromatic {
		score += bonusMonochromatic
	}

	sats, lights := channels(hsls)
	if stdDev(sats) < 15 {
		score += bonusSaturationBalance
	}
	if sd := stdDev(lights); sd > 15 && sd < 30 {
		score += bonusLightnessBalance
	}

	if len(hsls) > 6 && len(h.Complementary) == 0 && len(h.Triadic) == 0 && len(h.Tetradic) == 0 {
		score -= penaltyUnstructured
	}

	return clampInt(score, 0, 100)
}

// Temperature balance labels.
const (
	TemperatureWarm     = "warm"
	TemperatureCool     = "cool"
	TemperatureBalanced = "balanced"
	TemperatureNeutral  = "neutral"
)

// TemperatureBalance summarises warm and cool hues across a palette.
type TemperatureBalance struct {
	Balance   string  `json:"balance"`
	WarmCount int     `json:"warm_count"`
	CoolCount int     `json:"cool_count"`
	WarmRatio float64 `json:"warm_ratio"`
	CoolRatio float64 `json:"cool_ratio"`
}

// isWarm covers red through yellow and magenta back to red.
func isWarm(h float64) bool {
	return (h >= 0 && h <= 60) || (h >= 300 && h <= 360)
}

// isCool covers cyan through blue. Hue 300 counts as warm.
func isCool(h float64) bool {
	return h >= 120 && h <= 300
}

// AnalyseTemperature classifies a palette as warm, cool, balanced or neutral.
// Ratios are taken over the whole palette, including hues that are neither.
func AnalyseTemperature(hues []float64) TemperatureBalance {
	var tb TemperatureBalance
	for _, h := range hues {
		switch {
		case isWarm(h):
			tb.WarmCount++
		case isCool(h):
			tb.CoolCount++
		}
	}

	if tb.WarmCount+tb.CoolCount == 0 {
		tb.Balance = TemperatureNeutral
		return tb
	}

	warm := float64(tb.WarmCount) / float64(len(hues))
	cool := float64(tb.CoolCount) / float64(len(hues))
	tb.WarmRatio = roundTo(warm, 2)
	tb.CoolRatio = roundTo(cool, 2)

	switch {
	case warm > 0.7:
		tb.Balance = TemperatureWarm
	case cool > 0.7:
		tb.Balance = TemperatureCool
	default:
		tb.Balance = TemperatureBalanced
	}
	return tb
}

// HarmonyMetrics are descriptive statistics of a palette.
type HarmonyMetrics struct {
	HueDiversity   float64 `json:"hue_diversity"`
	SaturationAvg  float64 `json:"saturation_avg"`
	LightnessRange int     `json:"lightness_range"`
	MinDeltaE      float64 `json:"min_delta_e"`
}

// HarmonyReport is the full colour-theory analysis of a palette.
type HarmonyReport struct {
	Harmonies   Harmonies          `json:"harmonies"`
	Temperature TemperatureBalance `json:"temperature_balance"`
	Score       int                `json:"score"`
	Tags        []string           `json:"tags"`
	Metrics     HarmonyMetrics     `json:"metrics"`
}

// AnalyseHarmony detects harmony patterns, scores the palette and derives
// descriptive tags. A single colour yields a report with no patterns.
func AnalyseHarmony(p *Palette) (*HarmonyReport, error) {
	return AnalyseHarmonyWithTolerance(p, DefaultHarmonyTolerance)
}

// AnalyseHarmonyWithTolerance is AnalyseHarmony with a custom angular tolerance.
func AnalyseHarmonyWithTolerance(p *Palette, tolerance float64) (*HarmonyReport, error) {
	if p == nil || p.Len() == 0 {
		return nil, fmt.Errorf("%w: harmony analysis needs at least 1 colour", ErrEmptyPalette)
	}
	if tolerance < 0 || tolerance > 180 {
		return nil, fmt.Errorf("%w: tolerance must be between 0 and 180, got %g", ErrInvalidParameter, tolerance)
	}

	hsls := paletteHSL(p)
	hues := p.Hues()
	harmonies := DetectHarmonies(p, tolerance)
	temperature := AnalyseTemperature(hues)

	sats, lights := channels(hsls)
	lightRange := int(spread(lights))

	return &HarmonyReport{
		Harmonies:   harmonies,
		Temperature: temperature,
		Score:       HarmonyScore(hsls, harmonies),
		Tags:        harmonyTags(harmonies, temperature, mean(sats), lightRange),
		Metrics: HarmonyMetrics{
			HueDiversity:   roundTo(stdDev(hues), 2),
			SaturationAvg:  roundTo(mean(sats), 2),
			LightnessRange: lightRange,
			MinDeltaE:      roundTo(minDeltaE(p.Colours), 2),
		},
	}, nil
}

func harmonyTags(h Harmonies, tb TemperatureBalance, avgSat float64, lightRange int) []string {
	var tags []string

	if len(h.Complementary) > 0 {
		tags = append(tags, "Complementary Harmony Detected")
	}
	if len(h.Triadic) > 0 {
		tags = append(tags, "Triadic Harmony Detected")
	}
	if len(h.Tetradic) > 0 {
		tags = append(tags, "Tetradic Harmony Detected")
	}
	if len(h.Analogous) > 0 {
		tags = append(tags, "Analogous Colors Present")
	}
	if len(h.SplitComplementary) > 0 {
		tags = append(tags, "Split-Complementary Scheme")
	}
	if h.Monochromatic {
		tags = append(tags, "Monochromatic Palette")
	}

	switch tb.Balance {
	case TemperatureWarm:
		tags = append(tags, "Warm Color Palette")
	case TemperatureCool:
		tags = append(tags, "Cool Color Palette")
	case TemperatureNeutral:
		tags = append(tags, "Neutral Temperature")
	default:
		tags = append(tags, "Balanced Temperature")
	}

	switch {
	case avgSat > 70:
		tags = append(tags, "High Saturation")
	case avgSat < 30:
		tags = append(tags, "Low Saturation")
	default:
		tags = append(tags, "Balanced Saturation")
	}

	switch {
	case lightRange > 60:
		tags = append(tags, "High Contrast")
	case lightRange < 20:
		tags = append(tags, "Low Contrast")
	}

	return tags
}

// minDeltaE is the smallest CIEDE2000 difference between any two colours.
func minDeltaE(colours []Colour) float64 {
	if len(colours) < 2 {
		return 0
	}
	minDist := math.MaxFloat64
	for i := range colours {
		for j := i + 1; j < len(colours); j++ {
			minDist = math.Min(minDist, DeltaE(colours[i], colours[j]))
		}
	}
	return minDist
}

func paletteHSL(p *Palette) []HSL {
	hsls := make([]HSL, len(p.Colours))
	for i, c := range p.Colours {
		hsls[i] = c.hsl
	}
	return hsls
}

func channels(hsls []HSL) (sats, lights []float64) {
	sats = make([]float64, len(hsls))
	lights = make([]float64, len(hsls))
	for i, c := range hsls {
		sats[i] = float64(c.S)
		lights[i] = float64(c.L)
	}
	return sats, lights
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stdDev is the population standard deviation.
func stdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		sum += (x - m) * (x - m)
	}
	return math.Sqrt(sum / float64(len(xs)))
}

// spread is max minus min.
func spread(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return hi - lo
}
