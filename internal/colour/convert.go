package colour

import (
	"math"
)

// D65 reference white, scaled so that Yn = 100.
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883
)

// labDelta is the breakpoint of the CIE L*a*b* companding function.
const labDelta = 6.0 / 29.0

// LAB is a colour in CIE L*a*b* space. L is in [0, 100]; a and b are roughly
// in [-128, 127]. It is only used for perceptual distance during extraction.
type LAB struct {
	L, A, B float64
}

// distanceSq returns the squared Euclidean distance between two LAB values.
func (c LAB) distanceSq(other LAB) float64 {
	dl := c.L - other.L
	da := c.A - other.A
	db := c.B - other.B
	return dl*dl + da*da + db*db
}

// RGBToLAB converts an sRGB colour to CIE L*a*b* (D65).
func RGBToLAB(rgb RGB) LAB {
	r := srgbToLinear(float64(rgb.R) / 255.0)
	g := srgbToLinear(float64(rgb.G) / 255.0)
	b := srgbToLinear(float64(rgb.B) / 255.0)

	// Linear sRGB to XYZ (D65), scaled to 0-100.
	x := (0.4124564*r + 0.3575761*g + 0.1804375*b) * 100
	y := (0.2126729*r + 0.7151522*g + 0.0721750*b) * 100
	z := (0.0193339*r + 0.1191920*g + 0.9503041*b) * 100

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	return LAB{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LABToRGB converts a CIE L*a*b* (D65) colour back to sRGB. Channels that fall
// outside the sRGB gamut are clamped.
func LABToRGB(lab LAB) RGB {
	fy := (lab.L + 16) / 116
	fx := lab.A/500 + fy
	fz := fy - lab.B/200

	x := labFInv(fx) * whiteX / 100
	y := labFInv(fy) * whiteY / 100
	z := labFInv(fz) * whiteZ / 100

	r := 3.2404542*x - 1.5371385*y - 0.4985314*z
	g := -0.9692660*x + 1.8760108*y + 0.0415560*z
	b := 0.0556434*x - 0.2040259*y + 1.0572252*z

	return RGB{
		R: toChannel(linearToSRGB(r) * 255),
		G: toChannel(linearToSRGB(g) * 255),
		B: toChannel(linearToSRGB(b) * 255),
	}
}

func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func labF(t float64) float64 {
	if t > labDelta*labDelta*labDelta {
		return math.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29.0
}

func labFInv(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return 3 * labDelta * labDelta * (t - 4.0/29.0)
}

// toChannel rounds and clamps a 0-255 float to a channel value.
func toChannel(v float64) uint8 {
	v = math.Round(v)
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// RGBToHSL converts RGB to HSL without rounding.
// Returns hue (0-360 degrees), saturation and lightness (0-100 percent).
// Grey colours have hue and saturation 0.
func RGBToHSL(rgb RGB) (h, s, l float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	l = (maxVal + minVal) / 2

	if maxVal == minVal {
		return 0, 0, l * 100
	}

	d := maxVal - minVal
	if l > 0.5 {
		s = d / (2 - maxVal - minVal)
	} else {
		s = d / (maxVal + minVal)
	}

	switch maxVal {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	return h * 60, s * 100, l * 100
}

// HSLToRGB converts HSL to RGB.
// h is hue in degrees, s and l are percentages (0-100).
func HSLToRGB(h, s, l float64) RGB {
	h /= 360
	s /= 100
	l /= 100

	if s == 0 {
		v := toChannel(l * 255)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: toChannel(hueToRGB(p, q, h+1.0/3.0) * 255),
		G: toChannel(hueToRGB(p, q, h) * 255),
		B: toChannel(hueToRGB(p, q, h-1.0/3.0) * 255),
	}
}

// hueToRGB is a helper for HSL to RGB conversion; t is a hue fraction.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// roundHSL rounds unrounded HSL components to the integer form carried by Colour.
func roundHSL(h, s, l float64) HSL {
	hue := int(math.Round(h))
	if hue >= 360 {
		hue -= 360
	}
	return HSL{H: hue, S: int(math.Round(s)), L: int(math.Round(l))}
}

// NormaliseHue wraps a hue into [0, 360).
func NormaliseHue(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

// HueDistance calculates the angular distance between two hues on the colour wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(h1 - h2)
	return math.Min(diff, 360-diff)
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
