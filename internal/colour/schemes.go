package colour

// Scheme identifiers.
const (
	SchemeComplementary       = "complementary"
	SchemeAnalogous           = "analogous"
	SchemeTriadic             = "triadic"
	SchemeSplitComplementary  = "split-complementary"
	SchemeTetradic            = "tetradic"
	SchemeRectangular         = "rectangular"
	SchemeMonochromatic       = "monochromatic"
	SchemeDoubleComplementary = "double-complementary"
	SchemeShadesTints         = "shades-tints"
)

var schemes = []Scheme{
	{
		ID:          SchemeComplementary,
		Type:        "Complementary",
		Angle:       "180°",
		Description: "Complementary colors sit opposite each other on the color wheel, creating maximum contrast and visual energy.",
		UseCases: []string{
			"Call-to-action buttons that need to stand out",
			"Highlighting important UI elements",
			"Creating vibrant, attention-grabbing designs",
			"Logos that need strong visual impact",
		},
		Mood:     "Energetic, bold, dynamic, attention-grabbing",
		Examples: "Red & Green, Blue & Orange, Yellow & Purple",
		variants: []variant{
			{180, keep, keep, "Direct Complement", "Exact opposite on the color wheel"},
			{180, by(15), floor(-20, 20), "Rich Complement", "More saturated and darker for depth"},
			{180, floor(-20, 30), ceil(20, 90), "Soft Complement", "Lighter and less saturated for subtlety"},
		},
	},
	{
		ID:          SchemeAnalogous,
		Type:        "Analogous",
		Angle:       "30-60°",
		Description: "Analogous colors sit next to each other on the color wheel, creating harmonious, cohesive palettes that feel natural and pleasing.",
		UseCases: []string{
			"Backgrounds and gradients",
			"Nature-inspired designs",
			"Calming, serene interfaces",
			"Photography and art portfolios",
		},
		Mood:     "Harmonious, serene, cohesive, natural",
		Examples: "Blue-Blue/Green-Green, Red-Orange-Yellow",
		variants: []variant{
			{-60, keep, keep, "Analogous 60° Left", "Adjacent color 60° away"},
			{-30, keep, keep, "Analogous 30° Left", "Adjacent color 30° away"},
			{30, keep, keep, "Analogous 30° Right", "Adjacent color 30° away"},
			{60, keep, keep, "Analogous 60° Right", "Adjacent color 60° away"},
		},
	},
	{
		ID:          SchemeTriadic,
		Type:        "Triadic",
		Angle:       "120°",
		Description: "Triadic colors are evenly spaced around the color wheel, forming an equilateral triangle. This creates balanced, vibrant palettes.",
		UseCases: []string{
			"Playful, energetic designs",
			"Children's products and educational materials",
			"Brand identities that need to feel dynamic",
			"Infographics and data visualizations",
		},
		Mood:     "Balanced, vibrant, playful, harmonious",
		Examples: "Red-Yellow-Blue (primary colors), Orange-Green-Purple (secondary colors)",
		variants: []variant{
			{120, keep, keep, "Triadic Partner 120°", "Equal spacing for balance"},
			{120, by(10), keep, "Vibrant Triadic 120°", "Boosted saturation for impact"},
			{240, keep, keep, "Triadic Partner 240°", "Equal spacing for balance"},
			{240, by(10), keep, "Vibrant Triadic 240°", "Boosted saturation for impact"},
		},
	},
	{
		ID:          SchemeSplitComplementary,
		Type:        "Split-Complementary",
		Angle:       "150° & 210°",
		Description: "Split-complementary uses a base color and two colors adjacent to its complement, offering contrast with more nuance than pure complementary.",
		UseCases: []string{
			"Sophisticated brand palettes",
			"Web designs needing contrast without harshness",
			"Editorial layouts and magazines",
			"Product packaging with visual interest",
		},
		Mood:     "Sophisticated, balanced, nuanced, refined",
		Examples: "Blue with Yellow-Orange and Red-Orange",
		variants: []variant{
			{150, keep, keep, "Split Complement -30°", "Flanking the complement by 30°"},
			{150, floor(-15, 40), ceil(15, 85), "Soft Split -30°", "Muted variation for subtlety"},
			{210, keep, keep, "Split Complement +30°", "Flanking the complement by 30°"},
			{210, floor(-15, 40), ceil(15, 85), "Soft Split +30°", "Muted variation for subtlety"},
		},
	},
	{
		ID:          SchemeTetradic,
		Type:        "Tetradic (Square)",
		Angle:       "90°",
		Description: "Tetradic colors form a square on the color wheel, evenly spaced at 90° intervals. This creates rich, complex palettes with maximum variety.",
		UseCases: []string{
			"Complex brand systems with multiple sub-brands",
			"Data visualizations with many categories",
			"Festive, celebratory designs",
			"Gaming interfaces and entertainment",
		},
		Mood:     "Rich, complex, diverse, energetic",
		Examples: "Red-Yellow-Green-Blue, Orange-Chartreuse-Cyan-Violet",
		variants: []variant{
			{90, keep, keep, "Tetradic 90°", "Square harmony partner at 90°"},
			{180, keep, keep, "Tetradic 180°", "Square harmony partner at 180°"},
			{270, keep, keep, "Tetradic 270°", "Square harmony partner at 270°"},
		},
	},
	{
		ID:          SchemeRectangular,
		Type:        "Rectangular (Compound)",
		Angle:       "60° & 180°",
		Description: "Rectangular harmony uses two complementary pairs that form a rectangle on the color wheel, offering rich contrast with balance.",
		UseCases: []string{
			"Editorial designs with multiple sections",
			"Dashboard interfaces with distinct zones",
			"Marketing materials with varied content",
			"Presentation templates",
		},
		Mood:     "Balanced, sophisticated, varied, professional",
		Examples: "Blue-Orange paired with Yellow-Violet",
		variants: []variant{
			{60, keep, keep, "Rectangular 60°", "Rectangle harmony at 60°"},
			{180, keep, keep, "Rectangular 180°", "Rectangle harmony at 180°"},
			{240, keep, keep, "Rectangular 240°", "Rectangle harmony at 240°"},
		},
	},
	{
		ID:          SchemeMonochromatic,
		Type:        "Monochromatic",
		Angle:       "0° (same hue)",
		Description: "Monochromatic palettes use variations of a single hue with different saturation and lightness levels, creating cohesive, elegant designs.",
		UseCases: []string{
			"Minimalist, elegant interfaces",
			"Professional corporate designs",
			"Photography portfolios",
			"Luxury brand materials",
		},
		Mood:     "Cohesive, elegant, sophisticated, calm",
		Examples: "Navy-Blue-Sky Blue-Powder Blue, Forest-Sage-Mint Green",
		variants: []variant{
			{0, floor(-30, 10), ceil(30, 95), "Lighter Tint", "Pastel variation for backgrounds"},
			{0, floor(-40, 5), ceil(40, 98), "Very Light Tint", "Nearly white for subtle accents"},
			{0, by(20), floor(-30, 15), "Darker Shade", "Rich, deep variation for text"},
			{0, by(10), floor(-40, 10), "Very Dark Shade", "Nearly black for strong contrast"},
			{0, floor(-25, 15), keep, "Desaturated Tone", "Muted variation for sophistication"},
			{0, by(30), keep, "Vibrant Tone", "Boosted saturation for impact"},
		},
	},
	{
		ID:          SchemeDoubleComplementary,
		Type:        "Double-Complementary",
		Angle:       "Two 180° pairs",
		Description: "Double-complementary uses two pairs of complementary colors, creating rich, dynamic palettes with strong contrast.",
		UseCases: []string{
			"Bold, energetic brand identities",
			"Sports team colors and jerseys",
			"Festival and event materials",
			"Attention-grabbing advertisements",
		},
		Mood:     "Bold, energetic, dynamic, striking",
		Examples: "Red-Green paired with Blue-Orange",
		variants: []variant{
			{30, keep, keep, "Second Base", "30° from original"},
			{210, keep, keep, "Second Complement", "Complement of second base"},
			{180, keep, keep, "Original Complement", "Complement of base color"},
		},
	},
	{
		ID:          SchemeShadesTints,
		Type:        "Shades & Tints",
		Angle:       "Same hue, varied lightness",
		Description: "Shades (darker) and tints (lighter) of the same color create depth, hierarchy, and visual interest while maintaining color identity.",
		UseCases: []string{
			"UI states (hover, active, disabled)",
			"Text hierarchy (headings, body, captions)",
			"Shadows and highlights",
			"Depth and layering in designs",
		},
		Mood:     "Structured, hierarchical, organized, clear",
		Examples: "Light Blue → Blue → Navy, Pink → Red → Maroon",
		variants: []variant{
			{0, keep, ceil(15, 98), "Tint 1", "15% lighter"},
			{0, keep, ceil(30, 98), "Tint 2", "30% lighter"},
			{0, keep, ceil(45, 98), "Tint 3", "45% lighter"},
			{0, keep, floor(-15, 5), "Shade 1", "15% darker"},
			{0, keep, floor(-30, 5), "Shade 2", "30% darker"},
			{0, keep, floor(-45, 5), "Shade 3", "45% darker"},
		},
	},
}
