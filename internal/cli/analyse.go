package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/colorcraft/colorcraft/internal/colour"
)

type analyseOptions struct {
	*globalOptions
	format    *enumValue
	tolerance float64
	preview   bool
}

// paletteAnalysis is the JSON shape shared with the HTTP API.
type paletteAnalysis struct {
	ColourTheory  *colour.HarmonyReport       `json:"color_theory"`
	Accessibility *colour.AccessibilityReport `json:"accessibility"`
}

func newAnalyseCmd(global *globalOptions) *cobra.Command {
	opts := &analyseOptions{
		globalOptions: global,
		format:        newEnumValue(formatText, formatText, formatJSON),
	}

	cmd := &cobra.Command{
		Use:     "analyse <#hex>...",
		Aliases: []string{"analyze"},
		Short:   "Analyse a palette for harmony and contrast",
		Long: `Analyse a palette of hex colours.

The colour-theory report lists complementary, analogous, triadic, tetradic,
split-complementary and monochromatic patterns, a 0-100 harmony score, the
warm/cool balance and descriptive tags. With two or more colours every pair
is also rated against the WCAG 2.1 contrast thresholds.

Examples:
  colorcraft analyse "#ff0000" "#00ffff"
  colorcraft analyse -f json 1e3a5f f4a261 e9c46a`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyse(cmd.OutOrStdout(), opts, args)
		},
	}

	cmd.Flags().VarP(opts.format, "format", "f", "output format (text, json)")
	cmd.Flags().Float64Var(&opts.tolerance, "tolerance", colour.DefaultHarmonyTolerance, "angular tolerance in degrees for harmony detection")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour swatches when writing to a terminal")

	return cmd
}

func runAnalyse(out io.Writer, opts *analyseOptions, hexes []string) error {
	palette, err := colour.ParsePalette(hexes)
	if err != nil {
		return err
	}

	var result paletteAnalysis
	result.ColourTheory, err = colour.AnalyseHarmonyWithTolerance(palette, opts.tolerance)
	if err != nil {
		return fmt.Errorf("failed to analyse harmony: %w", err)
	}
	if palette.Len() >= 2 {
		result.Accessibility, err = colour.AnalyseAccessibility(palette)
		if err != nil {
			return fmt.Errorf("failed to analyse accessibility: %w", err)
		}
	}
	opts.logger.Named("analyse").Debug("analysis complete", "colours", palette.Len(), "score", result.ColourTheory.Score)

	if opts.format.String() == formatJSON {
		return writeJSON(out, result)
	}
	_, err = io.WriteString(out, formatAnalysis(palette, result, opts.preview && isTerminal(out)))
	return err
}

func formatAnalysis(p *colour.Palette, a paletteAnalysis, showPreview bool) string {
	var sb strings.Builder
	theory := a.ColourTheory

	if showPreview {
		for _, c := range p.Colours {
			sb.WriteString(colour.ColourPreviewWithText(c.RGB(), c.Hex(), swatchWidth+2))
		}
		sb.WriteString("\n\n")
	}

	sb.WriteString("Palette\n")
	for _, c := range p.Colours {
		fmt.Fprintf(&sb, "  %s  %-20s %s\n", c.Hex(), c.RGB(), c.HSL())
	}

	fmt.Fprintf(&sb, "\nHarmony score: %d/100\n", theory.Score)
	fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(theory.Tags, ", "))
	t := theory.Temperature
	fmt.Fprintf(&sb, "Temperature: %s (warm %d, cool %d)\n", t.Balance, t.WarmCount, t.CoolCount)
	m := theory.Metrics
	fmt.Fprintf(&sb, "Metrics: hue diversity %.2f, average saturation %.2f, lightness range %d, min delta E %.2f\n",
		m.HueDiversity, m.SaturationAvg, m.LightnessRange, m.MinDeltaE)

	patterns := []struct {
		name    string
		matches []colour.HarmonyMatch
	}{
		{"complementary", theory.Harmonies.Complementary},
		{"analogous", theory.Harmonies.Analogous},
		{"triadic", theory.Harmonies.Triadic},
		{"tetradic", theory.Harmonies.Tetradic},
		{"split-complementary", theory.Harmonies.SplitComplementary},
	}
	var found []string
	for _, pat := range patterns {
		for _, match := range pat.matches {
			found = append(found, fmt.Sprintf("  %-20s %s", pat.name, matchHexes(p, match)))
		}
	}
	if theory.Harmonies.Monochromatic {
		found = append(found, "  monochromatic")
	}
	if len(found) > 0 {
		sb.WriteString("\nPatterns\n")
		sb.WriteString(strings.Join(found, "\n"))
		sb.WriteString("\n")
	}

	if a.Accessibility == nil {
		return sb.String()
	}

	s := a.Accessibility.Summary
	fmt.Fprintf(&sb, "\nContrast (%d pairs, %d AA, %d AAA)\n", s.TotalPairs, s.AACompliant, s.AAACompliant)
	table := NewTable([]string{"COLOUR 1", "COLOUR 2", "RATIO", "AA", "AA LARGE", "AAA", "AAA LARGE"})
	table.AlignRight(2)
	for _, pair := range a.Accessibility.Pairs {
		table.AddRow([]string{
			pair.Colour1,
			pair.Colour2,
			fmt.Sprintf("%.2f", pair.Ratio),
			passFail(pair.AANormal),
			passFail(pair.AALarge),
			passFail(pair.AAANormal),
			passFail(pair.AAALarge),
		})
	}
	sb.WriteString(table.Render())

	for _, issue := range a.Accessibility.Issues {
		fmt.Fprintf(&sb, "%s: %s\n", issue.Severity, issue.Message)
	}
	return sb.String()
}

func matchHexes(p *colour.Palette, match colour.HarmonyMatch) string {
	hexes := make([]string, len(match))
	for i, idx := range match {
		hexes[i] = p.Colours[idx].Hex()
	}
	return strings.Join(hexes, " + ")
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}

func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}
