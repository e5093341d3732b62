package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/colorcraft/colorcraft/internal/colour"
)

const allSchemes = "all"

type suggestOptions struct {
	*globalOptions
	scheme  *enumValue
	format  *enumValue
	preview bool
}

func newSuggestCmd(global *globalOptions) *cobra.Command {
	opts := &suggestOptions{
		globalOptions: global,
		scheme:        newEnumValue(allSchemes, append([]string{allSchemes}, colour.SchemeIDs()...)...),
		format:        newEnumValue(formatText, formatText, formatJSON),
	}

	cmd := &cobra.Command{
		Use:   "suggest <#hex>",
		Short: "Suggest companion colours for a base colour",
		Long: fmt.Sprintf(`Suggest companion colours for a base colour using classic colour-wheel
schemes. Each scheme rotates the base hue and adjusts saturation and
lightness within fixed bounds.

Schemes: %s

Examples:
  colorcraft suggest "#3366cc"
  colorcraft suggest --scheme triadic --preview ff0000`, strings.Join(colour.SchemeIDs(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd.OutOrStdout(), opts, args[0])
		},
	}

	cmd.Flags().Var(opts.scheme, "scheme", "limit output to one scheme")
	cmd.Flags().VarP(opts.format, "format", "f", "output format (text, json)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour swatches when writing to a terminal")

	return cmd
}

func runSuggest(out io.Writer, opts *suggestOptions, hex string) error {
	base, err := colour.ParseHex(hex)
	if err != nil {
		return err
	}

	report := colour.GenerateSuggestions(base)
	if id := opts.scheme.String(); id != allSchemes {
		scheme, err := colour.SchemeByID(id)
		if err != nil {
			return err
		}
		report.Harmonies = []colour.SchemeReport{scheme.Generate(base)}
	}

	if opts.format.String() == formatJSON {
		return writeJSON(out, report)
	}
	_, err = io.WriteString(out, formatSuggestions(report, opts.preview && isTerminal(out)))
	return err
}

func formatSuggestions(report *colour.SuggestionReport, showPreview bool) string {
	var sb strings.Builder

	if showPreview {
		sb.WriteString(colour.FormatColourWithLabel(report.Base, "Base", swatchWidth) + "\n")
	} else {
		fmt.Fprintf(&sb, "Base: %s\n", report.Base)
	}

	for _, h := range report.Harmonies {
		fmt.Fprintf(&sb, "\n%s (%s)\n", h.Type, h.Angle)
		fmt.Fprintf(&sb, "  %s\n", h.Description)
		fmt.Fprintf(&sb, "  Mood: %s\n", h.Mood)
		for _, s := range h.Suggestions {
			if showPreview {
				fmt.Fprintf(&sb, "  %s  %s\n", colour.FormatColourWithLabel(s.Colour, s.Name, swatchWidth), s.Description)
				continue
			}
			fmt.Fprintf(&sb, "  %-24s %s  %-20s %s\n", s.Name, s.Colour.Hex(), s.Target, s.Description)
		}
	}
	return sb.String()
}
