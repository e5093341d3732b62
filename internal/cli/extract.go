package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/colorcraft/colorcraft/internal/colour"
	"github.com/colorcraft/colorcraft/internal/image"
	httputil "github.com/colorcraft/colorcraft/internal/util/http"
	"github.com/colorcraft/colorcraft/internal/util/imagecache"
)

type extractOptions struct {
	*globalOptions
	colours      int
	seed         int64
	maxDimension int
	format       *enumValue
	output       string
	preview      bool
	cache        bool
}

func newExtractCmd(global *globalOptions) *cobra.Command {
	opts := &extractOptions{
		globalOptions: global,
		format:        newEnumValue(formatHex, formatHex, formatRGB, formatJSON),
	}

	cmd := &cobra.Command{
		Use:   "extract <image|url>",
		Short: "Extract the dominant colours of an image",
		Long: `Extract a palette of dominant colours from an image.

The image is downscaled to at most 400 pixels on its long edge, sampled, and
clustered with k-means in CIELAB space. Each colour is the per-channel median
of its cluster, reported with the share of pixels it represents.

Supported image formats: JPEG, PNG, GIF, WebP. Remote images must be HTTPS.

Examples:
  # Extract 5 colours (default) from an image
  colorcraft extract photo.jpg

  # Extract 8 colours with terminal swatches
  colorcraft extract --preview -c 8 photo.png

  # Extract colours as JSON, with a fixed seed
  colorcraft extract -f json --seed 7 https://example.com/photo.webp

  # Reuse a previously downloaded remote image
  colorcraft extract --cache https://example.com/photo.webp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = opts.cfg.Extract.Seed
			}
			if !cmd.Flags().Changed("max-dimension") {
				opts.maxDimension = opts.cfg.MaxDimension
			}
			return runExtract(cmd.Context(), cmd.OutOrStdout(), opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.colours, "colours", "c", colour.DefaultExtractColours,
		fmt.Sprintf("number of colours to extract (%d-%d)", colour.MinExtractColours, colour.MaxExtractColours))
	cmd.Flags().Int64Var(&opts.seed, "seed", colour.DefaultExtractOptions().Seed, "random seed for sampling and clustering")
	cmd.Flags().IntVar(&opts.maxDimension, "max-dimension", image.DefaultMaxDimension, "downscale the image so neither side exceeds this")
	cmd.Flags().VarP(opts.format, "format", "f", "output format (hex, rgb, json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour swatches when writing to a terminal")
	cmd.Flags().BoolVar(&opts.cache, "cache", false, "keep downloaded remote images on disk and reuse them")

	return cmd
}

// runExtract loads the image and writes the extracted palette.
func runExtract(ctx context.Context, out io.Writer, opts *extractOptions, path string) error {
	logger := opts.logger.Named("extract")

	if err := image.ValidateImagePath(path); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	cfg := colour.DefaultExtractorConfig()
	cfg.ColorCount = opts.colours
	cfg.Options = opts.cfg.Extract
	cfg.Options.Seed = opts.seed
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Debug("loading image", "path", path)
	loader := image.NewSmartLoader(httputil.FetchOptions{MaxBytes: opts.cfg.MaxUploadBytes})
	if opts.cache {
		cache, err := imagecache.New(opts.cfg.CacheDir)
		if err != nil {
			return err
		}
		logger.Debug("using image cache", "dir", cache.Dir)
		loader.WithCache(cache)
	}
	img, err := loader.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	bounds := img.Bounds()
	logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	logger.Debug("extracting colours", "count", cfg.ColorCount, "seed", cfg.Options.Seed, "restarts", cfg.Options.Restarts)
	palette, err := image.ExtractPalette(img, opts.maxDimension, cfg)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}
	logger.Debug("extraction complete", "colours", palette.Len())

	if opts.output != "" {
		text, err := formatPalette(palette, opts.format.String(), false)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.output, []byte(text), 0o644); err != nil { // #nosec G306 - palette output is not sensitive
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Info("palette written", "path", opts.output)
		return nil
	}

	preview := opts.preview && isTerminal(out)
	if opts.preview && !preview {
		logger.Debug("stdout is not a terminal, skipping swatches")
	}
	text, err := formatPalette(palette, opts.format.String(), preview)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, text)
	return err
}

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case formatHex, formatRGB:
		var sb strings.Builder
		for i, c := range palette.Colours {
			value := c.Hex()
			if format == formatRGB {
				value = c.RGB().String()
			}
			if showPreview {
				sb.WriteString(colour.ColourPreview(c.RGB(), swatchWidth) + "  ")
			}
			sb.WriteString(value)
			if i < len(palette.Weights) {
				fmt.Fprintf(&sb, "  %5.1f%%", palette.Weights[i]*100)
			}
			sb.WriteString("\n")
		}
		return sb.String(), nil
	case formatJSON:
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}
