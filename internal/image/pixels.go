package image

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/colorcraft/colorcraft/internal/colour"
)

// DefaultMaxDimension bounds the longest side of an image before extraction.
const DefaultMaxDimension = 400

// Pixels downscales img so neither side exceeds maxDim, preserving aspect
// ratio with a Lanczos filter, and returns its pixels in row-major order.
// Alpha is discarded. A maxDim of zero or less disables resizing.
func Pixels(img image.Image, maxDim int) []colour.RGB {
	var nrgba *image.NRGBA
	b := img.Bounds()
	if maxDim > 0 && (b.Dx() > maxDim || b.Dy() > maxDim) {
		nrgba = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	} else {
		nrgba = imaging.Clone(img)
	}

	w, h := nrgba.Rect.Dx(), nrgba.Rect.Dy()
	pixels := make([]colour.RGB, 0, w*h)
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		for x := 0; x < len(row); x += 4 {
			pixels = append(pixels, colour.RGB{R: row[x], G: row[x+1], B: row[x+2]})
		}
	}
	return pixels
}

// ExtractPalette downscales img to maxDim and extracts its dominant colours.
func ExtractPalette(img image.Image, maxDim int, cfg colour.ExtractorConfig) (*colour.Palette, error) {
	return colour.ExtractDominantColours(Pixels(img, maxDim), cfg)
}
