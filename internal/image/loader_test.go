package image

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/colorcraft/colorcraft/internal/colour"
	httputil "github.com/colorcraft/colorcraft/internal/util/http"
	"github.com/colorcraft/colorcraft/internal/util/imagecache"
)

func solidImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestFileLoaderLoad(t *testing.T) {
	path := writePNG(t, solidImage(4, 3, color.NRGBA{R: 10, G: 20, B: 30, A: 255}))

	img, err := NewFileLoader().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v, want 4x3", b)
	}
}

func TestFileLoaderErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{name: "empty", path: ""},
		{name: "missing", path: filepath.Join(dir, "missing.png")},
		{name: "directory", path: dir},
		{name: "garbage", path: garbage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFileLoader().Load(context.Background(), tt.path); err == nil {
				t.Error("expected error")
			}
		})
	}

	_, err := NewFileLoader().Load(context.Background(), garbage)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, solidImage(2, 2, color.White)); err != nil {
		t.Fatalf("encode: %v", err)
	}

	_, format, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}

	if _, _, err := Decode(strings.NewReader("GIF89a truncated")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestValidateImagePath(t *testing.T) {
	path := writePNG(t, solidImage(1, 1, color.Black))

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "local png", path: path},
		{name: "https url", path: "https://example.com/photo.jpg"},
		{name: "plain http", path: "http://example.com/photo.jpg", wantErr: true},
		{name: "private host", path: "https://192.168.0.10/photo.jpg", wantErr: true},
		{name: "missing", path: filepath.Join(t.TempDir(), "nope.png"), wantErr: true},
		{name: "empty", path: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImagePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateImagePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestSmartLoaderRejectsUnsafeURLs(t *testing.T) {
	loader := NewSmartLoader(httputil.FetchOptions{})
	for _, url := range []string{"http://example.com/a.png", "https://localhost/a.png", "https://10.0.0.1/a.png"} {
		if _, err := loader.Load(context.Background(), url); err == nil {
			t.Errorf("Load(%q) expected error", url)
		}
	}
}

func TestSmartLoaderLoadsFiles(t *testing.T) {
	path := writePNG(t, solidImage(2, 2, color.White))
	if _, err := NewSmartLoader(httputil.FetchOptions{}).Load(context.Background(), path); err != nil {
		t.Errorf("Load() error = %v", err)
	}
}

func TestSmartLoaderServesCachedURL(t *testing.T) {
	const url = "https://images.example.com/swatch.png"
	cache := &imagecache.Cache{Dir: t.TempDir()}

	var buf bytes.Buffer
	if err := png.Encode(&buf, solidImage(3, 2, color.NRGBA{R: 200, A: 255})); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cache.Path(url), buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}

	img, err := NewSmartLoader(httputil.FetchOptions{}).WithCache(cache).Load(context.Background(), url)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := img.Bounds().Dx(); got != 3 {
		t.Errorf("width = %d, want 3", got)
	}
}

func TestIsImageFile(t *testing.T) {
	tests := map[string]bool{
		"photo.JPG":  true,
		"photo.webp": true,
		"photo.png":  true,
		"notes.txt":  false,
		"archive":    false,
	}
	for in, want := range tests {
		if got := IsImageFile(in); got != want {
			t.Errorf("IsImageFile(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestPixels(t *testing.T) {
	t.Run("small image kept", func(t *testing.T) {
		img := solidImage(3, 2, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
		img.Set(2, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

		pixels := Pixels(img, DefaultMaxDimension)
		if len(pixels) != 6 {
			t.Fatalf("got %d pixels, want 6", len(pixels))
		}
		if pixels[0] != (colour.RGB{R: 1, G: 2, B: 3}) {
			t.Errorf("first pixel = %v", pixels[0])
		}
		if pixels[5] != (colour.RGB{R: 200, G: 100, B: 50}) {
			t.Errorf("last pixel = %v", pixels[5])
		}
	})

	t.Run("large image fit", func(t *testing.T) {
		img := solidImage(800, 200, color.NRGBA{R: 40, G: 80, B: 120, A: 255})
		pixels := Pixels(img, 400)
		if len(pixels) != 400*100 {
			t.Fatalf("got %d pixels, want %d", len(pixels), 400*100)
		}
		if pixels[len(pixels)/2] != (colour.RGB{R: 40, G: 80, B: 120}) {
			t.Errorf("centre pixel = %v", pixels[len(pixels)/2])
		}
	})

	t.Run("alpha discarded", func(t *testing.T) {
		img := solidImage(2, 2, color.NRGBA{R: 255, G: 0, B: 0, A: 10})
		for _, p := range Pixels(img, 0) {
			if p != (colour.RGB{R: 255}) {
				t.Errorf("pixel = %v, want pure red", p)
			}
		}
	})

	t.Run("offset bounds", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(5, 5, 7, 8))
		if got := len(Pixels(img, 0)); got != 6 {
			t.Errorf("got %d pixels, want 6", got)
		}
	})
}

func TestExtractPalette(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 90, 30))
	stripes := []color.NRGBA{{R: 255, A: 255}, {G: 255, A: 255}, {B: 255, A: 255}}
	for y := 0; y < 30; y++ {
		for x := 0; x < 90; x++ {
			img.Set(x, y, stripes[x/30])
		}
	}

	cfg := colour.DefaultExtractorConfig()
	cfg.ColorCount = 3
	cfg.Options.Restarts = 2

	palette, err := ExtractPalette(img, DefaultMaxDimension, cfg)
	if err != nil {
		t.Fatalf("ExtractPalette() error = %v", err)
	}

	got := map[string]bool{}
	for _, hex := range palette.ToHex() {
		got[hex] = true
	}
	for _, want := range []string{"#ff0000", "#00ff00", "#0000ff"} {
		if !got[want] {
			t.Errorf("palette %v missing %s", palette.ToHex(), want)
		}
	}
}
