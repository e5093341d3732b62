package cli

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/colorcraft/colorcraft/internal/colour"
	"github.com/colorcraft/colorcraft/internal/config"
)

// run executes the command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvRestarts, "2")

	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func writeStripes(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 60, 20))
	stripes := []color.NRGBA{{R: 255, A: 255}, {G: 255, A: 255}, {B: 255, A: 255}}
	for y := 0; y < 20; y++ {
		for x := 0; x < 60; x++ {
			img.Set(x, y, stripes[x/20])
		}
	}

	path := filepath.Join(t.TempDir(), "stripes.png")
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

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "colorcraft version ") {
		t.Errorf("output = %q", out)
	}
}

func TestVerboseAndQuietConflict(t *testing.T) {
	if _, err := run(t, "-v", "-q", "version"); err == nil {
		t.Error("expected error for --verbose with --quiet")
	}
}

func TestExtractCommand(t *testing.T) {
	path := writeStripes(t)

	out, err := run(t, "extract", "-c", "3", path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	var hexes []string
	for _, line := range lines {
		hexes = append(hexes, strings.Fields(line)[0])
	}
	for _, want := range []string{"#ff0000", "#00ff00", "#0000ff"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %v", want, hexes)
		}
	}
}

func TestExtractCommandJSON(t *testing.T) {
	out, err := run(t, "extract", "-c", "3", "-f", "json", writeStripes(t))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	var got colour.PaletteJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.Count != 3 || len(got.Colours) != 3 {
		t.Errorf("unexpected palette: %+v", got)
	}
	sum := 0.0
	for _, c := range got.Colours {
		sum += c.Weight
	}
	if sum < 0.999 || sum > 1.001 {
		t.Errorf("weights sum to %v, want 1", sum)
	}
}

func TestExtractCommandOutputFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "palette.txt")
	out, err := run(t, "extract", "-c", "3", "-f", "rgb", "-o", dest, writeStripes(t))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "rgb(255, 0, 0)") {
		t.Errorf("output file = %q", data)
	}
}

func TestExtractCommandErrors(t *testing.T) {
	path := writeStripes(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "too few colours", args: []string{"extract", "-c", "2", path}},
		{name: "too many colours", args: []string{"extract", "-c", "11", path}},
		{name: "more colours than image has", args: []string{"extract", "-c", "4", path}},
		{name: "bad format", args: []string{"extract", "-f", "xml", path}},
		{name: "missing file", args: []string{"extract", filepath.Join(t.TempDir(), "nope.png")}},
		{name: "plain http", args: []string{"extract", "http://example.com/a.png"}},
		{name: "no args", args: []string{"extract"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestAnalyseCommand(t *testing.T) {
	out, err := run(t, "analyse", "#ff0000", "00ffff")
	if err != nil {
		t.Fatalf("analyse: %v", err)
	}

	for _, want := range []string{
		"Harmony score: 70/100",
		"Complementary Harmony Detected",
		"#ff0000 + #00ffff",
		"Contrast (1 pairs, 0 AA, 0 AAA)",
		"COLOUR 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAnalyseCommandJSON(t *testing.T) {
	out, err := run(t, "analyze", "-f", "json", "#ff0000", "#00ffff", "#ffffff")
	if err != nil {
		t.Fatalf("analyse: %v", err)
	}

	var got struct {
		ColorTheory struct {
			Score int `json:"score"`
		} `json:"color_theory"`
		Accessibility struct {
			Summary colour.AccessibilitySummary `json:"summary"`
		} `json:"accessibility"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Accessibility.Summary.TotalPairs != 3 {
		t.Errorf("total pairs = %d, want 3", got.Accessibility.Summary.TotalPairs)
	}
}

func TestAnalyseCommandSingleColour(t *testing.T) {
	out, err := run(t, "analyse", "#336699")
	if err != nil {
		t.Fatalf("analyse: %v", err)
	}
	if strings.Contains(out, "Contrast (") {
		t.Errorf("single colour should have no contrast table:\n%s", out)
	}
}

func TestAnalyseCommandErrors(t *testing.T) {
	if _, err := run(t, "analyse", "#12345g"); err == nil {
		t.Error("expected error for malformed hex")
	}
	if _, err := run(t, "analyse"); err == nil {
		t.Error("expected error with no colours")
	}
	if _, err := run(t, "analyse", "--tolerance", "200", "#ff0000"); err == nil {
		t.Error("expected error for tolerance out of range")
	}
}

func TestSuggestCommand(t *testing.T) {
	out, err := run(t, "suggest", "--scheme", "triadic", "#ff0000")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if !strings.Contains(out, "Triadic (120°)") {
		t.Errorf("output missing triadic heading:\n%s", out)
	}
	if strings.Contains(out, "Complementary (") {
		t.Errorf("scheme filter ignored:\n%s", out)
	}
	if !strings.Contains(out, "#00ff00") {
		t.Errorf("output missing 120° partner:\n%s", out)
	}
}

func TestSuggestCommandJSON(t *testing.T) {
	out, err := run(t, "suggest", "-f", "json", "#3366cc")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}

	var got struct {
		Base      colour.Colour `json:"base_color"`
		Harmonies []struct {
			Type string `json:"type"`
		} `json:"harmonies"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Base.Hex() != "#3366cc" || len(got.Harmonies) != 9 {
		t.Errorf("unexpected report: base %s, %d harmonies", got.Base.Hex(), len(got.Harmonies))
	}
}

func TestSuggestCommandErrors(t *testing.T) {
	if _, err := run(t, "suggest", "--scheme", "pentadic", "#ff0000"); err == nil {
		t.Error("expected error for unknown scheme")
	}
	if _, err := run(t, "suggest", "nothex"); err == nil {
		t.Error("expected error for malformed hex")
	}
}

func TestEnumValue(t *testing.T) {
	v := newEnumValue(formatText, formatText, formatJSON)
	if v.String() != formatText || v.Type() != "string" {
		t.Fatalf("unexpected initial state: %q %q", v.String(), v.Type())
	}
	if err := v.Set("JSON"); err != nil {
		t.Fatalf("Set(JSON) error = %v", err)
	}
	if v.String() != formatJSON {
		t.Errorf("String() = %q, want json", v.String())
	}
	if err := v.Set("yaml"); err == nil {
		t.Error("expected error for yaml")
	}
	if v.String() != formatJSON {
		t.Errorf("rejected value changed state: %q", v.String())
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	if l := newLogger(&buf, true, false); !l.IsDebug() {
		t.Error("verbose logger should log debug")
	}
	if l := newLogger(&buf, false, true); l.IsInfo() || !l.IsError() {
		t.Error("quiet logger should log errors only")
	}
	l := newLogger(&buf, false, false)
	if l.IsDebug() || !l.IsInfo() {
		t.Error("default logger should log info")
	}
	if l.Name() != "colorcraft" {
		t.Errorf("Name() = %q", l.Name())
	}
}

func TestFormatPalette(t *testing.T) {
	p := colour.NewPaletteWithWeights(
		[]colour.Colour{colour.MustParseHex("#ff0000"), colour.MustParseHex("#0000ff")},
		[]float64{0.75, 0.25},
	)

	got, err := formatPalette(p, formatHex, false)
	if err != nil {
		t.Fatalf("formatPalette() error = %v", err)
	}
	want := "#ff0000   75.0%\n#0000ff   25.0%\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("hex output mismatch (-want +got):\n%s", diff)
	}

	withPreview, err := formatPalette(p, formatRGB, true)
	if err != nil {
		t.Fatalf("formatPalette() error = %v", err)
	}
	if !strings.Contains(withPreview, "\033[48;2;255;0;0m") || !strings.Contains(withPreview, "rgb(0, 0, 255)") {
		t.Errorf("preview output = %q", withPreview)
	}

	if _, err := formatPalette(p, "xml", false); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestIsTerminal(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Error("buffer reported as terminal")
	}
}
