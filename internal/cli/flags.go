package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// enumValue is a string flag restricted to a fixed set of values.
type enumValue struct {
	allowed []string
	value   string
}

var _ pflag.Value = (*enumValue)(nil)

func newEnumValue(def string, allowed ...string) *enumValue {
	return &enumValue{allowed: allowed, value: def}
}

func (e *enumValue) String() string { return e.value }

func (e *enumValue) Set(v string) error {
	v = strings.ToLower(v)
	if !slices.Contains(e.allowed, v) {
		return fmt.Errorf("must be one of: %s", strings.Join(e.allowed, ", "))
	}
	e.value = v
	return nil
}

func (e *enumValue) Type() string { return "string" }

// Output formats.
const (
	formatHex  = "hex"
	formatRGB  = "rgb"
	formatJSON = "json"
	formatText = "text"
)

// swatchWidth is the width of a terminal colour block.
const swatchWidth = 8

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
