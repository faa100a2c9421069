package diagfmt

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/term"
)

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto prints the path as registered in the FileSet.
	PathModeAuto PathMode = iota
	// PathModeBasename prints only the last path element.
	PathModeBasename
)

// ColorMode decides whether ANSI colors are written.
type ColorMode uint8

const (
	// ColorAuto enables color only when the writer is a terminal.
	ColorAuto ColorMode = iota
	ColorOn
	ColorOff
)

// ParseColorMode converts auto|on|off into ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "on", "always":
		return ColorOn, nil
	case "off", "never":
		return ColorOff, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode: %q (expected: auto|on|off)", s)
}

func (m ColorMode) String() string {
	switch m {
	case ColorOn:
		return "on"
	case ColorOff:
		return "off"
	default:
		return "auto"
	}
}

// enabled resolves the mode against a concrete writer.
func (m ColorMode) enabled(w io.Writer) bool {
	switch m {
	case ColorOn:
		return true
	case ColorOff:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd, err := safecast.Conv[int](f.Fd())
	return err == nil && term.IsTerminal(fd)
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     ColorMode
	Context   int // строк контекста перед строкой ошибки
	PathMode  PathMode
	ShowNotes bool
	ShowFixes bool
	TabWidth  int // 0 → 4
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	PathMode         PathMode
	Max              int // обрезка вывода, не Bag
	IncludeNotes     bool
	IncludeFixes     bool
}

func formatPath(p string, mode PathMode) string {
	if mode == PathModeBasename {
		return path.Base(p)
	}
	return p
}
