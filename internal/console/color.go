package console

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Color modes accepted by ShouldUseColors.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ShouldUseColors decides once whether output written to w gets ANSI styling.
// Unknown modes behave like ColorAuto.
func ShouldUseColors(mode string, w io.Writer) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	// https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// CI systems that render ANSI but do not allocate a TTY
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
