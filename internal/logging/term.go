package logging

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/intake/internal/config"
)

// ColorEnabled resolves mode against the terminal attached to f.
// Auto mode enables colors only on a TTY when NO_COLOR is unset and TERM is
// not "dumb" (https://no-color.org).
func ColorEnabled(mode config.ColorMode, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return f != nil &&
			(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}
