// Package exercise provides the shared runner used by the chapter demos:
// console printing, assertion reporting, configuration and logging.
package exercise

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
)

// ANSI color codes
const (
	Blue    = "\033[94m"
	Green   = "\033[92m"
	Yellow  = "\033[93m"
	Cyan    = "\033[96m"
	Magenta = "\033[95m"
	Red     = "\033[91m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Reset   = "\033[0m"
)

// ColorMode selects when output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses "auto", "always" or "never" (case-insensitive).
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", &ConfigError{Key: EnvColor, Value: s}
	}
}

// Enabled reports whether output written to w should carry ANSI colors.
// In auto mode only terminals are colored, and NO_COLOR turns colors off.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// EventColor returns the color for an event kind.
func EventColor(kind string) string {
	switch {
	case strings.Contains(kind, "Added"):
		return Yellow
	case strings.Contains(kind, "Removed"):
		return Red
	default:
		return Cyan
	}
}

// Printer writes exercise output, optionally colored.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, mode ColorMode) *Printer {
	return &Printer{w: w, color: mode.Enabled(w)}
}

// Paint wraps s in the given color when colors are enabled.
func (p *Printer) Paint(color, s string) string {
	if !p.color || color == "" {
		return s
	}
	return color + s + Reset
}

// Printf writes formatted text.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// Println writes its operands followed by a newline.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.w, args...)
}

// Section prints a bold heading framed by a rule.
func (p *Printer) Section(title string) {
	rule := strings.Repeat("─", 60)
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.Paint(Bold, rule))
	fmt.Fprintln(p.w, p.Paint(Bold, title))
	fmt.Fprintln(p.w, rule)
}

// Event prints one line of an event log.
func (p *Printer) Event(kind string, seq uint32, subject string, at time.Time) {
	fmt.Fprintf(p.w, "  %s %s %s %s\n",
		p.Paint(Dim, fmt.Sprintf("seq:%d", seq)),
		p.Paint(EventColor(kind), fmt.Sprintf("%-12s", kind)),
		subject,
		p.Paint(Dim, at.Format(time.TimeOnly)))
}
