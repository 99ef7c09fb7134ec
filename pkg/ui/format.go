package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto picks Terminal or Text from the output's capabilities
	FormatAuto Format = iota
	// FormatTerminal renders styled output with colors
	FormatTerminal
	// FormatText renders plain text output without any styling
	FormatText
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format: %s", s)
	}
}

// DetectFormat determines the output format for w. Anything that is not
// a color-capable terminal gets plain text.
func DetectFormat(w io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	file, ok := w.(*os.File)
	if !ok {
		return FormatText
	}
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return FormatText
	}

	if termenv.NewOutput(file).ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}

// Resolve replaces FormatAuto with the format detected for w
func (f Format) Resolve(w io.Writer) Format {
	if f == FormatAuto {
		return DetectFormat(w)
	}
	return f
}
