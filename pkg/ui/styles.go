package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	AccentColor  = lipgloss.AdaptiveColor{Light: "#0087D7", Dark: "#5FAFFF"}
)

// Styles is the set of styles a Printer renders with. They are bound to
// one lipgloss renderer so color decisions follow that printer's output.
type Styles struct {
	Title     lipgloss.Style
	Running   lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Index     lipgloss.Style
	Separator lipgloss.Style
}

// NewStyles builds the styles for renderer r
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Foreground(HeadingColor).
			Bold(true),
		Running: r.NewStyle().
			Foreground(AccentColor),
		Success: r.NewStyle().
			Foreground(SuccessColor).
			Bold(true),
		Error: r.NewStyle().
			Foreground(ErrorColor).
			Bold(true),
		Muted: r.NewStyle().
			Foreground(MutedColor),
		Index: r.NewStyle().
			Foreground(AccentColor).
			Bold(true),
		Separator: r.NewStyle().
			Foreground(MutedColor),
	}
}
