package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Separator closes the output of every completed script
const Separator = "========================="

// Printer writes user-facing progress to an output stream
type Printer struct {
	out    io.Writer
	format Format
	styles Styles
}

// NewPrinter creates a printer for out. FormatAuto is resolved against out.
func NewPrinter(out io.Writer, format Format) *Printer {
	format = format.Resolve(out)

	r := lipgloss.NewRenderer(out)
	if format == FormatText {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		out:    out,
		format: format,
		styles: NewStyles(r),
	}
}

// Writer returns the underlying output stream
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Format returns the resolved output format
func (p *Printer) Format() Format {
	return p.format
}

// Println writes one line of plain output
func (p *Printer) Println(a ...interface{}) {
	_, _ = fmt.Fprintln(p.out, a...)
}

// Printf writes formatted plain output
func (p *Printer) Printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(p.out, format, a...)
}

// Start announces a script body about to run
func (p *Printer) Start(name string) {
	p.Println(p.styles.Running.Render(fmt.Sprintf("Executing %s...", name)))
}

// Done marks a script as completed
func (p *Printer) Done(name string) {
	p.Println(p.styles.Success.Render(fmt.Sprintf("%s executed successfully", name)))
	p.Println(p.styles.Separator.Render(Separator))
}

// Error reports a failed run
func (p *Printer) Error(err error) {
	p.Println(p.styles.Error.Render(fmt.Sprintf("Execution failed: %v", err)))
}

// Problem reports an error that is not a script failure
func (p *Printer) Problem(msg string) {
	p.Println(p.styles.Error.Render(msg))
}

// Menu lists names numbered from 1 and prompts for a choice
func (p *Printer) Menu(names []string) {
	p.Println(p.styles.Title.Render("Please select the script to execute:"))
	for i, name := range names {
		p.Println(fmt.Sprintf("%s %s", p.styles.Index.Render(fmt.Sprintf("%d.", i+1)), name))
	}
	p.Printf("Please enter the script number: ")
}

// Muted writes a de-emphasized line
func (p *Printer) Muted(msg string) {
	p.Println(p.styles.Muted.Render(msg))
}

// Markdown renders markdown content. Plain text output gets the source
// unchanged; a terminal gets glamour's rendering.
func (p *Printer) Markdown(content string) {
	if p.format != FormatTerminal {
		p.Println(strings.TrimRight(content, "\n"))
		return
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		p.Println(content)
		return
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		p.Println(content)
		return
	}
	_, _ = io.WriteString(p.out, rendered)
}
