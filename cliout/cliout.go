package cliout

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// ANSI color codes
const (
	Reset     = "\033[0m"
	Bold      = "\033[1m"
	Dim       = "\033[2m"
	BrightRed = "\033[91m"
)

// ParseFormat validates an output format name.
func ParseFormat(format string) (Format, error) {
	switch format {
	case "default", "":
		return FormatDefault, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid output format: %s (valid options: default, json)", format)
	}
}

// Printer writes results to Out and reports to Err.
type Printer struct {
	Format Format
	Out    io.Writer
	Err    io.Writer
	// Color enables ANSI styling of reports on Err.
	Color bool
}

// NewPrinter creates a Printer; color is detected from stderr.
func NewPrinter(format Format, stdout, stderr io.Writer) *Printer {
	return &Printer{
		Format: format,
		Out:    stdout,
		Err:    stderr,
		Color:  supportsColor(stderr),
	}
}

// supportsColor reports whether w is a terminal and NO_COLOR is unset.
func supportsColor(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// IsJSON returns true if the output format is JSON.
func (p *Printer) IsJSON() bool {
	return p.Format == FormatJSON
}

type urlResult struct {
	URL string `json:"url"`
}

// PrintURL writes u's canonical string form as a single line.
func (p *Printer) PrintURL(u *url.URL) error {
	if p.IsJSON() {
		return writeJSONLine(p.Out, urlResult{URL: u.String()})
	}
	_, err := fmt.Fprintln(p.Out, u.String())
	return err
}

// PrintJSON writes data as indented JSON to Out.
func (p *Printer) PrintJSON(data any) error {
	encoder := json.NewEncoder(p.Out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Header prints a bold header with a divider to Out.
func (p *Printer) Header(text string) {
	fmt.Fprintf(p.Out, "\n%s\n", p.style(Bold, text))
	fmt.Fprintln(p.Out, strings.Repeat("=", len(text)))
}

// Label prints a label and value pair to Out.
func (p *Printer) Label(label, value string) {
	fmt.Fprintf(p.Out, "   %-12s %s\n", label+":", value)
}

type errorResult struct {
	Error  string   `json:"error"`
	Kind   string   `json:"kind,omitempty"`
	Causes []string `json:"causes,omitempty"`
}

// ErrorReport writes err and its chain of causes to Err. kind is the
// failure class shown in JSON output; it may be empty.
func (p *Printer) ErrorReport(err error, kind string) {
	if err == nil {
		return
	}
	chain := Chain(err)

	if p.IsJSON() {
		_ = writeJSONLine(p.Err, errorResult{Error: chain[0], Kind: kind, Causes: chain[1:]})
		return
	}

	var b strings.Builder
	b.WriteString(p.style(BrightRed+Bold, "Error:") + " " + indent(chain[0], "       ") + "\n")
	if len(chain) > 1 {
		b.WriteString("\n" + p.style(Dim, "Caused by:") + "\n")
		for i, cause := range chain[1:] {
			fmt.Fprintf(&b, "   %d: %s\n", i, indent(cause, "      "))
		}
	}
	_, _ = io.WriteString(p.Err, b.String())
}

// Chain splits err into one message per wrapping layer, outermost first.
// A layer that renders its cause as a ": cause" suffix keeps only its own
// prefix; a layer that embeds its cause elsewhere ends the chain.
func Chain(err error) []string {
	var out []string
	for err != nil {
		msg := err.Error()
		next := errors.Unwrap(err)
		if next == nil {
			out = append(out, msg)
			break
		}
		nextMsg := next.Error()
		if own, ok := strings.CutSuffix(msg, ": "+nextMsg); ok && own != "" {
			out = append(out, own)
			err = next
			continue
		}
		out = append(out, msg)
		if strings.Contains(msg, nextMsg) {
			break
		}
		err = next
	}
	return out
}

func (p *Printer) style(code, text string) string {
	if !p.Color {
		return text
	}
	return code + text + Reset
}

func indent(text, prefix string) string {
	return strings.ReplaceAll(text, "\n", "\n"+prefix)
}

func writeJSONLine(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}
