package output

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// TableFormatter formats output as a human-readable table.
type TableFormatter struct {
	NoColor   bool // Disable ANSI colors
	Unicode   bool // Use Unicode box-drawing characters
	Condensed bool // Simplified output for non-TTY

	// IsTTY overrides terminal detection; nil checks stdout.
	IsTTY func() bool
}

// Format renders data with its default string form. Callers with tabular data use
// FormatTable.
func (f *TableFormatter) Format(data interface{}) (string, error) {
	return fmt.Sprintf("%v", data), nil
}

// FormatError renders an error in human-readable format.
func (f *TableFormatter) FormatError(err StructuredError) (string, error) {
	var buf bytes.Buffer

	if f.Condensed || !f.isTTY() {
		fmt.Fprintf(&buf, "Error: %s\n", err.Message)
		if err.Guidance != "" {
			fmt.Fprintf(&buf, "  Guidance: %s\n", err.Guidance)
		}
		return buf.String(), nil
	}

	rule := f.style(mutedStyle, strings.Repeat("━", 60))
	buf.WriteString(rule + "\n")
	buf.WriteString(f.style(errorStyle, fmt.Sprintf("Error [%s]", err.Code)) + "\n")
	buf.WriteString(rule + "\n")
	fmt.Fprintf(&buf, "\n%s\n", err.Message)
	if err.Guidance != "" {
		fmt.Fprintf(&buf, "\nHint: %s\n", err.Guidance)
	}
	buf.WriteString("\n" + rule + "\n")

	return buf.String(), nil
}

// FormatTable renders tabular data with headers and alignment.
func (f *TableFormatter) FormatTable(headers []string, rows [][]string) (string, error) {
	if len(rows) == 0 {
		return "No results found\n", nil
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fancy := f.Unicode && f.isTTY()

	fmt.Fprintln(w, strings.Join(headers, "\t"))

	if fancy {
		separators := make([]string, len(headers))
		for i := range separators {
			separators[i] = strings.Repeat("─", len([]rune(headers[i])))
		}
		fmt.Fprintln(w, strings.Join(separators, "\t"))
	}

	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	if err := w.Flush(); err != nil {
		return "", err
	}

	if !fancy {
		return buf.String(), nil
	}

	// Style after alignment: escape sequences would skew tabwriter's column widths.
	header, rest, _ := strings.Cut(buf.String(), "\n")
	return f.style(headerStyle, header) + "\n" + rest, nil
}

// style renders text with st unless colors are disabled.
func (f *TableFormatter) style(st lipgloss.Style, text string) string {
	if f.NoColor {
		return text
	}
	return st.Render(text)
}

func (f *TableFormatter) isTTY() bool {
	if f.IsTTY != nil {
		return f.IsTTY()
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
