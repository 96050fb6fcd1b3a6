// Package output formats user-facing messages for stdout.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.Bold)
)

// out is the destination for all user-facing output.
var out io.Writer = os.Stdout

// SetOutput redirects output, for testing. Default is os.Stdout.
func SetOutput(w io.Writer) {
	out = w
}

// JSON outputs data as indented JSON
func JSON(data interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Header prints a bold section header
func Header(format string, args ...interface{}) {
	_, _ = headerColor.Fprintf(out, format+"\n", args...)
}

// Item prints an indented list entry under a header
func Item(name string) {
	_, _ = fmt.Fprintf(out, "  %s\n", name)
}

// Table outputs rows as a column-aligned table
func Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	// Print headers
	headerLine := make([]string, len(headers))
	for i, h := range headers {
		headerLine[i] = fmt.Sprintf("%-*s", widths[i], h)
	}
	_, _ = fmt.Fprintln(out, strings.Join(headerLine, "  "))

	// Print separator
	sepLine := make([]string, len(headers))
	for i, w := range widths {
		sepLine[i] = strings.Repeat("-", w)
	}
	_, _ = fmt.Fprintln(out, strings.Join(sepLine, "  "))

	// Print rows
	for _, row := range rows {
		rowLine := make([]string, len(headers))
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			rowLine[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		_, _ = fmt.Fprintln(out, strings.Join(rowLine, "  "))
	}
}

// Success prints a success message
func Success(format string, args ...interface{}) {
	_, _ = successColor.Fprintf(out, "✓ "+format+"\n", args...)
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	_, _ = errorColor.Fprintf(out, "✗ "+format+"\n", args...)
}

// Warn prints a warning message
func Warn(format string, args ...interface{}) {
	_, _ = warnColor.Fprintf(out, "! "+format+"\n", args...)
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	_, _ = infoColor.Fprintf(out, "→ "+format+"\n", args...)
}

// Print prints a plain message without a trailing newline
func Print(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(out, format, args...)
}

// Println prints a plain message with a trailing newline
func Println(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(out, format+"\n", args...)
}
