package output

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

// capture redirects package output to a buffer for the test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })
	return &buf
}

func TestJSON(t *testing.T) {
	buf := capture(t)

	data := map[string]interface{}{
		"site":    "example.com",
		"enabled": true,
	}
	if err := JSON(data); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["site"] != "example.com" {
		t.Errorf("site = %v, want example.com", decoded["site"])
	}
	if decoded["enabled"] != true {
		t.Errorf("enabled = %v, want true", decoded["enabled"])
	}
}

func TestTable(t *testing.T) {
	buf := capture(t)

	Table(
		[]string{"SITE", "ENABLED"},
		[][]string{
			{"example.com", "yes"},
			{"a.io", "no"},
		},
	)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header, separator, 2 rows), got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "SITE") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "----") {
		t.Errorf("separator line = %q", lines[1])
	}
	// Columns are padded to equal width, so ENABLED cells align.
	if strings.Index(lines[2], "yes") != strings.Index(lines[3], "no") {
		t.Error("ENABLED column is not aligned")
	}
}

func TestTableEmptyHeaders(t *testing.T) {
	buf := capture(t)

	Table(nil, [][]string{{"ignored"}})

	if buf.Len() != 0 {
		t.Errorf("table with no headers should print nothing, got %q", buf.String())
	}
}

func TestMessagePrefixes(t *testing.T) {
	tests := []struct {
		name   string
		print  func()
		prefix string
	}{
		{"success", func() { Success("site %s enabled", "a.com") }, "✓"},
		{"error", func() { Error("failed") }, "✗"},
		{"warn", func() { Warn("careful") }, "!"},
		{"info", func() { Info("working") }, "→"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t)
			tt.print()
			// Strip any color escape codes before checking the prefix.
			plain := stripANSI(buf.String())
			if !strings.HasPrefix(plain, tt.prefix) {
				t.Errorf("output = %q, want prefix %q", plain, tt.prefix)
			}
		})
	}
}

func TestHeaderAndItem(t *testing.T) {
	buf := capture(t)

	Header("Enabled:")
	Item("example.com")
	Item("a.io")

	plain := stripANSI(buf.String())
	lines := strings.Split(strings.TrimRight(plain, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), plain)
	}
	if lines[0] != "Enabled:" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "  example.com" {
		t.Errorf("item should be indented, got %q", lines[1])
	}
}

func TestPrintAndPrintln(t *testing.T) {
	buf := capture(t)

	Print("type %s to confirm: ", "yes")
	Println("done")

	got := buf.String()
	if got != "type yes to confirm: done\n" {
		t.Errorf("output = %q", got)
	}
}

// stripANSI removes terminal escape sequences from s.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
