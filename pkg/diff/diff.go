// Package diff renders line-oriented unified diffs between two code samples.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Stats counts changed lines.
type Stats struct {
	Added   int
	Removed int
}

// Unified renders a unified diff of a against b. It returns "" when both are
// identical. Output beyond 10,000 lines is truncated with a marker.
func Unified(a, b []byte, aLabel, bLabel string) string {
	out, _ := render(a, b, aLabel, bLabel)
	return out
}

// Count reports how many lines a diff of a against b adds and removes.
func Count(a, b []byte) Stats {
	_, stats := render(a, b, "", "")
	return stats
}

func render(a, b []byte, aLabel, bLabel string) (string, Stats) {
	if bytes.Equal(a, b) {
		return "", Stats{}
	}

	dmp := diffmatchpatch.New()
	aChars, bChars, lines := dmp.DiffLinesToChars(string(a), string(b))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(aChars, bChars, false), lines)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", aLabel)
	fmt.Fprintf(&buf, "+++ %s\n", bLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", lineCount(a), lineCount(b))

	var stats Stats
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				stats.Removed++
			case diffmatchpatch.DiffInsert:
				stats.Added++
			}
		}
	}

	result := buf.String()
	all := strings.Split(result, "\n")
	if len(all) > maxDiffLines {
		return strings.Join(all[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n", stats
	}
	return result, stats
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func lineCount(data []byte) int {
	return len(splitLines(string(data)))
}
