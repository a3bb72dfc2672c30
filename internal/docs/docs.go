// Package docs renders a playground state as a documentation fragment:
// GitHub-flavoured markdown, or HTML converted from it.
package docs

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/alexisbeaulieu97/playground/internal/playground"
	"github.com/alexisbeaulieu97/playground/internal/tokens"
)

// Format selects the output of Render.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat accepts "markdown", "md" and "html".
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "markdown", "md", "":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want markdown or html)", raw)
	}
}

// Render writes v in the requested format. css is the stylesheet backing
// class-based approaches and may be empty.
func Render(v playground.View, css string, format Format) ([]byte, error) {
	md := Markdown(v, css)
	if format == FormatHTML {
		return HTML([]byte(md))
	}
	return []byte(md), nil
}

// Markdown renders v as markdown. Incomplete selections produce a heading
// and a note instead of a code block.
func Markdown(v playground.View, css string) string {
	var b strings.Builder

	title := v.Component
	if v.Demo != "" {
		title += ": " + v.Demo
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if !v.Interactive() {
		b.WriteString("_No complete selection; nothing to document._\n")
		return b.String()
	}

	fmt.Fprintf(&b, "**Approach:** %s (`%s`), %s\n\n", v.Example.Label(), v.Approach, v.Recommendation().Label())
	fmt.Fprintf(&b, "**Slot:** `%s`\n\n", v.Slot)
	fmt.Fprintf(&b, "> %s\n\n", v.Recommendation().Message())

	b.WriteString("| Token | Value |\n|---|---|\n")
	for _, name := range tokens.Names() {
		if name.Numeric() {
			fmt.Fprintf(&b, "| %s | %dpx |\n", name, v.Tokens.Number(name))
			continue
		}
		swatch := v.Tokens.Swatch()
		fmt.Fprintf(&b, "| %s | %s (`%s`) |\n", name, swatch.Key, swatch.Base)
	}

	fmt.Fprintf(&b, "\n```jsx\n%s\n```\n", strings.TrimRight(v.Code, "\n"))
	if css = strings.TrimSpace(css); css != "" {
		fmt.Fprintf(&b, "\n```css\n%s\n```\n", css)
	}
	return b.String()
}

// HTML converts markdown to HTML.
func HTML(markdown []byte) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	var buf bytes.Buffer
	if err := md.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}
	return buf.Bytes(), nil
}
