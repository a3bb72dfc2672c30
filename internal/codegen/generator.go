// Package codegen turns a catalog code template and the current token values
// into the source snippet a user would write to reproduce the playground.
package codegen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/alexisbeaulieu97/playground/internal/tokens"
)

// Template is a parsed code template. The zero value is an empty template.
type Template struct {
	source string
	tmpl   *template.Template
}

// Parse compiles a code template. Unknown fields fail at execution time, so
// templates are also dry-run against sample data here.
func Parse(name, source string) (Template, error) {
	if strings.TrimSpace(source) == "" {
		return Template{}, fmt.Errorf("template %s is empty", name)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(source)
	if err != nil {
		return Template{}, fmt.Errorf("invalid template syntax: %w", err)
	}

	sample := newData(Input{Component: "Sample", Demo: "Sample", Approach: "sample", Slot: "root", Tokens: tokens.Defaults()})
	if err := tmpl.Execute(&bytes.Buffer{}, sample); err != nil {
		return Template{}, fmt.Errorf("failed to render template: %w", err)
	}

	return Template{source: source, tmpl: tmpl}, nil
}

// MustParse is Parse for templates known at compile time.
func MustParse(name, source string) Template {
	t, err := Parse(name, source)
	if err != nil {
		panic(err)
	}
	return t
}

// Source returns the raw template text.
func (t Template) Source() string {
	return t.source
}

// IsZero reports whether the template is empty.
func (t Template) IsZero() bool {
	return t.tmpl == nil
}

// Input is everything a snippet depends on.
type Input struct {
	Component string
	Demo      string
	Approach  string
	Slot      string
	// ClassName is the generated class for class-based approaches.
	ClassName string
	Template  Template
	Tokens    tokens.StyleTokens
}

// Complete reports whether every axis needed for a snippet is set.
func (in Input) Complete() bool {
	return in.Demo != "" && in.Approach != "" && in.Slot != "" && !in.Template.IsZero()
}

// data is the value exposed to templates.
type data struct {
	Component    string
	Demo         string
	Approach     string
	Slot         string
	ClassName    string
	Color        string
	BaseShade    string
	HoverShade   string
	BorderRadius int
	BorderWidth  int
}

func newData(in Input) data {
	swatch := in.Tokens.Swatch()
	return data{
		Component:    in.Component,
		Demo:         in.Demo,
		Approach:     in.Approach,
		Slot:         in.Slot,
		ClassName:    in.ClassName,
		Color:        string(swatch.Key),
		BaseShade:    string(swatch.Base),
		HoverShade:   string(swatch.Hover),
		BorderRadius: in.Tokens.BorderRadius,
		BorderWidth:  in.Tokens.BorderWidth,
	}
}

// Generate renders the snippet for in. Incomplete input, or a template that
// fails to execute, yields an empty string rather than partial code.
func Generate(in Input) string {
	if !in.Complete() {
		return ""
	}

	var buf bytes.Buffer
	if err := in.Template.tmpl.Execute(&buf, newData(in)); err != nil {
		return ""
	}
	return buf.String()
}
