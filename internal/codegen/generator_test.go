package codegen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/playground/internal/tokens"
)

const sxTemplate = `<{{.Component}}
  sx={{"{{"}}
    backgroundColor: '{{.BaseShade}}',
    '&:hover': { backgroundColor: '{{.HoverShade}}' },
    borderRadius: '{{.BorderRadius}}px',
    borderWidth: '{{.BorderWidth}}px',
  {{"}}"}}
/>`

func sampleInput(t *testing.T) Input {
	t.Helper()

	tmpl, err := Parse("Button/sx/root", sxTemplate)
	require.NoError(t, err)

	return Input{
		Component: "Button",
		Demo:      "Button",
		Approach:  "sx",
		Slot:      "root",
		Template:  tmpl,
		Tokens:    tokens.StyleTokens{Color: tokens.Purple, BorderRadius: 4, BorderWidth: 3},
	}
}

func TestGenerateSubstitutesTokens(t *testing.T) {
	t.Parallel()

	out := Generate(sampleInput(t))

	require.Contains(t, out, "<Button")
	require.Contains(t, out, "sx={{")
	require.Contains(t, out, "backgroundColor: '#a855f7'")
	require.Contains(t, out, "backgroundColor: '#9333ea'")
	require.Contains(t, out, "borderRadius: '4px'")
	require.Contains(t, out, "borderWidth: '3px'")
}

func TestGenerateIsDeterministic(t *testing.T) {
	t.Parallel()

	in := sampleInput(t)
	first := Generate(in)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Generate(in))
	}
}

func TestGenerateIncompleteInputIsEmpty(t *testing.T) {
	t.Parallel()

	base := sampleInput(t)

	tests := []struct {
		name   string
		mutate func(in *Input)
	}{
		{"missing demo", func(in *Input) { in.Demo = "" }},
		{"missing approach", func(in *Input) { in.Approach = "" }},
		{"missing slot", func(in *Input) { in.Slot = "" }},
		{"missing template", func(in *Input) { in.Template = Template{} }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := base
			tt.mutate(&in)
			require.False(t, in.Complete())
			require.Equal(t, "", Generate(in))
		})
	}
}

func TestParseRejectsBrokenTemplates(t *testing.T) {
	t.Parallel()

	_, err := Parse("broken", "{{.Color")
	require.Error(t, err)

	_, err = Parse("unknown-field", "{{.Opacity}}")
	require.Error(t, err)

	_, err = Parse("empty", "   ")
	require.Error(t, err)
}

func TestTemplateKeepsSource(t *testing.T) {
	t.Parallel()

	tmpl := MustParse("class", ".{{.ClassName}} { border-width: {{.BorderWidth}}px; }")
	require.False(t, tmpl.IsZero())
	require.Contains(t, tmpl.Source(), "{{.ClassName}}")

	out := Generate(Input{Demo: "Badge", Approach: "css", Slot: "root", ClassName: "pg-1a2b", Template: tmpl, Tokens: tokens.Defaults()})
	require.Equal(t, ".pg-1a2b { border-width: 1px; }", out)
}
