package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/playground/internal/catalog"
	"github.com/alexisbeaulieu97/playground/internal/playground"
)

func TestViewRendersBasicLayout(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	require.Contains(t, view, "Playground • Button")
	require.Contains(t, view, "Contained")
	require.Contains(t, view, "Secondary")
	require.Contains(t, view, "Preview")
	require.Contains(t, view, "Tokens")
	require.Contains(t, view, "Border radius")
	require.Contains(t, view, "Code")
	require.Contains(t, view, "backgroundColor")
}

func TestViewShowsRecommendation(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	example, ok := m.Engine().SelectedExample()
	require.True(t, ok)
	require.Contains(t, view, example.Recommendation().Message())
	require.Contains(t, view, "Recommended")
}

func TestViewHandlesEmptyCatalog(t *testing.T) {
	empty, err := catalog.Build(&catalog.Document{Component: "Button"})
	require.NoError(t, err)
	m := NewModel(playground.New(empty, "", playground.Options{}))

	view := m.View()
	require.Contains(t, view, "no demos")
	require.NotContains(t, view, "Tokens")
}

func TestTabsMarkSelection(t *testing.T) {
	t.Parallel()

	out := tabs([]string{"one", "two"}, "two")
	require.Contains(t, out, "one")
	require.Contains(t, out, "two")
}
