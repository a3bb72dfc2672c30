package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/playground/internal/tokens"
	playerrors "github.com/alexisbeaulieu97/playground/pkg/errors"
)

func TestShowCommand_DefaultSelection(t *testing.T) {
	stdout, _, err := executeCommand(t, "show")
	require.NoError(t, err)
	require.Contains(t, stdout, "Demo:      Contained (of Contained, Secondary, Disabled)")
	require.Contains(t, stdout, "Approach:  sx (Inline overrides) [Recommended]")
	require.Contains(t, stdout, "Slot:      root")
	require.Contains(t, stdout, "Tokens:    color=blue borderRadius=4px borderWidth=1px")
	require.Contains(t, stdout, "This is the recommended styling approach")
	require.Contains(t, stdout, "Preview:")
	require.Contains(t, stdout, "backgroundColor")
	require.NotContains(t, stdout, "Stylesheet:")
}

func TestShowCommand_ClassApproachPrintsStylesheet(t *testing.T) {
	stdout, _, err := executeCommand(t, "show", "--approach", "css", "--slot", "label", "--color", "red")
	require.NoError(t, err)
	require.Contains(t, stdout, "Approach:  css (CSS classes) [Warning]")
	require.Contains(t, stdout, "Slot:      label")
	require.Contains(t, stdout, "Stylesheet:")
	require.Contains(t, stdout, ".pg-")
	require.Contains(t, stdout, "#ef4444")
}

func TestShowCommand_StylesheetHoldsOnlyCurrentRule(t *testing.T) {
	stdout, _, err := executeCommand(t, "show", "--approach", "css", "--slot", "label", "--color", "red", "--border-width", "5")
	require.NoError(t, err)

	_, sheet, found := strings.Cut(stdout, "Stylesheet:")
	require.True(t, found)
	require.Equal(t, 1, strings.Count(sheet, ".pg-"), "earlier selections leave no rules behind")
	require.Contains(t, sheet, "border-width: 5px")
}

func TestShowCommand_JSONStylesheetHoldsOnlyCurrentRule(t *testing.T) {
	stdout, _, err := executeCommand(t, "show", "--approach", "css", "--color", "green", "--json")
	require.NoError(t, err)

	var payload showJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.NotEmpty(t, payload.ClassName)
	require.Equal(t, 1, strings.Count(payload.CSS, ".pg-"))
	require.Contains(t, payload.CSS, "."+payload.ClassName+" {")
}

func TestShowCommand_UnknownDemo(t *testing.T) {
	_, _, err := executeCommand(t, "show", "--demo", "Ghost")
	require.Error(t, err)
	require.ErrorIs(t, err, playerrors.ErrInvalidSelection)
	require.Contains(t, err.Error(), "Failed to show: applying selection")
	require.Contains(t, err.Error(), "playground catalog")
}

func TestShowCommand_JSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "show", "--demo", "Secondary", "--border-width", "40", "--json")
	require.NoError(t, err)

	var payload showJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "Button", payload.Component)
	require.Equal(t, "Secondary", payload.Demo)
	require.Equal(t, "sx", payload.Approach)
	require.True(t, payload.Interactive)
	require.NotNil(t, payload.Tokens)
	require.Equal(t, tokens.Purple, payload.Tokens.Color)
	require.Equal(t, tokens.MaxValue, payload.Tokens.BorderWidth, "out of range values clamp")
	require.NotEmpty(t, payload.Code)
	require.Contains(t, payload.Computed, "root")
	require.Len(t, payload.Approaches, 2)
}

func TestShowCommand_CatalogFile(t *testing.T) {
	path := writeCatalog(t, testCatalog)

	stdout, _, err := executeCommand(t, "show", "--catalog", path, "--border-radius", "7")
	require.NoError(t, err)
	require.Contains(t, stdout, "Component: Widget")
	require.Contains(t, stdout, "Slot:      badge")
	require.Contains(t, stdout, "badge color=blue radius=7")
}

func TestShowCommand_InvalidCatalogFile(t *testing.T) {
	path := writeCatalog(t, "component: Widget\ndemos:\n  - name: Broken\n    component: button\n")

	_, _, err := executeCommand(t, "show", "--catalog", path)
	require.Error(t, err)

	var validationErr *playerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, err.Error(), "Fix the catalog field")
}
