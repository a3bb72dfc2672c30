package tokens

import (
	"strconv"

	playerrors "github.com/alexisbeaulieu97/playground/pkg/errors"
)

// Key scopes token edits to a (demo, slot) pair.
type Key struct {
	Demo string
	Slot string
}

// Store holds token edits per (demo, slot). Store values are immutable:
// every write returns a new Store and leaves the receiver untouched.
type Store struct {
	entries map[Key]Overrides
}

// NewStore returns an empty store.
func NewStore() Store {
	return Store{}
}

// Len returns the number of (demo, slot) pairs with edits.
func (s Store) Len() int {
	return len(s.entries)
}

// Get returns the edits recorded for key.
func (s Store) Get(key Key) Overrides {
	return s.entries[key]
}

// Resolve merges the edits for key over defaults.
func (s Store) Resolve(key Key, defaults StyleTokens) StyleTokens {
	return s.entries[key].Merge(defaults)
}

// SetColor records a color edit. Colors outside the palette are rejected
// and the receiver is returned unchanged.
func (s Store) SetColor(key Key, color string) (Store, error) {
	if !ValidColor(color) {
		return s, playerrors.NewSelectionError(playerrors.KindInvalidSelection, string(Color), color)
	}
	return s.with(key, s.entries[key].withColor(ColorKey(color))), nil
}

// SetNumber records a numeric edit, clamping it into range. The returned
// bool reports whether clamping happened. Non-numeric names are rejected.
func (s Store) SetNumber(key Key, name Name, value int) (Store, bool, error) {
	if !name.Numeric() {
		return s, false, playerrors.NewSelectionError(playerrors.KindInvalidSelection, "token", string(name))
	}
	clamped, changed := Clamp(value)
	return s.with(key, s.entries[key].withNumber(name, clamped)), changed, nil
}

// OutOfRange builds the error describing a clamped write.
func OutOfRange(name Name, value int) error {
	return playerrors.NewSelectionError(playerrors.KindOutOfRangeToken, string(name), strconv.Itoa(value))
}

func (s Store) with(key Key, o Overrides) Store {
	next := make(map[Key]Overrides, len(s.entries)+1)
	for k, v := range s.entries {
		next[k] = v
	}
	next[key] = o
	return Store{entries: next}
}
