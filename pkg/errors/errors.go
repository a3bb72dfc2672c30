package errors

import (
	stdErrors "errors"
	"fmt"
)

// SelectionKind classifies why a playground event was not applied verbatim.
type SelectionKind string

const (
	// KindInvalidSelection marks a name that is not in the currently valid set.
	KindInvalidSelection SelectionKind = "invalid_selection"
	// KindOutOfRangeToken marks a numeric token outside its declared range.
	KindOutOfRangeToken SelectionKind = "out_of_range_token"
	// KindIncompleteSelection marks an operation that needs an axis that is unset.
	KindIncompleteSelection SelectionKind = "incomplete_selection"
)

// Sentinels usable with errors.Is against any *SelectionError of the same kind.
var (
	ErrInvalidSelection    = stdErrors.New("invalid selection")
	ErrOutOfRangeToken     = stdErrors.New("token out of range")
	ErrIncompleteSelection = stdErrors.New("incomplete selection")
)

// SelectionError describes an event the selection engine absorbed.
type SelectionError struct {
	Kind  SelectionKind
	Axis  string
	Value string
}

// NewSelectionError constructs a SelectionError.
func NewSelectionError(kind SelectionKind, axis, value string) error {
	return &SelectionError{Kind: kind, Axis: axis, Value: value}
}

func (e *SelectionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Value != "" {
		return fmt.Sprintf("%s: %s %q", e.sentinel(), e.Axis, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.sentinel(), e.Axis)
}

// Is matches the sentinel for the error kind.
func (e *SelectionError) Is(target error) bool {
	if e == nil {
		return false
	}
	return target == e.sentinel()
}

func (e *SelectionError) sentinel() error {
	switch e.Kind {
	case KindOutOfRangeToken:
		return ErrOutOfRangeToken
	case KindIncompleteSelection:
		return ErrIncompleteSelection
	default:
		return ErrInvalidSelection
	}
}

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures catalog validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SourceError indicates a catalog could not be fetched from its source.
type SourceError struct {
	Source string
	Err    error
}

// NewSourceError constructs a SourceError for the given catalog source.
func NewSourceError(source string, err error) error {
	return &SourceError{Source: source, Err: err}
}

func (e *SourceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Source != "" {
		return fmt.Sprintf("catalog source error [%s]: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("catalog source error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *SourceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
