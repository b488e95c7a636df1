package generate

import (
	"errors"
	"fmt"

	"github.com/cmmoran/ctorlite/internal/model"
)

var (
	// ErrConflictingDirectives marks a field tagged both required and default.
	ErrConflictingDirectives = errors.New("conflicting directives")

	// ErrUnsupportedShape marks a record that is not a plain named-field struct.
	ErrUnsupportedShape = errors.New("unsupported record shape")
)

// DirectiveError reports mutually exclusive directives on a single field.
// Record is filled in by the synthesizer when classification runs in the
// context of a whole record.
type DirectiveError struct {
	Record string
	Field  string
}

func (e *DirectiveError) Error() string {
	if e.Record != "" {
		return fmt.Sprintf("%s.%s: field cannot use required and default at the same time", e.Record, e.Field)
	}
	return fmt.Sprintf("%s: field cannot use required and default at the same time", e.Field)
}

func (e *DirectiveError) Unwrap() error { return ErrConflictingDirectives }

// ShapeError reports a record whose declared shape cannot take a
// generated constructor.
type ShapeError struct {
	Record string
	Kind   model.Kind
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Record, e.Reason, e.Kind)
}

func (e *ShapeError) Unwrap() error { return ErrUnsupportedShape }
