package generate

import "github.com/cmmoran/ctorlite/internal/model"

// Classify resolves a field to its constructor role. Priority order:
//
//  1. required directive → parameter
//  2. default directive  → defaulted
//  3. Option-shaped type → defaulted
//  4. everything else    → parameter
//
// A field carrying both directives fails with a DirectiveError; there is
// no pick-one resolution. Non-path types (maps, funcs, anything the
// front-end could not reduce to a segment path) fall through to rule 4
// and stay required.
func Classify(f *model.Field) (model.Classification, error) {
	if f.Required && f.Default {
		return model.ClassInvalid, &DirectiveError{Field: f.Name}
	}

	switch {
	case f.Required:
		return model.ClassParameter, nil
	case f.Default:
		return model.ClassDefaulted, nil
	case IsOptionType(f.Type):
		return model.ClassDefaulted, nil
	default:
		return model.ClassParameter, nil
	}
}
