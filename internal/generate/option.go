package generate

import "github.com/cmmoran/ctorlite/internal/model"

const optionName = "Option"

// IsOptionType reports whether t structurally names the Option wrapper
// type. Recognized spellings:
//
//	Option[T]
//	core.option.Option[T]
//	std.option.Option[T]
//
// the qualified forms with or without a leading root qualifier. The match
// is purely syntactic: an alias that merely resolves to Option is not
// unwrapped, because the generator deliberately runs without a
// type-resolution pass. Pointer, slice, map and otherwise non-path
// shapes never match.
func IsOptionType(t *model.TypeRef) bool {
	if t == nil || t.IsPtr || t.IsSlice || t.IsMap || t.Verbatim != "" {
		return false
	}

	if len(t.Segments) == 1 {
		return !t.Rooted && t.Segments[0] == optionName
	}

	if len(t.Segments) < 3 {
		return false
	}
	return (t.Segments[0] == "core" || t.Segments[0] == "std") &&
		t.Segments[1] == "option" &&
		t.Segments[2] == optionName
}
