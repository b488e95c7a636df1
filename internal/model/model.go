package model

import (
	"unicode"
	"unicode/utf8"
)

// Kind classifies the declared shape of a scanned type.
type Kind int

const (
	KindInvalid   Kind = iota
	KindStruct         // named-field struct
	KindAlias          // type X OtherType
	KindInterface      // interface type
	KindOther          // func, chan, map, array declarations etc.
)

func (k Kind) String() string {
	switch k {
	case KindStruct:
		return "struct"
	case KindAlias:
		return "alias"
	case KindInterface:
		return "interface"
	case KindOther:
		return "other"
	}
	return "invalid"
}

// Visibility is the exposure level of a record or of its generated
// constructor. Go spells visibility in the identifier itself, so the
// effective visibility also fixes the case of the first rune of the
// generated function name.
type Visibility int

const (
	Unexported Visibility = iota
	Exported
)

func (v Visibility) String() string {
	if v == Exported {
		return "exported"
	}
	return "unexported"
}

// VisibilityOf derives a name's visibility from its first rune.
func VisibilityOf(name string) Visibility {
	r, _ := utf8.DecodeRuneInString(name)
	if unicode.IsUpper(r) {
		return Exported
	}
	return Unexported
}

// Apply adjusts the first rune of name to match v.
func (v Visibility) Apply(name string) string {
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	if v == Exported {
		r = unicode.ToUpper(r)
	} else {
		r = unicode.ToLower(r)
	}
	return string(r) + name[size:]
}

// TypeRef is a structural type descriptor: a qualified path of name
// segments plus generic arguments, with pointer/slice/map structure
// layered on top. It carries enough to render the type verbatim and to
// pattern-match the Option wrapper, nothing more — no resolved type
// information.
type TypeRef struct {
	Segments []string // path as written; last segment is the type name
	Rooted   bool     // a leading root qualifier was present
	PkgPath  string   // import path of the first segment, "" for builtins/local
	Args     []*TypeRef

	IsPtr   bool
	IsSlice bool
	IsMap   bool
	Key     *TypeRef // map key, when IsMap
	Elem    *TypeRef // pointer/slice/map element

	// Verbatim holds the type exactly as written when it is not a
	// simple path shape (func, chan, fixed array). Such fields never
	// match the Option wrapper and stay required.
	Verbatim string
}

// Name returns the final path segment, or "" for non-path shapes.
func (t *TypeRef) Name() string {
	if t == nil || len(t.Segments) == 0 {
		return ""
	}
	return t.Segments[len(t.Segments)-1]
}

// TypeParam is one generic parameter of a record, carried through to
// the generated constructor unmodified.
type TypeParam struct {
	Name       string
	Constraint *TypeRef // nil means "any"
}

// Field is one declared field of a record, in declaration order.
// Required and Default are the per-field directives; they are mutually
// exclusive, enforced at classification time.
type Field struct {
	Name     string
	Type     *TypeRef
	Required bool
	Default  bool
}

// Classification is the derived role of a field: either a constructor
// parameter or a silently defaulted field. It is a closed two-case
// variant; the synthesizer matches over exactly these.
type Classification int

const (
	ClassInvalid Classification = iota
	ClassParameter
	ClassDefaulted
)

func (c Classification) String() string {
	switch c {
	case ClassParameter:
		return "parameter"
	case ClassDefaulted:
		return "defaulted"
	}
	return "invalid"
}

// Record describes one scanned type declaration, normalized by the
// front-end. CtorName and CtorVisibility are the per-record overrides;
// zero values mean "no override".
type Record struct {
	Name       string
	Visibility Visibility
	Kind       Kind
	TypeParams []TypeParam
	Fields     []*Field

	CtorName       string
	CtorVisibility *Visibility
}

// Param is one constructor parameter, named and typed exactly as the
// originating field.
type Param struct {
	Name string
	Type *TypeRef
}

// InitSource says where a field's value in the construction literal
// comes from.
type InitSource int

const (
	InitFromParam InitSource = iota // assigned from the like-named argument
	InitZeroValue                   // left at the type's zero value
)

// FieldInit is one entry of the construction literal, in declaration
// order of the underlying fields.
type FieldInit struct {
	Field  string
	Source InitSource
}

// Function is the synthesized constructor description consumed by the
// emission back-end. All descriptors live for a single generation pass;
// nothing is shared or persisted across invocations.
type Function struct {
	Name       string
	Visibility Visibility
	Record     string
	TypeParams []TypeParam
	Params     []Param
	Inits      []FieldInit
}
