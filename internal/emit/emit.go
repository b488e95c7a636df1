package emit

import (
	"io"

	"github.com/dave/jennifer/jen"

	"github.com/cmmoran/ctorlite/internal/model"
)

const header = "Code generated by ctorlite. DO NOT EDIT."

// File assembles one generated file containing the given constructor
// functions, in the order provided.
func File(pkgName string, fns []*model.Function) *jen.File {
	f := jen.NewFile(pkgName)
	f.HeaderComment(header)
	for _, fn := range fns {
		f.Add(Func(fn))
	}
	return f
}

// Render writes the assembled file to w.
func Render(w io.Writer, pkgName string, fns []*model.Function) error {
	return File(pkgName, fns).Render(w)
}

// Func renders a single constructor. Defaulted fields are omitted from
// the composite literal: the zero value Go assigns to an omitted field
// is the type's default value.
func Func(fn *model.Function) *jen.Statement {
	stmt := jen.Func().Id(fn.Name)

	if len(fn.TypeParams) > 0 {
		stmt.Types(typeParams(fn.TypeParams)...)
	}

	params := make([]jen.Code, 0, len(fn.Params))
	for _, p := range fn.Params {
		params = append(params, jen.Id(p.Name).Add(TypeExpr(p.Type)))
	}
	stmt.Params(params...)

	ret := jen.Id(fn.Record)
	if len(fn.TypeParams) > 0 {
		args := make([]jen.Code, 0, len(fn.TypeParams))
		for _, tp := range fn.TypeParams {
			args = append(args, jen.Id(tp.Name))
		}
		ret.Types(args...)
	}

	inits := make([]jen.Code, 0, len(fn.Inits))
	for _, in := range fn.Inits {
		if in.Source != model.InitFromParam {
			continue
		}
		inits = append(inits, jen.Id(in.Field).Op(":").Id(in.Field))
	}

	stmt.Add(ret.Clone())
	stmt.Block(jen.Return(ret.Clone().Values(inits...)))

	return stmt
}

func typeParams(tps []model.TypeParam) []jen.Code {
	out := make([]jen.Code, 0, len(tps))
	for _, tp := range tps {
		if tp.Constraint == nil {
			out = append(out, jen.Id(tp.Name).Any())
			continue
		}
		out = append(out, jen.Id(tp.Name).Add(TypeExpr(tp.Constraint)))
	}
	return out
}

// TypeExpr renders a TypeRef verbatim, structure first, then the
// qualified path, then any generic arguments.
func TypeExpr(t *model.TypeRef) jen.Code {
	if t == nil {
		return jen.Any()
	}
	if t.Verbatim != "" {
		return jen.Op(t.Verbatim)
	}

	switch {
	case t.IsPtr:
		return jen.Op("*").Add(TypeExpr(t.Elem))
	case t.IsSlice:
		return jen.Index().Add(TypeExpr(t.Elem))
	case t.IsMap:
		return jen.Map(TypeExpr(t.Key)).Add(TypeExpr(t.Elem))
	}

	if len(t.Segments) == 0 {
		return jen.Any()
	}

	var stmt *jen.Statement
	if t.PkgPath != "" {
		stmt = jen.Qual(t.PkgPath, t.Name())
	} else {
		stmt = jen.Id(t.Segments[0])
		for _, seg := range t.Segments[1:] {
			stmt.Dot(seg)
		}
	}

	if len(t.Args) > 0 {
		args := make([]jen.Code, 0, len(t.Args))
		for _, a := range t.Args {
			args = append(args, TypeExpr(a))
		}
		stmt.Types(args...)
	}

	return stmt
}
