package parser

import (
	"bytes"
	"go/ast"
	"go/printer"

	"github.com/cmmoran/ctorlite/internal/model"
)

// typeRef resolves an ast.Expr into the structural type descriptor the
// core classifies and the back-end renders. Shapes without a segment
// path (funcs, chans, fixed arrays) are captured verbatim.
func (p *Parser) typeRef(expr ast.Expr) *model.TypeRef {
	switch t := expr.(type) {
	case *ast.Ident:
		return &model.TypeRef{Segments: []string{t.Name}}

	case *ast.SelectorExpr:
		segs := flattenSelector(t)
		if segs == nil {
			return p.verbatimRef(expr)
		}
		ref := &model.TypeRef{Segments: segs}
		if meta, ok := p.Imports[segs[0]]; ok {
			ref.PkgPath = meta.Path
		}
		return ref

	case *ast.StarExpr:
		return &model.TypeRef{IsPtr: true, Elem: p.typeRef(t.X)}

	case *ast.ArrayType:
		if t.Len != nil {
			return p.verbatimRef(expr)
		}
		return &model.TypeRef{IsSlice: true, Elem: p.typeRef(t.Elt)}

	case *ast.MapType:
		return &model.TypeRef{IsMap: true, Key: p.typeRef(t.Key), Elem: p.typeRef(t.Value)}

	case *ast.IndexExpr:
		base := p.typeRef(t.X)
		base.Args = append(base.Args, p.typeRef(t.Index))
		return base

	case *ast.IndexListExpr:
		base := p.typeRef(t.X)
		for _, idx := range t.Indices {
			base.Args = append(base.Args, p.typeRef(idx))
		}
		return base

	default:
		return p.verbatimRef(expr)
	}
}

// flattenSelector turns a (possibly nested) selector chain into path
// segments, or nil when the chain base is not an identifier.
func flattenSelector(sel *ast.SelectorExpr) []string {
	switch x := sel.X.(type) {
	case *ast.Ident:
		return []string{x.Name, sel.Sel.Name}
	case *ast.SelectorExpr:
		inner := flattenSelector(x)
		if inner == nil {
			return nil
		}
		return append(inner, sel.Sel.Name)
	default:
		return nil
	}
}

func (p *Parser) verbatimRef(expr ast.Expr) *model.TypeRef {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, p.fset, expr); err != nil {
		return &model.TypeRef{}
	}
	return &model.TypeRef{Verbatim: buf.String()}
}
