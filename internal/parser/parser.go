package parser

import (
	"fmt"
	"go/ast"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/tools/go/packages"

	"github.com/cmmoran/ctorlite/internal/model"
	"github.com/cmmoran/ctorlite/pkg/parser"
)

// Parser holds state/results of a scan run.
type Parser struct {
	Opts parser.Options

	Imports map[string]*parser.ImportMeta
	Records []*model.Record

	// PkgName and PkgPath describe the package the generated file
	// belongs to, resolved during Parse.
	PkgName string
	PkgPath string

	fset *token.FileSet
}

// New executes the parser with opts.
func New(opts ...parser.Option) (*Parser, error) {
	o := parser.NewOptions()
	for _, fn := range opts {
		fn(o)
	}
	return NewWithOpts(o)
}

func NewWithOpts(opts *parser.Options) (*Parser, error) {
	opts.Normalize()

	p := &Parser{
		Opts:    *opts,
		Imports: make(map[string]*parser.ImportMeta),
		Records: make([]*model.Record, 0),
		fset:    token.NewFileSet(),
	}

	return p, nil
}

// Parse loads the input directory and collects all marked records in
// declaration order.
func (p *Parser) Parse() error {
	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedSyntax,
		Dir:  p.Opts.InDir,
		Fset: p.fset,
	}, "./...")
	if err != nil {
		return err
	}

	for _, pkg := range pkgs {
		if p.PkgName == "" {
			p.PkgName = pkg.Name
		}
		for _, file := range pkg.Syntax {
			p.collectImports(file)
			p.collectRecords(file)
		}
	}

	if p.Opts.OutDir != p.Opts.InDir {
		p.PkgName = filepath.Base(p.Opts.OutDir)
	}
	p.PkgPath, _ = p.resolveImportPath()

	return nil
}

func (p *Parser) collectImports(file *ast.File) {
	for _, imp := range file.Imports {
		path := strings.Trim(imp.Path.Value, `"`)
		base := filepath.Base(path)
		alias := base
		if imp.Name != nil && imp.Name.Name != "_" && imp.Name.Name != "." {
			alias = imp.Name.Name
		}
		if _, ok := p.Imports[alias]; ok {
			continue
		}
		p.Imports[alias] = &parser.ImportMeta{
			Path:  path,
			Name:  base,
			Alias: alias,
		}
	}
}

func (p *Parser) collectRecords(file *ast.File) {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		genComment := commentText(gen.Doc)

		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			typeComment := genComment
			if txt := commentText(ts.Doc); txt != "" {
				if typeComment == "" {
					typeComment = txt
				} else {
					typeComment += "\n" + txt
				}
			}

			dir, marked := p.directiveFor(typeComment)
			if !marked {
				continue
			}
			if p.Opts.Excluded(ts.Name.Name) {
				continue
			}

			rec := &model.Record{
				Name:           ts.Name.Name,
				Visibility:     model.VisibilityOf(ts.Name.Name),
				CtorName:       dir.Name,
				CtorVisibility: dir.Visibility,
			}

			switch t := ts.Type.(type) {
			case *ast.StructType:
				rec.Kind = model.KindStruct
				rec.TypeParams = p.typeParams(ts.TypeParams)
				for _, fld := range t.Fields.List {
					rec.Fields = append(rec.Fields, p.parseFields(fld)...)
				}
			case *ast.InterfaceType:
				rec.Kind = model.KindInterface
			default:
				rec.Kind = model.KindAlias
			}

			p.Records = append(p.Records, rec)
		}
	}
}

// parseFields expands one field spec into descriptors. A spec may carry
// multiple names (X, Y string); an embedded field yields an unnamed
// descriptor, which synthesis rejects.
func (p *Parser) parseFields(f *ast.Field) []*model.Field {
	if f == nil {
		return nil
	}

	required, defaulted := p.fieldDirectives(f.Tag)
	typ := p.typeRef(f.Type)

	if len(f.Names) == 0 {
		return []*model.Field{{Type: typ, Required: required, Default: defaulted}}
	}

	out := make([]*model.Field, 0, len(f.Names))
	for _, id := range f.Names {
		out = append(out, &model.Field{
			Name:     id.Name,
			Type:     typ,
			Required: required,
			Default:  defaulted,
		})
	}
	return out
}

func (p *Parser) typeParams(fl *ast.FieldList) []model.TypeParam {
	if fl == nil {
		return nil
	}

	var out []model.TypeParam
	for _, f := range fl.List {
		var constraint *model.TypeRef
		if id, ok := f.Type.(*ast.Ident); !ok || id.Name != "any" {
			constraint = p.typeRef(f.Type)
		}
		for _, id := range f.Names {
			out = append(out, model.TypeParam{Name: id.Name, Constraint: constraint})
		}
	}
	return out
}

// resolveImportPath derives the import path of the output package from
// the enclosing go.mod.
func (p *Parser) resolveImportPath() (string, error) {
	modDir, err := p.findGoModDir()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(modDir, "go.mod"))
	if err != nil {
		return "", err
	}
	mf, err := modfile.Parse("go.mod", data, nil)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(modDir, p.Opts.OutDir)
	if err != nil {
		return "", err
	}
	if rel == "." {
		return mf.Module.Mod.Path, nil
	}
	return mf.Module.Mod.Path + "/" + filepath.ToSlash(rel), nil
}

// findGoModDir walks up from the input directory until it finds go.mod.
func (p *Parser) findGoModDir() (string, error) {
	from := p.Opts.InDir
	for {
		if _, err := os.Stat(filepath.Join(from, "go.mod")); err == nil {
			return from, nil
		}
		parent := filepath.Dir(from)
		if parent == from {
			return "", fmt.Errorf("no go.mod found above %s", p.Opts.InDir)
		}
		from = parent
	}
}

func commentText(cg *ast.CommentGroup) string {
	if cg == nil {
		return ""
	}
	var b strings.Builder
	for _, c := range cg.List {
		txt := strings.TrimSpace(strings.Trim(strings.TrimPrefix(strings.TrimPrefix(c.Text, "//"), "/*"), "*/"))
		b.WriteString(txt)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
