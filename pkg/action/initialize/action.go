package initialize

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/cmmoran/ctorlite/internal/emit"
	"github.com/cmmoran/ctorlite/internal/generate"
	"github.com/cmmoran/ctorlite/internal/model"
	internal "github.com/cmmoran/ctorlite/internal/parser"
	"github.com/cmmoran/ctorlite/pkg/parser"
)

// Result describes one completed generator run.
type Result struct {
	Package      string
	File         string
	Constructors []string
}

// Generate scans the input directory, synthesizes a constructor for
// every marked record, and writes them to a single generated file.
//
// A record that fails classification or shape checking is skipped and
// its diagnostic collected; unrelated records still generate. The
// joined diagnostics are returned alongside the result.
func Generate(o *parser.Options) (*Result, error) {
	p, err := internal.NewWithOpts(o)
	if err != nil {
		return nil, err
	}
	if err = p.Parse(); err != nil {
		return nil, err
	}

	var (
		fns   []*model.Function
		diags []error
	)
	for _, rec := range p.Records {
		fn, synthErr := generate.Synthesize(rec)
		if synthErr != nil {
			diags = append(diags, synthErr)
			continue
		}
		fns = append(fns, fn)
	}

	res := &Result{Package: p.PkgPath}
	for _, fn := range fns {
		res.Constructors = append(res.Constructors, fn.Name)
	}

	if len(fns) > 0 {
		if err = os.MkdirAll(p.Opts.OutDir, 0o755); err != nil {
			return res, errors.Join(append(diags, err)...)
		}
		outFile := filepath.Clean(filepath.Join(p.Opts.OutDir, p.Opts.OutFile))
		ff, openErr := os.OpenFile(outFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if openErr != nil {
			return res, errors.Join(append(diags, openErr)...)
		}
		defer func() { _ = ff.Close() }()

		if err = emit.Render(ff, p.PkgName, fns); err != nil {
			return res, errors.Join(append(diags, err)...)
		}
		res.File = outFile
	}

	return res, errors.Join(diags...)
}
