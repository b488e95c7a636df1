package parser

import (
	"go/ast"
	"log/slog"
	"reflect"
	"strings"

	"github.com/cmmoran/ctorlite/internal/model"
)

// directive is the per-record directive surface: the marker itself plus
// optional name= and visibility= options.
type directive struct {
	Name       string
	Visibility *model.Visibility
}

// directiveFor scans a type's doc comment for the configured marker.
// Returns ok=false when the type is not marked at all.
func (p *Parser) directiveFor(doc string) (directive, bool) {
	var d directive

	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(line, p.Opts.Marker)
		if !ok || (rest != "" && rest[0] != ' ' && rest[0] != '\t') {
			continue
		}

		for _, kv := range strings.Fields(rest) {
			key, val, found := strings.Cut(kv, "=")
			if !found {
				continue
			}
			val = strings.Trim(val, `"`)
			switch key {
			case "name":
				d.Name = val
			case "visibility":
				switch val {
				case "exported":
					v := model.Exported
					d.Visibility = &v
				case "unexported":
					v := model.Unexported
					d.Visibility = &v
				default:
					slog.Warn("ignoring unknown visibility", "value", val)
				}
			}
		}
		return d, true
	}

	return d, false
}

// fieldDirectives reads the required/default flags from a field's
// struct tag under the configured key. Unrecognized tag values are
// ignored here; the core rejects contradictory combinations.
func (p *Parser) fieldDirectives(tag *ast.BasicLit) (required, defaulted bool) {
	if tag == nil {
		return false, false
	}

	st := reflect.StructTag(strings.Trim(tag.Value, "`"))
	val, ok := st.Lookup(p.Opts.Tag)
	if !ok {
		return false, false
	}

	for _, part := range strings.Split(val, ",") {
		switch strings.TrimSpace(part) {
		case "required":
			required = true
		case "default":
			defaulted = true
		}
	}
	return required, defaulted
}
