package generate

import (
	"errors"

	"github.com/cmmoran/ctorlite/internal/model"
)

// Synthesize builds the constructor description for one record. It is a
// single pass over the fields in declaration order; the first
// classification failure aborts the whole record — there is no partial
// output. Records that are not plain named-field structs fail with a
// ShapeError.
func Synthesize(rec *model.Record) (*model.Function, error) {
	if rec.Kind != model.KindStruct {
		return nil, &ShapeError{
			Record: rec.Name,
			Kind:   rec.Kind,
			Reason: "only named-field structs take a generated constructor",
		}
	}

	fn := &model.Function{
		Record:     rec.Name,
		TypeParams: rec.TypeParams,
		Params:     make([]model.Param, 0, len(rec.Fields)),
		Inits:      make([]model.FieldInit, 0, len(rec.Fields)),
	}

	for _, f := range rec.Fields {
		if f.Name == "" {
			return nil, &ShapeError{
				Record: rec.Name,
				Kind:   rec.Kind,
				Reason: "embedded and unnamed fields are not supported",
			}
		}

		class, err := Classify(f)
		if err != nil {
			var de *DirectiveError
			if errors.As(err, &de) {
				de.Record = rec.Name
			}
			return nil, err
		}

		switch class {
		case model.ClassParameter:
			fn.Params = append(fn.Params, model.Param{Name: f.Name, Type: f.Type})
			fn.Inits = append(fn.Inits, model.FieldInit{Field: f.Name, Source: model.InitFromParam})
		case model.ClassDefaulted:
			fn.Inits = append(fn.Inits, model.FieldInit{Field: f.Name, Source: model.InitZeroValue})
		}
	}

	vis := rec.Visibility
	if rec.CtorVisibility != nil {
		vis = *rec.CtorVisibility
	}

	name := rec.CtorName
	if name == "" {
		name = "New" + rec.Name
	}

	fn.Name = vis.Apply(name)
	fn.Visibility = vis

	return fn, nil
}
