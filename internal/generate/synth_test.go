package generate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmmoran/ctorlite/internal/model"
)

func strType() *model.TypeRef { return &model.TypeRef{Segments: []string{"string"}} }

func optType() *model.TypeRef {
	return &model.TypeRef{Segments: []string{"Option"}, Args: []*model.TypeRef{{Segments: []string{"uint16"}}}}
}

func movie(fields ...*model.Field) *model.Record {
	return &model.Record{
		Name:       "Movie",
		Visibility: model.Exported,
		Kind:       model.KindStruct,
		Fields:     fields,
	}
}

func TestSynthesizeSimple(t *testing.T) {
	fn, err := Synthesize(movie(
		&model.Field{Name: "title", Type: strType()},
		&model.Field{Name: "year", Type: optType()},
	))
	require.NoError(t, err)

	require.Equal(t, "NewMovie", fn.Name)
	require.Equal(t, model.Exported, fn.Visibility)
	require.Equal(t, "Movie", fn.Record)
	require.Len(t, fn.Params, 1)
	require.Equal(t, "title", fn.Params[0].Name)
	require.Equal(t, []model.FieldInit{
		{Field: "title", Source: model.InitFromParam},
		{Field: "year", Source: model.InitZeroValue},
	}, fn.Inits)
}

func TestSynthesizeOptionSpellings(t *testing.T) {
	fn, err := Synthesize(movie(
		&model.Field{Name: "title", Type: strType()},
		&model.Field{Name: "year", Type: optType()},
		&model.Field{Name: "genres", Type: &model.TypeRef{Segments: []string{"core", "option", "Option"}}},
		&model.Field{Name: "director", Type: &model.TypeRef{Segments: []string{"core", "option", "Option"}, Rooted: true}},
		&model.Field{Name: "composer", Type: &model.TypeRef{Segments: []string{"std", "option", "Option"}}},
		&model.Field{Name: "cast", Type: &model.TypeRef{Segments: []string{"std", "option", "Option"}, Rooted: true}},
	))
	require.NoError(t, err)

	require.Len(t, fn.Params, 1)
	require.Equal(t, "title", fn.Params[0].Name)
	for _, in := range fn.Inits[1:] {
		require.Equal(t, model.InitZeroValue, in.Source)
	}
}

func TestSynthesizeRequired(t *testing.T) {
	fn, err := Synthesize(movie(
		&model.Field{Name: "title", Type: strType()},
		&model.Field{Name: "year", Type: optType(), Required: true},
	))
	require.NoError(t, err)

	require.Len(t, fn.Params, 2)
	require.Equal(t, "title", fn.Params[0].Name)
	require.Equal(t, "year", fn.Params[1].Name)
	require.Equal(t, []model.FieldInit{
		{Field: "title", Source: model.InitFromParam},
		{Field: "year", Source: model.InitFromParam},
	}, fn.Inits)
}

func TestSynthesizeDefault(t *testing.T) {
	fn, err := Synthesize(movie(
		&model.Field{Name: "title", Type: strType(), Default: true},
		&model.Field{Name: "year", Type: optType()},
	))
	require.NoError(t, err)

	require.Empty(t, fn.Params)
	require.Equal(t, []model.FieldInit{
		{Field: "title", Source: model.InitZeroValue},
		{Field: "year", Source: model.InitZeroValue},
	}, fn.Inits)
}

func TestSynthesizeParameterOrder(t *testing.T) {
	fn, err := Synthesize(movie(
		&model.Field{Name: "a", Type: strType()},
		&model.Field{Name: "b", Type: optType()},
		&model.Field{Name: "c", Type: strType()},
		&model.Field{Name: "d", Type: strType(), Default: true},
		&model.Field{Name: "e", Type: strType()},
	))
	require.NoError(t, err)

	names := make([]string, 0, len(fn.Params))
	for _, p := range fn.Params {
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"a", "c", "e"}, names)
}

func TestSynthesizeNameOverride(t *testing.T) {
	rec := movie(&model.Field{Name: "title", Type: strType()})
	rec.CtorName = "fromTitle"

	fn, err := Synthesize(rec)
	require.NoError(t, err)

	// the record is exported, so the override is case-adjusted to match
	require.Equal(t, "FromTitle", fn.Name)
	require.Equal(t, model.Exported, fn.Visibility)
}

func TestSynthesizeVisibilityOverride(t *testing.T) {
	rec := movie(&model.Field{Name: "title", Type: strType()})
	unexported := model.Unexported
	rec.CtorVisibility = &unexported

	fn, err := Synthesize(rec)
	require.NoError(t, err)
	require.Equal(t, "newMovie", fn.Name)
	require.Equal(t, model.Unexported, fn.Visibility)
}

func TestSynthesizeNameAndVisibilityOverride(t *testing.T) {
	rec := movie(&model.Field{Name: "title", Type: strType()})
	unexported := model.Unexported
	rec.CtorName = "make"
	rec.CtorVisibility = &unexported

	fn, err := Synthesize(rec)
	require.NoError(t, err)
	require.Equal(t, "make", fn.Name)
	require.Equal(t, model.Unexported, fn.Visibility)
}

func TestSynthesizeGenerics(t *testing.T) {
	rec := &model.Record{
		Name:       "Pair",
		Visibility: model.Exported,
		Kind:       model.KindStruct,
		TypeParams: []model.TypeParam{
			{Name: "K", Constraint: &model.TypeRef{Segments: []string{"comparable"}}},
			{Name: "V"},
		},
		Fields: []*model.Field{
			{Name: "Key", Type: &model.TypeRef{Segments: []string{"K"}}},
			{Name: "Value", Type: &model.TypeRef{Segments: []string{"V"}}},
		},
	}

	fn, err := Synthesize(rec)
	require.NoError(t, err)
	require.Equal(t, rec.TypeParams, fn.TypeParams)
	require.Len(t, fn.Params, 2)
}

func TestSynthesizeConflictAbortsRecord(t *testing.T) {
	_, err := Synthesize(movie(
		&model.Field{Name: "title", Type: strType(), Required: true, Default: true},
		&model.Field{Name: "year", Type: optType()},
	))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrConflictingDirectives)

	var de *DirectiveError
	require.ErrorAs(t, err, &de)
	require.Equal(t, "Movie", de.Record)
	require.Equal(t, "title", de.Field)
}

func TestSynthesizeUnsupportedShape(t *testing.T) {
	for _, kind := range []model.Kind{model.KindAlias, model.KindInterface, model.KindOther} {
		t.Run(kind.String(), func(t *testing.T) {
			_, err := Synthesize(&model.Record{Name: "Movie", Kind: kind})
			require.ErrorIs(t, err, ErrUnsupportedShape)

			var se *ShapeError
			require.ErrorAs(t, err, &se)
			require.Equal(t, "Movie", se.Record)
		})
	}
}

func TestSynthesizeEmbeddedFieldUnsupported(t *testing.T) {
	_, err := Synthesize(movie(
		&model.Field{Type: strType()}, // embedded: no name
	))
	require.ErrorIs(t, err, ErrUnsupportedShape)
}
