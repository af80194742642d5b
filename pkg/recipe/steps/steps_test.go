package steps_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-recipe/pkg/recipe/frame"
	"github.com/askiada/go-recipe/pkg/recipe/model"
	"github.com/askiada/go-recipe/pkg/recipe/steps"
)

func newFrame(t *testing.T, order []string, cols map[string][]any) *frame.Frame {
	t.Helper()

	frm, err := frame.FromColumns(order, cols)
	require.NoError(t, err)

	return frm
}

func column(t *testing.T, data model.Dataset, name string) []any {
	t.Helper()

	col, ok := data.Column(name)
	require.True(t, ok, "column %q", name)

	return col
}

func TestCenter(t *testing.T) {
	t.Parallel()

	data := newFrame(t, []string{"x", "label"}, map[string][]any{
		"x":     {1.0, 2.0, 3.0},
		"label": {"a", "b", "a"},
	})

	trained, err := steps.NewCenter().Train(data)
	require.NoError(t, err)
	assert.True(t, trained.Trained())
	assert.False(t, steps.NewCenter().Trained())

	out, err := trained.Apply(data)
	require.NoError(t, err)

	assert.Equal(t, []any{-1.0, 0.0, 1.0}, column(t, out, "x"))
	assert.Equal(t, []any{"a", "b", "a"}, column(t, out, "label"))
}

func TestCenterUsesTrainedMeansOnNewData(t *testing.T) {
	t.Parallel()

	train := newFrame(t, []string{"x"}, map[string][]any{"x": {1.0, 3.0}})
	apply := newFrame(t, []string{"x"}, map[string][]any{"x": {10.0}})

	trained, err := steps.NewCenter("x").Train(train)
	require.NoError(t, err)

	out, err := trained.Apply(apply)
	require.NoError(t, err)
	assert.Equal(t, []any{8.0}, column(t, out, "x"))
}

func TestCenterUntrainedApply(t *testing.T) {
	t.Parallel()

	data := newFrame(t, []string{"x"}, map[string][]any{"x": {1.0}})

	_, err := steps.NewCenter().Apply(data)
	assert.ErrorIs(t, err, steps.ErrUntrained)
}

func TestCenterUnknownColumn(t *testing.T) {
	t.Parallel()

	data := newFrame(t, []string{"x"}, map[string][]any{"x": {1.0}})

	_, err := steps.NewCenter("missing").Train(data)
	assert.ErrorIs(t, err, steps.ErrUnknownColumn)
}

func TestCenterNotNumeric(t *testing.T) {
	t.Parallel()

	data := newFrame(t, []string{"label"}, map[string][]any{"label": {"a"}})

	_, err := steps.NewCenter("label").Train(data)
	assert.ErrorIs(t, err, steps.ErrNotNumeric)
}

func TestScale(t *testing.T) {
	t.Parallel()

	data := newFrame(t, []string{"x"}, map[string][]any{
		"x": {2.0, 4.0, 6.0},
	})

	trained, err := steps.NewScale("x").Train(data)
	require.NoError(t, err)

	out, err := trained.Apply(data)
	require.NoError(t, err)

	got := column(t, out, "x")
	require.Len(t, got, 3)
	assert.InDelta(t, 1.0, got[0], 1e-9)
	assert.InDelta(t, 2.0, got[1], 1e-9)
	assert.InDelta(t, 3.0, got[2], 1e-9)
}

func TestScaleConstantColumn(t *testing.T) {
	t.Parallel()

	data := newFrame(t, []string{"x"}, map[string][]any{
		"x": {5.0, 5.0},
	})

	trained, err := steps.NewScale("x").Train(data)
	require.NoError(t, err)

	out, err := trained.Apply(data)
	require.NoError(t, err)
	assert.Equal(t, []any{5.0, 5.0}, column(t, out, "x"))
}

func TestImputeMean(t *testing.T) {
	t.Parallel()

	data := newFrame(t, []string{"x"}, map[string][]any{
		"x": {1.0, nil, 3.0},
	})

	trained, err := steps.NewImputeMean("x").Train(data)
	require.NoError(t, err)

	out, err := trained.Apply(data)
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, 2.0, 3.0}, column(t, out, "x"))
}

func TestDummy(t *testing.T) {
	t.Parallel()

	data := newFrame(t, []string{"color", "x"}, map[string][]any{
		"color": {"red", "blue", "red"},
		"x":     {1.0, 2.0, 3.0},
	})

	trained, err := steps.NewDummy("color").WithRole("predictor").Train(data)
	require.NoError(t, err)
	assert.Equal(t, "predictor", trained.Role())

	out, err := trained.Apply(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "color_blue", "color_red"}, out.Columns())
	assert.Equal(t, []any{0.0, 1.0, 0.0}, column(t, out, "color_blue"))
	assert.Equal(t, []any{1.0, 0.0, 1.0}, column(t, out, "color_red"))
}

func TestDummyUnseenLevelEncodesToZeros(t *testing.T) {
	t.Parallel()

	train := newFrame(t, []string{"color"}, map[string][]any{
		"color": {"red", "blue"},
	})
	apply := newFrame(t, []string{"color"}, map[string][]any{
		"color": {"green"},
	})

	trained, err := steps.NewDummy("color").Train(train)
	require.NoError(t, err)

	out, err := trained.Apply(apply)
	require.NoError(t, err)
	assert.Equal(t, []any{0.0}, column(t, out, "color_blue"))
	assert.Equal(t, []any{0.0}, column(t, out, "color_red"))
}

func TestDiscretize(t *testing.T) {
	t.Parallel()

	data := newFrame(t, []string{"x"}, map[string][]any{
		"x": {0.0, 5.0, 10.0},
	})

	trained, err := steps.NewDiscretize("x", 2).Train(data)
	require.NoError(t, err)

	out, err := trained.Apply(data)
	require.NoError(t, err)
	assert.Equal(t, []any{"bin1", "bin1", "bin2"}, column(t, out, "x"))

	// The rebuilt column must now classify as nominal under the same name.
	types, err := frame.Classifier{}.Classify(out)
	require.NoError(t, err)
	assert.Equal(t, model.TypeNominal, types["x"])
}

func TestDiscretizeOutOfRangeValues(t *testing.T) {
	t.Parallel()

	train := newFrame(t, []string{"x"}, map[string][]any{"x": {0.0, 10.0}})
	apply := newFrame(t, []string{"x"}, map[string][]any{"x": {-100.0, 100.0}})

	trained, err := steps.NewDiscretize("x", 4).Train(train)
	require.NoError(t, err)

	out, err := trained.Apply(apply)
	require.NoError(t, err)
	assert.Equal(t, []any{"bin1", "bin4"}, column(t, out, "x"))
}

func TestDiscretizeBinCount(t *testing.T) {
	t.Parallel()

	data := newFrame(t, []string{"x"}, map[string][]any{"x": {1.0}})

	_, err := steps.NewDiscretize("x", 1).Train(data)
	assert.ErrorIs(t, err, steps.ErrBinCount)
}

func TestTrainDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	data := newFrame(t, []string{"x"}, map[string][]any{"x": {1.0, 2.0}})

	template := steps.NewCenter("x")
	_, err := template.Train(data)
	require.NoError(t, err)

	assert.False(t, template.Trained())
}
