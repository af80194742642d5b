package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-recipe/pkg/recipe/formula"
	"github.com/askiada/go-recipe/pkg/recipe/frame"
)

func newData(t *testing.T) *frame.Frame {
	t.Helper()

	frm, err := frame.FromColumns([]string{"a", "b", "y"}, map[string][]any{
		"a": {1},
		"b": {2},
		"y": {3},
	})
	require.NoError(t, err)

	return frm
}

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		spec       string
		predictors []string
		outcomes   []string
	}{
		{
			name:       "outcome and predictors",
			spec:       "y ~ a + b",
			predictors: []string{"a", "b"},
			outcomes:   []string{"y"},
		},
		{
			name:       "no outcome",
			spec:       "~ a + b",
			predictors: []string{"a", "b"},
			outcomes:   []string{},
		},
		{
			name:       "dot expands to remaining columns",
			spec:       "y ~ .",
			predictors: []string{"a", "b"},
			outcomes:   []string{"y"},
		},
		{
			name:       "dot without outcome takes every column",
			spec:       "~ .",
			predictors: []string{"a", "b", "y"},
			outcomes:   []string{},
		},
		{
			name:       "multiple outcomes",
			spec:       "y + b ~ a",
			predictors: []string{"a"},
			outcomes:   []string{"y", "b"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			predictors, outcomes, err := formula.Parser{}.Split(tc.spec, newData(t))
			require.NoError(t, err)
			assert.Equal(t, tc.predictors, predictors)
			assert.Equal(t, tc.outcomes, outcomes)
		})
	}
}

func TestSplitMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec string
	}{
		{name: "no separator", spec: "y + a + b"},
		{name: "two separators", spec: "y ~ a ~ b"},
		{name: "empty right-hand side", spec: "y ~"},
		{name: "dot on the left", spec: ". ~ a"},
		{name: "dot mixed with names", spec: "y ~ . + a"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := formula.Parser{}.Split(tc.spec, newData(t))
			assert.ErrorIs(t, err, formula.ErrMalformed)
		})
	}
}
