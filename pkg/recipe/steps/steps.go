// Package steps provides ready-made preprocessing steps for the recipe
// package. Every step is immutable once trained: Train returns a new trained
// value and leaves the receiver untouched, so a step can be shared as a
// template across recipes.
package steps

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-recipe/pkg/recipe/frame"
	"github.com/askiada/go-recipe/pkg/recipe/model"
)

var (
	ErrUntrained     = errors.New("step is not trained")
	ErrUnknownColumn = errors.New("unknown column")
	ErrNotNumeric    = errors.New("column is not numeric")
	ErrNotNominal    = errors.New("column is not nominal")
	ErrBinCount      = errors.New("bins must be at least 2")
)

// resolveColumns returns the columns a step should operate on: the requested
// ones, validated against the dataset, or every column of the wanted type when
// none were requested.
func resolveColumns(data model.Dataset, requested []string, want model.Type) ([]string, error) {
	types, err := frame.Classifier{}.Classify(data)
	if err != nil {
		return nil, errors.Wrap(err, "unable to classify the dataset")
	}

	if len(requested) == 0 {
		detected := []string{}
		for _, name := range data.Columns() {
			if types[name] == want {
				detected = append(detected, name)
			}
		}

		return detected, nil
	}

	typeErr := ErrNotNumeric
	if want == model.TypeNominal {
		typeErr = ErrNotNominal
	}

	for _, name := range requested {
		typ, ok := types[name]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownColumn, "column %q", name)
		}
		if typ != want {
			return nil, errors.Wrapf(typeErr, "column %q is %s", name, typ)
		}
	}

	return requested, nil
}

// columnStats returns the mean and sample standard deviation of a numeric
// column, ignoring nil cells. A column with fewer than two non-nil values has
// a deviation of zero.
func columnStats(data model.Dataset, name string) (mean, stddev float64, err error) {
	col, ok := data.Column(name)
	if !ok {
		return 0, 0, errors.Wrapf(ErrUnknownColumn, "column %q", name)
	}

	var sum float64
	var count int

	for _, value := range col {
		if value == nil {
			continue
		}
		f, ok := frame.AsFloat(value)
		if !ok {
			return 0, 0, errors.Wrapf(ErrNotNumeric, "column %q", name)
		}
		sum += f
		count++
	}

	if count == 0 {
		return 0, 0, nil
	}
	mean = sum / float64(count)

	if count < 2 {
		return mean, 0, nil
	}

	var sq float64
	for _, value := range col {
		if value == nil {
			continue
		}
		f, _ := frame.AsFloat(value)
		sq += (f - mean) * (f - mean)
	}

	return mean, math.Sqrt(sq / float64(count-1)), nil
}

// mapNumeric rewrites a numeric column cell by cell, passing nils through.
func mapNumeric(frm *frame.Frame, name string, fn func(float64) any) (*frame.Frame, error) {
	col, ok := frm.Column(name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownColumn, "column %q", name)
	}

	out := make([]any, len(col))
	for i, value := range col {
		if value == nil {
			out[i] = nil

			continue
		}
		f, ok := frame.AsFloat(value)
		if !ok {
			return nil, errors.Wrapf(ErrNotNumeric, "column %q", name)
		}
		out[i] = fn(f)
	}

	return frm.WithColumn(name, out), nil
}

// distinctLabels returns the sorted distinct labels of a nominal column.
func distinctLabels(data model.Dataset, name string) ([]string, error) {
	col, ok := data.Column(name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownColumn, "column %q", name)
	}

	seen := make(map[string]struct{})
	labels := []string{}

	for _, value := range col {
		if value == nil {
			continue
		}
		label := fmt.Sprint(value)
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}

	sort.Strings(labels)

	return labels, nil
}

func columnList(columns []string, fallback string) string {
	if len(columns) == 0 {
		return fallback
	}

	return strings.Join(columns, ", ")
}
