package steps

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/askiada/go-recipe/pkg/recipe/frame"
	"github.com/askiada/go-recipe/pkg/recipe/model"
)

// Discretize bins one numeric column into a nominal column of the same name.
// Bin edges are equal-width between the minimum and maximum seen at training
// time; values outside that range fall into the first or last bin.
type Discretize struct {
	column  string
	bins    int
	breaks  []float64
	trained bool
}

// NewDiscretize returns an untrained discretization step for one column.
func NewDiscretize(column string, bins int) *Discretize {
	return &Discretize{column: column, bins: bins}
}

func (s *Discretize) Train(data model.Dataset) (model.Step, error) {
	if s.bins < 2 {
		return nil, errors.Wrapf(ErrBinCount, "%d bins", s.bins)
	}

	if _, err := resolveColumns(data, []string{s.column}, model.TypeNumeric); err != nil {
		return nil, err
	}

	col, _ := data.Column(s.column)

	var minVal, maxVal float64
	seen := false

	for _, value := range col {
		if value == nil {
			continue
		}
		f, ok := frame.AsFloat(value)
		if !ok {
			return nil, errors.Wrapf(ErrNotNumeric, "column %q", s.column)
		}
		if !seen || f < minVal {
			minVal = f
		}
		if !seen || f > maxVal {
			maxVal = f
		}
		seen = true
	}

	breaks := make([]float64, 0, s.bins-1)
	width := (maxVal - minVal) / float64(s.bins)
	for i := 1; i < s.bins; i++ {
		breaks = append(breaks, minVal+float64(i)*width)
	}

	return &Discretize{column: s.column, bins: s.bins, breaks: breaks, trained: true}, nil
}

func (s *Discretize) Apply(data model.Dataset) (model.Dataset, error) {
	if !s.trained {
		return nil, errors.Wrap(ErrUntrained, s.Describe())
	}

	frm := frame.FromDataset(data)

	frm, err := mapNumeric(frm, s.column, func(f float64) any {
		bin := 0
		for _, cut := range s.breaks {
			if f <= cut {
				break
			}
			bin++
		}

		return fmt.Sprintf("bin%d", bin+1)
	})
	if err != nil {
		return nil, err
	}

	return frm, nil
}

func (s *Discretize) Trained() bool {
	return s.trained
}

func (s *Discretize) Role() string {
	return model.RoleUnset
}

func (s *Discretize) Describe() string {
	return fmt.Sprintf("Discretizing %s into %d bins", s.column, s.bins)
}

var _ model.Step = (*Discretize)(nil)
