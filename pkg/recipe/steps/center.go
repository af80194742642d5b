package steps

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-recipe/pkg/recipe/frame"
	"github.com/askiada/go-recipe/pkg/recipe/model"
)

// Center subtracts the trained column means from numeric columns.
type Center struct {
	columns []string
	means   map[string]float64
	trained bool
}

// NewCenter returns an untrained centering step. Without explicit columns it
// operates on every numeric column of the training data.
func NewCenter(columns ...string) *Center {
	return &Center{columns: columns}
}

func (s *Center) Train(data model.Dataset) (model.Step, error) {
	columns, err := resolveColumns(data, s.columns, model.TypeNumeric)
	if err != nil {
		return nil, err
	}

	means := make(map[string]float64, len(columns))
	for _, name := range columns {
		mean, _, err := columnStats(data, name)
		if err != nil {
			return nil, err
		}
		means[name] = mean
	}

	return &Center{columns: columns, means: means, trained: true}, nil
}

func (s *Center) Apply(data model.Dataset) (model.Dataset, error) {
	if !s.trained {
		return nil, errors.Wrap(ErrUntrained, s.Describe())
	}

	frm := frame.FromDataset(data)
	for _, name := range s.columns {
		mean := s.means[name]

		var err error
		frm, err = mapNumeric(frm, name, func(f float64) any {
			return f - mean
		})
		if err != nil {
			return nil, err
		}
	}

	return frm, nil
}

func (s *Center) Trained() bool {
	return s.trained
}

func (s *Center) Role() string {
	return model.RoleUnset
}

func (s *Center) Describe() string {
	return "Centering for " + columnList(s.columns, "all numeric columns")
}

var _ model.Step = (*Center)(nil)
