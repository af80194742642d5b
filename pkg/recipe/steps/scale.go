package steps

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-recipe/pkg/recipe/frame"
	"github.com/askiada/go-recipe/pkg/recipe/model"
)

// Scale divides numeric columns by their trained sample standard deviation.
// A constant column keeps a deviation of one so that applying the step is a
// no-op rather than a division by zero.
type Scale struct {
	columns []string
	stddevs map[string]float64
	trained bool
}

// NewScale returns an untrained scaling step. Without explicit columns it
// operates on every numeric column of the training data.
func NewScale(columns ...string) *Scale {
	return &Scale{columns: columns}
}

func (s *Scale) Train(data model.Dataset) (model.Step, error) {
	columns, err := resolveColumns(data, s.columns, model.TypeNumeric)
	if err != nil {
		return nil, err
	}

	stddevs := make(map[string]float64, len(columns))
	for _, name := range columns {
		_, stddev, err := columnStats(data, name)
		if err != nil {
			return nil, err
		}
		if stddev == 0 {
			stddev = 1
		}
		stddevs[name] = stddev
	}

	return &Scale{columns: columns, stddevs: stddevs, trained: true}, nil
}

func (s *Scale) Apply(data model.Dataset) (model.Dataset, error) {
	if !s.trained {
		return nil, errors.Wrap(ErrUntrained, s.Describe())
	}

	frm := frame.FromDataset(data)
	for _, name := range s.columns {
		stddev := s.stddevs[name]

		var err error
		frm, err = mapNumeric(frm, name, func(f float64) any {
			return f / stddev
		})
		if err != nil {
			return nil, err
		}
	}

	return frm, nil
}

func (s *Scale) Trained() bool {
	return s.trained
}

func (s *Scale) Role() string {
	return model.RoleUnset
}

func (s *Scale) Describe() string {
	return "Scaling for " + columnList(s.columns, "all numeric columns")
}

var _ model.Step = (*Scale)(nil)
