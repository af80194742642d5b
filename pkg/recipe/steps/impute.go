package steps

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-recipe/pkg/recipe/frame"
	"github.com/askiada/go-recipe/pkg/recipe/model"
)

// ImputeMean fills missing cells of numeric columns with the column mean seen
// at training time.
type ImputeMean struct {
	columns []string
	means   map[string]float64
	trained bool
}

// NewImputeMean returns an untrained mean-imputation step. Without explicit
// columns it operates on every numeric column of the training data.
func NewImputeMean(columns ...string) *ImputeMean {
	return &ImputeMean{columns: columns}
}

func (s *ImputeMean) Train(data model.Dataset) (model.Step, error) {
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

	return &ImputeMean{columns: columns, means: means, trained: true}, nil
}

func (s *ImputeMean) Apply(data model.Dataset) (model.Dataset, error) {
	if !s.trained {
		return nil, errors.Wrap(ErrUntrained, s.Describe())
	}

	frm := frame.FromDataset(data)
	for _, name := range s.columns {
		col, ok := frm.Column(name)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownColumn, "column %q", name)
		}

		out := make([]any, len(col))
		for i, value := range col {
			if value == nil {
				out[i] = s.means[name]

				continue
			}
			f, ok := frame.AsFloat(value)
			if !ok {
				return nil, errors.Wrapf(ErrNotNumeric, "column %q", name)
			}
			out[i] = f
		}
		frm = frm.WithColumn(name, out)
	}

	return frm, nil
}

func (s *ImputeMean) Trained() bool {
	return s.trained
}

func (s *ImputeMean) Role() string {
	return model.RoleUnset
}

func (s *ImputeMean) Describe() string {
	return "Mean imputation for " + columnList(s.columns, "all numeric columns")
}

var _ model.Step = (*ImputeMean)(nil)
