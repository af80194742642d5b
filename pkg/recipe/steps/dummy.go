package steps

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/askiada/go-recipe/pkg/recipe/frame"
	"github.com/askiada/go-recipe/pkg/recipe/model"
)

// Dummy one-hot encodes nominal columns. Each level seen at training time
// becomes a numeric indicator column named "<column>_<level>", and the
// original column is dropped. Levels unseen at training time encode to all
// zeros.
type Dummy struct {
	columns []string
	levels  map[string][]string
	role    string
	trained bool
}

// NewDummy returns an untrained one-hot encoding step. Without explicit
// columns it operates on every nominal column of the training data.
func NewDummy(columns ...string) *Dummy {
	return &Dummy{columns: columns}
}

// WithRole declares the role assigned to every indicator column this step
// derives. Must be called before training.
func (s *Dummy) WithRole(role string) *Dummy {
	s.role = role

	return s
}

func (s *Dummy) Train(data model.Dataset) (model.Step, error) {
	columns, err := resolveColumns(data, s.columns, model.TypeNominal)
	if err != nil {
		return nil, err
	}

	levels := make(map[string][]string, len(columns))
	for _, name := range columns {
		labels, err := distinctLabels(data, name)
		if err != nil {
			return nil, err
		}
		levels[name] = labels
	}

	return &Dummy{columns: columns, levels: levels, role: s.role, trained: true}, nil
}

func (s *Dummy) Apply(data model.Dataset) (model.Dataset, error) {
	if !s.trained {
		return nil, errors.Wrap(ErrUntrained, s.Describe())
	}

	frm := frame.FromDataset(data)
	for _, name := range s.columns {
		col, ok := frm.Column(name)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownColumn, "column %q", name)
		}

		for _, level := range s.levels[name] {
			indicator := make([]any, len(col))
			for i, value := range col {
				if value == nil {
					indicator[i] = nil

					continue
				}
				if fmt.Sprint(value) == level {
					indicator[i] = float64(1)
				} else {
					indicator[i] = float64(0)
				}
			}
			frm = frm.WithColumn(name+"_"+level, indicator)
		}
		frm = frm.Drop(name)
	}

	return frm, nil
}

func (s *Dummy) Trained() bool {
	return s.trained
}

func (s *Dummy) Role() string {
	return s.role
}

func (s *Dummy) Describe() string {
	return "Dummy variables from " + columnList(s.columns, "all nominal columns")
}

var _ model.Step = (*Dummy)(nil)
