// Package formula provides the default model-formula parser for recipe
// construction. A specification has the shape "outcomes ~ predictors", where
// each side is a list of variable names joined by "+". The left-hand side may
// be empty, and the right-hand side may be the single term "." to stand for
// every column of the dataset not already named as an outcome.
package formula

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-recipe/pkg/recipe/model"
)

// ErrMalformed is returned when a specification cannot be split into an
// outcome group and a predictor group.
var ErrMalformed = errors.New("malformed formula specification")

// Parser parses "lhs ~ rhs" specifications.
type Parser struct{}

// Split returns the predictor and outcome variable names of the specification,
// each group in declaration order.
func (Parser) Split(spec string, data model.Dataset) ([]string, []string, error) {
	parts := strings.Split(spec, "~")
	if len(parts) != 2 {
		return nil, nil, errors.Wrapf(ErrMalformed, "expected a single ~ separator in %q", spec)
	}

	outcomes := splitTerms(parts[0])
	predictors := splitTerms(parts[1])

	for _, name := range outcomes {
		if name == "." {
			return nil, nil, errors.Wrapf(ErrMalformed, "the left-hand side of %q cannot contain .", spec)
		}
	}

	if len(predictors) == 0 {
		return nil, nil, errors.Wrapf(ErrMalformed, "the right-hand side of %q names no predictors", spec)
	}

	predictors, err := expandDot(spec, predictors, outcomes, data)
	if err != nil {
		return nil, nil, err
	}

	return predictors, outcomes, nil
}

func splitTerms(side string) []string {
	terms := []string{}
	for _, term := range strings.Split(side, "+") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		terms = append(terms, term)
	}

	return terms
}

// expandDot replaces a lone "." predictor with every dataset column that is
// not an outcome, in dataset column order.
func expandDot(spec string, predictors, outcomes []string, data model.Dataset) ([]string, error) {
	hasDot := false
	for _, name := range predictors {
		if name == "." {
			hasDot = true

			break
		}
	}

	if !hasDot {
		return predictors, nil
	}
	if len(predictors) > 1 {
		return nil, errors.Wrapf(ErrMalformed, ". cannot be combined with named predictors in %q", spec)
	}

	excluded := make(map[string]struct{}, len(outcomes))
	for _, name := range outcomes {
		excluded[name] = struct{}{}
	}

	expanded := []string{}
	for _, name := range data.Columns() {
		if _, ok := excluded[name]; ok {
			continue
		}
		expanded = append(expanded, name)
	}

	return expanded, nil
}

var _ model.FormulaParser = Parser{}
