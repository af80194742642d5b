package recipe

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/askiada/go-recipe/pkg/recipe/frame"
	"github.com/askiada/go-recipe/pkg/recipe/model"
)

// Recipe owns the ordered step list of a preprocessing pipeline together with
// the metadata describing every column in play.
//
// varInfo is the metadata table as constructed from the initial dataset and is
// never modified afterwards. termInfo starts as a copy of varInfo and is
// updated by Train as steps derive, remove or retype columns. The template is
// a representative snapshot of the data, used whenever Train or Apply is
// called without an explicit dataset.
//
// A Recipe is exclusively owned by its caller: training the same instance from
// two goroutines is out of contract.
type Recipe struct {
	vars       []string
	varInfo    *Table
	termInfo   *Table
	steps      []model.Step
	template   model.Dataset
	classifier model.Classifier
	logger     *slog.Logger
}

// New builds a recipe from a dataset.
//
// The dataset is narrowed to the requested variables, in the requested order.
// Every retained column is classified and recorded with source "original" and
// the requested role, if any.
func New(data model.Dataset, opts ...Option) (*Recipe, error) {
	if data == nil {
		return nil, ErrDatasetMustBeSet
	}

	cfg := &config{
		classifier: frame.Classifier{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	vars := cfg.vars
	if vars == nil {
		vars = data.Columns()
	}

	err := checkVariables(data, vars, cfg.roles)
	if err != nil {
		return nil, err
	}

	narrowed, err := data.Select(vars...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to narrow the dataset")
	}

	types, err := cfg.classifier.Classify(narrowed)
	if err != nil {
		return nil, errors.Wrap(err, "unable to classify the dataset")
	}

	varInfo := NewTable()
	for i, name := range vars {
		role := model.RoleUnset
		if cfg.roles != nil {
			role = cfg.roles[i]
		}
		varInfo.Add(model.Variable{
			Name:   name,
			Type:   types[name],
			Role:   role,
			Source: model.SourceOriginal,
		})
	}

	return &Recipe{
		vars:       vars,
		varInfo:    varInfo,
		termInfo:   varInfo.Clone(),
		steps:      cfg.steps,
		template:   narrowed,
		classifier: cfg.classifier,
		logger:     cfg.logger,
	}, nil
}

// NewFromFormula builds a recipe whose variables and roles are derived from a
// model-formula specification. Every right-hand variable becomes a
// "predictor", every left-hand variable an "outcome", and the variable list is
// the predictors followed by the outcomes.
func NewFromFormula(spec string, data model.Dataset, parser model.FormulaParser, opts ...Option) (*Recipe, error) {
	if data == nil {
		return nil, ErrDatasetMustBeSet
	}
	if parser == nil {
		return nil, ErrParserMustBeSet
	}

	predictors, outcomes, err := parser.Split(spec, data)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse formula %q", spec)
	}

	vars := make([]string, 0, len(predictors)+len(outcomes))
	roles := make([]string, 0, len(predictors)+len(outcomes))

	for _, name := range predictors {
		vars = append(vars, name)
		roles = append(roles, "predictor")
	}
	for _, name := range outcomes {
		vars = append(vars, name)
		roles = append(roles, "outcome")
	}

	derived := []Option{WithVariables(vars...), WithRoles(roles...)}

	return New(data, append(derived, opts...)...)
}

func checkVariables(data model.Dataset, vars, roles []string) error {
	if roles != nil && len(roles) != len(vars) {
		return errors.Wrapf(ErrRoleLengthMismatch, "%d roles for %d variables", len(roles), len(vars))
	}

	available := make(map[string]struct{}, len(data.Columns()))
	for _, name := range data.Columns() {
		available[name] = struct{}{}
	}

	seen := make(map[string]struct{}, len(vars))
	for _, name := range vars {
		if _, ok := seen[name]; ok {
			return errors.Wrapf(ErrDuplicateVariable, "variable %q", name)
		}
		seen[name] = struct{}{}

		if _, ok := available[name]; !ok {
			return errors.Wrapf(ErrUnknownVariable, "variable %q", name)
		}
	}

	return nil
}

// AddStep appends a step to the recipe.
func (r *Recipe) AddStep(step model.Step) *Recipe {
	r.steps = append(r.steps, step)

	return r
}

// Variables returns the names of the variables in scope, in order.
func (r *Recipe) Variables() []string {
	vars := make([]string, len(r.vars))
	copy(vars, r.vars)

	return vars
}

// VarInfo returns a copy of the metadata table as constructed from the
// initial dataset.
func (r *Recipe) VarInfo() []model.Variable {
	return r.varInfo.Variables()
}

// TermInfo returns a copy of the live metadata table, reflecting every step
// trained so far.
func (r *Recipe) TermInfo() []model.Variable {
	return r.termInfo.Variables()
}

// Steps returns the step list.
func (r *Recipe) Steps() []model.Step {
	steps := make([]model.Step, len(r.steps))
	copy(steps, r.steps)

	return steps
}

// Template returns the recipe's template dataset.
func (r *Recipe) Template() model.Dataset {
	return r.template
}

// StepName returns the display name of a step at the given position in a
// recipe's step list. It is shared by the trainer, the measure and the drawer
// so that timings and diagram nodes line up.
func StepName(index int, step model.Step) string {
	return fmt.Sprintf("%d. %s", index+1, step.Describe())
}

// narrow selects exactly the given columns from a dataset, in order.
func narrow(data model.Dataset, names []string) (model.Dataset, error) {
	available := make(map[string]struct{}, len(data.Columns()))
	for _, name := range data.Columns() {
		available[name] = struct{}{}
	}

	for _, name := range names {
		if _, ok := available[name]; !ok {
			return nil, errors.Wrapf(ErrUnknownVariable, "variable %q", name)
		}
	}

	narrowed, err := data.Select(names...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to narrow the dataset")
	}

	return narrowed, nil
}
