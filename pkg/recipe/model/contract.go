package model

// Dataset is an ordered, named-column, row-aligned tabular value. Column order
// and presence are contractually significant: the engine narrows and projects
// datasets by column name. Row order carries no meaning for the engine.
type Dataset interface {
	// Columns returns the column names in order.
	Columns() []string
	// Column returns the values of the named column.
	Column(name string) ([]any, bool)
	// Select returns a dataset narrowed to exactly the given columns, in the
	// given order.
	Select(names ...string) (Dataset, error)
	// Len returns the number of rows.
	Len() int
}

// Step is a single preprocessing transformation with separate train and apply
// phases.
//
// Train estimates whatever parameters the step needs from the data it is given
// and returns a trained copy; the receiver is left untouched. Apply transforms
// a dataset using those parameters. Applying an untrained step is the step's
// own responsibility to reject; the engine does not guard against it.
type Step interface {
	Train(data Dataset) (Step, error)
	Apply(data Dataset) (Dataset, error)
	// Trained reports whether Train has produced this step.
	Trained() bool
	// Role returns the role assigned to every column this step derives, or the
	// empty string when the step does not declare one.
	Role() string
	// Describe returns a one-line human-readable description of the step.
	Describe() string
}

// Classifier computes the structural type of every column of a dataset.
type Classifier interface {
	Classify(data Dataset) (map[string]Type, error)
}

// FormulaParser splits a model-formula specification into predictor and
// outcome variable groups.
type FormulaParser interface {
	Split(spec string, data Dataset) (predictors, outcomes []string, err error)
}
