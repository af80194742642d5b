package recipe

import (
	"log/slog"

	"github.com/askiada/go-recipe/pkg/recipe/measure"
	"github.com/askiada/go-recipe/pkg/recipe/model"
)

// Option configures recipe construction.
type Option func(c *config)

type config struct {
	vars       []string
	roles      []string
	steps      []model.Step
	classifier model.Classifier
	logger     *slog.Logger
}

// WithVariables restricts the recipe to the given variables, in the given
// order. By default every column of the dataset is used.
func WithVariables(vars ...string) Option {
	return func(c *config) {
		c.vars = vars
	}
}

// WithRoles declares the role of each variable, parallel to the variable list.
func WithRoles(roles ...string) Option {
	return func(c *config) {
		c.roles = roles
	}
}

// WithSteps seeds the recipe with an initial step list.
func WithSteps(steps ...model.Step) Option {
	return func(c *config) {
		c.steps = steps
	}
}

// WithClassifier replaces the default structural type classifier.
func WithClassifier(classifier model.Classifier) Option {
	return func(c *config) {
		c.classifier = classifier
	}
}

// WithLogger replaces the default logger used for progress notices and
// warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// TrainOption configures a single training run.
type TrainOption func(c *trainConfig)

type trainConfig struct {
	fresh   bool
	verbose bool
	measure measure.Measure
}

// Fresh forces every step to be retrained, even ones already trained.
func Fresh() TrainOption {
	return func(c *trainConfig) {
		c.fresh = true
	}
}

// Verbose emits one progress notice per step during training.
func Verbose() TrainOption {
	return func(c *trainConfig) {
		c.verbose = true
	}
}

// WithMeasure records per-step training durations into the given measure.
func WithMeasure(msr measure.Measure) TrainOption {
	return func(c *trainConfig) {
		c.measure = msr
	}
}

// ApplyOption configures a single application run.
type ApplyOption func(c *applyConfig)

type applyConfig struct {
	roles []string
}

// Roles projects the transformed dataset down to the columns whose metadata
// role is among the given roles. Without this option every column is kept.
func Roles(roles ...string) ApplyOption {
	return func(c *applyConfig) {
		c.roles = roles
	}
}
