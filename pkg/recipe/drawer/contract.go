package drawer

import (
	"github.com/askiada/go-recipe/pkg/recipe/measure"
)

// Drawer is an interface that defines the methods for drawing a recipe.
type Drawer interface {
	// AddStep adds a step node to the recipe graph.
	AddStep(stepName string) error
	// AddLink adds a link between two step nodes.
	AddLink(parentStepName, childStepName string) error
	// AddVariable attaches a variable node to a step node, colored by role.
	AddVariable(stepName, varName, role string) error
	// AddMeasure annotates step nodes with training durations.
	AddMeasure(measure measure.Measure) error
	// Draw creates a file with the recipe graph.
	Draw() error
}
