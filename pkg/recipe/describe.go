package recipe

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/askiada/go-recipe/pkg/recipe/model"
)

// Describe returns a human-readable summary of the recipe: a tabulation of
// roles over the original variables followed by one line per step, in step
// order. The recipe is left unchanged.
func (r *Recipe) Describe() string {
	var b strings.Builder

	b.WriteString("Recipe\n\nInputs:\n")
	b.WriteString(renderRoleCounts(r.varInfo.RoleCounts()))
	b.WriteString("\n")

	if len(r.steps) == 0 {
		return b.String()
	}

	b.WriteString("\nSteps:\n")
	for i, step := range r.steps {
		marker := ""
		if step.Trained() {
			marker = " [trained]"
		}
		fmt.Fprintf(&b, "%d. %s%s\n", i+1, step.Describe(), marker)
	}

	return b.String()
}

func renderRoleCounts(counts []RoleCount) string {
	wrt := table.NewWriter()
	wrt.SetStyle(table.StyleRounded)
	wrt.AppendHeader(table.Row{"role", "variables"})

	for _, count := range counts {
		role := count.Role
		if role == model.RoleUnset {
			role = "undeclared"
		}
		wrt.AppendRow(table.Row{role, count.Count})
	}

	return wrt.Render()
}
