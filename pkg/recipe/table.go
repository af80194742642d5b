package recipe

import (
	"github.com/askiada/go-recipe/internal/store"
	"github.com/askiada/go-recipe/pkg/recipe/model"
)

// varKey identifies a metadata row. Rows are keyed by name and type rather
// than name alone: a later step may re-derive a column with the same name but
// a different structural type, and the two must stay distinguishable.
type varKey struct {
	name string
	typ  model.Type
}

// Table is an insertion-ordered collection of column metadata, unique by
// (name, type).
type Table struct {
	vars *store.Ordered[varKey, *model.Variable]
}

// NewTable returns an empty metadata table.
func NewTable() *Table {
	return &Table{
		vars: store.NewOrdered[varKey, *model.Variable](),
	}
}

// Add inserts the variable, overwriting any row with the same name and type.
func (t *Table) Add(variable model.Variable) {
	key := varKey{name: variable.Name, typ: variable.Type}
	t.vars.Set(key, &variable)
}

// Lookup returns the row with the given name and type.
func (t *Table) Lookup(name string, typ model.Type) (model.Variable, bool) {
	variable, ok := t.vars.Get(varKey{name: name, typ: typ})
	if !ok {
		return model.Variable{}, false
	}

	return *variable, true
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.vars.Len()
}

// Variables returns a copy of every row in insertion order.
func (t *Table) Variables() []model.Variable {
	variables := make([]model.Variable, 0, t.vars.Len())
	for _, variable := range t.vars.Values() {
		variables = append(variables, *variable)
	}

	return variables
}

// Names returns the distinct variable names in first-seen order.
func (t *Table) Names() []string {
	seen := make(map[string]struct{}, t.vars.Len())
	names := make([]string, 0, t.vars.Len())

	for _, key := range t.vars.Keys() {
		if _, ok := seen[key.name]; ok {
			continue
		}
		seen[key.name] = struct{}{}
		names = append(names, key.name)
	}

	return names
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	clone := NewTable()
	for _, variable := range t.vars.Values() {
		clone.Add(*variable)
	}

	return clone
}

// Merge left-joins the columns of a dataset into the table by (name, type).
// Rows already present keep their role and source; a column whose name and
// type pair is new acquires a fresh row with role and source unset.
func (t *Table) Merge(columns []string, types map[string]model.Type) {
	for _, name := range columns {
		key := varKey{name: name, typ: types[name]}
		if t.vars.Has(key) {
			continue
		}
		t.Add(model.Variable{Name: name, Type: types[name]})
	}
}

// FillRoles assigns the given role to every row whose role is still unset.
// An unset role argument leaves the table untouched.
func (t *Table) FillRoles(role string) {
	if role == model.RoleUnset {
		return
	}

	for _, variable := range t.vars.Values() {
		if variable.Role == model.RoleUnset {
			variable.Role = role
		}
	}
}

// FillSources assigns the given source to every row whose source is still
// unset.
func (t *Table) FillSources(source model.Source) {
	for _, variable := range t.vars.Values() {
		if variable.Source == "" {
			variable.Source = source
		}
	}
}

// RoleCount is one line of a role tabulation.
type RoleCount struct {
	Role  string
	Count int
}

// RoleCounts tabulates how many rows carry each role, in first-seen order.
func (t *Table) RoleCounts() []RoleCount {
	index := make(map[string]int)
	counts := []RoleCount{}

	for _, variable := range t.vars.Values() {
		pos, ok := index[variable.Role]
		if !ok {
			pos = len(counts)
			index[variable.Role] = pos
			counts = append(counts, RoleCount{Role: variable.Role})
		}
		counts[pos].Count++
	}

	return counts
}

// Roles returns the distinct roles present in the table, in first-seen order.
func (t *Table) Roles() []string {
	counts := t.RoleCounts()

	roles := make([]string, 0, len(counts))
	for _, count := range counts {
		roles = append(roles, count.Role)
	}

	return roles
}

// NamesWithRole returns the distinct names of rows whose role is among the
// given roles, in first-seen order.
func (t *Table) NamesWithRole(roles ...string) []string {
	wanted := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		wanted[role] = struct{}{}
	}

	seen := make(map[string]struct{})
	names := []string{}

	for _, variable := range t.vars.Values() {
		if _, ok := wanted[variable.Role]; !ok {
			continue
		}
		if _, ok := seen[variable.Name]; ok {
			continue
		}
		seen[variable.Name] = struct{}{}
		names = append(names, variable.Name)
	}

	return names
}
