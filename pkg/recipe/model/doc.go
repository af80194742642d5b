// Package model provides the data structures and contracts for the recipe package.
// It defines the variable metadata types and the interfaces a dataset, a
// preprocessing step, a type classifier and a formula parser must satisfy to
// take part in a recipe.
package model
