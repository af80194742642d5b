// Package recipe provides a declarative pipeline for tabular data preprocessing.
//
// A recipe owns an ordered list of preprocessing steps together with a metadata
// table describing every column in play: its structural type, its analytic role
// and whether it was present in the original dataset or derived by a step.
// Training walks the step list once against a reference dataset, estimating
// each step's parameters from the data as transformed by all prior steps and
// propagating how the column metadata changes along the way. A trained recipe
// can then be applied to arbitrary new datasets, reproducing the same
// transformations deterministically.
//
// Steps execute in strict declaration order: each step's training data is the
// output of all prior steps, so no reordering or parallel fan-out across steps
// is valid. Applying a trained recipe is pure with respect to the recipe, which
// makes it safe to apply the same recipe to independent datasets concurrently.
//
// The concrete preprocessing logic lives outside this package. Steps, dataset
// implementations, type classifiers and formula parsers plug in through the
// contracts of the model package; default implementations are provided by the
// steps, frame and formula packages.
package recipe
