package frame

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-recipe/pkg/recipe/model"
)

var (
	ErrUnknownColumn   = errors.New("unknown column")
	ErrRaggedColumns   = errors.New("columns must all have the same length")
	ErrMissingColumn   = errors.New("column listed in order but not supplied")
	ErrDuplicateColumn = errors.New("duplicate column name")
)

// Frame is an in-memory columnar dataset. Column values are stored as []any so
// a column can hold numbers, strings or nils; the classifier decides what a
// column structurally is.
//
// A Frame is treated as immutable: transforming operations return a new Frame
// and callers must not modify the slices returned by Column.
type Frame struct {
	names []string
	cols  map[string][]any
}

// FromColumns builds a frame from named columns laid out in the given order.
func FromColumns(order []string, cols map[string][]any) (*Frame, error) {
	seen := make(map[string]struct{}, len(order))
	rows := -1

	for _, name := range order {
		if _, ok := seen[name]; ok {
			return nil, errors.Wrapf(ErrDuplicateColumn, "column %q", name)
		}
		seen[name] = struct{}{}

		col, ok := cols[name]
		if !ok {
			return nil, errors.Wrapf(ErrMissingColumn, "column %q", name)
		}
		if rows >= 0 && len(col) != rows {
			return nil, errors.Wrapf(ErrRaggedColumns, "column %q has %d rows, want %d", name, len(col), rows)
		}
		rows = len(col)
	}

	copied := make(map[string][]any, len(order))
	for _, name := range order {
		copied[name] = cols[name]
	}

	names := make([]string, len(order))
	copy(names, order)

	return &Frame{names: names, cols: copied}, nil
}

// FromDataset copies an arbitrary dataset into a frame. A *Frame input is
// returned as-is.
func FromDataset(data model.Dataset) *Frame {
	if frm, ok := data.(*Frame); ok {
		return frm
	}

	names := data.Columns()
	cols := make(map[string][]any, len(names))
	for _, name := range names {
		col, _ := data.Column(name)
		cols[name] = col
	}

	return &Frame{names: names, cols: cols}
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)

	return names
}

// Column returns the values of the named column. The returned slice is the
// frame's backing storage and must not be modified.
func (f *Frame) Column(name string) ([]any, bool) {
	col, ok := f.cols[name]

	return col, ok
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	if len(f.names) == 0 {
		return 0
	}

	return len(f.cols[f.names[0]])
}

// Select returns a frame narrowed to exactly the given columns, in the given
// order. The column storage is shared with the receiver.
func (f *Frame) Select(names ...string) (model.Dataset, error) {
	cols := make(map[string][]any, len(names))
	order := make([]string, 0, len(names))

	for _, name := range names {
		col, ok := f.cols[name]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownColumn, "column %q", name)
		}
		cols[name] = col
		order = append(order, name)
	}

	return &Frame{names: order, cols: cols}, nil
}

// WithColumn returns a frame with the named column replaced, or appended at
// the end when it does not exist yet.
func (f *Frame) WithColumn(name string, values []any) *Frame {
	names := make([]string, len(f.names))
	copy(names, f.names)

	cols := make(map[string][]any, len(f.cols)+1)
	for colName, col := range f.cols {
		cols[colName] = col
	}

	if _, ok := cols[name]; !ok {
		names = append(names, name)
	}
	cols[name] = values

	return &Frame{names: names, cols: cols}
}

// Drop returns a frame without the named column. Dropping an absent column is
// a no-op.
func (f *Frame) Drop(name string) *Frame {
	names := make([]string, 0, len(f.names))
	cols := make(map[string][]any, len(f.cols))

	for _, colName := range f.names {
		if colName == name {
			continue
		}
		names = append(names, colName)
		cols[colName] = f.cols[colName]
	}

	return &Frame{names: names, cols: cols}
}

var _ model.Dataset = (*Frame)(nil)
