package frame

import (
	"github.com/askiada/go-recipe/pkg/recipe/model"
)

// Classifier is the default structural type classifier. A column whose non-nil
// values are all numbers is numeric, one whose non-nil values are all strings
// or booleans is nominal, anything else (mixed content, or no non-nil values
// at all) is other.
type Classifier struct{}

func (Classifier) Classify(data model.Dataset) (map[string]model.Type, error) {
	types := make(map[string]model.Type, len(data.Columns()))

	for _, name := range data.Columns() {
		col, _ := data.Column(name)
		types[name] = classifyColumn(col)
	}

	return types, nil
}

func classifyColumn(col []any) model.Type {
	numeric, nominal, seen := true, true, false

	for _, value := range col {
		if value == nil {
			continue
		}
		seen = true

		if !IsNumber(value) {
			numeric = false
		}
		if !isLabel(value) {
			nominal = false
		}
	}

	switch {
	case !seen:
		return model.TypeOther
	case numeric:
		return model.TypeNumeric
	case nominal:
		return model.TypeNominal
	default:
		return model.TypeOther
	}
}

// IsNumber reports whether a cell value is of a numeric Go type.
func IsNumber(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	default:
		return false
	}
}

// AsFloat converts a numeric cell value to float64.
func AsFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func isLabel(value any) bool {
	switch value.(type) {
	case string, bool:
		return true
	default:
		return false
	}
}

var _ model.Classifier = Classifier{}
