package recipe

import (
	"github.com/pkg/errors"
)

var (
	ErrDatasetMustBeSet   = errors.New("dataset must be set")
	ErrParserMustBeSet    = errors.New("parser must be set")
	ErrDuplicateVariable  = errors.New("duplicate variable")
	ErrUnknownVariable    = errors.New("unknown variable")
	ErrRoleLengthMismatch = errors.New("roles must match the number of variables")
	ErrNoSteps            = errors.New("recipe has no steps")
)
