package model

// Type is the structural classification of a column. The set is open, but the
// engine and the default classifier only ever produce the constants below.
type Type string

const (
	TypeNumeric Type = "numeric"
	TypeNominal Type = "nominal"
	TypeOther   Type = "other"
)

// Source records where a variable came from. The empty value means the source
// has not been resolved yet; the trainer back-fills it after every step.
type Source string

const (
	SourceOriginal Source = "original"
	SourceDerived  Source = "derived"
)

// Variable describes a single column of a dataset.
//
// Role is a free-form tag such as "predictor" or "outcome". The empty string
// means no role has been declared, which is a valid state distinct from any
// tag. The engine never branches on specific role values, only on whether a
// role is set; interpreting role names is left to the steps and to callers.
type Variable struct {
	Name   string
	Type   Type
	Role   string
	Source Source
}

// RoleUnset is the empty role tag.
const RoleUnset = ""
