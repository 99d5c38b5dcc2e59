package lpsim

import "fmt"

// ValidationError reports a parameter assignment which violates the field's
// numeric or categorical constraint. The assignment does not take place: the
// field keeps its previous valid value.
type ValidationError struct {
	Field      string
	Value      interface{}
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid value %v, must be %s", e.Field, e.Value, e.Constraint)
}

// ConfigurationError reports an unrecognized Lagrange point label reaching a
// geometry computation. This is always a programming or configuration error,
// never recovered internally.
type ConfigurationError struct {
	Label LagrangeLabel
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid Lagrange point label %q, must be one of %v", string(e.Label), LagrangeLabels)
}
