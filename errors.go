package bmi

import (
	"errors"
	"fmt"
)

var (
	ErrConfigShape       = errors.New("configuration must be a mapping with exactly the keys mass_unit and height_unit")
	ErrMissingMassUnit   = errors.New("missing mass_unit")
	ErrMissingHeightUnit = errors.New("missing height_unit")
	ErrInvalidMassUnit   = errors.New("invalid mass_unit value")
	ErrInvalidHeightUnit = errors.New("invalid height_unit value")

	ErrMissingMass   = errors.New("missing mass")
	ErrMissingHeight = errors.New("missing height")

	ErrPrecomputationRequired = errors.New("BMI must be computed before the category")

	ErrUnknownUnit = errors.New("unknown unit")
	ErrUnitFamily  = errors.New("cannot convert between unit families")
)

// ConfigurationError reports why a Calculator could not be built. Err is one
// of the ErrConfigShape, ErrMissing*Unit or ErrInvalid*Unit sentinels.
type ConfigurationError struct {
	Key   string
	Value any
	Err   error
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Value != nil:
		return fmt.Sprintf("configuration: %v: %v", e.Err, e.Value)
	case errors.Is(e.Err, ErrConfigShape) && e.Key != "":
		return fmt.Sprintf("configuration: %v: unexpected key %q", e.Err, e.Key)
	}
	return "configuration: " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

type MissingArgumentError struct {
	Arg string
	Err error
}

func (e *MissingArgumentError) Error() string {
	return e.Err.Error() + ": " + e.Arg + " is required to compute BMI"
}

func (e *MissingArgumentError) Unwrap() error {
	return e.Err
}
