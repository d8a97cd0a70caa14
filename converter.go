package bmi

import "fmt"

type UnitConversionRule struct {
	FromUnit Unit
	ToUnit   Unit
	Factor   float64 // FromUnit * Factor = ToUnit
}

var unitConversionRules = []UnitConversionRule{
	{FromUnit: UnitPound, ToUnit: UnitKilogram, Factor: 0.45359237},
	{FromUnit: UnitStone, ToUnit: UnitKilogram, Factor: 6.35029318},
	{FromUnit: UnitKilogram, ToUnit: UnitPound, Factor: 2.20462262},
	{FromUnit: UnitStone, ToUnit: UnitPound, Factor: 14},
	{FromUnit: UnitKilogram, ToUnit: UnitStone, Factor: 0.157473044},
	{FromUnit: UnitPound, ToUnit: UnitStone, Factor: 0.0714285714},

	{FromUnit: UnitInch, ToUnit: UnitMeter, Factor: 0.0254},
	{FromUnit: UnitFoot, ToUnit: UnitMeter, Factor: 0.3048},
	{FromUnit: UnitMeter, ToUnit: UnitInch, Factor: 39.3700787},
	{FromUnit: UnitFoot, ToUnit: UnitInch, Factor: 12},
	{FromUnit: UnitMeter, ToUnit: UnitFoot, Factor: 3.2808399},
	{FromUnit: UnitInch, ToUnit: UnitFoot, Factor: 0.0833333333},
}

// fromUnit -> toUnit -> factor
var conversionFactors = buildConversionFactors(unitConversionRules)

func buildConversionFactors(rules []UnitConversionRule) map[Unit]map[Unit]float64 {
	factors := make(map[Unit]map[Unit]float64)
	for _, rule := range rules {
		if factors[rule.FromUnit] == nil {
			factors[rule.FromUnit] = make(map[Unit]float64)
		}
		factors[rule.FromUnit][rule.ToUnit] = rule.Factor
	}
	return factors
}

// ConversionFactor returns the multiplier taking a quantity in from to a
// quantity in to. A unit converts to itself with factor 1.
func ConversionFactor(from, to Unit) (float64, error) {
	fromFamily, toFamily := from.Family(), to.Family()
	if fromFamily == 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, from)
	}
	if toFamily == 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, to)
	}
	if fromFamily != toFamily {
		return 0, fmt.Errorf("%w: %s (%s) to %s (%s)", ErrUnitFamily, from, fromFamily, to, toFamily)
	}
	if from == to {
		return 1, nil
	}
	return conversionFactors[from][to], nil
}

func Convert(value float64, from, to Unit) (float64, error) {
	if from == to && from.Family() != 0 {
		return value, nil
	}
	factor, err := ConversionFactor(from, to)
	if err != nil {
		return 0, err
	}
	return value * factor, nil
}

func ToKilograms(mass float64, unit Unit) (float64, error) {
	return Convert(mass, unit, UnitKilogram)
}

func ToMeters(height float64, unit Unit) (float64, error) {
	return Convert(height, unit, UnitMeter)
}
