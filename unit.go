package bmi

import "strings"

type Family int

const (
	Mass Family = iota + 1
	Height
)

func (f Family) String() string {
	switch f {
	case Mass:
		return "mass"
	case Height:
		return "height"
	}
	return "unknown"
}

// Unit is a canonical unit token, e.g. "kg" or "ft".
type Unit string

const (
	UnitKilogram Unit = "kg"
	UnitPound    Unit = "lb"
	UnitStone    Unit = "st"

	UnitMeter Unit = "m"
	UnitInch  Unit = "in"
	UnitFoot  Unit = "ft"
)

var unitFamilies = map[Unit]Family{
	UnitKilogram: Mass,
	UnitPound:    Mass,
	UnitStone:    Mass,
	UnitMeter:    Height,
	UnitInch:     Height,
	UnitFoot:     Height,
}

// spelled-out forms accepted besides the canonical tokens
var unitAliases = map[string]Unit{
	"kilogram":  UnitKilogram,
	"kilograms": UnitKilogram,
	"pound":     UnitPound,
	"pounds":    UnitPound,
	"lbs":       UnitPound,
	"stone":     UnitStone,
	"stones":    UnitStone,
	"meter":     UnitMeter,
	"meters":    UnitMeter,
	"metre":     UnitMeter,
	"metres":    UnitMeter,
	"inch":      UnitInch,
	"inches":    UnitInch,
	"foot":      UnitFoot,
	"feet":      UnitFoot,
}

func (u Unit) Family() Family {
	return unitFamilies[u]
}

func (u Unit) String() string {
	return string(u)
}

// ParseUnit matches s against the known tokens and aliases. Matching is
// exact and case-insensitive, so "cm" is not mistaken for "m".
func ParseUnit(s string) (Unit, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if _, ok := unitFamilies[Unit(key)]; ok {
		return Unit(key), true
	}
	u, ok := unitAliases[key]
	return u, ok
}

func ParseMassUnit(s string) (Unit, bool) {
	return parseUnitOf(Mass, s)
}

func ParseHeightUnit(s string) (Unit, bool) {
	return parseUnitOf(Height, s)
}

func parseUnitOf(f Family, s string) (Unit, bool) {
	u, ok := ParseUnit(s)
	if !ok || u.Family() != f {
		return "", false
	}
	return u, true
}
