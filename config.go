package bmi

import (
	"fmt"
	"sort"
)

const (
	KeyMassUnit   = "mass_unit"
	KeyHeightUnit = "height_unit"
)

// Config selects the units a Calculator reads its inputs in. An empty field
// is treated as missing, not as a request for the default.
type Config struct {
	MassUnit   string `msgpack:"mass_unit"`
	HeightUnit string `msgpack:"height_unit"`
}

func DefaultConfig() Config {
	return Config{MassUnit: string(UnitKilogram), HeightUnit: string(UnitMeter)}
}

func (c Config) units() (Unit, Unit, error) {
	if c.MassUnit == "" {
		return "", "", &ConfigurationError{Key: KeyMassUnit, Err: ErrMissingMassUnit}
	}
	if c.HeightUnit == "" {
		return "", "", &ConfigurationError{Key: KeyHeightUnit, Err: ErrMissingHeightUnit}
	}
	massUnit, ok := ParseMassUnit(c.MassUnit)
	if !ok {
		return "", "", &ConfigurationError{Key: KeyMassUnit, Value: c.MassUnit, Err: ErrInvalidMassUnit}
	}
	heightUnit, ok := ParseHeightUnit(c.HeightUnit)
	if !ok {
		return "", "", &ConfigurationError{Key: KeyHeightUnit, Value: c.HeightUnit, Err: ErrInvalidHeightUnit}
	}
	return massUnit, heightUnit, nil
}

// Validate reports the first problem with c as a *ConfigurationError.
func (c Config) Validate() error {
	_, _, err := c.units()
	return err
}

// ParseConfig turns a loosely typed key-value record, such as one decoded
// from msgpack, into a Config. The record must carry exactly the keys
// mass_unit and height_unit, each with a recognised unit token.
func ParseConfig(v any) (Config, error) {
	switch c := v.(type) {
	case Config:
		return validated(c)
	case *Config:
		if c != nil {
			return validated(*c)
		}
	}

	record, ok := toRecord(v)
	if !ok {
		return Config{}, &ConfigurationError{Err: ErrConfigShape}
	}

	massValue, ok := record[KeyMassUnit]
	if !ok {
		return Config{}, &ConfigurationError{Key: KeyMassUnit, Err: ErrMissingMassUnit}
	}
	heightValue, ok := record[KeyHeightUnit]
	if !ok {
		return Config{}, &ConfigurationError{Key: KeyHeightUnit, Err: ErrMissingHeightUnit}
	}
	if len(record) != 2 {
		return Config{}, &ConfigurationError{Key: firstExtraKey(record), Err: ErrConfigShape}
	}

	massUnit, ok := massValue.(string)
	if !ok || massUnit == "" {
		return Config{}, &ConfigurationError{Key: KeyMassUnit, Value: massValue, Err: ErrInvalidMassUnit}
	}
	heightUnit, ok := heightValue.(string)
	if !ok || heightUnit == "" {
		return Config{}, &ConfigurationError{Key: KeyHeightUnit, Value: heightValue, Err: ErrInvalidHeightUnit}
	}

	return validated(Config{MassUnit: massUnit, HeightUnit: heightUnit})
}

func validated(c Config) (Config, error) {
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func toRecord(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, m != nil
	case map[string]string:
		if m == nil {
			return nil, false
		}
		record := make(map[string]any, len(m))
		for k, val := range m {
			record[k] = val
		}
		return record, true
	case map[any]any:
		if m == nil {
			return nil, false
		}
		record := make(map[string]any, len(m))
		for k, val := range m {
			record[fmt.Sprint(k)] = val
		}
		return record, true
	}
	return nil, false
}

func firstExtraKey(record map[string]any) string {
	var extra []string
	for k := range record {
		if k != KeyMassUnit && k != KeyHeightUnit {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	if len(extra) == 0 {
		return ""
	}
	return extra[0]
}
