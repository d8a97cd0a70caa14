package bmi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromRecord(t *testing.T) {
	testCases := []struct {
		name        string
		record      any
		expectedErr error
		expectedKey string
	}{
		{
			name:        "scalar instead of mapping",
			record:      "st",
			expectedErr: ErrConfigShape,
		},
		{
			name:        "nil mapping",
			record:      map[string]any(nil),
			expectedErr: ErrConfigShape,
		},
		{
			name:        "missing height_unit",
			record:      map[string]any{"mass_unit": "st"},
			expectedErr: ErrMissingHeightUnit,
			expectedKey: KeyHeightUnit,
		},
		{
			name:        "unknown key in place of mass_unit",
			record:      map[string]any{"xyz": 1, "height_unit": "m"},
			expectedErr: ErrMissingMassUnit,
			expectedKey: KeyMassUnit,
		},
		{
			name:        "invalid mass_unit value",
			record:      map[string]any{"mass_unit": "x", "height_unit": "m"},
			expectedErr: ErrInvalidMassUnit,
			expectedKey: KeyMassUnit,
		},
		{
			name:        "unknown key in place of height_unit",
			record:      map[string]any{"mass_unit": "st", "xyz": 1},
			expectedErr: ErrMissingHeightUnit,
			expectedKey: KeyHeightUnit,
		},
		{
			name:        "invalid height_unit value",
			record:      map[string]any{"mass_unit": "kg", "height_unit": "x"},
			expectedErr: ErrInvalidHeightUnit,
			expectedKey: KeyHeightUnit,
		},
		{
			name:        "extra key",
			record:      map[string]any{"mass_unit": "kg", "height_unit": "m", "xyz": 1},
			expectedErr: ErrConfigShape,
			expectedKey: "xyz",
		},
		{
			name:        "non-string unit value",
			record:      map[string]any{"mass_unit": 1, "height_unit": "m"},
			expectedErr: ErrInvalidMassUnit,
			expectedKey: KeyMassUnit,
		},
		{
			name:        "height unit given as mass unit",
			record:      map[string]string{"mass_unit": "m", "height_unit": "m"},
			expectedErr: ErrInvalidMassUnit,
			expectedKey: KeyMassUnit,
		},
		{
			name:        "substring is not a match",
			record:      map[string]string{"mass_unit": "kg", "height_unit": "cm"},
			expectedErr: ErrInvalidHeightUnit,
			expectedKey: KeyHeightUnit,
		},
		{
			name:   "valid abbreviations",
			record: map[string]any{"mass_unit": "st", "height_unit": "ft"},
		},
		{
			name:   "valid mixed case names",
			record: map[any]any{"mass_unit": "Pound", "height_unit": "INCH"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calc, err := NewFromRecord(tc.record)
			if tc.expectedErr == nil {
				require.NoError(t, err)
				assert.NotNil(t, calc)
				return
			}
			require.Error(t, err)
			assert.Nil(t, calc)
			assert.ErrorIs(t, err, tc.expectedErr)

			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tc.expectedKey, cfgErr.Key)
		})
	}
}

func TestNewDefaults(t *testing.T) {
	calc, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, UnitKilogram, calc.MassUnit())
	assert.Equal(t, UnitMeter, calc.HeightUnit())
}

func TestNewTypedConfig(t *testing.T) {
	calc, err := New(&Config{MassUnit: "stone", HeightUnit: "Feet"})
	require.NoError(t, err)
	assert.Equal(t, UnitStone, calc.MassUnit())
	assert.Equal(t, UnitFoot, calc.HeightUnit())

	_, err = New(&Config{MassUnit: "st"})
	assert.ErrorIs(t, err, ErrMissingHeightUnit)

	_, err = New(&Config{HeightUnit: "m"})
	assert.ErrorIs(t, err, ErrMissingMassUnit)

	_, err = New(&Config{MassUnit: "kg", HeightUnit: "yard"})
	assert.ErrorIs(t, err, ErrInvalidHeightUnit)
}

func TestParseConfigTyped(t *testing.T) {
	cfg, err := ParseConfig(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = ParseConfig(&Config{MassUnit: "kg"})
	assert.ErrorIs(t, err, ErrMissingHeightUnit)

	_, err = ParseConfig((*Config)(nil))
	assert.ErrorIs(t, err, ErrConfigShape)
}

func TestConfigurationErrorMessage(t *testing.T) {
	_, err := NewFromRecord(map[string]any{"mass_unit": "x", "height_unit": "m"})
	assert.EqualError(t, err, "configuration: invalid mass_unit value: x")

	_, err = NewFromRecord(map[string]any{"mass_unit": "st"})
	assert.EqualError(t, err, "configuration: missing height_unit")

	_, err = NewFromRecord(map[string]any{"mass_unit": "st", "height_unit": "m", "xyz": 1})
	assert.EqualError(t, err, `configuration: `+ErrConfigShape.Error()+`: unexpected key "xyz"`)
}
