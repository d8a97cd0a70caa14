package bmi

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// Result is the wire form of a Calculator's cached state. Numbers travel as
// their two-decimal renderings.
type Result struct {
	CalculatorID string `msgpack:"calculator_id,omitempty"`
	MassUnit     string `msgpack:"mass_unit,omitempty"`
	HeightUnit   string `msgpack:"height_unit,omitempty"`
	BMI          string `msgpack:"bmi,omitempty"`
	BMIPrime     string `msgpack:"bmi_prime,omitempty"`
	Category     string `msgpack:"category,omitempty"`
}

func (r Result) ParseBMI() (Decimal, error) {
	return ParseDecimal(r.BMI)
}

func (r Result) ParseBMIPrime() (Decimal, bool, error) {
	if r.BMIPrime == "" {
		return Decimal{}, false, nil
	}
	d, err := ParseDecimal(r.BMIPrime)
	return d, err == nil, err
}

func (r Result) ParseCalculatorID() (uuid.UUID, error) {
	return uuid.Parse(r.CalculatorID)
}

func EncodeResult(r Result) ([]byte, error) {
	return msgpack.Marshal(&r)
}

func DecodeResult(b []byte) (Result, error) {
	var r Result
	if err := msgpack.Unmarshal(b, &r); err != nil {
		return Result{}, fmt.Errorf("decode result: %w", err)
	}
	return r, nil
}

func EncodeConfig(cfg Config) ([]byte, error) {
	return msgpack.Marshal(&cfg)
}

// DecodeConfig decodes a msgpack value and validates it with ParseConfig, so
// a payload with extra or missing keys is rejected rather than silently
// filled in.
func DecodeConfig(b []byte) (Config, error) {
	var v any
	if err := msgpack.Unmarshal(b, &v); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return ParseConfig(v)
}
