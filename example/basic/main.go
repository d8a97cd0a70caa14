package main

import (
	"bmi"
	"errors"
	"fmt"
	"log"
)

func main() {
	calc, err := bmi.New(&bmi.Config{MassUnit: "st", HeightUnit: "ft"})
	if err != nil {
		log.Fatal(err)
	}

	value, err := calc.ComputeBMI(6, 5)
	if err != nil {
		log.Fatal(err)
	}
	prime, err := calc.ComputeBMIPrime(0, 0) // reuses the BMI above
	if err != nil {
		log.Fatal(err)
	}
	category, err := calc.Category()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("BMI: %s  BMI Prime: %s  Category: %s\n", value, prime, category)

	// Encode/decode roundtrip of the result record
	result, err := calc.Result()
	if err != nil {
		log.Fatal(err)
	}
	payload, err := bmi.EncodeResult(result)
	if err != nil {
		log.Fatal(err)
	}
	received, err := bmi.DecodeResult(payload)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("received %d bytes: %+v\n", len(payload), received)

	// Misspelled key
	_, err = bmi.NewFromRecord(map[string]any{"mass_unit": "kg", "hieght_unit": "m"})
	var cfgErr *bmi.ConfigurationError
	if errors.As(err, &cfgErr) {
		fmt.Printf("rejected config (%s): %v\n", cfgErr.Key, err)
	}
}
