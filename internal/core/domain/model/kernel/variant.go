package kernel

import (
	"fmt"

	"dragontea/internal/pkg/errs"
)

// Size represents the cup size option of a product variant.
// SizeNone is a valid resting value for products sold in a single size.
type Size int

const (
	// SizeNone means no size option was selected (single-size product).
	SizeNone Size = iota
	// SizeSmall is the small cup option, priced by the product's small price.
	SizeSmall
	// SizeBig is the big cup option, priced by the product's big price.
	SizeBig
)

// Temperature represents the serving temperature option of a product variant.
// TemperatureNone is a valid resting value for products without the option.
type Temperature int

const (
	// TemperatureNone means no temperature option was selected.
	TemperatureNone Temperature = iota
	// TemperatureHot is the hot serving option.
	TemperatureHot
	// TemperatureCold is the cold serving option.
	TemperatureCold
)

func getSizeStrings() map[Size]string {
	return map[Size]string{
		SizeNone:  "none",
		SizeSmall: "small",
		SizeBig:   "big",
	}
}

func getTemperatureStrings() map[Temperature]string {
	return map[Temperature]string{
		TemperatureNone: "none",
		TemperatureHot:  "hot",
		TemperatureCold: "cold",
	}
}

// SizeFromString parses a persisted size string back into a Size.
func SizeFromString(value string) (Size, error) {
	for size, str := range getSizeStrings() {
		if str == value {
			return size, nil
		}
	}
	return SizeNone, errs.NewValueIsInvalidErrorWithCause("size is invalid",
		fmt.Errorf("%q is not a valid size", value))
}

// TemperatureFromString parses a persisted temperature string back into a
// Temperature.
func TemperatureFromString(value string) (Temperature, error) {
	for temperature, str := range getTemperatureStrings() {
		if str == value {
			return temperature, nil
		}
	}
	return TemperatureNone, errs.NewValueIsInvalidErrorWithCause("temperature is invalid",
		fmt.Errorf("%q is not a valid temperature", value))
}

// Validate checks if the Size value is one of the defined options.
func (s Size) Validate() error {
	if _, ok := getSizeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size is invalid",
			fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}

// String returns the lower-case name of the size.
// This method implements the fmt.Stringer interface.
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "none"
}

// Validate checks if the Temperature value is one of the defined options.
func (t Temperature) Validate() error {
	if _, ok := getTemperatureStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("temperature is invalid",
			fmt.Errorf("%d is not a valid temperature", t))
	}
	return nil
}

// String returns the lower-case name of the temperature.
// This method implements the fmt.Stringer interface.
func (t Temperature) String() string {
	if str, ok := getTemperatureStrings()[t]; ok {
		return str
	}
	return "none"
}

// Variant is the (size, temperature) pair that distinguishes otherwise
// identical cart lines for the same product. Variant is an immutable value
// object; the zero value (no size, no temperature) is valid and represents a
// product added without options.
type Variant struct {
	size        Size
	temperature Temperature
}

// NewVariant creates a Variant from the given size and temperature options.
// Returns an error if either component is not a defined option.
func NewVariant(size Size, temperature Temperature) (Variant, error) {
	if err := size.Validate(); err != nil {
		return Variant{}, err
	}
	if err := temperature.Validate(); err != nil {
		return Variant{}, err
	}

	return Variant{size: size, temperature: temperature}, nil
}

// Validate checks that both variant components are defined options.
// The zero value passes validation.
func (v Variant) Validate() error {
	if err := v.size.Validate(); err != nil {
		return err
	}
	return v.temperature.Validate()
}

// Size returns the size component of the variant key.
func (v Variant) Size() Size {
	return v.size
}

// Temperature returns the temperature component of the variant key.
func (v Variant) Temperature() Temperature {
	return v.temperature
}

// IsEqual compares two variant keys for equality.
func (v Variant) IsEqual(other Variant) bool {
	return v == other
}

// String returns a human-readable "size/temperature" representation.
// This method implements the fmt.Stringer interface.
func (v Variant) String() string {
	return fmt.Sprintf("%s/%s", v.size, v.temperature)
}
