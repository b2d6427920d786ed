package order

import (
	"errors"
	"fmt"
	"strings"

	"dragontea/internal/pkg/errs"
	"dragontea/internal/pkg/guard"
)

// courierDataParts is the number of comma-separated fields in courier data.
const courierDataParts = 3

// Domain errors for courier operations.
var (
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

	// ErrCourierDataIsMalformed is returned when submitted courier data cannot
	// be parsed. The assignment flow re-prompts on this error instead of
	// consuming the pending assignment.
	ErrCourierDataIsMalformed = errors.New("courier data is malformed")
)

// Courier is the person delivering an order, captured as a value object on
// the order itself. There is no courier registry; staff type the courier's
// details as free text when dispatching, and the details live and die with
// the order.
type Courier struct {
	// name is the courier's display name
	name string

	// carNumber is the vehicle's license plate
	carNumber string

	// carModel is the vehicle's model shown to the customer
	carModel string

	guard guard.ConstructorGuard
}

// NewCourier creates a Courier from its three details.
// All three fields are required.
func NewCourier(name string, carNumber string, carModel string) (Courier, error) {
	if name == "" {
		return Courier{}, errs.NewValueIsRequiredError("name")
	}
	if carNumber == "" {
		return Courier{}, errs.NewValueIsRequiredError("carNumber")
	}
	if carModel == "" {
		return Courier{}, errs.NewValueIsRequiredError("carModel")
	}

	return Courier{
		name:      name,
		carNumber: carNumber,
		carModel:  carModel,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// ParseCourier parses free-text courier data in the form
// "name, car number, car model".
//
// Fields are split on commas and trimmed. Anything other than exactly three
// non-empty fields returns an error wrapping ErrCourierDataIsMalformed.
//
// Example:
//
//	courier, err := ParseCourier("Бахтиёр, 01A777BB, Cobalt")
func ParseCourier(text string) (Courier, error) {
	parts := strings.Split(text, ",")
	if len(parts) != courierDataParts {
		return Courier{}, fmt.Errorf("%w: expected %d comma-separated fields, got %d",
			ErrCourierDataIsMalformed, courierDataParts, len(parts))
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return Courier{}, fmt.Errorf("%w: field %d is empty", ErrCourierDataIsMalformed, i+1)
		}
	}

	return NewCourier(parts[0], parts[1], parts[2])
}

// Validate ensures the Courier instance was properly constructed.
func (c Courier) Validate() error {
	if c.guard.Validate(ErrCourierIsNotConstructed) != nil {
		return ErrCourierIsNotConstructed
	}

	return nil
}

// Name returns the courier's display name.
func (c Courier) Name() string {
	return c.name
}

// CarNumber returns the vehicle's license plate.
func (c Courier) CarNumber() string {
	return c.carNumber
}

// CarModel returns the vehicle's model.
func (c Courier) CarModel() string {
	return c.carModel
}

// String returns the courier details in the same "name, car number, car model"
// form they were submitted in.
// This method implements the fmt.Stringer interface.
func (c Courier) String() string {
	return fmt.Sprintf("%s, %s, %s", c.name, c.carNumber, c.carModel)
}
