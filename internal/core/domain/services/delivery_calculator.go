package services

import (
	"errors"

	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/errs"
	"dragontea/internal/pkg/guard"
)

// ErrDeliveryCalculatorIsNotConstructed is returned when using an improperly
// initialized DeliveryCalculator.
var ErrDeliveryCalculatorIsNotConstructed = errors.New(
	"DeliveryCalculator must be created via NewDeliveryCalculator constructor")

// DeliveryCalculator is a domain service that prices delivery for a
// destination by its geodesic distance from the store.
//
// The fee is the distance in kilometers multiplied by a per-kilometer rate
// and truncated to a whole amount. Truncation, not rounding, keeps the fee
// stable for customers sitting right on a price boundary.
type DeliveryCalculator struct {
	// store is the pickup point all deliveries start from
	store kernel.Location

	// ratePerKm is the fee per kilometer in minor currency units
	ratePerKm int

	guard guard.ConstructorGuard
}

// NewDeliveryCalculator creates a DeliveryCalculator for the given store
// location and per-kilometer rate.
//
// Returns an error if the store location is invalid or the rate is not
// positive.
func NewDeliveryCalculator(store kernel.Location, ratePerKm int) (DeliveryCalculator, error) {
	if err := store.Validate(); err != nil {
		return DeliveryCalculator{}, err
	}
	if ratePerKm <= 0 {
		return DeliveryCalculator{}, errs.NewValueIsInvalidError("ratePerKm must be positive")
	}

	return DeliveryCalculator{
		store:     store,
		ratePerKm: ratePerKm,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the DeliveryCalculator was properly constructed.
func (c DeliveryCalculator) Validate() error {
	return c.guard.Validate(ErrDeliveryCalculatorIsNotConstructed)
}

// Store returns the pickup point deliveries are priced from.
func (c DeliveryCalculator) Store() kernel.Location {
	return c.store
}

// CostTo prices delivery to the given destination.
//
// Returns:
//   - the delivery fee: geodesic kilometers times the rate, truncated
//   - an error if the calculator or destination is invalid
func (c DeliveryCalculator) CostTo(destination kernel.Location) (int, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	distanceKm, err := c.store.DistanceKmTo(destination)
	if err != nil {
		return 0, err
	}

	return int(distanceKm * float64(c.ratePerKm)), nil
}
