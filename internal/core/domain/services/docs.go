// Package services provides domain services that implement business rules
// not naturally owned by a single aggregate.
//
// The package includes:
//   - DeliveryCalculator: prices delivery by geodesic distance from the store
//   - ServiceWindow: decides whether checkout is open at a given time of day
//
// Both services are pure: they hold configuration frozen at construction and
// have no side effects, which keeps checkout pricing reproducible.
package services
