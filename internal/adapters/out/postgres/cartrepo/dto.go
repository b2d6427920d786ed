// Package cartrepo provides data transfer objects and mapping functions for cart persistence.
// This package implements the repository pattern for the cart line aggregate, handling
// the conversion between domain entities and database representations.
package cartrepo

import (
	"dragontea/internal/core/domain/model/cart"
	"dragontea/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartLineDTO represents the database structure for persisting cart lines.
// The (customer, product, variant) key is unique so a customer never holds
// two lines for the same configuration. Version backs optimistic locking.
type CartLineDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_cart_key"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_key"`
	Size        string    `gorm:"type:varchar(8);not null;uniqueIndex:idx_cart_key"`
	Temperature string    `gorm:"type:varchar(8);not null;uniqueIndex:idx_cart_key"`
	Quantity    int       `gorm:"type:int;not null"`
	Version     int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for cart line entities.
func (CartLineDTO) TableName() string {
	return "cart_lines"
}

// fromDomain converts a cart line aggregate to its database representation.
func fromDomain(aggregate *cart.CartLine) CartLineDTO {
	return CartLineDTO{
		ID:          aggregate.ID().Bytes(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		ProductID:   aggregate.ProductID().Bytes(),
		Size:        aggregate.Variant().Size().String(),
		Temperature: aggregate.Variant().Temperature().String(),
		Quantity:    aggregate.Quantity(),
		Version:     aggregate.Version(),
	}
}

// toDomain converts a database DTO to a cart line aggregate.
func toDomain(dto CartLineDTO) (*cart.CartLine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	variant, err := variantFromDTO(dto.Size, dto.Temperature)
	if err != nil {
		return nil, err
	}

	return cart.RestoreCartLine(id, customerID, productID, variant, dto.Quantity, dto.Version)
}

func variantFromDTO(size string, temperature string) (kernel.Variant, error) {
	s, err := kernel.SizeFromString(size)
	if err != nil {
		return kernel.Variant{}, err
	}

	t, err := kernel.TemperatureFromString(temperature)
	if err != nil {
		return kernel.Variant{}, err
	}

	return kernel.NewVariant(s, t)
}
