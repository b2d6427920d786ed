// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
// This package implements the repository pattern for the customer domain aggregate, handling
// the conversion between domain entities and database representations.
package customerrepo

import (
	"dragontea/internal/core/domain/model/customer"
	"dragontea/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
// The chat id carries a unique index because it is the lookup key for every
// inbound message.
type CustomerDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChatID   int64     `gorm:"type:bigint;not null;uniqueIndex"`
	Name     string    `gorm:"type:varchar(255)"`
	Username string    `gorm:"type:varchar(255)"`
	Phone    string    `gorm:"type:varchar(32)"`
	City     string    `gorm:"type:varchar(255)"`
	Language string    `gorm:"type:varchar(8)"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:       aggregate.ID().Bytes(),
		ChatID:   aggregate.ChatID(),
		Name:     aggregate.Name(),
		Username: aggregate.Username(),
		Phone:    aggregate.Phone(),
		City:     aggregate.City(),
		Language: aggregate.Language().String(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	language := customer.Language(dto.Language)
	if err = language.Validate(); err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.ChatID, dto.Name, dto.Username,
		dto.Phone, dto.City, language)
}
