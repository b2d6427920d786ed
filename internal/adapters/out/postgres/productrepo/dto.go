// Package productrepo provides data transfer objects and mapping functions for the catalog.
// The ordering core treats the catalog as read-only; rows are maintained by a
// separate admin process, so this package only maps from the database to the
// domain.
package productrepo

import (
	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// CategoryDTO represents the database structure for catalog categories.
type CategoryDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	TitleRU string    `gorm:"type:varchar(255);not null"`
	TitleUZ string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for category entities.
func (CategoryDTO) TableName() string {
	return "categories"
}

// ProductDTO represents the database structure for catalog products.
// A null category id means the product hangs directly off the menu root.
type ProductDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	TitleRU     string     `gorm:"type:varchar(255);not null"`
	TitleUZ     string     `gorm:"type:varchar(255);not null"`
	SmallPrice  int        `gorm:"type:int;not null"`
	BigPrice    int        `gorm:"type:int;not null"`
	HasSmall    bool       `gorm:"not null"`
	HasBig      bool       `gorm:"not null"`
	HasHot      bool       `gorm:"not null"`
	HasCold     bool       `gorm:"not null"`
	SmallVolume int        `gorm:"type:int;not null"`
	BigVolume   int        `gorm:"type:int;not null"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// categoryToDomain converts a database DTO to a category entity.
func categoryToDomain(dto CategoryDTO) (*product.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.NewCategory(id, dto.TitleRU, dto.TitleUZ)
}

// toDomain converts a database DTO to a product entity.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var categoryID *kernel.UUID
	if dto.CategoryID != nil {
		cID, catErr := kernel.UUIDFromBytes((*dto.CategoryID)[:])
		if catErr != nil {
			return nil, catErr
		}
		categoryID = &cID
	}

	return product.NewProduct(id, categoryID, dto.TitleRU, dto.TitleUZ,
		dto.SmallPrice, dto.BigPrice,
		dto.HasSmall, dto.HasBig, dto.HasHot, dto.HasCold,
		dto.SmallVolume, dto.BigVolume)
}
