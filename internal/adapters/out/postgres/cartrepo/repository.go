package cartrepo

import (
	"context"
	"errors"

	"dragontea/internal/core/domain/model/cart"
	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cart line to the database.
func (r *GormCartRepository) Add(ctx context.Context, aggregate *cart.CartLine) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing cart line using its version as a compare-and-swap.
// Returns an error wrapping errs.ErrConcurrentModification when the stored
// version no longer matches, meaning another actor changed the line first.
func (r *GormCartRepository) Update(ctx context.Context, aggregate *cart.CartLine) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CartLineDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"size":        dto.Size,
			"temperature": dto.Temperature,
			"quantity":    dto.Quantity,
			"version":     dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrentModificationError("cartLine", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetLine retrieves the cart line for an exact (customer, product, variant) key.
func (r *GormCartRepository) GetLine(
	ctx context.Context,
	customerID kernel.UUID,
	productID kernel.UUID,
	variant kernel.Variant,
) (*cart.CartLine, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dto CartLineDTO
	err := r.db.WithContext(ctx).First(&dto,
		"customer_id = ? AND product_id = ? AND size = ? AND temperature = ?",
		customerID.Bytes(), productID.Bytes(),
		variant.Size().String(), variant.Temperature().String(),
	).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cartLine", productID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetLineForProduct retrieves any cart line the customer holds for the given
// product, regardless of variant.
func (r *GormCartRepository) GetLineForProduct(
	ctx context.Context,
	customerID kernel.UUID,
	productID kernel.UUID,
) (*cart.CartLine, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dto CartLineDTO
	err := r.db.WithContext(ctx).First(&dto,
		"customer_id = ? AND product_id = ?",
		customerID.Bytes(), productID.Bytes(),
	).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cartLine", productID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveLines retrieves the customer's lines with a positive quantity.
func (r *GormCartRepository) GetActiveLines(
	ctx context.Context,
	customerID kernel.UUID,
) ([]*cart.CartLine, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartLineDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "customer_id = ? AND quantity > 0", customerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	lines := make([]*cart.CartLine, 0, len(dtos))
	for _, dto := range dtos {
		line, lineErr := toDomain(dto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// Clear removes all of the customer's cart lines.
func (r *GormCartRepository) Clear(ctx context.Context, customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&CartLineDTO{}, "customer_id = ?", customerID.Bytes()).Error
}
