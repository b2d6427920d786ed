package productrepo

import (
	"context"
	"errors"

	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/core/domain/model/product"
	"dragontea/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
// The repository is read-only; catalog writes happen outside the ordering
// core.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the products for the given identifiers.
func (r *GormProductRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	return productsToDomain(dtos)
}

// GetAllCategories retrieves all catalog categories.
func (r *GormProductRepository) GetAllCategories(ctx context.Context) ([]*product.Category, error) {
	var dtos []CategoryDTO
	if err := r.db.WithContext(ctx).Order("title_ru").Find(&dtos).Error; err != nil {
		return nil, err
	}

	categories := make([]*product.Category, 0, len(dtos))
	for _, dto := range dtos {
		category, err := categoryToDomain(dto)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, nil
}

// GetByCategory retrieves the products in the given category.
func (r *GormProductRepository) GetByCategory(
	ctx context.Context,
	categoryID kernel.UUID,
) ([]*product.Product, error) {
	if err := categoryID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Order("title_ru").
		Find(&dtos, "category_id = ?", categoryID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return productsToDomain(dtos)
}

func productsToDomain(dtos []ProductDTO) ([]*product.Product, error) {
	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}
