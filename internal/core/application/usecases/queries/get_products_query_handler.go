package queries

import (
	"context"

	"dragontea/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductsQueryHandler retrieves the products of a category from the
// database.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for product queries.
// Requires a GORM database connection for query execution.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve the category's products.
// Results are sorted by the Russian title for stable menu rendering.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title_ru,
			title_uz,
			small_price,
			big_price,
			has_small,
			has_big,
			has_hot,
			has_cold,
			small_volume,
			big_volume
		FROM products
		WHERE category_id = ?
		ORDER BY title_ru
	`, query.CategoryID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var productResp GetProductsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&productResp.TitleRU,
			&productResp.TitleUZ,
			&productResp.SmallPrice,
			&productResp.BigPrice,
			&productResp.HasSmall,
			&productResp.HasBig,
			&productResp.HasHot,
			&productResp.HasCold,
			&productResp.SmallVolume,
			&productResp.BigVolume,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		productResp.ID = productID
		products = append(products, productResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
