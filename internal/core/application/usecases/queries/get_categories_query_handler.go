package queries

import (
	"context"

	"dragontea/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCategoriesQueryHandler retrieves menu categories from the database.
type GetCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCategoriesQueryHandler creates a handler for category queries.
// Requires a GORM database connection for query execution.
func NewGetCategoriesQueryHandler(db *gorm.DB) GetCategoriesQueryHandler {
	return GetCategoriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all menu categories.
// Results are sorted by the Russian title for stable menu rendering.
func (h GetCategoriesQueryHandler) Handle(
	ctx context.Context,
	query GetCategoriesQuery,
) ([]GetCategoriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	categories := make([]GetCategoriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title_ru,
			title_uz
		FROM categories
		ORDER BY title_ru
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var categoryResp GetCategoriesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&categoryResp.TitleRU,
			&categoryResp.TitleUZ,
		)
		if err != nil {
			return nil, err
		}

		categoryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		categoryResp.ID = categoryID
		categories = append(categories, categoryResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
