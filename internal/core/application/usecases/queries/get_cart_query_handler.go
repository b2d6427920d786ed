package queries

import (
	"context"

	"dragontea/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler retrieves the customer's cart view from the database.
//
// The unit price is resolved in SQL: the line's size picks the product's
// small or big price, matching how checkout prices the snapshot. A line
// whose size maps to neither column prices at zero, as checkout would.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart view queries.
// Requires a GORM database connection for query execution.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query to retrieve the customer's active cart lines.
// Lines with zero quantity are excluded. An unknown chat id yields an empty
// cart rather than an error; the bot treats both the same way.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{Lines: make([]CartLineView, 0)}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.title_ru,
			p.title_uz,
			l.size,
			l.temperature,
			l.quantity,
			CASE
				WHEN l.size = 'big' THEN p.big_price
				WHEN l.size = 'small' THEN p.small_price
				ELSE 0
			END AS unit_price
		FROM cart_lines l
		JOIN products p ON p.id = l.product_id
		JOIN customers c ON c.id = l.customer_id
		WHERE c.chat_id = ? AND l.quantity > 0
		ORDER BY p.title_ru
	`, query.ChatID()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line CartLineView
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&line.TitleRU,
			&line.TitleUZ,
			&line.Size,
			&line.Temperature,
			&line.Quantity,
			&line.UnitPrice,
		)
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}
		line.ProductID = productID
		line.LineTotal = line.UnitPrice * line.Quantity

		response.Lines = append(response.Lines, line)
		response.Total += line.LineTotal
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	return response, nil
}
