package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrderQueryHandler retrieves the customer's in-flight order from
// the database.
type GetActiveOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrderQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrderQueryHandler(db *gorm.DB) GetActiveOrderQueryHandler {
	return GetActiveOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve the customer's latest order in the
// in_progress or delivering status.
// Returns an error wrapping errs.ErrObjectNotFound when the customer has no
// active order.
func (h GetActiveOrderQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrderQuery,
) (GetActiveOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetActiveOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.items_total + o.delivery_cost AS total_price,
			o.address,
			o.courier_name,
			o.courier_car_num,
			o.courier_car_type,
			o.created_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE c.chat_id = ? AND o.status IN ('in_progress', 'delivering')
		ORDER BY o.created_at DESC
		LIMIT 1
	`, query.ChatID()).Row()

	var orderResp GetActiveOrderQueryResponse
	var id uuid.UUID
	var courierName, courierCarNum, courierCarType sql.NullString

	err := row.Scan(
		&id,
		&orderResp.Status,
		&orderResp.TotalPrice,
		&orderResp.Address,
		&courierName,
		&courierCarNum,
		&courierCarType,
		&orderResp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetActiveOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.ChatID())
		}
		return GetActiveOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetActiveOrderQueryResponse{}, err
	}
	orderResp.ID = orderID

	if courierName.Valid {
		orderResp.CourierName = courierName.String
		orderResp.CourierCar = fmt.Sprintf("%s, %s", courierCarNum.String, courierCarType.String)
	}

	return orderResp, nil
}
