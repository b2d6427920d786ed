// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items are a jsonb snapshot frozen at checkout; courier columns stay null
// until staff hand the order over. Version backs optimistic locking.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Items          ItemsDTO  `gorm:"type:jsonb;not null"`
	ItemsTotal     int       `gorm:"type:int;not null"`
	DeliveryCost   int       `gorm:"type:int;not null"`
	Address        string    `gorm:"type:varchar(255)"`
	Latitude       float64   `gorm:"type:double precision;not null"`
	Longitude      float64   `gorm:"type:double precision;not null"`
	CourierName    *string   `gorm:"type:varchar(255)"`
	CourierCarNum  *string   `gorm:"type:varchar(32)"`
	CourierCarType *string   `gorm:"type:varchar(64)"`
	Status         string    `gorm:"type:varchar(16);not null;index"`
	Version        int       `gorm:"type:int;not null"`
	CreatedAt      time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the jsonb shape of one snapshotted order line.
type ItemDTO struct {
	TitleRU     string `json:"title_ru"`
	TitleUZ     string `json:"title_uz"`
	UnitPrice   int    `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	Size        string `json:"size"`
	Temperature string `json:"temperature"`
	Volume      int    `json:"volume"`
}

// ItemsDTO marshals the item snapshot list in and out of a jsonb column.
type ItemsDTO []ItemDTO

// Value implements driver.Valuer for jsonb storage.
func (items ItemsDTO) Value() (driver.Value, error) {
	return json.Marshal(items)
}

// Scan implements sql.Scanner for jsonb retrieval.
func (items *ItemsDTO) Scan(value any) error {
	raw, ok := value.([]byte)
	if !ok {
		if s, sok := value.(string); sok {
			raw = []byte(s)
		} else {
			return fmt.Errorf("unsupported jsonb source type %T", value)
		}
	}
	return json.Unmarshal(raw, items)
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make(ItemsDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			TitleRU:     item.TitleRU(),
			TitleUZ:     item.TitleUZ(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
			Size:        item.Variant().Size().String(),
			Temperature: item.Variant().Temperature().String(),
			Volume:      item.Volume(),
		})
	}

	dto := OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		Items:        items,
		ItemsTotal:   aggregate.ItemsTotal(),
		DeliveryCost: aggregate.DeliveryCost(),
		Address:      aggregate.Address(),
		Latitude:     aggregate.Location().Latitude(),
		Longitude:    aggregate.Location().Longitude(),
		Status:       aggregate.Status().String(),
		Version:      aggregate.Version(),
		CreatedAt:    aggregate.CreatedAt(),
	}

	if courier := aggregate.Courier(); courier != nil {
		name := courier.Name()
		carNumber := courier.CarNumber()
		carModel := courier.CarModel()
		dto.CourierName = &name
		dto.CourierCarNum = &carNumber
		dto.CourierCarType = &carModel
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the item snapshot and any
// courier assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	location, err := kernel.NewLocation(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	var courier *order.Courier
	if dto.CourierName != nil && dto.CourierCarNum != nil && dto.CourierCarType != nil {
		c, courierErr := order.NewCourier(*dto.CourierName, *dto.CourierCarNum, *dto.CourierCarType)
		if courierErr != nil {
			return nil, courierErr
		}
		courier = &c
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, items, dto.DeliveryCost, dto.Address,
		location, courier, status, dto.Version, dto.CreatedAt)
}

// itemToDomain converts an item snapshot back into its domain value.
func itemToDomain(dto ItemDTO) (order.Item, error) {
	size, err := kernel.SizeFromString(dto.Size)
	if err != nil {
		return order.Item{}, err
	}

	temperature, err := kernel.TemperatureFromString(dto.Temperature)
	if err != nil {
		return order.Item{}, err
	}

	variant, err := kernel.NewVariant(size, temperature)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(dto.TitleRU, dto.TitleUZ, dto.UnitPrice, dto.Quantity, variant, dto.Volume)
}
