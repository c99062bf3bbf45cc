// Package orderrepo provides the GORM-backed order repository and its data
// transfer objects. Line items are persisted as a jsonb blob because orders
// echo them back exactly as submitted.
package orderrepo

import (
	"encoding/json"

	"grubdash/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting orders.
// Seq is a serial column used to reproduce insertion order for All.
type OrderDTO struct {
	ID           string `gorm:"primaryKey"`
	Seq          int64  `gorm:"autoIncrement;uniqueIndex"`
	DeliverTo    string
	MobileNumber string
	Status       string `gorm:"index"`
	Dishes       []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for order records.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) (OrderDTO, error) {
	dishes, err := json.Marshal(o.Dishes)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:           o.ID,
		DeliverTo:    o.DeliverTo,
		MobileNumber: o.MobileNumber,
		Status:       string(o.Status),
		Dishes:       dishes,
	}, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status := order.Status(dto.Status)
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dishes []any
	if len(dto.Dishes) != 0 {
		if err := json.Unmarshal(dto.Dishes, &dishes); err != nil {
			return nil, err
		}
	}

	return &order.Order{
		ID:           dto.ID,
		DeliverTo:    dto.DeliverTo,
		MobileNumber: dto.MobileNumber,
		Status:       status,
		Dishes:       dishes,
	}, nil
}
