package models

import (
	"time"

	"github.com/pkg/errors"

	"orderstatuscolor/server/internal/statuscolor"
)

// Order is a row of the order table as shown on the admin order list
type Order struct {
	ID            int       `json:"id" gorm:"primaryKey"`
	OrderNo       string    `json:"order_no" gorm:"type:varchar(255)"`
	OrderStatusID *int      `json:"order_status_id" gorm:"column:order_status_id;index"`
	CreateDate    time.Time `json:"create_date" gorm:"column:create_date"`

	// Связи
	OrderStatus *OrderStatus `json:"order_status,omitempty" gorm:"foreignKey:OrderStatusID;references:ID"`
	Shippings   []Shipping   `json:"shippings,omitempty" gorm:"foreignKey:OrderID;references:ID"`
}

func (Order) TableName() string {
	return "dtb_order"
}

// OrderID returns the order's primary key (0 for a nil order).
func (o *Order) OrderID() int {
	if o == nil {
		return 0
	}
	return o.ID
}

// StatusID reports the order's status, if any.
func (o *Order) StatusID() (int, bool) {
	if o == nil || o.OrderStatusID == nil {
		return 0, false
	}
	return *o.OrderStatusID, true
}

// Shipments exposes the preloaded shippings to the indexer.
func (o *Order) Shipments() ([]statuscolor.Shipment, error) {
	if o == nil {
		return nil, errors.New("order is nil")
	}
	shipments := make([]statuscolor.Shipment, 0, len(o.Shippings))
	for i := range o.Shippings {
		shipments = append(shipments, &o.Shippings[i])
	}
	return shipments, nil
}

// Shipping is one delivery of an order
type Shipping struct {
	ID      int    `json:"id" gorm:"primaryKey"`
	OrderID int    `json:"order_id" gorm:"column:order_id;index"`
	Name01  string `json:"name01" gorm:"column:name01;type:varchar(255)"`
	Name02  string `json:"name02" gorm:"column:name02;type:varchar(255)"`
}

func (Shipping) TableName() string {
	return "dtb_shipping"
}

// ShipmentID returns the shipping's primary key.
func (s *Shipping) ShipmentID() int {
	return s.ID
}

// AsOrders converts loaded rows to the indexer's order interface.
func AsOrders(orders []Order) []statuscolor.Order {
	out := make([]statuscolor.Order, 0, len(orders))
	for i := range orders {
		out = append(out, &orders[i])
	}
	return out
}
