package statuscolor

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// UnknownOrderID labels diagnostics for orders that cannot report their own id.
const UnknownOrderID = "unknown"

// Shipment is a single delivery unit of an order.
type Shipment interface {
	ShipmentID() int
}

// Order is anything the admin list can hand over: it may or may not carry a status and shipments.
type Order interface {
	// StatusID returns false when the order has no status.
	StatusID() (int, bool)
	// Shipments returns the order's shipments in display order.
	Shipments() ([]Shipment, error)
}

// Identified is implemented by orders that know their own id.
type Identified interface {
	OrderID() int
}

// ShipmentStatusIndex maps a shipment id to the status id of its order.
type ShipmentStatusIndex map[int]int

// OrderDiagnostic records why an order was skipped.
type OrderDiagnostic struct {
	OrderID string
	Err     error
}

func (d OrderDiagnostic) Error() string {
	return fmt.Sprintf("order %s: %v", d.OrderID, d.Err)
}

// IndexResult is the index plus the orders that had to be skipped.
type IndexResult struct {
	Index       ShipmentStatusIndex
	Diagnostics []OrderDiagnostic
}

// ShipmentStatusIndexer maps shipments to the status of the order they belong to.
type ShipmentStatusIndexer struct{}

// NewShipmentStatusIndexer creates an indexer.
func NewShipmentStatusIndexer() *ShipmentStatusIndexer {
	return &ShipmentStatusIndexer{}
}

// Index walks orders in order. Duplicate shipment ids take the status of the last order seen.
func (ix *ShipmentStatusIndexer) Index(orders []Order) IndexResult {
	result := IndexResult{Index: make(ShipmentStatusIndex)}

	for _, order := range orders {
		entries, err := indexOrder(order)
		if err != nil {
			result.Diagnostics = append(result.Diagnostics, OrderDiagnostic{
				OrderID: orderLabel(order),
				Err:     err,
			})
			continue
		}
		for shipmentID, statusID := range entries {
			result.Index[shipmentID] = statusID
		}
	}

	return result
}

// indexOrder collects the entries of a single order so a failure discards all of them.
func indexOrder(order Order) (map[int]int, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	statusID, ok := order.StatusID()
	if !ok {
		return nil, nil
	}
	shipments, err := order.Shipments()
	if err != nil {
		return nil, errors.Wrap(err, "loading shipments")
	}
	if len(shipments) == 0 {
		return nil, nil
	}

	entries := make(map[int]int, len(shipments))
	for i, s := range shipments {
		if s == nil {
			return nil, errors.Errorf("shipment #%d is nil", i)
		}
		entries[s.ShipmentID()] = statusID
	}
	return entries, nil
}

func orderLabel(order Order) string {
	if order == nil {
		return UnknownOrderID
	}
	if id, ok := order.(Identified); ok {
		return strconv.Itoa(id.OrderID())
	}
	return UnknownOrderID
}
