// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is the server-persisted record of a submitted checkout.
// It owns one or more OrderItems; an order with no remaining items
// must not exist (the application deletes it together with its last item).
type Order struct {
	ID        uuid.UUID
	UserID    uuid.UUID // The account that submitted the checkout.
	Total     int64     // Sum of item unit prices times quantities, in cents.
	Items     []*OrderItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem is a single line of an Order. It references a Product but
// snapshots the unit price at checkout time, so later catalog edits do
// not rewrite history.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	UnitPrice int64 // Price per unit at checkout time, in cents.
	Archived  bool  // Hidden from the storefront but kept for bookkeeping.
	CreatedAt time.Time
}

// ComputeTotal recalculates the order total from its items.
func (o *Order) ComputeTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.UnitPrice * int64(item.Quantity)
	}

	return total
}
