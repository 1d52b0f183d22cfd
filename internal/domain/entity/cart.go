// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// CartItem is a product snapshot inside a cart. The snapshot keeps the
// title, price and image from the moment the product was added so the
// cart renders without re-reading the catalog.
type CartItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Title     string    `json:"title"`
	UnitPrice int64     `json:"unit_price"` // In cents, snapshot at add time.
	ImageURL  string    `json:"image_url"`
	Quantity  int       `json:"quantity"`
}

// Cart is the session-scoped, pre-checkout selection of products.
// It is a value: every transition returns a new Cart and never mutates
// the receiver, which keeps the transition logic trivially testable.
// Persistence is owned by an external session store adapter.
type Cart struct {
	Items []CartItem `json:"items"`
}

// SetItems replaces the full item list.
func (c Cart) SetItems(items []CartItem) Cart {
	return Cart{Items: slices.Clone(items)}
}

// Add appends one item. Adding a product already in the cart increases
// its quantity instead of creating a second line.
func (c Cart) Add(item CartItem) Cart {
	next := Cart{Items: slices.Clone(c.Items)}
	for i := range next.Items {
		if next.Items[i].ProductID == item.ProductID {
			next.Items[i].Quantity += item.Quantity

			return next
		}
	}

	next.Items = append(next.Items, item)

	return next
}

// Remove deletes the item for the given product id. Absent ids are a no-op.
func (c Cart) Remove(productID uuid.UUID) Cart {
	return c.RemoveMany([]uuid.UUID{productID})
}

// RemoveMany deletes the items for all given product ids.
func (c Cart) RemoveMany(productIDs []uuid.UUID) Cart {
	next := Cart{Items: make([]CartItem, 0, len(c.Items))}
	for _, item := range c.Items {
		if !slices.Contains(productIDs, item.ProductID) {
			next.Items = append(next.Items, item)
		}
	}

	return next
}

// SetQuantity sets the quantity for one product id. Setting an absent id
// or a non-positive quantity is a no-op.
func (c Cart) SetQuantity(productID uuid.UUID, quantity int) Cart {
	if quantity < 1 {
		return c
	}

	next := Cart{Items: slices.Clone(c.Items)}
	for i := range next.Items {
		if next.Items[i].ProductID == productID {
			next.Items[i].Quantity = quantity
		}
	}

	return next
}

// Total returns the cart total in cents.
func (c Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.UnitPrice * int64(item.Quantity)
	}

	return total
}

// IsEmpty reports whether the cart holds no items.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
