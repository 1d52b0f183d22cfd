// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents the product catalog category.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryBooks       Category = "books"
	CategoryHome        Category = "home"
	CategorySports      Category = "sports"
	CategoryToys        Category = "toys"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryElectronics, CategoryClothing, CategoryBooks,
		CategoryHome, CategorySports, CategoryToys:
		return true
	default:
		return false
	}
}

// Product is a catalog entry. Mutations go through admin procedures only;
// the public surface reads it as-is.
type Product struct {
	ID          uuid.UUID
	Title       string
	Description string
	Category    Category
	Price       int64   // Unit price in the smallest currency unit (cents).
	ImageURL    string  // Public URL of the product image in the blob store.
	Rating      float64 // Average review rating, 0..5.
	Quantity    int     // Units in stock.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
