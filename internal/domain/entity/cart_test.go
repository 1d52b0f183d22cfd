package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartItem(quantity int) CartItem {
	return CartItem{
		ProductID: uuid.New(),
		Title:     "Mechanical Keyboard",
		UnitPrice: 12900,
		Quantity:  quantity,
	}
}

func TestCart_AddThenRemoveYieldsEmpty(t *testing.T) {
	item := newCartItem(1)

	cart := Cart{}.Add(item)
	require.Len(t, cart.Items, 1)

	cart = cart.Remove(item.ProductID)
	assert.True(t, cart.IsEmpty())
}

func TestCart_AddExistingProductBumpsQuantity(t *testing.T) {
	item := newCartItem(1)

	cart := Cart{}.Add(item).Add(item)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCart_SetQuantityAbsentIDIsNoOp(t *testing.T) {
	item := newCartItem(2)
	cart := Cart{}.Add(item)

	next := cart.SetQuantity(uuid.New(), 5)

	assert.Equal(t, cart, next)
}

func TestCart_SetQuantityNonPositiveIsNoOp(t *testing.T) {
	item := newCartItem(2)
	cart := Cart{}.Add(item)

	next := cart.SetQuantity(item.ProductID, 0)

	assert.Equal(t, 2, next.Items[0].Quantity)
}

func TestCart_SetQuantity(t *testing.T) {
	item := newCartItem(2)
	cart := Cart{}.Add(item)

	next := cart.SetQuantity(item.ProductID, 7)

	assert.Equal(t, 7, next.Items[0].Quantity)
	// The original value is untouched.
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCart_RemoveMany(t *testing.T) {
	first := newCartItem(1)
	second := newCartItem(3)
	third := newCartItem(2)

	cart := Cart{}.Add(first).Add(second).Add(third)
	cart = cart.RemoveMany([]uuid.UUID{first.ProductID, third.ProductID})

	require.Len(t, cart.Items, 1)
	assert.Equal(t, second.ProductID, cart.Items[0].ProductID)
}

func TestCart_SetItemsReplacesList(t *testing.T) {
	cart := Cart{}.Add(newCartItem(1))

	replacement := []CartItem{newCartItem(4), newCartItem(1)}
	cart = cart.SetItems(replacement)

	assert.Equal(t, replacement, cart.Items)
}

func TestCart_Total(t *testing.T) {
	cart := Cart{}.
		Add(CartItem{ProductID: uuid.New(), UnitPrice: 1000, Quantity: 2}).
		Add(CartItem{ProductID: uuid.New(), UnitPrice: 250, Quantity: 4})

	assert.Equal(t, int64(3000), cart.Total())
}
