package models_test

import (
	"testing"

	"storefront/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(productID string, qty int) models.CartItem {
	return models.CartItem{
		ProductID:    productID,
		ProductName:  "Product " + productID,
		ProductPrice: decimal.NewFromInt(10),
		ProductImage: "https://img.example.com/" + productID + ".png",
		Quantity:     qty,
	}
}

func TestCart_AddItemMergesByProductID(t *testing.T) {
	cart := models.NewCart("u1")

	cart.AddItem(item("p1", 2))
	cart.AddItem(item("p2", 1))
	cart.AddItem(item("p1", 3))

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, "p1", cart.Items[0].ProductID)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, "p2", cart.Items[1].ProductID)
	assert.Equal(t, 1, cart.Items[1].Quantity)
}

func TestCart_AddItemPreservesInsertionOrder(t *testing.T) {
	cart := models.NewCart("u1")

	cart.AddItem(item("p3", 1))
	cart.AddItem(item("p1", 1))
	cart.AddItem(item("p2", 1))
	cart.AddItem(item("p1", 4)) // merge must not move p1 to the back

	ids := []string{}
	for _, it := range cart.Items {
		ids = append(ids, it.ProductID)
	}
	assert.Equal(t, []string{"p3", "p1", "p2"}, ids)
}

func TestCart_RemoveItem(t *testing.T) {
	cart := models.NewCart("u1")
	cart.AddItem(item("p1", 2))
	cart.AddItem(item("p2", 1))

	// Removing an absent product leaves the cart unchanged.
	cart.RemoveItem("p9")
	assert.Len(t, cart.Items, 2)

	cart.RemoveItem("p1")
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)

	cart.RemoveItem("p2")
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
}

func TestCart_SetQuantity(t *testing.T) {
	cart := models.NewCart("u1")
	cart.AddItem(item("p1", 2))

	ok := cart.SetQuantity("p1", 7)
	assert.True(t, ok)
	assert.Equal(t, 7, cart.Items[0].Quantity) // set, not incremented

	ok = cart.SetQuantity("p9", 1)
	assert.False(t, ok)
	assert.Len(t, cart.Items, 1)
}
