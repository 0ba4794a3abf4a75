package storefront

import (
	"testing"

	"flash_sale_back_end/internal/catalog"
	"flash_sale_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	prodA = models.Product{ID: "a", Name: "A", Price: 10}
	prodB = models.Product{ID: "b", Name: "B", Price: 5}
)

func TestCart_AddMergesByID(t *testing.T) {
	var c Cart
	c.Add(prodA)
	c.Add(prodA)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Items()[0].Quantity)
}

func TestCart_AddKeepsOrder(t *testing.T) {
	var c Cart
	c.Add(prodA)
	c.Add(prodB)
	c.Add(prodA)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "b", items[1].ID)
	assert.Equal(t, 3, c.Count())
}

func TestCart_Remove(t *testing.T) {
	var c Cart
	c.Add(prodA)
	c.Add(prodB)

	c.Remove("a")
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "b", c.Items()[0].ID)

	c.Remove("missing")
	assert.Equal(t, 1, c.Len())
}

func TestCart_SetQuantity(t *testing.T) {
	tests := []struct {
		name    string
		q       int
		wantLen int
		wantQty int
	}{
		{"positive", 5, 1, 5},
		{"zero removes", 0, 0, 0},
		{"negative removes", -3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cart
			c.Add(prodA)
			c.SetQuantity("a", tt.q)

			require.Equal(t, tt.wantLen, c.Len())
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantQty, c.Items()[0].Quantity)
			}
		})
	}
}

func TestCart_SetQuantityUnknownID(t *testing.T) {
	var c Cart
	c.SetQuantity("ghost", 3)
	assert.True(t, c.IsEmpty())
}

func TestCart_ItemsIsCopy(t *testing.T) {
	var c Cart
	c.Add(prodA)
	c.Items()[0].Quantity = 42
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestCart_LineItemsAndSubtotal(t *testing.T) {
	var c Cart
	c.Add(prodA)
	c.Add(prodA)
	c.Add(prodB)

	assert.Equal(t, []models.LineItem{
		{ID: "a", Name: "A", Price: 10, Quantity: 2},
		{ID: "b", Name: "B", Price: 5, Quantity: 1},
	}, c.LineItems())
	assert.Equal(t, 25.00, c.Subtotal())
}

func TestCart_Summary(t *testing.T) {
	var c Cart
	c.Add(prodA)
	c.Add(prodA)
	c.Add(prodB)

	s := c.Summary()
	assert.Equal(t, 25.00, s.Subtotal)
	assert.Equal(t, 2.00, s.Tax)
	assert.Equal(t, 27.00, s.Total)
}

func TestCart_SummaryCatalogPrices(t *testing.T) {
	var c Cart
	for _, p := range catalog.Products() {
		if p.ID == "airpods-pro" {
			c.Add(p)
		}
	}
	require.Equal(t, 1, c.Len())

	s := c.Summary()
	assert.Equal(t, 249.00, s.Subtotal)
	assert.Equal(t, 19.92, s.Tax)
	assert.Equal(t, 268.92, s.Total)
}

func TestCart_Clear(t *testing.T) {
	var c Cart
	c.Add(prodA)
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0.0, c.Subtotal())
}
