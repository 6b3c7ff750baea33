package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tee(size string) LineItem {
	return LineItem{
		ProductID:    "s1",
		Name:         "Northern Cardinal Tee",
		Price:        28.00,
		Kind:         KindShirt,
		SelectedSize: size,
	}
}

func TestCart_Add_MergesOnProductAndSize(t *testing.T) {
	c := &Cart{}

	c.Add(tee("M"))
	c.Add(tee("M"))
	c.Add(tee("L"))

	require.Len(t, c.Items, 2, "same size merges, different size opens a new line")
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, "M", c.Items[0].SelectedSize)
	assert.Equal(t, 1, c.Items[1].Quantity)
	assert.Equal(t, "L", c.Items[1].SelectedSize)

	assert.InDelta(t, 84.00, c.Total(), 0.001)
	assert.Equal(t, 3, c.Count())
}

func TestCart_Add_IgnoresCallerQuantity(t *testing.T) {
	c := &Cart{}

	item := tee("M")
	item.Quantity = 99
	c.Add(item)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity, "a fresh line always starts at quantity 1")
}

func TestCart_Remove_ExactMatchOnly(t *testing.T) {
	c := &Cart{}
	c.Add(tee("M"))
	c.Add(tee("L"))

	// Wrong size is a no-op.
	c.Remove("s1", "XL")
	assert.Len(t, c.Items, 2)

	// Exact match removes the whole line regardless of quantity.
	c.Add(tee("M"))
	c.Remove("s1", "M")
	require.Len(t, c.Items, 1)
	assert.Equal(t, "L", c.Items[0].SelectedSize)

	// Absent product is a no-op.
	c.Remove("b9", "")
	assert.Len(t, c.Items, 1)
}

func TestCart_Clear(t *testing.T) {
	c := &Cart{}
	c.Add(tee("M"))
	c.Add(LineItem{ProductID: "b1", Name: "The Sibley Guide to Birds", Price: 45.00, Kind: KindBook})

	c.Clear()

	assert.Empty(t, c.Items)
	assert.Zero(t, c.Total())
}

func TestCart_Total_EmptyCart(t *testing.T) {
	c := &Cart{}
	assert.Zero(t, c.Total())
	assert.Zero(t, c.Count())
}

func TestCart_MixedKinds(t *testing.T) {
	c := &Cart{}
	c.Add(LineItem{ProductID: "b1", Price: 45.00, Kind: KindBook})
	c.Add(tee("M"))
	c.Add(LineItem{ProductID: "custom-1", Price: 35.00, Kind: KindCustom, SelectedSize: "L"})

	// A book and a shirt never merge even with equal sizes.
	require.Len(t, c.Items, 3)
	assert.InDelta(t, 108.00, c.Total(), 0.001)
}
