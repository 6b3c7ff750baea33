/*
Package cart implements the anonymous shopping cart.

A cart is an ordered list of line items. Line identity is the pair
(product id, selected size): adding the same product in the same size
increments the existing line, a different size opens a new line.

Persistence is best-effort: carts live in Redis keyed by a session cookie
and expire after an idle window. A lost cart degrades to an empty one.
*/
package cart

// ItemKind classifies what a line item refers to.
type ItemKind string

const (
	KindBook   ItemKind = "book"
	KindShirt  ItemKind = "shirt"
	KindCustom ItemKind = "custom"
)

// LineItem is one entry in a cart.
//
// ProductID is a string: storefront products use their catalog id, custom
// print orders use a generated identifier.
type LineItem struct {
	ProductID    string   `json:"id"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	ImageURL     string   `json:"imageUrl"`
	Quantity     int      `json:"quantity"`
	Kind         ItemKind `json:"kind"`
	SelectedSize string   `json:"selectedSize,omitempty"`
}

// Cart is the full cart state for one session.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Add merges item into the cart. An existing line with the same
// (product id, selected size) has its quantity incremented by one;
// otherwise the item is appended with quantity 1.
func (c *Cart) Add(item LineItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID && c.Items[i].SelectedSize == item.SelectedSize {
			c.Items[i].Quantity++
			return
		}
	}

	item.Quantity = 1
	c.Items = append(c.Items, item)
}

// Remove deletes the line matching (product id, selected size) exactly.
// A missing line is a no-op.
func (c *Cart) Remove(productID, selectedSize string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].SelectedSize == selectedSize {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Total returns the cart total, recomputed on every read.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Count returns the number of units in the cart (sum of quantities).
func (c *Cart) Count() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
