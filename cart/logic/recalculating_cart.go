package logic

import "slices"

// RecalculatingCart derives its discount from the current items on every
// call, so repeated adds and removes of the same item stay correct.
type RecalculatingCart struct {
	items []string
}

func NewRecalculatingCart() *RecalculatingCart {
	return &RecalculatingCart{items: make([]string, 0)}
}

func (c *RecalculatingCart) AddItem(item string) {
	c.items = append(c.items, item)
}

// Items returns a copy of the cart's items.
func (c *RecalculatingCart) Items() []string {
	return slices.Clone(c.items)
}

func (c *RecalculatingCart) DiscountPercentage() int {
	return DiscountPercentage(c.items)
}

// RemoveItem removes the first occurrence of item.
func (c *RecalculatingCart) RemoveItem(item string) error {
	items, ok := removeFirst(c.items, item)
	if !ok {
		return itemNotInCart(item)
	}
	c.items = items
	return nil
}
