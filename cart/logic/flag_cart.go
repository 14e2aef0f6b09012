package logic

import "slices"

// ShoppingCart caches whether a book was added in a flag instead of
// looking at its items.
//
// The flag goes stale: removing one of two books clears it even though a
// book is still in the cart. RecalculatingCart does not have this bug.
type ShoppingCart struct {
	items     []string
	bookAdded bool
}

func NewShoppingCart() *ShoppingCart {
	return &ShoppingCart{items: make([]string, 0)}
}

// AddItem appends item. Adding a book sets the discount flag, which stays
// set until a book is removed.
func (c *ShoppingCart) AddItem(item string) {
	c.items = append(c.items, item)
	if item == Book {
		c.bookAdded = true
	}
}

// DiscountPercentage returns BookDiscount when the flag is set.
func (c *ShoppingCart) DiscountPercentage() int {
	if c.bookAdded {
		return BookDiscount
	}
	return 0
}

// Items returns a copy of the cart's items.
func (c *ShoppingCart) Items() []string {
	return slices.Clone(c.items)
}

// RemoveItem removes the first occurrence of item. Removing a book clears
// the discount flag whether or not another book remains.
func (c *ShoppingCart) RemoveItem(item string) error {
	items, ok := removeFirst(c.items, item)
	if !ok {
		return itemNotInCart(item)
	}
	c.items = items
	if item == Book {
		c.bookAdded = false
	}
	return nil
}
