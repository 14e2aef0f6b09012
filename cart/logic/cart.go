// Package logic implements the chapter 2 shopping carts. Each variant
// answers the same question, what discount applies, with a different
// relationship to state.
package logic

import "slices"

const (
	// Book is the item that earns the discount.
	Book = "Book"
	// BookDiscount is the discount percentage a book earns.
	BookDiscount = 5
)

// Cart is implemented by every cart variant.
//
// None of the implementations is safe for concurrent use.
type Cart interface {
	AddItem(item string)
	RemoveItem(item string) error
	Items() []string
	DiscountPercentage() int
}

// removeFirst deletes the first occurrence of item, reporting whether one
// was found.
func removeFirst(items []string, item string) ([]string, bool) {
	idx := slices.Index(items, item)
	if idx < 0 {
		return items, false
	}
	return slices.Delete(items, idx, idx+1), true
}

var (
	_ Cart = (*ShoppingCart)(nil)
	_ Cart = (*RecalculatingCart)(nil)
	_ Cart = (*EventSourcedCart)(nil)
)
