// Package cart replays the chapter 2 shopping cart script and contrasts the
// cart variants.
package cart

import (
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/searge/grokking-fp/cart/logic"
	"github.com/searge/grokking-fp/internal/exercise"
)

// Run prints and checks every cart variant.
func Run(r *exercise.Reporter) {
	runFlagCart(r)
	runStaleFlag(r)
	runRecalculatingCart(r)
	runPureFunctions(r)
	runEventSourcedCart(r, uuid.New())
}

func runFlagCart(r *exercise.Reporter) {
	r.Section("Shopping cart with a discount flag")

	cart := logic.NewShoppingCart()
	cart.AddItem("Shirt")
	cart.AddItem(logic.Book)
	cart.AddItem("Shoes")

	// Items hands out a copy: removing the book from it leaves the cart as is.
	items := cart.Items()
	if idx := slices.Index(items, logic.Book); idx >= 0 {
		items = slices.Delete(items, idx, idx+1)
	}
	r.Printf("Copy after removing %s: %v\n", logic.Book, items)
	r.Check("removing from the copy keeps the book in the cart",
		slices.Contains(cart.Items(), logic.Book))

	if err := cart.RemoveItem(logic.Book); err != nil {
		r.Logger().Error("remove failed", zap.String("item", logic.Book), zap.Error(err))
	}

	r.Printf("Items in cart: %v\n", cart.Items())
	r.Printf("Discount percentage: %d\n", cart.DiscountPercentage())
}

func runStaleFlag(r *exercise.Reporter) {
	r.Section("The flag goes stale with more than one book")

	cart := logic.NewShoppingCart()
	cart.AddItem(logic.Book)
	cart.AddItem(logic.Book)
	if err := cart.RemoveItem(logic.Book); err != nil {
		r.Logger().Error("remove failed", zap.String("item", logic.Book), zap.Error(err))
	}

	r.Printf("Items in cart: %v\n", cart.Items())
	r.Printf("Discount percentage: %d\n", cart.DiscountPercentage())
	r.CheckAll("flag cart drops the discount while a book remains",
		slices.Contains(cart.Items(), logic.Book),
		cart.DiscountPercentage() == 0,
	)
}

func runRecalculatingCart(r *exercise.Reporter) {
	r.Section("Shopping cart recalculating its discount")

	cart := logic.NewRecalculatingCart()
	cart.AddItem(logic.Book)
	cart.AddItem(logic.Book)
	r.Check("two books earn the discount", cart.DiscountPercentage() == logic.BookDiscount)

	cart.AddItem("Shoes")
	if err := cart.RemoveItem(logic.Book); err != nil {
		r.Logger().Error("remove failed", zap.String("item", logic.Book), zap.Error(err))
	}
	r.Check("one book removed", slices.Equal(cart.Items(), []string{logic.Book, "Shoes"}))
	r.Check("the remaining book keeps the discount", cart.DiscountPercentage() == logic.BookDiscount)

	r.Printf("Items in cart: %v\n", cart.Items())
	r.Printf("Discount percentage: %d\n", cart.DiscountPercentage())
}

func runPureFunctions(r *exercise.Reporter) {
	r.Section("Discounts as pure functions")

	items := []string{"Shirt", logic.Book}
	r.Printf("Discount for %v: %d\n", items, logic.DiscountPercentage(items))
	r.CheckAll("pure discount",
		logic.DiscountPercentage(items) == logic.BookDiscount,
		logic.DiscountPercentage([]string{"Shirt"}) == 0,
	)

	electronics, err := logic.NewDiscountCalculator([]string{"Electronics"}, 10)
	if err != nil {
		r.Logger().Error("building calculator failed", zap.Error(err))
		r.Check("electronics calculator", false)
		return
	}
	withElectronics := []string{"Electronics", "Shirt"}
	withoutElectronics := []string{"Shirt"}
	r.Printf("Electronics discount for %v: %d\n", withElectronics, electronics(withElectronics))
	r.Printf("Electronics discount for %v: %d\n", withoutElectronics, electronics(withoutElectronics))
	r.CheckAll("electronics calculator",
		electronics(withElectronics) == 10,
		electronics(withoutElectronics) == 0,
	)
}

func runEventSourcedCart(r *exercise.Reporter, id uuid.UUID) {
	r.Section("Shopping cart rebuilt from events")

	cart := logic.NewEventSourcedCart(id)
	r.Logger().Debug("event-sourced cart created", zap.Stringer("cart_id", cart.ID()))

	cart.AddItem(logic.Book)
	cart.AddItem(logic.Book)
	cart.AddItem("Shoes")
	if err := cart.RemoveItem(logic.Book); err != nil {
		r.Logger().Error("remove failed", zap.String("item", logic.Book), zap.Error(err))
	}

	r.Printf("Cart %s\n", cart.ID())
	for _, event := range cart.Events() {
		r.Event(event.Kind(), event.Sequence, event.Item, event.At.AsTime())
	}
	r.Printf("Items in cart: %v\n", cart.Items())
	r.Printf("Discount percentage: %d\n", cart.DiscountPercentage())
	r.CheckAll("rebuilt state keeps the discount",
		slices.Equal(cart.Items(), []string{logic.Book, "Shoes"}),
		cart.DiscountPercentage() == logic.BookDiscount,
	)
}
