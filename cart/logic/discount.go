package logic

// DiscountCalculator computes a discount percentage from a list of items.
type DiscountCalculator func(items []string) int

var bookDiscount = newDiscountCalculator([]string{Book}, BookDiscount)

// DiscountPercentage returns BookDiscount if items contains a book, else 0.
// It keeps no state at all.
func DiscountPercentage(items []string) int {
	return bookDiscount(items)
}

// NewDiscountCalculator returns a calculator that grants rate when any of
// the items is one of triggers. Triggers are copied, so changing the
// caller's slice later has no effect.
func NewDiscountCalculator(triggers []string, rate int) (DiscountCalculator, error) {
	if rate < 0 || rate > 100 {
		return nil, NewInvalidArgument(ErrMsgPercentageRange)
	}
	return newDiscountCalculator(triggers, rate), nil
}

func newDiscountCalculator(triggers []string, rate int) DiscountCalculator {
	set := make(map[string]struct{}, len(triggers))
	for _, trigger := range triggers {
		set[trigger] = struct{}{}
	}
	return func(items []string) int {
		for _, item := range items {
			if _, ok := set[item]; ok {
				return rate
			}
		}
		return 0
	}
}
