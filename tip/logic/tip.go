// Package logic implements the chapter 2 tip calculators: one caching the
// tip in mutable state, one computing it from the group every time.
package logic

const (
	// LargeGroupThreshold is the largest group that still tips SmallGroupTip.
	LargeGroupThreshold = 5
	LargeGroupTip       = 20
	SmallGroupTip       = 10
)

// TipCalculator recomputes and stores the tip percentage each time a
// person joins.
//
// Not safe for concurrent use.
type TipCalculator struct {
	names         []string
	tipPercentage int
}

func NewTipCalculator() *TipCalculator {
	return &TipCalculator{names: make([]string, 0)}
}

// AddPerson adds name to the group and updates the stored percentage.
func (c *TipCalculator) AddPerson(name string) {
	c.names = append(c.names, name)
	if len(c.names) > LargeGroupThreshold {
		c.tipPercentage = LargeGroupTip
	} else {
		c.tipPercentage = SmallGroupTip
	}
}

// Names returns the group's backing slice, not a copy. Writes through it
// change the calculator's names but not its stored percentage.
func (c *TipCalculator) Names() []string {
	return c.names
}

// TipPercentage returns the stored percentage, 0 before anyone is added.
func (c *TipCalculator) TipPercentage() int {
	return c.tipPercentage
}

// TipPercentage returns LargeGroupTip for groups larger than
// LargeGroupThreshold, SmallGroupTip otherwise.
func TipPercentage(names []string) int {
	if len(names) > LargeGroupThreshold {
		return LargeGroupTip
	}
	return SmallGroupTip
}
