// Package tip replays the chapter 2 tip calculation script.
package tip

import (
	"github.com/searge/grokking-fp/internal/exercise"
	"github.com/searge/grokking-fp/tip/logic"
)

// Visitors is the group from the textbook script.
var Visitors = []string{"John", "Jane", "Joe", "Jill", "Jack", "Joel"}

// Run prints and checks the stateful and the pure tip calculators.
func Run(r *exercise.Reporter) {
	r.Section("Tip calculation")

	calc := logic.NewTipCalculator()
	for _, visitor := range Visitors {
		calc.AddPerson(visitor)
	}
	r.Println(calc.Names())

	r.Println("Imperative style: Instance method")
	r.Println(calc.TipPercentage())

	r.Println("Functional style: Static method")
	r.Println(logic.TipPercentage(Visitors))

	r.CheckAll("six people tip 20",
		calc.TipPercentage() == logic.LargeGroupTip,
		logic.TipPercentage(Visitors) == logic.LargeGroupTip,
	)

	small := Visitors[:logic.LargeGroupThreshold]
	r.Printf("Tip for %v: %d\n", small, logic.TipPercentage(small))
	r.Check("five people tip 10", logic.TipPercentage(small) == logic.SmallGroupTip)
}
