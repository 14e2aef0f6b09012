// Package intro replays the chapter 1 script: imperative and declarative
// word scores.
package intro

import (
	"github.com/searge/grokking-fp/internal/exercise"
	"github.com/searge/grokking-fp/intro/logic"
)

// Run prints the word scores and checks them.
func Run(r *exercise.Reporter) {
	r.Section("Imperative vs declarative word scores")

	r.Printf("calculate_score: %d\n", logic.CalculateScore("imperative"))
	r.Printf("word_score: %d\n", logic.WordScore("declarative"))

	r.CheckAll("word length",
		logic.CalculateScore("imperative") == 10,
		logic.WordScore("declarative") == 11,
	)

	r.Section("Coffee break: scores without 'a'")

	r.Printf("calculate_score2: %d\n", logic.CalculateScore2("imperative"))
	r.Printf("word_score2: %d\n", logic.WordScore2("declarative"))
	r.Printf("word_score3: %d\n", logic.WordScore3("declarative"))

	r.CheckAll("word length without 'a'",
		logic.CalculateScore2("imperative") == 9,
		logic.WordScore2("declarative") == 9,
		logic.WordScore3("declarative") == 9,
	)
}
