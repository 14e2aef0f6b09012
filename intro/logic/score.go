// Package logic implements the chapter 1 word scores, each written once
// imperatively and once declaratively.
package logic

import (
	"strings"
	"unicode/utf8"
)

// ScoreFunc scores a word.
type ScoreFunc func(word string) int

// CalculateScore counts the characters of word with an explicit loop.
func CalculateScore(word string) int {
	score := 0
	for range word {
		score++
	}
	return score
}

// WordScore counts the characters of word.
func WordScore(word string) int {
	return utf8.RuneCountInString(word)
}

// CalculateScore2 counts the characters of word other than 'a' with an
// explicit loop.
func CalculateScore2(word string) int {
	score := 0
	for _, char := range word {
		if char != 'a' {
			score++
		}
	}
	return score
}

// WordScore2 counts the characters of word other than 'a' by subtracting
// the number of 'a's from the length.
func WordScore2(word string) int {
	return utf8.RuneCountInString(word) - strings.Count(word, "a")
}

// StringWithoutChar returns word with every occurrence of char removed.
func StringWithoutChar(word, char string) string {
	return strings.ReplaceAll(word, char, "")
}

// WordScore3 counts the characters left once every 'a' is removed.
func WordScore3(word string) int {
	return utf8.RuneCountInString(StringWithoutChar(word, "a"))
}
