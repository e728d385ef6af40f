package entity

import (
	"sort"
	"strings"
)

const (
	Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Vowels  = "AEIOU"
)

func IsLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func IsVowel(letter string) bool {
	return len(letter) == 1 && strings.Contains(Vowels, letter)
}

// GuessedSet holds the letters guessed so far in a game.
type GuessedSet map[string]bool

func NewGuessedSet(letters ...string) GuessedSet {
	set := make(GuessedSet, len(letters))
	for _, letter := range letters {
		set.Add(letter)
	}

	return set
}

func (that GuessedSet) Has(letter string) bool {
	return that[letter]
}

func (that GuessedSet) Add(letter string) {
	that[letter] = true
}

// Sorted returns the guessed letters in alphabetical order.
func (that GuessedSet) Sorted() []string {
	letters := make([]string, 0, len(that))
	for letter, ok := range that {
		if ok {
			letters = append(letters, letter)
		}
	}
	sort.Strings(letters)

	return letters
}

func (that GuessedSet) Clone() GuessedSet {
	return NewGuessedSet(that.Sorted()...)
}
