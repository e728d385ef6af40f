// Package data ships the default prize wheel and phrase list.
package data

import _ "embed"

const (
	PrizesFile  = "prizes.json"
	PhrasesFile = "phrases.json"
)

var (
	//go:embed prizes.json
	Prizes []byte

	//go:embed phrases.json
	Phrases []byte
)
