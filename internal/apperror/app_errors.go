package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameNotFound      = errors.New("game not found")
	ErrSnapshotMismatch  = errors.New("game snapshot does not match the seated players")
	ErrNoPlayers         = errors.New("not enough players")
	ErrInvalidDifficulty = errors.New("difficulty must be between 1 and 10")

	ErrEmptyPrizeTable  = errors.New("prize table is empty")
	ErrEmptyPhraseTable = errors.New("phrase table is empty")
	ErrMalformedPrize   = errors.New("malformed prize entry")
	ErrMalformedPhrase  = errors.New("malformed phrase entry")
	ErrMalformedData    = errors.New("malformed data source")

	ErrNotALetter        = errors.New("guess is not a letter")
	ErrAlreadyGuessed    = errors.New("letter has already been guessed")
	ErrVowelTooExpensive = errors.New("not enough money to guess a vowel")
)

// InvalidMoveError is a recoverable move rejection. Error returns the
// message shown to the player before asking again.
type InvalidMoveError struct {
	Reason    error
	Letter    string
	VowelCost int
}

func (that *InvalidMoveError) Error() string {
	switch {
	case errors.Is(that.Reason, ErrAlreadyGuessed):
		return fmt.Sprintf("%s has already been guessed. Try again.", that.Letter)
	case errors.Is(that.Reason, ErrVowelTooExpensive):
		return fmt.Sprintf("Need $%d to guess a vowel. Try again.", that.VowelCost)
	default:
		return "Guesses should be letters. Try again."
	}
}

func (that *InvalidMoveError) Unwrap() error {
	return that.Reason
}
