package wheel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rocketscienceinc/wheel-of-fortune/internal/apperror"
	"github.com/rocketscienceinc/wheel-of-fortune/internal/entity"
)

const (
	MoveExit = "EXIT"
	MovePass = "PASS"
)

type MoveKind int

const (
	KindExit MoveKind = iota
	KindPass
	KindLetter
	KindSolve
)

// Move is a validated player move. Text is upper-cased.
type Move struct {
	Kind MoveKind
	Text string
}

// Outcome describes what a letter or phrase guess did to the game.
type Outcome struct {
	Count     int
	Earned    int
	Bonus     string
	VowelCost int
	Solved    bool
}

// ParseMove turns raw player input into a Move. Rejected single letters come
// back as *apperror.InvalidMoveError so the caller can ask again.
func ParseMove(raw string, guessed entity.GuessedSet, money, vowelCost int) (Move, error) {
	move := strings.ToUpper(raw)

	switch {
	case move == MoveExit:
		return Move{Kind: KindExit, Text: move}, nil
	case move == MovePass:
		return Move{Kind: KindPass, Text: move}, nil
	case utf8.RuneCountInString(move) == 1:
		if err := validateLetter(move, guessed, money, vowelCost); err != nil {
			return Move{}, err
		}
		return Move{Kind: KindLetter, Text: move}, nil
	default:
		return Move{Kind: KindSolve, Text: move}, nil
	}
}

// validateLetter - checks if the letter can be guessed by the player.
func validateLetter(letter string, guessed entity.GuessedSet, money, vowelCost int) error {
	r, _ := utf8.DecodeRuneInString(letter)

	var reason error
	switch {
	case !entity.IsLetter(r):
		reason = apperror.ErrNotALetter
	case guessed.Has(letter):
		reason = apperror.ErrAlreadyGuessed
	case entity.IsVowel(letter) && money < vowelCost:
		reason = apperror.ErrVowelTooExpensive
	default:
		return nil
	}

	return &apperror.InvalidMoveError{Reason: reason, Letter: letter, VowelCost: vowelCost}
}

// GuessLetter applies a letter guess by the current player. Vowels are paid
// for whether or not they are in the phrase. Revealing the last letter wins
// the game for the current player.
func GuessLetter(game *entity.Game, letter string, prize entity.WheelPrize, vowelCost int) (Outcome, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return Outcome{}, err
	}

	player := game.CurrentPlayer()
	if err := validateLetter(letter, game.Guessed, player.PrizeMoney, vowelCost); err != nil {
		return Outcome{}, fmt.Errorf("invalid guess: %w", err)
	}

	game.Guessed.Add(letter)

	var outcome Outcome
	if entity.IsVowel(letter) {
		player.AddMoney(-vowelCost)
		outcome.VowelCost = vowelCost
	}

	outcome.Count = strings.Count(game.Phrase, letter)
	if outcome.Count == 0 {
		return outcome, nil
	}

	outcome.Earned = outcome.Count * prize.Value
	player.AddMoney(outcome.Earned)
	awardBonus(player, prize, &outcome)

	if IsSolved(game.Phrase, game.Guessed) {
		game.Win()
		outcome.Solved = true
	}

	return outcome, nil
}

// SolvePhrase applies a full phrase guess by the current player. Only an
// exact match wins, a miss changes nothing.
func SolvePhrase(game *entity.Game, guess string, prize entity.WheelPrize) (Outcome, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return Outcome{}, err
	}

	if strings.ToUpper(guess) != game.Phrase {
		return Outcome{}, nil
	}

	player := game.CurrentPlayer()
	outcome := Outcome{Earned: prize.Value, Solved: true}
	player.AddMoney(prize.Value)
	awardBonus(player, prize, &outcome)
	game.Win()

	return outcome, nil
}

func awardBonus(player *entity.Player, prize entity.WheelPrize, outcome *Outcome) {
	if !prize.HasBonus() {
		return
	}

	player.AddPrize(prize.Prize)
	outcome.Bonus = prize.Prize
}
