package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/wheel-of-fortune/internal/apperror"
	"github.com/rocketscienceinc/wheel-of-fortune/internal/entity"
	"github.com/rocketscienceinc/wheel-of-fortune/internal/wheel"
)

const (
	MinDifficulty = 1
	MaxDifficulty = 10

	// SortedFrequencies lists English letters from least to most common.
	SortedFrequencies = "ZQXJKVBPYGFWMUCLDRHSNIOATE"
)

type BotService interface {
	GetMove(ctx context.Context, board entity.Board) (string, error)
}

type botService struct {
	difficulty int
	vowelCost  int
	rnd        *rand.Rand
}

// NewBotService returns the move source of a computer player. A lower
// difficulty makes the bot pick the most common letter more often.
func NewBotService(difficulty, vowelCost int, rnd *rand.Rand) (BotService, error) {
	if difficulty < MinDifficulty || difficulty > MaxDifficulty {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidDifficulty, difficulty)
	}

	return &botService{
		difficulty: difficulty,
		vowelCost:  vowelCost,
		rnd:        rnd,
	}, nil
}

func (that *botService) GetMove(_ context.Context, board entity.Board) (string, error) {
	possibleLetters := PossibleLetters(board.Guessed, board.PlayerMoney, that.vowelCost)
	if len(possibleLetters) == 0 {
		return wheel.MovePass, nil
	}

	if that.smartCoinFlip() {
		return mostFrequentLetter(possibleLetters), nil
	}

	return possibleLetters[that.rnd.Intn(len(possibleLetters))], nil
}

// smartCoinFlip draws from 1 to 10 and plays smart when the draw beats the difficulty.
func (that *botService) smartCoinFlip() bool {
	return that.rnd.Intn(MaxDifficulty)+1 > that.difficulty
}

// PossibleLetters returns the letters a computer may still guess: nothing
// already guessed, and no vowels it cannot afford.
func PossibleLetters(guessed entity.GuessedSet, money, vowelCost int) []string {
	letters := make([]string, 0, len(entity.Letters))
	for _, r := range entity.Letters {
		letter := string(r)
		if guessed.Has(letter) {
			continue
		}
		if money < vowelCost && entity.IsVowel(letter) {
			continue
		}
		letters = append(letters, letter)
	}

	return letters
}

func mostFrequentLetter(possibleLetters []string) string {
	candidates := entity.NewGuessedSet(possibleLetters...)

	for i := len(SortedFrequencies) - 1; i >= 0; i-- {
		letter := SortedFrequencies[i : i+1]
		if candidates.Has(letter) {
			return letter
		}
	}

	return possibleLetters[0]
}
