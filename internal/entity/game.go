package entity

import (
	"fmt"

	"github.com/rocketscienceinc/wheel-of-fortune/internal/apperror"
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusExited  = "exited"

	NoWinner = -1
)

// Game is the whole state owned by the turn engine for one round.
type Game struct {
	ID          string     `json:"id"`
	Category    string     `json:"category"`
	Phrase      string     `json:"phrase"`
	Guessed     GuessedSet `json:"guessed"`
	Players     []*Player  `json:"players"`
	PlayerIndex int        `json:"player_index"`
	Status      string     `json:"status"`
	WinnerIndex int        `json:"winner_index"`
}

// Board is what a player sees when asked for a move.
type Board struct {
	Category    string
	Obscured    string
	Guessed     GuessedSet
	PlayerName  string
	PlayerMoney int
}

func NewGame(id string, phrase Phrase, players []*Player) *Game {
	return &Game{
		ID:          id,
		Category:    phrase.Category,
		Phrase:      phrase.Phrase,
		Guessed:     NewGuessedSet(),
		Players:     players,
		Status:      StatusOngoing,
		WinnerIndex: NoWinner,
	}
}

func (that *Game) CurrentPlayer() *Player {
	return that.Players[that.PlayerIndex]
}

// AdvanceTurn hands the turn to the next player, wrapping around.
func (that *Game) AdvanceTurn() {
	that.PlayerIndex = (that.PlayerIndex + 1) % len(that.Players)
}

// Win finishes the game with the current player as the winner.
func (that *Game) Win() {
	that.Status = StatusWon
	that.WinnerIndex = that.PlayerIndex
}

func (that *Game) Exit() {
	that.Status = StatusExited
	that.WinnerIndex = NoWinner
}

func (that *Game) Winner() *Player {
	if that.WinnerIndex == NoWinner || that.WinnerIndex >= len(that.Players) {
		return nil
	}

	return that.Players[that.WinnerIndex]
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusExited
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("unknown game status: %s", that.Status)
	}
}
