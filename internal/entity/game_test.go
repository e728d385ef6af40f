package entity

import (
	"testing"

	"github.com/rocketscienceinc/wheel-of-fortune/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame() *Game {
	players := []*Player{
		NewHumanPlayer("Alice"),
		NewComputerPlayer("Computer 1", 5),
		NewComputerPlayer("Computer 2", 5),
	}

	return NewGame("123", Phrase{Category: "Animal", Phrase: "CAT"}, players)
}

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := newTestGame()

	// Then: it starts ongoing with the first player and nothing guessed
	require.NotNil(t, game)
	assert.Equal(t, "123", game.ID)
	assert.Equal(t, "Animal", game.Category)
	assert.Equal(t, "CAT", game.Phrase)
	assert.Equal(t, StatusOngoing, game.Status)
	assert.Equal(t, 0, game.PlayerIndex)
	assert.Equal(t, NoWinner, game.WinnerIndex)
	assert.Empty(t, game.Guessed)
	assert.Nil(t, game.Winner())
}

func TestGame_AdvanceTurn(t *testing.T) {
	t.Run("Moves to the next player", func(t *testing.T) {
		// Given: a game on the first player's turn
		game := newTestGame()

		// When: the turn advances
		game.AdvanceTurn()

		// Then: the second player is up
		assert.Equal(t, "Computer 1", game.CurrentPlayer().Name)
	})

	t.Run("Wraps around to the first player", func(t *testing.T) {
		// Given: a game on the last player's turn
		game := newTestGame()
		game.PlayerIndex = 2

		// When: the turn advances
		game.AdvanceTurn()

		// Then: the first player is up again
		assert.Equal(t, 0, game.PlayerIndex)
		assert.Equal(t, "Alice", game.CurrentPlayer().Name)
	})

	t.Run("Single player keeps the turn", func(t *testing.T) {
		// Given: a game with a single player
		game := NewGame("1", Phrase{Category: "Thing", Phrase: "CAT"}, []*Player{NewHumanPlayer("Solo")})

		// When: the turn advances
		game.AdvanceTurn()

		// Then: the same player is up
		assert.Equal(t, 0, game.PlayerIndex)
	})
}

func TestGame_WinAndExit(t *testing.T) {
	t.Run("Win records the current player", func(t *testing.T) {
		// Given: a game on the second player's turn
		game := newTestGame()
		game.AdvanceTurn()

		// When: the current player wins
		game.Win()

		// Then: the game is finished with that player as the winner
		assert.True(t, game.IsFinished())
		assert.Equal(t, StatusWon, game.Status)
		require.NotNil(t, game.Winner())
		assert.Equal(t, "Computer 1", game.Winner().Name)
	})

	t.Run("Exit has no winner", func(t *testing.T) {
		// Given: an ongoing game
		game := newTestGame()

		// When: someone exits
		game.Exit()

		// Then: the game is finished without a winner
		assert.True(t, game.IsFinished())
		assert.Equal(t, StatusExited, game.Status)
		assert.Nil(t, game.Winner())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameFinished when game is won", func(t *testing.T) {
		game := &Game{Status: StatusWon}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns ErrGameFinished when game is exited", func(t *testing.T) {
		game := &Game{Status: StatusExited}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		game := &Game{Status: "unknown"}

		err := game.ConfirmOngoingState()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown game status")
	})
}
