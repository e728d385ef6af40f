package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/wheel-of-fortune/internal/apperror"
	"github.com/rocketscienceinc/wheel-of-fortune/internal/entity"
	"github.com/rocketscienceinc/wheel-of-fortune/internal/pkg"
	"github.com/rocketscienceinc/wheel-of-fortune/internal/wheel"
)

// Mover produces the raw move of a player. Humans are asked through the
// console, computers pick a letter on their own.
type Mover interface {
	GetMove(ctx context.Context, board entity.Board) (string, error)
}

// Seat binds a player to the source of its moves. Seats keep the order of
// the players in the game.
type Seat struct {
	Player *entity.Player
	Mover  Mover
}

// Announcer narrates the game. It has no influence on the outcome.
type Announcer interface {
	ShowBoard(board entity.Board)
	Spin(player *entity.Player)
	SpinResult(prize entity.WheelPrize)
	Rejected(reason string)
	Guess(player *entity.Player, letter string)
	LetterCount(letter string, count int)
	Passed(player *entity.Player)
	WrongPhrase(guess string)
	Exited()
}

type catalogRepo interface {
	DrawWheelPrize() (entity.WheelPrize, error)
	DrawCategoryAndPhrase() (entity.Phrase, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// Delays pace the narration. Zero disables a pause.
type Delays struct {
	Spin   time.Duration
	Reveal time.Duration
	Check  time.Duration
	Prompt time.Duration
}

type Options struct {
	VowelCost int
	Delays    Delays
}

// Result is the final state of a finished game.
type Result struct {
	GameID   string
	Category string
	Phrase   string
	Players  []*entity.Player
	Winner   *entity.Player
	Exited   bool
}

type GameManager struct {
	logger    *slog.Logger
	catalog   catalogRepo
	gameRepo  gameRepo
	announcer Announcer
	options   Options
}

func NewGameManager(logger *slog.Logger, catalog catalogRepo, gameRepo gameRepo, announcer Announcer, options Options) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		catalog:   catalog,
		gameRepo:  gameRepo,
		announcer: announcer,
		options:   options,
	}
}

// Play runs one game to the end: a player solves the phrase or someone exits.
// The stored snapshot is the state of the game, every turn starts by loading it.
func (that *GameManager) Play(ctx context.Context, seats []Seat) (*Result, error) {
	if len(seats) == 0 {
		return nil, apperror.ErrNoPlayers
	}

	game, err := that.createGame(ctx, seats)
	if err != nil {
		return nil, err
	}
	defer that.deleteGame(ctx, game.ID)

	for {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("game interrupted: %w", err)
		}

		game, err = that.getGameByID(ctx, game.ID, len(seats))
		if err != nil {
			return nil, err
		}

		if !game.IsOngoing() {
			break
		}

		keepTurn, err := that.playTurn(ctx, game, seats[game.PlayerIndex].Mover)
		if err != nil {
			return nil, err
		}

		if game.IsOngoing() && !keepTurn {
			game.AdvanceTurn()
		}

		if err = that.updateGame(ctx, game); err != nil {
			return nil, err
		}
	}

	log := that.logger.With("gameID", game.ID)
	if winner := game.Winner(); winner != nil {
		log.Info("game won", "winner", winner.Name, "money", winner.PrizeMoney)
	} else {
		log.Info("game exited without a winner")
	}

	return &Result{
		GameID:   game.ID,
		Category: game.Category,
		Phrase:   game.Phrase,
		Players:  game.Players,
		Winner:   game.Winner(),
		Exited:   game.Status == entity.StatusExited,
	}, nil
}

func (that *GameManager) createGame(ctx context.Context, seats []Seat) (*entity.Game, error) {
	phrase, err := that.catalog.DrawCategoryAndPhrase()
	if err != nil {
		return nil, fmt.Errorf("failed to draw phrase: %w", err)
	}

	players := make([]*entity.Player, 0, len(seats))
	for _, seat := range seats {
		players = append(players, seat.Player)
	}

	game := entity.NewGame(pkg.GenerateGameID(), phrase, players)

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "category", game.Category, "players", len(players))
	that.logger.Debug("secret phrase", "gameID", game.ID, "phrase", game.Phrase)

	return game, nil
}

// getGameByID loads the snapshot and checks it still fits the seats.
func (that *GameManager) getGameByID(ctx context.Context, id string, seats int) (*entity.Game, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if len(existingGame.Players) != seats || existingGame.PlayerIndex < 0 || existingGame.PlayerIndex >= seats {
		return nil, fmt.Errorf("%w: %d players, turn %d, %d seats",
			apperror.ErrSnapshotMismatch, len(existingGame.Players), existingGame.PlayerIndex, seats)
	}

	if existingGame.Guessed == nil {
		existingGame.Guessed = entity.NewGuessedSet()
	}

	return existingGame, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

// playTurn spins the wheel for the current player. It reports whether the
// player keeps the turn, which happens after a correct letter.
func (that *GameManager) playTurn(ctx context.Context, game *entity.Game, mover Mover) (bool, error) {
	player := game.CurrentPlayer()
	log := that.logger.With("method", "playTurn", "gameID", game.ID, "player", player.Name)

	prize, err := that.catalog.DrawWheelPrize()
	if err != nil {
		return false, fmt.Errorf("failed to spin the wheel: %w", err)
	}

	that.announcer.ShowBoard(boardFor(game))
	that.announcer.Spin(player)
	if err = that.pause(ctx, that.options.Delays.Spin); err != nil {
		return false, err
	}
	that.announcer.SpinResult(prize)
	if err = that.pause(ctx, that.options.Delays.Reveal); err != nil {
		return false, err
	}

	log.Debug("wheel spun", "type", prize.Type, "value", prize.Value)

	switch prize.Type {
	case entity.PrizeBankrupt:
		player.GoBankrupt()
		return false, nil
	case entity.PrizeLoseTurn:
		return false, nil
	case entity.PrizeCash:
		return that.playCash(ctx, game, mover, prize)
	default:
		return false, fmt.Errorf("%w: unknown type %q", apperror.ErrMalformedPrize, prize.Type)
	}
}

func (that *GameManager) playCash(ctx context.Context, game *entity.Game, mover Mover, prize entity.WheelPrize) (bool, error) {
	player := game.CurrentPlayer()
	log := that.logger.With("method", "playCash", "gameID", game.ID, "player", player.Name)

	move, err := that.requestMove(ctx, game, mover)
	if err != nil {
		return false, err
	}

	log.Debug("move accepted", "move", move.Text)

	switch move.Kind {
	case wheel.KindExit:
		game.Exit()
		that.announcer.Exited()
		return false, nil
	case wheel.KindPass:
		that.announcer.Passed(player)
		return false, nil
	case wheel.KindLetter:
		that.announcer.Guess(player, move.Text)
		if err = that.pause(ctx, that.options.Delays.Check); err != nil {
			return false, err
		}

		outcome, err := wheel.GuessLetter(game, move.Text, prize, that.options.VowelCost)
		if err != nil {
			return false, fmt.Errorf("failed to apply guess: %w", err)
		}

		that.announcer.LetterCount(move.Text, outcome.Count)
		log.Info("letter guessed", "letter", move.Text, "count", outcome.Count, "earned", outcome.Earned)

		return outcome.Count > 0, nil
	default:
		outcome, err := wheel.SolvePhrase(game, move.Text, prize)
		if err != nil {
			return false, fmt.Errorf("failed to apply phrase guess: %w", err)
		}

		if !outcome.Solved {
			that.announcer.WrongPhrase(move.Text)
		}

		return false, nil
	}
}

// requestMove keeps asking the player until the move is valid.
func (that *GameManager) requestMove(ctx context.Context, game *entity.Game, mover Mover) (wheel.Move, error) {
	player := game.CurrentPlayer()

	for {
		if err := that.pause(ctx, that.options.Delays.Prompt); err != nil {
			return wheel.Move{}, err
		}

		raw, err := mover.GetMove(ctx, boardFor(game))
		if err != nil {
			return wheel.Move{}, fmt.Errorf("failed to get move from %s: %w", player.Name, err)
		}

		move, err := wheel.ParseMove(raw, game.Guessed, player.PrizeMoney, that.options.VowelCost)

		var invalid *apperror.InvalidMoveError
		if errors.As(err, &invalid) {
			that.announcer.Rejected(invalid.Error())
			continue
		}

		if err != nil {
			return wheel.Move{}, fmt.Errorf("failed to parse move: %w", err)
		}

		return move, nil
	}
}

func (that *GameManager) pause(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("game interrupted: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

func (that *GameManager) deleteGame(ctx context.Context, id string) {
	log := that.logger.With("method", "deleteGame", "gameID", id)

	if err := that.gameRepo.DeleteByID(context.WithoutCancel(ctx), id); err != nil {
		log.Error("failed to delete game", "error", err)
		return
	}

	log.Debug("game deleted")
}

func boardFor(game *entity.Game) entity.Board {
	player := game.CurrentPlayer()

	return entity.Board{
		Category:    game.Category,
		Obscured:    wheel.Obscure(game.Phrase, game.Guessed),
		Guessed:     game.Guessed.Clone(),
		PlayerName:  player.Name,
		PlayerMoney: player.PrizeMoney,
	}
}
