package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/wheel-of-fortune/internal/apperror"
	"github.com/rocketscienceinc/wheel-of-fortune/internal/config"
	"github.com/rocketscienceinc/wheel-of-fortune/internal/entity"
	"github.com/rocketscienceinc/wheel-of-fortune/internal/repository"
	"github.com/rocketscienceinc/wheel-of-fortune/internal/repository/storage"
	"github.com/rocketscienceinc/wheel-of-fortune/internal/service"
	"github.com/rocketscienceinc/wheel-of-fortune/internal/usecase"
	"github.com/rocketscienceinc/wheel-of-fortune/transport/console"
)

var ErrAddrNotFound = errors.New("redis host is empty")

// RunApp - runs one game on the terminal. An interrupt ends the game without
// a winner and is not an error.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return runGame(ctx, logger, conf, in, out)
}

func runGame(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	rnd := newRand(conf.Seed)

	catalog, err := repository.LoadCatalogRepository(conf.PrizesPath, conf.PhrasesPath, rnd)
	if err != nil {
		return fmt.Errorf("could not load game data: %w", err)
	}

	gameRepo, closeRepo, err := newGameRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	announcer := console.NewAnnouncer(out)
	prompter := console.NewPrompter(in, out)
	defer prompter.Close()

	announcer.Welcome()

	roster, err := console.AskRoster(ctx, prompter)
	if errors.Is(err, context.Canceled) {
		log.Info("interrupted during setup")
		announcer.Interrupted()
		return nil
	}

	if err != nil {
		return fmt.Errorf("could not set up players: %w", err)
	}

	if roster.Size() == 0 {
		announcer.NoPlayers()
		return apperror.ErrNoPlayers
	}

	seats, err := newSeats(roster, prompter, conf.VowelCost, rnd)
	if err != nil {
		return err
	}

	log.Info("players ready", "humans", len(roster.Humans), "computers", roster.Computers, "difficulty", roster.Difficulty)

	gameManager := usecase.NewGameManager(logger, catalog, gameRepo, announcer, usecase.Options{
		VowelCost: conf.VowelCost,
		Delays:    delaysFrom(conf.Delays),
	})

	result, err := gameManager.Play(ctx, seats)
	if errors.Is(err, context.Canceled) {
		log.Info("interrupted during the game")
		announcer.Interrupted()
		return nil
	}

	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	announcer.Results(result)

	return nil
}

func newSeats(roster console.Roster, prompter *console.Prompter, vowelCost int, rnd *rand.Rand) ([]usecase.Seat, error) {
	seats := make([]usecase.Seat, 0, roster.Size())

	human := console.NewHumanMover(prompter)
	for _, name := range roster.Humans {
		seats = append(seats, usecase.Seat{Player: entity.NewHumanPlayer(name), Mover: human})
	}

	for i := range roster.Computers {
		bot, err := service.NewBotService(roster.Difficulty, vowelCost, rnd)
		if err != nil {
			return nil, fmt.Errorf("could not create computer player: %w", err)
		}

		player := entity.NewComputerPlayer(console.ComputerName(i), roster.Difficulty)
		seats = append(seats, usecase.Seat{Player: player, Mover: bot})
	}

	return seats, nil
}

func newGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	if !conf.Redis.Enabled {
		return repository.NewMemoryGameRepository(), func() {}, nil
	}

	if conf.Redis.Host == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewGameRepository(redisStorage.Connection, conf.Redis.TTL), closeFn, nil
}

func delaysFrom(delays config.Delays) usecase.Delays {
	if delays.NoPacing {
		return usecase.Delays{}
	}

	return usecase.Delays{
		Spin:   delays.Spin,
		Reveal: delays.Reveal,
		Check:  delays.Check,
		Prompt: delays.Prompt,
	}
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed)) //nolint: gosec // it's ok
}
