package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	app "github.com/rocketscienceinc/wheel-of-fortune/internal"
	"github.com/rocketscienceinc/wheel-of-fortune/internal/apperror"
	"github.com/rocketscienceinc/wheel-of-fortune/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger, closeLog := initLogger(conf)
	defer closeLog()

	err := app.RunApp(logger, conf, os.Stdin, os.Stdout)
	if errors.Is(err, apperror.ErrNoPlayers) {
		logger.Error("no players configured")
		closeLog()
		os.Exit(1)
	}

	if err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		panic(fmt.Errorf("failed to load .env file: %w", err))
	}

	path, err := configPath(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	return config.MustLoad(path)
}

// configPath picks the config file: the -config flag, then WOF_CONFIG, then
// config.yml in the working directory.
func configPath(args []string) (string, error) {
	flags := flag.NewFlagSet("wheel-of-fortune", flag.ContinueOnError)
	path := flags.String("config", "", "path to the config file")

	if err := flags.Parse(args); err != nil {
		return "", fmt.Errorf("failed to parse flags: %w", err)
	}

	if *path != "" {
		return *path, nil
	}

	if env := os.Getenv("WOF_CONFIG"); env != "" {
		return env, nil
	}

	baseDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return filepath.Join(baseDir, "config.yml"), nil
}

// initialize logger, stdout belongs to the game.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}

	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}
		out = file
		closeFn = func() { _ = file.Close() }
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return logger, closeFn
}
