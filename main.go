package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"raidreminder/internal/bot"
	"raidreminder/internal/config"
	"raidreminder/internal/keepalive"
	"raidreminder/internal/roster"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Options struct {
	EnvFile  string `long:"env" default:".env" description:"Env file loaded before reading the environment"`
	LogLevel string `long:"log-level" description:"Overrides LOG_LEVEL (debug, info, warn, error)"`
	JSON     bool   `long:"json" description:"Log JSON lines instead of human readable output"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	setupLogging("info", opts.JSON)
	if err := run(opts); err != nil {
		log.Fatal().Err(err).Msg("Raid reminder stopped")
	}
}

func run(opts Options) error {

	// Configuration and lookup tables are required to start
	cfg, err := config.Load(opts.EnvFile)
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}
	level := cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	setupLogging(level, opts.JSON)

	directory, err := roster.LoadDirectory(cfg.PlayersFile)
	if err != nil {
		return err
	}
	templates, err := roster.LoadTemplates(cfg.MessagesFile)
	if err != nil {
		return err
	}
	log.Info().Int("players", directory.Len()).Int("templates", len(templates)).Msg("Lookup tables loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.DiscordToken == "" {
		vault, err := config.NewKeyVaultClient(cfg.KeyVaultURL)
		if err != nil {
			return err
		}
		tokenCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		err = cfg.ResolveToken(tokenCtx, vault)
		cancel()
		if err != nil {
			return err
		}
	}

	raidBot, err := bot.New(cfg, directory, templates)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := keepalive.NewServer(cfg.Port).Run(ctx); err != nil {
			log.Error().Err(err).Msg("Keep-alive server failed")
		}
	}()

	log.Info().
		Str("source", cfg.TargetChannelID).
		Str("chat", cfg.ChatChannelID).
		Dur("interval", cfg.PollInterval).
		Msg("Starting raid reminder")
	err = raidBot.Run(ctx)
	stop()
	wg.Wait()
	return err
}

func setupLogging(level string, json bool) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)
	zerolog.TimeFieldFormat = time.RFC3339

	if json {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.DateTime})
	}
}
