package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/tomz197/cookiecannon/internal/audio"
	"github.com/tomz197/cookiecannon/internal/config"
	"github.com/tomz197/cookiecannon/internal/event"
	"github.com/tomz197/cookiecannon/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	logger, closeLog, err := settings.NewLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	bus := event.NewBus()
	defer bus.Close()

	if settings.Audio {
		sm := audio.NewSoundManager(logger)
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer sm.Cleanup()
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go sm.Run(ctx, bus.Subscribe(64))
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	logger.Info("starting local game", "seed", settings.Seed, "maxFrame", settings.MaxFrameDelta)
	reader := bufio.NewReader(os.Stdin)
	return loop.Run(reader, os.Stdout, loop.Options{
		Seed:     settings.Seed,
		MaxDelta: settings.MaxFrameDelta,
		Logger:   logger.WithPrefix("game"),
		Events:   bus,
	})
}
