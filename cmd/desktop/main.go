package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tomz197/cookiecannon/internal/audio"
	"github.com/tomz197/cookiecannon/internal/config"
	"github.com/tomz197/cookiecannon/internal/desktop"
	"github.com/tomz197/cookiecannon/internal/event"
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
	logger, closeLog, err := settings.NewLogger(os.Stderr)
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

	err = desktop.Run(desktop.Options{
		Seed:     settings.Seed,
		MaxDelta: settings.MaxFrameDelta,
		Logger:   logger.WithPrefix("game"),
		Events:   bus,
	})
	if err != nil {
		logger.Error("game error", "err", err)
	}
	return err
}
