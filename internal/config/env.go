// Package config provides shared configuration utilities and game tunables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt parses an integer environment variable, returning fallback when
// the variable is unset or empty.
func GetEnvInt(key string, fallback int64) (int64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

// GetEnvBool parses a boolean environment variable.
func GetEnvBool(key string, fallback bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

// Settings holds the runtime options shared by all binaries.
type Settings struct {
	Seed          int64         // 0 picks a time-based seed
	MaxFrameDelta time.Duration // 0 disables clamping
	LogLevel      string
	LogFile       string // empty discards logs in terminal binaries
	Audio         bool
}

// LoadDotEnv loads variables from the given files (".env" when none are
// given) without overriding variables that are already set. Missing files
// are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads Settings from the environment after applying any .env file.
func Load() (Settings, error) {
	if err := LoadDotEnv(); err != nil {
		return Settings{}, err
	}

	seed, err := GetEnvInt("GAME_SEED", 0)
	if err != nil {
		return Settings{}, err
	}
	maxFrameMS, err := GetEnvInt("MAX_FRAME_MS", DefaultMaxFrameMS)
	if err != nil {
		return Settings{}, err
	}
	if maxFrameMS < 0 {
		return Settings{}, fmt.Errorf("MAX_FRAME_MS: must not be negative, got %d", maxFrameMS)
	}
	audio, err := GetEnvBool("AUDIO", true)
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Seed:          seed,
		MaxFrameDelta: time.Duration(maxFrameMS) * time.Millisecond,
		LogLevel:      GetEnv("LOG_LEVEL", "info"),
		LogFile:       GetEnv("LOG_FILE", ""),
		Audio:         audio,
	}, nil
}
