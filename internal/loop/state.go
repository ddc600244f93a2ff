package loop

import (
	"time"

	"github.com/tomz197/cookiecannon/internal/game"
	"github.com/tomz197/cookiecannon/internal/input"
)

// phase is the session's outer state; the game has its own.
type phase int

const (
	phasePlaying  phase = iota // Game is running
	phaseShutdown              // Server is shutting down
)

// sessionState holds per-terminal state that lives outside the game.
type sessionState struct {
	input         input.Input
	phase         phase
	prevPhase     phase
	prevGameState game.State
	running       bool
	delta         time.Duration // Frame delta time
	shutdownTimer float64       // Countdown before auto-disconnect on shutdown
	isInactive    bool          // Whether the inactivity warning is showing
	wasInactive   bool
}

func newSessionState() *sessionState {
	return &sessionState{
		phase:   phasePlaying,
		running: true,
	}
}
