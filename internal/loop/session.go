// Package loop runs the terminal frontend: one Session per connected
// terminal, each with its own game, plus a Hub that tracks live sessions.
package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/cookiecannon/internal/config"
	"github.com/tomz197/cookiecannon/internal/draw"
	"github.com/tomz197/cookiecannon/internal/event"
	"github.com/tomz197/cookiecannon/internal/game"
	"github.com/tomz197/cookiecannon/internal/input"
)

// Options configures a session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Seed         int64         // 0 seeds from the clock
	MaxDelta     time.Duration // frame delta clamp, 0 disables it
	Logger       *log.Logger
	Events       event.Emitter // receives gameplay events, e.g. for audio
}

// Session handles rendering and input for a single terminal.
type Session struct {
	hub          Registry
	handle       *Handle
	state        *sessionState
	game         *game.Game
	frame        game.Snapshot // last state handed to the render hook
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
	log          *log.Logger
}

// NewSession creates a session registered with hub, reading keys from r and
// drawing to w.
func NewSession(hub Registry, r *bufio.Reader, w io.Writer, opts Options) *Session {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}
	if opts.Username != "" {
		logger = logger.With("user", opts.Username)
	}

	s := &Session{
		hub:          hub,
		handle:       hub.Register(opts.Username),
		state:        newSessionState(),
		writer:       w,
		lastInput:    time.Now(),
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		log:          logger,
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.game = game.New(game.Options{
		Rand:     rand.New(rand.NewSource(seed)),
		Logger:   logger,
		Events:   opts.Events,
		MaxDelta: opts.MaxDelta,
		OnRender: func(snap game.Snapshot) { s.frame = snap },
	})
	s.frame = s.game.Snapshot()

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	s.canvas = draw.NewScaledCanvas(renderWidth, renderHeight, config.WorldWidth, config.WorldHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.chunkWriter = draw.NewChunkWriter(w, offsetCol, offsetRow)

	return s
}

// Game returns the session's game.
func (s *Session) Game() *game.Game {
	return s.game
}

// Run starts the session loop. Blocks until the player quits, the input
// ends, or the hub's shutdown countdown runs out.
func (s *Session) Run() error {
	draw.HideCursor(s.writer)
	defer draw.ShowCursor(s.writer)
	draw.ClearScreen(s.writer)
	defer s.hub.Unregister(s.handle.ID)

	lastTime := time.Now()

	for s.state.running {
		frameStart := time.Now()
		s.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		s.processInput()
		s.processNotices()
		s.updateScreen()

		switch s.state.phase {
		case phasePlaying:
			s.game.Tick(s.state.delta)
		case phaseShutdown:
			s.updateShutdownPhase()
		}

		if err := s.drawFrame(); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	s.log.Debug("session finished", "score", s.game.Score(), "lvl", s.game.Level())
	draw.ClearScreen(s.writer)
	return nil
}

// processInput reads input and forwards it to the game.
func (s *Session) processInput() {
	s.state.input = input.ReadInput(s.inputStream)
	if s.inputStream.Closed() {
		s.state.running = false
		return
	}

	if s.state.input.Active() {
		s.lastInput = time.Now()
		s.state.isInactive = false
	} else if time.Since(s.lastInput).Seconds() > config.InactivityDisconnectUser {
		s.log.Info("disconnecting inactive session")
		s.state.running = false
	} else if time.Since(s.lastInput).Seconds() > config.InactivityWarnUser {
		s.state.isInactive = true
	}

	if s.state.input.Quit {
		s.state.running = false
	}

	if s.state.phase == phasePlaying {
		s.state.input.Apply(s.game)
	}
}

// processNotices handles messages from the hub.
func (s *Session) processNotices() {
	for {
		select {
		case n := <-s.handle.Notices:
			if n == NoticeShutdown && s.state.phase != phaseShutdown {
				s.state.phase = phaseShutdown
				s.state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area.
func (s *Session) updateScreen() {
	termWidth, termHeight, err := s.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != s.canvas.TerminalWidth() || renderHeight != s.canvas.TerminalHeight() ||
		offsetCol != s.canvas.OffsetCol() || offsetRow != s.canvas.OffsetRow() {
		draw.ClearScreen(s.writer)
		s.canvas.ForceRedraw()
	}

	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = max(min(termWidth, config.MaxTermWidth), 1)
	renderHeight = max(min(termHeight, config.MaxTermHeight), 1)
	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}

// updateShutdownPhase counts down the shutdown screen.
func (s *Session) updateShutdownPhase() {
	s.state.shutdownTimer -= s.state.delta.Seconds()
	if s.state.shutdownTimer <= 0 {
		s.state.running = false
	}
}

// Run plays a single local session on r and w until the player quits.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	hub := NewHub(opts.Logger)
	return NewSession(hub, r, w, opts).Run()
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
