package loop

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/image/colornames"

	"github.com/tomz197/cookiecannon/internal/config"
	"github.com/tomz197/cookiecannon/internal/draw"
	"github.com/tomz197/cookiecannon/internal/game"
	"github.com/tomz197/cookiecannon/internal/object"
)

const (
	cooldownBarWidth = 30
	powerupBlinkTime = 3 * time.Second // timers blink when this close to expiry
	powerupBlinkFreq = 4.0
)

// drawFrame draws the current frame.
func (s *Session) drawFrame() error {
	// On phase, game state or inactivity transitions, do a full terminal
	// clear so UI elements from the previous state don't persist on screen.
	phaseChanged := s.state.phase != s.state.prevPhase
	gameChanged := s.frame.State != s.state.prevGameState
	inactiveChanged := s.state.isInactive != s.state.wasInactive
	if phaseChanged || gameChanged || inactiveChanged {
		s.chunkWriter.WriteString("\033[H\033[2J")
		s.canvas.ForceRedraw()
		s.state.prevPhase = s.state.phase
		s.state.prevGameState = s.frame.State
		s.state.wasInactive = s.state.isInactive
	}

	s.canvas.Clear()
	drawWorld(s.canvas, &s.frame)

	// Render canvas to terminal
	s.canvas.Render(s.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	s.canvas.RenderBorder(s.chunkWriter)

	s.drawUI()

	return s.chunkWriter.Flush()
}

// writeText writes plain text over the canvas and marks its cells dirty so
// the canvas repaints them once the text goes away.
func (s *Session) writeText(col, row int, text string) {
	s.writeStyled(col, row, text, utf8.RuneCountInString(text))
}

// writeStyled is writeText for text carrying escape sequences; width is the
// number of visible cells.
func (s *Session) writeStyled(col, row int, text string, width int) {
	if row < 1 || row > s.canvas.TerminalHeight() || col < 1 {
		return
	}
	s.chunkWriter.WriteAt(col, row, text)
	s.canvas.MarkTextDirty(col, row, width)
}

// writeCentered writes text centered on column centerX.
func (s *Session) writeCentered(centerX, row int, text string) {
	s.writeText(centerX-utf8.RuneCountInString(text)/2, row, text)
}

// drawUI draws the text overlay.
func (s *Session) drawUI() {
	termWidth := s.canvas.TerminalWidth()
	termHeight := s.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if s.state.phase == phaseShutdown {
		s.drawShutdownScreen(centerX, centerY)
		return
	}

	if s.state.isInactive {
		s.drawInactivityScreen(centerX, centerY)
		return
	}

	s.drawHUD(termWidth, termHeight)
	if s.frame.State == game.GameOver {
		s.drawGameOverScreen(centerX, centerY)
	}
}

// drawHUD draws level, score, the cannon heat bar and powerup timers.
func (s *Session) drawHUD(termWidth, termHeight int) {
	snap := &s.frame

	s.writeText(2, 1, fmt.Sprintf("Level: %d", snap.Level))
	scoreText := fmt.Sprintf("Score: %d", snap.Score)
	s.writeText(termWidth-len(scoreText), 1, scoreText)

	p := &snap.Player
	bar := cooldownBar(p.CannonCapacity, p.Overheat, object.OverheatLabelVisible(p.OverheatRemaining), cooldownBarWidth)
	s.writeStyled(termWidth/2-cooldownBarWidth/2-1, 1, bar, cooldownBarWidth+2)

	col := 2
	for _, st := range p.Powerups {
		if !st.Active {
			continue
		}
		text := fmt.Sprintf("%s %4.1fs", st.Type.Label(), st.Remaining.Seconds())
		width := len(text)
		// Only the final seconds blink
		if st.Remaining > powerupBlinkTime || object.ShouldRenderBlink(st.Remaining.Seconds(), powerupBlinkFreq) {
			fg := draw.Foreground(draw.FromRGBA(st.Type.Color()))
			s.writeStyled(col, termHeight, draw.ColorBold+fg+text+draw.ColorReset, width)
		}
		col += width + 2
	}
}

// cooldownBar renders the cannon heat bar: the filled part is the used
// capacity. While overheated the whole bar is red and carries the OVERHEAT
// label when showText is set. The result is width+2 cells wide.
func cooldownBar(capacity float64, overheat, showText bool, width int) string {
	var b strings.Builder
	b.WriteString("[")

	label := ""
	if overheat && showText {
		label = "OVERHEAT"
	}
	labelStart := (width - len(label)) / 2

	filled := int((1-capacity)*float64(width) + 0.5)
	if overheat {
		filled = width
	}
	red := draw.Foreground(draw.FromRGBA(colornames.Red))
	for i := 0; i < width; i++ {
		switch {
		case label != "" && i >= labelStart && i < labelStart+len(label):
			b.WriteString(draw.ColorBold)
			b.WriteByte(label[i-labelStart])
			b.WriteString(draw.ColorReset)
		case i < filled && overheat:
			b.WriteString(red)
			b.WriteRune(draw.BlockFull)
		case i < filled:
			b.WriteString(draw.Foreground(draw.FromRGBA(object.HeatColor(float64(i) / float64(width)))))
			b.WriteRune(draw.BlockFull)
		default:
			b.WriteString(draw.ColorReset)
			b.WriteRune('░')
		}
	}
	b.WriteString(draw.ColorReset)
	b.WriteString("]")
	return b.String()
}

// drawGameOverScreen draws the game over overlay.
func (s *Session) drawGameOverScreen(centerX, centerY int) {
	titleArt := []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
	}

	titleStartY := centerY - 5
	for i, line := range titleArt {
		s.writeCentered(centerX, titleStartY+i, line)
	}

	y := titleStartY + len(titleArt) + 1
	s.writeCentered(centerX, y, fmt.Sprintf("Score: %d   Level: %d", s.frame.Score, s.frame.Level))

	if time.Now().UnixMilli()/600%2 == 0 {
		s.writeCentered(centerX, y+2, ">>  Press R to play again  <<")
	}
	s.writeCentered(centerX, y+3, "Q to quit")
}

// drawInactivityScreen draws the inactivity warning screen.
func (s *Session) drawInactivityScreen(centerX, centerY int) {
	s.writeCentered(centerX, centerY-2, "INACTIVITY WARNING")

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(s.lastInput).Seconds()),
	)
	s.writeCentered(centerX, centerY, msg)
	s.writeCentered(centerX, centerY+2, "Press any key to continue")
}

// drawShutdownScreen draws the server shutdown notification screen.
func (s *Session) drawShutdownScreen(centerX, centerY int) {
	s.writeCentered(centerX, centerY-3, "SERVER SHUTTING DOWN")
	s.writeCentered(centerX, centerY-1, "The server is restarting for maintenance.")
	s.writeCentered(centerX, centerY, "Please reconnect in a moment.")

	remaining := int(s.state.shutdownTimer) + 1
	s.writeCentered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	s.writeCentered(centerX, centerY+4, "Press Q to disconnect now")
}
