// Package input turns a raw terminal byte stream into game intents.
//
// Terminals report key presses but not releases, so a steering key counts as
// held while its repeats keep arriving within keyHoldDuration.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// It must cover the gap between terminal autorepeat events.
const keyHoldDuration = 80 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	// Held
	Left   bool
	Right  bool
	Thrust bool

	// Pressed during this frame
	Fire    bool
	Restart bool
	Quit    bool

	Pressed []byte // raw bytes read this frame
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	left   time.Time
	right  time.Time
	thrust time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	state   keyState
	closed  bool
	pending []byte // unfinished escape sequence from the previous drain
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r returns an error.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// Reset forgets all held keys.
func (s *Stream) Reset() {
	s.state = keyState{}
	s.pending = nil
}

// ReadInput drains all available bytes from the stream (non-blocking).
func ReadInput(s *Stream) Input {
	var buf []byte
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}
	return s.parse(buf, time.Now())
}

// parse updates key state from buf and builds the frame's input.
// Handles escape sequences for arrow keys, including ones split across drains.
func (s *Stream) parse(buf []byte, now time.Time) Input {
	in := Input{Pressed: buf}

	data := buf
	if len(s.pending) > 0 {
		data = append(s.pending, buf...)
		s.pending = nil
	}

	for i := 0; i < len(data); i++ {
		b := data[i]

		if b == '\x1b' && isEscapePrefix(data[i:]) {
			s.pending = append([]byte(nil), data[i:]...)
			break
		}

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(data) && data[i+1] == '[' {
			switch data[i+2] {
			case 'A': // Up arrow
				s.state.thrust = now
			case 'C': // Right arrow
				s.state.right = now
			case 'D': // Left arrow
				s.state.left = now
			}
			i += 2
			continue
		}

		switch b {
		case 'a', 'A', 'j', 'J':
			s.state.left = now
		case 'd', 'D', 'l', 'L':
			s.state.right = now
		case 'w', 'W', 'i', 'I':
			s.state.thrust = now
		case ' ':
			in.Fire = true
		case 'r', 'R':
			in.Restart = true
		case 'q', 'Q', '\x03':
			in.Quit = true
		}
	}

	in.Left = now.Sub(s.state.left) < keyHoldDuration
	in.Right = now.Sub(s.state.right) < keyHoldDuration
	in.Thrust = now.Sub(s.state.thrust) < keyHoldDuration
	return in
}

// isEscapePrefix reports whether b is an escape sequence cut off before its
// final byte.
func isEscapePrefix(b []byte) bool {
	switch len(b) {
	case 1:
		return true
	case 2:
		return b[1] == '['
	}
	return false
}

// Intents is the part of the game that input drives.
type Intents interface {
	SetRotateLeft(on bool)
	SetRotateRight(on bool)
	SetThrust(on bool)
	Fire()
	Restart() bool
}

// Apply forwards the frame's input to g.
func (in Input) Apply(g Intents) {
	g.SetRotateLeft(in.Left)
	g.SetRotateRight(in.Right)
	g.SetThrust(in.Thrust)
	if in.Fire {
		g.Fire()
	}
	if in.Restart {
		g.Restart()
	}
}

// Active reports whether any key was pressed this frame.
func (in Input) Active() bool {
	return len(in.Pressed) > 0
}
