package input

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeys(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		in   string
		want Input
	}{
		{"wasd left", "a", Input{Left: true}},
		{"vim right", "l", Input{Right: true}},
		{"thrust", "w", Input{Thrust: true}},
		{"arrows", "\x1b[A\x1b[D", Input{Thrust: true, Left: true}},
		{"fire", " ", Input{Fire: true}},
		{"restart", "R", Input{Restart: true}},
		{"quit", "q", Input{Quit: true}},
		{"ctrl-c", "\x03", Input{Quit: true}},
		{"combo", "wd ", Input{Thrust: true, Right: true, Fire: true}},
		{"unknown csi is skipped", "\x1b[Zw", Input{Thrust: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Stream
			got := s.parse([]byte(tt.in), now)
			tt.want.Pressed = []byte(tt.in)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArrowSplitAcrossReads(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name        string
		first, next string
		want        Input
	}{
		{"after escape", "\x1b", "[D", Input{Left: true}},
		{"after bracket", "\x1b[", "A", Input{Thrust: true}},
		{"after a key", " \x1b[", "C", Input{Right: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Stream
			first := s.parse([]byte(tt.first), now)
			assert.False(t, first.Left || first.Right || first.Thrust)

			got := s.parse([]byte(tt.next), now)
			assert.Equal(t, tt.want.Left, got.Left)
			assert.Equal(t, tt.want.Right, got.Right)
			assert.Equal(t, tt.want.Thrust, got.Thrust)
			assert.Empty(t, s.pending)
		})
	}
}

func TestHeldKeysExpire(t *testing.T) {
	var s Stream
	now := time.Now()

	s.parse([]byte("a"), now)
	assert.True(t, s.parse(nil, now.Add(keyHoldDuration/2)).Left)
	assert.False(t, s.parse(nil, now.Add(keyHoldDuration)).Left)
}

func TestEdgesDoNotRepeat(t *testing.T) {
	var s Stream
	now := time.Now()
	require.True(t, s.parse([]byte(" "), now).Fire)
	assert.False(t, s.parse(nil, now).Fire)
}

func TestReset(t *testing.T) {
	var s Stream
	now := time.Now()
	s.parse([]byte("wad"), now)
	s.Reset()
	in := s.parse(nil, now)
	assert.False(t, in.Left || in.Right || in.Thrust)
}

type recordingIntents struct {
	left, right, thrust bool
	fires, restarts     int
}

func (r *recordingIntents) SetRotateLeft(on bool)  { r.left = on }
func (r *recordingIntents) SetRotateRight(on bool) { r.right = on }
func (r *recordingIntents) SetThrust(on bool)      { r.thrust = on }
func (r *recordingIntents) Fire()                  { r.fires++ }
func (r *recordingIntents) Restart() bool          { r.restarts++; return true }

func TestApply(t *testing.T) {
	var r recordingIntents
	Input{Left: true, Thrust: true, Fire: true}.Apply(&r)
	assert.True(t, r.left)
	assert.False(t, r.right)
	assert.True(t, r.thrust)
	assert.Equal(t, 1, r.fires)
	assert.Zero(t, r.restarts)

	Input{Restart: true}.Apply(&r)
	assert.False(t, r.left)
	assert.Equal(t, 1, r.restarts)
}

func TestStreamClosesOnEOF(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("q")))

	var got []byte
	assert.Eventually(t, func() bool {
		in := ReadInput(s)
		got = append(got, in.Pressed...)
		return s.Closed()
	}, time.Second, time.Millisecond)
	assert.Equal(t, []byte("q"), got)
}
