// Package audio plays short synthesized effects for gameplay events.
package audio

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/cookiecannon/internal/event"
)

const (
	sampleRate    = beep.SampleRate(48000)
	defaultVolume = 0.3
)

// SoundFor maps a gameplay event to its effect. Events without a sound
// return false.
func SoundFor(t event.Type) (Sound, bool) {
	switch t {
	case event.ProjectileFired:
		return SoundShot, true
	case event.EnemyHit:
		return SoundHit, true
	case event.EnemyDestroyed:
		return SoundPop, true
	case event.EnemySplatted:
		return SoundSplat, true
	case event.PowerupCollected:
		return SoundPowerup, true
	case event.PlayerDied:
		return SoundDeath, true
	case event.LevelUp:
		return SoundLevelUp, true
	default:
		return 0, false
	}
}

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	log         *log.Logger

	// play hands a streamer to the output, the speaker mixer unless replaced.
	play func(beep.Streamer)
}

// NewSoundManager creates a sound manager. Nothing is audible until
// Initialize succeeds. A nil logger discards logs.
func NewSoundManager(logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sm := &SoundManager{
		mixer:  &beep.Mixer{},
		volume: defaultVolume,
		log:    logger,
	}
	sm.play = sm.addToMixer
	return sm
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	sm.initialized = false
}

// Play starts s. It is a no-op before Initialize.
func (sm *SoundManager) Play(s Sound) {
	st := Create(s, sampleRate, sm.volume)
	if st == nil {
		return
	}
	sm.play(st)
}

func (sm *SoundManager) addToMixer(st beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(st)
	speaker.Unlock()
}

// Run plays the sound for every event received on events until the channel
// closes or ctx is done.
func (sm *SoundManager) Run(ctx context.Context, events <-chan event.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if s, ok := SoundFor(ev.Type); ok {
				sm.log.Debug("sound", "event", ev.Type)
				sm.Play(s)
			}
		}
	}
}
