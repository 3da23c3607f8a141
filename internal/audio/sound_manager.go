// Package audio plays the looping movement sound.
package audio

import (
	"fmt"
	"sync"
	"time"

	"pacmaze/internal/config"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager owns the speaker and the movement loop
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	movement    *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a sound manager. Nothing is audible until
// Initialize succeeds.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	sr := beep.SampleRate(cfg.SampleRate)
	return &SoundManager{
		cfg:        cfg,
		sampleRate: sr,
		mixer:      &beep.Mixer{},
		movement: &beep.Ctrl{
			Streamer: newVolume(NewWakaGenerator(sr, cfg.Frequency), cfg.Volume),
			Paused:   true,
		},
	}
}

// Initialize opens the speaker. Disabled audio is not an error.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.sampleRate, sm.sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}

	sm.mixer.Add(sm.movement)
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// SetMoving starts or pauses the movement loop. The loop is created once and
// resumed where it left off.
func (sm *SoundManager) SetMoving(moving bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.movement.Paused != moving {
		return
	}
	if sm.initialized {
		speaker.Lock()
		sm.movement.Paused = !moving
		speaker.Unlock()
		return
	}
	sm.movement.Paused = !moving
}

// Moving reports whether the movement loop is unpaused
func (sm *SoundManager) Moving() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return !sm.movement.Paused
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup silences everything
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.movement.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}
