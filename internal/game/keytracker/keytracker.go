// Package keytracker reports key presses once per press, for any number of keys.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateTracker remembers which keys were held last frame.
type KeyStateTracker struct {
	prevPressed map[ebiten.Key]bool
}

// IsKeyJustPressed returns true if the key was not pressed last frame but is pressed this frame.
func (k *KeyStateTracker) IsKeyJustPressed(key ebiten.Key) bool {
	return k.Observe(key, ebiten.IsKeyPressed(key))
}

// Observe records the current state of key and reports a fresh press.
// Callers outside a running game loop feed the state themselves.
func (k *KeyStateTracker) Observe(key ebiten.Key, pressed bool) bool {
	if k.prevPressed == nil {
		k.prevPressed = make(map[ebiten.Key]bool)
	}
	justPressed := pressed && !k.prevPressed[key]
	k.prevPressed[key] = pressed
	return justPressed
}
