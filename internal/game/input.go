package game

import (
	"pacmaze/internal/game/keytracker"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputHandler handles all user input for the game
type InputHandler struct {
	game *PacGame
	keys keytracker.KeyStateTracker
}

// NewInputHandler creates a new input handler
func NewInputHandler(game *PacGame) *InputHandler {
	return &InputHandler{game: game}
}

// HandleInput processes all input for the current frame. It returns
// ebiten.Termination when the player quits.
func (ih *InputHandler) HandleInput() error {
	if ih.keys.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if ih.keys.IsKeyJustPressed(ebiten.KeyR) {
		ih.game.Regenerate()
	}
	if ih.keys.IsKeyJustPressed(ebiten.KeyL) {
		ih.game.showLegend = !ih.game.showLegend
	}
	return nil
}
