package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "tilerunner/pkg/engine/input"
)

// Update handles input (Ebiten interface). Game logic runs in the game-loop
// goroutine; Update only turns keys into intents.
func (e *EbitenRenderer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		e.toggleMenu()
		return nil
	}

	if e.isMenuActive() {
		e.handleMenuInput()
		return nil
	}

	e.handleZoom()

	if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		e.sendIntent(intent)
	}

	return nil
}

// sendIntent publishes an intent without blocking the render thread.
func (e *EbitenRenderer) sendIntent(intent engineinput.Intent) {
	select {
	case e.inputChan <- intent:
	default:
		// Channel full, drop input
	}
}

// repeatingKeyPressed reports a key press with hold-to-repeat, so the runner
// keeps sliding while an arrow is held.
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 18 // ticks before repeating starts
		interval = 6  // ticks between repeats
	)

	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

// movementBindings maps keys to movement actions (arrows, WASD, Vim).
var movementBindings = map[ebiten.Key]engineinput.Action{
	ebiten.KeyArrowLeft:  engineinput.ActionMoveLeft,
	ebiten.KeyA:          engineinput.ActionMoveLeft,
	ebiten.KeyH:          engineinput.ActionMoveLeft,
	ebiten.KeyArrowUp:    engineinput.ActionMoveUp,
	ebiten.KeyW:          engineinput.ActionMoveUp,
	ebiten.KeyK:          engineinput.ActionMoveUp,
	ebiten.KeyArrowRight: engineinput.ActionMoveRight,
	ebiten.KeyD:          engineinput.ActionMoveRight,
	ebiten.KeyL:          engineinput.ActionMoveRight,
	ebiten.KeyArrowDown:  engineinput.ActionMoveDown,
	ebiten.KeyS:          engineinput.ActionMoveDown,
	ebiten.KeyJ:          engineinput.ActionMoveDown,
}

// commandBindings maps keys to one-shot puzzle commands.
var commandBindings = map[ebiten.Key]engineinput.Action{
	ebiten.KeyM:     engineinput.ActionShuffle,
	ebiten.KeySpace: engineinput.ActionShuffle,
	ebiten.KeyN:     engineinput.ActionReset,
	ebiten.KeyG:     engineinput.ActionCycleSize,
	ebiten.KeyQ:     engineinput.ActionQuit,
	ebiten.KeyF2:    engineinput.ActionDumpBoard,
}

// checkInput maps the keyboard state to a single intent for this tick.
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for key, action := range movementBindings {
		if repeatingKeyPressed(key) {
			return engineinput.Intent{Action: action}
		}
	}

	for key, action := range commandBindings {
		if inpututil.IsKeyJustPressed(key) {
			return engineinput.Intent{Action: action}
		}
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}

// handleZoom handles =/- for board margin adjustment.
func (e *EbitenRenderer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		if e.margin > minMargin {
			e.margin -= marginStep
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		if e.margin < maxMargin {
			e.margin += marginStep
		}
	}
}

// toggleMenu opens or closes the pause menu overlay.
func (e *EbitenRenderer) toggleMenu() {
	e.menuMutex.Lock()
	e.menuActive = !e.menuActive
	e.menuSelected = 0
	e.menuMutex.Unlock()
}

// isMenuActive returns whether the pause menu is showing.
func (e *EbitenRenderer) isMenuActive() bool {
	e.menuMutex.RLock()
	defer e.menuMutex.RUnlock()
	return e.menuActive
}

// handleMenuInput navigates the pause menu and dispatches the selection.
func (e *EbitenRenderer) handleMenuInput() {
	e.menuMutex.Lock()
	defer e.menuMutex.Unlock()

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyK) {
		e.menuSelected--
		if e.menuSelected < 0 {
			e.menuSelected = len(e.menuItems) - 1
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		e.menuSelected++
		if e.menuSelected >= len(e.menuItems) {
			e.menuSelected = 0
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		item := e.menuItems[e.menuSelected]
		e.menuActive = false
		e.sendIntent(engineinput.Intent{Action: item.Action})
	}
}
