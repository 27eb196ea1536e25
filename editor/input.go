package editor

import (
	"sculpt-editor/core"
)

// Source is the window state the input manager polls. *core.Window
// implements it.
type Source interface {
	GetCursorPos() (float64, float64)
	IsMouseButtonPressed(button int) bool
	IsKeyPressed(key int) bool
	SetScrollCallback(cb core.ScrollCallback)
	Size() (int, int)
}

// InputManager tracks mouse and keyboard state for the editor
type InputManager struct {
	// Mouse state
	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	lastMouseX, lastMouseY   float64
	ScrollDelta              float64

	// Button states
	mouseButtons     [8]bool
	mouseButtonsPrev [8]bool

	// Key states
	keys     [512]bool
	keysPrev [512]bool

	// Modifiers
	ShiftDown bool
	CtrlDown  bool
	AltDown   bool

	source     Source
	firstFrame bool
}

// polledKeys are the keys the editor reacts to.
var polledKeys = []int{
	core.KeyEscape, core.KeyF, core.KeyY, core.KeyZ,
	core.Key1, core.Key2, core.Key3,
}

// NewInputManager creates a new input manager with scroll callback
func NewInputManager(source Source) *InputManager {
	im := &InputManager{
		source:     source,
		firstFrame: true,
	}

	source.SetScrollCallback(func(xoff, yoff float64) {
		im.ScrollDelta += yoff
	})

	return im
}

// Update should be called once per frame to compute deltas and poll state
func (im *InputManager) Update() {
	x, y := im.source.GetCursorPos()
	if im.firstFrame {
		im.lastMouseX = x
		im.lastMouseY = y
		im.firstFrame = false
	}
	im.MouseDeltaX = x - im.lastMouseX
	im.MouseDeltaY = y - im.lastMouseY
	im.lastMouseX = x
	im.lastMouseY = y
	im.MouseX = x
	im.MouseY = y

	copy(im.mouseButtonsPrev[:], im.mouseButtons[:])
	copy(im.keysPrev[:], im.keys[:])

	for _, b := range []int{core.MouseLeft, core.MouseRight, core.MouseMiddle} {
		im.mouseButtons[b] = im.source.IsMouseButtonPressed(b)
	}

	im.ShiftDown = im.source.IsKeyPressed(core.KeyLeftShift) || im.source.IsKeyPressed(core.KeyRightShift)
	im.CtrlDown = im.source.IsKeyPressed(core.KeyLeftControl) || im.source.IsKeyPressed(core.KeyRightControl)
	im.AltDown = im.source.IsKeyPressed(core.KeyLeftAlt) || im.source.IsKeyPressed(core.KeyRightAlt)

	for _, k := range polledKeys {
		if k >= 0 && k < len(im.keys) {
			im.keys[k] = im.source.IsKeyPressed(k)
		}
	}
}

// EndFrame clears per-frame state
func (im *InputManager) EndFrame() {
	im.ScrollDelta = 0
}

// MouseMoved reports whether the cursor moved since the last frame.
func (im *InputManager) MouseMoved() bool {
	return im.MouseDeltaX != 0 || im.MouseDeltaY != 0
}

// --- Mouse Queries ---

func (im *InputManager) IsMouseDown(button int) bool {
	if button < 0 || button >= len(im.mouseButtons) {
		return false
	}
	return im.mouseButtons[button]
}

func (im *InputManager) IsMousePressed(button int) bool {
	if button < 0 || button >= len(im.mouseButtons) {
		return false
	}
	return im.mouseButtons[button] && !im.mouseButtonsPrev[button]
}

func (im *InputManager) IsMouseReleased(button int) bool {
	if button < 0 || button >= len(im.mouseButtons) {
		return false
	}
	return !im.mouseButtons[button] && im.mouseButtonsPrev[button]
}

// --- Key Queries ---

func (im *InputManager) IsKeyPressed(key int) bool {
	if key < 0 || key >= len(im.keys) {
		return false
	}
	return im.keys[key] && !im.keysPrev[key]
}

// IsShortcut checks for a Ctrl+key press
func (im *InputManager) IsShortcut(key int) bool {
	return im.CtrlDown && im.IsKeyPressed(key)
}

// IsShiftShortcut checks for Ctrl+Shift+key press
func (im *InputManager) IsShiftShortcut(key int) bool {
	return im.CtrlDown && im.ShiftDown && im.IsKeyPressed(key)
}
