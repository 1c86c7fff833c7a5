package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical command, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionQuit
	ActionToggleWireframe
	ActionToggleHUD
	ActionCount // Sentinel value for array sizing
)

// InputManager tracks which actions are held, fed from the GLFW key callback.
// All calls happen on the main thread, so no locking is needed.
type InputManager struct {
	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
}

// NewInputManager creates an InputManager with WASD movement, Escape to quit,
// F for the wireframe toggle and H for the debug overlay
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeyUp, ActionMoveForward)
	im.BindKey(glfw.KeyDown, ActionMoveBackward)
	im.BindKey(glfw.KeyLeft, ActionMoveLeft)
	im.BindKey(glfw.KeyRight, ActionMoveRight)
	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyF, ActionToggleWireframe)
	im.BindKey(glfw.KeyH, ActionToggleHUD)

	return im
}

// BindKey binds a physical key to an action. A key may drive several actions
// and an action may have several keys.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// HandleKeyEvent applies a key event from the GLFW callback
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	actions, exists := im.keyToActions[key]
	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// SetKeyCallback routes the window's key events into the manager
func (im *InputManager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
}

// PostUpdate clears edge flags; call once at the end of each frame
func (im *InputManager) PostUpdate() {
	for i := range ActionCount {
		im.justPressed[i] = false
	}
}

// ReleaseAll drops every held action, e.g. when the window loses focus and
// release events would be missed
func (im *InputManager) ReleaseAll() {
	for i := range ActionCount {
		im.currentState[i] = false
	}
}

// IsActive reports whether the action is currently held
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.currentState[action]
}

// JustPressed reports whether the action went down during this frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.justPressed[action]
}
