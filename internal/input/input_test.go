package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestPressAndReleaseEdges(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if !im.IsActive(ActionMoveForward) {
		t.Fatal("Expected forward to be held after press")
	}
	if !im.JustPressed(ActionMoveForward) {
		t.Fatal("Expected forward to be just pressed")
	}

	im.PostUpdate()
	im.HandleKeyEvent(glfw.KeyW, glfw.Repeat)
	if !im.IsActive(ActionMoveForward) {
		t.Error("Repeat should keep the action held")
	}
	if im.JustPressed(ActionMoveForward) {
		t.Error("Repeat must not produce a new press edge")
	}

	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	if im.IsActive(ActionMoveForward) {
		t.Error("Expected forward released")
	}
}

func TestArrowKeysShareMovementActions(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyLeft, glfw.Press)
	if !im.IsActive(ActionMoveLeft) {
		t.Error("Left arrow should drive ActionMoveLeft")
	}
	if im.IsActive(ActionMoveRight) {
		t.Error("Left arrow must not drive ActionMoveRight")
	}
}

func TestUnboundKeyIsIgnored(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyZ, glfw.Press)
	for a := Action(0); a < ActionCount; a++ {
		if im.IsActive(a) || im.JustPressed(a) {
			t.Errorf("Action %d changed on an unbound key", a)
		}
	}
}

func TestReleaseAllKeepsEdgesUntilPostUpdate(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyF, glfw.Press)
	im.HandleKeyEvent(glfw.KeyD, glfw.Press)

	im.ReleaseAll()
	if im.IsActive(ActionMoveRight) || im.IsActive(ActionToggleWireframe) {
		t.Error("ReleaseAll should drop every held action")
	}
	if !im.JustPressed(ActionToggleWireframe) {
		t.Error("A press seen this frame should still be reported")
	}

	im.PostUpdate()
	if im.JustPressed(ActionToggleWireframe) {
		t.Error("PostUpdate should clear press edges")
	}
}

func TestBindKeyAndOutOfRangeActions(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeySpace, ActionToggleHUD)
	im.BindKey(glfw.KeyQ, ActionCount)

	im.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	if !im.JustPressed(ActionToggleHUD) {
		t.Error("Extra binding should toggle the HUD")
	}
	if im.IsActive(ActionCount) || im.JustPressed(-1) {
		t.Error("Out of range actions must report false")
	}
}
