package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

func SetupInputHandlers(app *App) {
	window := app.window
	im := app.inputManager

	im.SetKeyCallback(window)

	// Mouse look
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		xoffset, yoffset := app.cursor.Offset(xpos, ypos)
		app.camera.ProcessMouseMovement(xoffset, yoffset, true)
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		app.camera.ProcessMouseScroll(float32(yoff))
	})

	// Framebuffer size callback
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		app.renderer.UpdateViewport(fbWidth, fbHeight)
	})

	// Release events are lost while unfocused, and the cursor jumps on return
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		im.ReleaseAll()
		app.cursor.Reset()
	})
}
