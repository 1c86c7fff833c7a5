package hud

import (
	"path/filepath"
	"testing"

	"floor-demo/internal/camera"
	"floor-demo/internal/graphics/graphicstest"
	renderer "floor-demo/internal/graphics/renderer"
	"floor-demo/internal/profiling"
	"floor-demo/internal/text"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHUD(t *testing.T, fps *profiling.FPSCounter) *HUD {
	t.Helper()
	profiling.ResetFrame()
	h := NewHUD(graphicstest.NewDevice(), Options{}, fps, func() []string { return []string{"Objects: filled"} })
	atlas, err := text.DefaultAtlas()
	require.NoError(t, err)
	h.atlas = atlas
	h.SetViewport(800, 600)
	return h
}

func testContext() renderer.RenderContext {
	return renderer.RenderContext{Camera: camera.New(mgl32.Vec3{0, 0.5, -1})}
}

func TestLinesIncludeStatusButNotFPS(t *testing.T) {
	h := newTestHUD(t, &profiling.FPSCounter{})

	lines := h.lines(testContext())
	require.Len(t, lines, 3)
	assert.Equal(t, "Pos: 0.00, 0.50, -1.00", lines[0])
	assert.Equal(t, "Objects: filled", lines[2])
}

func TestFPSIsRightAligned(t *testing.T) {
	var fps profiling.FPSCounter
	fps.Tick(1)
	h := newTestHUD(t, &fps)

	v := h.layout(testContext())
	quads := len(v) / (6 * text.FloatsPerVertex)

	// "FPS: 1" draws five glyphs, 7px advance each, ending 10px from the right edge
	first := (quads - 5) * 6 * text.FloatsPerVertex
	assert.Equal(t, float32(800-10-6*7), v[first])

	last := (quads - 1) * 6 * text.FloatsPerVertex
	assert.LessOrEqual(t, v[last+4*text.FloatsPerVertex], float32(790))
}

func TestLayoutWithoutCounter(t *testing.T) {
	h := newTestHUD(t, nil)
	withStatus := len(h.layout(testContext()))

	h.status = nil
	assert.Less(t, len(h.layout(testContext())), withStatus)
}

func TestInitFailsOnMissingFont(t *testing.T) {
	dev := graphicstest.NewDevice()
	h := NewHUD(dev, Options{FontPath: filepath.Join(t.TempDir(), "missing.ttf"), FontSize: 13}, nil, nil)

	err := h.Init()
	require.ErrorContains(t, err, "bake font atlas")
	assert.Empty(t, dev.LiveTextures)
}

func TestToggle(t *testing.T) {
	h := NewHUD(graphicstest.NewDevice(), Options{}, nil, nil)
	assert.False(t, h.Toggle())
	assert.True(t, h.Toggle())
}
