package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 1920, cfg.Window.Width)
	assert.Equal(t, 1080, cfg.Window.Height)
	assert.Equal(t, "Floor Homework", cfg.Window.Title)
	assert.True(t, cfg.Window.VSync)
	assert.Equal(t, 0, cfg.Render.FPSLimit)
	assert.Equal(t, float32(0.1), cfg.Render.NearPlane)
	assert.Equal(t, float32(100), cfg.Render.FarPlane)
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, cfg.Render.Clear())
	assert.Equal(t, mgl32.Vec3{0, 0.5, -1}, cfg.Camera.Start())
	assert.Equal(t, float32(2.5), cfg.Camera.Speed)
	assert.Equal(t, float32(0.1), cfg.Camera.Sensitivity)
	assert.Equal(t, float32(45), cfg.Camera.Zoom)
	assert.Equal(t, "assets", cfg.Assets.Dir)
	assert.Equal(t, "assets/shaders", cfg.Assets.Shaders)
	assert.Equal(t, "", cfg.Assets.Scene)
	assert.Equal(t, "", cfg.Assets.Font)
	assert.Equal(t, 13.0, cfg.Assets.FontSize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "", UsedFile())
}

func TestLoad_WithConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `
window:
  width: 1280
  height: 720
render:
  fpsLimit: 60
  clearColor: [0.1, 0.2, 0.3, 1]
camera:
  position: [1, 2, 3]
assets:
  font: fonts/mono.ttf
  fontSize: 16
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	c, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 1280, c.Window.Width)
	assert.Equal(t, 720, c.Window.Height)
	assert.Equal(t, "Floor Homework", c.Window.Title)
	assert.Equal(t, 60, c.Render.FPSLimit)
	assert.Equal(t, mgl32.Vec4{0.1, 0.2, 0.3, 1}, c.Render.Clear())
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, c.Camera.Start())
	assert.Equal(t, "fonts/mono.ttf", c.Assets.Font)
	assert.Equal(t, 16.0, c.Assets.FontSize)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, FileName, filepath.Base(UsedFile()))
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("FLOORDEMO_WINDOW_TITLE", "Env Title")
	t.Setenv("FLOORDEMO_RENDER_FPSLIMIT", "30")

	c, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "Env Title", c.Window.Title)
	assert.Equal(t, 30, c.Render.FPSLimit)
}

func TestLoad_BadFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("window: [unclosed"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_Validation(t *testing.T) {
	cases := map[string]string{
		"zero width":   "window:\n  width: 0\n",
		"clip planes":  "render:\n  near: 10\n  far: 1\n",
		"clear color":  "render:\n  clearColor: [1, 1]\n",
		"camera":       "camera:\n  position: [1]\n",
		"negative fps": "render:\n  fpsLimit: -1\n",
		"font size":    "assets:\n  font: a.ttf\n  fontSize: 0\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(viper.Reset)
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(src), 0644))
			_, err := Load(dir)
			assert.Error(t, err)
		})
	}
}
