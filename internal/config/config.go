package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/viper"
)

// FileName is the optional config file looked up in the config directory
const FileName = "floor-demo.yaml"

// EnvPrefix prefixes environment overrides, e.g. FLOORDEMO_WINDOW_WIDTH
const EnvPrefix = "FLOORDEMO"

type Config struct {
	Window WindowConfig `mapstructure:"window"`
	Render RenderConfig `mapstructure:"render"`
	Camera CameraConfig `mapstructure:"camera"`
	Assets AssetsConfig `mapstructure:"assets"`
	Log    LogConfig    `mapstructure:"log"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	VSync  bool   `mapstructure:"vsync"`
}

type RenderConfig struct {
	// 0 means unlimited
	FPSLimit   int       `mapstructure:"fpsLimit"`
	NearPlane  float32   `mapstructure:"near"`
	FarPlane   float32   `mapstructure:"far"`
	ClearColor []float32 `mapstructure:"clearColor"`
}

type CameraConfig struct {
	Position    []float32 `mapstructure:"position"`
	Speed       float32   `mapstructure:"speed"`
	Sensitivity float32   `mapstructure:"sensitivity"`
	Zoom        float32   `mapstructure:"zoom"`
}

type AssetsConfig struct {
	// Root for relative texture and model paths in the scene
	Dir     string `mapstructure:"dir"`
	Shaders string `mapstructure:"shaders"`
	// Empty selects the built-in scene
	Scene string `mapstructure:"scene"`
	// TrueType/OpenType file for the debug overlay; empty uses the built-in bitmap face
	Font     string  `mapstructure:"font"`
	FontSize float64 `mapstructure:"fontSize"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// Load sets default values, reads the optional config file from configDir
// and applies environment overrides.
func Load(configDir string) (*Config, error) {
	viper.SetDefault("window.width", 1920)
	viper.SetDefault("window.height", 1080)
	viper.SetDefault("window.title", "Floor Homework")
	viper.SetDefault("window.vsync", true)

	viper.SetDefault("render.fpsLimit", 0)
	viper.SetDefault("render.near", 0.1)
	viper.SetDefault("render.far", 100.0)
	viper.SetDefault("render.clearColor", []float32{0, 0, 0, 1})

	viper.SetDefault("camera.position", []float32{0, 0.5, -1})
	viper.SetDefault("camera.speed", 2.5)
	viper.SetDefault("camera.sensitivity", 0.1)
	viper.SetDefault("camera.zoom", 45.0)

	viper.SetDefault("assets.dir", "assets")
	viper.SetDefault("assets.shaders", "assets/shaders")
	viper.SetDefault("assets.scene", "")
	viper.SetDefault("assets.font", "")
	viper.SetDefault("assets.fontSize", 13.0)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.pretty", true)

	viper.SetConfigName(strings.TrimSuffix(FileName, ".yaml"))
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UsedFile returns the config file that was read, or "" when running on
// defaults
func UsedFile() string {
	return viper.ConfigFileUsed()
}

func (c *Config) validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Render.NearPlane <= 0 || c.Render.FarPlane <= c.Render.NearPlane:
		return fmt.Errorf("invalid clip planes near=%v far=%v", c.Render.NearPlane, c.Render.FarPlane)
	case c.Render.FPSLimit < 0:
		return fmt.Errorf("fps limit must not be negative, got %d", c.Render.FPSLimit)
	case len(c.Render.ClearColor) != 4:
		return fmt.Errorf("render.clearColor needs 4 components, got %d", len(c.Render.ClearColor))
	case c.Assets.Font != "" && c.Assets.FontSize <= 0:
		return fmt.Errorf("assets.fontSize must be positive, got %v", c.Assets.FontSize)
	case len(c.Camera.Position) != 3:
		return fmt.Errorf("camera.position needs 3 components, got %d", len(c.Camera.Position))
	}
	return nil
}

// Clear returns the clear color
func (r RenderConfig) Clear() mgl32.Vec4 {
	return mgl32.Vec4{r.ClearColor[0], r.ClearColor[1], r.ClearColor[2], r.ClearColor[3]}
}

// Start returns the initial camera position
func (c CameraConfig) Start() mgl32.Vec3 {
	return mgl32.Vec3{c.Position[0], c.Position[1], c.Position[2]}
}
