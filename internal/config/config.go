package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"orbit-viewer/core"
)

// ConfigName is the file base name searched for, with any extension viper
// understands (viewer.yaml, viewer.json, viewer.toml, ...).
const ConfigName = "viewer"

type WindowConfig struct {
	Width   int    `json:"width" mapstructure:"width"`
	Height  int    `json:"height" mapstructure:"height"`
	Title   string `json:"title" mapstructure:"title"`
	VSync   bool   `json:"vsync" mapstructure:"vsync"`
	ShowFPS bool   `json:"showFPS" mapstructure:"showFPS"`
}

type CameraConfig struct {
	Sensitivity float32 `json:"sensitivity" mapstructure:"sensitivity"`
	Speed       float32 `json:"speed" mapstructure:"speed"`
	OrbitRadius float32 `json:"orbitRadius" mapstructure:"orbitRadius"`
}

type ProjectionConfig struct {
	FovDegrees float32 `json:"fovDegrees" mapstructure:"fovDegrees"`
	Near       float32 `json:"near" mapstructure:"near"`
	Far        float32 `json:"far" mapstructure:"far"`
}

type RenderConfig struct {
	ClearColor []float32 `json:"clearColor" mapstructure:"clearColor"`
}

type Config struct {
	LogLevel   string           `json:"logLevel" mapstructure:"logLevel"`
	Window     WindowConfig     `json:"window" mapstructure:"window"`
	Camera     CameraConfig     `json:"camera" mapstructure:"camera"`
	Projection ProjectionConfig `json:"projection" mapstructure:"projection"`
	Render     RenderConfig     `json:"render" mapstructure:"render"`

	// File is the config file that was read, empty when running on defaults.
	File string `json:"-" mapstructure:"-"`
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")

	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "Modern OpenGL")
	v.SetDefault("window.vsync", false)
	v.SetDefault("window.showFPS", true)

	v.SetDefault("camera.sensitivity", 0.05)
	v.SetDefault("camera.speed", 0.05)
	v.SetDefault("camera.orbitRadius", 10.0)

	v.SetDefault("projection.fovDegrees", 45.0)
	v.SetDefault("projection.near", 0.1)
	v.SetDefault("projection.far", 100.0)

	v.SetDefault("render.clearColor", []float32{0, 0, 0, 1})
}

// Load applies defaults, reads the optional config file and decodes the
// result. configDir overrides the search path; when empty the working
// directory and the user config directory are searched. A missing file is
// not an error.
func Load(v *viper.Viper, configDir string) (Config, error) {
	SetDefaults(v)

	v.SetConfigName(ConfigName)
	if configDir != "" {
		v.AddConfigPath(configDir)
	} else {
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "orbit-viewer"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the renderer cannot work with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Projection.FovDegrees <= 0 || c.Projection.FovDegrees >= 180 {
		return fmt.Errorf("invalid projection.fovDegrees %v", c.Projection.FovDegrees)
	}
	if c.Projection.Near <= 0 || c.Projection.Far <= c.Projection.Near {
		return fmt.Errorf("invalid clip planes near=%v far=%v", c.Projection.Near, c.Projection.Far)
	}
	if n := len(c.Render.ClearColor); n != 3 && n != 4 {
		return fmt.Errorf("render.clearColor needs 3 or 4 components, got %d", n)
	}
	return nil
}

// ClearColor returns the background colour; alpha defaults to opaque.
func (c Config) ClearColor() core.Color {
	cc := c.Render.ClearColor
	if len(cc) < 3 {
		return core.ColorBlack
	}
	color := core.Color{R: cc[0], G: cc[1], B: cc[2], A: 1}
	if len(cc) > 3 {
		color.A = cc[3]
	}
	return color
}
