package config

import (
	"DeskScene/internal/renderer"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

type WindowConfig struct {
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
	Title  string `json:"title" yaml:"title"`
	VSync  bool   `json:"vsync" yaml:"vsync"`
}

type CameraConfig struct {
	Position    [3]float32 `json:"position" yaml:"position"`
	Front       [3]float32 `json:"front" yaml:"front"`
	Zoom        float32    `json:"zoom" yaml:"zoom"`
	Speed       float32    `json:"speed" yaml:"speed"`
	Sensitivity float32    `json:"sensitivity" yaml:"sensitivity"`
}

type PointLightConfig struct {
	Position  [3]float32 `json:"position" yaml:"position"`
	Color     [3]float32 `json:"color" yaml:"color"`
	Intensity float32    `json:"intensity" yaml:"intensity"`
	Enabled   bool       `json:"enabled" yaml:"enabled"`
}

type LightsConfig struct {
	Points       []PointLightConfig `json:"points" yaml:"points"`
	Directional  bool               `json:"directional" yaml:"directional"`
	Flashlight   bool               `json:"flashlight" yaml:"flashlight"`
	AmbientBoost float32            `json:"ambient_boost" yaml:"ambient_boost"`
}

type Config struct {
	Window      WindowConfig `json:"window" yaml:"window"`
	Camera      CameraConfig `json:"camera" yaml:"camera"`
	Lights      LightsConfig `json:"lights" yaml:"lights"`
	TexturesDir string       `json:"textures_dir" yaml:"textures_dir"`
	Debug       bool         `json:"debug" yaml:"debug"`
}

var ErrUnsupportedFormat = errors.New("unsupported config format")

// Default returns the configuration the scene runs with when no file is given.
func Default() *Config {
	lights := renderer.NewLightParameters()
	points := make([]PointLightConfig, 0, renderer.NumPointLights)
	for _, p := range lights.Points {
		points = append(points, PointLightConfig{
			Position:  p.Position,
			Color:     p.Color,
			Intensity: p.Intensity,
			Enabled:   p.Enabled,
		})
	}

	return &Config{
		Window: WindowConfig{
			Width:  1000,
			Height: 800,
			Title:  "Graphics Project",
			VSync:  true,
		},
		Camera: CameraConfig{
			Position:    renderer.DefaultCameraPosition,
			Front:       renderer.DefaultCameraFront,
			Zoom:        renderer.DefaultZoom,
			Speed:       renderer.DefaultSpeed,
			Sensitivity: renderer.DefaultSensitivity,
		},
		Lights: LightsConfig{
			Points:       points,
			Directional:  lights.Directional,
			Flashlight:   lights.Flashlight,
			AmbientBoost: lights.AmbientBoost,
		},
		TexturesDir: "textures",
	}
}

// Load reads path over the defaults. The format follows the file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every out-of-range value, not just the first.
func (c *Config) Validate() error {
	var err error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Camera.Zoom < renderer.MinZoom || c.Camera.Zoom > renderer.MaxZoom {
		err = multierr.Append(err, fmt.Errorf("camera zoom %v outside [%v, %v]", c.Camera.Zoom, renderer.MinZoom, renderer.MaxZoom))
	}
	if c.Camera.Speed <= 0 {
		err = multierr.Append(err, fmt.Errorf("camera speed must be positive, got %v", c.Camera.Speed))
	}
	if c.Camera.Sensitivity <= 0 {
		err = multierr.Append(err, fmt.Errorf("camera sensitivity must be positive, got %v", c.Camera.Sensitivity))
	}
	if mgl32.Vec3(c.Camera.Front).Len() == 0 {
		err = multierr.Append(err, errors.New("camera front must be non-zero"))
	}
	if len(c.Lights.Points) != renderer.NumPointLights {
		err = multierr.Append(err, fmt.Errorf("expected %d point lights, got %d", renderer.NumPointLights, len(c.Lights.Points)))
	}
	for i, p := range c.Lights.Points {
		if p.Intensity < renderer.MinIntensity || p.Intensity > renderer.MaxIntensity {
			err = multierr.Append(err, fmt.Errorf("point light %d intensity %v outside [%v, %v]", i+1, p.Intensity, renderer.MinIntensity, renderer.MaxIntensity))
		}
	}
	if c.Lights.AmbientBoost < renderer.MinAmbientBoost || c.Lights.AmbientBoost > renderer.MaxAmbientBoost {
		err = multierr.Append(err, fmt.Errorf("ambient boost %v outside [%v, %v]", c.Lights.AmbientBoost, renderer.MinAmbientBoost, renderer.MaxAmbientBoost))
	}
	return err
}

// ViewState builds the initial camera and lights from the configuration.
func (c *Config) ViewState() *renderer.ViewState {
	state := renderer.NewViewState()

	cam := state.Camera
	cam.Position = c.Camera.Position
	cam.Zoom = c.Camera.Zoom
	cam.Speed = c.Camera.Speed
	cam.Sensitivity = c.Camera.Sensitivity
	cam.SetFront(c.Camera.Front)

	c.applyLights(state.Lights)
	return state
}

// ApplyLive copies the settings that can change while the scene runs onto an
// existing state: the lights and the camera speed and sensitivity. Camera
// placement and the selected light are left alone.
func (c *Config) ApplyLive(state *renderer.ViewState) {
	state.Camera.Speed = c.Camera.Speed
	state.Camera.Sensitivity = c.Camera.Sensitivity
	c.applyLights(state.Lights)
}

func (c *Config) applyLights(lights *renderer.LightParameters) {
	for i := 0; i < len(c.Lights.Points) && i < renderer.NumPointLights; i++ {
		p := c.Lights.Points[i]
		lights.Points[i].Position = p.Position
		lights.Points[i].Color = p.Color
		lights.Points[i].Enabled = p.Enabled
		lights.SetIntensity(i, p.Intensity)
	}
	lights.Directional = c.Lights.Directional
	lights.Flashlight = c.Lights.Flashlight
	lights.SetAmbientBoost(c.Lights.AmbientBoost)
}

func (c *Config) AspectRatio() float32 {
	if c.Window.Height == 0 {
		return 1
	}
	return float32(c.Window.Width) / float32(c.Window.Height)
}
