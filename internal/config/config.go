package config

import (
	"fmt"
	"os"

	"pacmaze/internal/level"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration values
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Level   LevelConfig   `yaml:"level"`
	Camera  CameraConfig  `yaml:"camera"`
	Patrol  PatrolConfig  `yaml:"patrol"`
	Audio   AudioConfig   `yaml:"audio"`
	Locale  LocaleConfig  `yaml:"locale"`
}

type DisplayConfig struct {
	ScreenWidth  int     `yaml:"screen_width"`
	ScreenHeight int     `yaml:"screen_height"`
	WindowTitle  string  `yaml:"window_title"`
	Resizable    bool    `yaml:"resizable"`
	TilePixels   int     `yaml:"tile_pixels"` // Sprite resolution, independent of zoom
	Background   [3]int  `yaml:"background"`
	MinFPS       float64 `yaml:"min_fps"` // Warn when drawing falls below this rate, 0 disables
}

type LevelConfig struct {
	MapFile           string             `yaml:"map_file"`
	TilesFile         string             `yaml:"tiles_file"`
	GroupName         string             `yaml:"group_name"`
	RotationOverrides []RotationOverride `yaml:"rotation_overrides,omitempty"`
}

// RotationOverride pins the base rotation of one T-junction cell.
type RotationOverride struct {
	Row      int `yaml:"row"`
	Col      int `yaml:"col"`
	Rotation int `yaml:"rotation"`
}

type CameraConfig struct {
	Padding float64 `yaml:"padding"`
}

type PatrolConfig struct {
	MoveSpeed      float64      `yaml:"move_speed"`
	ArriveDistance float64      `yaml:"arrive_distance"`
	Waypoints      [][2]float64 `yaml:"waypoints"`
	Color          [3]int       `yaml:"color"`
}

type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`    // Linear gain, 0 mutes
	Frequency  float64 `yaml:"frequency"` // Base pitch of the movement sound
}

type LocaleConfig struct {
	Dir      string `yaml:"dir"`
	Language string `yaml:"language"`
	Domain   string `yaml:"domain"`
}

// TileConfig is the tile catalog document (assets/tiles.yaml)
type TileConfig struct {
	TileData map[string]TileData `yaml:"tiles"`
}

// TileData describes how one tile kind looks
type TileData struct {
	Name        string  `yaml:"name"`
	Code        int     `yaml:"code"`
	Letter      string  `yaml:"letter"`
	Color       [3]int  `yaml:"color"`
	StrokeWidth float64 `yaml:"stroke_width"`
	Radius      float64 `yaml:"radius,omitempty"` // Pellet dot radius as a fraction of a cell
	DoubleLine  bool    `yaml:"double_line,omitempty"`
}

// LoadConfig loads the configuration from a yaml file and fills defaults
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  960,
			ScreenHeight: 1000,
			WindowTitle:  "PacStudent",
			Resizable:    true,
			TilePixels:   32,
			MinFPS:       30,
		},
		Level: LevelConfig{
			MapFile:   "assets/levels/pacstudent.map",
			TilesFile: "assets/tiles.yaml",
			GroupName: "Generated Level",
		},
		Camera: CameraConfig{Padding: 1},
		Patrol: PatrolConfig{
			MoveSpeed:      2.0,
			ArriveDistance: 0.1,
			Waypoints:      [][2]float64{{2, -2}, {5, -2}, {5, -4}, {2, -4}},
			Color:          [3]int{255, 220, 0},
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.4,
			Frequency:  440,
		},
		Locale: LocaleConfig{
			Dir:      "locales",
			Language: "en_GB",
			Domain:   "default",
		},
	}
}

// applyDefaults restores defaults for fields a partial yaml left at zero
func (c *Config) applyDefaults() {
	def := Default()
	if c.Display.ScreenWidth <= 0 {
		c.Display.ScreenWidth = def.Display.ScreenWidth
	}
	if c.Display.ScreenHeight <= 0 {
		c.Display.ScreenHeight = def.Display.ScreenHeight
	}
	if c.Display.TilePixels <= 0 {
		c.Display.TilePixels = def.Display.TilePixels
	}
	if c.Level.GroupName == "" {
		c.Level.GroupName = def.Level.GroupName
	}
	if c.Patrol.MoveSpeed <= 0 {
		c.Patrol.MoveSpeed = def.Patrol.MoveSpeed
	}
	if c.Patrol.ArriveDistance <= 0 {
		c.Patrol.ArriveDistance = def.Patrol.ArriveDistance
	}
	if len(c.Patrol.Waypoints) == 0 {
		c.Patrol.Waypoints = def.Patrol.Waypoints
	}
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = def.Audio.SampleRate
	}
	if c.Audio.Frequency <= 0 {
		c.Audio.Frequency = def.Audio.Frequency
	}
}

// Validate checks values that have no sensible default
func (c *Config) Validate() error {
	if c.Level.MapFile == "" {
		return fmt.Errorf("level.map_file must be set")
	}
	for i, o := range c.Level.RotationOverrides {
		if o.Rotation%90 != 0 || o.Rotation < 0 || o.Rotation >= 360 {
			return fmt.Errorf("level.rotation_overrides[%d]: rotation %d is not a quarter turn", i, o.Rotation)
		}
		if o.Row < 0 || o.Col < 0 {
			return fmt.Errorf("level.rotation_overrides[%d]: negative cell (%d,%d)", i, o.Row, o.Col)
		}
	}
	if c.Audio.Volume < 0 {
		return fmt.Errorf("audio.volume must not be negative")
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

// GetAspectRatio returns width over height of the configured window
func (c *Config) GetAspectRatio() float64 {
	return float64(c.Display.ScreenWidth) / float64(c.Display.ScreenHeight)
}

// GetRotationOverrides converts the configured overrides for the expander
func (c *Config) GetRotationOverrides() level.Overrides {
	if len(c.Level.RotationOverrides) == 0 {
		return nil
	}
	overrides := make(level.Overrides, len(c.Level.RotationOverrides))
	for _, o := range c.Level.RotationOverrides {
		overrides[level.Cell{Row: o.Row, Col: o.Col}] = level.Rotation(o.Rotation)
	}
	return overrides
}
