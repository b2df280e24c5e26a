// Package config loads and validates the trainer's TOML configuration.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/VaibhavSomanna/AI-land/internal/exercise"
)

//go:embed sample_config.toml
var sampleConfig string

// Camera contains camera device settings.
type Camera struct {
	Index           int     `toml:"index"`
	Width           int     `toml:"width"`
	Height          int     `toml:"height"`
	FPS             int     `toml:"fps"`
	MotionThreshold float64 `toml:"motion_threshold"`
}

// Pose contains pose detection settings.
type Pose struct {
	MinDetectionConfidence float64 `toml:"min_detection_confidence"`
	MinTrackingConfidence  float64 `toml:"min_tracking_confidence"`
	MinJointVisibility     float64 `toml:"min_joint_visibility"`
}

// UI contains window and overlay settings.
type UI struct {
	Fullscreen    bool    `toml:"fullscreen"`
	FontScale     float64 `toml:"font_scale"`
	FontThickness int     `toml:"font_thickness"`
}

// Speech contains text-to-speech feedback settings.
type Speech struct {
	Enabled bool    `toml:"enabled"`
	Rate    int     `toml:"rate"`   // words per minute
	Volume  float64 `toml:"volume"` // 0.0 to 1.0
}

// Server contains the optional local status server settings.
type Server struct {
	Enabled bool   `toml:"enabled"`
	Bind    string `toml:"bind"`
}

// Storage contains data directory settings.
type Storage struct {
	DataDir string `toml:"data_dir"`
}

// PressThresholds are the shoulder press angle boundaries in degrees.
type PressThresholds struct {
	StartMin float64 `toml:"start_min"`
	StartMax float64 `toml:"start_max"`
	Up       float64 `toml:"up_threshold"`
	Down     float64 `toml:"down_threshold"`
}

// CurlThresholds are the angle boundaries for single-cutoff exercises.
type CurlThresholds struct {
	Start float64 `toml:"start_threshold"`
	Up    float64 `toml:"up_threshold"`
	Down  float64 `toml:"down_threshold"`
}

// Thresholds is the per-exercise angle threshold table. The alternating
// bicep curl shares the bicep curl entry.
type Thresholds struct {
	ShoulderPress  PressThresholds `toml:"shoulder_press"`
	BicepCurl      CurlThresholds  `toml:"bicep_curl"`
	TricepKickback CurlThresholds  `toml:"tricep_kickback"`
}

// Set converts the configured table into the tracker package's value type.
func (t Thresholds) Set() exercise.ThresholdSet {
	return exercise.ThresholdSet{
		ShoulderPress: exercise.PressThresholds{
			StartMin: t.ShoulderPress.StartMin,
			StartMax: t.ShoulderPress.StartMax,
			Up:       t.ShoulderPress.Up,
			Down:     t.ShoulderPress.Down,
		},
		BicepCurl: exercise.CurlThresholds{
			Start: t.BicepCurl.Start,
			Up:    t.BicepCurl.Up,
			Down:  t.BicepCurl.Down,
		},
		TricepKickback: exercise.CurlThresholds{
			Start: t.TricepKickback.Start,
			Up:    t.TricepKickback.Up,
			Down:  t.TricepKickback.Down,
		},
	}
}

// Config is the full application configuration, loaded once at startup and
// read-only afterwards.
type Config struct {
	Camera     Camera     `toml:"camera"`
	Pose       Pose       `toml:"pose"`
	UI         UI         `toml:"ui"`
	Speech     Speech     `toml:"speech"`
	Server     Server     `toml:"server"`
	Storage    Storage    `toml:"storage"`
	Thresholds Thresholds `toml:"thresholds"`
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join("~", ".ailand", "config.toml")
}

// Load reads the config file at path, layered over Default(). An empty path
// uses DefaultPath(); a missing file is not an error and yields defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	path = ExpandPath(path)

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg.normalize()
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// normalize expands user paths after decoding.
func (c *Config) normalize() {
	c.Storage.DataDir = ExpandPath(c.Storage.DataDir)
}

// Validate checks the configuration for values the rest of the application
// cannot work with.
func (c *Config) Validate() error {
	var problems []string

	if c.Camera.Width <= 0 || c.Camera.Height <= 0 {
		problems = append(problems, "camera resolution must be positive")
	}
	if c.Camera.FPS <= 0 {
		problems = append(problems, "camera fps must be positive")
	}
	for name, v := range map[string]float64{
		"min_detection_confidence": c.Pose.MinDetectionConfidence,
		"min_tracking_confidence":  c.Pose.MinTrackingConfidence,
		"min_joint_visibility":     c.Pose.MinJointVisibility,
	} {
		if v < 0 || v > 1 {
			problems = append(problems, fmt.Sprintf("pose %s must be between 0 and 1", name))
		}
	}
	if c.Speech.Rate <= 0 {
		problems = append(problems, "speech rate must be positive")
	}
	if c.Speech.Volume < 0 || c.Speech.Volume > 1 {
		problems = append(problems, "speech volume must be between 0 and 1")
	}
	if c.Server.Enabled && c.Server.Bind == "" {
		problems = append(problems, "server bind address required when server is enabled")
	}

	sp := c.Thresholds.ShoulderPress
	if sp.StartMin >= sp.StartMax {
		problems = append(problems, "shoulder_press start_min must be below start_max")
	}
	for name, th := range map[string]CurlThresholds{
		"bicep_curl":      c.Thresholds.BicepCurl,
		"tricep_kickback": c.Thresholds.TricepKickback,
	} {
		if th.Start <= 0 || th.Up <= 0 || th.Down <= 0 {
			problems = append(problems, fmt.Sprintf("%s thresholds must be positive", name))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}

// WriteSample writes the annotated sample config to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	path = ExpandPath(path)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}
