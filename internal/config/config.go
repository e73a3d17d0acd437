package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the whole file, one field per section.
type Config struct {
	Game     GameConfig     `toml:"game" yaml:"game"`
	AI       AIConfig       `toml:"ai" yaml:"ai"`
	Protocol ProtocolConfig `toml:"protocol" yaml:"protocol"`
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
	RunLog   RunLogConfig   `toml:"runlog" yaml:"runlog"`
	Display  DisplayConfig  `toml:"display" yaml:"display"`
}

// GameConfig holds the rules of a round and where its map comes from.
type GameConfig struct {
	Map             string        `toml:"map" yaml:"map"`
	MapEncoding     string        `toml:"map_encoding" yaml:"map_encoding"` // "" (utf-8) or "cp437"
	FrameRate       int           `toml:"frame_rate" yaml:"frame_rate"`     // ticks per second
	PowerupDuration time.Duration `toml:"powerup_duration" yaml:"powerup_duration"`
	RespawnVillains bool          `toml:"respawn_villains" yaml:"respawn_villains"`
	VillainBehavior string        `toml:"villain_behavior" yaml:"villain_behavior"` // "smart", "random" or "remote"
	Seed            int64         `toml:"seed" yaml:"seed"`                         // 0 picks one from the clock
}

// AIConfig tunes the villain planner.
type AIConfig struct {
	MaxDepth       int           `toml:"max_depth" yaml:"max_depth"`
	SmartInterval  time.Duration `toml:"smart_interval" yaml:"smart_interval"`
	RandomInterval time.Duration `toml:"random_interval" yaml:"random_interval"`
}

// ProtocolConfig sizes the message queue and the grid a REGISTRATION
// starts from.
type ProtocolConfig struct {
	QueueSize int `toml:"queue_size" yaml:"queue_size"`
	Width     int `toml:"width" yaml:"width"`
	Height    int `toml:"height" yaml:"height"`
}

// LoggingConfig selects level, encoding and destination of the logger.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
	File   string `toml:"file" yaml:"file"`     // empty discards logs
}

// RunLogConfig controls the per-round statistics file.
type RunLogConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Path    string `toml:"path" yaml:"path"` // empty means $XDG_DATA_HOME/pascman/runs.jsonl
}

// DisplayConfig picks how the terminal draws the maze.
type DisplayConfig struct {
	Theme string `toml:"theme" yaml:"theme"` // "classic", "ascii" or "cp437"
}

// Villain behaviours.
const (
	BehaviorSmart  = "smart"
	BehaviorRandom = "random"
	BehaviorRemote = "remote"
)

// Load reads path, picking the decoder from the file extension, on top of
// the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Map:             "map.txt",
			FrameRate:       30,
			PowerupDuration: 8 * time.Second,
			RespawnVillains: true,
			VillainBehavior: BehaviorSmart,
		},
		AI: AIConfig{
			MaxDepth:       64,
			SmartInterval:  250 * time.Millisecond,
			RandomInterval: 500 * time.Millisecond,
		},
		Protocol: ProtocolConfig{
			QueueSize: 256,
			Width:     30,
			Height:    20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Display: DisplayConfig{
			Theme: "classic",
		},
	}
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Game.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("game.frame_rate must be positive, got %d", c.Game.FrameRate))
	}
	if c.Game.PowerupDuration <= 0 {
		errs = append(errs, fmt.Errorf("game.powerup_duration must be positive, got %s", c.Game.PowerupDuration))
	}
	switch c.Game.VillainBehavior {
	case BehaviorSmart, BehaviorRandom, BehaviorRemote:
	default:
		errs = append(errs, fmt.Errorf("game.villain_behavior %q is not smart, random or remote", c.Game.VillainBehavior))
	}
	switch strings.ToLower(c.Game.MapEncoding) {
	case "", "utf-8", "utf8", "cp437":
	default:
		errs = append(errs, fmt.Errorf("game.map_encoding %q is not supported", c.Game.MapEncoding))
	}
	if c.AI.MaxDepth <= 0 {
		errs = append(errs, fmt.Errorf("ai.max_depth must be positive, got %d", c.AI.MaxDepth))
	}
	if c.AI.SmartInterval <= 0 || c.AI.RandomInterval <= 0 {
		errs = append(errs, errors.New("ai intervals must be positive"))
	}
	if c.Protocol.QueueSize <= 0 {
		errs = append(errs, fmt.Errorf("protocol.queue_size must be positive, got %d", c.Protocol.QueueSize))
	}
	if c.Protocol.Width <= 0 || c.Protocol.Height <= 0 {
		errs = append(errs, fmt.Errorf("protocol grid %dx%d must be positive", c.Protocol.Width, c.Protocol.Height))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q is not json or console", c.Logging.Format))
	}
	switch c.Display.Theme {
	case "classic", "ascii", "cp437":
	default:
		errs = append(errs, fmt.Errorf("display.theme %q is unknown", c.Display.Theme))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// TickInterval is the wall time between two ticks.
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Game.FrameRate)
}
