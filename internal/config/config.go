package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all game configuration
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Player  PlayerConfig  `yaml:"player"`
	Content ContentConfig `yaml:"content"`
	Save    SaveConfig    `yaml:"save"`
	Redis   RedisConfig   `yaml:"redis"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig holds per-session gameplay settings
type GameConfig struct {
	InventorySlots  int `yaml:"inventory_slots"`
	StartingCoins   int `yaml:"starting_coins"`
	AutosaveSeconds int `yaml:"autosave_seconds"` // 0 disables autosave
}

// PlayerConfig identifies the local player
type PlayerConfig struct {
	ID       string `yaml:"id"`
	Username string `yaml:"username"`
	FarmName string `yaml:"farm_name"`
}

// ContentConfig points at the item and shop asset files. Empty paths fall
// back to the built-in sample content.
type ContentConfig struct {
	ItemsPath string `yaml:"items_path"`
	ShopsPath string `yaml:"shops_path"`
}

// SaveConfig selects the persistence backend
type SaveConfig struct {
	Backend string `yaml:"backend"` // "file" or "redis"
	Dir     string `yaml:"dir"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Address   string `yaml:"address"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration and fills defaults
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is present
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Game.InventorySlots == 0 {
		cfg.Game.InventorySlots = 12
	}
	if cfg.Game.StartingCoins == 0 {
		cfg.Game.StartingCoins = 100
	}
	if cfg.Player.ID == "" {
		cfg.Player.ID = "local"
	}
	if cfg.Save.Backend == "" {
		cfg.Save.Backend = "file"
	}
	if cfg.Save.Dir == "" {
		cfg.Save.Dir = "./saves"
	}
	if cfg.Redis.Address == "" {
		cfg.Redis.Address = "localhost:6379"
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "homestead:save:"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

func (cfg *Config) validate() error {
	if cfg.Game.InventorySlots < 0 {
		return fmt.Errorf("game.inventory_slots must not be negative (got %d)", cfg.Game.InventorySlots)
	}
	if cfg.Game.StartingCoins < 0 {
		return fmt.Errorf("game.starting_coins must not be negative (got %d)", cfg.Game.StartingCoins)
	}
	if cfg.Game.AutosaveSeconds < 0 {
		return fmt.Errorf("game.autosave_seconds must not be negative (got %d)", cfg.Game.AutosaveSeconds)
	}
	switch cfg.Save.Backend {
	case "file", "redis":
	default:
		return fmt.Errorf("save.backend must be file or redis (got %q)", cfg.Save.Backend)
	}
	return nil
}
