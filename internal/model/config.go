package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// SoundConfig holds settings for the bell sound cue.
type SoundConfig struct {
	// BellPath is the audio asset handed to the platform player.
	BellPath string `mapstructure:"bell_path" yaml:"bell_path"`

	// Enabled controls whether sound cues play at all.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// LogConfig holds settings for the diagnostics log file.
type LogConfig struct {
	// Path is where structured diagnostics are written. The dashboard
	// owns the terminal, so logs never go to stdout.
	Path string `mapstructure:"path" yaml:"path"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	// Technicians is the fixed roster of assignable workers.
	Technicians []Technician `mapstructure:"technicians" yaml:"technicians"`

	Sound SoundConfig `mapstructure:"sound" yaml:"sound"`
	Log   LogConfig   `mapstructure:"log" yaml:"log"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/somfix/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "somfix", "config.yaml")
}

// defaultAppConfig returns a sensible default configuration with the
// stock single-technician roster.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Technicians: []Technician{
			{ID: "tech_default_001", Name: "Default Technician"},
		},
		Sound: SoundConfig{
			BellPath: "assets/bell.mp3",
			Enabled:  true,
		},
		Log: LogConfig{
			Path: defaultLogPath(),
		},
	}
}

func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "somfix.log")
	}
	return filepath.Join(home, ".config", "somfix", "somfix.log")
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("sound.bell_path", "assets/bell.mp3")
	v.SetDefault("sound.enabled", true)
	v.SetDefault("log.path", defaultLogPath())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if len(cfg.Technicians) == 0 {
		cfg.Technicians = defaultAppConfig().Technicians
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("technicians", cfg.Technicians)
	v.Set("sound", cfg.Sound)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
