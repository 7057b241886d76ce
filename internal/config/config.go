package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/kartoza/kartoza-meeting-compositor/internal/models"
	"github.com/kartoza/kartoza-meeting-compositor/internal/render"
)

const (
	// DefaultConfigDir is the default configuration directory
	DefaultConfigDir = ".config/kartoza-meeting-compositor"
	// ConfigFileName is the name of the configuration file
	ConfigFileName = "config.json"
)

// YouTubeConfig holds OAuth client credentials for uploads.
type YouTubeConfig struct {
	ClientID       string `json:"client_id,omitempty"`
	ClientSecret   string `json:"client_secret,omitempty"`
	DefaultPrivacy string `json:"default_privacy,omitempty"` // public, unlisted, private
}

// Config holds the application configuration
type Config struct {
	DefaultLayout   models.LayoutMode `json:"default_layout"`
	BackgroundColor string            `json:"background_color"`
	BackgroundImage string            `json:"background_image,omitempty"`
	EncoderCRF      int               `json:"encoder_crf"`
	EncoderPreset   string            `json:"encoder_preset"`
	Notifications   bool              `json:"notifications"`
	YouTube         YouTubeConfig     `json:"youtube,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		DefaultLayout:   models.LayoutSideBySide,
		BackgroundColor: models.DefaultBackgroundColor,
		EncoderCRF:      render.DefaultCRF,
		EncoderPreset:   render.DefaultPreset,
		Notifications:   true,
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfigDir
	}
	return filepath.Join(home, DefaultConfigDir)
}

// EnsureDirectories creates the configuration directory
func EnsureDirectories() error {
	return os.MkdirAll(GetConfigDir(), 0755)
}

// Load loads the configuration from disk
func Load() (*Config, error) {
	configPath := filepath.Join(GetConfigDir(), ConfigFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save saves the configuration to disk
func Save(cfg *Config) error {
	if err := EnsureDirectories(); err != nil {
		return err
	}

	configPath := filepath.Join(GetConfigDir(), ConfigFileName)

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
