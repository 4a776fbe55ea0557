package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Pandora account email; the password lives in the keyring
	Email string

	// Proxy URI for all requests (http, https, socks5, socks5h);
	// empty means the system default
	Proxy string

	// Audio format requested for playlist fragments
	AudioFormat string

	// Pixel size used when printing art URLs
	ArtSize int
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("audio_format", "aacplus")
	v.SetDefault("art_size", 500)

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// Read from environment variables
	v.SetEnvPrefix("PANDORA")
	v.AutomaticEnv()

	// Map config to struct
	cfg := &Config{
		Email:       v.GetString("email"),
		Proxy:       v.GetString("proxy"),
		AudioFormat: v.GetString("audio_format"),
		ArtSize:     v.GetInt("art_size"),
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "pandora")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// Save writes configuration to file
func (c *Config) Save() error {
	v := viper.New()

	// Set config file path
	configDir := getConfigDir()
	configFile := filepath.Join(configDir, "config.yaml")

	// Set values in viper
	v.Set("email", c.Email)
	v.Set("proxy", c.Proxy)
	v.Set("audio_format", c.AudioFormat)
	v.Set("art_size", c.ArtSize)

	// Write to file
	return v.WriteConfigAs(configFile)
}
