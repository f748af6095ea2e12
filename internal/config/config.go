package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Storage  StorageConfig  `mapstructure:"storage"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Worker   WorkerConfig   `mapstructure:"worker"`
	Report   ReportConfig   `mapstructure:"report"`
	Drive    DriveConfig    `mapstructure:"drive"`
	Log      LogConfig      `mapstructure:"log"`
}

// StorageConfig represents shift database configuration
type StorageConfig struct {
	DatabaseFile string `mapstructure:"database_file"`
}

// CalendarConfig represents holiday calendar configuration
type CalendarConfig struct {
	// HolidaysFile is an optional text file of extra YYYY-MM-DD holiday
	// dates (regional holidays) merged with the built-in national list.
	HolidaysFile string `mapstructure:"holidays_file"`
}

// WorkerConfig identifies the worker on exported reports
type WorkerConfig struct {
	Name string `mapstructure:"name"`
	TIP  string `mapstructure:"tip"`
}

// ReportConfig represents report export configuration
type ReportConfig struct {
	OutputDir string `mapstructure:"output_dir"`
}

// DriveConfig represents Google Drive upload configuration
type DriveConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	TokenFile    string `mapstructure:"token_file"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. A missing config file is not an error
// when no explicit path was given; defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.shift-tracker")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !(configPath == "" && errors.As(err, &notFound)) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Drive.Enabled && c.Drive.ClientID == "" {
		return fmt.Errorf("drive.client_id is required when drive.enabled is true")
	}
	return nil
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Drive.ClientID = os.ExpandEnv(c.Drive.ClientID)
	c.Drive.ClientSecret = os.ExpandEnv(c.Drive.ClientSecret)
}

// dataDir returns the default application data directory
func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".shift-tracker")
}

// GetDatabaseFile returns the shift database path
func (c *StorageConfig) GetDatabaseFile() string {
	if c.DatabaseFile != "" {
		return c.DatabaseFile
	}
	return filepath.Join(dataDir(), "shifts.db")
}

// GetOutputDir returns the report export directory
func (c *ReportConfig) GetOutputDir() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return "."
}

// GetTokenFile returns the Drive token file path
func (c *DriveConfig) GetTokenFile() string {
	if c.TokenFile != "" {
		return c.TokenFile
	}
	return filepath.Join(dataDir(), "auth", "drive_token.json")
}
