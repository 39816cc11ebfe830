package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const DefaultThemeName = "default"

// Theme holds the lipgloss colours of the keypad
type Theme struct {
	Digit    string `json:"digit"`
	Operator string `json:"operator"`
	Function string `json:"function"`
	Display  string `json:"display"`
	Accent   string `json:"accent"`
}

// DefaultTheme mirrors the classic dark calculator palette
func DefaultTheme() Theme {
	return Theme{
		Digit:    "245",
		Operator: "214",
		Function: "250",
		Display:  "255",
		Accent:   "62",
	}
}

// Valid reports whether every colour is set
func (t Theme) Valid() bool {
	return t.Digit != "" && t.Operator != "" && t.Function != "" && t.Display != "" && t.Accent != ""
}

type Config struct {
	Themes       map[string]Theme `json:"themes"`
	ActiveTheme  string           `json:"active_theme"`
	currentTheme *Theme
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.setCurrentTheme(); err != nil {
		return nil, fmt.Errorf("failed to set current theme: %w", err)
	}

	return config, nil
}

func (c *Config) IsValid() bool {
	return c.currentTheme != nil && c.currentTheme.Valid()
}

// Current returns the active theme, or the default one when unset
func (c *Config) Current() Theme {
	if c.currentTheme == nil || !c.currentTheme.Valid() {
		return DefaultTheme()
	}
	return *c.currentTheme
}

// Use makes name the active theme
func (c *Config) Use(name string) error {
	if _, exists := c.Themes[name]; !exists {
		return fmt.Errorf("theme '%s' does not exist", name)
	}
	c.ActiveTheme = name
	return c.setCurrentTheme()
}

func getConfigPath() (string, error) {
	var configDir string

	// Use CALCPAD_HOME if set, otherwise use user's home directory
	if home := os.Getenv("CALCPAD_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".calcpad", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func defaultConfig() *Config {
	return &Config{
		Themes: map[string]Theme{
			DefaultThemeName: DefaultTheme(),
		},
		ActiveTheme: DefaultThemeName,
	}
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := defaultConfig()

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	if err := ensureConfigDir(configPath); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return saveConfig(c, configPath)
}

func (c *Config) setCurrentTheme() error {
	if len(c.Themes) == 0 {
		return fmt.Errorf("no themes defined")
	}

	theme, exists := c.Themes[c.ActiveTheme]
	if !exists {
		// If active theme doesn't exist, try to use the first available theme
		for name, t := range c.Themes {
			c.ActiveTheme = name
			theme = t
			exists = true
			break
		}
	}

	if !exists {
		return fmt.Errorf("no valid themes found")
	}

	c.currentTheme = &theme
	return nil
}
