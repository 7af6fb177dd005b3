package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Config defines the structure of the jira-scripts configuration.
type Config struct {
	URL       string `yaml:"url"`
	Username  string `yaml:"username"`
	Token     string `yaml:"token"`
	BoardName string `yaml:"board_name,omitempty"`
}

// configFilePath returns the absolute path to the configuration file.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".jira-scripts.yaml"), nil
}

// Load loads the configuration from the file and applies environment
// overrides. JIRA_SERVER, JIRA_USERNAME and JIRA_API_TOKEN win over the
// file, so the tool keeps working in environments that only set env vars.
func Load() (Config, error) {
	var cfg Config
	path, err := configFilePath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Fine as long as the env vars carry the credentials.
	case err != nil:
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("JIRA_SERVER"); v != "" {
		cfg.URL = v
	}
	if v := os.Getenv("JIRA_USERNAME"); v != "" {
		cfg.Username = v
	}
	if v := os.Getenv("JIRA_API_TOKEN"); v != "" {
		cfg.Token = v
	}
}

// Validate checks that the fields needed for API calls are present.
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("jira server URL is not set, use 'jira-scripts config set url [url]' or JIRA_SERVER")
	}
	if c.Username == "" {
		return fmt.Errorf("jira username is not set, use 'jira-scripts config set username [user]' or JIRA_USERNAME")
	}
	if c.Token == "" {
		return fmt.Errorf("jira API token is not set, use 'jira-scripts config set token [token]' or JIRA_API_TOKEN")
	}
	return nil
}

// Save saves the configuration to the file.
func Save(cfg Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file to %s: %w", path, err)
	}
	return nil
}

// SetValue updates a specific configuration key.
func SetValue(key, value string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	switch key {
	case "url":
		cfg.URL = value
	case "username":
		cfg.Username = value
	case "token":
		cfg.Token = value
	case "board":
		cfg.BoardName = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	return Save(cfg)
}

// PrintRaw prints the raw configuration (for view command).
func PrintRaw(cfg Config) {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		fmt.Printf("Error formatting config: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

// PrintMasked prints the configuration with sensitive parts masked (for show command).
func PrintMasked(cfg Config) {
	fmt.Printf("Jira URL: %s\n", cfg.URL)
	fmt.Printf("Username: %s\n", cfg.Username)
	// Mask the token for security
	if len(cfg.Token) > 8 {
		fmt.Printf("API Token: %s...%s\n", cfg.Token[:4], cfg.Token[len(cfg.Token)-4:])
	} else {
		fmt.Printf("API Token: %s\n", cfg.Token)
	}
	fmt.Printf("Default Board: %s\n", cfg.BoardName)
}
