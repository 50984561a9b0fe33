package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hpungsan/morsesub/internal/morse"
)

// Config holds application configuration.
type Config struct {
	// Messages are extra named messages, merged over the built-in table.
	// Values must be symbol strings over "*", "-" and "_".
	Messages map[string]string `json:"messages,omitempty"`

	// Workers caps the goroutines used by parallel solves.
	// 0 means runtime.NumCPU().
	Workers int `json:"workers,omitempty"`

	// SolveTimeoutSeconds bounds a single solve. 0 means no deadline.
	// The search itself is not interruptible; the deadline is checked
	// between chain stages and between candidates of a parallel stage.
	SolveTimeoutSeconds int `json:"solve_timeout_seconds,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// SolveTimeout returns the configured solve deadline, or 0 for none.
func (c *Config) SolveTimeout() time.Duration {
	if c == nil || c.SolveTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.SolveTimeoutSeconds) * time.Second
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if c.SolveTimeoutSeconds < 0 {
		return fmt.Errorf("solve_timeout_seconds must be non-negative, got %d", c.SolveTimeoutSeconds)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	for name, symbols := range c.Messages {
		if !morse.Valid(symbols) {
			return fmt.Errorf("message %q: invalid symbol string %q", name, symbols)
		}
	}
	return nil
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.morsesub.
func Load(baseDir string) (*Config, error) {
	return loadFile(filepath.Join(baseDir, "config.json"))
}

// LoadWithRepo loads configuration from both global (~/.morsesub) and repo
// (.morsesub) directories. The repo config is the nearest
// .morsesub/config.json found walking upward from startDir.
// Repo config takes precedence for scalar values; maps and arrays are merged.
// Either or both configs may be missing.
func LoadWithRepo(globalDir, startDir string) (*Config, error) {
	global, err := loadFileRaw(filepath.Join(globalDir, "config.json"))
	if err != nil {
		return nil, err
	}

	repo, err := loadFileRaw(FindRepoConfig(startDir))
	if err != nil {
		return nil, err
	}

	cfg := Merge(Merge(DefaultConfig(), global), repo)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindRepoConfig walks upward from startDir to find the nearest .morsesub/config.json.
// Returns the path if found, or empty string if not found.
func FindRepoConfig(startDir string) string {
	dir := startDir
	for {
		configPath := filepath.Join(dir, ".morsesub", "config.json")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	if configPath == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}

	return cfg, nil
}

// loadFile loads configuration from a specific file path.
// Returns default config if the file doesn't exist.
func loadFile(configPath string) (*Config, error) {
	raw, err := loadFileRaw(configPath)
	if err != nil {
		return nil, err
	}
	cfg := Merge(DefaultConfig(), raw)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars and for message names present
// in both; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.Workers = overlay.Workers
	if result.Workers == 0 {
		result.Workers = base.Workers
	}

	result.SolveTimeoutSeconds = overlay.SolveTimeoutSeconds
	if result.SolveTimeoutSeconds == 0 {
		result.SolveTimeoutSeconds = base.SolveTimeoutSeconds
	}

	result.LogLevel = strings.TrimSpace(overlay.LogLevel)
	if result.LogLevel == "" {
		result.LogLevel = base.LogLevel
	}

	result.Messages = mergeMessages(base.Messages, overlay.Messages)
	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// mergeMessages returns a new map with b's entries written over a's.
func mergeMessages(a, b map[string]string) map[string]string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	result := make(map[string]string, len(a)+len(b))
	for name, symbols := range a {
		result[strings.TrimSpace(name)] = symbols
	}
	for name, symbols := range b {
		result[strings.TrimSpace(name)] = symbols
	}
	return result
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range append(append([]string{}, a...), b...) {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
