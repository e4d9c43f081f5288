package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Config represents the askbetter configuration.
type Config struct {
	Provider         string  `json:"provider"`
	Model            string  `json:"model"`
	Format           string  `json:"format"`
	MaxQuestionBytes int     `json:"maxQuestionBytes"`
	RetryBudget      int     `json:"retryBudget"`
	TimeoutSeconds   int     `json:"timeoutSeconds"`
	Temperature      float64 `json:"temperature"`
	Seed             int     `json:"seed,omitempty"`
	RubricFile       string  `json:"rubricFile,omitempty"`
}

// Default returns a Config with all defaults applied. Temperature 0 keeps
// the generation step as deterministic as the provider allows.
func Default() Config {
	return Config{
		Provider:         "openai",
		Model:            "gpt-4o-mini",
		Format:           "json",
		MaxQuestionBytes: 8000,
		RetryBudget:      2,
		TimeoutSeconds:   120,
		Temperature:      0,
	}
}

// ConfigDir returns the platform-appropriate config directory for askbetter.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "askbetter"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "askbetter"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "askbetter"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "askbetter"), nil
	default:
		return filepath.Join(home, ".config", "askbetter"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags (only non-zero values
// should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Provider != "" {
		dst.Provider = src.Provider
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.MaxQuestionBytes > 0 {
		dst.MaxQuestionBytes = src.MaxQuestionBytes
	}
	if src.RetryBudget > 0 {
		dst.RetryBudget = src.RetryBudget
	}
	if src.TimeoutSeconds > 0 {
		dst.TimeoutSeconds = src.TimeoutSeconds
	}
	if src.Temperature > 0 {
		dst.Temperature = src.Temperature
	}
	if src.Seed != 0 {
		dst.Seed = src.Seed
	}
	if src.RubricFile != "" {
		dst.RubricFile = src.RubricFile
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("ASKBETTER_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("ASKBETTER_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("ASKBETTER_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("ASKBETTER_MAX_QUESTION_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxQuestionBytes = n
		}
	}
	if v := os.Getenv("ASKBETTER_RETRY_BUDGET"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RetryBudget = n
		}
	}
	if v := os.Getenv("ASKBETTER_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSeconds = n
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["provider"]; ok && v != "" {
		cfg.Provider = v
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Model = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["retryBudget"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RetryBudget = n
		}
	}
	if v, ok := overrides["timeoutSeconds"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSeconds = n
		}
	}
	if v, ok := overrides["maxQuestionBytes"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxQuestionBytes = n
		}
	}
	if v, ok := overrides["temperature"]; ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Temperature = f
		}
	}
	if v, ok := overrides["seed"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Seed = n
		}
	}
	if v, ok := overrides["rubricFile"]; ok && v != "" {
		cfg.RubricFile = v
	}
}

// SetField sets a single config field by key name. Returns error if key is
// unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "provider":
		cfg.Provider = value
	case "model":
		cfg.Model = value
	case "format":
		cfg.Format = value
	case "maxQuestionBytes":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxQuestionBytes must be an integer: %w", err)
		}
		cfg.MaxQuestionBytes = n
	case "retryBudget":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("retryBudget must be an integer: %w", err)
		}
		cfg.RetryBudget = n
	case "timeoutSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeoutSeconds must be an integer: %w", err)
		}
		cfg.TimeoutSeconds = n
	case "temperature":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("temperature must be a number: %w", err)
		}
		cfg.Temperature = f
	case "seed":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("seed must be an integer: %w", err)
		}
		cfg.Seed = n
	case "rubricFile":
		cfg.RubricFile = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
