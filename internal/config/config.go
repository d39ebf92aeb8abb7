// Package config loads the per-environment settings for the test framework.
// The configuration file holds one section per environment (qa, uat, prod);
// TEST_ENV selects the section. The result is loaded once at startup and
// passed explicitly through constructors.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultEnv is used when TEST_ENV is unset.
	DefaultEnv = "qa"

	defaultFile = "configs/config.yaml"
)

type Config struct {
	AppURL      string      `yaml:"app_url"`
	LoginURL    string      `yaml:"login_url"`
	Credentials Credentials `yaml:"credentials"`
	Browser     string      `yaml:"browser"`
	Headless    bool        `yaml:"headless"`
	Incognito   bool        `yaml:"incognito"`
	Flash       bool        `yaml:"flash"`
	Remote      Remote      `yaml:"remote"`
	TestData    TestData    `yaml:"test_data"`
	Report      Report      `yaml:"report"`
	Logger      Logger      `yaml:"logger"`

	// Env is the section name the config was loaded from.
	Env string `yaml:"-"`

	baseDir string
}

type Credentials struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type Remote struct {
	URL string `yaml:"remote_url"`
}

type TestData struct {
	UserRegistration string `yaml:"user_registration"`
}

type Report struct {
	Dir        string `yaml:"dir"`
	HistoryDSN string `yaml:"history_dsn"`
	Migrations string `yaml:"migrations"`
}

type Logger struct {
	Env   string `yaml:"env"`
	Level string `yaml:"level"`
}

// Load reads the config file for the environment named by TEST_ENV.
// A .env file, if present, is applied first so TEST_ENV and credential
// overrides can live outside the repo.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path := os.Getenv("TEST_CONFIG")
	if path == "" {
		var err error
		path, err = findConfig()
		if err != nil {
			return nil, err
		}
	}
	return LoadFile(path, env("TEST_ENV", DefaultEnv))
}

// LoadFile reads one environment section from the given config file.
func LoadFile(path, environment string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var sections map[string]*Config
	if err := yaml.Unmarshal(raw, &sections); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg, ok := sections[environment]
	if !ok || cfg == nil {
		return nil, fmt.Errorf("config %s has no %q section (available: %s)",
			path, environment, strings.Join(sectionNames(sections), ", "))
	}

	cfg.Env = environment
	if cfg.Logger.Env == "" {
		cfg.Logger.Env = "dev"
	}
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = "info"
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	// config lives in <root>/configs; data paths are relative to <root>
	cfg.baseDir = filepath.Dir(filepath.Dir(abs))
	return cfg, nil
}

// Resolve turns a repo-relative data path (as written in the config file)
// into an absolute one. Absolute paths pass through.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.baseDir, path)
}

// findConfig walks up from the working directory so `go test` can run from
// any package directory.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for i := 0; i < 6; i++ {
		candidate := filepath.Join(dir, defaultFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("config file %s not found from working directory upward", defaultFile)
}

func sectionNames(sections map[string]*Config) []string {
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func env(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
