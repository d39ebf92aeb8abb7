package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `qa:
  app_url: https://example.test/index.php
  login_url: https://example.test/index.php?route=account/login
  credentials:
    email: qa@example.test
    password: secret
  browser: chrome
  headless: true
  incognito: true
  flash: false
  remote:
    remote_url: ws://grid:4444/playwright
  test_data:
    user_registration: testdata/user_registration.csv
  report:
    dir: reports
  logger:
    env: dev
    level: debug

uat:
  app_url: https://uat.example.test
  login_url: https://uat.example.test/login
  browser: firefox
`

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	path := filepath.Join(dir, "configs", "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t)

	cfg, err := LoadFile(path, "qa")
	require.NoError(t, err)

	assert.Equal(t, "qa", cfg.Env)
	assert.Equal(t, "https://example.test/index.php?route=account/login", cfg.LoginURL)
	assert.Equal(t, "qa@example.test", cfg.Credentials.Email)
	assert.Equal(t, "chrome", cfg.Browser)
	assert.True(t, cfg.Headless)
	assert.True(t, cfg.Incognito)
	assert.Equal(t, "ws://grid:4444/playwright", cfg.Remote.URL)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadFileSelectsSection(t *testing.T) {
	path := writeConfig(t)

	cfg, err := LoadFile(path, "uat")
	require.NoError(t, err)
	assert.Equal(t, "firefox", cfg.Browser)
	assert.Equal(t, "https://uat.example.test/login", cfg.LoginURL)
}

func TestLoadFileUnknownSection(t *testing.T) {
	path := writeConfig(t)

	_, err := LoadFile(path, "staging")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"staging"`)
	assert.Contains(t, err.Error(), "qa, uat")
}

func TestLoadFileLoggerDefaults(t *testing.T) {
	path := writeConfig(t)

	cfg, err := LoadFile(path, "uat")
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Logger.Env)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadHonorsTestEnv(t *testing.T) {
	path := writeConfig(t)
	t.Setenv("TEST_CONFIG", path)
	t.Setenv("TEST_ENV", "uat")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "uat", cfg.Env)
}

func TestLoadDefaultsToQA(t *testing.T) {
	path := writeConfig(t)
	t.Setenv("TEST_CONFIG", path)
	t.Setenv("TEST_ENV", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "qa", cfg.Env)
}

func TestResolve(t *testing.T) {
	path := writeConfig(t)

	cfg, err := LoadFile(path, "qa")
	require.NoError(t, err)

	root := filepath.Dir(filepath.Dir(path))
	assert.Equal(t, filepath.Join(root, "testdata", "user_registration.csv"),
		cfg.Resolve("testdata/user_registration.csv"))

	abs := filepath.Join(string(filepath.Separator), "opt", "data.csv")
	assert.Equal(t, abs, cfg.Resolve(abs))
	assert.Equal(t, "", cfg.Resolve(""))
}
