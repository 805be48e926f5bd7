package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, []string{".pdf", ".docx", ".doc", ".txt"}, cfg.ResumeExtensions)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.TimeoutSeconds)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"api_key": "test-key", "model": "gemini-2.5-pro", "data_dir": "/tmp/copilot", "timeout_seconds": 60}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, "/tmp/copilot", cfg.DataDir)
	assert.Equal(t, 60, cfg.TimeoutSeconds)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("INTERVIEW_COPILOT_MODEL", "gemini-2.5-flash")
	t.Setenv("INTERVIEW_COPILOT_DATA_DIR", "/env/data")
	t.Setenv("INTERVIEW_COPILOT_TIMEOUT_SECONDS", "120")

	cfg := FromEnv()
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, "/env/data", cfg.DataDir)
	assert.Equal(t, 120, cfg.TimeoutSeconds)
}

func TestFromEnv_InvalidTimeoutIgnored(t *testing.T) {
	t.Setenv("INTERVIEW_COPILOT_TIMEOUT_SECONDS", "not-a-number")
	assert.Zero(t, FromEnv().TimeoutSeconds)

	t.Setenv("INTERVIEW_COPILOT_TIMEOUT_SECONDS", "-5")
	assert.Zero(t, FromEnv().TimeoutSeconds)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.TimeoutSeconds = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.ResumeExtensions = []string{"pdf"}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	overrides := Config{APIKey: "flag-key", DataDir: "/flag/data"}
	merged := overrides.MergeWithDefaults(DefaultConfig())

	assert.Equal(t, "flag-key", merged.APIKey)
	assert.Equal(t, "/flag/data", merged.DataDir)
	assert.Equal(t, DefaultTimeoutSeconds, merged.TimeoutSeconds)
	assert.Equal(t, "info", merged.LogLevel)
	assert.NotEmpty(t, merged.ResumeExtensions)
}

func TestMergeWithDefaults_Precedence(t *testing.T) {
	// Env values sit beneath an explicit override and above defaults.
	env := Config{APIKey: "env-key", Model: "env-model"}
	flags := Config{Model: "flag-model"}
	merged := flags.MergeWithDefaults(env).MergeWithDefaults(DefaultConfig())

	assert.Equal(t, "flag-model", merged.Model)
	assert.Equal(t, "env-key", merged.APIKey)
	assert.Equal(t, "data", merged.DataDir)
}

func TestTimeout(t *testing.T) {
	cfg := Config{TimeoutSeconds: 90}
	assert.Equal(t, 90*time.Second, cfg.Timeout())

	cfg.TimeoutSeconds = 0
	assert.Equal(t, DefaultTimeoutSeconds*time.Second, cfg.Timeout())
}
