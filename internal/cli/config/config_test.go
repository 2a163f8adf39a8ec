package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Equal(t, DefaultMaxRows, cfg.MaxRows)
	assert.Equal(t, DefaultIndent, cfg.Indent)
	assert.Equal(t, DefaultTruncateThreshold, cfg.TruncateThreshold)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.GetHistory().Enabled)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfig_FromFile(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	chdir(t, dir)

	content := `format: polars
max_rows: 50
history:
  enabled: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tabcode.yaml"), []byte(content), 0o644))

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "polars", cfg.Format)
	assert.Equal(t, 50, cfg.MaxRows)
	assert.True(t, cfg.GetHistory().Enabled)
	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultIndent, cfg.Indent)
	assert.Equal(t, filepath.Join(dir, "tabcode.yaml"), GetConfigFileUsed())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "tabcode.yaml"), []byte("format: polars\n"), 0o644))
	t.Setenv("TABCODE_FORMAT", "vector")
	t.Setenv("TABCODE_HISTORY_ENABLED", "true")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "vector", cfg.Format)
	assert.True(t, cfg.GetHistory().Enabled)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	ResetConfig()
	chdir(t, t.TempDir())

	t.Setenv("TABCODE_MAX_ROWS", "50")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("max-rows", DefaultMaxRows, "")
	flags.String("format", DefaultFormat, "")
	require.NoError(t, flags.Parse([]string{"--max-rows", "25"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.MaxRows, "changed flag beats env")
	assert.Equal(t, DefaultFormat, cfg.Format, "unchanged flag must not override")
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	ResetConfig()
	chdir(t, t.TempDir())

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("indent: 2\n"), 0o644))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Indent)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfig_UpwardSearch(t *testing.T) {
	ResetConfig()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "tabcode.yml"), []byte("format: vector\n"), 0o644))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "vector", cfg.Format)
	assert.Equal(t, filepath.Join(root, "tabcode.yml"), GetConfigFileUsed())
}

func TestValidate(t *testing.T) {
	valid := &Config{
		Format:            "pandas",
		MaxRows:           200,
		Indent:            4,
		TruncateThreshold: 10,
		OutputFormat:      "auto",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown format", func(c *Config) { c.Format = "tibble" }},
		{"unknown output", func(c *Config) { c.OutputFormat = "xml" }},
		{"negative max rows", func(c *Config) { c.MaxRows = -1 }},
		{"zero indent", func(c *Config) { c.Indent = 0 }},
		{"zero truncate threshold", func(c *Config) { c.TruncateThreshold = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := *valid
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestGetHistory_Defaults(t *testing.T) {
	var c Config
	h := c.GetHistory()
	assert.False(t, h.Enabled)
	assert.NotEmpty(t, h.Path)

	c.History = &HistoryConfig{Enabled: true}
	h = c.GetHistory()
	assert.True(t, h.Enabled)
	assert.NotEmpty(t, h.Path, "empty path falls back to the default")
}
