package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/penwyp/xtask/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewYAMLConfigManager(t *testing.T) {
	tests := []struct {
		name           string
		configPath     string
		expectedFormat Format
		expectError    bool
	}{
		{
			name:           "JSON file extension",
			configPath:     "/path/to/config.json",
			expectedFormat: FormatJSON,
		},
		{
			name:           "YAML file extension",
			configPath:     "/path/to/.xtask.yaml",
			expectedFormat: FormatYAML,
		},
		{
			name:           "YML file extension",
			configPath:     "/path/to/config.yml",
			expectedFormat: FormatYAML,
		},
		{
			name:           "Unknown extension defaults to YAML",
			configPath:     "/path/to/config.txt",
			expectedFormat: FormatYAML,
		},
		{
			name:        "Empty path returns error",
			configPath:  "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager, err := NewYAMLConfigManager(tt.configPath)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, errors.ErrTypeConfig, errors.GetType(err))
				assert.Nil(t, manager)
				return
			}
			require.NoError(t, err)
			ym := manager.(*yamlConfigManager)
			assert.Equal(t, tt.expectedFormat, ym.format)
			assert.Equal(t, tt.configPath, manager.Path())
		})
	}
}

func TestYAMLConfigManager_LoadMissingFileReturnsDefaults(t *testing.T) {
	manager, err := NewYAMLConfigManager(filepath.Join(t.TempDir(), ".xtask.yaml"))
	require.NoError(t, err)

	cfg, err := manager.Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestYAMLConfigManager_LoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".xtask.yaml")
	require.NoError(t, os.WriteFile(path, []byte("remote:\n  default_branch: trunk\n"), 0644))

	manager, err := NewYAMLConfigManager(path)
	require.NoError(t, err)

	cfg, err := manager.Load()
	require.NoError(t, err)
	assert.Equal(t, "trunk", cfg.Remote.DefaultBranch)
	assert.Equal(t, DefaultHost, cfg.Remote.Host)
	assert.Equal(t, DefaultSuffix, cfg.Remote.Suffix)
	assert.Equal(t, DefaultGitBinary, cfg.Git.Binary)
}

func TestYAMLConfigManager_LoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xtask.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"remote": {"suffix": "-dev"}}`), 0644))

	manager, err := NewYAMLConfigManager(path)
	require.NoError(t, err)

	cfg, err := manager.Load()
	require.NoError(t, err)
	assert.Equal(t, "-dev", cfg.Remote.Suffix)
	assert.Equal(t, DefaultBranch, cfg.Remote.DefaultBranch)
}

func TestYAMLConfigManager_LoadYAMLFromJSONExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xtask.json")
	require.NoError(t, os.WriteFile(path, []byte("remote:\n  suffix: -yaml\n"), 0644))

	manager, err := NewYAMLConfigManager(path)
	require.NoError(t, err)

	cfg, err := manager.Load()
	require.NoError(t, err)
	assert.Equal(t, "-yaml", cfg.Remote.Suffix)
}

func TestYAMLConfigManager_LoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unparseable", content: "remote: [unclosed"},
		{name: "suffix with slash", content: "remote:\n  suffix: a/b\n"},
		{name: "empty host", content: "remote:\n  host: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".xtask.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			manager, err := NewYAMLConfigManager(path)
			require.NoError(t, err)

			cfg, err := manager.Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Equal(t, errors.ErrTypeConfig, errors.GetType(err))
		})
	}
}

func TestYAMLConfigManager_SaveAndLoad(t *testing.T) {
	for _, name := range []string{".xtask.yaml", "xtask.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			manager, err := NewYAMLConfigManager(path)
			require.NoError(t, err)

			cfg := Default()
			cfg.Remote.Suffix = "-mirror"
			require.NoError(t, manager.Save(cfg))

			_, err = os.Stat(path + ".tmp")
			assert.True(t, os.IsNotExist(err))

			loaded, err := manager.Load()
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestYAMLConfigManager_CreateDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".xtask.yaml")
	manager, err := NewYAMLConfigManager(path)
	require.NoError(t, err)

	require.NoError(t, manager.CreateDefaultConfig())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# xtask configuration")
	assert.Contains(t, string(data), "default_branch: main")

	err = manager.CreateDefaultConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "/tmp/custom.yml", Resolve("/tmp/custom.yml", "/repo"))
	assert.Equal(t, filepath.Join("/repo", DefaultConfigFileName), Resolve("", "/repo"))
}
