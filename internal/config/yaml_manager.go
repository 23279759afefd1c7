package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/penwyp/xtask/internal/errors"
	"gopkg.in/yaml.v3"
)

// Format represents the configuration file format
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// yamlConfigManager supports both JSON and YAML configuration files
type yamlConfigManager struct {
	configPath string
	format     Format
	mu         sync.Mutex
}

// NewYAMLConfigManager creates a config manager that supports both JSON and YAML
func NewYAMLConfigManager(configPath string) (Manager, error) {
	if configPath == "" {
		return nil, errors.New(errors.ErrTypeConfig, "config path cannot be empty")
	}

	return &yamlConfigManager{
		configPath: configPath,
		format:     formatFor(configPath),
	}, nil
}

// formatFor picks the format from the file extension. Unknown extensions are YAML.
func formatFor(configPath string) Format {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

func (m *yamlConfigManager) Path() string {
	return m.configPath
}

// Load reads the configuration file on top of Default. A missing file is not
// an error: the defaults are returned as-is.
func (m *yamlConfigManager) Load() (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	config := Default()

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, errors.Wrap(errors.ErrTypeConfig, "failed to read config file", err)
	}

	switch m.format {
	case FormatJSON:
		if err := json.Unmarshal(data, config); err != nil {
			// Try YAML as fallback
			config = Default()
			if yamlErr := yaml.Unmarshal(data, config); yamlErr != nil {
				return nil, errors.Wrap(errors.ErrTypeConfig, "failed to parse config as JSON", err)
			}
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			// Try JSON as fallback
			config = Default()
			if jsonErr := json.Unmarshal(data, config); jsonErr != nil {
				return nil, errors.Wrap(errors.ErrTypeConfig, "failed to parse config as YAML", err)
			}
		}
	}

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves the configuration file in the appropriate format
func (m *yamlConfigManager) Save(config *Config) error {
	if err := Validate(config); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var data []byte
	var err error

	switch m.format {
	case FormatJSON:
		data, err = json.MarshalIndent(config, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(config)
		if err == nil {
			data = append([]byte(yamlHeader), data...)
		}
	default:
		return errors.Newf(errors.ErrTypeConfig, "unknown format: %s", m.format)
	}
	if err != nil {
		return errors.Wrap(errors.ErrTypeConfig, "failed to marshal config", err)
	}

	return m.writeAtomic(data)
}

// CreateDefaultConfig writes Default to the config path. An existing file is
// left untouched.
func (m *yamlConfigManager) CreateDefaultConfig() error {
	if _, err := os.Stat(m.configPath); err == nil {
		return errors.Newf(errors.ErrTypeConfig, "config file already exists: %s", m.configPath)
	}
	return m.Save(Default())
}

const yamlHeader = `# xtask configuration
# remote.host:           marker a URI must contain to be accepted
# remote.suffix:         appended to the lower-cased owner to form the remote name
# remote.default_branch: branch checked out before removing the tracked remote

`

func (m *yamlConfigManager) writeAtomic(data []byte) error {
	dir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.ErrTypeConfig, "failed to create config directory", err)
	}

	// Atomic write: write to temp file then rename
	tmpFile := m.configPath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return errors.Wrap(errors.ErrTypeConfig, "failed to write temp config file", err)
	}

	if err := os.Rename(tmpFile, m.configPath); err != nil {
		os.Remove(tmpFile)
		return errors.Wrap(errors.ErrTypeConfig, "failed to save config file", err)
	}

	return nil
}

// Validate rejects configurations the remote commands cannot work with.
func Validate(config *Config) error {
	if config == nil {
		return errors.New(errors.ErrTypeConfig, "config is nil")
	}
	if strings.TrimSpace(config.Remote.Host) == "" {
		return errors.New(errors.ErrTypeConfig, "remote.host cannot be empty")
	}
	if config.Remote.Suffix == "" {
		return errors.New(errors.ErrTypeConfig, "remote.suffix cannot be empty")
	}
	if strings.ContainsAny(config.Remote.Suffix, "/ \t\n") {
		return errors.Newf(errors.ErrTypeConfig, "remote.suffix %q must not contain '/' or whitespace", config.Remote.Suffix)
	}
	if strings.TrimSpace(config.Remote.DefaultBranch) == "" {
		return errors.New(errors.ErrTypeConfig, "remote.default_branch cannot be empty")
	}
	if strings.TrimSpace(config.Git.Binary) == "" {
		return errors.New(errors.ErrTypeConfig, "git.binary cannot be empty")
	}
	return nil
}

// Resolve returns the config path to use: explicit wins, otherwise the
// default file name under root.
func Resolve(explicit, root string) string {
	if explicit != "" {
		return explicit
	}
	return filepath.Join(root, DefaultConfigFileName)
}

// String renders the config for debug output.
func (c *Config) String() string {
	return fmt.Sprintf("host=%s suffix=%s default_branch=%s git=%s",
		c.Remote.Host, c.Remote.Suffix, c.Remote.DefaultBranch, c.Git.Binary)
}
