package config

// Config 配置文件结构
type Config struct {
	Version string       `json:"version" yaml:"version"`
	Remote  RemoteConfig `json:"remote" yaml:"remote"`
	Git     GitConfig    `json:"git" yaml:"git"`
}

// RemoteConfig 远程仓库命名与删除策略
type RemoteConfig struct {
	Host          string `json:"host" yaml:"host"`                     // URI 必须包含的主机标识，如 github.com
	Suffix        string `json:"suffix" yaml:"suffix"`                 // 派生远程名称的后缀
	DefaultBranch string `json:"default_branch" yaml:"default_branch"` // 删除当前跟踪的远程前切换到的分支
}

// GitConfig git 可执行文件配置
type GitConfig struct {
	Binary string `json:"binary" yaml:"binary"`
}

// Manager 配置管理器接口
type Manager interface {
	// Load 加载配置文件，文件不存在时返回默认配置
	Load() (*Config, error)

	// Save 保存配置文件（原子操作）
	Save(config *Config) error

	// CreateDefaultConfig 创建默认配置
	CreateDefaultConfig() error

	// Path 返回配置文件路径
	Path() string
}

const (
	DefaultVersion        = "1.0.0"
	DefaultHost           = "github.com"
	DefaultSuffix         = "-xtask"
	DefaultBranch         = "main"
	DefaultGitBinary      = "git"
	DefaultConfigFileName = ".xtask.yaml"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: DefaultVersion,
		Remote: RemoteConfig{
			Host:          DefaultHost,
			Suffix:        DefaultSuffix,
			DefaultBranch: DefaultBranch,
		},
		Git: GitConfig{
			Binary: DefaultGitBinary,
		},
	}
}
