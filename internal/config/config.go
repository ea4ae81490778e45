package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	AppDir   string `toml:"app_dir"`
	UIDir    string `toml:"ui_dir"`
	CacheDir string `toml:"cache_dir"`
	LogDir   string `toml:"log_dir"`
}

// Logging contains log output configuration.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// UIBuild contains configuration for the front-end asset build step.
type UIBuild struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
	Timeout int      `toml:"timeout"`
}

// Messages contains operator-visible response strings.
type Messages struct {
	NoInput       string `toml:"no_input"`
	InvalidTarget string `toml:"invalid_target"`
	NotFound      string `toml:"not_found"`
	RequestError  string `toml:"request_error"`
}

// Web contains front-end presentation parameters.
type Web struct {
	Theme   string `toml:"theme"`
	BaseURL string `toml:"base_url"`
}

// CacheParams contains response cache tuning parameters.
type CacheParams struct {
	TimeoutSeconds int  `toml:"timeout"`
	ShowText       bool `toml:"show_text"`
}

// Params is the runtime parameter tree exposed via the params command.
type Params struct {
	SiteTitle  string      `toml:"site_title"`
	OrgName    string      `toml:"org_name"`
	PrimaryASN string      `toml:"primary_asn"`
	Messages   Messages    `toml:"messages"`
	Web        Web         `toml:"web"`
	Cache      CacheParams `toml:"cache"`
}

// Device declares a queryable network device.
type Device struct {
	ID          string   `toml:"id"`
	Name        string   `toml:"name"`
	Address     string   `toml:"address"`
	Platform    string   `toml:"platform"`
	Description string   `toml:"description"`
	Directives  []string `toml:"directives"`
}

// Directive declares a query directive devices can execute.
type Directive struct {
	ID          string   `toml:"id"`
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Rules       []string `toml:"rules"`
}

// Plugin declares an input or output plugin.
type Plugin struct {
	Name        string `toml:"name"`
	Type        string `toml:"type"`
	Path        string `toml:"path"`
	Description string `toml:"description"`
}

// Config is the root configuration document.
type Config struct {
	Listen     string      `toml:"listen"`
	Paths      Paths       `toml:"paths"`
	Logging    Logging     `toml:"logging"`
	UIBuild    UIBuild     `toml:"ui_build"`
	Params     Params      `toml:"params"`
	Devices    []Device    `toml:"devices"`
	Directives []Directive `toml:"directives"`
	Plugins    []Plugin    `toml:"plugins"`
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "periscope", "config.toml"), nil
}

// ExpandPath expands a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	return abs, nil
}

// Load reads configuration from the provided path, or the default lookup
// path when empty. It returns the resolved config, the path consulted,
// and whether a file existed there.
func Load(path string) (*Config, string, bool, error) {
	resolved := strings.TrimSpace(path)
	if resolved == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, "", false, err
		}
		resolved = defaultPath
	} else {
		expanded, err := ExpandPath(resolved)
		if err != nil {
			return nil, "", false, err
		}
		resolved = expanded
	}

	cfg := Default()
	exists := true
	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		exists = false
	case err != nil:
		return nil, resolved, false, fmt.Errorf("read config %s: %w", resolved, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, resolved, true, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, resolved, exists, err
	}
	if err := cfg.validate(); err != nil {
		return nil, resolved, exists, err
	}
	return &cfg, resolved, exists, nil
}

// EnsureDirectories creates the directories periscope writes to.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.AppDir, c.Paths.UIDir, c.Paths.CacheDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// CreateSample writes the embedded sample configuration to path.
func CreateSample(path string) error {
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
