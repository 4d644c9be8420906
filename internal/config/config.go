package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppName names the config directories.
const AppName = "priceform"

// Defaults.
const (
	DefaultEndpoint  = "http://localhost:5000"
	DefaultLogLevel  = "info"
	DefaultLogFormat = FormatText
	DefaultServeAddr = ":8080"
	DefaultStubAddr  = ":5000"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the merged runtime configuration.
type Config struct {
	Endpoint string `yaml:"endpoint"`
	Log      Log    `yaml:"log"`
	Serve    Serve  `yaml:"serve"`
	Stub     Stub   `yaml:"stub"`
}

// Log controls the slog handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Serve configures the HTML form server.
type Serve struct {
	Addr string `yaml:"addr"`
}

// Stub configures the local prediction service.
type Stub struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Endpoint: DefaultEndpoint,
		Log:      Log{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Serve:    Serve{Addr: DefaultServeAddr},
		Stub:     Stub{Addr: DefaultStubAddr},
	}
}

// Manager locates and merges the global and local config files.
type Manager struct {
	// globalPath is ~/.config/priceform/config.yaml
	globalPath string
	// localPath is ./.priceform/config.yaml
	localPath string
}

// NewManager returns a manager using the standard locations.
func NewManager() *Manager {
	homeDir, _ := os.UserHomeDir()
	return &Manager{
		globalPath: filepath.Join(homeDir, ".config", AppName, "config.yaml"),
		localPath:  filepath.Join(".", "."+AppName, "config.yaml"),
	}
}

// SetGlobalPath overrides the global config path.
func (m *Manager) SetGlobalPath(path string) {
	m.globalPath = path
}

// SetLocalPath overrides the local config path.
func (m *Manager) SetLocalPath(path string) {
	m.localPath = path
}

// GlobalPath returns the global config file path.
func (m *Manager) GlobalPath() string {
	return m.globalPath
}

// LocalPath returns the local config file path.
func (m *Manager) LocalPath() string {
	return m.localPath
}

// Load starts from Default, applies the global file and then the local file.
// Missing files are skipped; keys absent from a file keep the earlier value.
func (m *Manager) Load() (Config, error) {
	cfg := Default()
	if err := readFile(m.globalPath, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: read global config: %w", err)
	}
	if err := readFile(m.localPath, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: read local config: %w", err)
	}
	return cfg, nil
}

// Write stores cfg as YAML at path, creating the directory if needed.
func (m *Manager) Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

func readFile(path string, cfg *Config) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	endpoint, err := url.Parse(c.Endpoint)
	if err != nil || (endpoint.Scheme != "http" && endpoint.Scheme != "https") || endpoint.Host == "" {
		return fmt.Errorf("%w: endpoint %q must be an http(s) URL", ErrInvalid, c.Endpoint)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: log.format %q (want %s or %s)", ErrInvalid, c.Log.Format, FormatText, FormatJSON)
	}
	if strings.TrimSpace(c.Serve.Addr) == "" {
		return fmt.Errorf("%w: serve.addr is empty", ErrInvalid)
	}
	if strings.TrimSpace(c.Stub.Addr) == "" {
		return fmt.Errorf("%w: stub.addr is empty", ErrInvalid)
	}
	return nil
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, level)
	}
}
