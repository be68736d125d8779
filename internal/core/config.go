package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/void-protocol/void-sdk-go/pkg/void"
)

// Config is the on-disk configuration shared by the CLI and SDK consumers.
type Config struct {
	ProgramID string          `yaml:"program_id"`
	Cluster   string          `yaml:"cluster"`
	RPCURL    string          `yaml:"rpc_url,omitempty"`
	StorePath string          `yaml:"store_path,omitempty"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// TelemetryConfig controls the in-process metric collector.
type TelemetryConfig struct {
	Enabled       bool          `yaml:"enabled"`
	FlushInterval time.Duration `yaml:"flush_interval,omitempty"`
}

// ClientConfig returns the two fields the SDK client is constructed from.
func (c Config) ClientConfig() void.ClientConfig {
	return void.ClientConfig{ProgramID: c.ProgramID, Cluster: void.Cluster(c.Cluster)}
}

// ConfigDir resolves $XDG_CONFIG_HOME/void or ~/.config/void.
func ConfigDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "void")
}

// DefaultConfigPath is where LoadConfig looks when no path is given.
func DefaultConfigPath() string { return filepath.Join(ConfigDir(), "config.yaml") }

// DefaultStorePath is the profile database used when store_path is unset.
func DefaultStorePath() string { return filepath.Join(ConfigDir(), "void.db") }

// LoadConfig reads YAML configuration from path. An empty path resolves to
// DefaultConfigPath, and a missing default file is not an error. Values from
// secrets.env next to the file and VOID_* environment variables are merged on top.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	content, err := readConfigFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return cfg, err
	}

	// Keyed RPC URLs belong in secrets.env rather than the YAML file.
	secrets, _ := LoadSecretsEnv(filepath.Join(filepath.Dir(path), "secrets.env"))
	if v, ok := secrets["VOID_RPC_URL"]; ok && v != "" {
		cfg.RPCURL = v
	}
	applyEnv(&cfg)
	if cfg.StorePath == "" {
		cfg.StorePath = DefaultStorePath()
	}
	return cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return content, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("VOID_PROGRAM_ID"); v != "" {
		cfg.ProgramID = v
	}
	if v := os.Getenv("VOID_CLUSTER"); v != "" {
		cfg.Cluster = v
	}
	if v := os.Getenv("VOID_RPC_URL"); v != "" {
		cfg.RPCURL = v
	}
}

// Marshal renders cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
