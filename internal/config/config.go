// Package config loads the small process-level configuration layerz reads
// at startup: poll timeout, log level, an optional device path override,
// and an optional hook-script path. It has no bearing on layout semantics;
// the compiled layout stays compiled into the binary.
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kbdlayer/layerz/xdg"
	"gopkg.in/yaml.v3"
)

// Config is the optional process configuration loaded from a YAML file.
type Config struct {
	LogLevel      string `yaml:"log_level"`
	PollTimeoutMs uint32 `yaml:"poll_timeout_ms"`
	Device        string `yaml:"device"`
	HookScript    string `yaml:"hook_script"`
}

// Default returns the configuration used when no file is present or a
// field is left unset in the file.
func Default() Config {
	return Config{
		LogLevel:      "info",
		PollTimeoutMs: 1000,
	}
}

// PollTimeout returns PollTimeoutMs as a time.Duration for convenience at
// the provider.Provider.ReadEvent call sites.
func (c Config) PollTimeout() time.Duration {
	return time.Duration(c.PollTimeoutMs) * time.Millisecond
}

// Load reads and parses the YAML config file at path, overlaying its
// fields onto Default(). An empty path resolves via xdg.ConfigFile under
// "layerz/config.yaml". A missing or empty file is not an error; Default()
// is returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	var (
		data []byte
		err  error
	)

	if path == "" {
		data, err = readXDGDefault()
	} else {
		data, err = readPath(path)
	}

	if err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	if len(data) == 0 {
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	return cfg, nil
}

func readXDGDefault() ([]byte, error) {
	file, err := xdg.ConfigFile("layerz/config.yaml")
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

func readPath(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
