// Package config carries the caller-supplied settings enumerated in §6
// External Interfaces: cache sizing, source roots, friend peers, and the
// dispatcher's worker count. It is a plain data carrier — loading it from
// disk and wiring it into components are separate concerns, matching the
// teacher's split between a JSON/YAML-tagged Config struct and the
// functional options accepted by its component constructors
// (cf. gsfa/store's OpenStore(ctx, ..., options ...Option)).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SourceConfig names one on-disk SourceStore root (§6 "sources").
type SourceConfig struct {
	Name string `json:"name" yaml:"name"`
	Root string `json:"root" yaml:"root"`
}

// FriendConfig is one configured peer (§6 "friends"). Key/Cipher are
// accepted and round-tripped but unconsumed: the wire-protocol/connection
// layer they'd configure is out of scope (§1), stubbed behind
// internal/router.Client.
type FriendConfig struct {
	Name   string `json:"name" yaml:"name"`
	Addr   string `json:"addr,omitempty" yaml:"addr,omitempty"`
	Port   int    `json:"port,omitempty" yaml:"port,omitempty"`
	Key    string `json:"key,omitempty" yaml:"key,omitempty"`
	Cipher string `json:"cipher,omitempty" yaml:"cipher,omitempty"`
}

// Config is the caller-supplied configuration enumerated in §6: cache
// sizing, source roots, friend peers, and dispatcher parallelism.
type Config struct {
	CacheDir    string `json:"cache_dir" yaml:"cache_dir"`
	CacheSizeMB int64  `json:"cache_size_mb" yaml:"cache_size_mb"`

	Sources []SourceConfig `json:"sources" yaml:"sources"`
	Friends []FriendConfig `json:"friends" yaml:"friends"`

	Parallel int `json:"parallel" yaml:"parallel"`
}

// CacheEnabled reports whether a cache directory was configured — an
// empty CacheDir disables the cache entirely (§6).
func (c *Config) CacheEnabled() bool {
	return c.CacheDir != ""
}

// CacheSizeBytes converts the configured megabyte budget to bytes.
func (c *Config) CacheSizeBytes() int64 {
	return c.CacheSizeMB * 1024 * 1024
}

// Validate checks the loaded config for internal consistency.
func (c *Config) Validate() error {
	if c.CacheDir != "" && c.CacheSizeMB <= 0 {
		return fmt.Errorf("config: cache_size_mb must be > 0 when cache_dir is set")
	}
	seen := make(map[string]struct{}, len(c.Sources))
	for _, s := range c.Sources {
		if s.Name == "" {
			return fmt.Errorf("config: sources entry missing name")
		}
		if s.Root == "" {
			return fmt.Errorf("config: source %q missing root", s.Name)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("config: duplicate source name %q", s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	friendNames := make(map[string]struct{}, len(c.Friends))
	for _, f := range c.Friends {
		if f.Name == "" {
			return fmt.Errorf("config: friends entry missing name")
		}
		if _, dup := friendNames[f.Name]; dup {
			return fmt.Errorf("config: duplicate friend name %q", f.Name)
		}
		friendNames[f.Name] = struct{}{}
	}
	if c.Parallel < 0 {
		return fmt.Errorf("config: parallel must be >= 0")
	}
	return nil
}

// ParallelOrDefault returns the configured worker count, falling back to
// def when Parallel is unset (zero).
func (c *Config) ParallelOrDefault(def int) int {
	if c.Parallel > 0 {
		return c.Parallel
	}
	return def
}

// Load reads a Config from a JSON or YAML file, selecting the decoder by
// file extension (mirrors the teacher's config.go/tools.go
// isJSONFile/isYAMLFile + loadFromJSON/loadFromYAML split).
func Load(path string) (*Config, error) {
	var cfg Config
	switch {
	case isJSONFile(path):
		if err := loadFromJSON(path, &cfg); err != nil {
			return nil, err
		}
	case isYAMLFile(path):
		if err := loadFromYAML(path, &cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("config: file %q must be JSON or YAML", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func isJSONFile(path string) bool { return strings.HasSuffix(path, ".json") }

func isYAMLFile(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}

func loadFromJSON(path string, dst any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: opening %q: %w", path, err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(dst); err != nil {
		return fmt.Errorf("config: decoding %q: %w", path, err)
	}
	return nil
}

func loadFromYAML(path string, dst any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: opening %q: %w", path, err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(dst); err != nil {
		return fmt.Errorf("config: decoding %q: %w", path, err)
	}
	return nil
}
