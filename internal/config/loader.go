package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Paths helper for default/profile files.
type Paths struct {
	BaseDir string // base directory, e.g., /opt/app/config
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "default.yaml")
}
func (p Paths) ProfilePath(profile string) string {
	return filepath.Join(p.BaseDir, "profiles", profile+".yaml")
}

// Loader reads YAML configs and merges default → profile.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawConfig // key: profile name or "$default"
}

// NewLoader creates a config loader with the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawConfig),
	}
}

// LoadMerged loads and merges default → profile (profile optional).
func (l *Loader) LoadMerged(profile string) (RawConfig, error) {
	key := profile
	if key == "" {
		key = "$default"
	}
	l.mu.RLock()
	if cfg, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	defCfg, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawConfig{}, fmt.Errorf("read default: %w", err)
	}
	var profCfg RawConfig
	if profile != "" {
		profCfg, _ = readYAML(l.paths.ProfilePath(profile)) // profile file optional
	}

	merged := mergeRaw(defCfg, profCfg)

	l.mu.Lock()
	l.cache[key] = merged
	l.cache["$default"] = defCfg
	l.mu.Unlock()

	return merged, nil
}

// Invalidate clears loader's cache. Call after hot-reload detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawConfig)
}

// readYAML loads a YAML file into RawConfig. Missing files return zero cfg, no error.
func readYAML(path string) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, err
	}
	return cfg, nil
}

// mergeRaw performs a deep merge: 'b' overrides 'a' where non-zero/non-nil.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	// generator
	if b.Generator.Algo != "" {
		out.Generator.Algo = b.Generator.Algo
	}
	if b.Generator.Seed != nil {
		out.Generator.Seed = b.Generator.Seed
	}
	if b.Generator.BBSModulus != nil {
		out.Generator.BBSModulus = b.Generator.BBSModulus
	}

	// server
	switch {
	case out.Server == nil && b.Server != nil:
		c := *b.Server
		out.Server = &c
	case out.Server != nil && b.Server != nil:
		if b.Server.Addr != nil {
			out.Server.Addr = b.Server.Addr
		}
	}

	return out
}
