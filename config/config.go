package config

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"github.com/mitander/kalandra/models"
)

// envPrefix namespaces the orchestrator's environment overrides.
const envPrefix = "KFUZZ_"

// Config holds the engine and filesystem settings. Everything has a
// working default; overrides come from KFUZZ_* environment variables
// only (there is deliberately no config file).
type Config struct {
	// Engine is the fuzzing engine binary, invoked as
	// `<engine> fuzz run <target> -- -max_total_time=<secs>`.
	Engine string `koanf:"engine"`
	// LogDir receives the per-target fuzz-<target>.log artifacts.
	LogDir string `koanf:"log_dir"`
	// FuzzDir is the engine-managed tree holding artifacts/ and corpus/.
	FuzzDir string `koanf:"fuzz_dir"`
}

func Load() (*Config, error) {
	k := koanf.New(".")
	provider := env.Provider(envPrefix, ".", func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, envPrefix))
	})
	if err := k.Load(provider, nil); err != nil {
		return nil, errors.Wrap(err, "failed to read environment")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse KFUZZ_* settings")
	}

	cfg.SetDefaults()
	return cfg, nil
}

func (c *Config) SetDefaults() {
	if c.Engine == "" {
		c.Engine = "cargo"
	}
	if c.LogDir == "" {
		c.LogDir = "."
	}
	if c.FuzzDir == "" {
		c.FuzzDir = "fuzz"
	}
}

func (c *Config) LogPath(target models.Target) string {
	return filepath.Join(c.LogDir, target.LogName())
}

// ArtifactDir is where the engine drops crashing inputs for a target.
// The orchestrator only watches and reports it, never reads its contents.
func (c *Config) ArtifactDir(target models.Target) string {
	return filepath.Join(c.FuzzDir, "artifacts", target.Name)
}

func (c *Config) CorpusDir(target models.Target) string {
	return filepath.Join(c.FuzzDir, "corpus", target.Name)
}
