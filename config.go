package tegaki

import (
	"log"
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/kakizome/tegaki/glyph"
)

// Default configuration values.
const (
	DefaultMaxCacheSize    = 32
	DefaultWarmConcurrency = 4
)

// Config tunes an Engine. The zero value is usable; unset fields take
// the defaults.
type Config struct {
	// MaxCacheSize bounds the template cache. The protected basic set
	// always stays resident, so values below its size are invalid.
	MaxCacheSize int `yaml:"max_cache_size"`

	// DefaultMode is the policy used when a Recognize call does not
	// name one.
	DefaultMode Mode `yaml:"default_mode"`

	// WarmConcurrency bounds the parallel template loads issued by
	// Engine.Warm.
	WarmConcurrency int `yaml:"warm_concurrency"`

	// Debug enables per-call diagnostic logging to the standard
	// logger. The engine is silent without it.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the stock configuration: lenient scoring, a
// 32-entry cache, four warm workers. Debug honors the TEGAKI_DEBUG=1
// environment variable.
func DefaultConfig() Config {
	return Config{
		MaxCacheSize:    DefaultMaxCacheSize,
		DefaultMode:     ModeLenient,
		WarmConcurrency: DefaultWarmConcurrency,
		Debug:           os.Getenv("TEGAKI_DEBUG") == "1",
	}
}

// LoadConfig reads a YAML configuration file for host applications. A
// missing file is not an error and yields DefaultConfig. Out-of-range
// values are replaced with their defaults and logged; only unreadable
// or unparseable files fail.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}

	if min := len(glyph.Basic()); cfg.MaxCacheSize != 0 && cfg.MaxCacheSize < min {
		log.Printf("Invalid max_cache_size %d, must be at least %d, using default %d",
			cfg.MaxCacheSize, min, DefaultMaxCacheSize)
		cfg.MaxCacheSize = DefaultMaxCacheSize
	}
	if cfg.WarmConcurrency < 0 {
		log.Printf("Invalid warm_concurrency %d, must be positive, using default %d",
			cfg.WarmConcurrency, DefaultWarmConcurrency)
		cfg.WarmConcurrency = DefaultWarmConcurrency
	}
	if cfg.DefaultMode != "" && !cfg.DefaultMode.valid() {
		log.Printf("Invalid default_mode %q, must be %q or %q, using %q",
			cfg.DefaultMode, ModeStrict, ModeLenient, ModeLenient)
		cfg.DefaultMode = ModeLenient
	}

	return cfg.withDefaults(), nil
}

// withDefaults fills unset fields so a zero-value Config behaves like
// DefaultConfig.
func (c Config) withDefaults() Config {
	if c.MaxCacheSize <= 0 {
		c.MaxCacheSize = DefaultMaxCacheSize
	}
	if c.WarmConcurrency <= 0 {
		c.WarmConcurrency = DefaultWarmConcurrency
	}
	if !c.DefaultMode.valid() {
		c.DefaultMode = ModeLenient
	}
	return c
}
