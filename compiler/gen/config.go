package gen

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config holds the global configuration for a generation pass.
type Config struct {
	// Package is the import path of the generated package, e.g.
	// "github.com/org/project/search".
	Package string

	// Header is an additional comment added at the top of each generated
	// file, below the standard generated-code marker.
	Header string

	// CacheFile is the path of the incremental-generation manifest.
	// Empty disables incremental caching.
	CacheFile string

	// Strict makes a skipped entity fail the whole generation pass
	// instead of only being reported.
	Strict bool

	// Logger receives a structured diagnostic for every skipped entity
	// and dropped declaration. Defaults to a nop logger.
	Logger *zap.Logger
}

// Option configures code generation.
type Option func(*Config) error

// WithPackage sets the import path of the generated package.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", pkg, "import path cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithHeader sets the file header comment added to each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithCacheFile enables incremental generation backed by the manifest at
// the given path.
func WithCacheFile(path string) Option {
	return func(c *Config) error {
		c.CacheFile = path
		return nil
	}
}

// WithStrict makes any skipped entity fail the generation pass.
func WithStrict() Option {
	return func(c *Config) error {
		c.Strict = true
		return nil
	}
}

// WithLogger sets the logger receiving generation diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) error {
		if logger == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = logger
		return nil
	}
}

// NewConfig builds a Config from the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{Logger: zap.NewNop()}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// fileConfig is the YAML form of the generation configuration.
type fileConfig struct {
	Package   string `yaml:"package"`
	Header    string `yaml:"header"`
	CacheFile string `yaml:"cache_file"`
	Strict    bool   `yaml:"strict"`
}

// LoadConfig reads generation configuration from a YAML file. Options
// passed alongside override the file values.
func LoadConfig(path string, opts ...Option) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("facetc: reading config %q: %w", path, err)
	}
	fc := fileConfig{}
	if err := yaml.Unmarshal(buf, &fc); err != nil {
		return nil, fmt.Errorf("facetc: parsing config %q: %w", path, err)
	}
	c := &Config{
		Package:   fc.Package,
		Header:    fc.Header,
		CacheFile: fc.CacheFile,
		Strict:    fc.Strict,
		Logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
