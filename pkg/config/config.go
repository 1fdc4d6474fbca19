package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	env "github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/blimu-dev/tseo-gen/pkg/utils"
)

// EnvPrefix is prepended to the env tag of every Config field
const EnvPrefix = "TSEO_"

// Config represents the complete configuration for a generation run
type Config struct {
	// Spec is the OpenAPI document, a file path or an HTTP(S) URL
	Spec string `yaml:"spec" env:"SPEC"`
	// Target selects the generator, see generator.Registry
	Target string `yaml:"target" env:"TARGET" envDefault:"express"`
	// BaseName prefixes the controller and aggregator router classes
	BaseName string `yaml:"baseName" env:"BASE_NAME" envDefault:"Generated"`
	// OutDir is the root that APIDir and RoutesDir are relative to
	OutDir    string `yaml:"outDir" env:"OUT_DIR" envDefault:"."`
	APIDir    string `yaml:"apiDir" env:"API_DIR" envDefault:"src/api"`
	RoutesDir string `yaml:"routesDir" env:"ROUTES_DIR" envDefault:"src/routes"`
	// ModelDir is the import prefix for referenced model types, as seen from APIDir
	ModelDir string `yaml:"modelDir" env:"MODEL_DIR" envDefault:"../model"`
	// IncludeTags and ExcludeTags are regular expressions matched against
	// every tag of an operation
	IncludeTags []string `yaml:"includeTags" env:"INCLUDE_TAGS" envSeparator:","`
	ExcludeTags []string `yaml:"excludeTags" env:"EXCLUDE_TAGS" envSeparator:","`
	// ValidateSpec runs a full OpenAPI validation before generating
	ValidateSpec bool `yaml:"validate" env:"VALIDATE" envDefault:"false"`
}

// Overrides carries values set explicitly on the command line. Nil fields
// leave the configuration untouched.
type Overrides struct {
	Spec         *string
	BaseName     *string
	OutDir       *string
	APIDir       *string
	RoutesDir    *string
	ModelDir     *string
	IncludeTags  []string
	ExcludeTags  []string
	ValidateSpec *bool
}

// Default returns the built-in defaults with TSEO_* environment variables applied
func Default() (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &cfg, nil
}

// Load loads configuration from a YAML file on top of Default
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	// Do not absolutize when spec is an HTTP(S) URL
	if u, err := url.Parse(cfg.Spec); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return cfg, nil
	}
	if cfg.Spec != "" && !filepath.IsAbs(cfg.Spec) {
		abs, _ := filepath.Abs(cfg.Spec)
		cfg.Spec = abs
	}
	return cfg, nil
}

// Apply copies every set override into c
func (c *Config) Apply(o Overrides) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&c.Spec, o.Spec)
	set(&c.BaseName, o.BaseName)
	set(&c.OutDir, o.OutDir)
	set(&c.APIDir, o.APIDir)
	set(&c.RoutesDir, o.RoutesDir)
	set(&c.ModelDir, o.ModelDir)
	if o.IncludeTags != nil {
		c.IncludeTags = o.IncludeTags
	}
	if o.ExcludeTags != nil {
		c.ExcludeTags = o.ExcludeTags
	}
	if o.ValidateSpec != nil {
		c.ValidateSpec = *o.ValidateSpec
	}
}

// Normalize strips one trailing slash from the directory settings
func (c *Config) Normalize() {
	for _, dir := range []*string{&c.OutDir, &c.APIDir, &c.RoutesDir, &c.ModelDir} {
		if len(*dir) > 1 {
			*dir = strings.TrimSuffix(*dir, "/")
		}
	}
}

// Validate checks that the configuration can drive a generation run
func (c *Config) Validate() error {
	var errs []error
	if c.Spec == "" {
		errs = append(errs, errors.New("spec is required"))
	}
	if c.Target == "" {
		errs = append(errs, errors.New("target is required"))
	}
	if !utils.IsIdentifier(c.BaseName) {
		errs = append(errs, fmt.Errorf("baseName %q is not a valid class name", c.BaseName))
	}
	if c.APIDir == "" || c.RoutesDir == "" {
		errs = append(errs, errors.New("apiDir and routesDir are required"))
	}
	return errors.Join(errs...)
}
