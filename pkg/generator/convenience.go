package generator

import (
	"log/slog"

	"github.com/blimu-dev/tseo-gen/pkg/config"
	"github.com/blimu-dev/tseo-gen/pkg/openapi"
)

// GenerateOptions contains options for the convenience Generate function.
// Empty fields keep their defaults.
type GenerateOptions struct {
	Spec        string   // OpenAPI spec file or URL
	OutDir      string   // Output root
	BaseName    string   // Prefix of the controller and aggregator router
	APIDir      string   // Delegate and controller directory, relative to OutDir
	RoutesDir   string   // Router directory, relative to OutDir
	ModelDir    string   // Import prefix for model types, seen from APIDir
	IncludeTags []string // Regex patterns for tags to include
	ExcludeTags []string // Regex patterns for tags to exclude
	Logger      *slog.Logger
}

// Generate is a convenience function for generating with minimal configuration
func Generate(opts GenerateOptions) error {
	cfg, err := config.Default()
	if err != nil {
		return err
	}
	str := func(v string) *string {
		if v == "" {
			return nil
		}
		return &v
	}
	cfg.Apply(config.Overrides{
		Spec:        str(opts.Spec),
		BaseName:    str(opts.BaseName),
		OutDir:      str(opts.OutDir),
		APIDir:      str(opts.APIDir),
		RoutesDir:   str(opts.RoutesDir),
		ModelDir:    str(opts.ModelDir),
		IncludeTags: opts.IncludeTags,
		ExcludeTags: opts.ExcludeTags,
	})
	cfg.Normalize()
	return NewService(opts.Logger).GenerateFromConfig(cfg)
}

// GenerateFromConfig is a convenience function for generating from a config file
func GenerateFromConfig(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg.Normalize()
	return NewService(nil).GenerateFromConfig(cfg)
}

// ValidateSpec validates an OpenAPI specification
func ValidateSpec(specPath string) error {
	return openapi.ValidateDocument(specPath)
}
