// Package tseogen generates TypeScript Express scaffolding from OpenAPI documents.
//
// For every tag of the document it emits a delegate class with one stub
// method per operation and a router class that binds each operation to the
// delegate through a shared controller. The controller, an aggregator
// router and index barrels tie the units together.
//
// Quick Start:
//
//	import "github.com/blimu-dev/tseo-gen"
//
//	err := tseogen.Generate(tseogen.GenerateOptions{
//		Spec:     "./openapi.yaml",
//		OutDir:   "./server",
//		BaseName: "Petstore",
//	})
//
// For more advanced usage, see the generator package.
package tseogen

import (
	"log/slog"

	"github.com/blimu-dev/tseo-gen/pkg/generator"
)

// Generate generates delegates, controller and routers with the given options.
// Empty options keep their defaults.
//
// Example:
//
//	err := tseogen.Generate(tseogen.GenerateOptions{
//		Spec:        "./openapi.yaml",
//		OutDir:      "./server",
//		APIDir:      "src/api",
//		RoutesDir:   "src/routes",
//		ExcludeTags: []string{"internal"},
//	})
func Generate(opts GenerateOptions) error {
	return generator.Generate(generator.GenerateOptions{
		Spec:        opts.Spec,
		OutDir:      opts.OutDir,
		BaseName:    opts.BaseName,
		APIDir:      opts.APIDir,
		RoutesDir:   opts.RoutesDir,
		ModelDir:    opts.ModelDir,
		IncludeTags: opts.IncludeTags,
		ExcludeTags: opts.ExcludeTags,
		Logger:      opts.Logger,
	})
}

// GenerateFromConfig generates from a YAML configuration file.
//
// Example:
//
//	err := tseogen.GenerateFromConfig("./tseo.yaml")
func GenerateFromConfig(configPath string) error {
	return generator.GenerateFromConfig(configPath)
}

// ValidateSpec validates an OpenAPI document against the OpenAPI 3 rules.
// Generation does not require a valid document; this is useful as a
// separate check.
//
// Example:
//
//	if err := tseogen.ValidateSpec("./openapi.yaml"); err != nil {
//		log.Fatalf("Invalid OpenAPI spec: %v", err)
//	}
func ValidateSpec(specPath string) error {
	return generator.ValidateSpec(specPath)
}

// GenerateOptions contains options for generation
type GenerateOptions struct {
	Spec        string   // OpenAPI document file or URL
	OutDir      string   // Output root
	BaseName    string   // Prefix of the controller and aggregator router classes
	APIDir      string   // Delegate and controller directory, relative to OutDir
	RoutesDir   string   // Router directory, relative to OutDir
	ModelDir    string   // Import prefix of model types, seen from APIDir
	IncludeTags []string // Regex patterns for tags to include
	ExcludeTags []string // Regex patterns for tags to exclude

	// Logger receives progress and diagnostics; nil discards them
	Logger *slog.Logger
}
