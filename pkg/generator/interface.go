package generator

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/blimu-dev/tseo-gen/pkg/config"
	"github.com/blimu-dev/tseo-gen/pkg/generator/express"
	"github.com/blimu-dev/tseo-gen/pkg/ir"
	"github.com/blimu-dev/tseo-gen/pkg/openapi"
)

// Generator defines the interface for source generators
type Generator interface {
	// Generate renders every unit for the indexed document. Units are
	// returned in write order: a unit only references units before it.
	Generate(cfg config.Config, idx ir.Index) ([]ir.GeneratedUnit, error)
	// GetType returns the type identifier for this generator (e.g., "express")
	GetType() string
}

// Registry manages available generators
type Registry struct {
	generators map[string]Generator
}

// NewRegistry creates a new generator registry
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Generator),
	}
}

// Register adds a generator to the registry
func (r *Registry) Register(gen Generator) {
	r.generators[gen.GetType()] = gen
}

// Get retrieves a generator by type
func (r *Registry) Get(genType string) (Generator, bool) {
	gen, exists := r.generators[genType]
	return gen, exists
}

// GetAvailableTypes returns all registered generator types, sorted
func (r *Registry) GetAvailableTypes() []string {
	types := make([]string, 0, len(r.generators))
	for t := range r.generators {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Service drives a generation run: load, index, filter, generate, write
type Service struct {
	registry *Registry
	logger   *slog.Logger
}

// NewService creates a new generator service with default generators
func NewService(logger *slog.Logger) *Service {
	registry := NewRegistry()
	registry.Register(express.NewExpressGenerator())
	return NewServiceWithRegistry(registry, logger)
}

// NewServiceWithRegistry creates a new generator service with a custom registry
func NewServiceWithRegistry(registry *Registry, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		registry: registry,
		logger:   logger,
	}
}

// GetRegistry returns the generator registry
func (s *Service) GetRegistry() *Registry {
	return s.registry
}

// GenerateFromConfig writes the generated units to disk below cfg.OutDir,
// creating the API and routes directories first.
func (s *Service) GenerateFromConfig(cfg *config.Config) error {
	if err := s.check(cfg); err != nil {
		return err
	}
	sink := NewFileSink(cfg.OutDir)
	if err := sink.Prepare(cfg.APIDir, cfg.RoutesDir); err != nil {
		return err
	}
	return s.GenerateTo(cfg, sink)
}

// GenerateTo runs the pipeline and hands every unit to sink. The first write
// failure aborts the run.
func (s *Service) GenerateTo(cfg *config.Config, sink Sink) error {
	if err := s.check(cfg); err != nil {
		return err
	}
	gen, _ := s.registry.Get(cfg.Target)

	idx, err := s.Index(cfg)
	if err != nil {
		return err
	}

	s.logger.Info("generating", "target", gen.GetType(), "tags", idx.Groups.Len())
	units, err := gen.Generate(*cfg, idx)
	if err != nil {
		return fmt.Errorf("%s generator: %w", gen.GetType(), err)
	}
	for _, unit := range units {
		if err := sink.Write(unit); err != nil {
			return err
		}
		s.logger.Info("generated", "path", unit.Path)
	}
	return nil
}

// Index loads the document named by cfg.Spec, validates it when asked to,
// and returns the filtered operation index.
func (s *Service) Index(cfg *config.Config) (ir.Index, error) {
	if cfg.ValidateSpec {
		if err := openapi.ValidateDocument(cfg.Spec); err != nil {
			return ir.Index{}, &LoadError{Source: cfg.Spec, Cause: err}
		}
	}
	doc, err := openapi.LoadDocument(cfg.Spec)
	if err != nil {
		return ir.Index{}, &LoadError{Source: cfg.Spec, Cause: err}
	}
	idx := BuildIndex(doc, s.logger)
	return FilterIndex(idx, cfg.IncludeTags, cfg.ExcludeTags)
}

func (s *Service) check(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if _, ok := s.registry.Get(cfg.Target); !ok {
		return fmt.Errorf("%w: unsupported target %q (available: %v)", ErrConfig, cfg.Target, s.registry.GetAvailableTypes())
	}
	return nil
}
