package express

import (
	"fmt"

	"github.com/blimu-dev/tseo-gen/pkg/config"
	"github.com/blimu-dev/tseo-gen/pkg/ir"
)

// ExpressGenerator emits Express delegates, controller and routers
type ExpressGenerator struct{}

// NewExpressGenerator creates a new Express generator
func NewExpressGenerator() *ExpressGenerator {
	return &ExpressGenerator{}
}

// GetType returns the generator type identifier
func (g *ExpressGenerator) GetType() string {
	return "express"
}

// Generate renders the delegates, then the controller and API barrel, then
// the routers, then the aggregator router and routes barrel.
func (g *ExpressGenerator) Generate(cfg config.Config, idx ir.Index) ([]ir.GeneratedUnit, error) {
	groups := idx.TagGroups()
	if err := checkClassNames(groups); err != nil {
		return nil, err
	}
	e, err := NewEmitter(cfg)
	if err != nil {
		return nil, err
	}

	var units []ir.GeneratedUnit
	for _, group := range groups {
		unit, err := e.EmitDelegate(group)
		if err != nil {
			return nil, fmt.Errorf("delegate for tag %q: %w", group.Name, err)
		}
		units = append(units, unit)
	}
	controller, err := e.EmitController(groups)
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}
	units = append(units, controller...)

	for _, group := range groups {
		unit, err := e.EmitRouter(group)
		if err != nil {
			return nil, fmt.Errorf("router for tag %q: %w", group.Name, err)
		}
		units = append(units, unit)
	}
	routers, err := e.EmitRouterIndex(groups)
	if err != nil {
		return nil, fmt.Errorf("router index: %w", err)
	}
	return append(units, routers...), nil
}

// checkClassNames rejects tags that sanitize to the same class name, since
// their units would overwrite each other.
func checkClassNames(groups []*ir.TagGroup) error {
	owner := map[string]string{}
	for _, g := range groups {
		typ := namesFor(g.Name).Type
		if prev, ok := owner[typ]; ok {
			return fmt.Errorf("tags %q and %q both map to class name %s", prev, g.Name, typ)
		}
		owner[typ] = g.Name
	}
	return nil
}
