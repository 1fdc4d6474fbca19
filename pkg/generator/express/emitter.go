package express

import (
	"fmt"
	"strings"

	"github.com/blimu-dev/tseo-gen/pkg/config"
	"github.com/blimu-dev/tseo-gen/pkg/ir"
	"github.com/blimu-dev/tseo-gen/pkg/utils"
)

// Emitter turns tag groups into TypeScript units. Each Emit method is a pure
// function of its input and the configuration the Emitter was created with.
type Emitter struct {
	cfg config.Config
	r   *renderer
}

// NewEmitter creates an emitter for the naming and directory settings in cfg
func NewEmitter(cfg config.Config) (*Emitter, error) {
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}
	return &Emitter{cfg: cfg, r: r}, nil
}

func (e *Emitter) controllerName() string {
	return e.cfg.BaseName + "Controller"
}

func (e *Emitter) aggregatorName() string {
	return e.cfg.BaseName + "Router"
}

type importLine struct {
	Name   string
	Module string
}

type delegateMethod struct {
	Name          string
	Description   string
	Path          string
	ResponseCodes []string
	Fields        []string
	ReturnType    string
}

type delegateView struct {
	ClassName   string
	Description string
	Imports     []importLine
	Methods     []delegateMethod
}

// EmitDelegate renders <Tag>APIDelegate.ts: one stub method per operation
func (e *Emitter) EmitDelegate(g *ir.TagGroup) (ir.GeneratedUnit, error) {
	names := namesFor(g.Name)
	view := delegateView{
		ClassName:   names.Delegate,
		Description: strings.TrimSpace(g.Description),
	}

	seen := map[string]bool{}
	refer := func(t ir.TypeDescriptor) string {
		if t.IsReference && !seen[t.Name] {
			seen[t.Name] = true
			view.Imports = append(view.Imports, importLine{Name: t.Name, Module: modelModule(e.cfg.ModelDir, t.Name)})
		}
		return t.String()
	}

	for _, op := range g.All() {
		m := delegateMethod{
			Name:          utils.MemberName(op.OperationID),
			Description:   op.Description,
			Path:          op.Path,
			ResponseCodes: op.ResponseCodes(),
			ReturnType:    "void",
		}
		for _, p := range op.Parameters {
			name := utils.QuotePropName(p.Name)
			if !p.Required {
				name += "?"
			}
			m.Fields = append(m.Fields, name+": "+refer(ir.Resolve(p.Schema)))
		}
		if op.RequestBody != nil {
			m.Fields = append(m.Fields, "payload?: "+refer(ir.Resolve(op.RequestBody)))
		}
		if ret, ok := op.ReturnType(); ok {
			m.ReturnType = refer(ret)
		}
		view.Methods = append(view.Methods, m)
	}

	content, err := e.r.render(tmplDelegate, view)
	if err != nil {
		return ir.GeneratedUnit{}, err
	}
	return ir.GeneratedUnit{Path: unitPath(e.cfg.APIDir, names.Delegate+".ts"), Content: content}, nil
}

type controllerView struct {
	BaseName       string
	ControllerName string
	Delegates      []tagNames
}

// EmitController renders the controller that owns one delegate per tag, the
// HttpError class the routers depend on, and the API barrel.
func (e *Emitter) EmitController(groups []*ir.TagGroup) ([]ir.GeneratedUnit, error) {
	view := controllerView{
		BaseName:       e.cfg.BaseName,
		ControllerName: e.controllerName(),
	}
	for _, g := range groups {
		view.Delegates = append(view.Delegates, namesFor(g.Name))
	}

	files := []struct {
		tmpl string
		name string
	}{
		{tmplController, view.ControllerName},
		{tmplHTTPError, "HttpError"},
		{tmplAPIIndex, "index"},
	}
	units := make([]ir.GeneratedUnit, 0, len(files))
	for _, f := range files {
		content, err := e.r.render(f.tmpl, view)
		if err != nil {
			return nil, err
		}
		units = append(units, ir.GeneratedUnit{Path: unitPath(e.cfg.APIDir, f.name+".ts"), Content: content})
	}
	return units, nil
}

type route struct {
	Name        string
	Description string
	Method      string
	Path        string
	Args        []string
	Void        bool
}

type routerView struct {
	RouterName     string
	ControllerName string
	APIImport      string
	Accessor       string
	Routes         []route
}

// EmitRouter renders <Tag>Router.ts, binding every operation of the tag to
// its delegate method through the controller accessor.
func (e *Emitter) EmitRouter(g *ir.TagGroup) (ir.GeneratedUnit, error) {
	names := namesFor(g.Name)
	view := routerView{
		RouterName:     names.Router,
		ControllerName: e.controllerName(),
		APIImport:      relativeImport(e.cfg.RoutesDir, e.cfg.APIDir),
		Accessor:       names.Accessor,
	}
	for _, op := range g.All() {
		r := route{
			Name:        utils.MemberName(op.OperationID),
			Description: op.Description,
			Method:      op.Method,
			Path:        expressPath(op.Path),
		}
		for _, p := range op.Parameters {
			key := utils.SingleQuote(p.Name)
			r.Args = append(r.Args, fmt.Sprintf("%s: req.params[%s]", key, key))
		}
		if op.RequestBody != nil {
			r.Args = append(r.Args, "'payload': req.params['payload']")
		}
		_, hasResult := op.ReturnType()
		r.Void = !hasResult
		view.Routes = append(view.Routes, r)
	}

	content, err := e.r.render(tmplRouter, view)
	if err != nil {
		return ir.GeneratedUnit{}, err
	}
	return ir.GeneratedUnit{Path: unitPath(e.cfg.RoutesDir, names.Router+".ts"), Content: content}, nil
}

type routersView struct {
	AggregatorName string
	ControllerName string
	APIImport      string
	Routers        []string
}

// EmitRouterIndex renders <Base>Router.ts, which registers every tag router
// in tag order, and the routes barrel.
func (e *Emitter) EmitRouterIndex(groups []*ir.TagGroup) ([]ir.GeneratedUnit, error) {
	view := routersView{
		AggregatorName: e.aggregatorName(),
		ControllerName: e.controllerName(),
		APIImport:      relativeImport(e.cfg.RoutesDir, e.cfg.APIDir),
	}
	for _, g := range groups {
		view.Routers = append(view.Routers, namesFor(g.Name).Router)
	}

	aggregator, err := e.r.render(tmplRouters, view)
	if err != nil {
		return nil, err
	}
	index, err := e.r.render(tmplRoutesIndex, view)
	if err != nil {
		return nil, err
	}
	return []ir.GeneratedUnit{
		{Path: unitPath(e.cfg.RoutesDir, view.AggregatorName+".ts"), Content: aggregator},
		{Path: unitPath(e.cfg.RoutesDir, "index.ts"), Content: index},
	}, nil
}
