package express

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/blimu-dev/tseo-gen/pkg/utils"
)

//go:embed templates/*.gotmpl
var templatesFS embed.FS

// Template names, one per emitted file kind
const (
	tmplDelegate    = "delegate.ts.gotmpl"
	tmplController  = "controller.ts.gotmpl"
	tmplHTTPError   = "http_error.ts.gotmpl"
	tmplAPIIndex    = "api_index.ts.gotmpl"
	tmplRouter      = "router.ts.gotmpl"
	tmplRouters     = "routers.ts.gotmpl"
	tmplRoutesIndex = "routes_index.ts.gotmpl"
)

// renderer holds the parsed templates shared by every emitter
type renderer struct {
	tmpl *template.Template
}

func newRenderer() (*renderer, error) {
	funcMap := sprig.TxtFuncMap()
	funcMap["tsString"] = utils.SingleQuote

	tmpl, err := template.New("express").Funcs(funcMap).ParseFS(templatesFS, "templates/*.gotmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &renderer{tmpl: tmpl}, nil
}

// render executes the named template into a string
func (r *renderer) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}
