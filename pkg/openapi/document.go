package openapi

import (
	"fmt"
	"iter"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blimu-dev/tseo-gen/pkg/ir"
)

// Document is the subset of an OpenAPI document the generator reads, with
// the key order of the source kept everywhere it matters.
type Document struct {
	Tags  []Tag
	Paths []PathItem
}

// Tag is an entry of the top-level tags list
type Tag struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// PathItem is one entry of the paths object, its keys in document order
type PathItem struct {
	Path    string
	Entries []PathEntry
}

// PathEntry is one key of a path item. Operation is set only when the key is
// an HTTP method.
type PathEntry struct {
	Key       string
	Operation *Operation
}

// Operation is an operation object reduced to what the generator needs
type Operation struct {
	OperationID string
	// Description is nil when the operation declares none
	Description *string
	Tags        []string
	Parameters  []ir.Parameter
	// RequestBody is the application/json body schema, nil when the operation
	// declares no JSON body or the JSON media type has no schema.
	RequestBody ir.Schema
	Responses   []ir.Response
}

const mediaTypeJSON = "application/json"

var httpMethods = map[string]bool{
	"get": true, "put": true, "post": true, "delete": true,
	"options": true, "head": true, "patch": true, "trace": true,
}

// IsHTTPMethod reports whether a path item key names an operation
func IsHTTPMethod(key string) bool {
	return httpMethods[strings.ToLower(key)]
}

type rawParameter struct {
	Name     string    `yaml:"name"`
	Required bool      `yaml:"required"`
	Schema   yaml.Node `yaml:"schema"`
}

type rawMedia struct {
	Schema yaml.Node `yaml:"schema"`
}

type rawOperation struct {
	OperationID string         `yaml:"operationId"`
	Description *string        `yaml:"description"`
	Tags        []string       `yaml:"tags"`
	Parameters  []rawParameter `yaml:"parameters"`
	RequestBody *struct {
		Content map[string]rawMedia `yaml:"content"`
	} `yaml:"requestBody"`
	Responses yaml.Node `yaml:"responses"`
}

type rawResponse struct {
	Content map[string]rawMedia `yaml:"content"`
}

// Parse reads a YAML or JSON OpenAPI document. Only the structure the
// generator relies on is checked; anything else in the document is ignored.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	doc := &Document{}
	if len(root.Content) == 0 {
		return doc, nil
	}
	top := deref(root.Content[0])
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: document root must be a mapping", top.Line)
	}

	for key, val := range entries(top) {
		switch key {
		case "tags":
			if isNull(val) {
				continue
			}
			if err := val.Decode(&doc.Tags); err != nil {
				return nil, fmt.Errorf("line %d: invalid tags: %w", val.Line, err)
			}
		case "paths":
			paths, err := parsePaths(val)
			if err != nil {
				return nil, err
			}
			doc.Paths = paths
		}
	}
	return doc, nil
}

func parsePaths(n *yaml.Node) ([]PathItem, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: paths must be a mapping", n.Line)
	}
	var items []PathItem
	for path, itemNode := range entries(n) {
		item := PathItem{Path: path}
		if isNull(itemNode) {
			items = append(items, item)
			continue
		}
		if itemNode.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: path item %q must be a mapping", itemNode.Line, path)
		}
		for key, val := range entries(itemNode) {
			entry := PathEntry{Key: key}
			if IsHTTPMethod(key) && val.Kind == yaml.MappingNode {
				op, err := parseOperation(val)
				if err != nil {
					return nil, fmt.Errorf("%s %s: %w", strings.ToUpper(key), path, err)
				}
				entry.Operation = op
			}
			item.Entries = append(item.Entries, entry)
		}
		items = append(items, item)
	}
	return items, nil
}

func parseOperation(n *yaml.Node) (*Operation, error) {
	var raw rawOperation
	if err := n.Decode(&raw); err != nil {
		return nil, fmt.Errorf("line %d: %w", n.Line, err)
	}
	op := &Operation{
		OperationID: raw.OperationID,
		Description: raw.Description,
		Tags:        raw.Tags,
	}
	for _, p := range raw.Parameters {
		op.Parameters = append(op.Parameters, ir.Parameter{
			Name:     p.Name,
			Required: p.Required,
			Schema:   schemaFromNode(&p.Schema),
		})
	}
	if raw.RequestBody != nil {
		if media, ok := raw.RequestBody.Content[mediaTypeJSON]; ok && !isNull(&media.Schema) {
			op.RequestBody = schemaFromNode(&media.Schema)
		}
	}
	if responses := deref(&raw.Responses); responses != nil && responses.Kind == yaml.MappingNode {
		for code, val := range entries(responses) {
			resp := ir.Response{Code: code}
			var rr rawResponse
			if err := val.Decode(&rr); err != nil {
				return nil, fmt.Errorf("line %d: response %s: %w", val.Line, code, err)
			}
			if media, ok := rr.Content[mediaTypeJSON]; ok {
				resp.HasJSON = true
				resp.Schema = schemaFromNode(&media.Schema)
			}
			op.Responses = append(op.Responses, resp)
		}
	}
	return op, nil
}

// entries iterates over the key/value pairs of a mapping node in document
// order, following aliases on values.
func entries(n *yaml.Node) iter.Seq2[string, *yaml.Node] {
	return func(yield func(string, *yaml.Node) bool) {
		for i := 0; i+1 < len(n.Content); i += 2 {
			if !yield(n.Content[i].Value, deref(n.Content[i+1])) {
				return
			}
		}
	}
}

func deref(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	n = deref(n)
	return n == nil || n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}
