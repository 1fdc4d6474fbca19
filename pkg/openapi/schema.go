package openapi

import (
	"gopkg.in/yaml.v3"

	"github.com/blimu-dev/tseo-gen/pkg/ir"
)

// schemaFromNode converts a schema node into the ir.Schema variant. A
// supported type wins over $ref, and $ref wins over everything else.
func schemaFromNode(n *yaml.Node) ir.Schema {
	if isNull(n) {
		return nil
	}
	n = deref(n)
	if n.Kind != yaml.MappingNode {
		return ir.Unknown{}
	}

	var typ, ref string
	var items *yaml.Node
	for key, val := range entries(n) {
		switch key {
		case "type":
			typ = schemaType(val)
		case "items":
			items = val
		case "$ref":
			if val.Kind == yaml.ScalarNode {
				ref = val.Value
			}
		}
	}

	switch typ {
	case string(ir.KindInteger), string(ir.KindString), string(ir.KindBoolean), string(ir.KindObject):
		return ir.Primitive{Kind: ir.PrimitiveKind(typ)}
	case "array":
		return ir.ArrayOf{Items: schemaFromNode(items)}
	}
	if ref != "" {
		return ir.Reference{Ref: ref}
	}
	return ir.Unknown{}
}

// schemaType reads the type keyword. OpenAPI 3.1 allows a list of types; the
// first one other than "null" is used.
func schemaType(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Value
	case yaml.SequenceNode:
		for _, item := range n.Content {
			item = deref(item)
			if item.Kind == yaml.ScalarNode && item.Value != "null" {
				return item.Value
			}
		}
	}
	return ""
}
