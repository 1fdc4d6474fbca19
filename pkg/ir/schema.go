package ir

import "strings"

// Schema is a schema node reduced to the shapes the generator understands.
// The set of implementations is closed: Primitive, ArrayOf, Reference and
// Unknown. A nil Schema means the document declared no schema.
type Schema interface {
	isSchema()
}

// PrimitiveKind enumerates the primitive schema types that map to a TS type
type PrimitiveKind string

const (
	KindInteger PrimitiveKind = "integer"
	KindString  PrimitiveKind = "string"
	KindBoolean PrimitiveKind = "boolean"
	KindObject  PrimitiveKind = "object"
)

// Primitive is a schema whose type is one of the supported primitive kinds
type Primitive struct {
	Kind PrimitiveKind
}

// ArrayOf is a schema of type array. Items is nil when the document omits it.
type ArrayOf struct {
	Items Schema
}

// Reference is a schema carrying a $ref
type Reference struct {
	Ref string
}

// Name returns the last path segment of the reference
func (r Reference) Name() string {
	if i := strings.LastIndex(r.Ref, "/"); i >= 0 {
		return r.Ref[i+1:]
	}
	return r.Ref
}

// Unknown is a schema present in the document that matches none of the
// supported shapes (empty, or an unsupported type such as number).
type Unknown struct{}

func (Primitive) isSchema() {}
func (ArrayOf) isSchema()   {}
func (Reference) isSchema() {}
func (Unknown) isSchema()   {}

// TypeDescriptor is the resolved TypeScript type of a schema
type TypeDescriptor struct {
	Name        string
	IsReference bool
	IsArray     bool
}

// String renders the descriptor as a TypeScript type expression
func (t TypeDescriptor) String() string {
	if t.IsArray {
		return t.Name + "[]"
	}
	return t.Name
}

// Resolve maps a schema to its TypeScript type. Arrays resolve their item
// schema and flag the result, so nested arrays collapse to the innermost
// element type. Anything unrecognized, including a nil schema, resolves to
// string.
func Resolve(s Schema) TypeDescriptor {
	switch v := s.(type) {
	case Primitive:
		switch v.Kind {
		case KindInteger:
			return TypeDescriptor{Name: "number"}
		case KindString:
			return TypeDescriptor{Name: "string"}
		case KindBoolean:
			return TypeDescriptor{Name: "boolean"}
		case KindObject:
			return TypeDescriptor{Name: "any"}
		}
	case ArrayOf:
		t := Resolve(v.Items)
		t.IsArray = true
		return t
	case Reference:
		return TypeDescriptor{Name: v.Name(), IsReference: true}
	}
	return TypeDescriptor{Name: "string"}
}
