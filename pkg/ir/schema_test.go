package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		input    Schema
		expected TypeDescriptor
	}{
		{"integer", Primitive{Kind: KindInteger}, TypeDescriptor{Name: "number"}},
		{"string", Primitive{Kind: KindString}, TypeDescriptor{Name: "string"}},
		{"boolean", Primitive{Kind: KindBoolean}, TypeDescriptor{Name: "boolean"}},
		{"object", Primitive{Kind: KindObject}, TypeDescriptor{Name: "any"}},
		{"array of string", ArrayOf{Items: Primitive{Kind: KindString}}, TypeDescriptor{Name: "string", IsArray: true}},
		{
			"array of reference",
			ArrayOf{Items: Reference{Ref: "#/components/schemas/Pet"}},
			TypeDescriptor{Name: "Pet", IsReference: true, IsArray: true},
		},
		{
			"nested arrays collapse",
			ArrayOf{Items: ArrayOf{Items: Primitive{Kind: KindInteger}}},
			TypeDescriptor{Name: "number", IsArray: true},
		},
		{"array without items", ArrayOf{}, TypeDescriptor{Name: "string", IsArray: true}},
		{"reference", Reference{Ref: "#/components/schemas/Widget"}, TypeDescriptor{Name: "Widget", IsReference: true}},
		{"bare reference", Reference{Ref: "Widget"}, TypeDescriptor{Name: "Widget", IsReference: true}},
		{"unknown", Unknown{}, TypeDescriptor{Name: "string"}},
		{"absent", nil, TypeDescriptor{Name: "string"}},
		{"unsupported kind", Primitive{Kind: "number"}, TypeDescriptor{Name: "string"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.input))
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	s := ArrayOf{Items: Reference{Ref: "#/components/schemas/Order"}}
	first := Resolve(s)
	for range 5 {
		assert.Equal(t, first, Resolve(s))
	}
	// the recursive result is flagged, the input is left alone
	assert.Equal(t, Reference{Ref: "#/components/schemas/Order"}, s.Items)
}

func TestTypeDescriptorString(t *testing.T) {
	assert.Equal(t, "Pet", TypeDescriptor{Name: "Pet", IsReference: true}.String())
	assert.Equal(t, "Pet[]", TypeDescriptor{Name: "Pet", IsReference: true, IsArray: true}.String())
	assert.Equal(t, "string[]", TypeDescriptor{Name: "string", IsArray: true}.String())
}
