package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blimu-dev/tseo-gen/pkg/ir"
)

func TestShouldIncludeOperation(t *testing.T) {
	tests := []struct {
		name        string
		tags        []string
		includeTags []string
		excludeTags []string
		expected    bool
	}{
		{
			name:     "no filters - include all",
			tags:     []string{"Pets", "Internal"},
			expected: true,
		},
		{
			name:        "include filter matches first tag",
			tags:        []string{"Pets", "Internal"},
			includeTags: []string{"Pets"},
			expected:    true,
		},
		{
			name:        "include filter matches second tag",
			tags:        []string{"Internal", "Pets"},
			includeTags: []string{"Pets"},
			expected:    true,
		},
		{
			name:        "include filter matches none",
			tags:        []string{"Internal", "Admin"},
			includeTags: []string{"Pets"},
			expected:    false,
		},
		{
			name:        "exclude filter matches second tag",
			tags:        []string{"Pets", "Internal"},
			excludeTags: []string{"Internal"},
			expected:    false,
		},
		{
			name:        "exclude takes precedence over include",
			tags:        []string{"Pets", "Internal"},
			includeTags: []string{"Pets"},
			excludeTags: []string{"Internal"},
			expected:    false,
		},
		{
			name:        "include matches, exclude doesn't",
			tags:        []string{"Pets", "Public"},
			includeTags: []string{"Pets"},
			excludeTags: []string{"Internal"},
			expected:    true,
		},
		{
			name:        "regex patterns work",
			tags:        []string{"pets_v1", "internal_api"},
			includeTags: []string{"^pets_.*"},
			excludeTags: []string{".*_api$"},
			expected:    false,
		},
		{
			name:        "multiple include patterns - any match",
			tags:        []string{"Orders", "Billing"},
			includeTags: []string{"Pets", "Orders"},
			expected:    true,
		},
		{
			name:        "untagged operation with include filter",
			tags:        nil,
			includeTags: []string{".*"},
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			include, exclude, err := compileTagFilters(tt.includeTags, tt.excludeTags)
			require.NoError(t, err)

			result := shouldIncludeOperation(tt.tags, include, exclude)
			if result != tt.expected {
				t.Errorf("shouldIncludeOperation(%v, %v, %v) = %v, expected %v",
					tt.tags, tt.includeTags, tt.excludeTags, result, tt.expected)
			}
		})
	}
}

func filterFixture() ir.Index {
	idx := ir.NewIndex()
	idx.TagDescriptions["Pets"] = "Everything about pets"
	idx.Add("Pets", ir.Operation{OperationID: "getPet", Method: "get", Tags: []string{"Pets"}})
	idx.Add("Pets", ir.Operation{OperationID: "addPet", Method: "post", Tags: []string{"Pets", "Admin"}})
	idx.Add("Stores", ir.Operation{OperationID: "getStore", Method: "get", Tags: []string{"Stores"}})
	idx.Add("Health", ir.Operation{OperationID: "health", Method: "get", Tags: []string{"Health"}})
	return idx
}

func TestFilterIndex(t *testing.T) {
	t.Run("no filters returns the index unchanged", func(t *testing.T) {
		idx := filterFixture()
		out, err := FilterIndex(idx, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, idx, out)
	})

	t.Run("exclude drops operations and empty groups", func(t *testing.T) {
		out, err := FilterIndex(filterFixture(), nil, []string{"^Admin$", "Health"})
		require.NoError(t, err)

		assert.Equal(t, []string{"Pets", "Stores"}, out.Groups.Keys())
		pets, _ := out.Groups.Get("Pets")
		assert.Equal(t, []string{"getPet"}, operationIDs(pets))
		assert.Equal(t, "Everything about pets", pets.Description)
	})

	t.Run("include keeps group order", func(t *testing.T) {
		out, err := FilterIndex(filterFixture(), []string{"Health", "Admin"}, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"Pets", "Health"}, out.Groups.Keys())
		pets, _ := out.Groups.Get("Pets")
		assert.Equal(t, []string{"addPet"}, operationIDs(pets))
	})

	t.Run("invalid pattern is a configuration error", func(t *testing.T) {
		_, err := FilterIndex(filterFixture(), []string{"("}, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConfig))
		assert.Contains(t, err.Error(), `invalid includeTags pattern "("`)
	})
}
