package express

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blimu-dev/tseo-gen/pkg/ir"
)

func paths(units []ir.GeneratedUnit) []string {
	out := make([]string, 0, len(units))
	for _, u := range units {
		out = append(out, u.Path)
	}
	return out
}

func TestGenerateUnitOrder(t *testing.T) {
	idx := ir.NewIndex()
	idx.TagDescriptions["Pets"] = "Everything about pets"
	idx.Add("Pets", getPet())
	idx.Add("Stores", ir.Operation{
		OperationID: "listStores",
		Description: ir.DefaultDescription,
		Path:        "/stores",
		Method:      "get",
		Responses:   []ir.Response{{Code: "200"}},
	})

	units, err := NewExpressGenerator().Generate(testConfig(), idx)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"src/api/PetsAPIDelegate.ts",
		"src/api/StoresAPIDelegate.ts",
		"src/api/GeneratedController.ts",
		"src/api/HttpError.ts",
		"src/api/index.ts",
		"src/routes/PetsRouter.ts",
		"src/routes/StoresRouter.ts",
		"src/routes/GeneratedRouter.ts",
		"src/routes/index.ts",
	}, paths(units))

	assert.Contains(t, units[0].Content, " * Everything about pets\n")
}

func TestGenerateIsDeterministic(t *testing.T) {
	idx := ir.NewIndex()
	idx.Add("Pets", getPet())

	first, err := NewExpressGenerator().Generate(testConfig(), idx)
	require.NoError(t, err)
	second, err := NewExpressGenerator().Generate(testConfig(), idx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateEmptyIndex(t *testing.T) {
	units, err := NewExpressGenerator().Generate(testConfig(), ir.NewIndex())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"src/api/GeneratedController.ts",
		"src/api/HttpError.ts",
		"src/api/index.ts",
		"src/routes/GeneratedRouter.ts",
		"src/routes/index.ts",
	}, paths(units))
	assert.Contains(t, units[0].Content, "export class GeneratedController {\n\n}\n")
}

func TestGenerateRejectsClassNameCollision(t *testing.T) {
	idx := ir.NewIndex()
	idx.Add("pet store", getPet())
	idx.Add("PetStore", getPet())

	_, err := NewExpressGenerator().Generate(testConfig(), idx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `tags "pet store" and "PetStore" both map to class name PetStore`)
}

func TestGetType(t *testing.T) {
	assert.Equal(t, "express", NewExpressGenerator().GetType())
}
