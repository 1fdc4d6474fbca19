package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Spec)
	assert.Equal(t, "express", cfg.Target)
	assert.Equal(t, "Generated", cfg.BaseName)
	assert.Equal(t, ".", cfg.OutDir)
	assert.Equal(t, "src/api", cfg.APIDir)
	assert.Equal(t, "src/routes", cfg.RoutesDir)
	assert.Equal(t, "../model", cfg.ModelDir)
	assert.Empty(t, cfg.IncludeTags)
	assert.False(t, cfg.ValidateSpec)
}

func TestDefaultFromEnv(t *testing.T) {
	t.Setenv("TSEO_BASE_NAME", "Petstore")
	t.Setenv("TSEO_API_DIR", "lib/api")
	t.Setenv("TSEO_EXCLUDE_TAGS", "^internal$,admin")
	t.Setenv("TSEO_VALIDATE", "true")

	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Petstore", cfg.BaseName)
	assert.Equal(t, "lib/api", cfg.APIDir)
	assert.Equal(t, "src/routes", cfg.RoutesDir)
	assert.Equal(t, []string{"^internal$", "admin"}, cfg.ExcludeTags)
	assert.True(t, cfg.ValidateSpec)
}

func TestDefaultInvalidEnv(t *testing.T) {
	t.Setenv("TSEO_VALIDATE", "maybe")

	_, err := Default()
	assert.Error(t, err)
}

func TestLoadOverridesEnv(t *testing.T) {
	t.Setenv("TSEO_BASE_NAME", "FromEnv")
	t.Setenv("TSEO_MODEL_DIR", "../types")

	dir := t.TempDir()
	path := filepath.Join(dir, "tseo.yaml")
	content := `
spec: https://example.com/openapi.yaml
baseName: FromFile
routesDir: lib/routes/
includeTags:
  - ^pets
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/openapi.yaml", cfg.Spec)
	assert.Equal(t, "FromFile", cfg.BaseName)
	assert.Equal(t, "lib/routes/", cfg.RoutesDir)
	assert.Equal(t, "src/api", cfg.APIDir)
	assert.Equal(t, "../types", cfg.ModelDir)
	assert.Equal(t, []string{"^pets"}, cfg.IncludeTags)
}

func TestLoadAbsolutizesLocalSpec(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tseo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spec: api/openapi.yaml\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(cfg.Spec))
	assert.Equal(t, "openapi.yaml", filepath.Base(cfg.Spec))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("baseName: [\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	spec := "petstore.yaml"
	base := "Petstore"
	validate := true
	cfg.Apply(Overrides{
		Spec:         &spec,
		BaseName:     &base,
		ExcludeTags:  []string{"internal"},
		ValidateSpec: &validate,
	})

	assert.Equal(t, "petstore.yaml", cfg.Spec)
	assert.Equal(t, "Petstore", cfg.BaseName)
	assert.Equal(t, "src/api", cfg.APIDir)
	assert.Equal(t, []string{"internal"}, cfg.ExcludeTags)
	assert.Nil(t, cfg.IncludeTags)
	assert.True(t, cfg.ValidateSpec)
}

func TestNormalize(t *testing.T) {
	cfg := Config{OutDir: "/", APIDir: "src/api/", RoutesDir: "src/routes", ModelDir: "../model/"}
	cfg.Normalize()

	assert.Equal(t, "/", cfg.OutDir)
	assert.Equal(t, "src/api", cfg.APIDir)
	assert.Equal(t, "src/routes", cfg.RoutesDir)
	assert.Equal(t, "../model", cfg.ModelDir)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing spec", mutate: func(c *Config) { c.Spec = "" }, wantErr: "spec is required"},
		{name: "missing target", mutate: func(c *Config) { c.Target = "" }, wantErr: "target is required"},
		{name: "bad base name", mutate: func(c *Config) { c.BaseName = "my api" }, wantErr: "not a valid class name"},
		{name: "missing routes dir", mutate: func(c *Config) { c.RoutesDir = "" }, wantErr: "routesDir are required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Default()
			require.NoError(t, err)
			cfg.Spec = "petstore.yaml"
			tt.mutate(cfg)

			err = cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
