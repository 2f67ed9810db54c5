package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Swagger UI: el arranque no depende de que la spec esté en disco
// ──────────────────────────────────────────────────────────────────────────────

func TestSwaggerUI_SinArchivoNoInterrumpeElArranque(t *testing.T) {
	// swagger.New entra en pánico con un archivo ausente; el guard evita llegar ahí
	ui, ok := swaggerUI(filepath.Join(t.TempDir(), "swagger.json"))

	assert.False(t, ok)
	assert.Nil(t, ui)
}

func TestSwaggerUI_ConSpecEnDisco(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swagger.json")
	spec := `{"swagger":"2.0","info":{"title":"Librería API","version":"1.0.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(path, []byte(spec), 0o644))

	ui, ok := swaggerUI(path)

	require.True(t, ok)
	assert.NotNil(t, ui)
}

func TestSwaggerUI_SpecDelRepositorio(t *testing.T) {
	// La spec versionada en docs/ debe cargar tal cual la usa main
	ui, ok := swaggerUI(filepath.Join("..", "..", "docs", "swagger.json"))

	require.True(t, ok, "docs/swagger.json debe existir en el repositorio")
	assert.NotNil(t, ui)
}
