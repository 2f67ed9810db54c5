package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/libreria-api/pkg/config"
)

func escribir(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// ──────────────────────────────────────────────────────────────────────────────
// Load: archivos de configuración
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_SinArchivosUsaDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "libreria-api", cfg.App.Name)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5, cfg.Inventory.LowStockThreshold)
}

func TestLoad_CombinaPuntoEnvYConfigEnv(t *testing.T) {
	dir := t.TempDir()
	// Claves distintas en cada archivo: ambas deben sobrevivir a la carga
	escribir(t, dir, ".env", "APP_NAME=libreria-local\nDB_PORT=6543\n")
	escribir(t, dir, "config.env", "APP_ENV=staging\n")
	t.Chdir(dir)

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.App.Env, "config.env debe cargarse")
	assert.Equal(t, "libreria-local", cfg.App.Name, "lo leído de .env no debe perderse al cargar config.env")
	assert.Equal(t, 6543, cfg.DB.Port)
}

func TestLoad_ConfigEnvGanaEnCasoDeChoque(t *testing.T) {
	dir := t.TempDir()
	escribir(t, dir, ".env", "APP_ENV=development\n")
	escribir(t, dir, "config.env", "APP_ENV=production\n")
	t.Chdir(dir)

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
}

func TestLoad_UmbralDeStockBajoDesdeArchivo(t *testing.T) {
	dir := t.TempDir()
	escribir(t, dir, ".env", "INVENTORY_LOW_STOCK_THRESHOLD=12\n")
	t.Chdir(dir)

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Inventory.LowStockThreshold)
}

func TestDSN_CodificaCaracteresEspeciales(t *testing.T) {
	db := config.DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:w/rd",
		DBName:   "libreria",
		SSLMode:  "disable",
	}

	dsn := db.DSN()

	assert.Contains(t, dsn, "p%40ss%3Aw%2Frd", "la contraseña va URL-encoded")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgresql://u:p@db:5432/x?sslmode=require",
		Host:        "ignorado",
	}
	assert.Equal(t, "postgresql://u:p@db:5432/x?sslmode=require", db.ConnectionString())
}
