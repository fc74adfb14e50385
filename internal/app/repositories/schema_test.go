package repositories

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidrv/permanencia/internal/app/models"
)

var createTablePattern = regexp.MustCompile(`(?i)CREATE TABLE (?:IF NOT EXISTS )?(\w+)`)

// migratedTables collects every table name the migration files create.
func migratedTables(t *testing.T) map[string]bool {
	t.Helper()

	dir := filepath.Join("..", "..", "..", "migrations")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	tables := map[string]bool{}
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) != ".sql" {
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		require.NoError(t, err)
		for _, match := range createTablePattern.FindAllStringSubmatch(string(content), -1) {
			tables[match[1]] = true
		}
	}
	return tables
}

// Every table the repositories query must be created by a migration;
// a mismatch only surfaces at runtime as an undefined_table error otherwise.
func TestMigrationsCreanTablasConsultadas(t *testing.T) {
	tables := migratedTables(t)

	for _, table := range []string{"estudiantes", "programas", "servicios", "usuarios"} {
		assert.True(t, tables[table], "no migration creates table %q", table)
	}

	descriptores := []models.TablaRegistro{
		models.TablaTutorias, models.TablaAsesorias, models.TablaOrientaciones,
		models.TablaComedores, models.TablaApoyos, models.TablaTalleres,
		models.TablaSeguimientos, models.TablaIntervenciones,
		models.TablaRemisiones, models.TablaAsistencias, models.TablaActas,
	}
	for _, tabla := range descriptores {
		assert.True(t, tables[tabla.Nombre], "no migration creates table %q", tabla.Nombre)
	}
}
