package persistence_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-portal/internal/persistence"
	"github.com/spec-kit/job-portal/internal/repository"
)

func TestLoadMigrationsRendersTableNames(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "002_b.sql"), []byte("SELECT 2 FROM {{.Applications}};"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001_a.sql"), []byte("SELECT 1 FROM {{.Jobs}};"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o600))

	data := repository.Tables{Jobs: "portal_jobs", Applications: "portal_apps"}.MigrationData()
	migrations, err := persistence.LoadMigrations(dir, data)
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	require.Equal(t, "001_a.sql", migrations[0].Name)
	require.Equal(t, `SELECT 1 FROM "portal_jobs";`, migrations[0].SQL)
	require.Equal(t, `SELECT 2 FROM "portal_apps";`, migrations[1].SQL)
}

func TestLoadMigrationsRejectsUnknownKey(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001.sql"), []byte("SELECT {{.Nope}};"), 0o600))

	_, err := persistence.LoadMigrations(dir, repository.DefaultTables().MigrationData())
	require.Error(t, err)
}

func TestShippedMigrationsRender(t *testing.T) {
	migrations, err := persistence.LoadMigrations(filepath.Join("..", "..", "migrations"), repository.DefaultTables().MigrationData())
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	require.Contains(t, migrations[0].SQL, `CREATE TABLE IF NOT EXISTS "jobs"`)
}
