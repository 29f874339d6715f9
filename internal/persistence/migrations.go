package persistence

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// RunMigrations executes the SQL migrations located in dir in lexical order.
// Each file is rendered as a text/template with data first, so table names
// can follow configuration.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, dir string, data any, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping migrations")
		return nil
	}

	statements, err := LoadMigrations(dir, data)
	if err != nil {
		return err
	}

	for _, m := range statements {
		logger.Info("applying migration", zap.String("file", m.Name))
		if _, err := pool.Exec(ctx, m.SQL); err != nil {
			return fmt.Errorf("apply migration %s: %w", m.Name, err)
		}
	}

	logger.Info("migrations applied", zap.Int("count", len(statements)))
	return nil
}

// Migration is a rendered SQL file.
type Migration struct {
	Name string
	SQL  string
}

// LoadMigrations reads and renders every .sql file in dir.
func LoadMigrations(dir string, data any) ([]Migration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	filenames := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		filenames = append(filenames, entry.Name())
	}

	sort.Strings(filenames)

	out := make([]Migration, 0, len(filenames))
	for _, name := range filenames {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("parse migration %s: %w", name, err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("render migration %s: %w", name, err)
		}
		out = append(out, Migration{Name: name, SQL: buf.String()})
	}
	return out, nil
}
