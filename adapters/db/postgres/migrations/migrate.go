package migrations

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"embed"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

// Migrator handles database schema migrations
type Migrator struct {
	db *sql.DB
}

// NewMigrator creates a new migrator
func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{db: db}
}

type migrationFile struct {
	Version  string
	Content  string
	Checksum string
}

// Up executes all pending migrations
func (m *Migrator) Up(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			checksum TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := m.getAppliedMigrations(ctx)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	files, err := loadMigrationFiles()
	if err != nil {
		return fmt.Errorf("failed to load migration files: %w", err)
	}

	for _, file := range files {
		if checksum, ok := applied[file.Version]; ok {
			if checksum != file.Checksum {
				return fmt.Errorf("migration %s changed after being applied", file.Version)
			}
			continue
		}

		if err := m.applyMigration(ctx, file); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", file.Version, err)
		}
		fmt.Printf("Applied migration: %s\n", file.Version)
	}

	return nil
}

// Down unrecords the most recently applied migration. There are no down
// SQL files; schema changes must be reverted by hand before re-running Up.
func (m *Migrator) Down(ctx context.Context) (string, error) {
	var version string
	err := m.db.QueryRowContext(ctx, `
		SELECT version FROM schema_migrations
		ORDER BY applied_at DESC LIMIT 1`).Scan(&version)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("no migrations to roll back")
		}
		return "", fmt.Errorf("failed to get last migration: %w", err)
	}

	if _, err := m.db.ExecContext(ctx,
		`DELETE FROM schema_migrations WHERE version = $1`, version); err != nil {
		return "", fmt.Errorf("failed to remove migration record: %w", err)
	}
	return version, nil
}

// Status lists each migration and whether it has been applied.
func (m *Migrator) Status(ctx context.Context) (map[string]bool, error) {
	applied, err := m.getAppliedMigrations(ctx)
	if err != nil {
		return nil, err
	}
	files, err := loadMigrationFiles()
	if err != nil {
		return nil, err
	}
	status := make(map[string]bool, len(files))
	for _, file := range files {
		_, ok := applied[file.Version]
		status[file.Version] = ok
	}
	return status, nil
}

func (m *Migrator) getAppliedMigrations(ctx context.Context) (map[string]string, error) {
	applied := make(map[string]string)

	rows, err := m.db.QueryContext(ctx, `SELECT version, checksum FROM schema_migrations`)
	if err != nil {
		// Table may not exist yet on first run.
		if strings.Contains(err.Error(), "does not exist") {
			return applied, nil
		}
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var version, checksum string
		if err := rows.Scan(&version, &checksum); err != nil {
			return nil, err
		}
		applied[version] = checksum
	}
	return applied, rows.Err()
}

func (m *Migrator) applyMigration(ctx context.Context, file migrationFile) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, file.Content); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, checksum) VALUES ($1, $2)`,
		file.Version, file.Checksum); err != nil {
		return err
	}
	return tx.Commit()
}

func loadMigrationFiles() ([]migrationFile, error) {
	entries, err := migrationFiles.ReadDir("sql")
	if err != nil {
		return nil, err
	}

	files := make([]migrationFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		content, err := migrationFiles.ReadFile("sql/" + entry.Name())
		if err != nil {
			return nil, err
		}
		sum := sha256.Sum256(content)
		files = append(files, migrationFile{
			Version:  strings.TrimSuffix(entry.Name(), ".sql"),
			Content:  string(content),
			Checksum: hex.EncodeToString(sum[:]),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Version < files[j].Version })
	return files, nil
}
