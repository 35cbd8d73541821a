// Package sqlite persists run artifacts into a SQLite database,
// an optional secondary sink alongside the JSONL files. List-valued
// card fields are stored as JSON columns.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/docdex-cli/internal/adapters/driven/sink/sqlite/migrations"
	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.ArtifactSink = (*Sink)(nil)

// Sink writes cards, chunks and manifests into a SQLite database.
// Re-running a build over the same input replaces rows wholesale:
// ids are content-addressed, so unchanged documents overwrite
// themselves.
type Sink struct {
	db   *sql.DB
	path string
}

// NewSink opens (or creates) the database at dbPath and applies
// pending migrations.
func NewSink(dbPath string) (*Sink, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Sink{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Sink) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Sink) Path() string {
	return s.path
}

// WriteCards upserts all cards in one transaction.
func (s *Sink) WriteCards(ctx context.Context, cards []domain.KnowledgeCard) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT OR REPLACE INTO cards
				(id, title, date, source_path, facts, acronyms, entities, citations)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i := range cards {
			c := &cards[i]
			facts, err := json.Marshal(c.Facts)
			if err != nil {
				return err
			}
			acronyms, err := json.Marshal(c.Acronyms)
			if err != nil {
				return err
			}
			entities, err := json.Marshal(c.Entities)
			if err != nil {
				return err
			}
			citations, err := json.Marshal(c.Citations)
			if err != nil {
				return err
			}

			date := sql.NullString{String: c.Date, Valid: c.Date != ""}
			if _, err := stmt.ExecContext(ctx,
				c.ID, c.Title, date, c.SourcePath,
				string(facts), string(acronyms), string(entities), string(citations),
			); err != nil {
				return fmt.Errorf("insert card %s: %w", c.ID, err)
			}
		}
		return nil
	})
}

// WriteChunks upserts all chunks in one transaction.
func (s *Sink) WriteChunks(ctx context.Context, chunks []domain.Chunk) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT OR REPLACE INTO chunks
				(id, doc_id, ordinal, text, source_path, page, line_start, line_end)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i := range chunks {
			c := &chunks[i]
			if _, err := stmt.ExecContext(ctx,
				c.ID, c.DocID, c.Ordinal, c.Text, c.SourcePath,
				nullableInt(c.Page), nullableInt(c.LineStart), nullableInt(c.LineEnd),
			); err != nil {
				return fmt.Errorf("insert chunk %s: %w", c.ID, err)
			}
		}
		return nil
	})
}

// WriteManifest inserts the run manifest. Each run gets its own row,
// keyed by run id.
func (s *Sink) WriteManifest(ctx context.Context, manifest *domain.Manifest) error {
	skipped, err := json.Marshal(manifest.SkippedFiles)
	if err != nil {
		return err
	}
	checksums, err := json.Marshal(manifest.Checksums)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO manifests
			(run_id, total_documents, total_cards, total_chunks, skipped_files, checksums, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		manifest.RunID, manifest.TotalDocuments, manifest.TotalCards,
		manifest.TotalChunks, string(skipped), string(checksums), manifest.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert manifest: %w", err)
	}
	return nil
}

// inTx runs fn inside a transaction, rolling back on error.
func (s *Sink) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// migrate applies pending .up.sql migrations in version order.
func (s *Sink) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(data)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version,
		); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// nullableInt converts an optional int to its SQL representation.
func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
