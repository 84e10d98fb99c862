package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/fixtodict/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/fixtodict/internal/core/domain"
	"github.com/custodia-labs/fixtodict/internal/core/ports/driven"
)

// DatabaseFile is the ledger file name inside the data directory.
const DatabaseFile = "ledger.db"

// Ensure Store implements the interface.
var _ driven.LedgerStore = (*Store)(nil)

// Store is the SQLite-backed generation ledger.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.fixtodict/data/ledger.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".fixtodict", "data")
	}

	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending up migrations in version order.
func (s *Store) migrate(fsys fs.FS) error {
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
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_ledger.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if err := s.apply(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

func (s *Store) apply(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(script); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Record stores a generation record. Recording an existing ID is an error.
func (s *Store) Record(ctx context.Context, rec domain.GenerationRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("%w: record id is empty", domain.ErrInvalidInput)
	}

	versionJSON, err := json.Marshal(rec.Version)
	if err != nil {
		return fmt.Errorf("marshalling version: %w", err)
	}
	patches := rec.Patches
	if patches == nil {
		patches = []string{}
	}
	patchesJSON, err := json.Marshal(patches)
	if err != nil {
		return fmt.Errorf("marshalling patches: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO generations (id, operation, version, source, output, checksum, patches, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Operation, string(versionJSON), rec.Source, rec.Output,
		rec.Checksum, string(patchesJSON), rec.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("recording generation: %w", err)
	}
	return nil
}

// Get retrieves a record by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.GenerationRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, operation, version, source, output, checksum, patches, created_at
		FROM generations WHERE id = ?
	`, id)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// List returns up to limit records, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]domain.GenerationRecord, error) {
	query := `
		SELECT id, operation, version, source, output, checksum, patches, created_at
		FROM generations ORDER BY created_at DESC, id ASC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying generations: %w", err)
	}
	defer rows.Close()

	var recs []domain.GenerationRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating generations: %w", err)
	}
	return recs, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*domain.GenerationRecord, error) {
	var rec domain.GenerationRecord
	var versionJSON, patchesJSON string
	var createdAt sql.NullTime
	if err := row.Scan(&rec.ID, &rec.Operation, &versionJSON, &rec.Source, &rec.Output,
		&rec.Checksum, &patchesJSON, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning generation: %w", err)
	}

	if err := json.Unmarshal([]byte(versionJSON), &rec.Version); err != nil {
		return nil, fmt.Errorf("unmarshaling version: %w", err)
	}
	if err := json.Unmarshal([]byte(patchesJSON), &rec.Patches); err != nil {
		return nil, fmt.Errorf("unmarshaling patches: %w", err)
	}
	if len(rec.Patches) == 0 {
		rec.Patches = nil
	}
	if createdAt.Valid {
		rec.CreatedAt = createdAt.Time.UTC()
	}
	return &rec, nil
}
