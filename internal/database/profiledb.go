package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/bidscan/internal/model"
)

// FileName is the database file created inside the database directory.
const FileName = "bidscan.db"

// ErrNotFound is returned by Open when the database does not exist and
// creation was not requested.
var ErrNotFound = errors.New("profile database not found")

// ProfileDB stores the company roster in SQLite.
type ProfileDB struct {
	db     *sql.DB
	dbPath string
}

// Options configures ProfileDB behavior.
type Options struct {
	// CreateIfNotExists creates the directory and database file if missing.
	CreateIfNotExists bool

	// EnableWAL enables write-ahead logging.
	EnableWAL bool

	// ReadOnly opens an existing database without touching its schema or
	// journal mode. It overrides CreateIfNotExists and EnableWAL.
	ReadOnly bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// ReadOnlyOptions returns options for reading an existing database.
func ReadOnlyOptions() Options {
	return Options{ReadOnly: true}
}

// Open opens or creates the profile database in dbDir.
func Open(dbDir string, opts Options) (*ProfileDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if opts.ReadOnly {
		opts.CreateIfNotExists = false
		opts.EnableWAL = false
	}

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrNotFound, dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a missing file; mode=rwc creates it.
	dsn := dbPath + "?mode=rw"
	switch {
	case opts.ReadOnly:
		dsn = dbPath + "?mode=ro"
	case opts.CreateIfNotExists:
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	pdb := &ProfileDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if opts.ReadOnly {
		return pdb, nil
	}

	if err := pdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return pdb, nil
}

// Path returns the database file path.
func (pdb *ProfileDB) Path() string {
	return pdb.dbPath
}

// Close closes the database connection.
func (pdb *ProfileDB) Close() error {
	return pdb.db.Close()
}

func (pdb *ProfileDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS companies (
		name TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_companies_position ON companies(position);

	CREATE TABLE IF NOT EXISTS company_licenses (
		company TEXT NOT NULL,
		seq INTEGER NOT NULL,
		license TEXT NOT NULL,
		PRIMARY KEY (company, seq)
	);

	CREATE TABLE IF NOT EXISTS company_items (
		company TEXT NOT NULL,
		seq INTEGER NOT NULL,
		entry TEXT NOT NULL,
		PRIMARY KEY (company, seq)
	);
	`

	_, err := pdb.db.ExecContext(context.Background(), schema)
	return err
}

// ImportRoster replaces the stored roster with roster, keeping its order.
// The replacement is atomic: on error the previous roster is left intact.
func (pdb *ProfileDB) ImportRoster(ctx context.Context, roster model.Roster) (err error) {
	tx, err := pdb.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"company_items", "company_licenses", "companies"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil { //nolint:gosec // fixed table names
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for pos, c := range roster {
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO companies (name, position) VALUES (?, ?)", c.Name, pos); err != nil {
			return fmt.Errorf("failed to insert company %q: %w", c.Name, err)
		}
		for seq, l := range c.Profile.Licenses {
			if _, err = tx.ExecContext(ctx,
				"INSERT INTO company_licenses (company, seq, license) VALUES (?, ?, ?)", c.Name, seq, l); err != nil {
				return fmt.Errorf("failed to insert license of %q: %w", c.Name, err)
			}
		}
		for seq, code := range c.Profile.CertifiedItemCodes {
			if _, err = tx.ExecContext(ctx,
				"INSERT INTO company_items (company, seq, entry) VALUES (?, ?, ?)", c.Name, seq, code); err != nil {
				return fmt.Errorf("failed to insert item of %q: %w", c.Name, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit roster: %w", err)
	}
	return nil
}

// LoadRoster returns the stored roster in import order. An empty database
// yields an empty roster.
func (pdb *ProfileDB) LoadRoster(ctx context.Context) (model.Roster, error) {
	rows, err := pdb.db.QueryContext(ctx, "SELECT name FROM companies ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}

	roster := model.Roster{}
	index := make(map[string]int)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		index[name] = len(roster)
		roster = append(roster, model.Company{Name: name})
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("failed to iterate companies: %w", err)
	}
	_ = rows.Close()

	err = pdb.eachValue(ctx, "SELECT company, license FROM company_licenses ORDER BY company, seq", func(company, value string) {
		if i, ok := index[company]; ok {
			roster[i].Profile.Licenses = append(roster[i].Profile.Licenses, value)
		}
	})
	if err != nil {
		return nil, err
	}

	err = pdb.eachValue(ctx, "SELECT company, entry FROM company_items ORDER BY company, seq", func(company, value string) {
		if i, ok := index[company]; ok {
			roster[i].Profile.CertifiedItemCodes = append(roster[i].Profile.CertifiedItemCodes, value)
		}
	})
	if err != nil {
		return nil, err
	}

	return roster, nil
}

// CompanyCount returns the number of stored companies.
func (pdb *ProfileDB) CompanyCount(ctx context.Context) (int, error) {
	var n int
	if err := pdb.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM companies").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count companies: %w", err)
	}
	return n, nil
}

func (pdb *ProfileDB) eachValue(ctx context.Context, query string, fn func(company, value string)) error {
	rows, err := pdb.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var company, value string
		if err := rows.Scan(&company, &value); err != nil {
			return fmt.Errorf("failed to scan profile row: %w", err)
		}
		fn(company, value)
	}
	return rows.Err()
}
