package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/golang-migrate/migrate/v4/database"
)

const versionTable = "schema_migrations"

// handleDriver adapts the process's already-open database handle to the
// migrate driver contract. The stock sqlite driver registers a second
// database/sql driver named "sqlite" at init, which collides with the one
// the main connection uses; applying migrations through the shared handle
// keeps a single registration in the binary.
type handleDriver struct {
	db *sql.DB
}

func newHandleDriver(db *sql.DB) (database.Driver, error) {
	d := &handleDriver{db: db}
	if err := d.ensureVersionTable(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *handleDriver) ensureVersionTable() error {
	query := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (version uint64, dirty bool)",
		versionTable,
	)
	if _, err := d.db.Exec(query); err != nil {
		return fmt.Errorf("create version table: %w", err)
	}
	return nil
}

func (d *handleDriver) Open(string) (database.Driver, error) {
	return nil, errors.New("open by url is not supported; construct over an existing handle")
}

// Close is a no-op: the handle belongs to the application, not the
// migrator.
func (d *handleDriver) Close() error { return nil }

// Lock and Unlock are no-ops: a single process owns the database file.
func (d *handleDriver) Lock() error   { return nil }
func (d *handleDriver) Unlock() error { return nil }

func (d *handleDriver) Run(migration io.Reader) error {
	statements, err := io.ReadAll(migration)
	if err != nil {
		return fmt.Errorf("read migration: %w", err)
	}
	if _, err := d.db.Exec(string(statements)); err != nil {
		return fmt.Errorf("run migration: %w", err)
	}
	return nil
}

func (d *handleDriver) SetVersion(version int, dirty bool) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin version update: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM " + versionTable); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear version: %w", err)
	}
	if version >= 0 || (version == database.NilVersion && dirty) {
		insert := fmt.Sprintf("INSERT INTO %s (version, dirty) VALUES (?, ?)", versionTable)
		if _, err := tx.Exec(insert, version, dirty); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record version: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit version update: %w", err)
	}
	return nil
}

func (d *handleDriver) Version() (int, bool, error) {
	var (
		version int
		dirty   bool
	)
	query := fmt.Sprintf("SELECT version, dirty FROM %s LIMIT 1", versionTable)
	err := d.db.QueryRow(query).Scan(&version, &dirty)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return database.NilVersion, false, nil
	case err != nil:
		return 0, false, fmt.Errorf("read version: %w", err)
	}
	return version, dirty, nil
}

func (d *handleDriver) Drop() error {
	rows, err := d.db.Query(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'",
	)
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list tables: %w", err)
	}

	for _, table := range tables {
		if _, err := d.db.Exec("DROP TABLE " + table); err != nil {
			return fmt.Errorf("drop table %s: %w", table, err)
		}
	}
	return nil
}
