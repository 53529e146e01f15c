// Package baseline stores accepted diagnostics in a SQLite database so that
// later runs only report new findings.
package baseline

import (
	"database/sql"
	"time"

	"github.com/funvibe/typesniff/internal/sniff"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS accepted (
	fingerprint TEXT PRIMARY KEY,
	file        TEXT NOT NULL,
	code        TEXT NOT NULL,
	subject     TEXT NOT NULL,
	message     TEXT NOT NULL,
	run_id      TEXT NOT NULL REFERENCES runs(id)
);`

// Store is an open baseline database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the baseline at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening baseline %s", path)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "initializing baseline %s", path)
	}
	return &Store{db: db}, nil
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// Record accepts diags under runID, replacing earlier entries with the same
// fingerprint.
func (s *Store) Record(runID string, diags []sniff.Diagnostic) error {
	if _, err := uuid.Parse(runID); err != nil {
		return errors.Wrapf(err, "invalid run id %q", runID)
	}
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "starting baseline transaction")
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT OR IGNORE INTO runs (id, created_at) VALUES (?, ?)`,
		runID, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return errors.Wrap(err, "recording run")
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO accepted
		(fingerprint, file, code, subject, message, run_id) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "preparing baseline insert")
	}
	defer stmt.Close()

	for _, d := range diags {
		if _, err := stmt.Exec(d.Fingerprint(), d.File, d.Code, d.Subject, d.Message, runID); err != nil {
			return errors.Wrapf(err, "recording %s:%d", d.File, d.Line)
		}
	}
	return errors.Wrap(tx.Commit(), "committing baseline")
}

// Filter drops diagnostics that are already accepted.
func (s *Store) Filter(diags []sniff.Diagnostic) ([]sniff.Diagnostic, error) {
	known, err := s.fingerprints()
	if err != nil {
		return nil, err
	}
	var result []sniff.Diagnostic
	for _, d := range diags {
		if !known[d.Fingerprint()] {
			result = append(result, d)
		}
	}
	return result, nil
}

// Count returns the number of accepted diagnostics.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM accepted`).Scan(&n)
	return n, errors.Wrap(err, "counting baseline")
}

func (s *Store) fingerprints() (map[string]bool, error) {
	rows, err := s.db.Query(`SELECT fingerprint FROM accepted`)
	if err != nil {
		return nil, errors.Wrap(err, "reading baseline")
	}
	defer rows.Close()

	known := make(map[string]bool)
	for rows.Next() {
		var fp string
		if err := rows.Scan(&fp); err != nil {
			return nil, errors.Wrap(err, "reading baseline")
		}
		known[fp] = true
	}
	return known, errors.Wrap(rows.Err(), "reading baseline")
}

func (s *Store) Close() error {
	return s.db.Close()
}
