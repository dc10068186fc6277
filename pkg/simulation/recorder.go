package simulation

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const recorderSchema = `
CREATE TABLE bodies (
	tick 	INTEGER,
	name 	TEXT,
	kind 	INTEGER,
	mass 	REAL,
	x 		REAL,
	y 		REAL,
	size 	REAL);
CREATE INDEX idx_tick ON bodies (tick);
`

const recorderInsert = `INSERT INTO bodies VALUES (?, ?, ?, ?, ?, ?, ?);`

// Recorder writes per-tick body snapshots to a sqlite file for offline
// analysis. One writer only; sqlite allows nothing more anyway.
type Recorder struct {
	db   *sql.DB
	stmt *sql.Stmt
	tick int64
}

// OpenRecorder creates the snapshot database at path.
func OpenRecorder(path string) (*Recorder, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?_journal_mode=OFF&_synchronous=OFF")
	if err != nil {
		return nil, fmt.Errorf("opening recorder db: %w", err)
	}
	if _, err := db.Exec(recorderSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating recorder schema: %w", err)
	}
	stmt, err := db.Prepare(recorderInsert)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing recorder insert: %w", err)
	}
	return &Recorder{db: db, stmt: stmt}, nil
}

// Snapshot writes one row per body under the next tick number.
func (r *Recorder) Snapshot(s *System) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	for _, b := range s.Bodies {
		if _, err = tx.Stmt(r.stmt).Exec(
			r.tick, b.Name, int(b.Kind), b.Mass,
			b.Pos.X(), b.Pos.Y(), b.Size); err != nil {
			tx.Rollback()
			return err
		}
	}
	r.tick++
	return tx.Commit()
}

// Close releases the database handle.
func (r *Recorder) Close() error {
	r.stmt.Close()
	return r.db.Close()
}
