// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University, Faculty of Arts,
//                Institute of the Czech National Corpus
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sqlite implements the build-manifest store (package report)
// against a local sqlite3 database file.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	_ "github.com/mattn/go-sqlite3" // load the driver

	"github.com/thonzyk/hds-go/report"
)

const schema = `
CREATE TABLE IF NOT EXISTS sentence_report (
	name TEXT PRIMARY KEY,
	diphone_count INTEGER,
	skipped_units INTEGER,
	processed_at TEXT,
	elapsed_millis INTEGER
);
CREATE TABLE IF NOT EXISTS diphone_report (
	diphone_key TEXT PRIMARY KEY,
	alt_count INTEGER
);
`

// Writer persists build-manifest records to a local sqlite3 file.
type Writer struct {
	Path string

	db *sql.DB
	tx *sql.Tx
}

func openDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open build manifest db: %w", err)
	}
	return db, nil
}

// Initialize opens the database, creates the schema if missing, and
// starts a transaction that Commit finalizes.
func (w *Writer) Initialize() error {
	db, err := openDatabase(w.Path)
	if err != nil {
		return err
	}
	w.db = db
	if _, err := w.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create build manifest schema: %w", err)
	}
	w.tx, err = w.db.Begin()
	return err
}

// RecordSentence inserts or replaces one per-sentence provenance row.
func (w *Writer) RecordSentence(rec report.SentenceRecord) error {
	_, err := w.tx.Exec(
		`INSERT OR REPLACE INTO sentence_report (name, diphone_count, skipped_units, processed_at, elapsed_millis)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Name, rec.DiphoneCount, rec.SkippedUnits, rec.ProcessedAt.Format("2006-01-02T15:04:05Z07:00"), rec.ElapsedMillis,
	)
	if err != nil {
		log.Warn().Err(err).Str("sentence", rec.Name).Msg("failed to record sentence in build manifest")
	}
	return err
}

// RecordDiphone inserts or replaces one per-diphone coverage row.
func (w *Writer) RecordDiphone(rec report.DiphoneRecord) error {
	_, err := w.tx.Exec(
		`INSERT OR REPLACE INTO diphone_report (diphone_key, alt_count) VALUES (?, ?)`,
		rec.Key, rec.AltCount,
	)
	return err
}

// Commit finalizes the transaction.
func (w *Writer) Commit() error {
	if w.tx == nil {
		return nil
	}
	return w.tx.Commit()
}

// Close closes the underlying database handle.
func (w *Writer) Close() error {
	if w.db == nil {
		return nil
	}
	return w.db.Close()
}
