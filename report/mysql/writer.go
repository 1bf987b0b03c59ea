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

// Package mysql implements the build-manifest store (package report)
// against a shared MySQL instance, for inventory builds distributed
// across several machines writing to the same manifest.
package mysql

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // load the driver

	"github.com/thonzyk/hds-go/report"
)

const schema = `
CREATE TABLE IF NOT EXISTS sentence_report (
	name VARCHAR(255) PRIMARY KEY,
	diphone_count INT,
	skipped_units INT,
	processed_at DATETIME,
	elapsed_millis BIGINT
);
CREATE TABLE IF NOT EXISTS diphone_report (
	diphone_key VARCHAR(8) PRIMARY KEY,
	alt_count INT
);
`

// Writer persists build-manifest records to a shared MySQL database,
// identified by a standard go-sql-driver/mysql DSN.
type Writer struct {
	DSN string

	db *sql.DB
}

// Initialize opens the connection and creates the schema if missing.
func (w *Writer) Initialize() error {
	db, err := sql.Open("mysql", w.DSN)
	if err != nil {
		return fmt.Errorf("failed to open build manifest db: %w", err)
	}
	w.db = db
	for _, stmt := range splitStatements(schema) {
		if _, err := w.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create build manifest schema: %w", err)
		}
	}
	return nil
}

// RecordSentence upserts one per-sentence provenance row.
func (w *Writer) RecordSentence(rec report.SentenceRecord) error {
	_, err := w.db.Exec(
		`INSERT INTO sentence_report (name, diphone_count, skipped_units, processed_at, elapsed_millis)
		 VALUES (?, ?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE diphone_count=VALUES(diphone_count), skipped_units=VALUES(skipped_units),
		 processed_at=VALUES(processed_at), elapsed_millis=VALUES(elapsed_millis)`,
		rec.Name, rec.DiphoneCount, rec.SkippedUnits, rec.ProcessedAt, rec.ElapsedMillis,
	)
	return err
}

// RecordDiphone upserts one per-diphone coverage row.
func (w *Writer) RecordDiphone(rec report.DiphoneRecord) error {
	_, err := w.db.Exec(
		`INSERT INTO diphone_report (diphone_key, alt_count) VALUES (?, ?)
		 ON DUPLICATE KEY UPDATE alt_count=VALUES(alt_count)`,
		rec.Key, rec.AltCount,
	)
	return err
}

// Commit is a no-op: every write already auto-commits against the
// shared instance.
func (w *Writer) Commit() error {
	return nil
}

// Close closes the underlying database handle.
func (w *Writer) Close() error {
	if w.db == nil {
		return nil
	}
	return w.db.Close()
}

func splitStatements(s string) []string {
	var stmts []string
	var cur []byte
	for i := 0; i < len(s); i++ {
		cur = append(cur, s[i])
		if s[i] == ';' {
			stmts = append(stmts, string(cur))
			cur = nil
		}
	}
	return stmts
}
