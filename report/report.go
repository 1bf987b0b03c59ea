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

// Package report defines the build-manifest store written alongside
// the opaque inventory artifact: one row per processed training
// sentence and one row per distinct diphone key, so operators can
// query inventory build provenance (coverage, skip counts, timing)
// without touching the binary artifact itself. This is additive
// instrumentation; it never changes the inventory's own format.
package report

import "time"

// SentenceRecord is one row of per-sentence build provenance.
type SentenceRecord struct {
	Name          string
	DiphoneCount  int
	SkippedUnits  int
	ProcessedAt   time.Time
	ElapsedMillis int64
}

// DiphoneRecord is one row of per-diphone coverage after the merge
// step completes.
type DiphoneRecord struct {
	Key          string
	AltCount     int
}

// Writer is the build-manifest store interface. It is implemented by
// a local sqlite-backed writer, a shared MySQL-backed writer, and a
// NullWriter for when manifest recording is disabled.
type Writer interface {
	Initialize() error
	RecordSentence(rec SentenceRecord) error
	RecordDiphone(rec DiphoneRecord) error
	Commit() error
	Close() error
}

// NullWriter discards every record. It is returned by factory.New
// when no manifest DB type is configured.
type NullWriter struct{}

func (NullWriter) Initialize() error                    { return nil }
func (NullWriter) RecordSentence(rec SentenceRecord) error { return nil }
func (NullWriter) RecordDiphone(rec DiphoneRecord) error   { return nil }
func (NullWriter) Commit() error                        { return nil }
func (NullWriter) Close() error                         { return nil }
