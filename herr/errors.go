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

// Package herr defines the structured error kinds used across the
// transcription, inventory-building and unit-selection packages.
package herr

import "fmt"

// Kind classifies an error so callers can decide whether to abort
// the enclosing operation or recover locally.
type Kind int

const (
	// KindInputFormat marks malformed input: bad UTF-8, an
	// unparseable numeric field or a missing required column.
	KindInputFormat Kind = iota

	// KindMissingFile marks a required file that does not exist.
	KindMissingFile

	// KindMissingDirectory marks a required directory that does not exist.
	KindMissingDirectory

	// KindShortUnit marks a candidate diphone cut at or below
	// MIN_LENGTH. Recovered locally by skipping the unit.
	KindShortUnit

	// KindEmptyAlternatives marks a diphone that survived fallback
	// resolution but whose inventory list is empty. Fatal for the
	// enclosing sentence.
	KindEmptyAlternatives

	// KindMissingDiphone marks a diphone for which no substitute
	// could be found. The diphone is dropped from the lattice.
	KindMissingDiphone

	// KindBoundaryOutOfRange marks a nearest-pitch-mark lookup that
	// ran past the end of the pitch-mark list.
	KindBoundaryOutOfRange
)

func (k Kind) String() string {
	switch k {
	case KindInputFormat:
		return "InputFormat"
	case KindMissingFile:
		return "MissingFile"
	case KindMissingDirectory:
		return "MissingDirectory"
	case KindShortUnit:
		return "ShortUnit"
	case KindEmptyAlternatives:
		return "EmptyAlternatives"
	case KindMissingDiphone:
		return "MissingDiphone"
	case KindBoundaryOutOfRange:
		return "BoundaryOutOfRange"
	default:
		return "Unknown"
	}
}

// Error is a structured error carrying its Kind plus the file/line
// context required by spec for InputFormat-class failures.
type Error struct {
	Kind Kind
	Path string
	Line int
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	var loc string
	if e.Path != "" {
		if e.Line > 0 {
			loc = fmt.Sprintf(" (%s:%d)", e.Path, e.Line)
		} else {
			loc = fmt.Sprintf(" (%s)", e.Path)
		}
	}
	if e.Err != nil {
		return fmt.Sprintf("%s%s: %s: %v", e.Kind, loc, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s%s: %s", e.Kind, loc, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Fatal reports whether an error of this kind must abort the
// enclosing sentence/operation rather than being recovered locally.
func (e *Error) Fatal() bool {
	switch e.Kind {
	case KindShortUnit, KindMissingDiphone, KindBoundaryOutOfRange:
		return false
	default:
		return true
	}
}

// InputFormat builds a KindInputFormat error.
func InputFormat(path string, line int, msg string, err error) *Error {
	return &Error{Kind: KindInputFormat, Path: path, Line: line, Msg: msg, Err: err}
}

// MissingFile builds a KindMissingFile error.
func MissingFile(path string, err error) *Error {
	return &Error{Kind: KindMissingFile, Path: path, Msg: "required file is missing", Err: err}
}

// MissingDirectory builds a KindMissingDirectory error.
func MissingDirectory(path string, err error) *Error {
	return &Error{Kind: KindMissingDirectory, Path: path, Msg: "required directory is missing", Err: err}
}

// EmptyAlternatives builds a KindEmptyAlternatives error for diphone d.
func EmptyAlternatives(diphone string) *Error {
	return &Error{Kind: KindEmptyAlternatives, Msg: fmt.Sprintf("diphone %q has no alternatives in the inventory", diphone)}
}

// MissingDiphone builds a KindMissingDiphone error for diphone d.
func MissingDiphone(diphone string) *Error {
	return &Error{Kind: KindMissingDiphone, Msg: fmt.Sprintf("no substitute found for diphone %q", diphone)}
}

// BoundaryOutOfRange builds a KindBoundaryOutOfRange error.
func BoundaryOutOfRange(query float64) *Error {
	return &Error{Kind: KindBoundaryOutOfRange, Msg: fmt.Sprintf("no pitch mark beyond t=%.6f", query)}
}
