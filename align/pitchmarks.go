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

// Package align parses the per-sentence training artifacts consumed
// by the inventory builder: pitch-mark files, MLF-derived phoneme
// alignment files and plain-text feature tracks (energy, F0, MFCC).
package align

import (
	"bufio"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/thonzyk/hds-go/herr"
)

// PitchMarkType is the glottal-closure classification of a pitch mark.
type PitchMarkType byte

const (
	// Voiced marks a glottal-closure instant.
	Voiced PitchMarkType = 'V'
	// Unvoiced marks an unvoiced excitation impulse.
	Unvoiced PitchMarkType = 'U'
	// Transitional marks a transitional point; excluded from
	// inventory building.
	Transitional PitchMarkType = 'T'
)

// PitchMark is one (time, type) tuple read from a pitch-mark file.
type PitchMark struct {
	Time float64
	Type PitchMarkType
}

// PitchMarks is an ordered, ascending-by-time list of pitch marks
// with type 'T' already filtered out, and a nearest-successor lookup.
type PitchMarks []PitchMark

// ReadPitchMarks parses a pitch-mark file: non-empty lines of the
// form "<time> <time> <type>". A leading space on a line is
// stripped. Pitch marks tagged 'T' (transitional) are excluded.
func ReadPitchMarks(path string) (PitchMarks, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, herr.MissingFile(path, err)
	}
	defer f.Close()

	var marks PitchMarks
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(line, " ") {
			line = line[1:]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, herr.InputFormat(path, lineNo, "pitch mark line needs 3 fields", nil)
		}
		typ := fields[len(fields)-1]
		if typ == string(Transitional) {
			continue
		}
		t, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, herr.InputFormat(path, lineNo, "unparseable pitch mark time", err)
		}
		var pmt PitchMarkType
		switch typ {
		case "V":
			pmt = Voiced
		case "U":
			pmt = Unvoiced
		default:
			return nil, herr.InputFormat(path, lineNo, "unknown pitch mark type "+typ, nil)
		}
		marks = append(marks, PitchMark{Time: t, Type: pmt})
	}
	if err := scanner.Err(); err != nil {
		return nil, herr.InputFormat(path, lineNo, "scan failure", err)
	}
	return marks, nil
}

// Nearest returns the pitch mark at the smallest index i such that
// pm[i].Time > t (the right-successor). If t is past the last pitch
// mark, it clamps to the final pitch mark and returns it together
// with a non-fatal BoundaryOutOfRange error.
func (pms PitchMarks) Nearest(t float64) (float64, error) {
	if len(pms) == 0 {
		return 0, herr.BoundaryOutOfRange(t)
	}
	i := sort.Search(len(pms), func(i int) bool {
		return pms[i].Time > t
	})
	if i == len(pms) {
		return pms[len(pms)-1].Time, herr.BoundaryOutOfRange(t)
	}
	return pms[i].Time, nil
}
