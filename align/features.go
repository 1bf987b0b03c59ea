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

package align

import (
	"bufio"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/thonzyk/hds-go/herr"
)

// ScalarTrack is a time-indexed sequence of scalar values, e.g. an
// energy or F0 track.
type ScalarTrack struct {
	times  []float64
	values []float64
}

// At returns the value whose time is the smallest strictly greater
// than t. On out-of-range lookups it clamps to the last sample and
// returns a BoundaryOutOfRange error.
func (s ScalarTrack) At(t float64) (float64, error) {
	if len(s.times) == 0 {
		return 0, herr.BoundaryOutOfRange(t)
	}
	i := sort.Search(len(s.times), func(i int) bool {
		return s.times[i] > t
	})
	if i == len(s.times) {
		return s.values[len(s.values)-1], herr.BoundaryOutOfRange(t)
	}
	return s.values[i], nil
}

// VectorTrack is a time-indexed sequence of fixed-dimension vectors,
// used for the MFCC track. Its dimension K is determined at load time
// from the file's own column count, never hard-coded.
type VectorTrack struct {
	times  []float64
	values [][]float64
	K      int
}

// At returns the vector whose time is the smallest strictly greater
// than t.
func (v VectorTrack) At(t float64) ([]float64, error) {
	if len(v.times) == 0 {
		return nil, herr.BoundaryOutOfRange(t)
	}
	i := sort.Search(len(v.times), func(i int) bool {
		return v.times[i] > t
	})
	if i == len(v.times) {
		return v.values[len(v.values)-1], herr.BoundaryOutOfRange(t)
	}
	return v.values[i], nil
}

// parsePipeRow splits a "| a | b | c |" data line on '|' and trims
// the empty leading/trailing fields produced by the bounding pipes.
func parsePipeRow(line string) []string {
	parts := strings.Split(line, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ReadScalarTrack parses an energy or F0 feature file: each data line
// begins with '|' and has the form "| time | value |".
func ReadScalarTrack(path string) (ScalarTrack, error) {
	f, err := os.Open(path)
	if err != nil {
		return ScalarTrack{}, herr.MissingFile(path, err)
	}
	defer f.Close()

	var track ScalarTrack
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !strings.HasPrefix(strings.TrimSpace(line), "|") {
			continue
		}
		fields := parsePipeRow(line)
		if len(fields) < 2 {
			return ScalarTrack{}, herr.InputFormat(path, lineNo, "scalar track row needs time and value", nil)
		}
		t, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return ScalarTrack{}, herr.InputFormat(path, lineNo, "unparseable track time", err)
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return ScalarTrack{}, herr.InputFormat(path, lineNo, "unparseable track value", err)
		}
		track.times = append(track.times, t)
		track.values = append(track.values, v)
	}
	if err := scanner.Err(); err != nil {
		return ScalarTrack{}, herr.InputFormat(path, lineNo, "scan failure", err)
	}
	return track, nil
}

// ReadVectorTrack parses the MFCC feature file: each data line begins
// with '|' and has the form "| time | v_1 | ... | v_K |". K is taken
// from the first data line's column count.
func ReadVectorTrack(path string) (VectorTrack, error) {
	f, err := os.Open(path)
	if err != nil {
		return VectorTrack{}, herr.MissingFile(path, err)
	}
	defer f.Close()

	var track VectorTrack
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !strings.HasPrefix(strings.TrimSpace(line), "|") {
			continue
		}
		fields := parsePipeRow(line)
		if len(fields) < 2 {
			return VectorTrack{}, herr.InputFormat(path, lineNo, "vector track row needs time and at least one value", nil)
		}
		t, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return VectorTrack{}, herr.InputFormat(path, lineNo, "unparseable track time", err)
		}
		k := len(fields) - 1
		if track.K == 0 {
			track.K = k
		} else if k != track.K {
			return VectorTrack{}, herr.InputFormat(path, lineNo, "vector track row has inconsistent dimension", nil)
		}
		vec := make([]float64, k)
		for i, raw := range fields[1:] {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return VectorTrack{}, herr.InputFormat(path, lineNo, "unparseable track coefficient", err)
			}
			vec[i] = v
		}
		track.times = append(track.times, t)
		track.values = append(track.values, vec)
	}
	if err := scanner.Err(); err != nil {
		return VectorTrack{}, herr.InputFormat(path, lineNo, "scan failure", err)
	}
	return track, nil
}
