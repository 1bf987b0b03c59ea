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
	"strconv"
	"strings"

	"github.com/thonzyk/hds-go/herr"
)

// TimeStep converts MLF-derived alignment ticks (100ns units) to
// seconds.
const TimeStep = 1.0e-7

// DiphoneSegment is one (diphone, start, end) cut produced by
// splitting a sentence's alignment stream. Diphones span
// phoneme-midpoint to phoneme-midpoint so that the resulting cuts
// are pitch-synchronous.
type DiphoneSegment struct {
	Diphone string
	Start   float64
	End     float64
}

// ReadAlignment parses one sentence's MLF-derived alignment file.
// Each data line is "<start_ticks> <end_ticks> <label>". The first
// line is a sentinel whose end time seeds last_center=0 and
// last_phoneme='$'; thereafter each consecutive phoneme pair emits a
// diphone segment whose start is max(prev_center-FADE_TIME/2, 0) and
// whose end is the nearest pitch mark to the current phoneme's
// midpoint.
func ReadAlignment(path string, pms PitchMarks, fadeTime float64) ([]DiphoneSegment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, herr.MissingFile(path, err)
	}
	defer f.Close()

	var segments []DiphoneSegment
	scanner := bufio.NewScanner(f)
	lineNo := 0
	first := true
	lastPhoneme := "$"
	lastCenter := 0.0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if first {
			first = false
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, herr.InputFormat(path, lineNo, "alignment line needs 3 fields", nil)
		}
		startTicks, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, herr.InputFormat(path, lineNo, "unparseable start tick", err)
		}
		endTicks, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, herr.InputFormat(path, lineNo, "unparseable end tick", err)
		}
		phoneme := fields[2]

		start := startTicks * TimeStep
		stop := endTicks * TimeStep
		midpoint := (start + stop) / 2

		center, nearestErr := pms.Nearest(midpoint)
		if nearestErr != nil {
			if e, ok := nearestErr.(*herr.Error); !ok || e.Fatal() {
				return nil, nearestErr
			}
			// BoundaryOutOfRange: recovered by clamping.
		}

		segStart := lastCenter - fadeTime/2
		if segStart < 0 {
			segStart = 0
		}

		segments = append(segments, DiphoneSegment{
			Diphone: lastPhoneme + phoneme,
			Start:   segStart,
			End:     center,
		})

		lastCenter = center
		lastPhoneme = phoneme
	}
	if err := scanner.Err(); err != nil {
		return nil, herr.InputFormat(path, lineNo, "scan failure", err)
	}
	return segments, nil
}
