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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTmpFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)
	return path
}

func TestReadPitchMarksExcludesTransitional(t *testing.T) {
	path := writeTmpFile(t, "0.01 0.01 V\n0.02 0.02 U\n0.03 0.03 T\n0.04 0.04 V\n")
	pms, err := ReadPitchMarks(path)
	assert.NoError(t, err)
	assert.Len(t, pms, 3)
	assert.Equal(t, Voiced, pms[0].Type)
	assert.Equal(t, Unvoiced, pms[1].Type)
	assert.Equal(t, Voiced, pms[2].Type)
}

func TestReadPitchMarksStripsLeadingSpace(t *testing.T) {
	path := writeTmpFile(t, " 0.01 0.01 V\n")
	pms, err := ReadPitchMarks(path)
	assert.NoError(t, err)
	assert.Len(t, pms, 1)
	assert.InDelta(t, 0.01, pms[0].Time, 1e-9)
}

func TestPitchMarksNearestRightSuccessor(t *testing.T) {
	pms := PitchMarks{{Time: 0.01, Type: Voiced}, {Time: 0.02, Type: Voiced}, {Time: 0.03, Type: Voiced}}
	got, err := pms.Nearest(0.015)
	assert.NoError(t, err)
	assert.InDelta(t, 0.02, got, 1e-9)
}

func TestPitchMarksNearestClampsPastEnd(t *testing.T) {
	pms := PitchMarks{{Time: 0.01, Type: Voiced}}
	got, err := pms.Nearest(0.5)
	assert.Error(t, err)
	assert.InDelta(t, 0.01, got, 1e-9)
}

func TestReadAlignmentSkipsSentinelLine(t *testing.T) {
	// ticks are in 100ns units
	content := "0 1000000 sil\n1000000 2000000 a\n2000000 3000000 b\n"
	path := writeTmpFile(t, content)
	pms := PitchMarks{{Time: 0.0, Type: Voiced}, {Time: 0.15, Type: Voiced}, {Time: 0.25, Type: Voiced}}
	segs, err := ReadAlignment(path, pms, 0.01)
	assert.NoError(t, err)
	assert.Len(t, segs, 2)
	assert.Equal(t, "$a", segs[0].Diphone)
	assert.Equal(t, "ab", segs[1].Diphone)
}

func TestReadScalarTrackParsesPipeRows(t *testing.T) {
	path := writeTmpFile(t, "| 0.01 | 1.5 |\n| 0.02 | 2.5 |\n")
	track, err := ReadScalarTrack(path)
	assert.NoError(t, err)
	v, err := track.At(0.015)
	assert.NoError(t, err)
	assert.InDelta(t, 2.5, v, 1e-9)
}

func TestReadVectorTrackDeterminesK(t *testing.T) {
	path := writeTmpFile(t, "| 0.01 | 1.0 | 2.0 | 3.0 |\n| 0.02 | 4.0 | 5.0 | 6.0 |\n")
	track, err := ReadVectorTrack(path)
	assert.NoError(t, err)
	assert.Equal(t, 3, track.K)
	v, err := track.At(0.0)
	assert.NoError(t, err)
	assert.Equal(t, []float64{1.0, 2.0, 3.0}, v)
}
