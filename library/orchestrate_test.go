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

package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveOutputPathReplacesOrthoAndMovesToOutputDir(t *testing.T) {
	got := DeriveOutputPath("/data/corpus/ortho/ortho001.txt")
	assert.Equal(t, filepath.Join("/data/corpus/ortho", "..", "output", "phntrn001.txt"), got)
}

func TestDiphonesOfStripsMarkersAndEmitsAdjacentPairs(t *testing.T) {
	ds := diphonesOf("|$|pot|kova|$|")
	assert.Equal(t, []string{"$p", "po", "ot", "tk", "ko", "ov", "va", "a$"}, ds)
}

func TestDiphonesOfTooShortReturnsNil(t *testing.T) {
	assert.Nil(t, diphonesOf("|$|"))
}

func TestTranscribeWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("auto"), 0644))

	require.NoError(t, Transcribe(in, out))
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}
