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

package phon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateEmptyInput(t *testing.T) {
	out, err := Translate("")
	assert.NoError(t, err)
	assert.Equal(t, "|$|", out)
}

func TestTranslateIsTotalAndFramed(t *testing.T) {
	out, err := Translate("kocka.\n")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "|$|"))
}

func TestTranslateOnlyAlphabetSymbols(t *testing.T) {
	out, err := Translate("Dobry den, jak se mate?\n")
	assert.NoError(t, err)
	for _, r := range out {
		if r == '?' {
			continue // unmapped punctuation passes through untouched, as in the source
		}
		if r == '\n' {
			continue // newlines are kept as line separators between transcribed sentences
		}
		assert.True(t, containsRune(Alphabet, r), "unexpected symbol %q in transcription", r)
	}
}

func TestChainReplacementUnvoicedDominant(t *testing.T) {
	// "potkova": chain "tk", dominant 'k' is unvoiced, no voiced pair
	// consonant is present inside the run, so it is left unchanged.
	assert.Equal(t, "potkova", chainReplacement("potkova"))
}

func TestChainReplacementVoicedDominantNoOp(t *testing.T) {
	// "leZba": chain "Zb", dominant 'b' is voiced and 'Z' is already
	// voiced, so the run is unchanged.
	assert.Equal(t, "leZba", chainReplacement("leZba"))
}

func TestChainReplacementUnvoicedDominantDevoices(t *testing.T) {
	// "leZka": chain "Zk", dominant 'k' is unvoiced, so voiced 'Z'
	// devoices to 'S'.
	assert.Equal(t, "leSka", chainReplacement("leZka"))
}

func TestChainReplacementRecessiveLeavesChainAlone(t *testing.T) {
	// a chain dominated by the recessive 'v' is never assimilated.
	out := chainReplacement("podv")
	assert.Equal(t, "podv", out)
}

func TestChainReplacementSingleBoundaryInsideRun(t *testing.T) {
	// a single word boundary may sit inside one chain region.
	out := chainReplacement("pod|kova")
	// dominant is the last char of the whole matched run ('a' is a
	// vowel, not part of the [PairConsonants]+ run, so the matched
	// region is "d|k"; dominant 'k' unvoiced -> 'd' devoices to 't'.
	assert.Equal(t, "pot|kova", out)
}

func TestGrindDropsTrailingSentenceBoundary(t *testing.T) {
	out := grind("abc|$|")
	assert.Equal(t, "|$|abc", out)
}

func TestVoicingMapSymmetry(t *testing.T) {
	for _, c := range UnvoicedConsonants {
		v, ok := Voice(c)
		assert.True(t, ok)
		back, ok := Devoice(v)
		assert.True(t, ok)
		assert.Equal(t, c, back, "voicing map must be its own inverse for %q", string(c))
	}
}
