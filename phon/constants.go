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

// Package phon implements the Czech grapheme-to-phoneme transcriber:
// a deterministic, total, multi-pass string rewriter that turns
// orthographic Czech text into the internal phonetic alphabet with
// prosodic boundary markers.
package phon

// Alphabet is the fixed, closed set of single-codepoint phonetic
// symbols produced by Translate, plus the prosodic markers
// '$', '#', '|', '!' and '%'.
const Alphabet = "ieaouIEAOUyYFfvszSZxhlrRjpbtTdDkgmnJcCwWNMGQPLH!|@$#%"

// Vowels are the short and long vowel symbols.
const Vowels = "aeiouAEIOU"

// UnvoicedConsonants are the voiceless members of PairConsonants.
const UnvoicedConsonants = "ptTkfsSxcCQ"

// VoicedPairConsonants are the voiced members of PairConsonants,
// each the voicing counterpart of one UnvoicedConsonants symbol.
const VoicedPairConsonants = "bdDgvzZhwWR"

// VoicedNonPairConsonants are voiced consonants with no unvoiced
// counterpart (sonorants).
const VoicedNonPairConsonants = "mnNljr"

// RecessiveChars never impose their voicing on a consonant chain.
const RecessiveChars = "v"

// PairConsonants is the union of UnvoicedConsonants and
// VoicedPairConsonants: the symbols the voicing-assimilation pass
// operates over.
const PairConsonants = UnvoicedConsonants + VoicedPairConsonants

// Consonants is every consonant symbol, paired or not.
const Consonants = PairConsonants + VoicedNonPairConsonants

// unvoicedToVoiced maps each UnvoicedConsonants symbol to its voiced
// counterpart in VoicedPairConsonants, by position:
// VoicedPairConsonants[i] pairs with UnvoicedConsonants[i];
// voicedToUnvoiced is its inverse.
//
// The relation is symmetric, idempotent within a chain, and defined
// only on PairConsonants.
var unvoicedToVoiced = buildVoicingMap(UnvoicedConsonants, VoicedPairConsonants)
var voicedToUnvoiced = buildVoicingMap(VoicedPairConsonants, UnvoicedConsonants)

func buildVoicingMap(from, to string) map[rune]rune {
	m := make(map[rune]rune, len(from))
	fr := []rune(from)
	tr := []rune(to)
	for i := range fr {
		m[fr[i]] = tr[i]
	}
	return m
}

// Voice returns the voiced counterpart of an unvoiced pair consonant,
// or c itself (and false) if c is not in UnvoicedConsonants.
func Voice(c rune) (rune, bool) {
	v, ok := unvoicedToVoiced[c]
	if !ok {
		return c, false
	}
	return v, true
}

// Devoice returns the unvoiced counterpart of a voiced pair
// consonant, or c itself (and false) if c is not in
// VoicedPairConsonants.
func Devoice(c rune) (rune, bool) {
	v, ok := voicedToUnvoiced[c]
	if !ok {
		return c, false
	}
	return v, true
}

func containsRune(set string, c rune) bool {
	for _, s := range set {
		if s == c {
			return true
		}
	}
	return false
}
