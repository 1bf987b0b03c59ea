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

package inventory

import "github.com/thonzyk/hds-go/phon"

// AbsentPhoneme is the sentinel (a, ⊥) context, used when a
// neighbouring phoneme is absent (sentence edge).
const AbsentPhoneme rune = 0

// SimilarityLoss gives the loss assigned to each of the three
// partition levels, finest last.
var SimilarityLoss = [3]float64{0.75, 0.5, 0.25}

// similarityLevels holds, for each level (broad class, narrow class,
// exact variant pairs), the partition instances: strings of mutually
// similar symbols.
//
// Level 0 (broad class) groups phonemes by their major articulatory
// class. Level 1 (narrow class) groups each voicing pair together
// (the same pairing phon.Voice/phon.Devoice encode for the assimilation
// pass). Level 2 (exact variant pairs) groups short/long vowel
// variants, the finest relation.
var similarityLevels = [3][]string{
	{
		phon.Vowels,
		phon.UnvoicedConsonants,
		phon.VoicedPairConsonants,
		phon.VoicedNonPairConsonants,
	},
	{
		"pb", "td", "TD", "kg", "fv", "sz", "SZ", "xh", "cw", "CW", "QR",
	},
	{
		"iI", "eE", "aA", "oO", "uU",
	},
}

// Similarity is a symmetric loss function over phon.Alphabet, built
// from the three-level partitions.
//
// sim(a,b) = sim(b,a); sim(a,a) = 0; sim is defined everywhere on
// Alphabet x Alphabet (and for the (a, AbsentPhoneme) sentinel row).
type Similarity struct {
	loss map[[2]rune]float64
}

// BuildSimilarity constructs the phoneme-similarity table: the
// sentinel pairs are seeded first, then every pair defaults to 1.0,
// then each level's partitions overwrite in order (finest level last,
// so later assignments win when a pair participates in more than one
// level), and finally every identical pair is reset to 0.
func BuildSimilarity() *Similarity {
	s := &Similarity{loss: make(map[[2]rune]float64)}

	alphabet := []rune(phon.Alphabet)

	for _, a := range alphabet {
		s.loss[key(a, AbsentPhoneme)] = 2.0
		s.loss[key(AbsentPhoneme, a)] = 2.0
	}

	for _, a := range alphabet {
		for _, b := range alphabet {
			s.loss[key(a, b)] = 1.0
		}
	}

	for level, partitions := range similarityLevels {
		loss := SimilarityLoss[level]
		for _, partition := range partitions {
			members := []rune(partition)
			for _, a := range members {
				for _, b := range members {
					s.loss[key(a, b)] = loss
				}
			}
		}
	}

	for _, a := range alphabet {
		s.loss[key(a, a)] = 0
	}

	return s
}

func key(a, b rune) [2]rune {
	return [2]rune{a, b}
}

// Loss returns sim(a, b). If b is AbsentPhoneme it returns the
// sentinel loss 2.0.
func (s *Similarity) Loss(a, b rune) float64 {
	if v, ok := s.loss[key(a, b)]; ok {
		return v
	}
	if b == AbsentPhoneme || a == AbsentPhoneme {
		return 2.0
	}
	return 1.0
}

// LevelsFinestFirst exposes the partition table in reverse
// (finest-first) order, for the fallback resolver (C8). Element 0 is
// level 2; the original level indices are not returned.
func (s *Similarity) LevelsFinestFirst() [][]string {
	out := make([][]string, len(similarityLevels))
	for i := range similarityLevels {
		out[i] = similarityLevels[len(similarityLevels)-1-i]
	}
	return out
}
