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

import "strings"

// simpleReplacement applies every rule from simpleRules once, in
// declared order, each a global non-overlapping left-to-right
// replacement.
func simpleReplacement(txt string) string {
	for _, r := range simpleRules {
		txt = strings.ReplaceAll(txt, r.from, r.to)
	}
	return txt
}

// regexReplacement applies every rule from regexRules once, in
// declared order.
func regexReplacement(txt string) string {
	for _, r := range regexRules {
		txt = r.pattern.ReplaceAllString(txt, r.repl)
	}
	return txt
}

// dominantClass classifies the dominant (last) character of a
// consonant chain.
type dominantClass int

const (
	dominantRecessive dominantClass = iota
	dominantVoiced
	dominantUnvoiced
	dominantNeither
)

func classifyDominant(c rune) dominantClass {
	switch {
	case containsRune(RecessiveChars, c):
		return dominantRecessive
	case containsRune(VoicedPairConsonants, c), containsRune(VoicedNonPairConsonants, c), containsRune(Vowels, c):
		return dominantVoiced
	case containsRune(UnvoicedConsonants, c):
		return dominantUnvoiced
	default:
		return dominantNeither
	}
}

// chainReplacement is the regressive voicing-assimilation pass. It
// finds every maximal run matching
// "[PairConsonants]+ \|? [PairConsonants]+" (so a single word
// boundary may sit inside the run), reads the dominant character as
// the run's last symbol, and assimilates every PairConsonants symbol
// in the run to that voicing. Runs are processed independently against
// the pre-edit string; edits land on a mutable copy.
func chainReplacement(txt string) string {
	runes := []rune(txt)
	out := make([]rune, len(runes))
	copy(out, runes)

	locs := chainRegionsPattern.FindAllStringIndex(txt, -1)
	byteToRune := buildByteToRuneIndex(txt)

	for _, loc := range locs {
		startR := byteToRune[loc[0]]
		endR := byteToRune[loc[1]]
		dominant := runes[endR-1]

		switch classifyDominant(dominant) {
		case dominantRecessive, dominantNeither:
			continue
		case dominantVoiced:
			for i := startR; i < endR; i++ {
				if containsRune(UnvoicedConsonants, runes[i]) {
					if v, ok := Voice(runes[i]); ok {
						out[i] = v
					}
				}
			}
		case dominantUnvoiced:
			for i := startR; i < endR; i++ {
				if containsRune(VoicedPairConsonants, runes[i]) {
					if v, ok := Devoice(runes[i]); ok {
						out[i] = v
					}
				}
			}
		}
	}

	return string(out)
}

// buildByteToRuneIndex maps a byte offset (as produced by regexp
// match positions) to the corresponding rune index.
func buildByteToRuneIndex(s string) map[int]int {
	m := make(map[int]int, len(s)+1)
	i := 0
	for b := range s {
		m[b] = i
		i++
	}
	m[len(s)] = i
	return m
}

// grind drops the trailing three characters of txt (the "|$|"
// introduced by the terminal sentence boundary) and prepends the
// sentence-boundary marker. If the input does not end in a newline
// this truncates real content; the behaviour is kept deliberately for
// bit-compatibility with upstream transcripts. Empty input yields the
// trivial framed string "|$|".
func grind(txt string) string {
	runes := []rune(txt)
	if len(runes) < 3 {
		runes = nil
	} else {
		runes = runes[:len(runes)-3]
	}
	return "|$|" + string(runes)
}

// Translate takes plain Czech text and returns its phonetic
// transcription. It is a pure, total function: lowercase, simple
// substitution, regex substitution, voicing assimilation, then
// framing, applied strictly in that order. The error return is
// always nil; it exists so Translate composes uniformly with the
// other file-reading stages of the pipeline.
func Translate(txt string) (string, error) {
	txt = strings.ToLower(txt)
	txt = simpleReplacement(txt)
	txt = regexReplacement(txt)
	txt = chainReplacement(txt)
	txt = grind(txt)
	return txt, nil
}
