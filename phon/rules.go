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

import "regexp"

// simpleRule is one entry of the ordered simple-substitution table.
// Rule ordering is load-bearing: each rule is a global left-to-right
// non-overlapping replacement applied strictly in declared order.
type simpleRule struct {
	from string
	to   string
}

// simpleRules is the ordered simple-rules table: palatalisation,
// vowel-length collapse, diphthongs, fricative/affricate remap,
// affricate clusters, newline framing, the 'ch' digraph,
// palatal-before-ě rules, 'js' reduction, whitespace stripping,
// punctuation-to-boundary, word-final devoicing of x/h, and glottal
// onset before word-initial vowels.
//
// 'ch' must precede 'x|'->'G|': otherwise a word-final 'ch' would
// never reach the devoicing rule.
var simpleRules = []simpleRule{
	{"ni", "Ji"},
	{"ní", "JI"},
	{"ti", "Ti"},
	{"tí", "TI"},
	{"di", "Di"},
	{"dí", "DI"},

	{"y", "i"},
	{"ý", "I"},
	{"í", "I"},
	{"é", "E"},
	{"á", "A"},
	{"ó", "O"},
	{"ú", "U"},
	{"ů", "U"},

	{"ou", "y"},
	{"au", "Y"},
	{"eu", "F"},

	{"š", "S"},
	{"ť", "T"},
	{"ň", "J"},
	{"ď", "D"},
	{"ž", "Z"},
	{"č", "C"},
	{"ř", "R"},

	{"dz", "w"},
	{"dZ", "W"},

	{"\n", "\n|$|"},

	{"ch", "x"},

	{"dě", "De"},
	{"tě", "Te"},
	{"ně", "Je"},
	{"mě", "mJe"},
	{"ě", "je"},

	{"js", "s"},

	{"\t", ""},

	{". ", "|$|"},
	{".", "|$|"},
	{"; ", "|$|"},
	{";", "|$|"},

	{", ", "|#|"},
	{",", "|#|"},

	{" ", "|"},

	{"x|", "G|"},
	{"h|", "G|"},

	{"|a", "|!a"},
	{"|e", "|!e"},
	{"|i", "|!i"},
	{"|o", "|!o"},
	{"|u", "|!u"},

	{"|A", "|!A"},
	{"|E", "|!E"},
	{"|I", "|!I"},
	{"|O", "|!O"},
	{"|U", "|!U"},
}

// regexRule is one entry of the ordered regex-substitution table.
type regexRule struct {
	pattern *regexp.Regexp
	repl    string
}

// regexRules is the second transcription pass, applied in declared
// order as global left-to-right non-overlapping substitutions.
var regexRules = []regexRule{
	// devoiced 'ř' after a voiceless consonant
	{regexp.MustCompile("([" + UnvoicedConsonants + "])R"), "${1}Q"},
	// syllabic devoiced nasal between voiceless consonants
	{regexp.MustCompile("([" + UnvoicedConsonants + "])m([|" + UnvoicedConsonants + "])"), "${1}H${2}"},
	// syllabic devoiced lateral between voiceless consonants
	{regexp.MustCompile("([" + UnvoicedConsonants + "])l([|" + UnvoicedConsonants + "])"), "${1}L${2}"},
	// syllabic 'r' between consonants
	{regexp.MustCompile("([" + Consonants + "])r([|" + Consonants + "])"), "${1}P${2}"},
	// syllabic devoiced nasal before a word boundary
	{regexp.MustCompile("([" + UnvoicedConsonants + "])m(\\|)"), "${1}H${2}"},
	// word-final devoicing of 'd'
	{regexp.MustCompile("([" + Consonants + "][" + Vowels + "])d(\\|)"), "${1}t${2}"},
	// word-initial 'z' after a consonant boundary
	{regexp.MustCompile("([" + Consonants + "]\\|)z"), "${1}s"},
}

// chainRegionsPattern finds maximal runs of PairConsonants that may
// contain at most one embedded word boundary. Longer chains spanning
// multiple word boundaries are split into independent runs; this is
// kept deliberately rather than "fixed" to merge them.
var chainRegionsPattern = regexp.MustCompile("[" + PairConsonants + "]+\\|?[" + PairConsonants + "]+")
