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

// SpeechUnit is one diphone instance recorded from training data.
//
// len(Signal) > MinLength, and the Hanning fade half-window has
// already been multiplied into the first and last MinLength/2
// samples of Signal.
type SpeechUnit struct {
	Signal []float32

	// Diphone is the unit's own two-phoneme label, the key it is
	// filed under in Inventory.
	Diphone string

	// LeftPhoneme/RightPhoneme are the symbols of surrounding
	// context in the training sentence, or HasLeft/HasRight false at
	// sentence edges.
	LeftPhoneme  rune
	HasLeft      bool
	RightPhoneme rune
	HasRight     bool

	// SentencePosition is index/sentence_length, in [0,1].
	SentencePosition float64

	EnrgStart float64
	EnrgStop  float64
	F0Start   float64
	F0Stop    float64

	MfccStart []float64
	MfccStop  []float64

	// SourceSentence and SourceIndex record build provenance, used
	// only to make the per-diphone merge deterministic and to feed
	// the build manifest (report package).
	SourceSentence string
	SourceIndex    int
}
