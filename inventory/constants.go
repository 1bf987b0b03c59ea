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

// Package inventory builds and persists the diphone unit inventory:
// for each training sentence it cuts pitch-mark-aligned signal
// fragments, applies a Hanning fade, and stores them keyed by diphone
// together with concatenation/target feature metadata.
package inventory

import "math"

// SampleRate is the fixed PCM sample rate of all training and
// synthesised audio.
const SampleRate = 16000

// SampleTime is 1/SampleRate.
const SampleTime = 1.0 / SampleRate

// FadeTime is the Hanning fade half-window duration in seconds.
const FadeTime = 0.01

// MinLength is the minimum admissible cut length: a candidate unit
// with len(signal) <= MinLength is dropped (ShortUnit).
var MinLength = int(math.Ceil(2 * FadeTime * SampleRate))

// FadeLen is the number of samples by which consecutive fragments
// overlap in the waveform assembler.
var FadeLen = int(math.Round(FadeTime * SampleRate))

// Window is the Hanning window of length MinLength applied to the
// first and last MinLength/2 samples of every cut signal.
var Window = hanning(MinLength)

// hanning returns an n-sample symmetric Hanning window, matching
// numpy.hanning's convention: w[k] = 0.5 - 0.5*cos(2*pi*k/(n-1)).
func hanning(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for k := 0; k < n; k++ {
		w[k] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(k)/float64(n-1))
	}
	return w
}
