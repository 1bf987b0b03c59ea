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

// Package synth assembles the fragments chosen by the decoder into a
// single waveform and writes it out as 16kHz mono 16-bit PCM WAV.
package synth

import "github.com/thonzyk/hds-go/inventory"

// Assemble overlap-adds the given fragments, each already carrying a
// Hanning fade on its first/last FadeLen samples (from inventory.Window),
// into a single buffer of length Σ|s_k| − (len(fragments)-1)·FadeLen.
// fragments must be non-empty and each one must be longer than
// inventory.FadeLen.
func Assemble(fragments [][]float32) []float32 {
	if len(fragments) == 0 {
		return nil
	}

	total := 0
	for _, f := range fragments {
		total += len(f)
	}
	out := make([]float32, total-(len(fragments)-1)*inventory.FadeLen)

	offset := 0
	for _, frag := range fragments {
		for k, v := range frag {
			out[offset+k] += v
		}
		offset += len(frag) - inventory.FadeLen
	}
	return out
}

// ToPCM16 clamps each sample to the signed 16-bit range and truncates
// it to an int16.
func ToPCM16(signal []float32) []int16 {
	out := make([]int16, len(signal))
	for i, v := range signal {
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		out[i] = int16(v)
	}
	return out
}
