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

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"

	"github.com/thonzyk/hds-go/herr"
)

// loadWaveform reads a 16kHz mono 16-bit PCM WAV file and returns its
// samples converted to float32.
func loadWaveform(path string) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, herr.MissingFile(path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, herr.InputFormat(path, 0, "not a valid WAV file", nil)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, herr.InputFormat(path, 0, "failed to decode PCM data", err)
	}
	if dec.SampleRate != SampleRate {
		return nil, herr.InputFormat(path, 0, fmt.Sprintf("expected %d Hz, got %d Hz", SampleRate, dec.SampleRate), nil)
	}
	if dec.NumChans != 1 {
		return nil, herr.InputFormat(path, 0, fmt.Sprintf("expected mono WAV, got %d channels", dec.NumChans), nil)
	}

	samples := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float32(v)
	}
	return samples, nil
}
