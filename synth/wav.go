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

package synth

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/thonzyk/hds-go/herr"
	"github.com/thonzyk/hds-go/inventory"
)

// WriteWAV writes signal as a 16kHz mono 16-bit PCM WAV file at path.
func WriteWAV(path string, signal []int16) error {
	f, err := os.Create(path)
	if err != nil {
		return herr.MissingFile(path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, inventory.SampleRate, 16, 1, 1)
	data := make([]int, len(signal))
	for i, v := range signal {
		data[i] = int(v)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{SampleRate: inventory.SampleRate, NumChannels: 1},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return herr.InputFormat(path, 0, "failed to write PCM data", err)
	}
	return enc.Close()
}
