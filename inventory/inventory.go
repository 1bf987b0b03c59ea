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
	"encoding/gob"
	"os"

	"github.com/thonzyk/hds-go/herr"
)

// Inventory maps a 2-symbol diphone key to a non-empty ordered
// sequence of SpeechUnit alternatives. It is built once and is
// read-only at decode time.
type Inventory map[string][]SpeechUnit

// Has reports whether diphone d has at least one alternative.
func (inv Inventory) Has(d string) bool {
	units, ok := inv[d]
	return ok && len(units) > 0
}

// Save persists the inventory to path as a single opaque binary
// artifact: one encoding/gob stream holding the whole map.
func (inv Inventory) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return herr.MissingFile(path, err)
	}
	defer f.Close()
	enc := gob.NewEncoder(f)
	if err := enc.Encode(inv); err != nil {
		return herr.InputFormat(path, 0, "failed to encode inventory", err)
	}
	return nil
}

// Load reads a previously persisted inventory artifact.
func Load(path string) (Inventory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, herr.MissingFile(path, err)
	}
	defer f.Close()
	var inv Inventory
	dec := gob.NewDecoder(f)
	if err := dec.Decode(&inv); err != nil {
		return nil, herr.InputFormat(path, 0, "failed to decode inventory", err)
	}
	return inv, nil
}

// SaveSimilarity persists a built Similarity table.
func SaveSimilarity(sim *Similarity, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return herr.MissingFile(path, err)
	}
	defer f.Close()
	enc := gob.NewEncoder(f)
	if err := enc.Encode(sim.loss); err != nil {
		return herr.InputFormat(path, 0, "failed to encode similarity table", err)
	}
	return nil
}

// LoadSimilarity reads a previously persisted Similarity table.
func LoadSimilarity(path string) (*Similarity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, herr.MissingFile(path, err)
	}
	defer f.Close()
	var loss map[[2]rune]float64
	dec := gob.NewDecoder(f)
	if err := dec.Decode(&loss); err != nil {
		return nil, herr.InputFormat(path, 0, "failed to decode similarity table", err)
	}
	return &Similarity{loss: loss}, nil
}
