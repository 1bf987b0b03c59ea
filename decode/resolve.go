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

// Package decode implements the two CPU-bound stages that turn a
// resolved diphone sequence into an ordered list of inventory units:
// the fallback resolver and the Viterbi decoder.
package decode

import "github.com/thonzyk/hds-go/inventory"

// Resolve looks up diphone d in inv. If absent, it searches for a
// substitute by iterating the similarity partitions finest level
// first: within each partition containing one of d's two phonemes, a
// single-phoneme swap is tried first (the narrow, voicing-pair level
// naturally subsumes the original case-swap shortcut, since its
// partitions pair each unvoiced symbol with its voiced counterpart);
// candidates that don't yield an immediate hit are remembered, and if
// no single swap succeeds the cartesian product of collected
// candidates is tried. Returns the substitute diphone and true, or
// ("", false) if no substitute exists anywhere in inv.
func Resolve(d string, inv inventory.Inventory, sim *inventory.Similarity) (string, bool) {
	if inv.Has(d) {
		return d, true
	}
	runes := []rune(d)
	if len(runes) != 2 {
		return "", false
	}
	c0, c1 := runes[0], runes[1]

	var p0Candidates, p1Candidates []rune
	for _, level := range sim.LevelsFinestFirst() {
		for _, partition := range level {
			members := []rune(partition)
			if containsRune(members, c0) {
				for _, p := range members {
					if p == c0 {
						continue
					}
					cand := string(p) + string(c1)
					if inv.Has(cand) {
						return cand, true
					}
					p0Candidates = append(p0Candidates, p)
				}
			}
			if containsRune(members, c1) {
				for _, p := range members {
					if p == c1 {
						continue
					}
					cand := string(c0) + string(p)
					if inv.Has(cand) {
						return cand, true
					}
					p1Candidates = append(p1Candidates, p)
				}
			}
		}
	}

	for _, p0 := range p0Candidates {
		for _, p1 := range p1Candidates {
			cand := string(p0) + string(p1)
			if inv.Has(cand) {
				return cand, true
			}
		}
	}
	return "", false
}

// ResolveSequence resolves every diphone in ds against inv, dropping
// (and logging via the caller-supplied onMissing hook) any diphone
// that has no substitute at all.
func ResolveSequence(ds []string, inv inventory.Inventory, sim *inventory.Similarity, onMissing func(d string)) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		resolved, ok := Resolve(d, inv, sim)
		if !ok {
			if onMissing != nil {
				onMissing(d)
			}
			continue
		}
		out = append(out, resolved)
	}
	return out
}

func containsRune(members []rune, r rune) bool {
	for _, m := range members {
		if m == r {
			return true
		}
	}
	return false
}
