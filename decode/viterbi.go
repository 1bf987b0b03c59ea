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

package decode

import (
	"math"

	"github.com/thonzyk/hds-go/herr"
	"github.com/thonzyk/hds-go/inventory"
)

// Cost weights for the Viterbi target/concatenation costs.
const (
	wSentPos = 0.1
	wSurr    = 1.0
	wEnrg    = 1.0
	wF0      = 1.0
	wMfcc    = 0.01
)

// Decode runs the Viterbi search over the diphone lattice built from
// ds (already resolved, so every inv[d] is non-empty) and returns the
// chosen SpeechUnit for each position. ds must not be empty.
func Decode(ds []string, inv inventory.Inventory, sim *inventory.Similarity) ([]inventory.SpeechUnit, error) {
	n := len(ds)
	alts := make([][]inventory.SpeechUnit, n)
	for i, d := range ds {
		units := inv[d]
		if len(units) == 0 {
			return nil, herr.EmptyAlternatives(d)
		}
		alts[i] = units
	}

	diphoneRunes := make([][]rune, n)
	for i, d := range ds {
		diphoneRunes[i] = []rune(d)
	}

	cum := make([][]float64, n)
	bp := make([][]int, n)

	cum[0] = make([]float64, len(alts[0]))
	for u, alt := range alts[0] {
		cum[0][u] = targetCost(alt, 0, n, diphoneRunes, sim)
	}

	for i := 1; i < n; i++ {
		cum[i] = make([]float64, len(alts[i]))
		bp[i] = make([]int, len(alts[i]))
		for q, altQ := range alts[i] {
			target := targetCost(altQ, i, n, diphoneRunes, sim)
			best := math.Inf(1)
			bestP := 0
			for p, altP := range alts[i-1] {
				c := cum[i-1][p] + concatCost(altP, altQ)
				if c < best {
					best = c
					bestP = p
				}
			}
			cum[i][q] = target + best
			bp[i][q] = bestP
		}
	}

	path := make([]int, n)
	path[n-1] = argmin(cum[n-1])
	for i := n - 1; i > 0; i-- {
		path[i-1] = bp[i][path[i]]
	}

	out := make([]inventory.SpeechUnit, n)
	for i, idx := range path {
		out[i] = alts[i][idx]
	}
	return out, nil
}

// targetCost computes the target cost of alternative u at position i
// of an N-long diphone sequence D.
func targetCost(u inventory.SpeechUnit, i, n int, d [][]rune, sim *inventory.Similarity) float64 {
	cost := math.Abs(u.SentencePosition-float64(i)/float64(n)) * wSentPos
	if i > 0 {
		left := u.LeftPhoneme
		if !u.HasLeft {
			left = inventory.AbsentPhoneme
		}
		cost += sim.Loss(d[i-1][0], left) * wSurr
	}
	if i < n-1 {
		right := u.RightPhoneme
		if !u.HasRight {
			right = inventory.AbsentPhoneme
		}
		cost += sim.Loss(d[i+1][1], right) * wSurr
	}
	return cost
}

// concatCost computes the concatenation cost of placing q immediately
// after p.
func concatCost(p, q inventory.SpeechUnit) float64 {
	cost := math.Abs(p.EnrgStop-q.EnrgStart)*wEnrg + math.Abs(p.F0Stop-q.F0Start)*wF0
	cost += mfccL2(p.MfccStop, q.MfccStart) * wMfcc
	return cost
}

func mfccL2(a, b []float64) float64 {
	k := len(a)
	if len(b) < k {
		k = len(b)
	}
	var sum float64
	for i := 0; i < k; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// argmin returns the index of the smallest value in v, breaking ties
// by the smallest index (stable argmin).
func argmin(v []float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] < v[best] {
			best = i
		}
	}
	return best
}
