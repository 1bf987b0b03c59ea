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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thonzyk/hds-go/inventory"
)

func TestResolveReturnsExistingDiphoneUnchanged(t *testing.T) {
	inv := inventory.Inventory{"IZ": {{}}}
	sim := inventory.BuildSimilarity()
	got, ok := Resolve("IZ", inv, sim)
	assert.True(t, ok)
	assert.Equal(t, "IZ", got)
}

func TestResolveFallsBackToFinestLevelVariant(t *testing.T) {
	// "IZ" is absent but "iZ" exists: the exact-variant partition "iI"
	// (level 2, finest) should be tried before any coarser level.
	inv := inventory.Inventory{"iZ": {{}}}
	sim := inventory.BuildSimilarity()
	got, ok := Resolve("IZ", inv, sim)
	assert.True(t, ok)
	assert.Equal(t, "iZ", got)
}

func TestResolveCartesianProductFallback(t *testing.T) {
	// Neither single swap exists, but the cartesian product of
	// candidates does: voicing-pair swap on both sides.
	inv := inventory.Inventory{"tb": {{}}}
	sim := inventory.BuildSimilarity()
	got, ok := Resolve("dp", inv, sim)
	assert.True(t, ok)
	assert.Equal(t, "tb", got)
}

func TestResolveReturnsFalseWhenNoSubstituteExists(t *testing.T) {
	inv := inventory.Inventory{}
	sim := inventory.BuildSimilarity()
	_, ok := Resolve("ab", inv, sim)
	assert.False(t, ok)
}

func TestResolveSequenceDropsUnresolvable(t *testing.T) {
	inv := inventory.Inventory{"ab": {{}}}
	sim := inventory.BuildSimilarity()
	var dropped []string
	out := ResolveSequence([]string{"ab", "zz"}, inv, sim, func(d string) {
		dropped = append(dropped, d)
	})
	assert.Equal(t, []string{"ab"}, out)
	assert.Equal(t, []string{"zz"}, dropped)
}
