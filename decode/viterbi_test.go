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
	"github.com/stretchr/testify/require"

	"github.com/thonzyk/hds-go/herr"
	"github.com/thonzyk/hds-go/inventory"
)

func TestDecodeSingleStepPicksLowerConcatCost(t *testing.T) {
	sim := inventory.BuildSimilarity()

	// Two positions, diphone "ab" then "bc". At position 0 there is a
	// single alternative; at position 1 two alternatives differ only
	// in concatenation cost against position 0's unit.
	alt0 := inventory.SpeechUnit{
		LeftPhoneme: 'a', HasLeft: false,
		RightPhoneme: 'b', HasRight: true,
		SentencePosition: 0,
		EnrgStop:         1.0,
		F0Stop:           100,
		MfccStop:         []float64{1, 1},
	}
	good := inventory.SpeechUnit{
		LeftPhoneme: 'b', HasLeft: true,
		RightPhoneme: 'c', HasRight: false,
		SentencePosition: 1,
		EnrgStart:        1.0,
		F0Start:          100,
		MfccStart:        []float64{1, 1},
	}
	bad := inventory.SpeechUnit{
		LeftPhoneme: 'b', HasLeft: true,
		RightPhoneme: 'c', HasRight: false,
		SentencePosition: 1,
		EnrgStart:        100.0,
		F0Start:          900,
		MfccStart:        []float64{50, 50},
	}

	inv := inventory.Inventory{
		"ab": {alt0},
		"bc": {bad, good},
	}

	units, err := Decode([]string{"ab", "bc"}, inv, sim)
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, good, units[1])
}

func TestDecodeEmptyAlternativesIsFatal(t *testing.T) {
	sim := inventory.BuildSimilarity()
	inv := inventory.Inventory{"ab": {}}
	_, err := Decode([]string{"ab"}, inv, sim)
	require.Error(t, err)
	herrErr, ok := err.(*herr.Error)
	require.True(t, ok)
	assert.Equal(t, herr.KindEmptyAlternatives, herrErr.Kind)
}

func TestArgminBreaksTiesBySmallestIndex(t *testing.T) {
	assert.Equal(t, 0, argmin([]float64{1, 1, 1}))
	assert.Equal(t, 1, argmin([]float64{2, 1, 1}))
}
