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
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thonzyk/hds-go/report"
)

// writeTestWAV writes a minimal PCM16 mono WAV file at the fixed
// sample rate, without depending on go-audio/wav, so the fixture is
// independent of the decoder under test.
func writeTestWAV(t *testing.T, path string, n int) {
	t.Helper()
	samples := make([]int16, n)
	for i := range samples {
		samples[i] = int16((i % 2000) - 1000)
	}
	dataSize := len(samples) * 2
	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint32(SampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(SampleRate*2))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	for _, s := range samples {
		binary.Write(&buf, binary.LittleEndian, s)
	}
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestBuildProducesExpectedDiphones(t *testing.T) {
	root := t.TempDir()
	mlfDir := filepath.Join(root, "mlf")
	pmDir := filepath.Join(root, "pm")
	spcDir := filepath.Join(root, "spc")
	featDir := filepath.Join(root, "unsel-feats")
	for _, d := range []string{mlfDir, pmDir, spcDir, featDir} {
		require.NoError(t, os.MkdirAll(d, 0755))
	}

	writeFile(t, filepath.Join(mlfDir, "s1.mlf"),
		"0 0 sil\n"+
			"0 1000000 p\n"+
			"1000000 2000000 q\n"+
			"2000000 3000000 r\n")
	writeFile(t, filepath.Join(pmDir, "s1.pm"),
		"0.06 0.06 V\n0.16 0.16 V\n0.26 0.26 V\n0.36 0.36 V\n")

	featRows := ""
	for i := 0; i <= 10; i++ {
		featRows += "| " + fmtF(float64(i)*0.05) + " | " + fmtF(float64(i)) + " |\n"
	}
	writeFile(t, filepath.Join(featDir, "s1.enrg"), featRows)
	writeFile(t, filepath.Join(featDir, "s1.f0"), featRows)

	mfccRows := ""
	for i := 0; i <= 10; i++ {
		v := float64(i)
		mfccRows += "| " + fmtF(v*0.05) + " | " + fmtF(v) + " | " + fmtF(v*2) + " |\n"
	}
	writeFile(t, filepath.Join(featDir, "s1.mfcc"), mfccRows)

	writeTestWAV(t, filepath.Join(spcDir, "s1.wav"), SampleRate/2)

	conf := BuildConfig{
		MlfDir:      mlfDir,
		PmDir:       pmDir,
		SpcDir:      spcDir,
		FeatDir:     featDir,
		FadeTime:    0.01,
		Concurrency: 1,
	}
	inv, sim, err := Build(conf, report.NullWriter{})
	require.NoError(t, err)
	assert.NotNil(t, sim)
	assert.True(t, inv.Has("$p"))
	assert.True(t, inv.Has("pq"))
	assert.True(t, inv.Has("qr"))

	// The middle diphone's surrounding context must come from its
	// neighbouring segments ("$p" and "qr"), not from its own label.
	mid := inv["pq"][0]
	assert.True(t, mid.HasLeft)
	assert.Equal(t, '$', mid.LeftPhoneme)
	assert.True(t, mid.HasRight)
	assert.Equal(t, 'r', mid.RightPhoneme)

	first := inv["$p"][0]
	assert.False(t, first.HasLeft)
	assert.True(t, first.HasRight)
	assert.Equal(t, 'q', first.RightPhoneme)

	last := inv["qr"][0]
	assert.True(t, last.HasLeft)
	assert.Equal(t, 'p', last.LeftPhoneme)
	assert.False(t, last.HasRight)
}

func fmtF(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
