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

// Package library wires the pipeline's stages (transcription, diphone
// resolution, decoding, waveform assembly) into the two end-to-end
// operations exposed on the command line: transcribe and synthesize.
package library

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/thonzyk/hds-go/cnf"
	"github.com/thonzyk/hds-go/decode"
	"github.com/thonzyk/hds-go/fs"
	"github.com/thonzyk/hds-go/herr"
	"github.com/thonzyk/hds-go/inventory"
	"github.com/thonzyk/hds-go/phon"
	"github.com/thonzyk/hds-go/report"
	"github.com/thonzyk/hds-go/synth"
)

// boundaryMarkers are the prosodic boundary symbols stripped from a
// transcribed line before it is split into diphones.
const boundaryMarkers = "|#?"

// DeriveOutputPath implements the "transcribe" command's default
// output path rule: replace "ortho" with "phntrn" in INPUT's
// basename and place the result under "<parent>/../output/".
func DeriveOutputPath(input string) string {
	dir := filepath.Dir(input)
	base := filepath.Base(input)
	base = strings.Replace(base, "ortho", "phntrn", 1)
	outDir := filepath.Join(dir, "..", "output")
	return filepath.Join(outDir, base)
}

// Transcribe runs C2 on the text at inputPath and writes the result
// to outputPath, creating outputPath's parent directory if needed.
func Transcribe(inputPath, outputPath string) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return herr.MissingFile(inputPath, err)
	}
	transcribed, _ := phon.Translate(string(raw))
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return herr.MissingDirectory(filepath.Dir(outputPath), err)
	}
	if err := os.WriteFile(outputPath, []byte(transcribed), 0o644); err != nil {
		return herr.MissingFile(outputPath, err)
	}
	return nil
}

// diphonesOf strips the prosodic boundary markers from a transcribed
// line and splits the remaining phonemes into adjacent 2-grams.
func diphonesOf(line string) []string {
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(boundaryMarkers, r) {
			return -1
		}
		return r
	}, line)
	phonemes := []rune(stripped)
	if len(phonemes) < 2 {
		return nil
	}
	ds := make([]string, 0, len(phonemes)-1)
	for i := 0; i < len(phonemes)-1; i++ {
		ds = append(ds, string(phonemes[i])+string(phonemes[i+1]))
	}
	return ds
}

// EnsureInventory loads the inventory and similarity artifacts from
// conf's prep directory, building and persisting them first if either
// is missing.
func EnsureInventory(conf *cnf.HDSConf, rpt report.Writer) (inventory.Inventory, *inventory.Similarity, error) {
	invPath := conf.InventoryPath()
	simPath := conf.SimilarityPath()

	if fs.IsFile(invPath) && fs.IsFile(simPath) {
		inv, err := inventory.Load(invPath)
		if err != nil {
			return nil, nil, err
		}
		sim, err := inventory.LoadSimilarity(simPath)
		if err != nil {
			return nil, nil, err
		}
		return inv, sim, nil
	}

	log.Info().Str("dataDir", conf.DataDir).Msg("inventory artifacts missing, building")
	return BuildInventory(conf, rpt)
}

// BuildInventory runs C6 over conf's training directories and
// persists both resulting artifacts under conf.PrepDir().
func BuildInventory(conf *cnf.HDSConf, rpt report.Writer) (inventory.Inventory, *inventory.Similarity, error) {
	fadeTime := inventory.FadeTime
	if conf.FadeTime > 0 {
		fadeTime = conf.FadeTime
	}
	buildConf := inventory.BuildConfig{
		MlfDir:   conf.MlfDir(),
		PmDir:    conf.PmDir(),
		SpcDir:   conf.SpcDir(),
		FeatDir:  conf.FeatDir(),
		FadeTime: fadeTime,
	}
	inv, sim, err := inventory.Build(buildConf, rpt)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(conf.PrepDir(), 0o755); err != nil {
		return nil, nil, herr.MissingDirectory(conf.PrepDir(), err)
	}
	if err := inv.Save(conf.InventoryPath()); err != nil {
		return nil, nil, err
	}
	if err := inventory.SaveSimilarity(sim, conf.SimilarityPath()); err != nil {
		return nil, nil, err
	}
	return inv, sim, nil
}

// Synthesize transcribes inputPath, resolves and decodes each line
// against inv/sim, and writes one line-numbered WAV file per line
// into outDir.
func Synthesize(inputPath, outDir string, inv inventory.Inventory, sim *inventory.Similarity) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return herr.MissingFile(inputPath, err)
	}
	transcribed, _ := phon.Translate(string(raw))

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return herr.MissingDirectory(outDir, err)
	}

	lines := strings.Split(transcribed, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ds := diphonesOf(line)
		if len(ds) == 0 {
			continue
		}
		resolved := decode.ResolveSequence(ds, inv, sim, func(d string) {
			log.Warn().Str("diphone", d).Int("line", i).Msg("dropping diphone with no substitute")
		})
		if len(resolved) == 0 {
			continue
		}
		units, err := decode.Decode(resolved, inv, sim)
		if err != nil {
			log.Error().Err(err).Int("line", i).Msg("failed to decode line")
			continue
		}
		fragments := make([][]float32, len(units))
		for j, u := range units {
			fragments[j] = u.Signal
		}
		waveform := synth.Assemble(fragments)
		pcm := synth.ToPCM16(waveform)
		outPath := filepath.Join(outDir, fmt.Sprintf("%04d.wav", i))
		if err := synth.WriteWAV(outPath, pcm); err != nil {
			log.Error().Err(err).Int("line", i).Msg("failed to write WAV")
			continue
		}
	}
	return nil
}
