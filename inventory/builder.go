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
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/thonzyk/hds-go/align"
	"github.com/thonzyk/hds-go/fs"
	"github.com/thonzyk/hds-go/herr"
	"github.com/thonzyk/hds-go/report"
)

// BuildConfig locates the per-sentence training artifacts the builder
// reads, following the HDS_DATA_DIR layout.
type BuildConfig struct {
	MlfDir   string
	PmDir    string
	SpcDir   string
	FeatDir  string
	FadeTime float64

	// Concurrency bounds the number of sentences processed at once.
	// A value <= 0 defaults to 4.
	Concurrency int
}

// sentenceResult is what a single worker produces for one training
// sentence.
type sentenceResult struct {
	name     string
	units    []SpeechUnit
	skipped  int
	err      error
	duration time.Duration
}

// Build scans conf.MlfDir for training sentences, cuts and fades the
// diphone units of each one concurrently, merges them into a single
// Inventory in deterministic order, and builds the companion
// Similarity table. Provenance is recorded to rpt as each sentence
// and each merged diphone key is processed.
func Build(conf BuildConfig, rpt report.Writer) (Inventory, *Similarity, error) {
	mlfFiles, err := fs.ListFilesInDir(conf.MlfDir)
	if err != nil {
		return nil, nil, herr.MissingDirectory(conf.MlfDir, err)
	}

	concurrency := conf.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	if err := rpt.Initialize(); err != nil {
		return nil, nil, err
	}
	defer rpt.Close()

	jobs := make(chan string)
	results := make(chan sentenceResult)

	var wg sync.WaitGroup
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func() {
			defer wg.Done()
			for mlfPath := range jobs {
				results <- buildSentence(conf, mlfPath)
			}
		}()
	}
	go func() {
		defer close(jobs)
		for _, p := range mlfFiles {
			jobs <- p
		}
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	var collected []sentenceResult
	for res := range results {
		if res.err != nil {
			log.Warn().Err(res.err).Str("sentence", res.name).Msg("skipping sentence")
			continue
		}
		collected = append(collected, res)
		rec := report.SentenceRecord{
			Name:          res.name,
			DiphoneCount:  len(res.units),
			SkippedUnits:  res.skipped,
			ProcessedAt:   time.Now(),
			ElapsedMillis: res.duration.Milliseconds(),
		}
		if err := rpt.RecordSentence(rec); err != nil {
			log.Warn().Err(err).Str("sentence", res.name).Msg("failed to record sentence in build manifest")
		}
	}

	// Deterministic merge order: sort by (SourceSentence, SourceIndex)
	// before appending into the inventory's per-diphone slices.
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].name < collected[j].name
	})

	inv := make(Inventory)
	for _, res := range collected {
		units := append([]SpeechUnit(nil), res.units...)
		sort.SliceStable(units, func(i, j int) bool {
			return units[i].SourceIndex < units[j].SourceIndex
		})
		for _, u := range units {
			inv[u.Diphone] = append(inv[u.Diphone], u)
		}
	}

	for key, units := range inv {
		if err := rpt.RecordDiphone(report.DiphoneRecord{Key: key, AltCount: len(units)}); err != nil {
			log.Warn().Err(err).Str("diphone", key).Msg("failed to record diphone in build manifest")
		}
	}

	if err := rpt.Commit(); err != nil {
		return nil, nil, err
	}

	return inv, BuildSimilarity(), nil
}

// buildSentence processes a single training sentence end to end: it
// never returns a fatal error for a locally-recoverable failure
// (ShortUnit), instead it increments the skip counter and continues.
func buildSentence(conf BuildConfig, mlfPath string) sentenceResult {
	start := time.Now()
	name := fs.BaseNoExt(mlfPath)
	res := sentenceResult{name: name}

	pmPath := filepath.Join(conf.PmDir, name+".pm")
	wavPath := filepath.Join(conf.SpcDir, name+".wav")
	enrgPath := filepath.Join(conf.FeatDir, name+".enrg")
	f0Path := filepath.Join(conf.FeatDir, name+".f0")
	mfccPath := filepath.Join(conf.FeatDir, name+".mfcc")

	pms, err := align.ReadPitchMarks(pmPath)
	if err != nil {
		res.err = err
		return res
	}
	segments, err := align.ReadAlignment(mlfPath, pms, conf.FadeTime)
	if err != nil {
		res.err = err
		return res
	}
	signal, err := loadWaveform(wavPath)
	if err != nil {
		res.err = err
		return res
	}
	enrg, err := align.ReadScalarTrack(enrgPath)
	if err != nil {
		res.err = err
		return res
	}
	f0, err := align.ReadScalarTrack(f0Path)
	if err != nil {
		res.err = err
		return res
	}
	mfcc, err := align.ReadVectorTrack(mfccPath)
	if err != nil {
		res.err = err
		return res
	}

	for i, seg := range segments {
		unit, ok, err := cutUnit(signal, seg, i, name, segments, enrg, f0, mfcc)
		if err != nil {
			res.err = err
			return res
		}
		if !ok {
			res.skipped++
			continue
		}
		res.units = append(res.units, unit)
	}

	res.duration = time.Since(start)
	return res
}

// cutUnit slices signal at seg's time boundaries, rejects it as
// ShortUnit when too short, applies the Hanning fade, and attaches
// target/concatenation features sampled at the segment's boundaries.
func cutUnit(
	signal []float32,
	seg align.DiphoneSegment,
	index int,
	sentenceName string,
	segments []align.DiphoneSegment,
	enrg, f0 align.ScalarTrack,
	mfcc align.VectorTrack,
) (SpeechUnit, bool, error) {
	startIdx := int(seg.Start * SampleRate)
	endIdx := int(seg.End * SampleRate)
	if startIdx < 0 {
		startIdx = 0
	}
	if endIdx > len(signal) {
		endIdx = len(signal)
	}
	if endIdx <= startIdx || endIdx-startIdx <= MinLength {
		return SpeechUnit{}, false, nil
	}

	cut := append([]float32(nil), signal[startIdx:endIdx]...)
	half := len(Window) / 2
	for k := 0; k < half && k < len(cut); k++ {
		cut[k] *= float32(Window[k])
	}
	for k := 0; k < half && k < len(cut); k++ {
		cut[len(cut)-1-k] *= float32(Window[k])
	}

	enrgStart, err := enrg.At(seg.Start)
	if e, ok := err.(*herr.Error); err != nil && (!ok || e.Fatal()) {
		return SpeechUnit{}, false, err
	}
	enrgStop, err := enrg.At(seg.End)
	if e, ok := err.(*herr.Error); err != nil && (!ok || e.Fatal()) {
		return SpeechUnit{}, false, err
	}
	f0Start, err := f0.At(seg.Start)
	if e, ok := err.(*herr.Error); err != nil && (!ok || e.Fatal()) {
		return SpeechUnit{}, false, err
	}
	f0Stop, err := f0.At(seg.End)
	if e, ok := err.(*herr.Error); err != nil && (!ok || e.Fatal()) {
		return SpeechUnit{}, false, err
	}
	mfccStart, err := mfcc.At(seg.Start)
	if e, ok := err.(*herr.Error); err != nil && (!ok || e.Fatal()) {
		return SpeechUnit{}, false, err
	}
	mfccStop, err := mfcc.At(seg.End)
	if e, ok := err.(*herr.Error); err != nil && (!ok || e.Fatal()) {
		return SpeechUnit{}, false, err
	}

	unit := SpeechUnit{
		Signal:           cut,
		Diphone:          seg.Diphone,
		SentencePosition: float64(index) / float64(len(segments)),
		EnrgStart:        enrgStart,
		EnrgStop:         enrgStop,
		F0Start:          f0Start,
		F0Stop:           f0Stop,
		MfccStart:        mfccStart,
		MfccStop:         mfccStop,
		SourceSentence:   sentenceName,
		SourceIndex:      index,
	}
	if index > 0 {
		unit.LeftPhoneme = []rune(segments[index-1].Diphone)[0]
		unit.HasLeft = true
	}
	if index < len(segments)-1 {
		unit.RightPhoneme = []rune(segments[index+1].Diphone)[1]
		unit.HasRight = true
	}
	return unit, true, nil
}
