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

// Package cnf holds the pipeline's JSON configuration: the
// HDS_DATA_DIR directory layout plus ambient settings (manifest-store
// backend, verbosity).
package cnf

import (
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
)

// ReportConf selects the build-manifest store backend (package
// report). DBType is "sqlite", "mysql", or "" to disable recording.
type ReportConf struct {
	DBType string `json:"dbType,omitempty"`
	Path   string `json:"path,omitempty"`
	DSN    string `json:"dsn,omitempty"`
}

// HDSConf is the pipeline's root configuration.
type HDSConf struct {
	// DataDir is HDS_DATA_DIR: it must contain mlf/, pm/, spc/,
	// unsel-feats/, prep/ and out/ subdirectories.
	DataDir string `json:"dataDir"`

	// FadeTime, when positive, replaces inventory.FadeTime (seconds) as
	// the fade time passed to the alignment reader during inventory
	// builds. MinLength, FadeLen and Window stay derived from
	// inventory.FadeTime.
	FadeTime float64 `json:"fadeTime,omitempty"`

	Report ReportConf `json:"report"`

	Verbosity int `json:"verbosity"`
}

// MlfDir, PmDir, SpcDir, FeatDir, PrepDir and OutDir resolve the
// fixed subdirectories of the HDS_DATA_DIR layout.
func (c *HDSConf) MlfDir() string  { return filepath.Join(c.DataDir, "mlf") }
func (c *HDSConf) PmDir() string   { return filepath.Join(c.DataDir, "pm") }
func (c *HDSConf) SpcDir() string  { return filepath.Join(c.DataDir, "spc") }
func (c *HDSConf) FeatDir() string { return filepath.Join(c.DataDir, "unsel-feats") }
func (c *HDSConf) PrepDir() string { return filepath.Join(c.DataDir, "prep") }
func (c *HDSConf) OutDir() string  { return filepath.Join(c.DataDir, "out") }

// InventoryPath and SimilarityPath are the two persistent artifacts
// a synthesis run needs before it can decode any diphone sequence.
func (c *HDSConf) InventoryPath() string  { return filepath.Join(c.PrepDir(), "inventory") }
func (c *HDSConf) SimilarityPath() string { return filepath.Join(c.PrepDir(), "phonemes_sim") }

// LoadConf reads and decodes a JSON configuration file using
// bytedance/sonic instead of encoding/json.
func LoadConf(path string) (*HDSConf, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var conf HDSConf
	if err := sonic.Unmarshal(raw, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

// DumpTemplate renders a half-populated sample configuration suitable
// as a starting point for a real deployment.
func DumpTemplate() ([]byte, error) {
	conf := HDSConf{
		DataDir:   "/var/hds-data",
		FadeTime:  0.01,
		Report:    ReportConf{DBType: "sqlite", Path: "/var/hds-data/prep/report.db"},
		Verbosity: 1,
	}
	return sonic.ConfigStd.MarshalIndent(conf, "", "  ")
}
