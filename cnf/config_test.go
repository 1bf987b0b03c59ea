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

package cnf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConf(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hds.json")
	content := `{"dataDir": "/var/hds-data", "fadeTime": 0.01, "report": {"dbType": "sqlite", "path": "/var/hds-data/prep/report.db"}, "verbosity": 2}`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

	conf, err := LoadConf(path)
	assert.NoError(t, err)
	assert.Equal(t, "/var/hds-data", conf.DataDir)
	assert.Equal(t, 0.01, conf.FadeTime)
	assert.Equal(t, "sqlite", conf.Report.DBType)
	assert.Equal(t, 2, conf.Verbosity)
}

func TestHDSConfSubdirs(t *testing.T) {
	conf := HDSConf{DataDir: "/var/hds-data"}
	assert.Equal(t, "/var/hds-data/mlf", conf.MlfDir())
	assert.Equal(t, "/var/hds-data/pm", conf.PmDir())
	assert.Equal(t, "/var/hds-data/spc", conf.SpcDir())
	assert.Equal(t, "/var/hds-data/unsel-feats", conf.FeatDir())
	assert.Equal(t, "/var/hds-data/prep", conf.PrepDir())
	assert.Equal(t, "/var/hds-data/out", conf.OutDir())
	assert.Equal(t, "/var/hds-data/prep/inventory", conf.InventoryPath())
	assert.Equal(t, "/var/hds-data/prep/phonemes_sim", conf.SimilarityPath())
}

func TestDumpTemplate(t *testing.T) {
	out, err := DumpTemplate()
	assert.NoError(t, err)
	assert.Contains(t, string(out), "dataDir")
}
