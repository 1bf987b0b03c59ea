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

// Package factory selects a report.Writer backend from configuration.
package factory

import (
	"github.com/thonzyk/hds-go/cnf"
	"github.com/thonzyk/hds-go/report"
	"github.com/thonzyk/hds-go/report/mysql"
	"github.com/thonzyk/hds-go/report/sqlite"
)

// New builds a report.Writer according to conf.Report.DBType: "sqlite"
// for a local file, "mysql" for a shared instance, anything else
// (including an empty string) yields a report.NullWriter.
func New(conf cnf.ReportConf) report.Writer {
	switch conf.DBType {
	case "sqlite":
		return &sqlite.Writer{Path: conf.Path}
	case "mysql":
		return &mysql.Writer{DSN: conf.DSN}
	default:
		return report.NullWriter{}
	}
}
