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

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/thonzyk/hds-go/cnf"
	"github.com/thonzyk/hds-go/library"
	"github.com/thonzyk/hds-go/report/factory"
)

var (
	version   string
	build     string
	gitCommit string
)

func configureLogging(verbosity int) {
	level := zerolog.InfoLevel
	switch {
	case verbosity <= 0:
		level = zerolog.WarnLevel
	case verbosity == 1:
		level = zerolog.InfoLevel
	default:
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	if isTerminal(os.Stdout) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func loadConf(path string) *cnf.HDSConf {
	conf, err := cnf.LoadConf(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to load configuration")
	}
	return conf
}

func cmdTranscribe(args []string) {
	fset := flag.NewFlagSet("transcribe", flag.ExitOnError)
	fset.Usage = func() { fmt.Println("Usage: hds transcribe INPUT [OUTPUT]") }
	fset.Parse(args)

	input := fset.Arg(0)
	if input == "" {
		fset.Usage()
		os.Exit(1)
	}
	output := fset.Arg(1)
	if output == "" {
		output = library.DeriveOutputPath(input)
	}
	if err := library.Transcribe(input, output); err != nil {
		log.Fatal().Err(err).Msg("transcription failed")
	}
	log.Info().Str("output", output).Msg("transcription finished")
}

func cmdSynthesize(args []string) {
	fset := flag.NewFlagSet("synthesize", flag.ExitOnError)
	fset.Usage = func() { fmt.Println("Usage: hds synthesize INPUT HDS_DATA_DIR OUTPUT_DIR") }
	fset.Parse(args)

	input := fset.Arg(0)
	dataDir := fset.Arg(1)
	outDir := fset.Arg(2)
	if input == "" || dataDir == "" || outDir == "" {
		fset.Usage()
		os.Exit(1)
	}

	conf := &cnf.HDSConf{DataDir: dataDir}
	rpt := factory.New(conf.Report)
	inv, sim, err := library.EnsureInventory(conf, rpt)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare inventory")
	}

	t0 := time.Now()
	if err := library.Synthesize(input, outDir, inv, sim); err != nil {
		log.Fatal().Err(err).Msg("synthesis failed")
	}
	log.Info().Dur("elapsed", time.Since(t0)).Msg("synthesis finished")
}

func cmdBuildInventory(args []string) {
	fset := flag.NewFlagSet("build-inventory", flag.ExitOnError)
	fset.Usage = func() { fmt.Println("Usage: hds build-inventory conf.json") }
	fset.Parse(args)

	confPath := fset.Arg(0)
	if confPath == "" {
		fset.Usage()
		os.Exit(1)
	}
	conf := loadConf(confPath)
	rpt := factory.New(conf.Report)

	t0 := time.Now()
	_, _, err := library.BuildInventory(conf, rpt)
	if err != nil {
		log.Fatal().Err(err).Msg("inventory build failed")
	}
	log.Info().Dur("elapsed", time.Since(t0)).Msg("inventory build finished")
}

func cmdTemplate() {
	out, err := cnf.DumpTemplate()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to render configuration template")
	}
	fmt.Println(string(out))
}

func main() {
	flag.Usage = func() {
		fmt.Println("\n+-------------------------------------------------------------+")
		fmt.Println("| hds - a rule-based Czech diphone text-to-speech pipeline     |")
		fmt.Printf("|                       version %s                         |\n", version)
		fmt.Println("|          (c) Institute of the Czech National Corpus         |")
		fmt.Println("+-------------------------------------------------------------+")
		fmt.Println("\nUsage:")
		fmt.Println("hds transcribe INPUT [OUTPUT]\n\t(run the grapheme-to-phoneme transcriber on a text file)")
		fmt.Println("hds synthesize INPUT HDS_DATA_DIR OUTPUT_DIR\n\t(transcribe and synthesise one WAV file per line)")
		fmt.Println("hds build-inventory conf.json\n\t(build and persist the diphone inventory from training data)")
		fmt.Println("hds template\n\t(create a half empty sample config and write it to stdout)")
		fmt.Println("hds version\n\tshow detailed version information")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	configureLogging(1)

	switch flag.Arg(0) {
	case "transcribe":
		cmdTranscribe(flag.Args()[1:])
	case "synthesize":
		cmdSynthesize(flag.Args()[1:])
	case "build-inventory":
		cmdBuildInventory(flag.Args()[1:])
	case "template":
		cmdTemplate()
	case "version":
		fmt.Printf("hds %s\nbuild date: %s\nlast commit: %s\n", version, build, gitCommit)
	default:
		log.Fatal().Str("command", flag.Arg(0)).Msg("unknown command")
	}
}
