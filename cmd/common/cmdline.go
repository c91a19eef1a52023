// Copyright 2023 Blink Labs, LLC.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package common

import (
	"fmt"
	"log/slog"
	"os"

	lcommon "github.com/blinklabs-io/fueltx/ledger/common"
	flag "github.com/spf13/pflag"
)

type GlobalFlags struct {
	Flagset    *flag.FlagSet
	ParamsFile string
	ChainId    uint64
	Debug      bool
}

func NewGlobalFlags() *GlobalFlags {
	f := &GlobalFlags{
		Flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.Flagset.StringVar(
		&f.ParamsFile,
		"params-file",
		"",
		"path to a JSON or YAML consensus parameters file (defaults to the standard parameters)",
	)
	f.Flagset.Uint64Var(
		&f.ChainId,
		"chain-id",
		0,
		"chain id to sign for. this overrides the value from the parameters file",
	)
	f.Flagset.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	return f
}

func (f *GlobalFlags) Parse() {
	if err := f.Flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
}

// Logger returns a text logger on stderr honoring the debug flag
func (f *GlobalFlags) Logger() *slog.Logger {
	level := slog.LevelInfo
	if f.Debug {
		level = slog.LevelDebug
	}
	return slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	)
}

// ConsensusParameters loads the parameters file, if any, and applies the chain
// id override
func (f *GlobalFlags) ConsensusParameters() (lcommon.ConsensusParameters, error) {
	params := lcommon.StandardConsensusParameters()
	if f.ParamsFile != "" {
		var err error
		params, err = lcommon.NewConsensusParametersFromFile(f.ParamsFile)
		if err != nil {
			return params, err
		}
	}
	if f.Flagset.Changed("chain-id") {
		params.ChainId = lcommon.ChainId(f.ChainId)
	}
	return params, nil
}
