// Copyright 2026 Blink Labs Software
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

package builder

import (
	"log/slog"

	"github.com/blinklabs-io/fueltx/ledger/common"
)

type builderOptions struct {
	logger *slog.Logger
	params *common.ConsensusParameters
}

// BuilderOptionFunc is a type that represents functions that modify the builder config
type BuilderOptionFunc func(*builderOptions)

func newBuilderOptions(opts []BuilderOptionFunc) builderOptions {
	var ret builderOptions
	for _, opt := range opts {
		opt(&ret)
	}
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	return ret
}

// WithLogger specifies the logger used for debug output
func WithLogger(logger *slog.Logger) BuilderOptionFunc {
	return func(o *builderOptions) {
		o.logger = logger
	}
}

// WithConsensusParameters replaces the standard parameter profile the builder starts with
func WithConsensusParameters(params common.ConsensusParameters) BuilderOptionFunc {
	return func(o *builderOptions) {
		o.params = &params
	}
}
