// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package summary aggregates a TFBS table into signed occurrence counts per
// (tissue, transcription factor) and builds the artifact used by the TFBS
// heatmap viewer.
//
// The pipeline is strictly linear: records from encoding/tfbs are fed to an
// Aggregator, Build ranks tissues and factors and fills a dense
// tissue-by-top-factor matrix, and Export writes the result as JSON and CSV.
package summary

import (
	"context"

	"github.com/grailbio/base/log"
	"github.com/grailbio/tfbs/encoding/tfbs"
)

// Run reads opts.InputPath and builds its summary. The input is closed before
// Run returns.
func Run(ctx context.Context, opts Opts) (s *Summary, stats Stats, err error) {
	r, err := tfbs.Open(ctx, opts.InputPath)
	if err != nil {
		return nil, stats, err
	}
	agg := NewAggregator(opts)
	var rec tfbs.Record
	for r.Scan(&rec) {
		agg.Add(&rec)
	}
	if err = r.Close(ctx); err != nil {
		return nil, stats, err
	}
	stats = agg.Stats()
	stats.Lines = r.Lines()
	stats.DroppedLines = r.Dropped()
	log.Debug.Printf("%s: %v", opts.InputPath, stats)
	return Build(agg, opts), stats, nil
}
