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
package summary

import "time"

// Opts controls how a TFBS table is summarized.
type Opts struct {
	// InputPath is the TFBS table to read. Paths ending in ".gz" are
	// decompressed.
	InputPath string
	// OutputDir receives the JSON and CSV artifacts. It is created if needed.
	OutputDir string
	// TopN is the number of factors, ranked by total token count, that make up
	// the matrix columns.
	TopN int
	// Title is copied into the summary metadata.
	Title string
	// Created is the date recorded in the summary metadata. The zero value
	// means today.
	Created time.Time
	// SplitTokenLists causes each token field to be split on ',' before the
	// tokens are parsed.
	SplitTokenLists bool
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	InputPath:       "cellvar.db.tfbs_seq.tsv",
	OutputDir:       "viz_data",
	TopN:            40,
	Title:           "TFBS Signatures across Tissues (CellVar TFBS Sequence DB)",
	SplitTokenLists: true,
}
