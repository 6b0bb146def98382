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
package main

/*
bio-tfbs-summary aggregates a transcription-factor-binding-site table into
signed counts per (tissue, factor) and writes the JSON and CSV files read by
the TFBS heatmap viewer.

Each input line is

	cell_type<TAB>tissue<TAB>token<TAB>token...

where a token is a factor name optionally suffixed with '+' or '-'. Lines with
fewer than two fields are ignored. The output is written to
<out-dir>/tfbs_summary_top<N>.{json,csv}.
*/

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/tfbs/summary"
)

var (
	inPath     = flag.String("in", summary.DefaultOpts.InputPath, "Input TFBS table; *.gz inputs are decompressed")
	outDir     = flag.String("out-dir", summary.DefaultOpts.OutputDir, "Directory to write the JSON and CSV summaries to")
	topN       = flag.Int("top-n", summary.DefaultOpts.TopN, "Number of most frequent factors to keep in the matrix")
	title      = flag.String("title", summary.DefaultOpts.Title, "Title recorded in the summary metadata")
	created    = flag.String("created", "", "Creation date (YYYY-MM-DD) recorded in the summary metadata; defaults to today")
	splitLists = flag.Bool("split-token-lists", summary.DefaultOpts.SplitTokenLists, "Split each token field on ',' before parsing tokens")
)

func bioTFBSSummaryUsage() {
	fmt.Printf("Usage: %s [OPTIONS]\n", os.Args[0])
	fmt.Printf("Options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = bioTFBSSummaryUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() > 0 {
		log.Fatalf("Unexpected positional arguments: %v", flag.Args())
	}
	opts := summary.Opts{
		InputPath:       *inPath,
		OutputDir:       *outDir,
		TopN:            *topN,
		Title:           *title,
		SplitTokenLists: *splitLists,
	}
	if *created != "" {
		t, err := summary.ParseCreated(*created)
		if err != nil {
			log.Fatalf("-created: %v", err)
		}
		opts.Created = t
	}
	ctx := vcontext.Background()
	s, stats, err := summary.Run(ctx, opts)
	if err != nil {
		log.Fatal(err)
	}
	log.Debug.Printf("%s: %d tissues, %d factors (%d kept), fingerprint %016x",
		opts.InputPath, stats.Tissues, stats.Factors, len(s.Factors), s.Fingerprint())
	paths, err := summary.Export(ctx, s, opts)
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range paths {
		fmt.Println("Wrote:", p)
	}
	log.Debug.Printf("exiting")
}
