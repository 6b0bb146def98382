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

// Meta describes how a Summary was produced.
type Meta struct {
	Title      string    `json:"title"`
	SourceFile string    `json:"source_file"`
	Created    string    `json:"created"`
	Notes      []string  `json:"notes"`
	AxesUnits  AxesUnits `json:"axes_units"`
}

// AxesUnits documents the units of the viewer's visual encodings.
type AxesUnits struct {
	HeatmapColor string `json:"heatmap_color"`
	HeatmapSize  string `json:"heatmap_size"`
	Bars         string `json:"bars"`
}

const createdLayout = "2006-01-02"

func newMeta(opts Opts) Meta {
	created := opts.Created
	if created.IsZero() {
		created = time.Now()
	}
	notes := []string{
		"Parsed each row as: cell_type, tissue, followed by a variable-length list of TF tokens.",
		"Each TF token ends with + or - indicating direction; tokens without a sign are labeled unknown (0).",
		"Aggregated counts per (tissue, TF) without removing outliers.",
		"Matrix cells with total=0 are treated as structural zeros and flagged as imputed.",
	}
	if opts.SplitTokenLists {
		notes = append(notes, "Comma-separated TF lists within a field were split into individual tokens.")
	}
	return Meta{
		Title:      opts.Title,
		SourceFile: opts.InputPath,
		Created:    created.Format(createdLayout),
		Notes:      notes,
		AxesUnits: AxesUnits{
			HeatmapColor: "Signed proportion (plus-minus)/total (unitless, range [-1,1])",
			HeatmapSize:  "Count of occurrences (records)",
			Bars:         "Count of occurrences (records)",
		},
	}
}

// ParseCreated parses a YYYY-MM-DD date as accepted by Opts.Created.
func ParseCreated(s string) (time.Time, error) {
	return time.Parse(createdLayout, s)
}
