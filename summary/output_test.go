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

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/grailbio/tfbs/encoding/tfbs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSummary() *Summary {
	opts := testOpts(3)
	return Build(aggregate(opts,
		tfbs.Record{CellType: "K562", Tissue: "Knochenmark-ö", Tokens: []string{"GATA1+", "TAL1-", "GATA1+"}},
		tfbs.Record{CellType: "HepG2", Tissue: "liver<b>&", Tokens: []string{"HNF4A", "GATA1-", "TAL1"}},
		tfbs.Record{CellType: "A549", Tissue: "lung"},
	), opts)
}

func TestWriteCSV(t *testing.T) {
	s := testSummary()
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, s))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+len(s.Matrix))
	assert.Equal(t, "tissue,tf,plus,minus,unknown,total,score,imputed", strings.Join(rows[0], ","))
	assert.Equal(t, []string{"Knochenmark-ö", "GATA1", "2", "0", "0", "2", "1", "false"}, rows[1])
	assert.Equal(t, []string{"liver<b>&", "GATA1", "0", "1", "0", "1", "-1", "false"}, rows[4])
	assert.Equal(t, []string{"lung", "GATA1", "0", "0", "0", "0", "0", "true"}, rows[7])
	for i, m := range s.Matrix {
		assert.Equal(t, m.Tissue, rows[i+1][0])
		assert.Equal(t, m.Factor, rows[i+1][1])
	}
}

func TestWriteJSON(t *testing.T) {
	s := testSummary()
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, s))
	assert.Contains(t, buf.String(), `"Knochenmark-ö"`)
	assert.Contains(t, buf.String(), `"liver<b>&"`)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	for _, key := range []string{"meta", "tissues", "tfs", "matrix", "per_tissue", "per_tf", "max_total"} {
		assert.Contains(t, doc, key)
	}
	meta := doc["meta"].(map[string]interface{})
	assert.Equal(t, "2024-01-02", meta["created"])
	assert.Len(t, meta["notes"], 5)
	assert.Contains(t, meta["axes_units"], "heatmap_color")
	assert.Equal(t, []interface{}{"GATA1", "TAL1", "HNF4A"}, doc["tfs"])
	assert.Equal(t, float64(2), doc["max_total"])

	var decoded Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, s, &decoded)
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	s := testSummary()
	opts := testOpts(3)
	opts.OutputDir = filepath.Join(tempDir, "viz_data", "nested")
	paths, err := Export(ctx, s, opts)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(opts.OutputDir, "tfbs_summary_top3.json"),
		filepath.Join(opts.OutputDir, "tfbs_summary_top3.csv"),
	}, paths)

	// The CSV rows follow the JSON matrix order.
	jsonData, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	var decoded Summary
	require.NoError(t, json.Unmarshal(jsonData, &decoded))
	csvData, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(csvData)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+len(decoded.Matrix))
	for i, m := range decoded.Matrix {
		assert.Equal(t, []string{m.Tissue, m.Factor}, rows[i+1][:2])
	}

	// Exporting again into an existing directory overwrites with identical bytes.
	paths2, err := Export(ctx, testSummary(), opts)
	require.NoError(t, err)
	jsonData2, err := os.ReadFile(paths2[0])
	require.NoError(t, err)
	csvData2, err := os.ReadFile(paths2[1])
	require.NoError(t, err)
	assert.Equal(t, jsonData, jsonData2)
	assert.Equal(t, csvData, csvData2)
}

func TestExportFailure(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	// A regular file where the output directory should be.
	blocker := filepath.Join(tempDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	opts := testOpts(3)
	opts.OutputDir = filepath.Join(blocker, "out")
	_, err := Export(context.Background(), testSummary(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), blocker)
}
