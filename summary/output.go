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
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
)

// CSVHeader lists the columns written by WriteCSV.
var CSVHeader = []string{"tissue", "tf", "plus", "minus", "unknown", "total", "score", "imputed"}

// WriteJSON writes s as a single JSON object. Non-ASCII text is written as
// UTF-8, and '<', '>', '&' are not escaped.
func WriteJSON(w io.Writer, s *Summary) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(s)
}

// WriteCSV writes one row per matrix cell, in matrix order, after CSVHeader.
func WriteCSV(w io.Writer, s *Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	row := make([]string, len(CSVHeader))
	for _, m := range s.Matrix {
		row[0] = m.Tissue
		row[1] = m.Factor
		row[2] = strconv.Itoa(m.Plus)
		row[3] = strconv.Itoa(m.Minus)
		row[4] = strconv.Itoa(m.Unknown)
		row[5] = strconv.Itoa(m.Total)
		row[6] = strconv.FormatFloat(m.Score, 'g', -1, 64)
		row[7] = strconv.FormatBool(m.Imputed)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// OutputPaths returns the JSON and CSV paths that Export writes for the given
// directory and number of top factors.
func OutputPaths(dir string, topN int) (jsonPath, csvPath string) {
	base := fmt.Sprintf("tfbs_summary_top%d", topN)
	return file.Join(dir, base+".json"), file.Join(dir, base+".csv")
}

// Export writes the JSON and CSV renditions of s into opts.OutputDir and
// returns their paths. A local output directory is created if it does not
// exist.
func Export(ctx context.Context, s *Summary, opts Opts) (paths []string, err error) {
	if !strings.Contains(opts.OutputDir, "://") {
		if err = os.MkdirAll(opts.OutputDir, 0777); err != nil {
			return nil, errors.E(err, "create output directory", opts.OutputDir)
		}
	}
	jsonPath, csvPath := OutputPaths(opts.OutputDir, opts.TopN)
	if err = writeFile(ctx, jsonPath, func(w io.Writer) error { return WriteJSON(w, s) }); err != nil {
		return nil, err
	}
	if err = writeFile(ctx, csvPath, func(w io.Writer) error { return WriteCSV(w, s) }); err != nil {
		return nil, err
	}
	return []string{jsonPath, csvPath}, nil
}

func writeFile(ctx context.Context, path string, write func(io.Writer) error) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.E(err, "create", path)
	}
	defer func() {
		if err2 := out.Close(ctx); err == nil && err2 != nil {
			err = errors.E(err2, "close", path)
		}
	}()
	w := bufio.NewWriter(out.Writer(ctx))
	if err = write(w); err != nil {
		return errors.E(err, "write", path)
	}
	if err = w.Flush(); err != nil {
		return errors.E(err, "write", path)
	}
	return nil
}
