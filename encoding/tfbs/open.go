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
package tfbs

import (
	"context"
	"io"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Reader is a Scanner bound to an open file. Paths ending in ".gz" are
// decompressed on the fly.
type Reader struct {
	*Scanner
	path string
	in   file.File
	gz   *gzip.Reader
}

// Open opens the TFBS table at path. The path may be anything understood by
// grailbio/base/file, e.g. a local path or an s3:// URL. The caller must call
// Close.
func Open(ctx context.Context, path string) (*Reader, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "tfbs open %s", path)
	}
	var r io.Reader = in.Reader(ctx)
	var gz *gzip.Reader
	if strings.HasSuffix(path, ".gz") {
		if gz, err = gzip.NewReader(r); err != nil {
			_ = in.Close(ctx)
			return nil, errors.Wrapf(err, "tfbs gunzip %s", path)
		}
		r = gz
	}
	return &Reader{Scanner: NewScanner(r), path: path, in: in, gz: gz}, nil
}

// Close releases the underlying file. It returns the scan error, if any, or
// else the first error encountered while closing.
func (r *Reader) Close(ctx context.Context) error {
	err := r.Err()
	if err != nil {
		err = errors.Wrapf(err, "tfbs read %s", r.path)
	}
	if r.gz != nil {
		if e := r.gz.Close(); e != nil && err == nil {
			err = errors.Wrapf(e, "tfbs gunzip %s", r.path)
		}
	}
	if e := r.in.Close(ctx); e != nil && err == nil {
		err = errors.Wrapf(e, "tfbs close %s", r.path)
	}
	return err
}

// ReadAll reads every record of the table at path.
func ReadAll(ctx context.Context, path string) (recs []Record, err error) {
	r, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if e := r.Close(ctx); e != nil && err == nil {
			err = e
		}
	}()
	var rec Record
	for r.Scan(&rec) {
		recs = append(recs, Record{
			CellType: rec.CellType,
			Tissue:   rec.Tissue,
			Tokens:   append([]string(nil), rec.Tokens...),
		})
	}
	return recs, nil
}
