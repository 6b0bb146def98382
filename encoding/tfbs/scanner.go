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
	"bufio"
	"io"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Scanner reads Records from a TFBS table. Invalid UTF-8 sequences in the
// input are replaced with U+FFFD. Lines that are blank, or that have fewer
// than two fields, are skipped without error. Scanners are not threadsafe.
type Scanner struct {
	r       *bufio.Reader
	err     error
	lines   int
	dropped int
}

// NewScanner creates a Scanner that reads from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReaderSize(transform.NewReader(r, runes.ReplaceIllFormed()), 64<<10)}
}

// Scan reads the next record into rec. Scan returns false at the end of the
// input or on a read error; the caller should then check Err. Once Scan
// returns false, it never returns true again. rec.Tokens is reused across
// calls.
func (s *Scanner) Scan(rec *Record) bool {
	for s.err == nil {
		line, err := s.r.ReadString('\n')
		if err != nil {
			s.err = err
			if line == "" {
				break
			}
		}
		s.lines++
		if strings.TrimSpace(line) == "" {
			continue
		}
		if parseLine(line, rec) {
			return true
		}
		s.dropped++
	}
	return false
}

// parseLine splits a non-blank line into a record. Fields are separated by
// tabs; if that yields fewer than two fields the line is split on runs of
// whitespace instead.
func parseLine(line string, rec *Record) bool {
	parts := strings.Split(line, "\t")
	if len(parts) < 2 {
		parts = strings.Fields(line)
	}
	if len(parts) < 2 {
		return false
	}
	rec.CellType = strings.TrimSpace(parts[0])
	rec.Tissue = strings.TrimSpace(parts[1])
	rec.Tokens = rec.Tokens[:0]
	for _, p := range parts[2:] {
		if p = strings.TrimSpace(p); p != "" {
			rec.Tokens = append(rec.Tokens, p)
		}
	}
	return true
}

// Err returns the first non-EOF error encountered by Scan.
func (s *Scanner) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// Lines returns the number of lines read so far, including skipped ones.
func (s *Scanner) Lines() int { return s.lines }

// Dropped returns the number of non-blank lines skipped because they had
// fewer than two fields.
func (s *Scanner) Dropped() int { return s.dropped }
