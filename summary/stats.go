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

import "fmt"

// Stats counts what happened while reading and aggregating a TFBS table.
type Stats struct {
	// Lines is the number of input lines read, including blank ones.
	Lines int
	// DroppedLines is the number of non-blank lines with fewer than two fields.
	DroppedLines int
	// Records is the number of lines that yielded a (cell type, tissue) record.
	Records int
	// Tokens is the number of tokens counted into the aggregate.
	Tokens int
	// SkippedTokens is the number of tokens that were empty after cleaning.
	SkippedTokens int
	// Tissues and Factors are the numbers of distinct tissues and factors seen.
	Tissues, Factors int
}

func (s Stats) String() string {
	return fmt.Sprintf("lines: %d (dropped %d), records: %d, tokens: %d (skipped %d), tissues: %d, factors: %d",
		s.Lines, s.DroppedLines, s.Records, s.Tokens, s.SkippedTokens, s.Tissues, s.Factors)
}
