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

import "github.com/grailbio/tfbs/encoding/tfbs"

// Counts holds signed token counts. Total is always Plus+Minus+Unknown.
type Counts struct {
	Plus    int `json:"plus"`
	Minus   int `json:"minus"`
	Unknown int `json:"unknown"`
	Total   int `json:"total"`
}

func (c *Counts) add(s tfbs.Sign) {
	switch s {
	case tfbs.SignPlus:
		c.Plus++
	case tfbs.SignMinus:
		c.Minus++
	default:
		c.Unknown++
	}
	c.Total++
}

func (c *Counts) merge(o Counts) {
	c.Plus += o.Plus
	c.Minus += o.Minus
	c.Unknown += o.Unknown
	c.Total += o.Total
}

// Score returns (Plus-Minus)/Total, or 0 if Total is 0. The result is in
// [-1, 1].
func (c Counts) Score() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Plus-c.Minus) / float64(c.Total)
}

type cellKey struct {
	tissue, factor string
}

// Aggregator accumulates Counts per (tissue, factor) pair, along with the
// tissue and factor frequencies used to rank them.
type Aggregator struct {
	splitLists bool
	cells      map[cellKey]*Counts
	// tissues counts records; factors counts tokens.
	tissues orderedCounter
	factors orderedCounter
	stats   Stats
}

// NewAggregator creates an empty Aggregator.
func NewAggregator(opts Opts) *Aggregator {
	return &Aggregator{
		splitLists: opts.SplitTokenLists,
		cells:      map[cellKey]*Counts{},
	}
}

// Add counts one record. The tissue is counted once even if the record has no
// tokens; each token that survives tfbs.ParseToken is counted under
// (rec.Tissue, token.Factor).
func (a *Aggregator) Add(rec *tfbs.Record) {
	a.tissues.add(rec.Tissue, 1)
	a.stats.Records++
	a.stats.SkippedTokens += rec.ForEachToken(a.splitLists, func(t tfbs.Token) {
		key := cellKey{rec.Tissue, t.Factor}
		c := a.cells[key]
		if c == nil {
			c = &Counts{}
			a.cells[key] = c
		}
		c.add(t.Sign)
		a.factors.add(t.Factor, 1)
		a.stats.Tokens++
	})
}

// Cell returns the counts for (tissue, factor). A pair that was never seen
// yields zero Counts; the lookup does not create an entry.
func (a *Aggregator) Cell(tissue, factor string) Counts {
	if c, ok := a.cells[cellKey{tissue, factor}]; ok {
		return *c
	}
	return Counts{}
}

// TissueRecords returns the number of records seen for tissue.
func (a *Aggregator) TissueRecords(tissue string) int { return a.tissues.count(tissue) }

// FactorTokens returns the number of tokens seen for factor across all tissues.
func (a *Aggregator) FactorTokens(factor string) int { return a.factors.count(factor) }

// Stats reports the aggregation counters. Lines and DroppedLines are left to
// the caller, which owns the scanner.
func (a *Aggregator) Stats() Stats {
	s := a.stats
	s.Tissues = a.tissues.len()
	s.Factors = a.factors.len()
	return s
}
