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
	"fmt"

	"blainsmith.com/go/seahash"
)

// MatrixCell is one (tissue, factor) entry of the summary matrix. Pairs that
// were never observed are kept with zero counts and Imputed set.
type MatrixCell struct {
	Tissue  string  `json:"tissue"`
	Factor  string  `json:"tf"`
	Plus    int     `json:"plus"`
	Minus   int     `json:"minus"`
	Unknown int     `json:"unknown"`
	Total   int     `json:"total"`
	Score   float64 `json:"score"`
	Imputed bool    `json:"imputed"`
}

// TissueRollup sums a tissue's counts over the top factors only.
type TissueRollup struct {
	Tissue  string `json:"tissue"`
	Plus    int    `json:"plus"`
	Minus   int    `json:"minus"`
	Unknown int    `json:"unknown"`
	Total   int    `json:"total"`
}

// FactorRollup sums a top factor's counts over all tissues.
type FactorRollup struct {
	Factor  string  `json:"tf"`
	Plus    int     `json:"plus"`
	Minus   int     `json:"minus"`
	Unknown int     `json:"unknown"`
	Total   int     `json:"total"`
	Score   float64 `json:"score"`
}

// Summary is the artifact consumed by the heatmap viewer. It must not be
// modified once built.
type Summary struct {
	Meta Meta `json:"meta"`
	// Tissues lists every tissue, most frequent (by record count) first.
	Tissues []string `json:"tissues"`
	// Factors lists the top factors, most frequent (by token count) first.
	Factors []string `json:"tfs"`
	// Matrix has len(Tissues)*len(Factors) cells in row-major order.
	Matrix    []MatrixCell   `json:"matrix"`
	PerTissue []TissueRollup `json:"per_tissue"`
	PerFactor []FactorRollup `json:"per_tf"`
	// MaxTotal is the largest Total in Matrix.
	MaxTotal int `json:"max_total"`
}

// Build ranks the tissues and factors seen by agg and computes the matrix and
// rollups. Ties in either ranking are broken by first appearance.
func Build(agg *Aggregator, opts Opts) *Summary {
	s := &Summary{
		Meta:    newMeta(opts),
		Tissues: agg.tissues.mostCommon(-1),
	}
	topN := opts.TopN
	if topN < 0 {
		topN = 0
	}
	s.Factors = agg.factors.mostCommon(topN)

	s.Matrix = make([]MatrixCell, 0, len(s.Tissues)*len(s.Factors))
	s.PerTissue = make([]TissueRollup, 0, len(s.Tissues))
	s.PerFactor = make([]FactorRollup, 0, len(s.Factors))
	perFactor := make([]Counts, len(s.Factors))
	for _, tissue := range s.Tissues {
		var row Counts
		for i, factor := range s.Factors {
			c := agg.Cell(tissue, factor)
			s.Matrix = append(s.Matrix, MatrixCell{
				Tissue:  tissue,
				Factor:  factor,
				Plus:    c.Plus,
				Minus:   c.Minus,
				Unknown: c.Unknown,
				Total:   c.Total,
				Score:   c.Score(),
				Imputed: c.Total == 0,
			})
			if c.Total > s.MaxTotal {
				s.MaxTotal = c.Total
			}
			row.merge(c)
			perFactor[i].merge(c)
		}
		s.PerTissue = append(s.PerTissue, TissueRollup{
			Tissue:  tissue,
			Plus:    row.Plus,
			Minus:   row.Minus,
			Unknown: row.Unknown,
			Total:   row.Total,
		})
	}
	for i, factor := range s.Factors {
		c := perFactor[i]
		s.PerFactor = append(s.PerFactor, FactorRollup{
			Factor:  factor,
			Plus:    c.Plus,
			Minus:   c.Minus,
			Unknown: c.Unknown,
			Total:   c.Total,
			Score:   c.Score(),
		})
	}
	return s
}

// Fingerprint hashes the matrix. Two summaries of the same input have the
// same fingerprint regardless of their creation dates.
func (s *Summary) Fingerprint() uint64 {
	h := seahash.New()
	for _, m := range s.Matrix {
		fmt.Fprintf(h, "%s\t%s\t%d\t%d\t%d\t%d\t%v\n",
			m.Tissue, m.Factor, m.Plus, m.Minus, m.Unknown, m.Total, m.Imputed)
	}
	return h.Sum64()
}
