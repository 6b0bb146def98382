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

import "sort"

// orderedCounter counts string keys and remembers the order in which each
// key was first seen. The zero value is ready to use.
type orderedCounter struct {
	index  map[string]int
	keys   []string
	counts []int
}

func (c *orderedCounter) add(key string, n int) {
	i, ok := c.index[key]
	if !ok {
		if c.index == nil {
			c.index = map[string]int{}
		}
		i = len(c.keys)
		c.index[key] = i
		c.keys = append(c.keys, key)
		c.counts = append(c.counts, 0)
	}
	c.counts[i] += n
}

func (c *orderedCounter) count(key string) int {
	if i, ok := c.index[key]; ok {
		return c.counts[i]
	}
	return 0
}

func (c *orderedCounter) len() int { return len(c.keys) }

// mostCommon returns up to n keys in descending order of count. Keys with
// equal counts keep their first-seen order. A negative n returns all keys.
func (c *orderedCounter) mostCommon(n int) []string {
	order := make([]int, len(c.keys))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return c.counts[order[i]] > c.counts[order[j]]
	})
	if n >= 0 && n < len(order) {
		order = order[:n]
	}
	keys := make([]string, len(order))
	for i, idx := range order {
		keys[i] = c.keys[idx]
	}
	return keys
}
