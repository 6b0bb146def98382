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
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestOrderedCounter(t *testing.T) {
	var c orderedCounter
	expect.EQ(t, c.count("a"), 0)
	expect.EQ(t, c.mostCommon(-1), []string{})
	for _, k := range []string{"a", "b", "a", "c", "b", "d"} {
		c.add(k, 1)
	}
	expect.EQ(t, c.len(), 4)
	expect.EQ(t, c.count("a"), 2)
	expect.EQ(t, c.count("zzz"), 0)
	expect.EQ(t, c.len(), 4)
	expect.EQ(t, c.mostCommon(-1), []string{"a", "b", "c", "d"})
	expect.EQ(t, c.mostCommon(3), []string{"a", "b", "c"})
	expect.EQ(t, c.mostCommon(10), []string{"a", "b", "c", "d"})
	expect.EQ(t, c.mostCommon(0), []string{})

	c.add("d", 5)
	expect.EQ(t, c.mostCommon(-1), []string{"d", "a", "b", "c"})
}
