// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"sort"
	"sync"

	"github.com/BrunoReboul/gcpblocks/services/gce"
	"github.com/BrunoReboul/gcpblocks/services/gke"
	"github.com/BrunoReboul/gcpblocks/services/gsm"
	"github.com/BrunoReboul/gcpblocks/utilities/blk"
)

var (
	once   sync.Once
	blocks []blk.Block
	byName map[string]blk.Block
)

func load() {
	once.Do(func() {
		blocks = append(blocks, gce.Blocks()...)
		blocks = append(blocks, gke.Blocks()...)
		blocks = append(blocks, gsm.Blocks()...)
		byName = make(map[string]blk.Block, len(blocks))
		for _, block := range blocks {
			byName[block.Name] = block
		}
	})
}

// All returns every block sorted by name
func All() []blk.Block {
	load()
	all := make([]blk.Block, len(blocks))
	copy(all, blocks)
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// Get returns a block by name
func Get(name string) (blk.Block, bool) {
	load()
	block, ok := byName[name]
	return block, ok
}

// Categories returns the sorted list of block categories
func Categories() []string {
	load()
	var categories []string
	seen := make(map[string]bool)
	for _, block := range blocks {
		if !seen[block.Category] {
			seen[block.Category] = true
			categories = append(categories, block.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// ByCategory returns the blocks of one category sorted by name
func ByCategory(category string) []blk.Block {
	var selected []blk.Block
	for _, block := range All() {
		if block.Category == category {
			selected = append(selected, block)
		}
	}
	return selected
}
