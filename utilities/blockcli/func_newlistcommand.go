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

package blockcli

import (
	"fmt"
	"text/tabwriter"

	"github.com/BrunoReboul/gcpblocks/services/catalog"
	"github.com/BrunoReboul/gcpblocks/utilities/blk"
	"github.com/BrunoReboul/gcpblocks/utilities/str"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newListCommand(global *Global) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List blocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var blocks []blk.Block
			if category == "" {
				blocks = catalog.All()
			} else {
				if !str.Find(catalog.Categories(), category) {
					return errors.Errorf("unknown category '%s', want one of %v", category, catalog.Categories())
				}
				blocks = catalog.ByCategory(category)
			}
			w := tabwriter.NewWriter(global.stdout, 0, 4, 2, ' ', 0)
			for _, block := range blocks {
				fmt.Fprintf(w, "%s\t%s\t%s\n", block.Name, block.Method, block.DisplayName)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only list blocks of this category")
	return cmd
}
