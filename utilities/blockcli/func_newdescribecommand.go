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
	"encoding/json"
	"fmt"

	"github.com/BrunoReboul/gcpblocks/services/catalog"
	"github.com/BrunoReboul/gcpblocks/utilities/blk"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func getBlock(name string) (blk.Block, error) {
	block, ok := catalog.Get(name)
	if !ok {
		return blk.Block{}, errors.Errorf("unknown block '%s', use list to find block names", name)
	}
	return block, nil
}

func newDescribeCommand(global *Global) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <block>",
		Short: "Print the block descriptor as JSON: input and output schemas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			block, err := getBlock(args[0])
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(block.Describe(), "", "  ")
			if err != nil {
				return errors.Wrap(err, "json.MarshalIndent")
			}
			_, err = fmt.Fprintln(global.stdout, string(b))
			return err
		},
	}
}
