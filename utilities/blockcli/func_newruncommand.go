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
	"io/ioutil"
	"strings"

	"github.com/BrunoReboul/gcpblocks/utilities/aut"
	"github.com/BrunoReboul/gcpblocks/utilities/blk"
	"github.com/BrunoReboul/gcpblocks/utilities/ffo"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRunCommand(global *Global) *cobra.Command {
	var inputPath string
	var credentialsPath string
	var sets []string
	cmd := &cobra.Command{
		Use:   "run <block>",
		Short: "Execute a block once and emit its result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			block, err := getBlock(args[0])
			if err != nil {
				return err
			}
			input, err := readInput(inputPath, sets)
			if err != nil {
				return err
			}
			settings, err := global.loadSettings()
			if err != nil {
				return err
			}
			if credentialsPath != "" {
				raw, err := ioutil.ReadFile(credentialsPath)
				if err != nil {
					return errors.Wrapf(err, "read credentials %s", credentialsPath)
				}
				settings.Credentials, err = aut.ParseCredentials(raw)
				if err != nil {
					return err
				}
			}
			runtime, closeRuntime, err := newRuntime(global.ctx, settings, global.stdout)
			if err != nil {
				return err
			}
			defer closeRuntime()
			_, err = block.Run(global.ctx, runtime, input)
			return err
		},
	}
	cmd.Flags().StringVar(&inputPath, "input", "", "Path to the block input YAML file")
	cmd.Flags().StringVar(&credentialsPath, "credentials", "", "Path to a credentials JSON: {\"accessToken\"}, {\"serviceAccountKey\"} or a service account key")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Set a string input value, key=value, repeatable, overrides the input file")
	return cmd
}

func readInput(inputPath string, sets []string) (map[string]interface{}, error) {
	input := make(map[string]interface{})
	if inputPath != "" {
		err := ffo.ReadUnmarshalYAML(inputPath, &input)
		if err != nil {
			return nil, errors.Wrapf(err, "read input %s", inputPath)
		}
	}
	input = blk.NormalizeInput(input)
	for _, set := range sets {
		parts := strings.SplitN(set, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, errors.Errorf("invalid --set '%s', want key=value", set)
		}
		input[parts[0]] = parts[1]
	}
	return input, nil
}
