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

	"github.com/BrunoReboul/gcpblocks/services/catalog"
	"github.com/BrunoReboul/gcpblocks/utilities/ffo"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newExportCommand(global *Global) *cobra.Command {
	var outputPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every block descriptor to a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptors, err := exportDescriptors()
			if err != nil {
				return err
			}
			err = ffo.MarshalYAMLWrite(outputPath, descriptors)
			if err != nil {
				return errors.Wrapf(err, "ffo.MarshalYAMLWrite %s", outputPath)
			}
			cmd.Printf("%d blocks exported to %s\n", len(descriptors), outputPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&outputPath, "output", "blocks.yaml", "Path of the YAML file to write")
	return cmd
}

// exportDescriptors renders descriptors through JSON so that YAML keys follow the JSON schema names
func exportDescriptors() ([]interface{}, error) {
	var descriptors []interface{}
	for _, block := range catalog.All() {
		b, err := json.Marshal(block.Describe())
		if err != nil {
			return nil, errors.Wrapf(err, "json.Marshal %s", block.Name)
		}
		var descriptor map[string]interface{}
		err = json.Unmarshal(b, &descriptor)
		if err != nil {
			return nil, errors.Wrapf(err, "json.Unmarshal %s", block.Name)
		}
		descriptors = append(descriptors, descriptor)
	}
	return descriptors, nil
}
