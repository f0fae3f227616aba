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
	"context"
	"io"

	"github.com/BrunoReboul/gcpblocks/utilities/solution"
	"github.com/spf13/cobra"
)

// NewRootCommand returns the gcpblocks command tree
func NewRootCommand(ctx context.Context, stdout io.Writer) *cobra.Command {
	global := &Global{
		ctx:    ctx,
		stdout: stdout,
	}
	rootCmd := &cobra.Command{
		Use:           "gcpblocks",
		Short:         "Run Google Cloud integration blocks: Compute Engine networking, GKE, Secret Manager",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.PersistentFlags().StringVar(&global.settingsPath, "settings", "", "Path to the settings YAML file, environment variables only when empty")
	rootCmd.PersistentFlags().StringVar(&global.environmentName, "environment", solution.DevelopmentEnvironmentName, "Environment name")
	rootCmd.AddCommand(
		newListCommand(global),
		newDescribeCommand(global),
		newRunCommand(global),
		newExportCommand(global),
	)
	return rootCmd
}
