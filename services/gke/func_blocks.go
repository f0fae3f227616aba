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

package gke

import (
	"github.com/BrunoReboul/gcpblocks/utilities/blk"
)

// Blocks returns the Google Kubernetes Engine blocks
func Blocks() []blk.Block {
	return []blk.Block{
		clustersList,
		clustersGet,
		clustersCreate,
		clustersUpdate,
		clustersDelete,
		clustersSetResourceLabels,
		clustersSetNetworkPolicy,
		clustersSetMaintenancePolicy,
		clustersSetMasterAuth,
		clustersStartIPRotation,
		clustersCompleteIPRotation,
		clustersSetLegacyAbac,
		nodePoolsList,
		nodePoolsGet,
		nodePoolsCreate,
		nodePoolsUpdate,
		nodePoolsDelete,
		nodePoolsSetSize,
		nodePoolsSetAutoscaling,
		nodePoolsSetManagement,
		nodePoolsRollback,
		operationsList,
		operationsGet,
		operationsCancel,
		getServerConfig,
	}
}
