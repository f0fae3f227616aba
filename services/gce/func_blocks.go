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

package gce

import (
	"github.com/BrunoReboul/gcpblocks/utilities/blk"
)

// Blocks returns the Compute Engine networking blocks
func Blocks() []blk.Block {
	return []blk.Block{
		addressesList,
		addressesAggregatedList,
		addressesGet,
		addressesInsert,
		addressesDelete,
		addressesSetLabels,
		globalAddressesList,
		globalAddressesGet,
		globalAddressesInsert,
		globalAddressesDelete,
		networksList,
		networksGet,
		networksInsert,
		networksPatch,
		networksDelete,
		networksAddPeering,
		networksRemovePeering,
		networksSwitchToCustomMode,
		subnetworksList,
		subnetworksAggregatedList,
		subnetworksGet,
		subnetworksInsert,
		subnetworksPatch,
		subnetworksDelete,
		subnetworksExpandIPCidrRange,
		subnetworksSetPrivateIPGoogleAccess,
		firewallsList,
		firewallsGet,
		firewallsInsert,
		firewallsPatch,
		firewallsUpdate,
		firewallsDelete,
		routesList,
		routesGet,
		routesInsert,
		routesDelete,
		routersList,
		routersAggregatedList,
		routersGet,
		routersInsert,
		routersPatch,
		routersDelete,
		routersGetRouterStatus,
		routersGetNatMappingInfo,
		globalOperationsGet,
		globalOperationsWait,
		regionOperationsGet,
		regionOperationsWait,
	}
}
