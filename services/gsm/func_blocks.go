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

package gsm

import (
	"github.com/BrunoReboul/gcpblocks/utilities/blk"
)

// Blocks returns the Secret Manager blocks
func Blocks() []blk.Block {
	return []blk.Block{
		secretsList,
		secretsGet,
		secretsCreate,
		secretsPatch,
		secretsDelete,
		secretsAddVersion,
		secretsGetIamPolicy,
		secretsSetIamPolicy,
		secretsTestIamPermissions,
		versionsList,
		versionsGet,
		versionsAccess,
		versionsEnable,
		versionsDisable,
		versionsDestroy,
		locationsList,
		locationsGet,
	}
}
