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

/*
Package blockcli command line host for the blocks

	gcpblocks list [--category "Secret Manager"]
	gcpblocks describe gce.routers.insert
	gcpblocks run gce.routers.insert --input router.yaml [--set region=europe-west1] [--credentials creds.json]
	gcpblocks export --output catalog.yaml

Global flags --settings and --environment select the settings file and the environment, see package solution.
run emits the block event on stdout as a JSON line, or on a Pub/Sub topic when settings output kind is pubsub.
*/
package blockcli
