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
	"encoding/base64"
	"fmt"
	"hash/crc32"

	secretmanager "google.golang.org/api/secretmanager/v1"
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// preparePayload encodes a plain text data field into the API payload
func preparePayload(input map[string]interface{}, body map[string]interface{}) error {
	delete(body, "data")
	data, hasData := input["data"]
	if data == nil {
		hasData = false
	}
	_, hasPayload := body["payload"]
	switch {
	case hasData && hasPayload:
		return fmt.Errorf("set either payload or data, not both")
	case hasPayload:
		return nil
	case !hasData:
		return fmt.Errorf("one of payload or data is required")
	}
	text, ok := data.(string)
	if !ok {
		return fmt.Errorf("data should be a string, got %T", data)
	}
	if text == "" {
		return fmt.Errorf("data should not be empty")
	}
	body["payload"] = &secretmanager.SecretPayload{
		Data:       base64.StdEncoding.EncodeToString([]byte(text)),
		DataCrc32c: int64(crc32.Checksum([]byte(text), castagnoli)),
	}
	return nil
}

// prepareReplication defaults to automatic replication
func prepareReplication(input map[string]interface{}, body map[string]interface{}) error {
	if _, ok := body["replication"]; !ok {
		body["replication"] = &secretmanager.Replication{Automatic: &secretmanager.Automatic{}}
	}
	return nil
}
