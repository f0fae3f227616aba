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

package aut

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ParseCredentials decodes the credentials blob a block receives from the platform
// Accepted shapes:
//  {"accessToken": "ya29..."}
//  {"serviceAccountKey": "<key JSON as a string>"} or {"serviceAccountKey": {...}}
//  a raw service account key {"type": "service_account", ...}
func ParseCredentials(raw []byte) (credentials Credentials, err error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return credentials, ErrMissingCredentials
	}
	var blob struct {
		Type              string          `json:"type"`
		AccessToken       string          `json:"accessToken"`
		ServiceAccountKey json.RawMessage `json:"serviceAccountKey"`
		Subject           string          `json:"subject"`
	}
	err = json.Unmarshal(raw, &blob)
	if err != nil {
		return credentials, fmt.Errorf("aut json.Unmarshal credentials %v", err)
	}
	if blob.Type == "service_account" {
		credentials.ServiceAccountKey = string(raw)
		return credentials, nil
	}
	credentials.AccessToken = blob.AccessToken
	credentials.Subject = blob.Subject
	key := bytes.TrimSpace(blob.ServiceAccountKey)
	if len(key) > 0 && string(key) != "null" {
		if key[0] == '"' {
			err = json.Unmarshal(key, &credentials.ServiceAccountKey)
			if err != nil {
				return credentials, fmt.Errorf("aut json.Unmarshal serviceAccountKey %v", err)
			}
		} else {
			credentials.ServiceAccountKey = string(key)
		}
	}
	if credentials.IsZero() {
		return credentials, ErrMissingCredentials
	}
	return credentials, nil
}
