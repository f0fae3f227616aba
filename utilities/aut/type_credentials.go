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

import "errors"

// CloudPlatformScope is used when a block does not declare any scope
const CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// ErrMissingCredentials neither an access token nor a service account key has been configured
var ErrMissingCredentials = errors.New("aut missing credentials: provide an access token or a service account key")

// Credentials as configured on a block
type Credentials struct {
	AccessToken           string `json:"accessToken,omitempty" yaml:"accessToken,omitempty" env:"GCPBLOCKS_ACCESS_TOKEN"`
	ServiceAccountKey     string `json:"serviceAccountKey,omitempty" yaml:"serviceAccountKey,omitempty" env:"GCPBLOCKS_SERVICE_ACCOUNT_KEY"`
	ServiceAccountKeyFile string `json:"serviceAccountKeyFile,omitempty" yaml:"serviceAccountKeyFile,omitempty" env:"GOOGLE_APPLICATION_CREDENTIALS"`
	Subject               string `json:"subject,omitempty" yaml:"subject,omitempty" env:"GCPBLOCKS_SUBJECT"`
}

// IsZero is true when no credential has been provided
func (credentials Credentials) IsZero() bool {
	return credentials.AccessToken == "" &&
		credentials.ServiceAccountKey == "" &&
		credentials.ServiceAccountKeyFile == ""
}
