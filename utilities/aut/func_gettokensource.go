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
	"context"

	"golang.org/x/oauth2"
)

// GetTokenSource build a token source from block credentials
// The http client used to fetch tokens can be set in ctx with the oauth2.HTTPClient key
func GetTokenSource(ctx context.Context, credentials Credentials, scopes []string) (tokenSource oauth2.TokenSource, err error) {
	if credentials.AccessToken != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: credentials.AccessToken,
			TokenType:   "Bearer",
		}), nil
	}
	if credentials.ServiceAccountKey == "" && credentials.ServiceAccountKeyFile == "" {
		return nil, ErrMissingCredentials
	}
	if len(scopes) == 0 {
		scopes = []string{CloudPlatformScope}
	}
	keyJSONdata, err := getKeyJSONdata(credentials)
	if err != nil {
		return nil, err
	}
	jwtConfig, err := getJWTConfigAndImpersonate(keyJSONdata, credentials.Subject, scopes)
	if err != nil {
		return nil, err
	}
	return jwtConfig.TokenSource(ctx), nil
}
