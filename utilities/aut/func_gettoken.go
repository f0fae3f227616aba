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
	"fmt"

	"golang.org/x/oauth2"
)

// GetToken acquire one valid bearer token
func GetToken(ctx context.Context, credentials Credentials, scopes []string) (token *oauth2.Token, err error) {
	tokenSource, err := GetTokenSource(ctx, credentials, scopes)
	if err != nil {
		return nil, err
	}
	token, err = tokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("aut tokenSource.Token %v", err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("aut empty access token")
	}
	return token, nil
}
