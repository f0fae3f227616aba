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

	"google.golang.org/api/option"
)

// GetClientOption build a clientOption object for Google Cloud client libraries from block credentials
func GetClientOption(ctx context.Context, credentials Credentials, scopes []string) (option.ClientOption, error) {
	tokenSource, err := GetTokenSource(ctx, credentials, scopes)
	if err != nil {
		return nil, err
	}
	return option.WithTokenSource(tokenSource), nil
}
