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

package blk

import (
	"fmt"
	"net/url"
	"strings"

	"google.golang.org/api/googleapi"
)

// ExpandPath substitutes the path template placeholders and returns the full URL
// Values are percent-escaped, a missing or empty value is an error
func ExpandPath(baseURL string, pathTemplate string, values map[string]string) (*url.URL, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("blk invalid base URL '%s' %v", baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("blk base URL '%s' is not absolute", baseURL)
	}
	var missing []string
	for _, match := range placeholderRegexp.FindAllStringSubmatch(pathTemplate, -1) {
		if values[match[1]] == "" {
			missing = append(missing, match[1])
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("blk missing path parameter(s) %s for %s", strings.Join(missing, ", "), pathTemplate)
	}
	u, err := url.Parse(googleapi.ResolveRelative(baseURL, pathTemplate))
	if err != nil {
		return nil, fmt.Errorf("blk url.Parse %v", err)
	}
	googleapi.Expand(u, values)
	return u, nil
}
