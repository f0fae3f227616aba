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

package erm

import (
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// HTTPError is returned by a block when Google Cloud answers with a non 2xx status
type HTTPError struct {
	Method         string
	URL            string
	StatusCode     int
	Status         string
	Body           string
	GoogleAPIError *googleapi.Error
}

// Error embeds the upstream status code, status text and body verbatim
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error %d %s: %s %s: %s", e.StatusCode, e.statusText(), e.Method, e.URL, e.Body)
}

// Unwrap exposes the googleapi error, e.g. to read its Errors details
func (e *HTTPError) Unwrap() error {
	if e.GoogleAPIError == nil {
		return nil
	}
	return e.GoogleAPIError
}

func (e *HTTPError) statusText() string {
	if e.Status != "" {
		return e.Status
	}
	return http.StatusText(e.StatusCode)
}
