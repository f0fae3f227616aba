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
	"errors"
	"io/ioutil"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
)

// CheckResponse returns nil for a 2xx response, an *HTTPError otherwise
// The body of a failed response is consumed
func CheckResponse(res *http.Response) error {
	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return nil
	}
	httpError := &HTTPError{
		StatusCode: res.StatusCode,
		Status:     statusTextOnly(res),
	}
	if res.Request != nil {
		httpError.Method = res.Request.Method
		if res.Request.URL != nil {
			httpError.URL = res.Request.URL.String()
		}
	}
	slurp, err := ioutil.ReadAll(res.Body)
	if err == nil {
		httpError.Body = string(slurp)
	}
	// googleapi.CheckResponse parses the google error envelope out of the body
	res.Body = ioutil.NopCloser(strings.NewReader(httpError.Body))
	var googleAPIError *googleapi.Error
	if errors.As(googleapi.CheckResponse(res), &googleAPIError) {
		httpError.GoogleAPIError = googleAPIError
	}
	return httpError
}

// statusTextOnly strips the code from "404 Not Found"
func statusTextOnly(res *http.Response) string {
	parts := strings.SplitN(res.Status, " ", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return http.StatusText(res.StatusCode)
}
