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
	"net/url"
	"strings"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestUnitCheckResponse(t *testing.T) {
	var testCases = []struct {
		name              string
		statusCode        int
		status            string
		body              string
		wantErr           bool
		wantErrContains   []string
		wantGoogleMessage string
	}{
		{
			name:       "ok",
			statusCode: 200,
			status:     "200 OK",
			body:       `{"kind":"compute#operation"}`,
		},
		{
			name:       "noContent",
			statusCode: 204,
			status:     "204 No Content",
		},
		{
			name:              "notFoundGoogleEnvelope",
			statusCode:        404,
			status:            "404 Not Found",
			body:              `{"error":{"code":404,"message":"The resource 'projects/p/regions/r/addresses/a' was not found","errors":[{"reason":"notFound"}]}}`,
			wantErr:           true,
			wantErrContains:   []string{"404", "Not Found", "was not found", "GET"},
			wantGoogleMessage: "The resource 'projects/p/regions/r/addresses/a' was not found",
		},
		{
			name:            "badGatewayPlainText",
			statusCode:      502,
			status:          "502 Bad Gateway",
			body:            "upstream connect error",
			wantErr:         true,
			wantErrContains: []string{"502", "Bad Gateway", "upstream connect error"},
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			u, _ := url.Parse("https://compute.googleapis.com/compute/v1/projects/p/regions/r/addresses/a")
			res := &http.Response{
				StatusCode: tc.statusCode,
				Status:     tc.status,
				Body:       ioutil.NopCloser(strings.NewReader(tc.body)),
				Header:     http.Header{},
				Request:    &http.Request{Method: http.MethodGet, URL: u},
			}
			err := CheckResponse(res)
			if !tc.wantErr {
				if err != nil {
					t.Errorf("Want NO error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Should send back an error and is NOT")
			}
			var httpError *HTTPError
			if !errors.As(err, &httpError) {
				t.Fatalf("Want *HTTPError got %T", err)
			}
			if httpError.StatusCode != tc.statusCode {
				t.Errorf("Want status code %d got %d", tc.statusCode, httpError.StatusCode)
			}
			if httpError.Body != tc.body {
				t.Errorf("Want body '%s' got '%s'", tc.body, httpError.Body)
			}
			for _, expectedString := range tc.wantErrContains {
				if !strings.Contains(err.Error(), expectedString) {
					t.Errorf("Error message should contains '%s' and is '%s'", expectedString, err.Error())
				}
			}
			if tc.wantGoogleMessage != "" {
				var googleAPIError *googleapi.Error
				if !errors.As(err, &googleAPIError) {
					t.Fatalf("Want a wrapped *googleapi.Error")
				}
				if googleAPIError.Message != tc.wantGoogleMessage {
					t.Errorf("Want google message '%s' got '%s'", tc.wantGoogleMessage, googleAPIError.Message)
				}
			}
		})
	}
}
