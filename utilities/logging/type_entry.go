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

package logging

import (
	"encoding/json"
	"log"
	"time"
)

// Entry defines a Google Cloud logging structured entry
// https://cloud.google.com/logging/docs/agent/configuration#special-fields
type Entry struct {
	BlockName      string     `json:"block_name"`
	Category       string     `json:"category,omitempty"`
	Environment    string     `json:"environment,omitempty"`
	Severity       string     `json:"severity,omitempty"`
	Message        string     `json:"message"`
	Description    string     `json:"description,omitempty"`
	Now            *time.Time `json:"now,omitempty"`
	ExecutionID    string     `json:"execution_id,omitempty"`
	Method         string     `json:"method,omitempty"`
	URL            string     `json:"url,omitempty"`
	StatusCode     int        `json:"status_code,omitempty"`
	LatencySeconds float64    `json:"latency_seconds,omitempty"`
}

// String renders an entry structure to the JSON format expected by Cloud Logging.
func (e Entry) String() string {
	if e.Severity == "" {
		e.Severity = "INFO"
	}
	out, err := json.Marshal(e)
	if err != nil {
		log.Printf("json.Marshal: %v", err)
	}
	return string(out)
}
