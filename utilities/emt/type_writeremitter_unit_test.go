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

package emt

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/BrunoReboul/gcpblocks/utilities/blk"
)

func TestUnitWriterEmitter(t *testing.T) {
	var testCases = []struct {
		name     string
		dataOnly bool
		wantKeys []string
	}{
		{name: "event", dataOnly: false, wantKeys: []string{"block", "executionId", "timestamp", "data"}},
		{name: "dataOnly", dataOnly: true, wantKeys: []string{"name", "status"}},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buffer bytes.Buffer
			emitter := NewWriterEmitter(&buffer)
			emitter.DataOnly = tc.dataOnly
			event := blk.Event{
				Block:       "gce.networks.insert",
				ExecutionID: "e1",
				Timestamp:   time.Date(2020, 6, 1, 10, 0, 0, 0, time.UTC),
				Data:        map[string]interface{}{"name": "operation-1", "status": "DONE"},
			}
			for i := 0; i < 2; i++ {
				err := emitter.Emit(context.Background(), event)
				if err != nil {
					t.Fatalf("Emit %v", err)
				}
			}
			lines := strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n")
			if len(lines) != 2 {
				t.Fatalf("Want 2 lines got %d", len(lines))
			}
			var m map[string]interface{}
			err := json.Unmarshal([]byte(lines[0]), &m)
			if err != nil {
				t.Fatalf("json.Unmarshal %v", err)
			}
			if len(m) != len(tc.wantKeys) {
				t.Errorf("Want keys %v got %v", tc.wantKeys, m)
			}
			for _, key := range tc.wantKeys {
				if _, ok := m[key]; !ok {
					t.Errorf("Missing key %s in %s", key, lines[0])
				}
			}
		})
	}
}

func TestUnitRecorder(t *testing.T) {
	var recorder Recorder
	if _, ok := recorder.Last(); ok {
		t.Errorf("Want no last event on an empty recorder")
	}
	var waitgroup sync.WaitGroup
	for i := 0; i < 10; i++ {
		waitgroup.Add(1)
		go func() {
			defer waitgroup.Done()
			recorder.Emit(context.Background(), blk.Event{Block: "gsm.secrets.get"})
		}()
	}
	waitgroup.Wait()
	if len(recorder.Events()) != 10 {
		t.Errorf("Want 10 events got %d", len(recorder.Events()))
	}
	last, ok := recorder.Last()
	if !ok || last.Block != "gsm.secrets.get" {
		t.Errorf("Want last event gsm.secrets.get got %v", last)
	}
}
