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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/BrunoReboul/gcpblocks/utilities/blk"
)

// WriterEmitter writes each event as a JSON line
type WriterEmitter struct {
	mu     sync.Mutex
	writer io.Writer
	// DataOnly writes the event data instead of the full event
	DataOnly bool
}

// NewWriterEmitter returns an emitter writing to w
func NewWriterEmitter(w io.Writer) *WriterEmitter {
	return &WriterEmitter{writer: w}
}

// Emit writes one JSON line
func (emitter *WriterEmitter) Emit(ctx context.Context, event blk.Event) error {
	var v interface{} = event
	if emitter.DataOnly {
		v = event.Data
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("emt json.Marshal %v", err)
	}
	emitter.mu.Lock()
	defer emitter.mu.Unlock()
	_, err = emitter.writer.Write(append(b, '\n'))
	if err != nil {
		return fmt.Errorf("emt write %v", err)
	}
	return nil
}
