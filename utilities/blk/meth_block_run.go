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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"time"

	"github.com/BrunoReboul/gcpblocks/utilities/aut"
	"github.com/BrunoReboul/gcpblocks/utilities/erm"
	"github.com/BrunoReboul/gcpblocks/utilities/logging"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// Run execute the block once: token, request, response, event
// Upstream non 2xx responses are returned as *erm.HTTPError, unwrapped
func (block Block) Run(ctx context.Context, runtime *Runtime, input map[string]interface{}) (output map[string]interface{}, err error) {
	start := time.Now()
	executionID := uuid.New().String()
	entry := logging.Entry{
		BlockName:   block.Name,
		Category:    block.Category,
		Environment: runtime.environment(),
		ExecutionID: executionID,
		Method:      block.Method,
	}
	defer func() {
		if err != nil {
			failure := entry
			failure.Severity = "CRITICAL"
			failure.Message = "noretry"
			if !erm.IsNotTransient(err) {
				failure.Message = "redo_on_transient"
			}
			failure.Description = err.Error()
			var httpError *erm.HTTPError
			if errors.As(err, &httpError) {
				failure.StatusCode = httpError.StatusCode
			}
			log.Println(failure)
		}
	}()

	input = block.applyDefaults(NormalizeInput(input), runtime.defaults())
	err = block.Validate(input)
	if err != nil {
		return nil, err
	}

	tokenCtx := ctx
	if runtime != nil && runtime.HTTPClient != nil {
		tokenCtx = context.WithValue(ctx, oauth2.HTTPClient, runtime.HTTPClient)
	}
	var credentials aut.Credentials
	if runtime != nil {
		credentials = runtime.Credentials
	}
	token, err := aut.GetToken(tokenCtx, credentials, block.Scopes)
	if err != nil {
		return nil, errors.Wrapf(err, "block %s", block.Name)
	}

	req, err := block.BuildRequest(ctx, runtime.endpoint(block.API), input)
	if err != nil {
		return nil, err
	}
	token.SetAuthHeader(req)
	entry.URL = req.URL.String()
	started := entry
	started.Message = "start"
	log.Println(started)

	res, err := runtime.httpClient().Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "block %s %s %s", block.Name, req.Method, req.URL.String())
	}
	defer res.Body.Close()
	err = erm.CheckResponse(res)
	if err != nil {
		return nil, err
	}
	output, err = decodeOutput(res.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "block %s", block.Name)
	}

	now := time.Now()
	if emitter := runtime.emitter(); emitter != nil {
		err = emitter.Emit(ctx, Event{
			Block:       block.Name,
			ExecutionID: executionID,
			Timestamp:   now,
			Data:        output,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "block %s emit", block.Name)
		}
	}

	finish := entry
	finish.Severity = "NOTICE"
	finish.Message = "finish"
	finish.StatusCode = res.StatusCode
	finish.Now = &now
	finish.LatencySeconds = now.Sub(start).Seconds()
	log.Println(finish)
	return output, nil
}

// decodeOutput parse a JSON object, an empty body gives an empty object
func decodeOutput(body io.Reader) (map[string]interface{}, error) {
	b, err := ioutil.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("ioutil.ReadAll response body %v", err)
	}
	output := make(map[string]interface{})
	if len(bytes.TrimSpace(b)) == 0 {
		return output, nil
	}
	err = json.Unmarshal(b, &output)
	if err != nil {
		return nil, fmt.Errorf("json.Unmarshal response body %v", err)
	}
	return output, nil
}

// applyDefaults fills declared fields missing from the input
func (block Block) applyDefaults(input map[string]interface{}, defaults map[string]interface{}) map[string]interface{} {
	for name, value := range defaults {
		field, declared := block.Field(name)
		if !declared {
			continue
		}
		current, defined := lookup(input, name)
		if !defined || (field.In == InPath && formatScalar(current) == "") {
			input[name] = value
		}
	}
	return input
}
