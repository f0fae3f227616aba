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
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// BuildRequest build the HTTP request from the block declaration and an input configuration
func (block Block) BuildRequest(ctx context.Context, baseURL string, input map[string]interface{}) (*http.Request, error) {
	pathValues := make(map[string]string)
	for _, name := range block.Placeholders() {
		if value, defined := lookup(input, name); defined {
			pathValues[name] = formatScalar(value)
		}
	}
	u, err := ExpandPath(baseURL, block.PathTemplate, pathValues)
	if err != nil {
		return nil, errors.Wrapf(err, "block %s", block.Name)
	}

	query := u.Query()
	for _, field := range block.Fields {
		if field.In != InQuery {
			continue
		}
		value, defined := lookup(input, field.Name)
		if !defined {
			continue
		}
		switch values := value.(type) {
		case []interface{}:
			for _, item := range values {
				query.Add(field.WireName(), formatScalar(item))
			}
		case []string:
			for _, item := range values {
				query.Add(field.WireName(), item)
			}
		default:
			query.Set(field.WireName(), formatScalar(value))
		}
	}
	u.RawQuery = query.Encode()

	var reqBody io.Reader
	hasBody := block.hasBody()
	if hasBody {
		body, err := block.buildBody(input)
		if err != nil {
			return nil, err
		}
		b, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "block %s json.Marshal body", block.Name)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, block.Method, u.String(), reqBody)
	if err != nil {
		return nil, errors.Wrapf(err, "block %s http.NewRequest", block.Name)
	}
	req.Header.Set("Accept", "application/json")
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (block Block) hasBody() bool {
	if block.PrepareBody != nil {
		return true
	}
	for _, field := range block.Fields {
		if field.In == InBody {
			return true
		}
	}
	return false
}

// buildBody copies defined body fields only
func (block Block) buildBody(input map[string]interface{}) (map[string]interface{}, error) {
	body := make(map[string]interface{})
	for _, field := range block.Fields {
		if field.In != InBody {
			continue
		}
		if value, defined := lookup(input, field.Name); defined {
			body[field.WireName()] = value
		}
	}
	if block.PrepareBody != nil {
		if err := block.PrepareBody(input, body); err != nil {
			return nil, errors.Wrapf(err, "block %s prepare body", block.Name)
		}
	}
	return body, nil
}
