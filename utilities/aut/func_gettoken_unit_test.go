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
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"golang.org/x/oauth2"
)

// tokenServer fakes the Google OAuth2 token endpoint and records the JWT claims it receives
type tokenServer struct {
	*httptest.Server
	mu     sync.Mutex
	claims []map[string]interface{}
}

func newTokenServer(t *testing.T, accessToken string) *tokenServer {
	ts := &tokenServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		parts := strings.Split(r.PostForm.Get("assertion"), ".")
		if len(parts) != 3 {
			http.Error(w, "bad assertion", http.StatusBadRequest)
			return
		}
		payload, err := base64.RawURLEncoding.DecodeString(parts[1])
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var claims map[string]interface{}
		if err := json.Unmarshal(payload, &claims); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		ts.mu.Lock()
		ts.claims = append(ts.claims, claims)
		ts.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"` + accessToken + `","token_type":"Bearer","expires_in":3600}`))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func (ts *tokenServer) lastClaims() map[string]interface{} {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if len(ts.claims) == 0 {
		return nil
	}
	return ts.claims[len(ts.claims)-1]
}

func makeServiceAccountKey(t *testing.T, tokenURI string) string {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey %v", err)
	}
	privateKeyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	})
	key := map[string]string{
		"type":           "service_account",
		"project_id":     "blocks-test",
		"private_key_id": "0123456789abcdef",
		"private_key":    string(privateKeyPEM),
		"client_email":   "blocks@blocks-test.iam.gserviceaccount.com",
		"client_id":      "1234567890",
		"token_uri":      tokenURI,
	}
	b, err := json.Marshal(key)
	if err != nil {
		t.Fatalf("json.Marshal %v", err)
	}
	return string(b)
}

func TestUnitGetTokenAccessToken(t *testing.T) {
	token, err := GetToken(context.Background(), Credentials{AccessToken: "ya29.static"}, nil)
	if err != nil {
		t.Fatalf("Want NO error, got %v", err)
	}
	if token.AccessToken != "ya29.static" {
		t.Errorf("Want access token 'ya29.static' got '%s'", token.AccessToken)
	}
	if token.Type() != "Bearer" {
		t.Errorf("Want token type 'Bearer' got '%s'", token.Type())
	}
}

func TestUnitGetTokenMissingCredentials(t *testing.T) {
	_, err := GetToken(context.Background(), Credentials{Subject: "admin@example.com"}, nil)
	if !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("Want ErrMissingCredentials got %v", err)
	}
}

func TestUnitGetTokenServiceAccountKey(t *testing.T) {
	tokenServer := newTokenServer(t, "ya29.from-jwt")
	key := makeServiceAccountKey(t, tokenServer.URL)
	keyFilePath := filepath.Join(t.TempDir(), "key.json")
	if err := ioutil.WriteFile(keyFilePath, []byte(key), 0600); err != nil {
		t.Fatalf("ioutil.WriteFile %v", err)
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, tokenServer.Client())

	var testCases = []struct {
		name        string
		credentials Credentials
		scopes      []string
		wantScope   string
		wantSubject string
	}{
		{
			name:        "inlineKeyDefaultScope",
			credentials: Credentials{ServiceAccountKey: key},
			wantScope:   CloudPlatformScope,
		},
		{
			name:        "keyFileWithScopes",
			credentials: Credentials{ServiceAccountKeyFile: keyFilePath},
			scopes:      []string{"https://www.googleapis.com/auth/compute", CloudPlatformScope},
			wantScope:   "https://www.googleapis.com/auth/compute " + CloudPlatformScope,
		},
		{
			name:        "impersonate",
			credentials: Credentials{ServiceAccountKey: key, Subject: "admin@example.com"},
			wantScope:   CloudPlatformScope,
			wantSubject: "admin@example.com",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := GetToken(ctx, tc.credentials, tc.scopes)
			if err != nil {
				t.Fatalf("Want NO error, got %v", err)
			}
			if token.AccessToken != "ya29.from-jwt" {
				t.Errorf("Want access token 'ya29.from-jwt' got '%s'", token.AccessToken)
			}
			claims := tokenServer.lastClaims()
			if claims["scope"] != tc.wantScope {
				t.Errorf("Want scope '%s' got '%v'", tc.wantScope, claims["scope"])
			}
			if claims["iss"] != "blocks@blocks-test.iam.gserviceaccount.com" {
				t.Errorf("Want iss to be the service account email got '%v'", claims["iss"])
			}
			if tc.wantSubject != "" && claims["sub"] != tc.wantSubject {
				t.Errorf("Want sub '%s' got '%v'", tc.wantSubject, claims["sub"])
			}
		})
	}
}

func TestUnitGetTokenAccessTokenBeforeServiceAccountKey(t *testing.T) {
	tokenServer := newTokenServer(t, "ya29.from-jwt")
	key := makeServiceAccountKey(t, tokenServer.URL)
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, tokenServer.Client())

	token, err := GetToken(ctx, Credentials{AccessToken: "ya29.static", ServiceAccountKey: key}, nil)
	if err != nil {
		t.Fatalf("Want NO error, got %v", err)
	}
	if token.AccessToken != "ya29.static" {
		t.Errorf("Want access token 'ya29.static' got '%s'", token.AccessToken)
	}
	if claims := tokenServer.lastClaims(); claims != nil {
		t.Errorf("Token endpoint should NOT be called, got claims %v", claims)
	}
}

func TestUnitGetTokenSourceErrors(t *testing.T) {
	var testCases = []struct {
		name         string
		credentials  Credentials
		wantErrorMsg string
	}{
		{
			name:         "malformedKey",
			credentials:  Credentials{ServiceAccountKey: `{"type": "service_account"`},
			wantErrorMsg: "google.JWTConfigFromJSON",
		},
		{
			name:         "notAServiceAccountKey",
			credentials:  Credentials{ServiceAccountKey: `{"type": "authorized_user"}`},
			wantErrorMsg: "google.JWTConfigFromJSON",
		},
		{
			name:         "missingKeyFile",
			credentials:  Credentials{ServiceAccountKeyFile: filepath.Join(os.TempDir(), "does-not-exist", "key.json")},
			wantErrorMsg: "ioutil.ReadFile",
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := GetTokenSource(context.Background(), tc.credentials, nil)
			if err == nil {
				t.Fatalf("Should send back an error and is NOT")
			}
			if !strings.Contains(err.Error(), tc.wantErrorMsg) {
				t.Errorf("Error message should contains '%s' and is '%s'", tc.wantErrorMsg, err.Error())
			}
		})
	}
}

func TestUnitGetClientOption(t *testing.T) {
	clientOption, err := GetClientOption(context.Background(), Credentials{AccessToken: "ya29.static"}, nil)
	if err != nil {
		t.Fatalf("Want NO error, got %v", err)
	}
	if clientOption == nil {
		t.Errorf("Want a client option")
	}
	_, err = GetClientOption(context.Background(), Credentials{}, nil)
	if !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("Want ErrMissingCredentials got %v", err)
	}
}
