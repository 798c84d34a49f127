/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"net/http/httptest"
	"time"

	"github.com/nscaledev/discogs-conformance/pkg/constants"
	"github.com/nscaledev/discogs-conformance/pkg/discogs"
	"github.com/nscaledev/discogs-conformance/pkg/server"
	"github.com/nscaledev/discogs-conformance/pkg/server/handler"

	"k8s.io/apimachinery/pkg/util/rand"
)

// FakeServiceRequested reports whether USE_FAKE_SERVICE is set, in which case
// the suite runs against an in-process fake and needs no credentials.
func FakeServiceRequested() bool {
	loadEnvFile()

	return getBoolWithDefault("USE_FAKE_SERVICE", false)
}

// StartFakeService runs the fake search service in process.  It returns a
// configuration pointing at it, holding a freshly generated credential the
// service accepts, and a function that stops the service.
func StartFakeService() (*TestConfig, func(), error) {
	credential := discogs.Credential{
		Key:    rand.String(20),
		Secret: rand.String(32),
	}

	s := &server.Server{
		HandlerOptions: handler.Options{
			ConsumerKey:    credential.Key,
			ConsumerSecret: credential.Secret,
			CatalogueSize:  1000,
		},
	}

	h, err := s.Handler()
	if err != nil {
		return nil, nil, fmt.Errorf("creating fake service: %w", err)
	}

	service := httptest.NewServer(h)

	config := &TestConfig{
		BaseURL:        service.URL + "/database",
		Credential:     credential,
		RequestTimeout: 10 * time.Second,
		DefaultPerPage: constants.DefaultPerPage,
		MaxPerPage:     constants.MaxPerPage,
		DebugLogging:   getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:    getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:   getBoolWithDefault("LOG_RESPONSES", false),
	}

	return config, service.Close, nil
}
