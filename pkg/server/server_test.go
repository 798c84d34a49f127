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

package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nscaledev/discogs-conformance/pkg/discogs"
	"github.com/nscaledev/discogs-conformance/pkg/server"
	"github.com/nscaledev/discogs-conformance/pkg/server/handler"
)

func newServer() *server.Server {
	return &server.Server{
		Options: server.Options{
			ListenAddress:     "127.0.0.1:0",
			ReadHeaderTimeout: time.Second,
			ShutdownTimeout:   time.Second,
		},
		HandlerOptions: handler.Options{
			ConsumerKey:    "foo",
			ConsumerSecret: "bar",
			CatalogueSize:  10,
		},
	}
}

func TestHandlerRequiresConsumer(t *testing.T) {
	t.Parallel()

	s := &server.Server{}

	_, err := s.Handler()
	require.ErrorIs(t, err, handler.ErrConsumerRequired)
}

func TestRunRejectsNegativeCatalogueSize(t *testing.T) {
	t.Parallel()

	s := newServer()
	s.HandlerOptions.CatalogueSize = -1

	require.ErrorIs(t, s.Run(t.Context()), handler.ErrInvalidCatalogueSize)
}

func TestHandlerRoutes(t *testing.T) {
	t.Parallel()

	h, err := newServer().Handler()
	require.NoError(t, err)

	service := httptest.NewServer(h)
	t.Cleanup(service.Close)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{method: http.MethodGet, path: "/database/search", status: http.StatusOK},
		{method: http.MethodGet, path: "/database/search?page=9223372036854775807", status: http.StatusOK},
		{method: http.MethodPost, path: "/database/search", status: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/search", status: http.StatusNotFound},
	}

	for _, test := range tests {
		req, err := http.NewRequestWithContext(t.Context(), test.method, service.URL+test.path, nil)
		require.NoError(t, err)

		req.Header.Set("Authorization", discogs.Credential{Key: "foo", Secret: "bar"}.AuthorizationHeader())

		resp, err := service.Client().Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		require.Equal(t, test.status, resp.StatusCode, "%s %s", test.method, test.path)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())

	errs := make(chan error, 1)

	go func() {
		errs <- newServer().Run(ctx)
	}()

	cancel()

	select {
	case err := <-errs:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
