/*
Copyright 2024-2025 the Unikorn Authors.
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

// Package api provides conformance test utilities for the Discogs database
// search API.
//
// # Separate Client Implementation
//
// This package maintains its own HTTP client (APIClient) rather than using a
// Discogs SDK.  The suite asserts facts about the wire: status codes, exact
// error messages and pagination fields, so it needs direct access to what was
// sent and received, with nothing in between that might retry, follow
// redirects differently or normalise a body.
//
// The client adds a few things for testing:
//   - W3C trace context on every request for correlation
//   - Detailed error logging with trace IDs
//   - A fixed request timeout and no retries
//   - Transport failures reported as TransportError, distinct from status
//     and body assertions
//
// # Headers
//
// TestConfig.BaseHeaders returns a new header map on every call, and
// SearchRequestBuilder.Build clones again, so a case that strips or corrupts
// Authorization can never leak into another case.
//
// # Running
//
// The suites under test/api/suites need DISCOGS_KEY and DISCOGS_SECRET, set
// in the environment or in test/.env.  Set API_BASE_URL to run against the
// fake service in cmd/discogs-search-fake instead of api.discogs.com, or set
// USE_FAKE_SERVICE=true to start the fake in process with a generated
// credential, which is how CI without credentials runs the suite:
//
//	USE_FAKE_SERVICE=true go test ./test/api/suites
package api
