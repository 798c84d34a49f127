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

package api

import (
	"net/http"

	"github.com/nscaledev/discogs-conformance/pkg/discogs"

	"k8s.io/utils/ptr"
)

// SearchRequest is a single search call.  It owns its headers, nothing
// else holds a reference to them.
type SearchRequest struct {
	Query   string
	Type    discogs.ResultType
	Page    *int
	PerPage *int
	Header  http.Header
}

// SearchRequestBuilder builds search requests for testing.
type SearchRequestBuilder struct {
	request SearchRequest
}

// NewSearchRequest creates a new authorized search request builder with
// defaults from config.
func NewSearchRequest(config *TestConfig) *SearchRequestBuilder {
	return &SearchRequestBuilder{
		request: SearchRequest{
			Header: config.BaseHeaders(),
		},
	}
}

// WithQuery sets the free text query.
func (b *SearchRequestBuilder) WithQuery(query string) *SearchRequestBuilder {
	b.request.Query = query
	return b
}

// WithType restricts results to one entity type.
func (b *SearchRequestBuilder) WithType(kind discogs.ResultType) *SearchRequestBuilder {
	b.request.Type = kind
	return b
}

// WithPage requests a specific page.
func (b *SearchRequestBuilder) WithPage(page int) *SearchRequestBuilder {
	b.request.Page = ptr.To(page)
	return b
}

// WithPerPage requests a specific page size.
func (b *SearchRequestBuilder) WithPerPage(perPage int) *SearchRequestBuilder {
	b.request.PerPage = ptr.To(perPage)
	return b
}

// WithoutAuthorization removes the Authorization header.
func (b *SearchRequestBuilder) WithoutAuthorization() *SearchRequestBuilder {
	b.request.Header.Del("Authorization")
	return b
}

// WithCredential replaces the credential, e.g. to present a wrong one.
func (b *SearchRequestBuilder) WithCredential(credential discogs.Credential) *SearchRequestBuilder {
	return b.WithAuthorization(credential.AuthorizationHeader())
}

// WithAuthorization sets a raw Authorization header, for malformed values.
func (b *SearchRequestBuilder) WithAuthorization(value string) *SearchRequestBuilder {
	b.request.Header.Set("Authorization", value)
	return b
}

// Build returns the completed request.  Each call returns an independent
// copy, so the builder may be reused.
func (b *SearchRequestBuilder) Build() SearchRequest {
	request := b.request
	request.Header = b.request.Header.Clone()

	if b.request.Page != nil {
		request.Page = ptr.To(*b.request.Page)
	}

	if b.request.PerPage != nil {
		request.PerPage = ptr.To(*b.request.PerPage)
	}

	return request
}
