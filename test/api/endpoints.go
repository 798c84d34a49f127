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
	"net/url"
	"strconv"
)

// Endpoints contains all API endpoint patterns, relative to the database
// base URL.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Search returns the search path with any query parameters the request sets.
func (e *Endpoints) Search(request SearchRequest) string {
	query := url.Values{}

	if request.Query != "" {
		query.Set("q", request.Query)
	}

	if request.Type != "" {
		query.Set("type", string(request.Type))
	}

	if request.Page != nil {
		query.Set("page", strconv.Itoa(*request.Page))
	}

	if request.PerPage != nil {
		query.Set("per_page", strconv.Itoa(*request.PerPage))
	}

	if len(query) == 0 {
		return "/search"
	}

	return "/search?" + query.Encode()
}
