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

package discogs

// ResultType is the kind of database entity a search result refers to.
type ResultType string

const (
	ResultTypeRelease ResultType = "release"
	ResultTypeMaster  ResultType = "master"
	ResultTypeArtist  ResultType = "artist"
	ResultTypeLabel   ResultType = "label"
)

// ResultTypes lists every result type in catalogue order.
func ResultTypes() []ResultType {
	return []ResultType{
		ResultTypeRelease,
		ResultTypeMaster,
		ResultTypeArtist,
		ResultTypeLabel,
	}
}

// PaginationURLs links to neighbouring pages.  Links that do not apply are
// omitted, e.g. there is no prev link on the first page.
type PaginationURLs struct {
	First string `json:"first,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
	Last  string `json:"last,omitempty"`
}

// Pagination describes where a page sits in the full result set.
type Pagination struct {
	Page    int            `json:"page"`
	Pages   int            `json:"pages"`
	PerPage int            `json:"per_page"`
	Items   int            `json:"items"`
	URLs    PaginationURLs `json:"urls"`
}

// Result is a single search hit.
type Result struct {
	ID          int        `json:"id"`
	Type        ResultType `json:"type"`
	Title       string     `json:"title"`
	URI         string     `json:"uri"`
	ResourceURL string     `json:"resource_url"`
}

// SearchResponse is the body of a successful search.
type SearchResponse struct {
	Pagination Pagination `json:"pagination"`
	Results    []Result   `json:"results"`
}

// ErrorResponse is the body of any failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}
