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

package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/nscaledev/discogs-conformance/pkg/constants"
	"github.com/nscaledev/discogs-conformance/pkg/discogs"
)

// pageSize applies the default when the caller didn't ask for a usable page
// size, and clamps anything over the maximum.
func pageSize(requested *int) int {
	if requested == nil || *requested < 1 {
		return constants.DefaultPerPage
	}

	return min(*requested, constants.MaxPerPage)
}

// pageNumber is 1-indexed, anything invalid is the first page.
func pageNumber(requested *int) int {
	if requested == nil || *requested < 1 {
		return 1
	}

	return *requested
}

// pageCount always reports at least one page, even if it's empty.
func pageCount(items, perPage int) int {
	if items == 0 {
		return 1
	}

	return (items + perPage - 1) / perPage
}

// paginate slices out the requested page.  Pages past the end are empty.
func paginate(results []discogs.Result, page, perPage int) []discogs.Result {
	// Compare page numbers before multiplying, (page - 1) * perPage
	// overflows for large pages.
	if len(results) == 0 || page-1 >= pageCount(len(results), perPage) {
		return []discogs.Result{}
	}

	start := (page - 1) * perPage
	end := min(start+perPage, len(results))

	return results[start:end]
}

// pageURL rewrites the request URL to point at another page, preserving
// any filters.
func pageURL(r *http.Request, page, perPage int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	query := r.URL.Query()
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: query.Encode(),
	}

	return u.String()
}

// newPagination describes the page in the context of the whole result set.
func newPagination(r *http.Request, items, page, perPage int) discogs.Pagination {
	pages := pageCount(items, perPage)

	pagination := discogs.Pagination{
		Page:    page,
		Pages:   pages,
		PerPage: perPage,
		Items:   items,
	}

	if page > 1 {
		pagination.URLs.First = pageURL(r, 1, perPage)
		pagination.URLs.Prev = pageURL(r, min(page-1, pages), perPage)
	}

	if page < pages {
		pagination.URLs.Next = pageURL(r, page+1, perPage)
		pagination.URLs.Last = pageURL(r, pages, perPage)
	}

	return pagination
}
