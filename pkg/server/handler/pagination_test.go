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
	"math"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nscaledev/discogs-conformance/pkg/constants"
	"github.com/nscaledev/discogs-conformance/pkg/discogs"

	"k8s.io/utils/ptr"
)

func TestPageSize(t *testing.T) {
	t.Parallel()

	require.Equal(t, constants.DefaultPerPage, pageSize(nil))
	require.Equal(t, constants.DefaultPerPage, pageSize(ptr.To(0)))
	require.Equal(t, constants.DefaultPerPage, pageSize(ptr.To(-5)))
	require.Equal(t, 1, pageSize(ptr.To(1)))
	require.Equal(t, constants.MaxPerPage, pageSize(ptr.To(constants.MaxPerPage)))
	require.Equal(t, constants.MaxPerPage, pageSize(ptr.To(constants.MaxPerPage+1)))
	require.Equal(t, constants.MaxPerPage, pageSize(ptr.To(10000)))
}

func TestPageNumber(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, pageNumber(nil))
	require.Equal(t, 1, pageNumber(ptr.To(0)))
	require.Equal(t, 7, pageNumber(ptr.To(7)))
}

func TestPageCount(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, pageCount(0, 50))
	require.Equal(t, 1, pageCount(50, 50))
	require.Equal(t, 2, pageCount(51, 50))
	require.Equal(t, 10, pageCount(1000, 100))
}

func results(n int) []discogs.Result {
	r := make([]discogs.Result, n)
	for i := range r {
		r[i].ID = i + 1
	}

	return r
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	page := paginate(results(7), 2, 3)
	require.Len(t, page, 3)
	require.Equal(t, 4, page[0].ID)

	page = paginate(results(7), 3, 3)
	require.Len(t, page, 1)
	require.Equal(t, 7, page[0].ID)

	page = paginate(results(7), 4, 3)
	require.NotNil(t, page)
	require.Empty(t, page)
}

func TestPaginateLargePage(t *testing.T) {
	t.Parallel()

	for _, page := range []int{math.MaxInt, math.MaxInt / 50, math.MaxInt/50 + 1} {
		got := paginate(results(1000), page, 50)
		require.NotNil(t, got, "page = %d", page)
		require.Empty(t, got, "page = %d", page)
	}

	require.Empty(t, paginate(results(0), math.MaxInt, constants.MaxPerPage))
}

func TestNewPaginationLargePage(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "http://localhost/database/search", nil)

	pagination := newPagination(r, 1000, math.MaxInt, 50)
	require.Equal(t, math.MaxInt, pagination.Page)
	require.Equal(t, 20, pagination.Pages)
	require.Empty(t, pagination.URLs.Next)
	require.NotEmpty(t, pagination.URLs.Prev)
}

func TestNewPaginationFirstPage(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "http://localhost:8080/database/search?q=fake", nil)

	pagination := newPagination(r, 120, 1, 50)
	require.Equal(t, 1, pagination.Page)
	require.Equal(t, 3, pagination.Pages)
	require.Equal(t, 50, pagination.PerPage)
	require.Equal(t, 120, pagination.Items)
	require.Empty(t, pagination.URLs.First)
	require.Empty(t, pagination.URLs.Prev)

	next, err := url.Parse(pagination.URLs.Next)
	require.NoError(t, err)
	require.Equal(t, "http", next.Scheme)
	require.Equal(t, "localhost:8080", next.Host)
	require.Equal(t, "/database/search", next.Path)
	require.Equal(t, "fake", next.Query().Get("q"))
	require.Equal(t, "2", next.Query().Get("page"))
	require.Equal(t, "50", next.Query().Get("per_page"))

	last, err := url.Parse(pagination.URLs.Last)
	require.NoError(t, err)
	require.Equal(t, "3", last.Query().Get("page"))
}

func TestNewPaginationLastPage(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "http://localhost/database/search", nil)

	pagination := newPagination(r, 120, 3, 50)
	require.NotEmpty(t, pagination.URLs.First)
	require.NotEmpty(t, pagination.URLs.Prev)
	require.Empty(t, pagination.URLs.Next)
	require.Empty(t, pagination.URLs.Last)

	prev, err := url.Parse(pagination.URLs.Prev)
	require.NoError(t, err)
	require.Equal(t, "2", prev.Query().Get("page"))
}

func TestNewPaginationPastEnd(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "http://localhost/database/search", nil)

	pagination := newPagination(r, 120, 9, 50)
	require.Empty(t, pagination.URLs.Next)

	prev, err := url.Parse(pagination.URLs.Prev)
	require.NoError(t, err)
	require.Equal(t, "3", prev.Query().Get("page"))
}
