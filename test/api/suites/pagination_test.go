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

package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive

	"github.com/nscaledev/discogs-conformance/test/api"
)

var _ = Describe("Pagination", Label("pagination"), func() {
	Context("When searching with different page sizes", func() {
		Describe("Given no page size", func() {
			It("should return the default number of results per page", func() {
				// Given: An authorized request without per_page
				// When: I search
				result := api.SearchOrFail(ctx, client, api.NewSearchRequest(config).Build())

				// Then: The default page size is reported and returned
				response := api.ExpectPageSize(result, config.DefaultPerPage)

				GinkgoWriter.Printf("Page %d of %d, %d items\n", response.Pagination.Page, response.Pagination.Pages, response.Pagination.Items)
			})
		})

		Describe("Given the maximum page size", func() {
			It("should return the requested number of results per page", func() {
				// Given: An authorized request with per_page at the maximum
				// When: I search
				result := api.SearchOrFail(ctx, client, api.NewSearchRequest(config).WithPerPage(config.MaxPerPage).Build())

				// Then: The requested page size is reported and returned
				api.ExpectPageSize(result, config.MaxPerPage)
			})
		})

		Describe("Given a page size larger than the maximum", func() {
			It("should clamp to the maximum number of results per page", func() {
				// Given: An authorized request with per_page one over the maximum
				// When: I search
				result := api.SearchOrFail(ctx, client, api.NewSearchRequest(config).WithPerPage(config.MaxPerPage+1).Build())

				// Then: The maximum page size is reported and returned
				api.ExpectPageSize(result, config.MaxPerPage)

				// And: The body still matches the published contract
				api.ExpectContract(ctx, validator, result)
			})
		})
	})

	Context("When repeating a search", func() {
		Describe("Given an unchanged dataset", func() {
			It("should return the same status and pagination", func() {
				// Given: An authorized request at the maximum page size
				request := api.NewSearchRequest(config).WithPerPage(config.MaxPerPage).Build()

				// When: I search twice
				first := api.SearchOrFail(ctx, client, request)
				second := api.SearchOrFail(ctx, client, request)

				// Then: Both responses agree
				Expect(second.StatusCode).To(Equal(first.StatusCode))
				api.ExpectStatus(first, http.StatusOK)

				firstResponse, err := first.SearchResponse()
				Expect(err).NotTo(HaveOccurred())

				secondResponse, err := second.SearchResponse()
				Expect(err).NotTo(HaveOccurred())

				Expect(secondResponse.Pagination.PerPage).To(Equal(firstResponse.Pagination.PerPage))
				Expect(secondResponse.Results).To(HaveLen(len(firstResponse.Results)))
			})
		})
	})
})
