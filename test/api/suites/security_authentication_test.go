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

package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive

	"github.com/nscaledev/discogs-conformance/test/api"
)

var _ = Describe("Security and Authentication", Label("authentication"), func() {
	Context("When searching the database with different authentication states", func() {
		Describe("Given a valid consumer key and secret", func() {
			It("should return a page of results", func() {
				// Given: The configured key/secret in the Authorization header
				// When: I search without any parameters
				result := api.SearchOrFail(ctx, client, api.NewSearchRequest(config).Build())

				// Then: The search should succeed
				api.ExpectStatus(result, http.StatusOK)

				// And: The body should contain pagination and results
				api.ExpectKeys(result, "pagination", "results")

				// And: The body should match the published contract
				api.ExpectContract(ctx, validator, result)
			})
		})

		Describe("Given missing authentication", func() {
			It("should reject the request", func() {
				// Given: No Authorization header
				// When: I search
				result := api.SearchOrFail(ctx, client, api.NewSearchRequest(config).WithoutAuthorization().Build())

				// Then: The request should be rejected with 401 Unauthorized
				api.ExpectStatus(result, http.StatusUnauthorized)

				// And: The message should tell me to authenticate
				message := api.ExpectErrorMessage(result)
				Expect(message).To(Equal(api.MustAuthenticateMessage), "message = %q", message)
			})
		})

		Describe("Given invalid authentication", func() {
			It("should reject a well formed but unknown key and secret", func() {
				// Given: A syntactically valid key/secret that no consumer owns
				credential := api.RandomCredential()

				// When: I search
				result := api.SearchOrFail(ctx, client, api.NewSearchRequest(config).WithCredential(credential).Build())

				// Then: The request should be rejected with 401 Unauthorized
				api.ExpectStatus(result, http.StatusUnauthorized)

				// And: The message should say the consumer key/secret is invalid
				message := api.ExpectErrorMessage(result)
				Expect(message).To(MatchRegexp(api.InvalidConsumerPattern), "message = %q", message)
			})
		})

		Describe("Given a previous case removed its credentials", func() {
			It("should still authorize the next request", func() {
				// Given: A request stripped of authorization and sent
				stripped := api.NewSearchRequest(config).WithoutAuthorization().Build()
				api.ExpectStatus(api.SearchOrFail(ctx, client, stripped), http.StatusUnauthorized)

				// When: I build and send an ordinary request
				result := api.SearchOrFail(ctx, client, api.NewSearchRequest(config).Build())

				// Then: It is unaffected and succeeds
				api.ExpectStatus(result, http.StatusOK)
				Expect(config.BaseHeaders().Get("Authorization")).NotTo(BeEmpty())
			})
		})
	})
})
