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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"fmt"
	"net/http"
	"regexp"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/discogs-conformance/pkg/discogs"

	"k8s.io/apimachinery/pkg/util/rand"
)

// These messages are owned by the remote service and may drift, update them
// when the service changes its wording.
const (
	// MustAuthenticateMessage is returned when no Authorization header is sent.
	MustAuthenticateMessage = "You must authenticate to access this resource."

	// InvalidConsumerPattern matches the message returned for a wrong
	// key/secret pair.
	InvalidConsumerPattern = `^Invalid consumer key/secret`
)

//nolint:gochecknoglobals
var invalidConsumerRegexp = regexp.MustCompile(InvalidConsumerPattern)

// MatchesInvalidConsumer tells whether a message is the invalid credential message.
func MatchesInvalidConsumer(message string) bool {
	return invalidConsumerRegexp.MatchString(message)
}

// RandomCredential returns a well formed credential that no consumer owns.
func RandomCredential() discogs.Credential {
	return discogs.Credential{
		Key:    "badkey" + rand.String(14),
		Secret: "badsecret" + rand.String(23),
	}
}

// SearchOrFail runs a search, failing the test on a transport error with a
// message that makes the cause obvious.
func SearchOrFail(ctx context.Context, client *APIClient, request SearchRequest) *SearchResult {
	GinkgoHelper()

	result, err := client.Search(ctx, request)
	if IsTransportError(err) {
		Fail(err.Error())
	}

	Expect(err).NotTo(HaveOccurred())

	return result
}

// ExpectStatus asserts the status code, reporting the body on failure.
func ExpectStatus(result *SearchResult, status int) {
	GinkgoHelper()

	Expect(result.StatusCode).To(Equal(status), "status code = %d, body = %s, trace ID = %s", result.StatusCode, string(result.Body), result.TraceID)
}

// ExpectKeys asserts the top level body contains every key.
func ExpectKeys(result *SearchResult, keys ...string) {
	GinkgoHelper()

	body, err := result.Keys()
	Expect(err).NotTo(HaveOccurred())

	for _, key := range keys {
		Expect(body).To(HaveKey(key), "body = %s", string(result.Body))
	}
}

// ExpectErrorMessage decodes an error body and returns its message.
func ExpectErrorMessage(result *SearchResult) string {
	GinkgoHelper()

	response, err := result.ErrorResponse()
	Expect(err).NotTo(HaveOccurred())

	return response.Message
}

// ExpectPageSize asserts both the reported page size and the number of
// results returned match.
func ExpectPageSize(result *SearchResult, perPage int) *discogs.SearchResponse {
	GinkgoHelper()

	ExpectStatus(result, http.StatusOK)

	response, err := result.SearchResponse()
	Expect(err).NotTo(HaveOccurred())

	Expect(response.Pagination.PerPage).To(Equal(perPage), "pagination.per_page = %d", response.Pagination.PerPage)
	Expect(response.Results).To(HaveLen(perPage), "len(results) = %d", len(response.Results))

	return response
}

// ExpectContract validates the response against the published contract.
func ExpectContract(ctx context.Context, validator *discogs.ResponseValidator, result *SearchResult) {
	GinkgoHelper()

	err := validator.Validate(ctx, result.Request, result.StatusCode, result.Header, result.Body)
	Expect(err).NotTo(HaveOccurred(), fmt.Sprintf("trace ID = %s", result.TraceID))
}
