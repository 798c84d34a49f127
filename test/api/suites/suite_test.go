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
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive

	"github.com/nscaledev/discogs-conformance/pkg/discogs"
	"github.com/nscaledev/discogs-conformance/test/api"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

//nolint:gochecknoglobals
var (
	client    *api.APIClient
	ctx       context.Context
	config    *api.TestConfig
	validator *discogs.ResponseValidator
)

// A configuration error fails here, so no spec runs, rather than every spec
// failing on its own.
var _ = BeforeSuite(func() {
	var err error

	if api.FakeServiceRequested() {
		log.SetLogger(GinkgoLogr)

		var stop func()

		config, stop, err = api.StartFakeService()
		Expect(err).NotTo(HaveOccurred(), "fake service error, the suite cannot run")

		DeferCleanup(stop)
	} else {
		if api.IntegrationDisabled() {
			Skip("SKIP_INTEGRATION is set")
		}

		config, err = api.LoadTestConfig()
		Expect(err).NotTo(HaveOccurred(), "configuration error, the suite cannot run")
	}

	validator, err = discogs.NewResponseValidator(context.Background(), config.BaseURL)
	Expect(err).NotTo(HaveOccurred())

	GinkgoWriter.Printf("Running against %s\n", config.BaseURL)
})

var _ = BeforeEach(func() {
	client = api.NewAPIClientWithConfig(config)
	ctx = context.Background()
})

func TestSuites(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Discogs Search Conformance Suite")
}
