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
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/nscaledev/discogs-conformance/pkg/constants"
	"github.com/nscaledev/discogs-conformance/pkg/discogs"
)

var (
	// ErrMissingConfiguration means the suite cannot run at all, as opposed
	// to an individual case failing.
	ErrMissingConfiguration = errors.New("missing required configuration")

	// ErrInvalidConfiguration means a value is set but unusable.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

type TestConfig struct {
	BaseURL         string
	Credential      discogs.Credential
	RequestTimeout  time.Duration
	DefaultPerPage  int
	MaxPerPage      int
	SkipIntegration bool
	DebugLogging    bool
	LogRequests     bool
	LogResponses    bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing, or any
// value that is set cannot be used.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	requestTimeout, timeoutErr := getDurationWithDefault("REQUEST_TIMEOUT", 10*time.Second)
	defaultPerPage, defaultPerPageErr := getIntWithDefault("DEFAULT_PER_PAGE", constants.DefaultPerPage)
	maxPerPage, maxPerPageErr := getIntWithDefault("MAX_PER_PAGE", constants.MaxPerPage)

	if err := errors.Join(timeoutErr, defaultPerPageErr, maxPerPageErr); err != nil {
		return nil, err
	}

	config := &TestConfig{
		BaseURL: getStringWithDefault("API_BASE_URL", constants.DefaultBaseURL),
		Credential: discogs.Credential{
			Key:    os.Getenv("DISCOGS_KEY"),
			Secret: os.Getenv("DISCOGS_SECRET"),
		},
		RequestTimeout:  requestTimeout,
		DefaultPerPage:  defaultPerPage,
		MaxPerPage:      maxPerPage,
		SkipIntegration: getBoolWithDefault("SKIP_INTEGRATION", false),
		DebugLogging:    getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:     getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:    getBoolWithDefault("LOG_RESPONSES", false),
	}

	// Validate required fields
	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// IntegrationDisabled reports whether SKIP_INTEGRATION is set, from the
// environment or .env file.  It is checked before credentials are required.
func IntegrationDisabled() bool {
	loadEnvFile()

	return getBoolWithDefault("SKIP_INTEGRATION", false)
}

// BaseHeaders returns a fresh copy of the headers every authorized request
// starts from.  Callers own the result and may modify it.
func (c *TestConfig) BaseHeaders() http.Header {
	header := http.Header{}
	header.Set("Content-Type", constants.FormContentType)
	header.Set("Authorization", c.Credential.AuthorizationHeader())

	return header
}

// getStringWithDefault gets a string from environment variable or returns default.
func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a positive duration from environment variable
// or returns default.  A zero timeout would disable the client timeout
// entirely, so it is rejected.
func getDurationWithDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a duration: %w", ErrInvalidConfiguration, key, value, err)
	}

	if duration <= 0 {
		return 0, fmt.Errorf("%w: %s=%q must be positive", ErrInvalidConfiguration, key, value)
	}

	return duration, nil
}

// getIntWithDefault gets a positive integer from environment variable or
// returns default.
func getIntWithDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer: %w", ErrInvalidConfiguration, key, value, err)
	}

	if intValue < 1 {
		return 0, fmt.Errorf("%w: %s=%q must be positive", ErrInvalidConfiguration, key, value)
	}

	return intValue, nil
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../../test/.env", // From test/api/suites directory
		"../../test/.env",    // From test/api directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Load never overrides variables that are already set.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	required := map[string]string{
		"DISCOGS_KEY":    config.Credential.Key,
		"DISCOGS_SECRET": config.Credential.Secret,
	}

	missing := set.New[string]()

	for envVar, value := range required {
		if value == "" {
			missing.Add(envVar)
		}
	}

	var names []string

	for envVar := range missing.All() {
		names = append(names, envVar)
	}

	if len(names) > 0 {
		slices.Sort(names)

		return fmt.Errorf("%w: %s. Please set these environment variables or add them to test/.env", ErrMissingConfiguration, strings.Join(names, ", "))
	}

	if config.MaxPerPage < config.DefaultPerPage {
		return fmt.Errorf("%w: DEFAULT_PER_PAGE (%d) must be no larger than MAX_PER_PAGE (%d)", ErrInvalidConfiguration, config.DefaultPerPage, config.MaxPerPage)
	}

	return nil
}
