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

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nscaledev/discogs-conformance/pkg/constants"
)

var (
	// ErrInvalidAuthorization is raised when an authorization header is not
	// a well formed key/secret pair.
	ErrInvalidAuthorization = errors.New("invalid authorization header")
)

// Credential is a consumer key/secret pair.
type Credential struct {
	Key    string
	Secret string
}

// AuthorizationHeader renders the credential as an Authorization header value.
func (c Credential) AuthorizationHeader() string {
	return fmt.Sprintf("%s key=%s, secret=%s", constants.AuthorizationScheme, c.Key, c.Secret)
}

// ParseAuthorization is the inverse of AuthorizationHeader.  Field order is
// not significant, but both fields must be present and non-empty.
func ParseAuthorization(header string) (Credential, error) {
	scheme, params, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || scheme != constants.AuthorizationScheme {
		return Credential{}, fmt.Errorf("%w: expected %s scheme", ErrInvalidAuthorization, constants.AuthorizationScheme)
	}

	var credential Credential

	for _, param := range strings.Split(params, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok {
			return Credential{}, fmt.Errorf("%w: malformed parameter %q", ErrInvalidAuthorization, param)
		}

		switch name {
		case "key":
			credential.Key = value
		case "secret":
			credential.Secret = value
		default:
			return Credential{}, fmt.Errorf("%w: unknown parameter %q", ErrInvalidAuthorization, name)
		}
	}

	if credential.Key == "" || credential.Secret == "" {
		return Credential{}, fmt.Errorf("%w: key and secret are required", ErrInvalidAuthorization)
	}

	return credential, nil
}
