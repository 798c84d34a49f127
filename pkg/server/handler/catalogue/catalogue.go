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

package catalogue

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nscaledev/discogs-conformance/pkg/discogs"
)

// Filter narrows a search.  Zero values match everything.
type Filter struct {
	// Query is matched case insensitively against the title.
	Query string

	// Type restricts results to a single entity kind.
	Type discogs.ResultType
}

// Catalogue is an immutable, generated set of database entries.  It is safe
// for concurrent use.
type Catalogue struct {
	entries []discogs.Result
}

// New generates a catalogue with size entries.  Generation is deterministic,
// so two catalogues of the same size are identical.
func New(size int) *Catalogue {
	types := discogs.ResultTypes()

	entries := make([]discogs.Result, size)

	for i := range entries {
		id := i + 1
		kind := types[i%len(types)]

		entries[i] = discogs.Result{
			ID:          id,
			Type:        kind,
			Title:       fmt.Sprintf("Fake Artist %d - Fake %s %d", id%97, kind, id),
			URI:         fmt.Sprintf("/%s/%d", kind, id),
			ResourceURL: fmt.Sprintf("https://api.discogs.com/%ss/%d", kind, id),
		}
	}

	return &Catalogue{
		entries: entries,
	}
}

// Len returns the number of entries.
func (c *Catalogue) Len() int {
	return len(c.entries)
}

func (f Filter) matches(entry discogs.Result) bool {
	if f.Type != "" && entry.Type != f.Type {
		return false
	}

	if f.Query != "" && !strings.Contains(strings.ToLower(entry.Title), strings.ToLower(f.Query)) {
		return false
	}

	return true
}

// Search returns all entries matching the filter, in ID order.  The result
// is a copy and may be modified by the caller.
func (c *Catalogue) Search(filter Filter) []discogs.Result {
	return slices.DeleteFunc(slices.Clone(c.entries), func(entry discogs.Result) bool {
		return !filter.matches(entry)
	})
}
