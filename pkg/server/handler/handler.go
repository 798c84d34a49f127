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

package handler

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/oapi-codegen/runtime"
	"github.com/spf13/pflag"

	"github.com/nscaledev/discogs-conformance/pkg/discogs"
	servererrors "github.com/nscaledev/discogs-conformance/pkg/server/errors"
	"github.com/nscaledev/discogs-conformance/pkg/server/handler/catalogue"
	"github.com/nscaledev/discogs-conformance/pkg/server/util"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	ErrConsumerRequired = errors.New("consumer key and secret are required")

	ErrInvalidCatalogueSize = errors.New("catalogue size must not be negative")
)

// Options allows behaviour to be defined on the CLI.
type Options struct {
	// ConsumerKey is the only key that will be accepted.
	ConsumerKey string

	// ConsumerSecret is the only secret that will be accepted.
	ConsumerSecret string

	// CatalogueSize is the number of generated database entries.
	CatalogueSize int
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ConsumerKey, "consumer-key", os.Getenv("DISCOGS_KEY"), "Consumer key accepted by the search endpoint, defaults to $DISCOGS_KEY")
	f.StringVar(&o.ConsumerSecret, "consumer-secret", os.Getenv("DISCOGS_SECRET"), "Consumer secret accepted by the search endpoint, defaults to $DISCOGS_SECRET")
	f.IntVar(&o.CatalogueSize, "catalogue-size", 1000, "Number of generated database entries to search over")
}

// SearchParams are the query parameters accepted by the search endpoint.
type SearchParams struct {
	Query   *string
	Type    *string
	Page    *int
	PerPage *int
}

type Handler struct {
	// options allows behaviour to be defined on the CLI.
	options *Options

	// consumer is the accepted credential.
	consumer discogs.Credential

	// catalogue is what's searched.
	catalogue *catalogue.Catalogue
}

func New(options *Options) (*Handler, error) {
	if options.ConsumerKey == "" || options.ConsumerSecret == "" {
		return nil, ErrConsumerRequired
	}

	if options.CatalogueSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCatalogueSize, options.CatalogueSize)
	}

	h := &Handler{
		options: options,
		consumer: discogs.Credential{
			Key:    options.ConsumerKey,
			Secret: options.ConsumerSecret,
		},
		catalogue: catalogue.New(options.CatalogueSize),
	}

	return h, nil
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

// authenticate checks the Authorization header against the known consumer.
func (h *Handler) authenticate(r *http.Request) error {
	header := r.Header.Get("Authorization")
	if header == "" {
		return servererrors.MustAuthenticate()
	}

	credential, err := discogs.ParseAuthorization(header)
	if err != nil {
		return servererrors.InvalidConsumer().WithError(err)
	}

	if credential != h.consumer {
		return servererrors.InvalidConsumer()
	}

	return nil
}

// bindSearchParams binds query parameters the same way generated servers do.
func bindSearchParams(r *http.Request) (*SearchParams, error) {
	params := &SearchParams{}

	query := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "q", query, &params.Query); err != nil {
		return nil, servererrors.InvalidRequest("invalid format for parameter q").WithError(err)
	}

	if err := runtime.BindQueryParameter("form", true, false, "type", query, &params.Type); err != nil {
		return nil, servererrors.InvalidRequest("invalid format for parameter type").WithError(err)
	}

	if err := runtime.BindQueryParameter("form", true, false, "page", query, &params.Page); err != nil {
		return nil, servererrors.InvalidRequest("invalid format for parameter page").WithError(err)
	}

	if err := runtime.BindQueryParameter("form", true, false, "per_page", query, &params.PerPage); err != nil {
		return nil, servererrors.InvalidRequest("invalid format for parameter per_page").WithError(err)
	}

	return params, nil
}

func (p *SearchParams) filter() (catalogue.Filter, error) {
	var filter catalogue.Filter

	if p.Query != nil {
		filter.Query = *p.Query
	}

	if p.Type != nil {
		filter.Type = discogs.ResultType(*p.Type)

		switch filter.Type {
		case discogs.ResultTypeRelease, discogs.ResultTypeMaster, discogs.ResultTypeArtist, discogs.ResultTypeLabel:
		default:
			return filter, servererrors.InvalidRequest(fmt.Sprintf("invalid type %q", *p.Type))
		}
	}

	return filter, nil
}

// GetDatabaseSearch searches the catalogue a page at a time.
func (h *Handler) GetDatabaseSearch(w http.ResponseWriter, r *http.Request) {
	log := log.FromContext(r.Context())

	if err := h.authenticate(r); err != nil {
		servererrors.HandleError(w, r, err)
		return
	}

	params, err := bindSearchParams(r)
	if err != nil {
		servererrors.HandleError(w, r, err)
		return
	}

	filter, err := params.filter()
	if err != nil {
		servererrors.HandleError(w, r, err)
		return
	}

	perPage := pageSize(params.PerPage)
	page := pageNumber(params.Page)

	matches := h.catalogue.Search(filter)

	result := &discogs.SearchResponse{
		Pagination: newPagination(r, len(matches), page, perPage),
		Results:    paginate(matches, page, perPage),
	}

	log.V(1).Info("search served", "items", len(matches), "page", page, "perPage", perPage, "results", len(result.Results))

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}
