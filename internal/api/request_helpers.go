// Package api contains the HTTP handlers for every resource the service
// exposes.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"nc-news/internal/apperr"
	"nc-news/internal/store"
)

const (
	defaultPageLimit  = 10
	defaultPageNumber = 1
)

// decodeJSON decodes the request body into dst. Malformed JSON is a client
// error. An empty body decodes into the zero value so that required-field
// checks produce the contract's messages instead of a decode error.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperr.BadRequest("Bad request")
	}
	return nil
}

// pathID extracts a numeric path parameter. Non-numeric values are a client
// error, matching the database's rejection of invalid id text.
func pathID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("Bad request")
	}
	return id, nil
}

// parsePage reads the limit and p query parameters, applying the defaults
// of 10 per page starting at page 1. Non-numeric or sub-one values are a
// client error.
func parsePage(r *http.Request) (store.Page, error) {
	page := store.Page{Limit: defaultPageLimit, Number: defaultPageNumber}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return store.Page{}, apperr.BadRequest("Bad request")
		}
		page.Limit = limit
	}
	if raw := r.URL.Query().Get("p"); raw != "" {
		number, err := strconv.Atoi(raw)
		if err != nil || number < 1 {
			return store.Page{}, apperr.BadRequest("Bad request")
		}
		page.Number = number
	}
	return page, nil
}
