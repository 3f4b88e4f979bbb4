package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mzhelnin/adboard-api/internal/domain"
)

// getPathID extracts a positive integer identifier from the URL path.
// A missing or malformed identifier maps to 404, mirroring routers that
// refuse to match non-integer path segments.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("%w: missing %s", domain.ErrInvalidID, paramName)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, pathParam)
	}

	return id, nil
}

// normalizeString drops explicitly empty values: a pointer to "" behaves the
// same as an absent field so empty strings are never written to the store.
func normalizeString(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
