package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"edufleet-backend/internal/domain"

	"github.com/gorilla/mux"
)

func pathID(r *http.Request, name string) (int32, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", domain.ErrValidation, name)
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", domain.ErrValidation, name, raw)
	}
	return int32(id), nil
}

func queryInt32(r *http.Request, name string, fallback int32) int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v <= 0 {
		return fallback
	}
	return int32(v)
}

func paging(r *http.Request) (int32, int32) {
	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
