package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func parseIntParam(value, name string) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter: %s", name, value)
	}
	return parsed, nil
}

// idParam reads a chi URL parameter as an int64 identifier.
func idParam(r *http.Request, name string) (int64, error) {
	value := chi.URLParam(r, name)
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter: %s", name, value)
	}
	return parsed, nil
}
