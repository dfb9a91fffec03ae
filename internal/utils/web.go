package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sparkboard-dev/sparkboard/internal/errors"
	"github.com/sparkboard-dev/sparkboard/internal/logger"
)

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		http.Error(w, err.Error(), e.StatusCode)
		return
	}
	// default error is 500
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Warn("invalid request body", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		logger.Log.Warn("request body failed validation", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Required fields missing or invalid", StatusCode: http.StatusBadRequest}
	}
	return nil
}
