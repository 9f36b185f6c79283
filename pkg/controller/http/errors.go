package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bussola-app/bussola/pkg/datefmt"
	"github.com/bussola-app/bussola/pkg/domain/model"
	"github.com/bussola-app/bussola/pkg/schedule"
	"github.com/bussola-app/bussola/pkg/usecase"
	"github.com/bussola-app/bussola/pkg/utils/errutil"
	"github.com/bussola-app/bussola/pkg/utils/safe"
)

// ErrBadRequest wraps request decoding and query parsing failures
var ErrBadRequest = goerr.New("bad request")

var validationErrors = []error{
	ErrBadRequest,
	model.ErrMissingTitle,
	model.ErrLastPartner,
	model.ErrLastResponsible,
	usecase.ErrInvalidIntent,
	usecase.ErrUnknownShortcut,
	usecase.ErrInvalidInput,
	schedule.ErrInvalidTimestamp,
	datefmt.ErrInvalidFormat,
}

// statusOf maps an error to the HTTP status it is answered with
func statusOf(err error) int {
	if errors.Is(err, usecase.ErrActionNotFound) {
		return http.StatusNotFound
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	if errors.Is(err, usecase.ErrCopywriterNotConfigured) || errors.Is(err, usecase.ErrStorageNotConfigured) {
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func handleError(w http.ResponseWriter, r *http.Request, err error) {
	errutil.HandleHTTP(r.Context(), w, err, statusOf(err))
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(ErrBadRequest, "invalid JSON body", goerr.V("error", err.Error()))
	}
	return nil
}
