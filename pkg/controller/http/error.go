package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/alertpost/pkg/domain/model/errs"
	"github.com/secmon-lab/alertpost/pkg/utils/logging"
	"github.com/secmon-lab/alertpost/pkg/utils/safe"
)

// handleError responds with plain text. It is used by the admin pages.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.From(r.Context())

	switch {
	case goerr.HasTag(err, errs.TagNotFound):
		logger.Warn("Not Found", "error", err)
		http.Error(w, err.Error(), http.StatusNotFound)

	case goerr.HasTag(err, errs.TagValidation), goerr.HasTag(err, errs.TagInvalidRequest):
		logger.Warn("Bad Request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)

	case goerr.HasTag(err, errs.TagUnauthorized):
		logger.Warn("Unauthorized", "error", err)
		http.Error(w, err.Error(), http.StatusUnauthorized)

	default:
		errs.Handle(r.Context(), err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// handleAPIError responds with the *errs.APIError in the chain as JSON. The
// status is decided by the error tag and every other failure is a 500.
func handleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.From(r.Context())

	apiErr, ok := errs.AsAPIError(err)
	if !ok {
		apiErr = errs.InternalError()
	}

	var status int
	switch {
	case goerr.HasTag(err, errs.TagUnauthorized):
		logger.Warn("Unauthorized", "error", err)
		status = http.StatusUnauthorized

	case goerr.HasTag(err, errs.TagInvalidRequest):
		logger.Warn("Bad Request", "error", err)
		status = http.StatusBadRequest

	default:
		errs.Handle(r.Context(), err)
		status = http.StatusInternalServerError
	}

	writeJSON(w, r, status, apiErr)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		errs.Handle(r.Context(), goerr.Wrap(err, "failed to marshal response"))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, body)
}
