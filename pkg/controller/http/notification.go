package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/alertpost/pkg/domain/model/errs"
	"github.com/secmon-lab/alertpost/pkg/domain/model/post"
)

// notificationHandler creates a post from the notification. It runs behind
// verifyCredentials, which provides the configuration for the request.
func notificationHandler(uc UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		cfg, ok := configFrom(ctx)
		if !ok {
			handleAPIError(w, r, goerr.New("configuration is not available", goerr.T(errs.TagInternal)))
			return
		}

		var n post.Notification
		if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
			apiErr := errs.NewAPIError(errs.CodeInvalidJSON, "Invalid JSON body passed.", http.StatusBadRequest)
			handleAPIError(w, r, goerr.Wrap(apiErr, "failed to decode notification",
				goerr.V("decode_error", err.Error()),
				goerr.T(errs.TagInvalidRequest),
			))
			return
		}

		created, err := uc.HandleNotification(ctx, *cfg, n)
		if err != nil {
			handleAPIError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, fmt.Sprintf("Created post %s", created.ID))
	}
}
