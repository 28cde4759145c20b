package interfaces

import (
	"encoding/json"
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/auth"
	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
)

const maxBodyBytes = 1 << 20

type respondJSONFunc func(w http.ResponseWriter, status int, message string, data interface{})

type respondErrorFunc func(w http.ResponseWriter, r *http.Request, err error)

// ownerID reads the authenticated user. The middleware guarantees it; a
// missing id means the route was registered without it.
func ownerID(r *http.Request) (int64, error) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return 0, appErrors.NewUnauthorizedError("Unauthorized")
	}
	return userID, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return appErrors.NewValidationError("Invalid request body")
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	return application.ParseID(r.PathValue("id"))
}
