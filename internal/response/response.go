package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
	"github.com/sebuszqo/FinanceTracker/internal/logging"
)

// Envelope is the body of every API response.
type Envelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Errors  []string    `json:"errors,omitempty"`
	Stack   string      `json:"stack,omitempty"`
}

// Responder writes envelopes. In development, error responses include the
// stack recorded where the error was raised.
type Responder struct {
	Development bool
}

func NewResponder(development bool) *Responder {
	return &Responder{Development: development}
}

func (rs *Responder) JSON(w http.ResponseWriter, status int, message string, data interface{}) {
	write(w, status, Envelope{Code: status, Message: message, Data: data})
}

// Message writes an error envelope with a fixed message.
func (rs *Responder) Message(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{Code: status, Message: message})
}

// Error translates err into its status and client-facing message. Internal
// errors are logged with their cause and never exposed.
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	status := appErrors.StatusOf(err)
	envelope := Envelope{
		Code:    status,
		Message: appErrors.PublicMessage(err),
		Errors:  appErrors.Messages(err),
	}

	if status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error("Request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
	}
	if rs.Development {
		envelope.Stack = appErrors.StackTrace(err)
	}

	write(w, status, envelope)
}

func write(w http.ResponseWriter, status int, envelope Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		slog.Error("Failed to encode response", slog.Any("error", err))
	}
}
