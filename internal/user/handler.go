package user

import (
	"encoding/json"
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/auth"
	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
)

type Handler struct {
	userService  Service
	respondJSON  func(w http.ResponseWriter, status int, message string, data interface{})
	respondError func(w http.ResponseWriter, r *http.Request, err error)
}

func NewHandler(
	userService Service,
	respondJSON func(w http.ResponseWriter, status int, message string, data interface{}),
	respondError func(w http.ResponseWriter, r *http.Request, err error),
) *Handler {
	if userService == nil || respondJSON == nil || respondError == nil {
		panic("user handler dependencies must not be nil")
	}
	return &Handler{
		userService:  userService,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, appErrors.NewValidationError("Invalid request body"))
		return
	}

	user, err := h.userService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, "User registered successfully", user)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, appErrors.NewValidationError("Invalid request body"))
		return
	}
	if req.Username == "" || req.Password == "" {
		h.respondError(w, r, appErrors.NewValidationError("Username and password are required"))
		return
	}

	user, token, err := h.userService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, "Login successful", map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

func (h *Handler) HandleGetUserProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, r, appErrors.NewUnauthorizedError("Unauthorized"))
		return
	}

	user, err := h.userService.GetUserByID(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, "User retrieved successfully", user)
}
