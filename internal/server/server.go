package server

import (
	"context"
	"net/http"
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/auth"
	"github.com/sebuszqo/FinanceTracker/internal/finance/interfaces"
	"github.com/sebuszqo/FinanceTracker/internal/response"
	"github.com/sebuszqo/FinanceTracker/internal/user"
)

type HealthChecker interface {
	Health(ctx context.Context) map[string]string
}

type Server struct {
	router             *http.ServeMux
	userHandler        *user.Handler
	categoryHandler    *interfaces.CategoryHandler
	transactionHandler *interfaces.TransactionHandler
	tokens             auth.TokenValidator
	health             HealthChecker
	responder          *response.Responder
}

func NewServer(
	userHandler *user.Handler,
	categoryHandler *interfaces.CategoryHandler,
	transactionHandler *interfaces.TransactionHandler,
	tokens auth.TokenValidator,
	health HealthChecker,
	responder *response.Responder,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		userHandler:        userHandler,
		categoryHandler:    categoryHandler,
		transactionHandler: transactionHandler,
		tokens:             tokens,
		health:             health,
		responder:          responder,
	}
}

// Handler returns the routed server wrapped in request logging.
func (s *Server) Handler() http.Handler {
	return RequestLogger(s.router)
}

func (s *Server) notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	s.responder.Message(w, http.StatusNotFound, "Path not found")
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	stats := s.health.Health(ctx)
	if stats["status"] != "up" {
		s.responder.JSON(w, http.StatusServiceUnavailable, "Database unavailable", stats)
		return
	}
	s.responder.JSON(w, http.StatusOK, "ready", stats)
}

func (s *Server) RegisterRoutes() {
	protected := auth.JWTAccessTokenMiddleware(s.tokens, s.responder.Error)
	protect := func(h http.HandlerFunc) http.Handler {
		return protected(h)
	}

	router := http.NewServeMux()

	// Public routes
	router.Handle("POST /api/users/register", http.HandlerFunc(s.userHandler.HandleRegister))
	router.Handle("POST /api/users/login", http.HandlerFunc(s.userHandler.HandleLogin))
	router.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Protected routes
	router.Handle("GET /api/users/profile", protect(s.userHandler.HandleGetUserProfile))

	// CATEGORIES API
	router.Handle("POST /api/categories", protect(s.categoryHandler.CreateCategory))
	router.Handle("GET /api/categories", protect(s.categoryHandler.GetCategories))
	router.Handle("GET /api/categories/type/{type}", protect(s.categoryHandler.GetCategoriesByType))
	router.Handle("GET /api/categories/{id}", protect(s.categoryHandler.GetCategory))
	router.Handle("PUT /api/categories/{id}", protect(s.categoryHandler.UpdateCategory))
	router.Handle("DELETE /api/categories/{id}", protect(s.categoryHandler.DeleteCategory))

	// TRANSACTIONS API
	router.Handle("POST /api/transactions", protect(s.transactionHandler.CreateTransaction))
	router.Handle("GET /api/transactions", protect(s.transactionHandler.GetTransactions))
	router.Handle("GET /api/transactions/{id}", protect(s.transactionHandler.GetTransaction))
	router.Handle("PUT /api/transactions/{id}", protect(s.transactionHandler.UpdateTransaction))
	router.Handle("DELETE /api/transactions/{id}", protect(s.transactionHandler.DeleteTransaction))
	router.Handle("GET /api/transaction-types", protect(s.transactionHandler.GetTransactionTypes))

	router.Handle("/", http.HandlerFunc(s.notFoundHandler))

	s.router = router
}
