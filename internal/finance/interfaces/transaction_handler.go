package interfaces

import (
	"context"
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, ownerID int64, req application.TransactionRequest) (int64, error)
	GetTransactions(ctx context.Context, ownerID int64, filters domain.TransactionFilters, page domain.Pagination) (*application.TransactionPage, error)
	GetTransaction(ctx context.Context, ownerID, transactionID int64) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, ownerID, transactionID int64, req application.TransactionRequest) error
	DeleteTransaction(ctx context.Context, ownerID, transactionID int64) error
	GetTransactionTypes(ctx context.Context) ([]domain.TransactionType, error)
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  respondJSONFunc
	respondError respondErrorFunc
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, message string, data interface{}),
	respondError func(w http.ResponseWriter, r *http.Request, err error),
) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, err := ownerID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req application.TransactionRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	id, err := h.service.CreateTransaction(r.Context(), userID, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, "Transaction created successfully", map[string]int64{"id": id})
}

func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, err := ownerID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	filters, page, err := application.ParseListQuery(r.URL.Query())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.service.GetTransactions(r.Context(), userID, filters, page)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, "Transactions retrieved successfully", result)
}

func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	userID, err := ownerID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	transactionID, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	transaction, err := h.service.GetTransaction(r.Context(), userID, transactionID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, "Transaction retrieved successfully", transaction)
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, err := ownerID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	transactionID, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req application.TransactionRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.service.UpdateTransaction(r.Context(), userID, transactionID, req); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, "Transaction updated successfully", map[string]int64{"id": transactionID})
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, err := ownerID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	transactionID, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.service.DeleteTransaction(r.Context(), userID, transactionID); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, "Transaction deleted successfully", nil)
}

func (h *TransactionHandler) GetTransactionTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.GetTransactionTypes(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, "Transaction types retrieved successfully", types)
}
