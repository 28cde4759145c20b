package interfaces

import (
	"context"
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

type CategoryServiceInterface interface {
	CreateCategory(ctx context.Context, ownerID int64, req application.CategoryRequest) (*domain.Category, error)
	GetCategories(ctx context.Context, ownerID int64) ([]domain.Category, error)
	GetCategoriesByType(ctx context.Context, ownerID int64, categoryType string) ([]domain.Category, error)
	GetCategory(ctx context.Context, ownerID, categoryID int64) (*domain.Category, error)
	UpdateCategory(ctx context.Context, ownerID, categoryID int64, req application.CategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, ownerID, categoryID int64) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  respondJSONFunc
	respondError respondErrorFunc
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, message string, data interface{}),
	respondError func(w http.ResponseWriter, r *http.Request, err error),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, err := ownerID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req application.CategoryRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), userID, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, "Category created successfully", category)
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	userID, err := ownerID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	categories, err := h.service.GetCategories(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, "Categories retrieved successfully", categories)
}

func (h *CategoryHandler) GetCategoriesByType(w http.ResponseWriter, r *http.Request) {
	userID, err := ownerID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	categories, err := h.service.GetCategoriesByType(r.Context(), userID, r.PathValue("type"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, "Categories retrieved successfully", categories)
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	userID, err := ownerID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	categoryID, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	category, err := h.service.GetCategory(r.Context(), userID, categoryID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, "Category retrieved successfully", category)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, err := ownerID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	categoryID, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req application.CategoryRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), userID, categoryID, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, "Category updated successfully", category)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, err := ownerID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	categoryID, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), userID, categoryID); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, "Category deleted successfully", nil)
}
