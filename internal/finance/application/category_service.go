package application

import (
	"context"

	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

const errCategoryNotFound = "Category not found"

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, ownerID int64, req CategoryRequest) (*domain.Category, error) {
	input, err := ValidateCategory(req)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, ownerID, input)
}

func (s *CategoryService) GetCategories(ctx context.Context, ownerID int64) ([]domain.Category, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// GetCategoriesByType returns an empty list for a type that does not exist.
func (s *CategoryService) GetCategoriesByType(ctx context.Context, ownerID int64, categoryType string) ([]domain.Category, error) {
	if !domain.IsValidType(categoryType) {
		return []domain.Category{}, nil
	}
	return s.repo.ListByOwnerAndType(ctx, ownerID, categoryType)
}

// GetCategory reports a category owned by someone else as not found.
func (s *CategoryService) GetCategory(ctx context.Context, ownerID, categoryID int64) (*domain.Category, error) {
	category, err := s.repo.GetByID(ctx, ownerID, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, appErrors.NewNotFoundError(errCategoryNotFound)
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, ownerID, categoryID int64, req CategoryRequest) (*domain.Category, error) {
	input, err := ValidateCategory(req)
	if err != nil {
		return nil, err
	}
	category, err := s.repo.Update(ctx, ownerID, categoryID, input)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, appErrors.NewNotFoundError(errCategoryNotFound)
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, ownerID, categoryID int64) error {
	deleted, err := s.repo.Delete(ctx, ownerID, categoryID)
	if err != nil {
		return err
	}
	if !deleted {
		return appErrors.NewNotFoundError(errCategoryNotFound)
	}
	return nil
}
