package interfaces

import (
	"context"
	"time"

	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

type MockCategoryService struct {
	categories []domain.Category
	nextID     int64
	shouldFail bool
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, ownerID int64, req application.CategoryRequest) (*domain.Category, error) {
	if m.shouldFail {
		return nil, appErrors.NewInternalError("Failed to create category", nil)
	}
	input, err := application.ValidateCategory(req)
	if err != nil {
		return nil, err
	}
	m.nextID++
	category := domain.Category{
		ID:        m.nextID,
		UserID:    ownerID,
		Name:      input.Name,
		Type:      input.Type,
		Icon:      input.Icon,
		CreatedAt: time.Now(),
	}
	m.categories = append(m.categories, category)
	return &category, nil
}

func (m *MockCategoryService) GetCategories(ctx context.Context, ownerID int64) ([]domain.Category, error) {
	if m.shouldFail {
		return nil, appErrors.NewInternalError("Failed to fetch categories", nil)
	}
	result := []domain.Category{}
	for _, c := range m.categories {
		if c.UserID == ownerID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *MockCategoryService) GetCategoriesByType(ctx context.Context, ownerID int64, categoryType string) ([]domain.Category, error) {
	all, err := m.GetCategories(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	result := []domain.Category{}
	for _, c := range all {
		if c.Type == categoryType {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *MockCategoryService) GetCategory(ctx context.Context, ownerID, categoryID int64) (*domain.Category, error) {
	for i := range m.categories {
		if m.categories[i].ID == categoryID && m.categories[i].UserID == ownerID {
			return &m.categories[i], nil
		}
	}
	return nil, appErrors.NewNotFoundError("Category not found")
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, ownerID, categoryID int64, req application.CategoryRequest) (*domain.Category, error) {
	input, err := application.ValidateCategory(req)
	if err != nil {
		return nil, err
	}
	category, err := m.GetCategory(ctx, ownerID, categoryID)
	if err != nil {
		return nil, err
	}
	category.Name = input.Name
	category.Type = input.Type
	category.Icon = input.Icon
	return category, nil
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, ownerID, categoryID int64) error {
	for i, c := range m.categories {
		if c.ID == categoryID && c.UserID == ownerID {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return appErrors.NewNotFoundError("Category not found")
}
