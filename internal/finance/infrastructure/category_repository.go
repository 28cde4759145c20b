package infrastructure

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

const categoryColumns = "id, user_id, name, type, icon, created_at"

type CategoryRepository struct {
	db Executor
}

func NewCategoryRepository(db Executor) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, ownerID int64, input domain.CategoryInput) (*domain.Category, error) {
	query := `INSERT INTO categories (user_id, name, type, icon)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + categoryColumns

	row := r.db.QueryRowContext(ctx, query, ownerID, input.Name, input.Type, input.Icon)
	category, err := scanCategory(row)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return category, nil
}

func (r *CategoryRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Category, error) {
	query := "SELECT " + categoryColumns + " FROM categories WHERE user_id = $1 ORDER BY name ASC"
	return r.list(ctx, query, ownerID)
}

func (r *CategoryRepository) ListByOwnerAndType(ctx context.Context, ownerID int64, categoryType string) ([]domain.Category, error) {
	query := "SELECT " + categoryColumns + " FROM categories WHERE user_id = $1 AND type = $2 ORDER BY name ASC"
	return r.list(ctx, query, ownerID, categoryType)
}

func (r *CategoryRepository) GetByID(ctx context.Context, ownerID, categoryID int64) (*domain.Category, error) {
	query := "SELECT " + categoryColumns + " FROM categories WHERE id = $1 AND user_id = $2"

	category, err := scanCategory(r.db.QueryRowContext(ctx, query, categoryID, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return category, nil
}

func (r *CategoryRepository) Update(ctx context.Context, ownerID, categoryID int64, input domain.CategoryInput) (*domain.Category, error) {
	query := `UPDATE categories SET name = $1, type = $2, icon = $3
		WHERE id = $4 AND user_id = $5
		RETURNING ` + categoryColumns

	row := r.db.QueryRowContext(ctx, query, input.Name, input.Type, input.Icon, categoryID, ownerID)
	category, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return category, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, ownerID, categoryID int64) (bool, error) {
	affected, err := execAffected(ctx, r.db, "DELETE FROM categories WHERE id = $1 AND user_id = $2", categoryID, ownerID)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *CategoryRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, classifyStoreError(err)
		}
		categories = append(categories, *category)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStoreError(err)
	}
	return categories, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	var category domain.Category
	if err := row.Scan(&category.ID, &category.UserID, &category.Name, &category.Type, &category.Icon, &category.CreatedAt); err != nil {
		return nil, err
	}
	return &category, nil
}
