package domain

import (
	"context"
	"time"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

func IsValidType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}

type Category struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Type      string    `json:"type"` // "income" or "expense"
	Icon      *string   `json:"icon"`
	CreatedAt time.Time `json:"createdAt"`
}

// CategoryInput holds the mutable fields of a category; updates replace all of them.
type CategoryInput struct {
	Name string
	Type string
	Icon *string
}

// CategoryRepository scopes every call to the owning user. Lookups that match
// no owned row return nil without an error.
type CategoryRepository interface {
	Create(ctx context.Context, ownerID int64, input CategoryInput) (*Category, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Category, error)
	ListByOwnerAndType(ctx context.Context, ownerID int64, categoryType string) ([]Category, error)
	GetByID(ctx context.Context, ownerID, categoryID int64) (*Category, error)
	Update(ctx context.Context, ownerID, categoryID int64, input CategoryInput) (*Category, error)
	Delete(ctx context.Context, ownerID, categoryID int64) (bool, error)
}
