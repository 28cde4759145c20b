package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

type TransactionType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TransactionTypeRepository reads the fixed income/expense reference rows.
type TransactionTypeRepository interface {
	List(ctx context.Context) ([]TransactionType, error)
	FindByName(ctx context.Context, name string) (*TransactionType, error)
	FindByID(ctx context.Context, id int) (*TransactionType, error)
}

// Transaction is a stored transaction enriched with its type name and the
// category fields, which are nil when the category no longer resolves.
type Transaction struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"userId"`
	Amount          decimal.Decimal `json:"amount"`
	TypeID          int             `json:"typeId"`
	TypeName        string          `json:"type"`
	CategoryID      int64           `json:"categoryId"`
	CategoryName    *string         `json:"categoryName"`
	CategoryIcon    *string         `json:"categoryIcon"`
	Description     *string         `json:"description"`
	TransactionDate Date            `json:"transactionDate"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type TransactionInput struct {
	Amount          decimal.Decimal
	TypeID          int
	CategoryID      int64
	Description     *string
	TransactionDate Date
}

// TransactionFilters are independent optional predicates combined with AND.
type TransactionFilters struct {
	Description string
	TypeID      *int
	CategoryID  *int64
	StartDate   *Date
	EndDate     *Date
}

type Pagination struct {
	Limit  int
	Offset int
}

func DefaultPagination() Pagination {
	return Pagination{Limit: DefaultLimit, Offset: DefaultOffset}
}

// Normalize falls back to the defaults for a non-positive limit or a
// negative offset.
func (p Pagination) Normalize() Pagination {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Offset < 0 {
		p.Offset = DefaultOffset
	}
	return p
}

type TransactionRepository interface {
	Create(ctx context.Context, ownerID int64, input TransactionInput) (int64, error)
	ListByOwner(ctx context.Context, ownerID int64, filters TransactionFilters, page Pagination) ([]Transaction, error)
	CountByOwner(ctx context.Context, ownerID int64, filters TransactionFilters) (int, error)
	GetByID(ctx context.Context, transactionID, ownerID int64) (*Transaction, error)
	Update(ctx context.Context, transactionID, ownerID int64, input TransactionInput) (bool, error)
	Delete(ctx context.Context, transactionID, ownerID int64) (bool, error)
}
