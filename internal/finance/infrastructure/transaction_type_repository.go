package infrastructure

import (
	"context"
	"sync"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

// TransactionTypeRepository reads transaction_types once and serves later
// lookups from memory; the rows never change at runtime.
type TransactionTypeRepository struct {
	db Executor

	mu    sync.RWMutex
	types []domain.TransactionType
}

func NewTransactionTypeRepository(db Executor) *TransactionTypeRepository {
	return &TransactionTypeRepository{db: db}
}

func (r *TransactionTypeRepository) List(ctx context.Context) ([]domain.TransactionType, error) {
	r.mu.RLock()
	cached := r.types
	r.mu.RUnlock()
	if cached != nil {
		return append([]domain.TransactionType(nil), cached...), nil
	}

	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM transaction_types ORDER BY id")
	if err != nil {
		return nil, classifyStoreError(err)
	}
	defer rows.Close()

	types := []domain.TransactionType{}
	for rows.Next() {
		var t domain.TransactionType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, classifyStoreError(err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStoreError(err)
	}

	// An empty table means the schema is not seeded yet; read it again next time.
	if len(types) > 0 {
		r.mu.Lock()
		r.types = types
		r.mu.Unlock()
	}

	return append([]domain.TransactionType(nil), types...), nil
}

func (r *TransactionTypeRepository) FindByName(ctx context.Context, name string) (*domain.TransactionType, error) {
	types, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range types {
		if t.Name == name {
			return &t, nil
		}
	}
	return nil, nil
}

func (r *TransactionTypeRepository) FindByID(ctx context.Context, id int) (*domain.TransactionType, error) {
	types, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range types {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, nil
}
