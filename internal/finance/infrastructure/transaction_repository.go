package infrastructure

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

// The category join is scoped to the transaction's owner so a reference to a
// deleted or foreign category resolves to null fields.
const selectTransactionSQL = `SELECT t.id, t.user_id, t.amount, t.type_id, tt.name, t.category_id,
		c.name, c.icon, t.description, t.transaction_date, t.created_at, t.updated_at
	FROM transactions t
	JOIN transaction_types tt ON tt.id = t.type_id
	LEFT JOIN categories c ON c.id = t.category_id AND c.user_id = t.user_id`

const transactionOrderSQL = " ORDER BY t.transaction_date DESC, t.id DESC"

type TransactionRepository struct {
	db Executor
}

func NewTransactionRepository(db Executor) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, ownerID int64, input domain.TransactionInput) (int64, error) {
	query := `INSERT INTO transactions (user_id, amount, type_id, category_id, description, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		ownerID, input.Amount, input.TypeID, input.CategoryID, input.Description, input.TransactionDate,
	).Scan(&id)
	if err != nil {
		return 0, classifyStoreError(err)
	}
	return id, nil
}

func (r *TransactionRepository) ListByOwner(ctx context.Context, ownerID int64, filters domain.TransactionFilters, page domain.Pagination) ([]domain.Transaction, error) {
	predicates := transactionPredicates(ownerID, filters)
	query := selectTransactionSQL + predicates.where() + transactionOrderSQL + paginationClause(page)

	rows, err := r.db.QueryContext(ctx, query, predicates.arguments()...)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, classifyStoreError(err)
		}
		transactions = append(transactions, *transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStoreError(err)
	}
	return transactions, nil
}

// CountByOwner counts the rows ListByOwner would return without pagination.
func (r *TransactionRepository) CountByOwner(ctx context.Context, ownerID int64, filters domain.TransactionFilters) (int, error) {
	predicates := transactionPredicates(ownerID, filters)
	query := "SELECT COUNT(*) FROM transactions t" + predicates.where()

	var total int
	if err := r.db.QueryRowContext(ctx, query, predicates.arguments()...).Scan(&total); err != nil {
		return 0, classifyStoreError(err)
	}
	return total, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, transactionID, ownerID int64) (*domain.Transaction, error) {
	query := selectTransactionSQL + " WHERE t.id = $1 AND t.user_id = $2"

	transaction, err := scanTransaction(r.db.QueryRowContext(ctx, query, transactionID, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return transaction, nil
}

func (r *TransactionRepository) Update(ctx context.Context, transactionID, ownerID int64, input domain.TransactionInput) (bool, error) {
	query := `UPDATE transactions
		SET amount = $1, type_id = $2, category_id = $3, description = $4, transaction_date = $5, updated_at = NOW()
		WHERE id = $6 AND user_id = $7`

	affected, err := execAffected(ctx, r.db, query,
		input.Amount, input.TypeID, input.CategoryID, input.Description, input.TransactionDate,
		transactionID, ownerID,
	)
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID, ownerID int64) (bool, error) {
	affected, err := execAffected(ctx, r.db, "DELETE FROM transactions WHERE id = $1 AND user_id = $2", transactionID, ownerID)
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.ID, &t.UserID, &t.Amount, &t.TypeID, &t.TypeName, &t.CategoryID,
		&t.CategoryName, &t.CategoryIcon, &t.Description, &t.TransactionDate, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
