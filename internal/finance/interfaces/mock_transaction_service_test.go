package interfaces

import (
	"context"

	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

type MockTransactionService struct {
	transactions []domain.Transaction
	nextID       int64
	shouldFail   bool

	lastFilters domain.TransactionFilters
	lastPage    domain.Pagination
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, ownerID int64, req application.TransactionRequest) (int64, error) {
	if m.shouldFail {
		return 0, appErrors.NewInternalError("Failed to create transaction", nil)
	}
	cmd, err := application.ValidateTransaction(req)
	if err != nil {
		return 0, err
	}
	m.nextID++
	m.transactions = append(m.transactions, domain.Transaction{
		ID:              m.nextID,
		UserID:          ownerID,
		Amount:          cmd.Amount,
		TransactionDate: cmd.TransactionDate,
		Description:     cmd.Description,
	})
	return m.nextID, nil
}

func (m *MockTransactionService) GetTransactions(ctx context.Context, ownerID int64, filters domain.TransactionFilters, page domain.Pagination) (*application.TransactionPage, error) {
	if m.shouldFail {
		return nil, appErrors.NewInternalError("Failed to fetch transactions", nil)
	}
	m.lastFilters = filters
	m.lastPage = page

	owned := []domain.Transaction{}
	for _, t := range m.transactions {
		if t.UserID == ownerID {
			owned = append(owned, t)
		}
	}
	return &application.TransactionPage{
		Transactions: owned,
		Count:        len(owned),
		Total:        len(owned),
		Limit:        page.Limit,
		Offset:       page.Offset,
	}, nil
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, ownerID, transactionID int64) (*domain.Transaction, error) {
	for i := range m.transactions {
		if m.transactions[i].ID == transactionID && m.transactions[i].UserID == ownerID {
			return &m.transactions[i], nil
		}
	}
	return nil, appErrors.NewNotFoundError("Transaction not found")
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, ownerID, transactionID int64, req application.TransactionRequest) error {
	cmd, err := application.ValidateTransaction(req)
	if err != nil {
		return err
	}
	transaction, err := m.GetTransaction(ctx, ownerID, transactionID)
	if err != nil {
		return err
	}
	transaction.Amount = cmd.Amount
	return nil
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, ownerID, transactionID int64) error {
	for i, t := range m.transactions {
		if t.ID == transactionID && t.UserID == ownerID {
			m.transactions = append(m.transactions[:i], m.transactions[i+1:]...)
			return nil
		}
	}
	return appErrors.NewNotFoundError("Transaction not found")
}

func (m *MockTransactionService) GetTransactionTypes(ctx context.Context) ([]domain.TransactionType, error) {
	if m.shouldFail {
		return nil, appErrors.NewInternalError("Failed to fetch transaction types", nil)
	}
	return []domain.TransactionType{{ID: 1, Name: "income"}, {ID: 2, Name: "expense"}}, nil
}
