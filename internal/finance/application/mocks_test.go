package application

import (
	"context"
	"errors"

	"github.com/sebuszqo/FinanceTracker/internal/events"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

type mockCategoryRepository struct {
	categories map[int64]domain.Category
	nextID     int64
	err        error
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{categories: map[int64]domain.Category{}, nextID: 1}
}

func (m *mockCategoryRepository) Create(_ context.Context, ownerID int64, input domain.CategoryInput) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	category := domain.Category{ID: m.nextID, UserID: ownerID, Name: input.Name, Type: input.Type, Icon: input.Icon}
	m.categories[category.ID] = category
	m.nextID++
	return &category, nil
}

func (m *mockCategoryRepository) ListByOwner(_ context.Context, ownerID int64) ([]domain.Category, error) {
	result := []domain.Category{}
	for _, c := range m.categories {
		if c.UserID == ownerID {
			result = append(result, c)
		}
	}
	return result, m.err
}

func (m *mockCategoryRepository) ListByOwnerAndType(_ context.Context, ownerID int64, categoryType string) ([]domain.Category, error) {
	result := []domain.Category{}
	for _, c := range m.categories {
		if c.UserID == ownerID && c.Type == categoryType {
			result = append(result, c)
		}
	}
	return result, m.err
}

func (m *mockCategoryRepository) GetByID(_ context.Context, ownerID, categoryID int64) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.categories[categoryID]
	if !ok || c.UserID != ownerID {
		return nil, nil
	}
	return &c, nil
}

func (m *mockCategoryRepository) Update(_ context.Context, ownerID, categoryID int64, input domain.CategoryInput) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.categories[categoryID]
	if !ok || c.UserID != ownerID {
		return nil, nil
	}
	c.Name, c.Type, c.Icon = input.Name, input.Type, input.Icon
	m.categories[categoryID] = c
	return &c, nil
}

func (m *mockCategoryRepository) Delete(_ context.Context, ownerID, categoryID int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	c, ok := m.categories[categoryID]
	if !ok || c.UserID != ownerID {
		return false, nil
	}
	delete(m.categories, categoryID)
	return true, nil
}

type mockTransactionRepository struct {
	transactions map[int64]domain.Transaction
	nextID       int64
	err          error

	lastFilters domain.TransactionFilters
	lastPage    domain.Pagination
}

func newMockTransactionRepository() *mockTransactionRepository {
	return &mockTransactionRepository{transactions: map[int64]domain.Transaction{}, nextID: 1}
}

func (m *mockTransactionRepository) Create(_ context.Context, ownerID int64, input domain.TransactionInput) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	id := m.nextID
	m.nextID++
	m.transactions[id] = domain.Transaction{
		ID: id, UserID: ownerID, Amount: input.Amount, TypeID: input.TypeID, CategoryID: input.CategoryID,
		Description: input.Description, TransactionDate: input.TransactionDate,
	}
	return id, nil
}

func (m *mockTransactionRepository) ListByOwner(_ context.Context, ownerID int64, filters domain.TransactionFilters, page domain.Pagination) ([]domain.Transaction, error) {
	m.lastFilters, m.lastPage = filters, page
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Transaction
	for _, tx := range m.transactions {
		if tx.UserID == ownerID {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (m *mockTransactionRepository) CountByOwner(_ context.Context, ownerID int64, _ domain.TransactionFilters) (int, error) {
	count := 0
	for _, tx := range m.transactions {
		if tx.UserID == ownerID {
			count++
		}
	}
	return count, m.err
}

func (m *mockTransactionRepository) GetByID(_ context.Context, transactionID, ownerID int64) (*domain.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	tx, ok := m.transactions[transactionID]
	if !ok || tx.UserID != ownerID {
		return nil, nil
	}
	return &tx, nil
}

func (m *mockTransactionRepository) Update(_ context.Context, transactionID, ownerID int64, input domain.TransactionInput) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	tx, ok := m.transactions[transactionID]
	if !ok || tx.UserID != ownerID {
		return false, nil
	}
	tx.Amount, tx.TypeID, tx.CategoryID = input.Amount, input.TypeID, input.CategoryID
	tx.Description, tx.TransactionDate = input.Description, input.TransactionDate
	m.transactions[transactionID] = tx
	return true, nil
}

func (m *mockTransactionRepository) Delete(_ context.Context, transactionID, ownerID int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	tx, ok := m.transactions[transactionID]
	if !ok || tx.UserID != ownerID {
		return false, nil
	}
	delete(m.transactions, transactionID)
	return true, nil
}

type mockTransactionTypeRepository struct{}

var fixedTypes = []domain.TransactionType{{ID: 1, Name: "income"}, {ID: 2, Name: "expense"}}

func (mockTransactionTypeRepository) List(context.Context) ([]domain.TransactionType, error) {
	return fixedTypes, nil
}

func (mockTransactionTypeRepository) FindByName(_ context.Context, name string) (*domain.TransactionType, error) {
	for _, t := range fixedTypes {
		if t.Name == name {
			return &t, nil
		}
	}
	return nil, nil
}

func (mockTransactionTypeRepository) FindByID(_ context.Context, id int) (*domain.TransactionType, error) {
	for _, t := range fixedTypes {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, nil
}

type recordingPublisher struct {
	events []events.TransactionEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event events.TransactionEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

var errStore = errors.New("store unavailable")
