package application

import (
	"context"
	"log/slog"

	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
	"github.com/sebuszqo/FinanceTracker/internal/events"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	"github.com/sebuszqo/FinanceTracker/internal/logging"
)

const errTransactionNotFound = "Transaction not found"

type EventPublisher interface {
	Publish(ctx context.Context, event events.TransactionEvent) error
}

type TransactionService struct {
	repo      domain.TransactionRepository
	types     domain.TransactionTypeRepository
	publisher EventPublisher
}

func NewTransactionService(repo domain.TransactionRepository, types domain.TransactionTypeRepository, publisher EventPublisher) *TransactionService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &TransactionService{repo: repo, types: types, publisher: publisher}
}

// TransactionPage is one page of a filtered listing. Count is the page size,
// Total the number of rows matching the filters.
type TransactionPage struct {
	Transactions []domain.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
	Total        int                  `json:"total"`
	Limit        int                  `json:"limit"`
	Offset       int                  `json:"offset"`
}

func (s *TransactionService) CreateTransaction(ctx context.Context, ownerID int64, req TransactionRequest) (int64, error) {
	input, err := s.toInput(ctx, req)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, ownerID, input)
	if err != nil {
		return 0, err
	}

	s.publish(ctx, events.TransactionCreated, id, ownerID)
	return id, nil
}

func (s *TransactionService) GetTransactions(ctx context.Context, ownerID int64, filters domain.TransactionFilters, page domain.Pagination) (*TransactionPage, error) {
	page = page.Normalize()
	transactions, err := s.repo.ListByOwner(ctx, ownerID, filters, page)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}

	total, err := s.repo.CountByOwner(ctx, ownerID, filters)
	if err != nil {
		return nil, err
	}

	return &TransactionPage{
		Transactions: transactions,
		Count:        len(transactions),
		Total:        total,
		Limit:        page.Limit,
		Offset:       page.Offset,
	}, nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, ownerID, transactionID int64) (*domain.Transaction, error) {
	transaction, err := s.repo.GetByID(ctx, transactionID, ownerID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, appErrors.NewNotFoundError(errTransactionNotFound)
	}
	return transaction, nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, ownerID, transactionID int64, req TransactionRequest) error {
	input, err := s.toInput(ctx, req)
	if err != nil {
		return err
	}

	updated, err := s.repo.Update(ctx, transactionID, ownerID, input)
	if err != nil {
		return err
	}
	if !updated {
		return appErrors.NewNotFoundError(errTransactionNotFound)
	}

	s.publish(ctx, events.TransactionUpdated, transactionID, ownerID)
	return nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, ownerID, transactionID int64) error {
	deleted, err := s.repo.Delete(ctx, transactionID, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return appErrors.NewNotFoundError(errTransactionNotFound)
	}

	s.publish(ctx, events.TransactionDeleted, transactionID, ownerID)
	return nil
}

func (s *TransactionService) GetTransactionTypes(ctx context.Context) ([]domain.TransactionType, error) {
	return s.types.List(ctx)
}

// toInput validates the request and resolves a type name to its id.
func (s *TransactionService) toInput(ctx context.Context, req TransactionRequest) (domain.TransactionInput, error) {
	cmd, err := ValidateTransaction(req)
	if err != nil {
		return domain.TransactionInput{}, err
	}

	var transactionType *domain.TransactionType
	if cmd.TypeName != "" {
		transactionType, err = s.types.FindByName(ctx, cmd.TypeName)
	} else {
		transactionType, err = s.types.FindByID(ctx, cmd.TypeID)
	}
	if err != nil {
		return domain.TransactionInput{}, err
	}
	if transactionType == nil {
		return domain.TransactionInput{}, appErrors.NewValidationError("Invalid transaction type")
	}

	return domain.TransactionInput{
		Amount:          cmd.Amount,
		TypeID:          transactionType.ID,
		CategoryID:      cmd.CategoryID,
		Description:     cmd.Description,
		TransactionDate: cmd.TransactionDate,
	}, nil
}

// publish never fails the caller; the write has already been committed.
func (s *TransactionService) publish(ctx context.Context, eventType string, transactionID, ownerID int64) {
	event := events.NewTransactionEvent(eventType, transactionID, ownerID)
	if err := s.publisher.Publish(ctx, event); err != nil {
		logging.FromContext(ctx).Warn("Failed to publish transaction event",
			slog.String("type", eventType),
			slog.Int64("transaction_id", transactionID),
			slog.Any("error", err))
	}
}
