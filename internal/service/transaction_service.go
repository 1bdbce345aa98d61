package service

import (
	"context"
	"time"

	"github.com/carson-networks/finance-server/internal/domainerr"
	"github.com/carson-networks/finance-server/internal/events"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

const dashboardRecentLimit = 5

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   *storage.Storage
	operator  actionProcessor
	publisher events.Publisher
	now       func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor actionProcessor, publisher events.Publisher) *TransactionService {
	return &TransactionService{
		storage:   store,
		operator:  processor,
		publisher: publisher,
		now:       time.Now,
	}
}

// List returns the transactions of userID matching filter, newest first.
func (s *TransactionService) List(ctx context.Context, userID int64, filter TransactionFilter) ([]Transaction, error) {
	storageFilter := &sqlconfig.TransactionFilter{UserID: userID}
	if filter.Kind != "" {
		kind := kindToStorage(Kind(filter.Kind))
		storageFilter.Kind = &kind
	}
	if filter.CategoryID != 0 {
		storageFilter.CategoryID = &filter.CategoryID
	}
	if filter.DateFrom != "" {
		from, err := parseDate(filter.DateFrom)
		if err != nil {
			return nil, err
		}
		storageFilter.DateFrom = &from
	}
	if filter.DateTo != "" {
		to, err := parseDate(filter.DateTo)
		if err != nil {
			return nil, err
		}
		storageFilter.DateTo = &to
	}

	rows, err := s.storage.Transactions.List(ctx, storageFilter)
	if err != nil {
		return nil, domainerr.Store(err)
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = transactionFromStorage(row)
	}
	return convertedTransactions, nil
}

// Create validates input and stores it as a new transaction of userID.
func (s *TransactionService) Create(ctx context.Context, userID int64, input TransactionInput) (*Transaction, error) {
	if input.Description == "" {
		return nil, domainerr.Validation(msgDescriptionRequired)
	}
	if err := checkDescription(input.Description); err != nil {
		return nil, err
	}
	if input.Amount == nil || input.Amount.IsZero() {
		return nil, domainerr.Validation(msgAmountRequired)
	}
	amount := input.Amount.Round(2)
	if err := checkAmount(amount); err != nil {
		return nil, err
	}
	if input.CategoryID == nil || *input.CategoryID == 0 {
		return nil, domainerr.Validation(msgCategoryRequired)
	}
	kind := Kind(input.Kind)
	if !kind.Valid() {
		return nil, domainerr.Validation(msgKindInvalid)
	}

	date := today(s.now())
	if input.Date != "" {
		parsed, err := parseDate(input.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	action := &actions.CreateTransaction{
		UserID:      userID,
		CategoryID:  *input.CategoryID,
		Description: input.Description,
		Amount:      amount,
		Date:        date,
		Kind:        kindToStorage(kind),
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, domainerr.Store(err)
	}

	created := transactionFromStorage(action.Created)
	publish(ctx, s.publisher, events.TransactionCreated, userID, created.ID)
	return &created, nil
}

// Update applies patch to transaction id of userID.
func (s *TransactionService) Update(ctx context.Context, userID, id int64, patch TransactionPatch) (*Transaction, error) {
	update := sqlconfig.TransactionUpdate{
		Description: patch.Description,
		CategoryID:  patch.CategoryID,
	}
	if patch.Description != nil {
		if err := checkDescription(*patch.Description); err != nil {
			return nil, err
		}
	}
	if patch.Amount != nil {
		amount := patch.Amount.Round(2)
		if err := checkAmount(amount); err != nil {
			return nil, err
		}
		update.Amount = &amount
	}
	if patch.Date != nil {
		date, err := parseDate(*patch.Date)
		if err != nil {
			return nil, err
		}
		update.Date = &date
	}
	if patch.Kind != nil && Kind(*patch.Kind).Valid() {
		kind := kindToStorage(Kind(*patch.Kind))
		update.Kind = &kind
	}

	action := &actions.UpdateTransaction{UserID: userID, ID: id, Update: update}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, domainerr.Store(err)
	}

	updated := transactionFromStorage(action.Updated)
	publish(ctx, s.publisher, events.TransactionUpdated, userID, id)
	return &updated, nil
}

func (s *TransactionService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.operator.Process(ctx, &actions.DeleteTransaction{UserID: userID, ID: id}); err != nil {
		return domainerr.Store(err)
	}
	publish(ctx, s.publisher, events.TransactionDeleted, userID, id)
	return nil
}

// Dashboard summarises the current month, the all-time balance and the most
// recent transactions of userID.
func (s *TransactionService) Dashboard(ctx context.Context, userID int64) (*Dashboard, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	month, err := s.storage.Statistics.KindTotals(ctx, userID, &monthStart, &monthEnd)
	if err != nil {
		return nil, domainerr.Store(err)
	}
	allTime, err := s.storage.Statistics.KindTotals(ctx, userID, nil, nil)
	if err != nil {
		return nil, domainerr.Store(err)
	}
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		UserID: userID,
		Limit:  dashboardRecentLimit,
	})
	if err != nil {
		return nil, domainerr.Store(err)
	}

	recent := make([]Transaction, len(rows))
	for i, row := range rows {
		recent[i] = transactionFromStorage(row)
	}
	return &Dashboard{
		TotalBalance:       allTime.Income.Sub(allTime.Expense).Round(2),
		MonthIncome:        month.Income.Round(2),
		MonthExpense:       month.Expense.Round(2),
		MonthBalance:       month.Income.Sub(month.Expense).Round(2),
		RecentTransactions: recent,
	}, nil
}
