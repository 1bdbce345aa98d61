package service

import (
	"context"
	"time"

	"github.com/carson-networks/finance-server/internal/events"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// actionProcessor runs a write action as one unit of work.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Category    *CategoryService
	Statistics  *StatisticsService
	Seed        *SeedService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage, processor actionProcessor, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Service{
		Transaction: NewTransactionService(store, processor, publisher),
		Category:    NewCategoryService(store, processor, publisher),
		Statistics:  NewStatisticsService(store),
		Seed:        NewSeedService(processor),
	}
}

// publish announces a committed change. The write already succeeded, so a
// delivery failure is only logged.
func publish(ctx context.Context, publisher events.Publisher, eventType events.Type, userID, entityID int64) {
	if err := publisher.Publish(ctx, events.New(eventType, userID, entityID)); err != nil {
		logging.GetLogData(ctx).Log().
			WithError(err).
			WithField("eventType", eventType).
			WithField("entityID", entityID).
			Warn("Service.PublishEvent.Error")
	}
}

// today returns the calendar date of now as midnight UTC.
func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
