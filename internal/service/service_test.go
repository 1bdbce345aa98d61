package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/carson-networks/finance-server/internal/events"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

type testDeps struct {
	users        *sqlconfig.MockIUserTable
	categories   *sqlconfig.MockICategoryTable
	transactions *sqlconfig.MockITransactionTable
	statistics   *sqlconfig.MockIStatisticsReader
	processor    *inlineProcessor
	publisher    *recordingPublisher
}

// inlineProcessor runs actions directly against the mocked tables.
type inlineProcessor struct {
	writer    *storage.Writer
	processed []actions.IAction
}

func (p *inlineProcessor) Process(ctx context.Context, action actions.IAction) error {
	p.processed = append(p.processed, action)
	return action.Perform(ctx, p.writer)
}

type recordingPublisher struct {
	mutex  sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []events.Type {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	types := make([]events.Type, len(p.events))
	for i, event := range p.events {
		types[i] = event.Type
	}
	return types
}

func newTestDeps(t *testing.T) (*storage.Storage, *testDeps) {
	t.Helper()
	deps := &testDeps{
		users:        sqlconfig.NewMockIUserTable(t),
		categories:   sqlconfig.NewMockICategoryTable(t),
		transactions: sqlconfig.NewMockITransactionTable(t),
		statistics:   sqlconfig.NewMockIStatisticsReader(t),
		publisher:    &recordingPublisher{},
	}
	store := &storage.Storage{
		Reader: storage.Reader{
			Users:        deps.users,
			Categories:   deps.categories,
			Transactions: deps.transactions,
		},
		Statistics: deps.statistics,
	}
	deps.processor = &inlineProcessor{writer: storage.NewWriter(nil, store.Reader)}
	return store, deps
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 18, 30, 0, 0, time.Local)
	}
}

func ptr[T any](v T) *T {
	return &v
}
