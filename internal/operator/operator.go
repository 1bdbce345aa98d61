package operator

import (
	"context"
	"fmt"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// writeStarter opens the unit of work an action runs in.
type writeStarter interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage writeStarter
	queue   chan ActionItem
}

func NewOperator(s writeStarter, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.processItem(item)}
	}
}

// processItem runs the action inside one transaction. Any error, including a
// panic in the action, rolls the whole transaction back.
func (o *Operator) processItem(item ActionItem) (err error) {
	if err := item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = writer.Rollback()
			err = fmt.Errorf("action panicked: %v", r)
		}
	}()

	if err = item.action.Perform(item.ctx, writer); err != nil {
		_ = writer.Rollback()
		return err
	}

	return writer.Commit()
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
