package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/finance-server/internal/operator/actions"
)

var ErrStopped = errors.New("operator delegator stopped")

const queueSize = 1000

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	storage    writeStarter
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once

	// mutex guards stopped so no item is sent on a closed queue.
	mutex   sync.RWMutex
	stopped bool
}

func NewOperatorDelegator(s writeStarter, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		storage:    s,
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.storage, d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop closes the queue and waits for queued items to finish.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mutex.Lock()
		d.stopped = true
		close(d.queue)
		d.mutex.Unlock()
		d.wg.Wait()
	})
}

// Process enqueues action and blocks until it has been committed or rolled
// back, or until ctx is done.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	if d.stopped {
		return ErrStopped
	}
	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
