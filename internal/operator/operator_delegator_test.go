package operator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/storage"
)

type fakeTx struct {
	mutex     sync.Mutex
	commits   int
	rollbacks int
	commitErr error
}

func (f *fakeTx) Commit(context.Context) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.commits++
	return f.commitErr
}

func (f *fakeTx) Rollback(context.Context) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.rollbacks++
	return nil
}

type fakeStorage struct {
	tx       *fakeTx
	writeErr error
}

func (f *fakeStorage) Write(context.Context) (*storage.Writer, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	return storage.NewWriter(f.tx, storage.Reader{}), nil
}

type actionFunc func(ctx context.Context, writer *storage.Writer) error

func (f actionFunc) Perform(ctx context.Context, writer *storage.Writer) error {
	return f(ctx, writer)
}

func newStartedDelegator(t *testing.T, s writeStarter) *OperatorDelegator {
	d := NewOperatorDelegator(s, 2)
	d.Start()
	t.Cleanup(d.Stop)
	return d
}

func TestOperatorDelegator_Process_Commits(t *testing.T) {
	tx := &fakeTx{}
	d := newStartedDelegator(t, &fakeStorage{tx: tx})

	performed := false
	err := d.Process(context.Background(), actionFunc(func(ctx context.Context, writer *storage.Writer) error {
		performed = true
		require.NotNil(t, writer)
		return nil
	}))

	require.NoError(t, err)
	assert.True(t, performed)
	assert.Equal(t, 1, tx.commits)
	assert.Equal(t, 0, tx.rollbacks)
}

func TestOperatorDelegator_Process_RollsBackOnError(t *testing.T) {
	tx := &fakeTx{}
	d := newStartedDelegator(t, &fakeStorage{tx: tx})
	actionErr := errors.New("category missing")

	err := d.Process(context.Background(), actionFunc(func(context.Context, *storage.Writer) error {
		return actionErr
	}))

	assert.ErrorIs(t, err, actionErr)
	assert.Equal(t, 0, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestOperatorDelegator_Process_RollsBackOnPanic(t *testing.T) {
	tx := &fakeTx{}
	d := newStartedDelegator(t, &fakeStorage{tx: tx})

	err := d.Process(context.Background(), actionFunc(func(context.Context, *storage.Writer) error {
		panic("nil category")
	}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil category")
	assert.Equal(t, 1, tx.rollbacks)

	// The worker survives and keeps serving.
	require.NoError(t, d.Process(context.Background(), actionFunc(func(context.Context, *storage.Writer) error {
		return nil
	})))
	assert.Equal(t, 1, tx.commits)
}

func TestOperatorDelegator_Process_WriteError(t *testing.T) {
	writeErr := errors.New("connection refused")
	d := newStartedDelegator(t, &fakeStorage{writeErr: writeErr})

	err := d.Process(context.Background(), actionFunc(func(context.Context, *storage.Writer) error {
		t.Fatal("action must not run without a transaction")
		return nil
	}))

	assert.ErrorIs(t, err, writeErr)
}

func TestOperatorDelegator_Process_CommitError(t *testing.T) {
	commitErr := errors.New("serialization failure")
	tx := &fakeTx{commitErr: commitErr}
	d := newStartedDelegator(t, &fakeStorage{tx: tx})

	err := d.Process(context.Background(), actionFunc(func(context.Context, *storage.Writer) error {
		return nil
	}))

	assert.ErrorIs(t, err, commitErr)
}

func TestOperatorDelegator_Process_ContextCanceled(t *testing.T) {
	tx := &fakeTx{}
	d := newStartedDelegator(t, &fakeStorage{tx: tx})

	release := make(chan struct{})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := d.Process(ctx, actionFunc(func(context.Context, *storage.Writer) error {
		<-release
		return nil
	}))
	close(release)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestOperatorDelegator_Process_AfterStop(t *testing.T) {
	d := NewOperatorDelegator(&fakeStorage{tx: &fakeTx{}}, 1)
	d.Start()
	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), actionFunc(func(context.Context, *storage.Writer) error {
		return nil
	}))

	assert.ErrorIs(t, err, ErrStopped)
}
