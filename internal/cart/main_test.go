package cart_test

import (
	"context"
	"sync"
	"testing"

	"github.com/joeynweke/restaurant-dashboard/internal/port"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeKV struct {
	mu     sync.Mutex
	values map[string][]byte
	puts    int
	deletes int
	getErr  error
	putErr  error
	delErr  error
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: make(map[string][]byte)}
}

func (f *fakeKV) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}

	value, ok := f.values[key]
	if !ok {
		return nil, port.ErrNotFound
	}

	return value, nil
}

func (f *fakeKV) Put(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.puts++
	if f.putErr != nil {
		return f.putErr
	}

	f.values[key] = value

	return nil
}

func (f *fakeKV) Delete(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deletes++
	if f.delErr != nil {
		return false, f.delErr
	}

	_, ok := f.values[key]
	delete(f.values, key)

	return ok, nil
}

func (f *fakeKV) putCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.puts
}

func (f *fakeKV) deleteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deletes
}
