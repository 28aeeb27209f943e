package allocator

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/mocks"
	"github.com/avc-dev/shortlink/internal/model"
)

var errCounterDown = errors.New("counter store unavailable")

// fakeCounter потокобезопасный счётчик в памяти с управляемыми отказами
type fakeCounter struct {
	mu    sync.Mutex
	value int64
	calls int
	fail  func(call int) bool
}

func (f *fakeCounter) AllocateRange(_ context.Context, size int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.fail != nil && f.fail(f.calls) {
		return 0, errCounterDown
	}
	start := f.value
	f.value += size
	return start, nil
}

func (f *fakeCounter) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeLedger struct {
	mu       sync.Mutex
	ranges   []model.RangeAllocation
	statuses map[int64]model.RangeStatus
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{statuses: make(map[int64]model.RangeStatus)}
}

func (l *fakeLedger) RecordRange(_ context.Context, r model.RangeAllocation) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r.ID = int64(len(l.ranges) + 1)
	l.ranges = append(l.ranges, r)
	l.statuses[r.ID] = r.Status
	return r.ID, nil
}

func (l *fakeLedger) UpdateRangeStatus(_ context.Context, id int64, status model.RangeStatus) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.statuses[id] = status
	return nil
}

func (l *fakeLedger) Status(id int64) model.RangeStatus {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.statuses[id]
}

func newTestAllocator(t *testing.T, store CounterStore, ledger RangeLedger, cfg Config) *Allocator {
	t.Helper()

	if cfg.InstanceID == "" {
		cfg.InstanceID = "test-instance"
	}
	a, err := New(store, ledger, cfg, zap.NewNop())
	require.NoError(t, err)
	return a
}

func TestAllocator_ThresholdScenario(t *testing.T) {
	// Arrange
	ctx := context.Background()
	counter := &fakeCounter{}
	a := newTestAllocator(t, counter, nil, Config{RangeSize: 1000, Threshold: 100})
	require.NoError(t, a.Start(ctx))

	// Act & Assert: 0..900 выдаются без обращения к счётчику
	for want := int64(0); want <= 900; want++ {
		got, err := a.Next(ctx)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	assert.Equal(t, 1, counter.Calls(), "remaining == threshold must not trigger refill")

	// 901: остаток 99 < 100, резервируется следующий диапазон
	got, err := a.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(901), got)
	assert.Equal(t, 2, counter.Calls())

	snap := a.Snapshot()
	require.NotNil(t, snap.NextStart)
	assert.Equal(t, int64(1000), *snap.NextStart)
	assert.Equal(t, int64(1999), *snap.NextEnd)

	// Оставшиеся значения текущего диапазона выдаются без новых резервирований
	for want := int64(902); want <= 999; want++ {
		got, err := a.Next(ctx)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	assert.Equal(t, 2, counter.Calls(), "exactly one refill per threshold crossing")

	// После 999 текущим становится [1000, 1999]
	got, err = a.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), got)

	snap = a.Snapshot()
	assert.Equal(t, int64(1000), snap.Start)
	assert.Equal(t, int64(1999), snap.End)
	assert.Nil(t, snap.NextStart)
	assert.Equal(t, int64(1), snap.Refills)
}

func TestAllocator_ConcurrentNextIsUnique(t *testing.T) {
	// Arrange
	ctx := context.Background()
	counter := &fakeCounter{}
	a := newTestAllocator(t, counter, nil, Config{RangeSize: 100, Threshold: 10})
	require.NoError(t, a.Start(ctx))

	const (
		goroutines = 50
		perWorker  = 200
	)

	var (
		mu   sync.Mutex
		seen = make(map[int64]struct{}, goroutines*perWorker)
		wg   sync.WaitGroup
	)

	// Act
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				v, err := a.Next(ctx)
				if !assert.NoError(t, err) {
					return
				}
				mu.Lock()
				_, dup := seen[v]
				seen[v] = struct{}{}
				mu.Unlock()
				assert.False(t, dup, "value %d issued twice", v)
			}
		}()
	}
	wg.Wait()

	// Assert
	assert.Len(t, seen, goroutines*perWorker)
	for v := int64(0); v < goroutines*perWorker; v++ {
		_, ok := seen[v]
		require.True(t, ok, "value %d missing, ranges must be consumed without gaps", v)
	}
}

func TestAllocator_StartFailure(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := mocks.NewMockCounterStore(t)
	store.EXPECT().
		AllocateRange(mock.Anything, int64(1000)).
		Return(int64(0), errCounterDown).
		Once()

	a := newTestAllocator(t, store, nil, Config{RangeSize: 1000, Threshold: 100})

	// Act
	err := a.Start(ctx)

	// Assert
	require.ErrorIs(t, err, errCounterDown)
	assert.False(t, a.Ready())

	_, err = a.Next(ctx)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestAllocator_RefillFailureIsRetried(t *testing.T) {
	// Arrange
	ctx := context.Background()
	// Второе обращение (первое резервирование заранее) падает
	counter := &fakeCounter{fail: func(call int) bool { return call == 2 }}
	a := newTestAllocator(t, counter, nil, Config{RangeSize: 10, Threshold: 3})
	require.NoError(t, a.Start(ctx))

	// Act: 0..7 без резервирования, 8 запускает неудачное резервирование
	for want := int64(0); want <= 8; want++ {
		got, err := a.Next(ctx)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.Equal(t, 2, counter.Calls())
	assert.Nil(t, a.Snapshot().NextStart)

	// 9 повторяет резервирование
	got, err := a.Next(ctx)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, int64(9), got)
	assert.Equal(t, 3, counter.Calls())

	// Неудачная попытка ничего не заняла: следующий диапазон [10, 19]
	got, err = a.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got)
}

func TestAllocator_ExhaustedWhenRefillKeepsFailing(t *testing.T) {
	// Arrange
	ctx := context.Background()
	counter := &fakeCounter{fail: func(call int) bool { return call > 1 }}
	a := newTestAllocator(t, counter, nil, Config{RangeSize: 10, Threshold: 2})
	require.NoError(t, a.Start(ctx))

	issued := make(map[int64]struct{})
	for i := 0; i < 10; i++ {
		v, err := a.Next(ctx)
		require.NoError(t, err)
		issued[v] = struct{}{}
	}

	// Act
	_, err := a.Next(ctx)

	// Assert
	require.ErrorIs(t, err, ErrRangeExhausted)
	assert.ErrorIs(t, err, errCounterDown)
	assert.Len(t, issued, 10)
	assert.False(t, a.Ready())

	// Повторный вызов снова пытается зарезервировать диапазон, но не переиспользует значения
	_, err = a.Next(ctx)
	assert.ErrorIs(t, err, ErrRangeExhausted)
}

func TestAllocator_RecoversAfterExhaustion(t *testing.T) {
	// Arrange
	ctx := context.Background()
	down := true
	var mu sync.Mutex
	counter := &fakeCounter{fail: func(call int) bool {
		mu.Lock()
		defer mu.Unlock()
		return call > 1 && down
	}}
	a := newTestAllocator(t, counter, nil, Config{RangeSize: 5, Threshold: 1})
	require.NoError(t, a.Start(ctx))
	for i := 0; i < 5; i++ {
		_, err := a.Next(ctx)
		require.NoError(t, err)
	}
	_, err := a.Next(ctx)
	require.ErrorIs(t, err, ErrRangeExhausted)

	// Act
	mu.Lock()
	down = false
	mu.Unlock()
	got, err := a.Next(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(5), got)
	assert.True(t, a.Ready())
}

func TestAllocator_AsyncRefill(t *testing.T) {
	// Arrange
	ctx := context.Background()
	counter := &fakeCounter{}
	a := newTestAllocator(t, counter, nil, Config{RangeSize: 10, Threshold: 5, AsyncRefill: true})
	require.NoError(t, a.Start(ctx))

	// Act
	got := make([]int64, 0, 30)
	for i := 0; i < 30; i++ {
		v, err := a.Next(ctx)
		require.NoError(t, err)
		got = append(got, v)
	}
	require.NoError(t, a.Close(ctx))

	// Assert: одно резервирование в полёте, значения идут подряд
	for i, v := range got {
		assert.Equal(t, int64(i), v)
	}
	assert.GreaterOrEqual(t, counter.Calls(), 3)
}

func TestAllocator_LedgerStatuses(t *testing.T) {
	// Arrange
	ctx := context.Background()
	ledger := newFakeLedger()
	a := newTestAllocator(t, &fakeCounter{}, ledger, Config{
		InstanceID: "node-1",
		RangeSize:  10,
		Threshold:  0,
	})
	require.NoError(t, a.Start(ctx))

	// Act
	for i := 0; i < 15; i++ {
		_, err := a.Next(ctx)
		require.NoError(t, err)
	}
	require.NoError(t, a.Close(ctx))

	// Assert
	require.Len(t, ledger.ranges, 2)
	assert.Equal(t, "node-1", ledger.ranges[0].InstanceID)
	assert.Equal(t, int64(0), ledger.ranges[0].Start)
	assert.Equal(t, int64(9), ledger.ranges[0].End)
	assert.Equal(t, int64(10), ledger.ranges[1].Start)
	assert.Equal(t, model.RangeStatusExhausted, ledger.Status(1))
	assert.Equal(t, model.RangeStatusExpired, ledger.Status(2))

	_, err := a.Next(ctx)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestAllocator_CloseMarksPrefetchedRangeExpired(t *testing.T) {
	// Arrange
	ctx := context.Background()
	ledger := newFakeLedger()
	a := newTestAllocator(t, &fakeCounter{}, ledger, Config{RangeSize: 10, Threshold: 5})
	require.NoError(t, a.Start(ctx))
	for i := 0; i < 7; i++ {
		_, err := a.Next(ctx)
		require.NoError(t, err)
	}
	require.Len(t, ledger.ranges, 2)

	// Act
	require.NoError(t, a.Close(ctx))

	// Assert
	assert.Equal(t, model.RangeStatusExpired, ledger.Status(1))
	assert.Equal(t, model.RangeStatusExpired, ledger.Status(2))
	assert.False(t, a.Ready())
}

func TestAllocator_NegativeStartRejected(t *testing.T) {
	// Arrange
	store := mocks.NewMockCounterStore(t)
	store.EXPECT().
		AllocateRange(mock.Anything, int64(10)).
		Return(int64(-10), nil).
		Once()
	a := newTestAllocator(t, store, nil, Config{RangeSize: 10, Threshold: 1})

	// Act
	err := a.Start(context.Background())

	// Assert
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "Default", cfg: Config{RangeSize: 1000, Threshold: 100}},
		{name: "Zero threshold", cfg: Config{RangeSize: 1, Threshold: 0}},
		{name: "Threshold equals size", cfg: Config{RangeSize: 10, Threshold: 10}},
		{name: "Zero size", cfg: Config{RangeSize: 0}, wantErr: true},
		{name: "Negative threshold", cfg: Config{RangeSize: 10, Threshold: -1}, wantErr: true},
		{name: "Threshold above size", cfg: Config{RangeSize: 10, Threshold: 11}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}
