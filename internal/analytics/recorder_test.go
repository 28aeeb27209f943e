package analytics

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/mocks"
	"github.com/avc-dev/shortlink/internal/model"
)

type fakeSink struct {
	mu     sync.Mutex
	totals map[model.Code]int64
	calls  int
}

func newFakeSink() *fakeSink {
	return &fakeSink{totals: make(map[model.Code]int64)}
}

func (s *fakeSink) IncrementClicks(_ context.Context, deltas map[model.Code]int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	for code, d := range deltas {
		s.totals[code] += d
	}
	return nil
}

func (s *fakeSink) snapshot() map[model.Code]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[model.Code]int64, len(s.totals))
	for k, v := range s.totals {
		out[k] = v
	}
	return out
}

func TestRecorder_AggregatesAndFlushesOnClose(t *testing.T) {
	// Arrange
	sink := newFakeSink()
	r := NewRecorder(sink, RecorderConfig{QueueSize: 1000, FlushInterval: time.Hour, Workers: 3}, zap.NewNop())

	// Act
	for i := 0; i < 5; i++ {
		r.Record("a")
	}
	r.Record("b")
	r.Record("c")
	require.NoError(t, r.Close(context.Background()))

	// Assert
	assert.Equal(t, map[model.Code]int64{"a": 5, "b": 1, "c": 1}, sink.snapshot())
	assert.Zero(t, r.Dropped())
}

func TestRecorder_PeriodicFlush(t *testing.T) {
	sink := newFakeSink()
	r := NewRecorder(sink, RecorderConfig{FlushInterval: 10 * time.Millisecond}, zap.NewNop())
	t.Cleanup(func() { _ = r.Close(context.Background()) })

	r.Record("tick")

	assert.Eventually(t, func() bool {
		return sink.snapshot()["tick"] == 1
	}, time.Second, 5*time.Millisecond)
}

func TestRecorder_DropsWhenQueueIsFull(t *testing.T) {
	// Arrange: цикл агрегации не запущен, очередь никто не разбирает
	r := &Recorder{
		logger: zap.NewNop(),
		events: make(chan model.Code, 2),
		done:   make(chan struct{}),
	}

	// Act
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			r.Record("hot")
		}
	}()

	// Assert
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Record must not block")
	}
	assert.Equal(t, int64(98), r.Dropped())
	assert.Len(t, r.events, 2)
}

type blockingSink struct {
	*fakeSink
	started  chan struct{}
	release  chan struct{}
	once     sync.Once
	inFlight atomic.Int32
	maxSeen  atomic.Int32
}

func newBlockingSink() *blockingSink {
	return &blockingSink{
		fakeSink: newFakeSink(),
		started:  make(chan struct{}),
		release:  make(chan struct{}),
	}
}

func (s *blockingSink) IncrementClicks(ctx context.Context, deltas map[model.Code]int64) error {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		seen := s.maxSeen.Load()
		if n <= seen || s.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}

	s.once.Do(func() { close(s.started) })
	<-s.release

	return s.fakeSink.IncrementClicks(ctx, deltas)
}

func TestRecorder_KeepsDrainingWhileSinkIsBlocked(t *testing.T) {
	// Arrange: первый сброс зависает в sink
	sink := newBlockingSink()
	r := NewRecorder(sink, RecorderConfig{QueueSize: 2, FlushInterval: 5 * time.Millisecond, Workers: 1}, zap.NewNop())
	r.Record("warm")
	<-sink.started

	// Act: очередь на два события, но цикл агрегации продолжает её разбирать
	for i := 0; i < 100; i++ {
		r.Record("hot")
		require.Eventually(t, func() bool { return len(r.events) == 0 }, time.Second, time.Millisecond)
	}
	time.Sleep(30 * time.Millisecond)

	// Assert
	assert.Zero(t, r.Dropped())
	assert.Equal(t, int32(1), sink.maxSeen.Load(), "only one flush may be in flight")

	close(sink.release)
	require.NoError(t, r.Close(context.Background()))
	assert.Equal(t, map[model.Code]int64{"warm": 1, "hot": 100}, sink.snapshot())
}

func TestRecorder_SinkErrorIsSwallowed(t *testing.T) {
	sink := mocks.NewMockClickSink(t)
	sink.EXPECT().IncrementClicks(mock.Anything, map[model.Code]int64{"x": 2}).
		Return(errors.New("db down")).Once()

	r := NewRecorder(sink, RecorderConfig{Workers: 1, FlushInterval: time.Hour}, zap.NewNop())
	r.Record("x")
	r.Record("x")

	assert.NoError(t, r.Close(context.Background()))
}

func TestRecorder_RecordAfterCloseIsIgnored(t *testing.T) {
	sink := mocks.NewMockClickSink(t)
	r := NewRecorder(sink, RecorderConfig{}, zap.NewNop())
	require.NoError(t, r.Close(context.Background()))

	r.Record("late")

	assert.NoError(t, r.Close(context.Background()))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		pending    map[model.Code]int64
		workers    int
		wantShards int
	}{
		{name: "Fewer codes than workers", pending: map[model.Code]int64{"a": 1, "b": 2}, workers: 4, wantShards: 2},
		{name: "More codes than workers", pending: map[model.Code]int64{"a": 1, "b": 2, "c": 3, "d": 4, "e": 5}, workers: 2, wantShards: 2},
		{name: "Single worker", pending: map[model.Code]int64{"a": 1, "b": 2}, workers: 1, wantShards: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			shards := split(tt.pending, tt.workers)

			// Assert
			require.Len(t, shards, tt.wantShards)
			merged := make(map[model.Code]int64)
			for _, shard := range shards {
				assert.NotEmpty(t, shard)
				for code, d := range shard {
					merged[code] += d
				}
			}
			assert.Equal(t, tt.pending, merged)
		})
	}
}
