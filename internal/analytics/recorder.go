// Package analytics учитывает переходы по коротким кодам вне пути редиректа.
package analytics

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/model"
)

//go:generate mockery --name=ClickSink --dir=. --output=../mocks --outpkg=mocks --with-expecter

// ClickSink принимает накопленные приращения счётчиков переходов
type ClickSink interface {
	IncrementClicks(ctx context.Context, deltas map[model.Code]int64) error
}

// RecorderConfig параметры агрегации переходов
type RecorderConfig struct {
	QueueSize     int
	FlushInterval time.Duration
	Workers       int
	FlushTimeout  time.Duration
}

// Recorder собирает переходы в ограниченную очередь, агрегирует их по
// коду и периодически сбрасывает в ClickSink. Сброс идёт в отдельной
// горутине, очередь продолжает разбираться, пока sink занят.
//
// Record никогда не блокирует вызывающего: при переполненной очереди
// событие отбрасывается.
type Recorder struct {
	sink   ClickSink
	cfg    RecorderConfig
	logger *zap.Logger

	events  chan model.Code
	done    chan struct{}
	stopped chan struct{}

	closeOnce sync.Once
	dropped   atomic.Int64
}

// NewRecorder создаёт Recorder и запускает цикл агрегации
func NewRecorder(sink ClickSink, cfg RecorderConfig, logger *zap.Logger) *Recorder {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1024
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.FlushTimeout <= 0 {
		cfg.FlushTimeout = 5 * time.Second
	}

	r := &Recorder{
		sink:    sink,
		cfg:     cfg,
		logger:  logger,
		events:  make(chan model.Code, cfg.QueueSize),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	go r.run()

	return r
}

// Record ставит переход в очередь
func (r *Recorder) Record(code model.Code) {
	select {
	case <-r.done:
		return
	default:
	}

	select {
	case r.events <- code:
	default:
		if n := r.dropped.Add(1); n == 1 || n%1000 == 0 {
			r.logger.Warn("click queue is full, dropping events",
				zap.String("code", string(code)),
				zap.Int64("dropped_total", n),
			)
		}
	}
}

// Dropped возвращает количество отброшенных событий
func (r *Recorder) Dropped() int64 {
	return r.dropped.Load()
}

// Close останавливает приём событий и сбрасывает накопленное
func (r *Recorder) Close(ctx context.Context) error {
	r.closeOnce.Do(func() {
		close(r.done)
	})

	select {
	case <-r.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Recorder) run() {
	defer close(r.stopped)

	ticker := time.NewTicker(r.cfg.FlushInterval)
	defer ticker.Stop()

	pending := make(map[model.Code]int64)

	// flushed не nil, пока идёт сброс; одновременно выполняется не больше одного
	var flushed chan struct{}

	for {
		select {
		case code := <-r.events:
			pending[code]++
		case <-flushed:
			flushed = nil
		case <-ticker.C:
			if len(pending) == 0 || flushed != nil {
				continue
			}
			flushed = make(chan struct{})
			go func(batch map[model.Code]int64, finished chan struct{}) {
				defer close(finished)
				r.flush(batch)
			}(pending, flushed)
			pending = make(map[model.Code]int64)
		case <-r.done:
			if flushed != nil {
				<-flushed
			}
			r.drain(pending)
			if len(pending) > 0 {
				r.flush(pending)
			}
			return
		}
	}
}

func (r *Recorder) drain(pending map[model.Code]int64) {
	for {
		select {
		case code := <-r.events:
			pending[code]++
		default:
			return
		}
	}
}

// flush раскладывает приращения по воркерам и собирает ошибки через fan-in
func (r *Recorder) flush(pending map[model.Code]int64) {
	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.FlushTimeout)
	defer cancel()

	shards := split(pending, r.cfg.Workers)

	errCh := make(chan error, len(shards))
	var wg sync.WaitGroup
	for _, shard := range shards {
		wg.Add(1)
		go func(deltas map[model.Code]int64) {
			defer wg.Done()
			if err := r.sink.IncrementClicks(ctx, deltas); err != nil {
				errCh <- err
			}
		}(shard)
	}
	wg.Wait()
	close(errCh)

	var errs []error
	for err := range errCh {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		r.logger.Warn("failed to flush clicks", zap.Int("codes", len(pending)), zap.Error(err))
		return
	}

	r.logger.Debug("clicks flushed", zap.Int("codes", len(pending)))
}

// split делит map на не более чем n непустых частей
func split(pending map[model.Code]int64, n int) []map[model.Code]int64 {
	if n > len(pending) {
		n = len(pending)
	}

	shards := make([]map[model.Code]int64, n)
	for i := range shards {
		shards[i] = make(map[model.Code]int64)
	}

	i := 0
	for code, delta := range pending {
		shards[i%n][code] = delta
		i++
	}

	return shards
}
