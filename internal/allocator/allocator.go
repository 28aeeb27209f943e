// Package allocator выдаёт уникальные числовые значения для коротких кодов.
//
// Экземпляр сервиса резервирует у глобального счётчика непрерывный диапазон
// [start, start+size) и раздаёт значения из него без обращения к хранилищу.
// Когда остаток диапазона опускается ниже порога, заранее резервируется
// следующий диапазон. Значения вне принадлежащего экземпляру диапазона
// никогда не выдаются, а неиспользованные хвосты не переиспользуются.
package allocator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/model"
)

var (
	// ErrRangeExhausted возвращается, когда диапазон исчерпан и новый зарезервировать не удалось
	ErrRangeExhausted = errors.New("range exhausted")
	// ErrNotInitialized возвращается до успешного Start
	ErrNotInitialized = errors.New("allocator not initialized")
	// ErrClosed возвращается после Close
	ErrClosed = errors.New("allocator closed")
	// ErrInvalidConfig неверные размер диапазона или порог
	ErrInvalidConfig = errors.New("invalid allocator config")
	// ErrInvalidRange хранилище вернуло некорректное начало диапазона
	ErrInvalidRange = errors.New("invalid range returned by counter store")

	errCursorOutOfRange = errors.New("cursor outside of owned range")
)

//go:generate mockery --name=CounterStore --dir=. --output=../mocks --outpkg=mocks --with-expecter

// CounterStore глобальный счётчик, общий для всех экземпляров сервиса
type CounterStore interface {
	// AllocateRange атомарно читает текущее значение счётчика, сохраняет
	// значение+size и возвращает прочитанное значение
	AllocateRange(ctx context.Context, size int64) (int64, error)
}

// RangeLedger журнал выданных диапазонов. Необязателен: ошибки журнала
// только логируются и не влияют на выдачу значений.
type RangeLedger interface {
	RecordRange(ctx context.Context, r model.RangeAllocation) (int64, error)
	UpdateRangeStatus(ctx context.Context, id int64, status model.RangeStatus) error
}

// Config параметры аллокатора
type Config struct {
	InstanceID string
	// RangeSize количество значений, резервируемых за одно обращение к счётчику
	RangeSize int64
	// Threshold остаток, при котором резервируется следующий диапазон
	Threshold int64
	// AsyncRefill резервировать следующий диапазон в фоне, не задерживая Next
	AsyncRefill bool
	// Timeout ограничение на одно обращение к счётчику и журналу
	Timeout time.Duration
}

// Validate проверяет параметры
func (c Config) Validate() error {
	if c.RangeSize <= 0 {
		return fmt.Errorf("%w: range size must be positive, got %d", ErrInvalidConfig, c.RangeSize)
	}
	if c.Threshold < 0 || c.Threshold > c.RangeSize {
		return fmt.Errorf("%w: threshold must be in [0, %d], got %d", ErrInvalidConfig, c.RangeSize, c.Threshold)
	}
	return nil
}

type block struct {
	id    int64
	start int64
	end   int64 // включительно
}

// Allocator выдаёт значения из зарезервированных диапазонов
type Allocator struct {
	store  CounterStore
	ledger RangeLedger
	cfg    Config
	logger *zap.Logger
	now    func() time.Time

	// mu защищает всю последовательность "прочитать курсор, сравнить с
	// порогом, при необходимости зарезервировать, увеличить курсор"
	mu       sync.Mutex
	current  *block
	cursor   int64
	next     *block
	inflight chan struct{} // не nil, пока идёт фоновое резервирование
	refills  int64
	closed   bool

	wg sync.WaitGroup
}

// New создаёт аллокатор. ledger может быть nil.
func New(store CounterStore, ledger RangeLedger, cfg Config, logger *zap.Logger) (*Allocator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}

	return &Allocator{
		store:  store,
		ledger: ledger,
		cfg:    cfg,
		logger: logger.With(zap.String("instance_id", cfg.InstanceID)),
		now:    time.Now,
	}, nil
}

// Start резервирует первый диапазон. Ошибка означает, что экземпляр не
// может выдавать коды и запускаться не должен.
func (a *Allocator) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return ErrClosed
	}
	if a.current != nil {
		return nil
	}

	b, err := a.reserve(ctx)
	if err != nil {
		return fmt.Errorf("failed to allocate initial range: %w", err)
	}

	a.current = b
	a.cursor = b.start
	a.logger.Info("initial range allocated",
		zap.Int64("start", b.start),
		zap.Int64("end", b.end),
	)
	return nil
}

// Next возвращает следующее уникальное значение
func (a *Allocator) Next(ctx context.Context) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for {
		if a.closed {
			return 0, ErrClosed
		}
		if a.current == nil {
			return 0, ErrNotInitialized
		}
		if a.cursor <= a.current.end {
			break
		}

		// Текущий диапазон израсходован
		if a.next != nil {
			a.promote()
			continue
		}

		if a.inflight != nil {
			// Дожидаемся фонового резервирования, чтобы не занять лишний диапазон
			ch := a.inflight
			a.mu.Unlock()
			select {
			case <-ch:
			case <-ctx.Done():
				a.mu.Lock()
				return 0, fmt.Errorf("%w: %w", ErrRangeExhausted, ctx.Err())
			}
			a.mu.Lock()
			continue
		}

		// Последняя попытка: синхронное резервирование
		b, err := a.reserve(ctx)
		if err != nil {
			a.logger.Error("range exhausted and refill failed", zap.Error(err))
			return 0, fmt.Errorf("%w: %w", ErrRangeExhausted, err)
		}
		a.next = b
		a.refills++
		a.promote()
	}

	v := a.cursor
	if v < a.current.start || v > a.current.end {
		a.logger.DPanic("allocator invariant violated",
			zap.Int64("cursor", v),
			zap.Int64("start", a.current.start),
			zap.Int64("end", a.current.end),
		)
		return 0, errCursorOutOfRange
	}

	remaining := a.current.end - v + 1
	if remaining < a.cfg.Threshold && a.next == nil && a.inflight == nil {
		a.refill(ctx)
	}

	a.cursor++
	return v, nil
}

// refill резервирует следующий диапазон. Вызывается под mu.
// Ошибка только логируется: попытка повторится на следующем вызове Next.
func (a *Allocator) refill(ctx context.Context) {
	if !a.cfg.AsyncRefill {
		b, err := a.reserve(ctx)
		if err != nil {
			a.logger.Warn("failed to prefetch next range", zap.Error(err))
			return
		}
		a.next = b
		a.refills++
		return
	}

	done := make(chan struct{})
	a.inflight = done
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		b, err := a.reserve(context.Background())

		a.mu.Lock()
		defer a.mu.Unlock()
		a.inflight = nil
		close(done)

		if err != nil {
			a.logger.Warn("failed to prefetch next range", zap.Error(err))
			return
		}
		if a.closed {
			// Диапазон уже не будет использован
			a.updateStatusAsync(b.id, model.RangeStatusExpired)
			return
		}
		a.next = b
		a.refills++
	}()
}

// promote делает следующий диапазон текущим. Вызывается под mu.
func (a *Allocator) promote() {
	old := a.current
	a.current = a.next
	a.next = nil
	a.cursor = a.current.start

	a.logger.Info("switched to next range",
		zap.Int64("previous_end", old.end),
		zap.Int64("start", a.current.start),
		zap.Int64("end", a.current.end),
	)
	a.updateStatusAsync(old.id, model.RangeStatusExhausted)
}

// reserve обращается к счётчику и записывает диапазон в журнал
func (a *Allocator) reserve(ctx context.Context) (*block, error) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	start, err := a.store.AllocateRange(ctx, a.cfg.RangeSize)
	if err != nil {
		return nil, err
	}
	if start < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRange, start)
	}

	b := &block{start: start, end: start + a.cfg.RangeSize - 1}
	if a.ledger == nil {
		return b, nil
	}

	id, err := a.ledger.RecordRange(ctx, model.RangeAllocation{
		InstanceID:  a.cfg.InstanceID,
		Start:       b.start,
		End:         b.end,
		AllocatedAt: a.now(),
		Status:      model.RangeStatusActive,
	})
	if err != nil {
		a.logger.Warn("failed to record range allocation",
			zap.Int64("start", b.start),
			zap.Error(err),
		)
		return b, nil
	}
	b.id = id
	return b, nil
}

func (a *Allocator) updateStatusAsync(id int64, status model.RangeStatus) {
	if a.ledger == nil || id == 0 {
		return
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Timeout)
		defer cancel()
		a.updateStatus(ctx, id, status)
	}()
}

func (a *Allocator) updateStatus(ctx context.Context, id int64, status model.RangeStatus) {
	if a.ledger == nil || id == 0 {
		return
	}
	if err := a.ledger.UpdateRangeStatus(ctx, id, status); err != nil {
		a.logger.Warn("failed to update range status",
			zap.Int64("range_id", id),
			zap.String("status", string(status)),
			zap.Error(err),
		)
	}
}

// Ready сообщает, может ли аллокатор выдать значение без обращения к счётчику
func (a *Allocator) Ready() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed || a.current == nil {
		return false
	}
	return a.cursor <= a.current.end || a.next != nil
}

// Snapshot возвращает текущее состояние
func (a *Allocator) Snapshot() model.RangeSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := model.RangeSnapshot{InstanceID: a.cfg.InstanceID, Refills: a.refills}
	if a.current == nil {
		return s
	}

	s.Start = a.current.start
	s.Cursor = a.cursor
	s.End = a.current.end
	if a.cursor <= a.current.end {
		s.Remaining = a.current.end - a.cursor + 1
	}
	if a.next != nil {
		start, end := a.next.start, a.next.end
		s.NextStart = &start
		s.NextEnd = &end
	}
	s.Ready = !a.closed && (s.Remaining > 0 || a.next != nil)
	return s
}

// Close останавливает выдачу значений и помечает удерживаемые диапазоны
// в журнале. Неизрасходованные хвосты теряются.
func (a *Allocator) Close(ctx context.Context) error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	a.mu.Unlock()

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return fmt.Errorf("failed to wait for pending range operations: %w", ctx.Err())
	}

	a.mu.Lock()
	current, cursor, next := a.current, a.cursor, a.next
	a.mu.Unlock()

	if current != nil {
		status := model.RangeStatusExpired
		if cursor > current.end {
			status = model.RangeStatusExhausted
		}
		a.updateStatus(ctx, current.id, status)
		a.logger.Info("allocator closed",
			zap.Int64("cursor", cursor),
			zap.Int64("end", current.end),
		)
	}
	if next != nil {
		a.updateStatus(ctx, next.id, model.RangeStatusExpired)
	}
	return nil
}
