package store

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avc-dev/shortlink/internal/model"
)

// registry общее поведение реализаций реестра кодов
type registry interface {
	Put(ctx context.Context, entries []model.Entry) error
	Get(ctx context.Context, code model.Code) (model.Entry, error)
	Exists(ctx context.Context, code model.Code) (bool, error)
	Deactivate(ctx context.Context, code model.Code, owner string) ([]model.Code, error)
	IncrementClicks(ctx context.Context, deltas map[model.Code]int64) error
	ListByOwner(ctx context.Context, owner string) ([]model.Entry, error)
}

type counter interface {
	AllocateRange(ctx context.Context, size int64) (int64, error)
}

type ledger interface {
	RecordRange(ctx context.Context, r model.RangeAllocation) (int64, error)
	UpdateRangeStatus(ctx context.Context, id int64, status model.RangeStatus) error
}

var testCreatedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func generated(code, url, owner string) model.Entry {
	return model.Entry{
		Code:      model.Code(code),
		TargetURL: model.URL(url),
		Owner:     owner,
		Kind:      model.EntryKindGenerated,
		CreatedAt: testCreatedAt,
	}
}

func alias(code, parent, url, owner string) model.Entry {
	return model.Entry{
		Code:       model.Code(code),
		TargetURL:  model.URL(url),
		Owner:      owner,
		Kind:       model.EntryKindAlias,
		ParentCode: model.Code(parent),
		CreatedAt:  testCreatedAt.Add(time.Second),
	}
}

// runRegistryContract проверяет реализацию реестра; newRegistry должен
// возвращать пустое хранилище
func runRegistryContract(t *testing.T, newRegistry func(t *testing.T) registry) {
	t.Run("put and get", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		r := newRegistry(t)
		expires := testCreatedAt.Add(time.Hour)
		entry := generated("g8", "https://example.com/path?q=1", "user-1")
		entry.ExpiresAt = &expires

		// Act
		require.NoError(t, r.Put(ctx, []model.Entry{entry}))
		got, err := r.Get(ctx, "g8")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, model.Code("g8"), got.Code)
		assert.Equal(t, model.URL("https://example.com/path?q=1"), got.TargetURL)
		assert.Equal(t, "user-1", got.Owner)
		assert.Equal(t, model.EntryKindGenerated, got.Kind)
		assert.True(t, got.Active)
		assert.True(t, testCreatedAt.Equal(got.CreatedAt))
		require.NotNil(t, got.ExpiresAt)
		assert.True(t, expires.Equal(*got.ExpiresAt))
	})

	t.Run("get unknown code", func(t *testing.T) {
		r := newRegistry(t)

		_, err := r.Get(context.Background(), "missing")

		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("duplicate code conflicts", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		r := newRegistry(t)
		require.NoError(t, r.Put(ctx, []model.Entry{generated("abc", "https://a.example", "")}))

		// Act
		err := r.Put(ctx, []model.Entry{generated("abc", "https://b.example", "")})

		// Assert
		var conflict *model.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, model.Code("abc"), conflict.Code)
		assert.ErrorIs(t, err, model.ErrAlreadyExists)

		got, err := r.Get(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, model.URL("https://a.example"), got.TargetURL)
	})

	t.Run("put is all or nothing", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		r := newRegistry(t)
		require.NoError(t, r.Put(ctx, []model.Entry{generated("taken", "https://a.example", "user-1")}))

		// Act: базовый код свободен, алиас занят
		err := r.Put(ctx, []model.Entry{
			generated("b1", "https://b.example", "user-2"),
			alias("taken", "b1", "https://b.example", "user-2"),
		})

		// Assert
		var conflict *model.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, model.Code("taken"), conflict.Code)

		exists, err := r.Exists(ctx, "b1")
		require.NoError(t, err)
		assert.False(t, exists, "base entry must not be left behind")
	})

	t.Run("exists", func(t *testing.T) {
		ctx := context.Background()
		r := newRegistry(t)
		require.NoError(t, r.Put(ctx, []model.Entry{generated("x1", "https://x.example", "")}))

		tests := []struct {
			code model.Code
			want bool
		}{
			{code: "x1", want: true},
			{code: "x2", want: false},
			{code: "X1", want: false},
		}
		for _, tt := range tests {
			got, err := r.Exists(ctx, tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "code %s", tt.code)
		}
	})

	t.Run("deactivate cascades to aliases", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		r := newRegistry(t)
		require.NoError(t, r.Put(ctx, []model.Entry{
			generated("base", "https://example.com", "owner"),
			alias("my-link", "base", "https://example.com", "owner"),
		}))
		require.NoError(t, r.Put(ctx, []model.Entry{alias("second", "base", "https://example.com", "owner")}))

		// Act
		codes, err := r.Deactivate(ctx, "base", "owner")

		// Assert
		require.NoError(t, err)
		sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
		assert.Equal(t, []model.Code{"base", "my-link", "second"}, codes)

		for _, c := range codes {
			_, err := r.Get(ctx, c)
			assert.ErrorIs(t, err, model.ErrNotFound)
		}

		// Освободившийся код можно занять снова
		require.NoError(t, r.Put(ctx, []model.Entry{generated("my-link", "https://other.example", "")}))
	})

	t.Run("deactivate alias only", func(t *testing.T) {
		ctx := context.Background()
		r := newRegistry(t)
		require.NoError(t, r.Put(ctx, []model.Entry{
			generated("base", "https://example.com", "owner"),
			alias("nick", "base", "https://example.com", "owner"),
		}))

		codes, err := r.Deactivate(ctx, "nick", "owner")

		require.NoError(t, err)
		assert.Equal(t, []model.Code{"nick"}, codes)
		_, err = r.Get(ctx, "base")
		assert.NoError(t, err)
	})

	t.Run("deactivate errors", func(t *testing.T) {
		ctx := context.Background()
		r := newRegistry(t)
		require.NoError(t, r.Put(ctx, []model.Entry{
			generated("mine", "https://example.com", "owner"),
			generated("anon", "https://example.com", ""),
		}))

		tests := []struct {
			name  string
			code  model.Code
			owner string
			want  error
		}{
			{name: "unknown code", code: "none", owner: "owner", want: model.ErrNotFound},
			{name: "other owner", code: "mine", owner: "intruder", want: model.ErrNotAuthorized},
			{name: "anonymous entry", code: "anon", owner: "owner", want: model.ErrNotAuthorized},
			{name: "anonymous caller", code: "anon", owner: "", want: model.ErrNotAuthorized},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := r.Deactivate(ctx, tt.code, tt.owner)
				assert.ErrorIs(t, err, tt.want)
			})
		}

		exists, err := r.Exists(ctx, "mine")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("increment clicks", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		r := newRegistry(t)
		require.NoError(t, r.Put(ctx, []model.Entry{
			generated("c1", "https://example.com", ""),
			generated("c2", "https://example.com", ""),
		}))

		// Act
		require.NoError(t, r.IncrementClicks(ctx, map[model.Code]int64{"c1": 3, "c2": 1, "unknown": 5}))
		require.NoError(t, r.IncrementClicks(ctx, map[model.Code]int64{"c1": 2}))

		// Assert
		c1, err := r.Get(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, int64(5), c1.ClickCount)

		c2, err := r.Get(ctx, "c2")
		require.NoError(t, err)
		assert.Equal(t, int64(1), c2.ClickCount)
	})

	t.Run("list by owner includes inactive", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		r := newRegistry(t)
		require.NoError(t, r.Put(ctx, []model.Entry{
			generated("a1", "https://a.example", "owner"),
			alias("a1-alias", "a1", "https://a.example", "owner"),
		}))
		second := generated("b2", "https://b.example", "owner")
		second.CreatedAt = testCreatedAt.Add(time.Minute)
		require.NoError(t, r.Put(ctx, []model.Entry{second}))
		require.NoError(t, r.Put(ctx, []model.Entry{generated("z9", "https://z.example", "someone-else")}))
		_, err := r.Deactivate(ctx, "b2", "owner")
		require.NoError(t, err)

		// Act
		entries, err := r.ListByOwner(ctx, "owner")

		// Assert
		require.NoError(t, err)
		require.Len(t, entries, 3)
		byCode := make(map[model.Code]model.Entry)
		for _, e := range entries {
			byCode[e.Code] = e
		}
		assert.True(t, byCode["a1"].Active)
		assert.True(t, byCode["a1-alias"].Active)
		assert.Equal(t, model.Code("a1"), byCode["a1-alias"].ParentCode)
		assert.False(t, byCode["b2"].Active)

		empty, err := r.ListByOwner(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}

// runCounterContract проверяет, что параллельные резервирования дают
// попарно непересекающиеся диапазоны, покрывающие префикс без дыр
func runCounterContract(t *testing.T, c counter) {
	const (
		workers   = 8
		perWorker = 25
		size      = int64(100)
	)

	ctx := context.Background()

	var (
		mu     sync.Mutex
		starts []int64
		wg     sync.WaitGroup
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				start, err := c.AllocateRange(ctx, size)
				if !assert.NoError(t, err) {
					return
				}
				mu.Lock()
				starts = append(starts, start)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, starts, workers*perWorker)
	sort.Slice(starts, func(i, j int) bool { return starts[i] < starts[j] })
	for i, start := range starts {
		assert.Equal(t, int64(i)*size, start, "ranges must be disjoint and contiguous")
	}

	_, err := c.AllocateRange(ctx, 0)
	assert.Error(t, err)
}

func runLedgerContract(t *testing.T, l ledger) {
	ctx := context.Background()

	id, err := l.RecordRange(ctx, model.RangeAllocation{
		InstanceID:  "node-a",
		Start:       1000,
		End:         1999,
		AllocatedAt: testCreatedAt,
		Status:      model.RangeStatusActive,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	second, err := l.RecordRange(ctx, model.RangeAllocation{
		InstanceID:  "node-a",
		Start:       2000,
		End:         2999,
		AllocatedAt: testCreatedAt,
		Status:      model.RangeStatusActive,
	})
	require.NoError(t, err)
	assert.NotEqual(t, id, second)

	assert.NoError(t, l.UpdateRangeStatus(ctx, id, model.RangeStatusExhausted))
	assert.NoError(t, l.UpdateRangeStatus(ctx, second, model.RangeStatusExpired))
	assert.ErrorIs(t, l.UpdateRangeStatus(ctx, 999999, model.RangeStatusExpired), model.ErrNotFound)
}
