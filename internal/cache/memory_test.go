package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avc-dev/shortlink/internal/model"
)

func TestMemory_GetSet(t *testing.T) {
	tests := []struct {
		name   string
		set    bool
		ttl    time.Duration
		wait   time.Duration
		wantOK bool
	}{
		{name: "Miss", set: false, wantOK: false},
		{name: "Hit with default ttl", set: true, ttl: 0, wantOK: true},
		{name: "Hit before expiry", set: true, ttl: time.Minute, wantOK: true},
		{name: "Expired", set: true, ttl: 10 * time.Millisecond, wait: 30 * time.Millisecond, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctx := context.Background()
			c := NewMemory(time.Hour, time.Minute)
			if tt.set {
				c.Set(ctx, "abc", "https://example.com", tt.ttl)
			}
			time.Sleep(tt.wait)

			// Act
			got, ok := c.Get(ctx, "abc")

			// Assert
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, model.URL("https://example.com"), got)
			}
		})
	}
}

func TestMemory_Delete(t *testing.T) {
	// Arrange
	ctx := context.Background()
	c := NewMemory(time.Hour, time.Minute)
	c.Set(ctx, "a", "https://a.example", 0)
	c.Set(ctx, "b", "https://b.example", 0)
	c.Set(ctx, "keep", "https://keep.example", 0)

	// Act
	c.Delete(ctx, []model.Code{"a", "b", "unknown"})

	// Assert
	_, ok := c.Get(ctx, "a")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "b")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "keep")
	assert.True(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestNop(t *testing.T) {
	ctx := context.Background()
	var c Nop

	c.Set(ctx, "abc", "https://example.com", time.Hour)
	_, ok := c.Get(ctx, "abc")

	assert.False(t, ok)
	c.Delete(ctx, []model.Code{"abc"})
}
