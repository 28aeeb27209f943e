// Package cache кэширует соответствие код -> URL для редиректов.
//
// Значения неизменяемы, поэтому гонки заполнения безопасны: побеждает
// последняя запись. Ошибки кэша логируются и трактуются как промах.
package cache

import (
	"context"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
)

// Nop кэш, который ничего не хранит
type Nop struct{}

func (Nop) Get(context.Context, model.Code) (model.URL, bool) { return "", false }
func (Nop) Set(context.Context, model.Code, model.URL, time.Duration) {}
func (Nop) Delete(context.Context, []model.Code) {}
