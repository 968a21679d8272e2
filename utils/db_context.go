package utils

import (
	"context"
	"time"
)

// FastQueryTimeout bounds single count queries.
const FastQueryTimeout = 10 * time.Second

// SlowQueryTimeout bounds the grouped coverage query.
const SlowQueryTimeout = 60 * time.Second

// QueryContext derives a query deadline from parent. A nil parent means
// context.Background.
func QueryContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}
