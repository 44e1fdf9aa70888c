package pricecache

import (
	"context"
	"time"
)

// RunSweep периодически чистит протухшие записи. Блокируется до отмены ctx.
// Lazy-проверка в Get корректна и без свипера, он только не даёт мусору накапливаться.
func (u *UseCase) RunSweep(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := u.PurgeExpired(ctx, time.Now()); err != nil {
				u.log.Warn("sweep failed", "error", err)
			}
		}
	}
}
