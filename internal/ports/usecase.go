package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"
	"time"

	"coinCache/internal/domain"
)

// IPriceCacheUseCase — контракт бизнес-логики кэша цен (выдача, инвалидация, чистка, обработка событий из Kafka).
type IPriceCacheUseCase interface {
	Get(ctx context.Context, assetID string, kind domain.Kind) (*domain.CachedPrice, error)
	Invalidate(ctx context.Context, assetID string, kind domain.Kind) error
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
	HandlePriceEvent(ctx context.Context, upd domain.PriceUpdate) error
}
