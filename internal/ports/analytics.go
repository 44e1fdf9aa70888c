package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"coinCache/internal/domain"
)

// IPriceAnalytics — запись обновлений цен в хранилище для аналитики (например, ClickHouse).
type IPriceAnalytics interface {
	WriteUpdate(ctx context.Context, upd domain.PriceUpdate) error
}
