package ports

//go:generate mockgen -source=source.go -destination=../mocks/source_mock.go -package=mocks

import (
	"context"
	"encoding/json"

	"coinCache/internal/domain"
)

// IPriceSource — контракт источника цен (например, CoinGecko). Возвращает тело ответа как есть.
// Источник может быть rate-limited: кэш прикрывает его от повторных запросов через TTL.
type IPriceSource interface {
	Fetch(ctx context.Context, assetID string, kind domain.Kind) (json.RawMessage, error)
}
