package pricecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"coinCache/internal/domain"
)

// Get — проверяет хранилище; свежую запись отдаёт без похода в источник, иначе делает refresh.
// Таблица решений: нет записи — fetch+upsert; запись свежая — отдать; запись протухла — refresh,
// при падении источника отдать протухшее (если разрешено конфигом) или ErrUpstreamUnavailable.
func (u *UseCase) Get(ctx context.Context, assetID string, kind domain.Kind) (*domain.CachedPrice, error) {
	if strings.TrimSpace(assetID) == "" {
		return nil, domain.ErrEmptyAsset
	}
	if _, err := domain.ParseKind(string(kind)); err != nil {
		return nil, err
	}

	ent, err := u.store.Find(ctx, assetID, kind)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("store find: %w", err)
	}

	if ent != nil && !ent.Expired(time.Now()) {
		u.log.Debug("cache hit", "asset", assetID, "kind", kind)
		cacheHits.WithLabelValues(string(kind)).Inc()
		return &domain.CachedPrice{Entry: *ent, Hit: true}, nil
	}

	// Промах или протухло. Конкурентные refresh по одному ключу схлопываются в один запрос к источнику.
	v, err, _ := u.sf.Do(flightKey(assetID, kind), func() (any, error) {
		return u.refresh(ctx, assetID, kind)
	})
	if err != nil {
		if ent != nil && u.serveStale {
			// Деградация: источник упал, но протухшее значение есть. ExpiresAt не трогаем.
			u.log.Warn("upstream failed, serving stale", "asset", assetID, "kind", kind, "error", err)
			cacheStaleServes.WithLabelValues(string(kind)).Inc()
			return &domain.CachedPrice{Entry: *ent, Hit: true, Stale: true}, nil
		}
		return nil, err
	}

	fresh := v.(*domain.Entry)
	return &domain.CachedPrice{Entry: *fresh}, nil
}

// refresh идёт в источник, сохраняет результат с новым expiresAt и публикует событие обновления.
func (u *UseCase) refresh(ctx context.Context, assetID string, kind domain.Kind) (*domain.Entry, error) {
	cacheRefreshes.WithLabelValues(string(kind)).Inc()
	payload, err := u.source.Fetch(ctx, assetID, kind)
	if err != nil {
		cacheUpstreamErrors.WithLabelValues(string(kind)).Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	now := time.Now()
	ent := domain.Entry{
		AssetID:   assetID,
		Kind:      kind,
		Payload:   payload,
		FetchedAt: now,
		ExpiresAt: now.Add(u.ttl(kind)),
	}
	if err := u.store.Upsert(ctx, ent); err != nil {
		return nil, fmt.Errorf("store upsert: %w", err)
	}
	u.log.Info("entry refreshed", "asset", assetID, "kind", kind, "expires_at", ent.ExpiresAt)

	u.publish(ctx, ent)
	return &ent, nil
}

// publish отправляет событие обновления в брокер. Отказ брокера не валит запрос.
func (u *UseCase) publish(ctx context.Context, ent domain.Entry) {
	if u.broker == nil {
		return
	}
	upd := domain.PriceUpdate{
		AssetID:     ent.AssetID,
		Kind:        ent.Kind,
		FetchedAt:   ent.FetchedAt,
		ExpiresAt:   ent.ExpiresAt,
		PayloadSize: len(ent.Payload),
	}
	value, err := json.Marshal(upd)
	if err != nil {
		u.log.Warn("marshal price update", "error", err)
		return
	}
	key := flightKey(ent.AssetID, ent.Kind)
	if err := u.broker.Send(ctx, []byte(key), value); err != nil {
		u.log.Warn("broker send", "key", key, "error", err)
	} else {
		u.log.Info("price update published", "key", key)
	}
}

// Invalidate удаляет запись по ключу. Отсутствие записи — не ошибка.
func (u *UseCase) Invalidate(ctx context.Context, assetID string, kind domain.Kind) error {
	if strings.TrimSpace(assetID) == "" {
		return domain.ErrEmptyAsset
	}
	if _, err := domain.ParseKind(string(kind)); err != nil {
		return err
	}
	if err := u.store.Delete(ctx, assetID, kind); err != nil {
		return fmt.Errorf("store delete: %w", err)
	}
	u.log.Info("entry invalidated", "asset", assetID, "kind", kind)
	return nil
}

// PurgeExpired удаляет все записи с expiresAt < now и возвращает количество удалённых.
func (u *UseCase) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	removed, err := u.store.DeleteExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("store delete expired: %w", err)
	}
	if removed > 0 {
		u.log.Info("expired entries purged", "removed", removed)
	}
	return removed, nil
}

// HandlePriceEvent вызывается консьюмером при получении события из топика (часть IPriceCacheUseCase).
func (u *UseCase) HandlePriceEvent(ctx context.Context, upd domain.PriceUpdate) error {
	if err := u.analytics.WriteUpdate(ctx, upd); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("price update stored to click", "asset", upd.AssetID, "kind", upd.Kind)
	return nil
}
