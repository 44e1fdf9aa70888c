package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"coinCache/internal/domain"
	"coinCache/internal/ports"
)

var _ ports.IEntryStore = (*EntryStore)(nil)

// entryValue — JSON-представление записи в Redis.
type entryValue struct {
	Payload   json.RawMessage `json:"payload"`
	FetchedAt time.Time       `json:"fetched_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// EntryStore реализует ports.IEntryStore через Redis. Ключ — "price:{assetId}:{kind}".
// Серверный TTL не ставим: протухшая запись должна жить до явной чистки, чтобы было
// что отдать при деградации источника.
type EntryStore struct {
	cli *Client
	log *slog.Logger
}

// NewEntryStore возвращает хранилище записей кэша поверх Redis.
func NewEntryStore(cli *Client, log *slog.Logger) *EntryStore {
	return &EntryStore{cli: cli, log: log}
}

// entryKey формирует ключ записи, например "price:bitcoin:market".
func entryKey(assetID string, kind domain.Kind) string {
	return fmt.Sprintf("price:%s:%s", assetID, kind)
}

// Upsert перезаписывает запись по ключу (SET — атомарный last-writer-wins).
func (s *EntryStore) Upsert(ctx context.Context, e domain.Entry) error {
	b, err := json.Marshal(entryValue{Payload: e.Payload, FetchedAt: e.FetchedAt, ExpiresAt: e.ExpiresAt})
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	if err := s.cli.Set(ctx, entryKey(e.AssetID, e.Kind), b, 0).Err(); err != nil {
		s.log.Debug("store set failed", "asset", e.AssetID, "kind", e.Kind, "error", err)
		return err
	}
	return nil
}

// Find возвращает запись по ключу или domain.ErrNotFound.
func (s *EntryStore) Find(ctx context.Context, assetID string, kind domain.Kind) (*domain.Entry, error) {
	b, err := s.cli.Get(ctx, entryKey(assetID, kind)).Bytes()
	if err != nil {
		if err == redis.Nil { // ключа нет
			return nil, domain.ErrNotFound
		}
		s.log.Debug("store get failed", "asset", assetID, "kind", kind, "error", err)
		return nil, err
	}
	var v entryValue
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("unmarshal entry: %w", err)
	}
	return &domain.Entry{
		AssetID:   assetID,
		Kind:      kind,
		Payload:   v.Payload,
		FetchedAt: v.FetchedAt,
		ExpiresAt: v.ExpiresAt,
	}, nil
}

// Delete удаляет запись. Отсутствие ключа — не ошибка (DEL идемпотентен).
func (s *EntryStore) Delete(ctx context.Context, assetID string, kind domain.Kind) error {
	return s.cli.Del(ctx, entryKey(assetID, kind)).Err()
}

// DeleteExpired сканирует ключи price:* и удаляет записи с expiresAt < now.
func (s *EntryStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	var removed int64
	iter := s.cli.Scan(ctx, 0, "price:*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		b, err := s.cli.Get(ctx, key).Bytes()
		if err != nil {
			continue // ключ мог исчезнуть между SCAN и GET
		}
		var v entryValue
		if err := json.Unmarshal(b, &v); err != nil {
			s.log.Warn("skip malformed entry", "key", key, "error", err)
			continue
		}
		if v.ExpiresAt.Before(now) {
			if err := s.cli.Del(ctx, key).Err(); err == nil {
				removed++
			}
		}
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("scan: %w", err)
	}
	return removed, nil
}

// Ping проверяет доступность Redis (readiness).
func (s *EntryStore) Ping(ctx context.Context) error {
	return s.cli.Ping(ctx)
}
