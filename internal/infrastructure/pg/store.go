package pg

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"coinCache/internal/domain"
)

const createPriceCacheTable = `
CREATE TABLE IF NOT EXISTS price_cache (
	asset_id   VARCHAR(128) NOT NULL,
	data_type  VARCHAR(16) NOT NULL,
	payload    JSONB NOT NULL,
	fetched_at TIMESTAMPTZ NOT NULL,
	expires_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (asset_id, data_type)
);
`

// Migrate создаёт таблицу price_cache, если её ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.ExecContext(ctx, createPriceCacheTable)
	return err
}

// EntryStore реализует ports.IEntryStore для PostgreSQL.
type EntryStore struct {
	db  *DB
	log *slog.Logger
}

// NewEntryStore возвращает хранилище записей кэша.
func NewEntryStore(db *DB, log *slog.Logger) *EntryStore {
	return &EntryStore{db: db, log: log}
}

// Upsert вставляет или перезаписывает запись (ON CONFLICT по первичному ключу).
func (s *EntryStore) Upsert(ctx context.Context, e domain.Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO price_cache (asset_id, data_type, payload, fetched_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (asset_id, data_type)
		 DO UPDATE SET payload = $3, fetched_at = $4, expires_at = $5`,
		e.AssetID, string(e.Kind), []byte(e.Payload), e.FetchedAt, e.ExpiresAt)
	if err != nil {
		s.log.Debug("Upsert failed", "asset", e.AssetID, "kind", e.Kind, "error", err)
		return err
	}
	return nil
}

// Find возвращает запись по ключу или domain.ErrNotFound.
func (s *EntryStore) Find(ctx context.Context, assetID string, kind domain.Kind) (*domain.Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT payload, fetched_at, expires_at FROM price_cache
		 WHERE asset_id = $1 AND data_type = $2`,
		assetID, string(kind))

	e := domain.Entry{AssetID: assetID, Kind: kind}
	var payload []byte
	if err := row.Scan(&payload, &e.FetchedAt, &e.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		s.log.Debug("Find failed", "asset", assetID, "kind", kind, "error", err)
		return nil, err
	}
	e.Payload = payload
	return &e, nil
}

// Delete удаляет запись по ключу. Отсутствие записи — не ошибка.
func (s *EntryStore) Delete(ctx context.Context, assetID string, kind domain.Kind) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM price_cache WHERE asset_id = $1 AND data_type = $2`,
		assetID, string(kind))
	return err
}

// DeleteExpired удаляет все записи с expires_at < now, возвращает количество удалённых.
func (s *EntryStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM price_cache WHERE expires_at < $1`, now)
	if err != nil {
		s.log.Debug("DeleteExpired failed", "error", err)
		return 0, err
	}
	return res.RowsAffected()
}

// Ping проверяет доступность БД (readiness).
func (s *EntryStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
