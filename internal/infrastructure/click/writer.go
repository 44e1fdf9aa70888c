package click

import (
	"context"
	"fmt"

	"coinCache/internal/domain"
)

const priceUpdatesFull = "default.price_updates"

// PriceUpdateWriter записывает события обновления цен в ClickHouse в формате, удобном для аналитики
// (частота refresh по активам, размеры payload, GROUP BY kind и т.д.).
type PriceUpdateWriter struct {
	db *Client
}

// NewPriceUpdateWriter создаёт писатель обновлений для аналитики.
func NewPriceUpdateWriter(db *Client) *PriceUpdateWriter {
	return &PriceUpdateWriter{db: db}
}

// EnsureTable создаёт таблицу обновлений в default, если её ещё нет. Вызови один раз при старте приложения.
func (w *PriceUpdateWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			asset_id String,
			kind String,
			fetched_at DateTime64(3),
			expires_at DateTime64(3),
			payload_size UInt32
		) ENGINE = MergeTree()
		ORDER BY (fetched_at, asset_id)
		PARTITION BY toYYYYMM(fetched_at)`,
		priceUpdatesFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteUpdate реализует ports.IPriceAnalytics: пишет одно событие обновления в ClickHouse.
func (w *PriceUpdateWriter) WriteUpdate(ctx context.Context, upd domain.PriceUpdate) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (asset_id, kind, fetched_at, expires_at, payload_size) VALUES (?, ?, ?, ?, ?)",
		priceUpdatesFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		upd.AssetID, string(upd.Kind), upd.FetchedAt, upd.ExpiresAt, uint32(upd.PayloadSize))
	if err != nil {
		return fmt.Errorf("insert price update: %w", err)
	}
	return nil
}
