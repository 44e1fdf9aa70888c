package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinCache/internal/domain"
	"coinCache/internal/ports"
)

// entry — фабрика тестовой записи.
func entry(assetID string, kind domain.Kind, payload string, ttl time.Duration) domain.Entry {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return domain.Entry{
		AssetID:   assetID,
		Kind:      kind,
		Payload:   json.RawMessage(payload),
		FetchedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// runEntryStoreSuite гоняет общий контракт ports.IEntryStore на реальном хранилище:
// upsert/find, перезапись по ключу, delete, чистка протухших.
func runEntryStoreSuite(t *testing.T, store ports.IEntryStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("upsert и find", func(t *testing.T) {
		e := entry("bitcoin", domain.KindMarket, `{"usd":42000.5}`, time.Minute)
		require.NoError(t, store.Upsert(ctx, e))

		got, err := store.Find(ctx, "bitcoin", domain.KindMarket)
		require.NoError(t, err)
		assert.Equal(t, e.AssetID, got.AssetID)
		assert.Equal(t, e.Kind, got.Kind)
		assert.JSONEq(t, string(e.Payload), string(got.Payload))
		assert.WithinDuration(t, e.ExpiresAt, got.ExpiresAt, time.Second)
	})

	t.Run("upsert перезаписывает по ключу", func(t *testing.T) {
		first := entry("bitcoin", domain.KindChart, `{"prices":[[1,1]]}`, time.Minute)
		require.NoError(t, store.Upsert(ctx, first))

		second := entry("bitcoin", domain.KindChart, `{"prices":[[2,2]]}`, time.Minute)
		require.NoError(t, store.Upsert(ctx, second))

		got, err := store.Find(ctx, "bitcoin", domain.KindChart)
		require.NoError(t, err)
		assert.JSONEq(t, string(second.Payload), string(got.Payload))

		// market-запись того же актива не затронута
		_, err = store.Find(ctx, "bitcoin", domain.KindMarket)
		require.NoError(t, err)
	})

	t.Run("find отсутствующей записи", func(t *testing.T) {
		_, err := store.Find(ctx, "no-such-coin", domain.KindMarket)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete идемпотентен", func(t *testing.T) {
		e := entry("dogecoin", domain.KindMarket, `{"usd":0.1}`, time.Minute)
		require.NoError(t, store.Upsert(ctx, e))

		require.NoError(t, store.Delete(ctx, "dogecoin", domain.KindMarket))
		_, err := store.Find(ctx, "dogecoin", domain.KindMarket)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		// повторное удаление — не ошибка
		require.NoError(t, store.Delete(ctx, "dogecoin", domain.KindMarket))
	})

	t.Run("deleteExpired убирает ровно протухшие", func(t *testing.T) {
		expired := entry("litecoin", domain.KindMarket, `{"usd":1}`, -time.Minute)
		alive := entry("cardano", domain.KindMarket, `{"usd":2}`, time.Hour)
		require.NoError(t, store.Upsert(ctx, expired))
		require.NoError(t, store.Upsert(ctx, alive))

		removed, err := store.DeleteExpired(ctx, time.Now())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, removed, int64(1))

		_, err = store.Find(ctx, "litecoin", domain.KindMarket)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = store.Find(ctx, "cardano", domain.KindMarket)
		assert.NoError(t, err)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}
