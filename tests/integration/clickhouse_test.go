package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinCache/internal/domain"
	"coinCache/internal/infrastructure/click"
	"coinCache/tests/integration/testutil"
)

// clickContainer — контейнер ClickHouse, инициализируется в TestMain.
var clickContainer *testutil.ClickHouseContainer

// setupClickWriter подключается к тестовому ClickHouse и создаёт таблицу обновлений.
func setupClickWriter(t *testing.T) (*click.Client, *click.PriceUpdateWriter) {
	t.Helper()

	ctx := context.Background()

	cli, err := click.New(&click.Config{
		Host:     clickContainer.Host,
		Port:     clickContainer.Port,
		Database: clickContainer.Database,
		Username: clickContainer.User,
		Password: clickContainer.Password,
	})
	require.NoError(t, err, "не удалось подключиться к ClickHouse")

	t.Cleanup(func() {
		_ = cli.Close()
	})

	writer := click.NewPriceUpdateWriter(cli)
	require.NoError(t, writer.EnsureTable(ctx))

	_, err = cli.DB().ExecContext(ctx, "TRUNCATE TABLE default.price_updates")
	require.NoError(t, err)

	return cli, writer
}

func TestClickHousePriceUpdates(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	ctx := context.Background()
	cli, writer := setupClickWriter(t)

	now := time.Now().UTC().Truncate(time.Millisecond)

	updates := []domain.PriceUpdate{
		{AssetID: "bitcoin", Kind: domain.KindMarket, FetchedAt: now, ExpiresAt: now.Add(time.Minute), PayloadSize: 512},
		{AssetID: "bitcoin", Kind: domain.KindChart, FetchedAt: now, ExpiresAt: now.Add(10 * time.Minute), PayloadSize: 4096},
		{AssetID: "ethereum", Kind: domain.KindMarket, FetchedAt: now, ExpiresAt: now.Add(time.Minute), PayloadSize: 480},
	}
	for _, upd := range updates {
		require.NoError(t, writer.WriteUpdate(ctx, upd))
	}

	t.Run("все события записаны", func(t *testing.T) {
		var total uint64
		err := cli.DB().QueryRowContext(ctx,
			"SELECT count() FROM default.price_updates").Scan(&total)
		require.NoError(t, err)
		assert.EqualValues(t, len(updates), total)
	})

	t.Run("фильтрация по активу", func(t *testing.T) {
		var count uint64
		err := cli.DB().QueryRowContext(ctx,
			"SELECT count() FROM default.price_updates WHERE asset_id = ?", "bitcoin").Scan(&count)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})

	t.Run("размер payload сохраняется", func(t *testing.T) {
		var size uint32
		err := cli.DB().QueryRowContext(ctx,
			"SELECT payload_size FROM default.price_updates WHERE asset_id = ? AND kind = ?",
			"bitcoin", "chart").Scan(&size)
		require.NoError(t, err)
		assert.EqualValues(t, 4096, size)
	})
}
