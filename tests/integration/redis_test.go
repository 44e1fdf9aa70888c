package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"coinCache/internal/infrastructure/redis"
	"coinCache/tests/integration/testutil"
)

// redisContainer — контейнер Redis, инициализируется в TestMain.
var redisContainer *testutil.RedisContainer

// setupRedisStore подключается к тестовому Redis и сбрасывает базу.
func setupRedisStore(t *testing.T) *redis.EntryStore {
	t.Helper()

	ctx := context.Background()

	cli, err := redis.New(ctx, &redis.Config{
		Host: redisContainer.Host,
		Port: redisContainer.Port,
	})
	require.NoError(t, err, "не удалось подключиться к Redis")

	require.NoError(t, cli.FlushDB(ctx).Err())

	t.Cleanup(func() {
		_ = cli.Close()
	})

	return redis.NewEntryStore(cli, newTestLogger())
}

func TestRedisEntryStore(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	runEntryStoreSuite(t, setupRedisStore(t))
}
