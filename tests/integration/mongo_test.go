package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"coinCache/internal/infrastructure/mongo"
	"coinCache/tests/integration/testutil"
)

// mongoContainer — контейнер MongoDB, инициализируется в TestMain.
var mongoContainer *testutil.MongoContainer

// setupMongoStore подключается к тестовой MongoDB и очищает коллекцию.
func setupMongoStore(t *testing.T) *mongo.EntryRepo {
	t.Helper()

	ctx := context.Background()

	client, err := mongo.New(ctx, &mongo.Config{
		URI:        mongoContainer.URI(),
		Database:   "testdb",
		Collection: "prices",
	})
	require.NoError(t, err, "не удалось подключиться к MongoDB")

	if err := client.Coll().Drop(ctx); err != nil {
		t.Logf("drop collection: %v (игнорируем)", err)
	}

	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	repo := mongo.NewEntryRepo(client, newTestLogger())
	require.NoError(t, repo.EnsureIndexes(ctx))
	return repo
}

func TestMongoEntryStore(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	runEntryStoreSuite(t, setupMongoStore(t))
}
