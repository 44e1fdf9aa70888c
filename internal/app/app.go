package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apihttp "coinCache/internal/api/http"
	"coinCache/internal/api/http/controllers/prices"
	"coinCache/internal/api/http/controllers/system"
	"coinCache/internal/infrastructure/click"
	"coinCache/internal/infrastructure/coingecko"
	"coinCache/internal/infrastructure/kafka"
	"coinCache/internal/infrastructure/mongo"
	"coinCache/internal/infrastructure/pg"
	"coinCache/internal/infrastructure/redis"
	"coinCache/internal/pkg/logger"
	"coinCache/internal/ports"
	"coinCache/internal/usecase/pricecache"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (вся инфраструктура подключается в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключает хранилище, брокер и ClickHouse, собирает зависимости и запускает HTTP-сервер (блокирующий вызов).
func (a *App) Run() error {
	log := logger.NewWithLevel(a.cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := a.openStore(ctx, log)
	if err != nil {
		return err
	}
	defer closeStore()

	source := coingecko.New(&a.cfg.Upstream, log)

	producer := kafka.NewProducer(&a.cfg.Kafka)
	defer producer.Close()

	ch, err := click.New(&a.cfg.ClickHouse)
	if err != nil {
		return fmt.Errorf("clickhouse: %w", err)
	}
	defer ch.Close()

	writer := click.NewPriceUpdateWriter(ch)
	if err := writer.EnsureTable(ctx); err != nil {
		return fmt.Errorf("clickhouse table: %w", err)
	}

	uc := pricecache.New(store, source, producer, writer, &a.cfg.Cache, log)

	consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
	defer consumer.Close()
	go func() {
		if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
			slog.Error("kafka consumer failed", "error", err)
		}
	}()

	// Периодическая чистка протухших записей; lazy-проверка в Get работает и без неё.
	go func() {
		_ = uc.RunSweep(ctx, a.cfg.Cache.SweepInterval)
	}()

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(store, log),
		prices.New(uc, log))

	httpAddr := a.cfg.Server.Host + ":" + a.cfg.Server.Port
	slog.Info("application started", "http", httpAddr, "store", a.cfg.Store)

	return srv.Start(ctx)
}

// openStore подключает выбранное конфигом хранилище кэша и возвращает функцию закрытия соединения.
func (a *App) openStore(ctx context.Context, log *slog.Logger) (ports.IEntryStore, func(), error) {
	switch a.cfg.Store {
	case "redis":
		rdb, err := redis.New(ctx, &a.cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("redis: %w", err)
		}
		return redis.NewEntryStore(rdb, log), func() { _ = rdb.Close() }, nil

	case "postgres":
		db, err := pg.New(&a.cfg.PG)
		if err != nil {
			return nil, nil, fmt.Errorf("pg: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("pg migrate: %w", err)
		}
		return pg.NewEntryStore(db, log), func() { _ = db.Close() }, nil

	default:
		client, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("mongo: %w", err)
		}
		repo := mongo.NewEntryRepo(client, log)
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("mongo indexes: %w", err)
		}
		return repo, func() { _ = client.Disconnect(context.Background()) }, nil
	}
}
