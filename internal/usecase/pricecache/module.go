package pricecache

import (
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"coinCache/internal/domain"
	"coinCache/internal/ports"
)

// TTLFunc возвращает время жизни записи для типа данных.
type TTLFunc func(kind domain.Kind) time.Duration

// Config — настройки кэша цен. Переменные: COINCACHE_CACHE_*.
type Config struct {
	TTLMarket         time.Duration `envconfig:"TTL_MARKET" default:"60s"`
	TTLChart          time.Duration `envconfig:"TTL_CHART" default:"10m"`
	ServeStaleOnError bool          `envconfig:"SERVE_STALE" default:"true"`
	SweepInterval     time.Duration `envconfig:"SWEEP_INTERVAL" default:"5m"`
}

// TTL резолвит время жизни по типу данных: market обновляется чаще, chart реже.
func (c *Config) TTL(kind domain.Kind) time.Duration {
	switch kind {
	case domain.KindChart:
		return c.TTLChart
	default:
		return c.TTLMarket
	}
}

// flightKey формирует ключ схлопывания конкурентных refresh, например "bitcoin:market".
func flightKey(assetID string, kind domain.Kind) string {
	return assetID + ":" + string(kind)
}

// UseCase — бизнес-логика кэша цен с TTL.
type UseCase struct {
	store      ports.IEntryStore
	source     ports.IPriceSource
	broker     ports.IProducer
	analytics  ports.IPriceAnalytics
	ttl        TTLFunc
	serveStale bool
	sf         singleflight.Group
	log        *slog.Logger
}

// New создаёт юзкейс кэша. TTL по типам данных и политика выдачи протухшего берутся из cfg.
func New(store ports.IEntryStore, source ports.IPriceSource, broker ports.IProducer, analytics ports.IPriceAnalytics, cfg *Config, log *slog.Logger) *UseCase {
	if cfg == nil {
		cfg = &Config{TTLMarket: 60 * time.Second, TTLChart: 10 * time.Minute, ServeStaleOnError: true}
	}
	return &UseCase{
		store:      store,
		source:     source,
		broker:     broker,
		analytics:  analytics,
		ttl:        cfg.TTL,
		serveStale: cfg.ServeStaleOnError,
		log:        log,
	}
}
