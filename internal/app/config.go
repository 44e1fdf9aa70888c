package app

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"coinCache/internal/api/http"
	"coinCache/internal/infrastructure/click"
	"coinCache/internal/infrastructure/coingecko"
	"coinCache/internal/infrastructure/kafka"
	"coinCache/internal/infrastructure/mongo"
	"coinCache/internal/infrastructure/pg"
	"coinCache/internal/infrastructure/redis"
	"coinCache/internal/usecase/pricecache"
)

const AppName = "COINCACHE"

// Config — конфиг приложения. Заполняется через envconfig с префиксом COINCACHE.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// Store выбирает хранилище кэша: mongo (по умолчанию), redis или postgres.
	Store      string            `envconfig:"STORE" default:"mongo"`
	Server     http.ServerConfig `envconfig:"SERVER"`
	Cache      pricecache.Config `envconfig:"CACHE"`
	Upstream   coingecko.Config  `envconfig:"UPSTREAM"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Redis      redis.Config      `envconfig:"REDIS"`
	PG         pg.Config         `envconfig:"PG"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
