package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"coinCache/internal/domain"
	"coinCache/internal/ports"
)

var _ ports.IPriceSource = (*Client)(nil)

// Config — настройки источника цен. Переменные: COINCACHE_UPSTREAM_*.
type Config struct {
	BaseURL   string        `envconfig:"BASE_URL" default:"https://api.coingecko.com/api/v3"`
	APIKey    string        `envconfig:"API_KEY" default:""`
	Currency  string        `envconfig:"CURRENCY" default:"usd"`
	ChartDays string        `envconfig:"CHART_DAYS" default:"7"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

// Client реализует ports.IPriceSource поверх HTTP API CoinGecko.
// Тело ответа не разбирается и не валидируется — кэш хранит его как есть.
type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

// New создаёт клиент источника цен с таймаутом из конфига.
func New(cfg *Config, log *slog.Logger) *Client {
	if cfg == nil {
		cfg = &Config{BaseURL: "https://api.coingecko.com/api/v3", Currency: "usd", ChartDays: "7", Timeout: 10 * time.Second}
	}
	return &Client{
		cfg:  *cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log,
	}
}

// endpoint строит URL запроса по типу данных.
func (c *Client) endpoint(assetID string, kind domain.Kind) string {
	id := url.PathEscape(assetID)
	switch kind {
	case domain.KindChart:
		q := url.Values{"vs_currency": {c.cfg.Currency}, "days": {c.cfg.ChartDays}}
		return fmt.Sprintf("%s/coins/%s/market_chart?%s", c.cfg.BaseURL, id, q.Encode())
	default:
		q := url.Values{
			"localization":   {"false"},
			"tickers":        {"false"},
			"market_data":    {"true"},
			"community_data": {"false"},
			"developer_data": {"false"},
		}
		return fmt.Sprintf("%s/coins/%s?%s", c.cfg.BaseURL, id, q.Encode())
	}
}

// Fetch запрашивает данные по активу и возвращает тело ответа как есть.
// Таймаут — минимум из ctx и клиентского (конфиг); не-2xx считается отказом источника.
func (c *Client) Fetch(ctx context.Context, assetID string, kind domain.Kind) (json.RawMessage, error) {
	u := c.endpoint(assetID, kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("upstream request failed", "asset", assetID, "kind", kind, "error", err)
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// 429 здесь обычное дело: rate limit бесплатного тарифа. Кэш и существует, чтобы в него не упираться.
		return nil, fmt.Errorf("upstream status %d for %s/%s", resp.StatusCode, assetID, kind)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
