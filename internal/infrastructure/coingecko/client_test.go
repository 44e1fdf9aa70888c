package coingecko

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinCache/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(baseURL string) *Client {
	return New(&Config{
		BaseURL:   baseURL,
		APIKey:    "test-key",
		Currency:  "usd",
		ChartDays: "7",
		Timeout:   2 * time.Second,
	}, newTestLogger())
}

// market: путь /coins/{id}, тело отдаётся как есть, ключ API уходит в заголовок.
func TestFetch_Market(t *testing.T) {
	body := `{"id":"bitcoin","market_data":{"current_price":{"usd":42000.5}}}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/bitcoin", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("market_data"))
		assert.Equal(t, "test-key", r.Header.Get("x-cg-demo-api-key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Fetch(context.Background(), "bitcoin", domain.KindMarket)

	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(body), got)
}

// chart: путь /coins/{id}/market_chart с vs_currency и days из конфига.
func TestFetch_Chart(t *testing.T) {
	body := `{"prices":[[1700000000000,42000.5]]}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/ethereum/market_chart", r.URL.Path)
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currency"))
		assert.Equal(t, "7", r.URL.Query().Get("days"))
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Fetch(context.Background(), "ethereum", domain.KindChart)

	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(body), got)
}

// Не-200 (например rate limit) — ошибка, тело не возвращается.
func TestFetch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Fetch(context.Background(), "bitcoin", domain.KindMarket)

	assert.Nil(t, got)
	assert.ErrorContains(t, err, "429")
}

// Отмена ctx обрывает запрос.
func TestFetch_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient(srv.URL).Fetch(ctx, "bitcoin", domain.KindMarket)
	assert.Error(t, err)
}
