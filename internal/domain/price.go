package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Ошибки домена. Проверяй через errors.Is на границе API.
var (
	// ErrEmptyAsset возвращается, когда идентификатор актива пустой.
	ErrEmptyAsset = errors.New("empty asset id")
	// ErrUnknownKind возвращается, когда тип данных не поддерживается.
	ErrUnknownKind = errors.New("unknown data kind")
	// ErrUpstreamUnavailable возвращается, когда источник цен недоступен и пригодных данных в кэше нет.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrNotFound возвращается хранилищем, когда записи по ключу нет.
	ErrNotFound = errors.New("entry not found")
)

// Kind — тип кэшируемых данных по активу.
type Kind string

// Поддерживаемые типы данных.
const (
	KindMarket Kind = "market" // текущие рыночные данные
	KindChart  Kind = "chart"  // история цен для графика
)

// ParseKind валидирует строку и возвращает Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindMarket, KindChart:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Entry — одна запись кэша цен. Ключ (AssetID, Kind) уникален, повторный fetch перезаписывает запись.
// Payload хранится и возвращается как есть, кэш его не интерпретирует.
type Entry struct {
	AssetID   string
	Kind      Kind
	Payload   json.RawMessage
	FetchedAt time.Time
	ExpiresAt time.Time // всегда строго позже FetchedAt
}

// Expired сообщает, протухла ли запись к моменту now.
func (e *Entry) Expired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}

// CachedPrice — результат запроса цены: запись плюс флаги свежести.
type CachedPrice struct {
	Entry
	Hit   bool // true — отдали из хранилища без похода в источник
	Stale bool // true — источник упал, отдали протухшее значение (деградация)
}

// PriceUpdate — событие обновления цены, публикуется в брокер после каждого refresh.
type PriceUpdate struct {
	AssetID     string    `json:"asset_id"`
	Kind        Kind      `json:"kind"`
	FetchedAt   time.Time `json:"fetched_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	PayloadSize int       `json:"payload_size"`
}
