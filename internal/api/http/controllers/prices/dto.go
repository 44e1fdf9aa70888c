package prices

import (
	"encoding/json"
	"time"
)

// PriceResponse — ответ с данными по активу (для GET /api/v1/prices/:assetId/:kind).
// Data отдаётся ровно в том виде, в каком пришла от источника.
type PriceResponse struct {
	AssetID   string          `json:"asset_id"`
	Kind      string          `json:"kind"`
	Data      json.RawMessage `json:"data"`
	FetchedAt time.Time       `json:"fetched_at"`
	ExpiresAt time.Time       `json:"expires_at"`
	Cached    bool            `json:"cached"`
	Stale     bool            `json:"stale,omitempty"`
}

// PurgeResponse — ответ чистки протухших записей.
type PurgeResponse struct {
	Removed int64 `json:"removed"`
}

// ErrorResponse — ответ с текстом ошибки.
type ErrorResponse struct {
	Error string `json:"error"`
}
