package prices

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"coinCache/internal/domain"
	"coinCache/internal/ports"
)

// Controller — маршруты кэша цен: получение, инвалидация, чистка протухших.
type Controller struct {
	uc  ports.IPriceCacheUseCase
	log *slog.Logger
}

// New создаёт контроллер цен.
func New(uc ports.IPriceCacheUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.GET("/prices/:assetId/:kind", c.get)
	api.DELETE("/prices/:assetId/:kind", c.invalidate)
	api.POST("/prices/purge", c.purge)
}

// get отдаёт данные по активу: из кэша при живом TTL, иначе с refresh из источника.
func (c *Controller) get(ctx *gin.Context) {
	assetID := ctx.Param("assetId")
	kind := domain.Kind(ctx.Param("kind"))

	price, err := c.uc.Get(ctx.Request.Context(), assetID, kind)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyAsset), errors.Is(err, domain.ErrUnknownKind):
			c.log.Warn("get bad request", "error", err)
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrUpstreamUnavailable):
			c.log.Warn("get upstream unavailable", "asset", assetID, "kind", kind, "error", err)
			ctx.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		default:
			c.log.Error("get failed", "asset", assetID, "kind", kind, "error", err)
			ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, PriceResponse{
		AssetID:   price.AssetID,
		Kind:      string(price.Kind),
		Data:      price.Payload,
		FetchedAt: price.FetchedAt,
		ExpiresAt: price.ExpiresAt,
		Cached:    price.Hit,
		Stale:     price.Stale,
	})
}

// invalidate удаляет запись по ключу. Отсутствие записи — тоже 204.
func (c *Controller) invalidate(ctx *gin.Context) {
	assetID := ctx.Param("assetId")
	kind := domain.Kind(ctx.Param("kind"))

	if err := c.uc.Invalidate(ctx.Request.Context(), assetID, kind); err != nil {
		if errors.Is(err, domain.ErrEmptyAsset) || errors.Is(err, domain.ErrUnknownKind) {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.log.Error("invalidate failed", "asset", assetID, "kind", kind, "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// purge удаляет все протухшие записи и возвращает их количество.
func (c *Controller) purge(ctx *gin.Context) {
	removed, err := c.uc.PurgeExpired(ctx.Request.Context(), time.Now())
	if err != nil {
		c.log.Error("purge failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, PurgeResponse{Removed: removed})
}
