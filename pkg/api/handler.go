package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"cellarbook.org/CellarBook/pkg/catalog"
	"cellarbook.org/CellarBook/pkg/lifecycle"
	"cellarbook.org/CellarBook/pkg/repository"
	"cellarbook.org/CellarBook/pkg/validate"
)

// Handler exposes the catalog and bottle lifecycle over JSON.
type Handler struct {
	catalog *catalog.Catalog
	engine  *lifecycle.Engine
	logger  *zap.Logger
}

func NewHandler(cat *catalog.Catalog, engine *lifecycle.Engine, logger *zap.Logger) *Handler {
	return &Handler{
		catalog: cat,
		engine:  engine,
		logger:  logger,
	}
}

// Register mounts every route under the given router.
func (h *Handler) Register(router gin.IRouter) {
	wines := router.Group("/wines")
	wines.GET("", h.ListWines)
	wines.POST("", h.CreateWine)
	wines.GET("/:id", h.GetWine)
	wines.PATCH("/:id", h.UpdateWine)
	wines.DELETE("/:id", h.DeleteWine)
	wines.GET("/:id/bottles", h.GetBottlesForWine)
	wines.POST("/:id/bottles", h.AddBottles)
	wines.GET("/:id/stats", h.GetWineStats)

	bottles := router.Group("/bottles")
	bottles.GET("/:id", h.GetBottle)
	bottles.DELETE("/:id", h.DeleteBottle)
	bottles.PUT("/:id/placement", h.UpdatePlacement)
	bottles.POST("/:id/consume", h.Consume)
	bottles.POST("/:id/sell", h.Sell)
	bottles.POST("/:id/gift", h.Gift)
	bottles.POST("/:id/damage", h.MarkDamaged)
	bottles.POST("/:id/loss", h.MarkLost)
	bottles.POST("/:id/revalue", h.Revalue)
	bottles.POST("/:id/movements", h.RecordMovement)
	bottles.POST("/:id/tastings", h.RecordTasting)
	bottles.GET("/:id/history", h.GetHistory)
	bottles.GET("/:id/timeline", h.GetTimeline)

	router.GET("/summary", h.GetCollectionSummary)
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, validate.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrWineNotFound), errors.Is(err, repository.ErrBottleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
