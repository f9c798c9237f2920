package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cellarbook.org/CellarBook/pkg/model"
)

// ListWines returns every wine, or only the matching ones when a ?q=
// search term is present.
func (h *Handler) ListWines(c *gin.Context) {
	query := c.Query("q")

	wines, err := h.catalog.SearchWines(c.Request.Context(), query)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wines": wines})
}

func (h *Handler) GetWine(c *gin.Context) {
	wineID, ok := pathID(c)
	if !ok {
		return
	}

	wine, err := h.catalog.GetWine(c.Request.Context(), wineID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wine": wine})
}

// wineRequest carries only the descriptive attributes; identity, the
// bottle association and the timestamps never come from the caller.
type wineRequest struct {
	Name           string          `json:"name"`
	Producer       *string         `json:"producer"`
	Vintage        *int            `json:"vintage"`
	Type           *model.WineType `json:"type"`
	Varietal       *string         `json:"varietal"`
	MasterVarietal *string         `json:"master_varietal"`
	Country        *string         `json:"country"`
	Region         *string         `json:"region"`
	SubRegion      *string         `json:"sub_region"`
	Appellation    *string         `json:"appellation"`
	ABV            *float64        `json:"abv"`
	RatingMin      *int            `json:"rating_min"`
	RatingMax      *int            `json:"rating_max"`
	RatingNotes    *string         `json:"rating_notes"`
	FoodPairing    *string         `json:"food_pairing"`
	BeginConsume   *int            `json:"begin_consume"`
	EndConsume     *int            `json:"end_consume"`
	ImageURL       *string         `json:"image_url"`
}

func (req wineRequest) toModel() model.Wine {
	return model.Wine{
		Name:           req.Name,
		Producer:       req.Producer,
		Vintage:        req.Vintage,
		Type:           req.Type,
		Varietal:       req.Varietal,
		MasterVarietal: req.MasterVarietal,
		Country:        req.Country,
		Region:         req.Region,
		SubRegion:      req.SubRegion,
		Appellation:    req.Appellation,
		ABV:            req.ABV,
		RatingMin:      req.RatingMin,
		RatingMax:      req.RatingMax,
		RatingNotes:    req.RatingNotes,
		FoodPairing:    req.FoodPairing,
		BeginConsume:   req.BeginConsume,
		EndConsume:     req.EndConsume,
		ImageURL:       req.ImageURL,
	}
}

func (h *Handler) CreateWine(c *gin.Context) {
	var req wineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.catalog.CreateWine(c.Request.Context(), req.toModel())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"wine": created})
}

func (h *Handler) UpdateWine(c *gin.Context) {
	wineID, ok := pathID(c)
	if !ok {
		return
	}

	var update model.WineUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	wine, err := h.catalog.UpdateWine(c.Request.Context(), wineID, update)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wine": wine})
}

func (h *Handler) DeleteWine(c *gin.Context) {
	wineID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.catalog.DeleteWine(c.Request.Context(), wineID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "wine deleted"})
}

func (h *Handler) GetWineStats(c *gin.Context) {
	wineID, ok := pathID(c)
	if !ok {
		return
	}

	stats, err := h.engine.GetWineStats(c.Request.Context(), wineID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (h *Handler) GetCollectionSummary(c *gin.Context) {
	summary, err := h.engine.GetCollectionSummary(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
