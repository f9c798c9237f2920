package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cellarbook.org/CellarBook/pkg/lifecycle"
	"cellarbook.org/CellarBook/pkg/model"
)

type addBottlesRequest struct {
	Count            int        `json:"count"`
	Size             *string    `json:"size"`
	Barcode          *string    `json:"barcode"`
	Location         *string    `json:"location"`
	Bin              *string    `json:"bin"`
	CurrentValue     *float64   `json:"current_value"`
	PurchasePrice    *float64   `json:"purchase_price"`
	PurchaseLocation *string    `json:"purchase_location"`
	PurchaseDate     *time.Time `json:"purchase_date"`
}

// AddBottles adds one or more bottles of a wine to the cellar. A missing
// count means a single bottle.
func (h *Handler) AddBottles(c *gin.Context) {
	wineID, ok := pathID(c)
	if !ok {
		return
	}

	var req addBottlesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	count := req.Count
	if count == 0 {
		count = 1
	}

	details := model.BottleDetails{
		Size:             req.Size,
		Barcode:          req.Barcode,
		Location:         req.Location,
		Bin:              req.Bin,
		CurrentValue:     req.CurrentValue,
		PurchasePrice:    req.PurchasePrice,
		PurchaseLocation: req.PurchaseLocation,
		PurchaseDate:     req.PurchaseDate,
	}

	bottles, err := h.engine.AddBottles(c.Request.Context(), wineID, count, details)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bottles": bottles})
}

func (h *Handler) GetBottle(c *gin.Context) {
	bottleID, ok := pathID(c)
	if !ok {
		return
	}

	bottle, err := h.engine.GetBottle(c.Request.Context(), bottleID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bottle": bottle})
}

func (h *Handler) GetBottlesForWine(c *gin.Context) {
	wineID, ok := pathID(c)
	if !ok {
		return
	}

	bottles, err := h.engine.GetBottlesForWine(c.Request.Context(), wineID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bottles": bottles})
}

func (h *Handler) DeleteBottle(c *gin.Context) {
	bottleID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.engine.DeleteBottle(c.Request.Context(), bottleID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "bottle deleted"})
}

type placementRequest struct {
	Location *string `json:"location"`
	Bin      *string `json:"bin"`
}

func (h *Handler) UpdatePlacement(c *gin.Context) {
	bottleID, ok := pathID(c)
	if !ok {
		return
	}

	var req placementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	bottle, err := h.engine.UpdatePlacement(c.Request.Context(), bottleID, req.Location, req.Bin)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bottle": bottle})
}

type consumeRequest struct {
	Rating      *int       `json:"rating"`
	Notes       *string    `json:"notes"`
	FoodPairing *string    `json:"food_pairing"`
	Occasion    *string    `json:"occasion"`
	Date        *time.Time `json:"date"`
}

func (h *Handler) Consume(c *gin.Context) {
	bottleID, ok := pathID(c)
	if !ok {
		return
	}

	var req consumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	bottle, err := h.engine.Consume(c.Request.Context(), bottleID, lifecycle.ConsumeParams{
		Rating:      req.Rating,
		Notes:       req.Notes,
		FoodPairing: req.FoodPairing,
		Occasion:    req.Occasion,
		Date:        req.Date,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bottle": bottle})
}

type disposalRequest struct {
	Price        *float64   `json:"price"`
	Counterparty *string    `json:"counterparty"`
	Notes        *string    `json:"notes"`
	Date         *time.Time `json:"date"`
}

func (h *Handler) Sell(c *gin.Context) {
	h.dispose(c, h.engine.Sell)
}

func (h *Handler) Gift(c *gin.Context) {
	h.dispose(c, h.engine.Gift)
}

func (h *Handler) MarkDamaged(c *gin.Context) {
	h.dispose(c, h.engine.MarkDamaged)
}

func (h *Handler) MarkLost(c *gin.Context) {
	h.dispose(c, h.engine.MarkLost)
}

func (h *Handler) dispose(c *gin.Context, transition func(ctx context.Context, bottleID uuid.UUID, params lifecycle.DisposalParams) (*model.Bottle, error)) {
	bottleID, ok := pathID(c)
	if !ok {
		return
	}

	var req disposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	bottle, err := transition(c.Request.Context(), bottleID, lifecycle.DisposalParams{
		Price:        req.Price,
		Counterparty: req.Counterparty,
		Notes:        req.Notes,
		Date:         req.Date,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bottle": bottle})
}

type revalueRequest struct {
	Value *float64   `json:"value"`
	Notes *string    `json:"notes"`
	Date  *time.Time `json:"date"`
}

func (h *Handler) Revalue(c *gin.Context) {
	bottleID, ok := pathID(c)
	if !ok {
		return
	}

	var req revalueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Value == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value is required"})
		return
	}

	bottle, err := h.engine.Revalue(c.Request.Context(), bottleID, *req.Value, req.Notes, req.Date)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bottle": bottle})
}

type movementRequest struct {
	Location *string `json:"location"`
	Bin      *string `json:"bin"`
	Reason   *string `json:"reason"`
	Notes    *string `json:"notes"`
}

func (h *Handler) RecordMovement(c *gin.Context) {
	bottleID, ok := pathID(c)
	if !ok {
		return
	}

	var req movementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Location == nil || *req.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location is required"})
		return
	}

	bottle, err := h.engine.RecordMovement(c.Request.Context(), bottleID, *req.Location, req.Bin, req.Reason, req.Notes)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bottle": bottle})
}

type tastingRequest struct {
	Rating      *int       `json:"rating"`
	Notes       *string    `json:"notes"`
	FoodPairing *string    `json:"food_pairing"`
	Occasion    *string    `json:"occasion"`
	TastedAt    *time.Time `json:"tasted_at"`
}

func (h *Handler) RecordTasting(c *gin.Context) {
	bottleID, ok := pathID(c)
	if !ok {
		return
	}

	var req tastingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	bottle, err := h.engine.RecordTasting(c.Request.Context(), bottleID, lifecycle.TastingParams{
		Rating:      req.Rating,
		Notes:       req.Notes,
		FoodPairing: req.FoodPairing,
		Occasion:    req.Occasion,
		TastedAt:    req.TastedAt,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bottle": bottle})
}

func (h *Handler) GetHistory(c *gin.Context) {
	bottleID, ok := pathID(c)
	if !ok {
		return
	}

	history, err := h.engine.GetHistory(c.Request.Context(), bottleID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

func (h *Handler) GetTimeline(c *gin.Context) {
	bottleID, ok := pathID(c)
	if !ok {
		return
	}

	timeline, err := h.engine.GetTimeline(c.Request.Context(), bottleID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"timeline": timeline})
}
