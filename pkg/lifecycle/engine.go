package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cellarbook.org/CellarBook/pkg/model"
	"cellarbook.org/CellarBook/pkg/repository"
	"cellarbook.org/CellarBook/pkg/validate"
)

// ErrInvalidTransition is returned when an operation is not legal for the
// bottle's current status, whether that was known up front or only
// discovered when the guarded store write matched nothing.
var ErrInvalidTransition = errors.New("invalid lifecycle transition")

const defaultBottleSize = "750ml"

// Engine owns the bottle lifecycle: creation, placement, the transitions
// out of the cellar, and the event streams behind them. Bottle rows are
// caches; every state change goes through an event append.
type Engine struct {
	logger    *zap.Logger
	validator *validate.Validator
	wines     repository.WineRepository
	bottles   repository.BottleRepository
	events    repository.EventRepository
}

func NewEngine(wines repository.WineRepository, bottles repository.BottleRepository, events repository.EventRepository, logger *zap.Logger) *Engine {
	return &Engine{
		wines:     wines,
		bottles:   bottles,
		events:    events,
		validator: validate.New(),
		logger:    logger,
	}
}

func (e *Engine) AddBottle(ctx context.Context, wineID uuid.UUID, details model.BottleDetails) (*model.Bottle, error) {
	bottles, err := e.AddBottles(ctx, wineID, 1, details)
	if err != nil {
		return nil, err
	}

	return &bottles[0], nil
}

// AddBottles creates count bottles of one wine, all sharing the same
// details. When purchase details are present, each bottle also gets its
// originating purchase transaction, inserted atomically with the bottles.
func (e *Engine) AddBottles(ctx context.Context, wineID uuid.UUID, count int, details model.BottleDetails) ([]model.Bottle, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: bottle count must be positive, got %d", validate.ErrValidation, count)
	}

	if err := e.validator.Struct(details); err != nil {
		return nil, err
	}

	if _, err := e.wines.GetWineByID(ctx, wineID); err != nil {
		return nil, err
	}

	recordPurchase := details.PurchasePrice != nil || details.PurchaseDate != nil || details.PurchaseLocation != nil
	purchaseDate := time.Now()

	if details.PurchaseDate != nil {
		purchaseDate = *details.PurchaseDate
	}

	bottles := make([]model.Bottle, 0, count)

	var purchases []model.BottleTransaction

	for i := 0; i < count; i++ {
		bottle := model.Bottle{
			ID:               uuid.New(),
			WineID:           wineID,
			Size:             defaultBottleSize,
			Barcode:          details.Barcode,
			Status:           model.StatusCellar,
			Location:         details.Location,
			Bin:              details.Bin,
			CurrentValue:     details.CurrentValue,
			PurchasePrice:    details.PurchasePrice,
			PurchaseLocation: details.PurchaseLocation,
			PurchaseDate:     details.PurchaseDate,
		}

		if details.Size != nil {
			bottle.Size = *details.Size
		}

		bottles = append(bottles, bottle)

		if recordPurchase {
			purchases = append(purchases, model.BottleTransaction{
				ID:              uuid.New(),
				BottleID:        bottle.ID,
				Type:            model.TransactionPurchase,
				TransactionDate: purchaseDate,
				Price:           details.PurchasePrice,
				Counterparty:    details.PurchaseLocation,
			})
		}
	}

	created, err := e.bottles.CreateBottles(ctx, bottles, purchases)
	if err != nil {
		return nil, err
	}

	e.logger.Info("added bottles",
		zap.String("wine_id", wineID.String()),
		zap.Int("count", len(created)),
		zap.Bool("purchase_recorded", recordPurchase))

	return created, nil
}

func (e *Engine) GetBottle(ctx context.Context, bottleID uuid.UUID) (*model.Bottle, error) {
	return e.bottles.GetBottleByID(ctx, bottleID)
}

func (e *Engine) GetBottlesForWine(ctx context.Context, wineID uuid.UUID) ([]*model.Bottle, error) {
	return e.bottles.GetBottlesForWine(ctx, wineID)
}

// UpdatePlacement edits the cached location and bin directly, without an
// event. Only cellared bottles still have a placement to edit; use
// RecordMovement when the move itself should be remembered.
func (e *Engine) UpdatePlacement(ctx context.Context, bottleID uuid.UUID, location *string, bin *string) (*model.Bottle, error) {
	bottle, err := e.bottles.GetBottleByID(ctx, bottleID)
	if err != nil {
		return nil, err
	}

	if bottle.Status != model.StatusCellar {
		return nil, fmt.Errorf("%w: cannot edit placement of a %s bottle", ErrInvalidTransition, bottle.Status)
	}

	bottle.Location = location
	bottle.Bin = bin

	return e.bottles.SaveBottle(ctx, bottle)
}

// DeleteBottle removes the bottle and its entire event history.
func (e *Engine) DeleteBottle(ctx context.Context, bottleID uuid.UUID) error {
	if err := e.bottles.DeleteBottle(ctx, bottleID); err != nil {
		return err
	}

	e.logger.Info("deleted bottle and its history", zap.String("bottle_id", bottleID.String()))

	return nil
}
