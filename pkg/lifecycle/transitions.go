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
)

type lifecycleEvent string

const (
	eventConsume   lifecycleEvent = "consume"
	eventSale      lifecycleEvent = "sale"
	eventGift      lifecycleEvent = "gift"
	eventDamage    lifecycleEvent = "damage"
	eventLoss      lifecycleEvent = "loss"
	eventValuation lifecycleEvent = "valuation"
	eventMovement  lifecycleEvent = "movement"
	eventSample    lifecycleEvent = "sample"
)

// legalEvents is the full transition table: which lifecycle events a
// bottle in a given status admits. Sample tastings are legal always;
// everything else requires the bottle to still be in the cellar.
var legalEvents = map[model.BottleStatus]map[lifecycleEvent]bool{
	model.StatusCellar: {
		eventConsume:   true,
		eventSale:      true,
		eventGift:      true,
		eventDamage:    true,
		eventLoss:      true,
		eventValuation: true,
		eventMovement:  true,
		eventSample:    true,
	},
	model.StatusConsumed: {eventSample: true},
	model.StatusGifted:   {eventSample: true},
	model.StatusSold:     {eventSample: true},
	model.StatusDamaged:  {eventSample: true},
	model.StatusLost:     {eventSample: true},
}

func (e *Engine) guard(bottle *model.Bottle, event lifecycleEvent) error {
	if !legalEvents[bottle.Status][event] {
		return fmt.Errorf("%w: %s is not legal for a %s bottle", ErrInvalidTransition, event, bottle.Status)
	}

	return nil
}

// transitionError maps the store's stale-guard failure onto
// ErrInvalidTransition: the bottle left the expected status between the
// caller's read and the write, so the transition was never legal.
func (e *Engine) transitionError(err error, bottle *model.Bottle, event lifecycleEvent) error {
	if errors.Is(err, repository.ErrStaleBottle) {
		e.logger.Warn("lost transition race",
			zap.String("bottle_id", bottle.ID.String()),
			zap.String("event", string(event)))

		return fmt.Errorf("%w: bottle left status %s before %s was applied", ErrInvalidTransition, bottle.Status, event)
	}

	return err
}

// ConsumeParams describe the tasting that accompanies consumption. A nil
// Date means now.
type ConsumeParams struct {
	Rating      *int
	Notes       *string
	FoodPairing *string
	Occasion    *string
	Date        *time.Time
}

// Consume drinks the bottle: it appends the consuming tasting and flips
// the bottle's cache to consumed in one atomic step.
func (e *Engine) Consume(ctx context.Context, bottleID uuid.UUID, params ConsumeParams) (*model.Bottle, error) {
	bottle, err := e.bottles.GetBottleByID(ctx, bottleID)
	if err != nil {
		return nil, err
	}

	if err := e.guard(bottle, eventConsume); err != nil {
		return nil, err
	}

	date := time.Now()
	if params.Date != nil {
		date = *params.Date
	}

	tasting := model.BottleTasting{
		ID:          uuid.New(),
		BottleID:    bottleID,
		TastedAt:    date,
		Rating:      params.Rating,
		Notes:       params.Notes,
		FoodPairing: params.FoodPairing,
		Occasion:    params.Occasion,
		Stage:       model.StageConsumed,
	}

	if err := e.validator.Struct(tasting); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":        model.StatusConsumed,
		"consumed_date": date,
		"my_rating":     params.Rating,
		"my_notes":      params.Notes,
	}

	if err := e.events.RecordConsumption(ctx, tasting, updates); err != nil {
		return nil, e.transitionError(err, bottle, eventConsume)
	}

	return e.bottles.GetBottleByID(ctx, bottleID)
}

// DisposalParams describe a transaction that ends the bottle's life
// without drinking it. A nil Date means now.
type DisposalParams struct {
	Price        *float64
	Counterparty *string
	Notes        *string
	Date         *time.Time
}

func (e *Engine) Sell(ctx context.Context, bottleID uuid.UUID, params DisposalParams) (*model.Bottle, error) {
	return e.dispose(ctx, bottleID, eventSale, model.TransactionSale, model.StatusSold, params)
}

func (e *Engine) Gift(ctx context.Context, bottleID uuid.UUID, params DisposalParams) (*model.Bottle, error) {
	return e.dispose(ctx, bottleID, eventGift, model.TransactionGiftGiven, model.StatusGifted, params)
}

func (e *Engine) MarkDamaged(ctx context.Context, bottleID uuid.UUID, params DisposalParams) (*model.Bottle, error) {
	return e.dispose(ctx, bottleID, eventDamage, model.TransactionDamage, model.StatusDamaged, params)
}

func (e *Engine) MarkLost(ctx context.Context, bottleID uuid.UUID, params DisposalParams) (*model.Bottle, error) {
	return e.dispose(ctx, bottleID, eventLoss, model.TransactionLoss, model.StatusLost, params)
}

func (e *Engine) dispose(ctx context.Context, bottleID uuid.UUID, event lifecycleEvent, txnType model.TransactionType, toStatus model.BottleStatus, params DisposalParams) (*model.Bottle, error) {
	bottle, err := e.bottles.GetBottleByID(ctx, bottleID)
	if err != nil {
		return nil, err
	}

	if err := e.guard(bottle, event); err != nil {
		return nil, err
	}

	date := time.Now()
	if params.Date != nil {
		date = *params.Date
	}

	txn := model.BottleTransaction{
		ID:              uuid.New(),
		BottleID:        bottleID,
		Type:            txnType,
		TransactionDate: date,
		Price:           params.Price,
		Counterparty:    params.Counterparty,
		Notes:           params.Notes,
	}

	if err := e.validator.Struct(txn); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": toStatus}
	if params.Price != nil {
		updates["current_value"] = *params.Price
	}

	if err := e.events.ApplyTransaction(ctx, txn, model.StatusCellar, updates); err != nil {
		return nil, e.transitionError(err, bottle, event)
	}

	return e.bottles.GetBottleByID(ctx, bottleID)
}

// Revalue records a valuation transaction and moves the cached current
// value. Only cellared bottles are revalued; a disposed bottle's value is
// frozen at disposal.
func (e *Engine) Revalue(ctx context.Context, bottleID uuid.UUID, value float64, notes *string, date *time.Time) (*model.Bottle, error) {
	bottle, err := e.bottles.GetBottleByID(ctx, bottleID)
	if err != nil {
		return nil, err
	}

	if err := e.guard(bottle, eventValuation); err != nil {
		return nil, err
	}

	when := time.Now()
	if date != nil {
		when = *date
	}

	txn := model.BottleTransaction{
		ID:              uuid.New(),
		BottleID:        bottleID,
		Type:            model.TransactionValuation,
		TransactionDate: when,
		Price:           &value,
		Notes:           notes,
	}

	if err := e.validator.Struct(txn); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"current_value": value}

	if err := e.events.ApplyTransaction(ctx, txn, model.StatusCellar, updates); err != nil {
		return nil, e.transitionError(err, bottle, eventValuation)
	}

	return e.bottles.GetBottleByID(ctx, bottleID)
}

// RecordMovement appends a movement event and moves the cached placement.
// The from side is captured from the bottle's current cache.
func (e *Engine) RecordMovement(ctx context.Context, bottleID uuid.UUID, toLocation string, toBin *string, reason *string, notes *string) (*model.Bottle, error) {
	bottle, err := e.bottles.GetBottleByID(ctx, bottleID)
	if err != nil {
		return nil, err
	}

	if err := e.guard(bottle, eventMovement); err != nil {
		return nil, err
	}

	movement := model.BottleMovement{
		ID:           uuid.New(),
		BottleID:     bottleID,
		FromLocation: bottle.Location,
		FromBin:      bottle.Bin,
		ToLocation:   toLocation,
		ToBin:        toBin,
		MovedAt:      time.Now(),
		Reason:       reason,
		Notes:        notes,
	}

	if err := e.validator.Struct(movement); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"location": toLocation,
		"bin":      toBin,
	}

	if err := e.events.ApplyMovement(ctx, movement, updates); err != nil {
		return nil, e.transitionError(err, bottle, eventMovement)
	}

	return e.bottles.GetBottleByID(ctx, bottleID)
}

// TastingParams describe a sample tasting. A nil TastedAt means now.
type TastingParams struct {
	Rating      *int
	Notes       *string
	FoodPairing *string
	Occasion    *string
	TastedAt    *time.Time
}

// RecordTasting appends a sample tasting, legal in any status. The cached
// rating and notes follow the tasting with the latest tasted-at date, so a
// backdated tasting never clobbers a newer opinion.
func (e *Engine) RecordTasting(ctx context.Context, bottleID uuid.UUID, params TastingParams) (*model.Bottle, error) {
	bottle, err := e.bottles.GetBottleByID(ctx, bottleID)
	if err != nil {
		return nil, err
	}

	if err := e.guard(bottle, eventSample); err != nil {
		return nil, err
	}

	tastedAt := time.Now()
	if params.TastedAt != nil {
		tastedAt = *params.TastedAt
	}

	tasting := model.BottleTasting{
		ID:          uuid.New(),
		BottleID:    bottleID,
		TastedAt:    tastedAt,
		Rating:      params.Rating,
		Notes:       params.Notes,
		FoodPairing: params.FoodPairing,
		Occasion:    params.Occasion,
		Stage:       model.StageSample,
	}

	if err := e.validator.Struct(tasting); err != nil {
		return nil, err
	}

	latest, err := e.events.GetLatestTasting(ctx, bottleID)
	if err != nil {
		return nil, err
	}

	var updates map[string]interface{}

	hasOpinion := params.Rating != nil || params.Notes != nil
	if hasOpinion && (latest == nil || !tasting.TastedAt.Before(latest.TastedAt)) {
		updates = map[string]interface{}{
			"my_rating": params.Rating,
			"my_notes":  params.Notes,
		}
	}

	if err := e.events.AppendTasting(ctx, tasting, updates); err != nil {
		return nil, err
	}

	return e.bottles.GetBottleByID(ctx, bottleID)
}
