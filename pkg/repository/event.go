package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cellarbook.org/CellarBook/pkg/model"
)

// ErrStaleBottle means a guarded cache update matched no row: the bottle
// either vanished or changed status between the caller's read and this
// write. The surrounding store transaction is rolled back, so no event
// row survives either.
var ErrStaleBottle = errors.New("bottle state changed")

type EventRepository interface {
	ApplyTransaction(ctx context.Context, txn model.BottleTransaction, fromStatus model.BottleStatus, updates map[string]interface{}) error
	ApplyMovement(ctx context.Context, movement model.BottleMovement, updates map[string]interface{}) error
	RecordConsumption(ctx context.Context, tasting model.BottleTasting, updates map[string]interface{}) error
	AppendTasting(ctx context.Context, tasting model.BottleTasting, updates map[string]interface{}) error
	GetTransactionsForBottle(ctx context.Context, bottleID uuid.UUID) ([]model.BottleTransaction, error)
	GetMovementsForBottle(ctx context.Context, bottleID uuid.UUID) ([]model.BottleMovement, error)
	GetTastingsForBottle(ctx context.Context, bottleID uuid.UUID) ([]model.BottleTasting, error)
	GetLatestTasting(ctx context.Context, bottleID uuid.UUID) (*model.BottleTasting, error)
	GetBottleHistory(ctx context.Context, bottleID uuid.UUID) (*model.BottleHistory, error)
}

// ApplyTransaction appends txn and applies the cached-state updates to its
// bottle in one store transaction. The update is guarded on fromStatus.
func (r *Repository) ApplyTransaction(ctx context.Context, txn model.BottleTransaction, fromStatus model.BottleStatus, updates map[string]interface{}) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(&txn); result.Error != nil {
			return result.Error
		}

		return r.guardedUpdate(tx, txn.BottleID, fromStatus, updates)
	})
}

// ApplyMovement appends the movement and moves the location/bin cache.
// Movements are only legal while the bottle is still in the cellar.
func (r *Repository) ApplyMovement(ctx context.Context, movement model.BottleMovement, updates map[string]interface{}) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(&movement); result.Error != nil {
			return result.Error
		}

		return r.guardedUpdate(tx, movement.BottleID, model.StatusCellar, updates)
	})
}

// RecordConsumption appends the consuming tasting and flips the bottle's
// cache out of the cellar, guarded against concurrent transitions.
func (r *Repository) RecordConsumption(ctx context.Context, tasting model.BottleTasting, updates map[string]interface{}) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(&tasting); result.Error != nil {
			return result.Error
		}

		return r.guardedUpdate(tx, tasting.BottleID, model.StatusCellar, updates)
	})
}

// AppendTasting appends a sample tasting; updates may be nil when the
// tasting is not authoritative for the bottle's cached rating.
func (r *Repository) AppendTasting(ctx context.Context, tasting model.BottleTasting, updates map[string]interface{}) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(&tasting); result.Error != nil {
			return result.Error
		}

		if len(updates) == 0 {
			return nil
		}

		result := tx.Model(&model.Bottle{}).Where("id = ?", tasting.BottleID).Updates(updates)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return ErrBottleNotFound
		}

		return nil
	})
}

func (r *Repository) guardedUpdate(tx *gorm.DB, bottleID uuid.UUID, fromStatus model.BottleStatus, updates map[string]interface{}) error {
	result := tx.Model(&model.Bottle{}).
		Where("id = ? AND status = ?", bottleID, fromStatus).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		r.Logger.Warn("bottle changed under us, rolling back event",
			zap.String("bottle_id", bottleID.String()),
			zap.String("expected_status", string(fromStatus)))

		return ErrStaleBottle
	}

	return nil
}

func (r *Repository) GetTransactionsForBottle(ctx context.Context, bottleID uuid.UUID) ([]model.BottleTransaction, error) {
	var transactions []model.BottleTransaction

	result := r.DB.WithContext(ctx).
		Where("bottle_id = ?", bottleID).
		Order("transaction_date asc").
		Find(&transactions)
	if result.Error != nil {
		return nil, result.Error
	}

	return transactions, nil
}

func (r *Repository) GetMovementsForBottle(ctx context.Context, bottleID uuid.UUID) ([]model.BottleMovement, error) {
	var movements []model.BottleMovement

	result := r.DB.WithContext(ctx).
		Where("bottle_id = ?", bottleID).
		Order("moved_at asc").
		Find(&movements)
	if result.Error != nil {
		return nil, result.Error
	}

	return movements, nil
}

func (r *Repository) GetTastingsForBottle(ctx context.Context, bottleID uuid.UUID) ([]model.BottleTasting, error) {
	var tastings []model.BottleTasting

	result := r.DB.WithContext(ctx).
		Where("bottle_id = ?", bottleID).
		Order("tasted_at asc").
		Find(&tastings)
	if result.Error != nil {
		return nil, result.Error
	}

	return tastings, nil
}

// GetLatestTasting returns nil without error when the bottle has no tastings.
func (r *Repository) GetLatestTasting(ctx context.Context, bottleID uuid.UUID) (*model.BottleTasting, error) {
	var tasting model.BottleTasting

	result := r.DB.WithContext(ctx).
		Where("bottle_id = ?", bottleID).
		Order("tasted_at desc").
		First(&tasting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, result.Error
	}

	return &tasting, nil
}

func (r *Repository) GetBottleHistory(ctx context.Context, bottleID uuid.UUID) (*model.BottleHistory, error) {
	bottle, err := r.GetBottleByID(ctx, bottleID)
	if err != nil {
		return nil, err
	}

	history := model.BottleHistory{Bottle: *bottle}

	if history.Transactions, err = r.GetTransactionsForBottle(ctx, bottleID); err != nil {
		return nil, err
	}

	if history.Movements, err = r.GetMovementsForBottle(ctx, bottleID); err != nil {
		return nil, err
	}

	if history.Tastings, err = r.GetTastingsForBottle(ctx, bottleID); err != nil {
		return nil, err
	}

	return &history, nil
}
