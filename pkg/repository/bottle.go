package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cellarbook.org/CellarBook/pkg/model"
)

var ErrBottleNotFound = errors.New("bottle not found")

type BottleRepository interface {
	GetBottlesForWine(ctx context.Context, wineID uuid.UUID) ([]*model.Bottle, error)
	GetBottleByID(ctx context.Context, bottleID uuid.UUID) (*model.Bottle, error)
	CreateBottles(ctx context.Context, bottles []model.Bottle, purchases []model.BottleTransaction) ([]model.Bottle, error)
	SaveBottle(ctx context.Context, bottle *model.Bottle) (*model.Bottle, error)
	DeleteBottle(ctx context.Context, bottleID uuid.UUID) error
	GetCollectionSummary(ctx context.Context) (*model.CollectionSummary, error)
}

func (r *Repository) GetBottlesForWine(ctx context.Context, wineID uuid.UUID) ([]*model.Bottle, error) {
	var bottles []*model.Bottle

	result := r.DB.WithContext(ctx).
		Where("wine_id = ?", wineID).
		Order("created_at desc").
		Find(&bottles)
	if result.Error != nil {
		return nil, result.Error
	}

	return bottles, nil
}

func (r *Repository) GetBottleByID(ctx context.Context, bottleID uuid.UUID) (*model.Bottle, error) {
	var bottle model.Bottle

	result := r.DB.WithContext(ctx).First(&bottle, "id = ?", bottleID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBottleNotFound
		}

		return nil, result.Error
	}

	return &bottle, nil
}

// CreateBottles inserts a batch of bottles and their originating purchase
// transactions in one store transaction. Either every row lands or none do.
func (r *Repository) CreateBottles(ctx context.Context, bottles []model.Bottle, purchases []model.BottleTransaction) ([]model.Bottle, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(&bottles); result.Error != nil {
			return result.Error
		}

		if len(purchases) > 0 {
			if result := tx.Create(&purchases); result.Error != nil {
				return result.Error
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return bottles, nil
}

func (r *Repository) SaveBottle(ctx context.Context, bottle *model.Bottle) (*model.Bottle, error) {
	if result := r.DB.WithContext(ctx).Save(bottle); result.Error != nil {
		return nil, result.Error
	}

	return bottle, nil
}

// DeleteBottle is a hard removal: the bottle's event history goes with it.
func (r *Repository) DeleteBottle(ctx context.Context, bottleID uuid.UUID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Delete(&model.BottleTransaction{}, "bottle_id = ?", bottleID); result.Error != nil {
			return result.Error
		}

		if result := tx.Delete(&model.BottleMovement{}, "bottle_id = ?", bottleID); result.Error != nil {
			return result.Error
		}

		if result := tx.Delete(&model.BottleTasting{}, "bottle_id = ?", bottleID); result.Error != nil {
			return result.Error
		}

		result := tx.Delete(&model.Bottle{}, "id = ?", bottleID)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return ErrBottleNotFound
		}

		return nil
	})
}

func (r *Repository) GetCollectionSummary(ctx context.Context) (*model.CollectionSummary, error) {
	var summary model.CollectionSummary

	result := r.DB.WithContext(ctx).Table("bottles").
		Select("count(*) as bottle_count, " +
			"sum(case when status = 'cellar' then 1 else 0 end) as cellar_count, " +
			"sum(case when status = 'consumed' then 1 else 0 end) as consumed_count, " +
			"sum(case when status = 'gifted' then 1 else 0 end) as gifted_count, " +
			"sum(case when status = 'sold' then 1 else 0 end) as sold_count, " +
			"sum(case when status = 'damaged' then 1 else 0 end) as damaged_count, " +
			"sum(case when status = 'lost' then 1 else 0 end) as lost_count, " +
			"coalesce(sum(case when status = 'cellar' then current_value else 0 end), 0) as cellar_value, " +
			"count(distinct case when status = 'cellar' then wine_id end) as wine_count, " +
			"avg(my_rating) as average_rating").
		Scan(&summary)

	if result.Error != nil {
		return nil, result.Error
	}

	return &summary, nil
}
