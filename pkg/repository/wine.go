package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cellarbook.org/CellarBook/pkg/model"
)

var ErrWineNotFound = errors.New("wine not found")

type WineRepository interface {
	GetWines(ctx context.Context) ([]*model.Wine, error)
	GetWineByID(ctx context.Context, wineID uuid.UUID) (*model.Wine, error)
	CreateWine(ctx context.Context, wine model.Wine) (*model.Wine, error)
	SaveWine(ctx context.Context, wine *model.Wine) (*model.Wine, error)
	DeleteWine(ctx context.Context, wineID uuid.UUID) error
	SearchWines(ctx context.Context, query string) ([]*model.Wine, error)
}

func (r *Repository) GetWines(ctx context.Context) ([]*model.Wine, error) {
	var wines []*model.Wine

	result := r.DB.WithContext(ctx).Order("created_at desc").Find(&wines)
	if result.Error != nil {
		r.Logger.Error("error listing wines", zap.Error(result.Error))

		return nil, result.Error
	}

	return wines, nil
}

func (r *Repository) GetWineByID(ctx context.Context, wineID uuid.UUID) (*model.Wine, error) {
	var wine model.Wine

	result := r.DB.WithContext(ctx).First(&wine, "id = ?", wineID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrWineNotFound
		}

		return nil, result.Error
	}

	return &wine, nil
}

func (r *Repository) CreateWine(ctx context.Context, wine model.Wine) (*model.Wine, error) {
	// Bottles only ever enter the ledger through the lifecycle engine,
	// never as an association side effect of a catalog write.
	if result := r.DB.WithContext(ctx).Omit(clause.Associations).Create(&wine); result.Error != nil {
		return nil, result.Error
	}

	return &wine, nil
}

func (r *Repository) SaveWine(ctx context.Context, wine *model.Wine) (*model.Wine, error) {
	if result := r.DB.WithContext(ctx).Omit(clause.Associations).Save(wine); result.Error != nil {
		return nil, result.Error
	}

	return wine, nil
}

func (r *Repository) DeleteWine(ctx context.Context, wineID uuid.UUID) error {
	result := r.DB.WithContext(ctx).Delete(&model.Wine{}, "id = ?", wineID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrWineNotFound
	}

	return nil
}

func (r *Repository) SearchWines(ctx context.Context, query string) ([]*model.Wine, error) {
	var wines []*model.Wine

	pattern := "%" + query + "%"

	result := r.DB.WithContext(ctx).
		Where("name ILIKE ? OR producer ILIKE ? OR region ILIKE ?", pattern, pattern, pattern).
		Order("name asc").
		Find(&wines)
	if result.Error != nil {
		r.Logger.Error("error searching wines", zap.String("query", query), zap.Error(result.Error))

		return nil, result.Error
	}

	return wines, nil
}
