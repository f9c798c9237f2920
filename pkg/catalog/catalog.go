package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cellarbook.org/CellarBook/pkg/model"
	"cellarbook.org/CellarBook/pkg/repository"
	"cellarbook.org/CellarBook/pkg/validate"
)

// Catalog manages master wine records. Bottles against a wine are the
// lifecycle engine's concern.
type Catalog struct {
	logger    *zap.Logger
	validator *validate.Validator
	wines     repository.WineRepository
}

func NewCatalog(wines repository.WineRepository, logger *zap.Logger) *Catalog {
	return &Catalog{wines: wines, validator: validate.New(), logger: logger}
}

func (c *Catalog) ListWines(ctx context.Context) ([]*model.Wine, error) {
	return c.wines.GetWines(ctx)
}

func (c *Catalog) GetWine(ctx context.Context, wineID uuid.UUID) (*model.Wine, error) {
	return c.wines.GetWineByID(ctx, wineID)
}

func (c *Catalog) CreateWine(ctx context.Context, wine model.Wine) (*model.Wine, error) {
	if err := c.validator.Struct(wine); err != nil {
		return nil, err
	}

	if wine.ID == uuid.Nil {
		wine.ID = uuid.New()
	}

	created, err := c.wines.CreateWine(ctx, wine)
	if err != nil {
		return nil, err
	}

	c.logger.Info("created wine", zap.String("wine_id", created.ID.String()), zap.String("name", created.Name))

	return created, nil
}

func (c *Catalog) UpdateWine(ctx context.Context, wineID uuid.UUID, update model.WineUpdate) (*model.Wine, error) {
	if err := c.validator.Struct(update); err != nil {
		return nil, err
	}

	wine, err := c.wines.GetWineByID(ctx, wineID)
	if err != nil {
		return nil, err
	}

	applyWineUpdate(wine, update)

	return c.wines.SaveWine(ctx, wine)
}

// DeleteWine removes the master record. The store rejects the delete
// while bottles still reference the wine.
func (c *Catalog) DeleteWine(ctx context.Context, wineID uuid.UUID) error {
	return c.wines.DeleteWine(ctx, wineID)
}

func (c *Catalog) SearchWines(ctx context.Context, query string) ([]*model.Wine, error) {
	if query == "" {
		return c.wines.GetWines(ctx)
	}

	return c.wines.SearchWines(ctx, query)
}

//nolint:cyclop // field-by-field partial update, as simple as it gets
func applyWineUpdate(wine *model.Wine, update model.WineUpdate) {
	if update.Name != nil {
		wine.Name = *update.Name
	}

	if update.Producer != nil {
		wine.Producer = update.Producer
	}

	if update.Vintage != nil {
		wine.Vintage = update.Vintage
	}

	if update.Type != nil {
		wine.Type = update.Type
	}

	if update.Varietal != nil {
		wine.Varietal = update.Varietal
	}

	if update.MasterVarietal != nil {
		wine.MasterVarietal = update.MasterVarietal
	}

	if update.Country != nil {
		wine.Country = update.Country
	}

	if update.Region != nil {
		wine.Region = update.Region
	}

	if update.SubRegion != nil {
		wine.SubRegion = update.SubRegion
	}

	if update.Appellation != nil {
		wine.Appellation = update.Appellation
	}

	if update.ABV != nil {
		wine.ABV = update.ABV
	}

	if update.RatingMin != nil {
		wine.RatingMin = update.RatingMin
	}

	if update.RatingMax != nil {
		wine.RatingMax = update.RatingMax
	}

	if update.RatingNotes != nil {
		wine.RatingNotes = update.RatingNotes
	}

	if update.FoodPairing != nil {
		wine.FoodPairing = update.FoodPairing
	}

	if update.BeginConsume != nil {
		wine.BeginConsume = update.BeginConsume
	}

	if update.EndConsume != nil {
		wine.EndConsume = update.EndConsume
	}

	if update.ImageURL != nil {
		wine.ImageURL = update.ImageURL
	}
}
