package lifecycle

import (
	"context"

	"github.com/google/uuid"

	"cellarbook.org/CellarBook/pkg/model"
)

// ComputeStats folds once over a wine's bottles. Cellar value only counts
// bottles still in the cellar; the average rating counts every bottle with
// a rating, whatever its status.
func ComputeStats(bottles []*model.Bottle) model.WineStats {
	var stats model.WineStats

	var ratingSum, ratingCount int

	for _, bottle := range bottles {
		stats.Total++

		switch bottle.Status {
		case model.StatusCellar:
			stats.InCellar++

			if bottle.CurrentValue != nil {
				stats.CellarValue += *bottle.CurrentValue
			}
		case model.StatusConsumed:
			stats.Consumed++
		case model.StatusGifted:
			stats.Gifted++
		case model.StatusSold:
			stats.Sold++
		case model.StatusDamaged:
			stats.Damaged++
		case model.StatusLost:
			stats.Lost++
		}

		if bottle.MyRating != nil {
			ratingSum += *bottle.MyRating
			ratingCount++
		}
	}

	if ratingCount > 0 {
		avg := float64(ratingSum) / float64(ratingCount)
		stats.AvgRating = &avg
	}

	return stats
}

func (e *Engine) GetWineStats(ctx context.Context, wineID uuid.UUID) (*model.WineStats, error) {
	if _, err := e.wines.GetWineByID(ctx, wineID); err != nil {
		return nil, err
	}

	bottles, err := e.bottles.GetBottlesForWine(ctx, wineID)
	if err != nil {
		return nil, err
	}

	stats := ComputeStats(bottles)

	return &stats, nil
}

func (e *Engine) GetCollectionSummary(ctx context.Context) (*model.CollectionSummary, error) {
	return e.bottles.GetCollectionSummary(ctx)
}
