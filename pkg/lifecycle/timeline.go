package lifecycle

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"cellarbook.org/CellarBook/pkg/model"
)

func (e *Engine) GetHistory(ctx context.Context, bottleID uuid.UUID) (*model.BottleHistory, error) {
	return e.events.GetBottleHistory(ctx, bottleID)
}

func (e *Engine) GetTimeline(ctx context.Context, bottleID uuid.UUID) ([]model.TimelineEvent, error) {
	history, err := e.events.GetBottleHistory(ctx, bottleID)
	if err != nil {
		return nil, err
	}

	return Timeline(history), nil
}

// Timeline merges the three event streams into one list ordered by event
// date, oldest first.
func Timeline(history *model.BottleHistory) []model.TimelineEvent {
	events := make([]model.TimelineEvent, 0, len(history.Transactions)+len(history.Movements)+len(history.Tastings))

	for _, txn := range history.Transactions {
		events = append(events, model.TimelineEvent{
			ID:       txn.ID,
			BottleID: txn.BottleID,
			Kind:     model.EventKindTransaction,
			Date:     txn.TransactionDate,
			Summary:  transactionSummary(txn),
		})
	}

	for _, movement := range history.Movements {
		events = append(events, model.TimelineEvent{
			ID:       movement.ID,
			BottleID: movement.BottleID,
			Kind:     model.EventKindMovement,
			Date:     movement.MovedAt,
			Summary:  movementSummary(movement),
		})
	}

	for _, tasting := range history.Tastings {
		events = append(events, model.TimelineEvent{
			ID:       tasting.ID,
			BottleID: tasting.BottleID,
			Kind:     model.EventKindTasting,
			Date:     tasting.TastedAt,
			Summary:  tastingSummary(tasting),
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	return events
}

func transactionSummary(txn model.BottleTransaction) string {
	summary := string(txn.Type)

	if txn.Price != nil {
		summary = fmt.Sprintf("%s at %.2f", summary, *txn.Price)
	}

	if txn.Counterparty != nil {
		summary = fmt.Sprintf("%s (%s)", summary, *txn.Counterparty)
	}

	return summary
}

func movementSummary(movement model.BottleMovement) string {
	summary := fmt.Sprintf("moved to %s", movement.ToLocation)

	if movement.ToBin != nil {
		summary = fmt.Sprintf("%s, bin %s", summary, *movement.ToBin)
	}

	if movement.FromLocation != nil {
		summary = fmt.Sprintf("%s (from %s)", summary, *movement.FromLocation)
	}

	return summary
}

func tastingSummary(tasting model.BottleTasting) string {
	summary := "tasted"
	if tasting.Stage == model.StageConsumed {
		summary = "consumed"
	}

	if tasting.Rating != nil {
		summary = fmt.Sprintf("%s, rated %d", summary, *tasting.Rating)
	}

	return summary
}
