package lifecycle_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.openly.dev/pointy"

	"cellarbook.org/CellarBook/pkg/lifecycle"
	"cellarbook.org/CellarBook/pkg/model"
)

func (suite *EngineTestSuite) TestTimeline_MergesAndOrders() {
	bottleID := uuid.New()
	day := func(offset int) time.Time {
		return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}

	history := &model.BottleHistory{
		Bottle: model.Bottle{ID: bottleID, Status: model.StatusConsumed},
		Transactions: []model.BottleTransaction{
			{ID: uuid.New(), BottleID: bottleID, Type: model.TransactionPurchase, TransactionDate: day(0), Price: pointy.Float64(45), Counterparty: pointy.String("K&L Wines")},
			{ID: uuid.New(), BottleID: bottleID, Type: model.TransactionValuation, TransactionDate: day(20), Price: pointy.Float64(60)},
		},
		Movements: []model.BottleMovement{
			{ID: uuid.New(), BottleID: bottleID, ToLocation: "Rack B", ToBin: pointy.String("4"), MovedAt: day(10), FromLocation: pointy.String("Rack A")},
		},
		Tastings: []model.BottleTasting{
			{ID: uuid.New(), BottleID: bottleID, TastedAt: day(30), Rating: pointy.Int(92), Stage: model.StageConsumed},
		},
	}

	timeline := lifecycle.Timeline(history)
	suite.Require().Len(timeline, 4)
	suite.Equal(model.EventKindTransaction, timeline[0].Kind)
	suite.Equal("purchase at 45.00 (K&L Wines)", timeline[0].Summary)
	suite.Equal(model.EventKindMovement, timeline[1].Kind)
	suite.Equal("moved to Rack B, bin 4 (from Rack A)", timeline[1].Summary)
	suite.Equal(model.EventKindTransaction, timeline[2].Kind)
	suite.Equal("valuation at 60.00", timeline[2].Summary)
	suite.Equal(model.EventKindTasting, timeline[3].Kind)
	suite.Equal("consumed, rated 92", timeline[3].Summary)

	for i := 1; i < len(timeline); i++ {
		suite.False(timeline[i].Date.Before(timeline[i-1].Date))
	}
}

func (suite *EngineTestSuite) TestTimeline_Empty() {
	history := &model.BottleHistory{Bottle: model.Bottle{ID: uuid.New()}}

	timeline := lifecycle.Timeline(history)
	suite.Empty(timeline)
}

func (suite *EngineTestSuite) TestGetTimeline_Success() {
	ctx := context.Background()
	bottleID := uuid.New()
	history := &model.BottleHistory{
		Bottle: model.Bottle{ID: bottleID},
		Tastings: []model.BottleTasting{
			{ID: uuid.New(), BottleID: bottleID, TastedAt: time.Now(), Stage: model.StageSample},
		},
	}

	suite.eventRepo.EXPECT().GetBottleHistory(ctx, bottleID).Return(history, nil)

	timeline, err := suite.engine.GetTimeline(ctx, bottleID)
	suite.Require().NoError(err)
	suite.Len(timeline, 1)
	suite.Equal("tasted", timeline[0].Summary)
}

func (suite *EngineTestSuite) TestGetHistory_Success() {
	ctx := context.Background()
	bottleID := uuid.New()
	history := &model.BottleHistory{Bottle: model.Bottle{ID: bottleID}}

	suite.eventRepo.EXPECT().GetBottleHistory(ctx, bottleID).Return(history, nil)

	result, err := suite.engine.GetHistory(ctx, bottleID)
	suite.Require().NoError(err)
	suite.Equal(history, result)
}
