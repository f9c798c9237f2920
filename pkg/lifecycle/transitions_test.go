package lifecycle_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.openly.dev/pointy"

	"cellarbook.org/CellarBook/pkg/lifecycle"
	"cellarbook.org/CellarBook/pkg/model"
	"cellarbook.org/CellarBook/pkg/repository"
	"cellarbook.org/CellarBook/pkg/validate"
)

func (suite *EngineTestSuite) TestConsume_Success() {
	ctx := context.Background()
	bottleID := uuid.New()
	bottle := suite.cellarBottle(bottleID)
	consumed := *bottle
	consumed.Status = model.StatusConsumed
	consumed.MyRating = pointy.Int(92)

	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(bottle, nil).Once()
	suite.eventRepo.EXPECT().RecordConsumption(ctx,
		mock.MatchedBy(func(tasting model.BottleTasting) bool {
			return tasting.BottleID == bottleID &&
				tasting.Stage == model.StageConsumed &&
				tasting.Rating != nil && *tasting.Rating == 92
		}),
		mock.MatchedBy(func(updates map[string]interface{}) bool {
			return updates["status"] == model.StatusConsumed && updates["consumed_date"] != nil
		}),
	).Return(nil)
	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(&consumed, nil).Once()

	result, err := suite.engine.Consume(ctx, bottleID, lifecycle.ConsumeParams{
		Rating: pointy.Int(92),
		Notes:  pointy.String("Stunning with the duck."),
	})
	suite.Require().NoError(err)
	suite.Equal(model.StatusConsumed, result.Status)
	suite.Equal(92, *result.MyRating)
}

func (suite *EngineTestSuite) TestConsume_TerminalBottle() {
	ctx := context.Background()
	bottleID := uuid.New()
	bottle := suite.cellarBottle(bottleID)
	bottle.Status = model.StatusSold

	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(bottle, nil)

	result, err := suite.engine.Consume(ctx, bottleID, lifecycle.ConsumeParams{})
	suite.Require().ErrorIs(err, lifecycle.ErrInvalidTransition)
	suite.Nil(result)
}

func (suite *EngineTestSuite) TestConsume_LostRace() {
	ctx := context.Background()
	bottleID := uuid.New()
	bottle := suite.cellarBottle(bottleID)

	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(bottle, nil)
	suite.eventRepo.EXPECT().RecordConsumption(ctx, mock.Anything, mock.Anything).Return(repository.ErrStaleBottle)

	result, err := suite.engine.Consume(ctx, bottleID, lifecycle.ConsumeParams{})
	suite.Require().ErrorIs(err, lifecycle.ErrInvalidTransition)
	suite.Nil(result)
}

func (suite *EngineTestSuite) TestConsume_BadRating() {
	ctx := context.Background()
	bottleID := uuid.New()

	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(suite.cellarBottle(bottleID), nil)

	result, err := suite.engine.Consume(ctx, bottleID, lifecycle.ConsumeParams{Rating: pointy.Int(150)})
	suite.Require().ErrorIs(err, validate.ErrValidation)
	suite.Nil(result)
}

func (suite *EngineTestSuite) TestSell_Success() {
	ctx := context.Background()
	bottleID := uuid.New()
	bottle := suite.cellarBottle(bottleID)
	sold := *bottle
	sold.Status = model.StatusSold
	sold.CurrentValue = pointy.Float64(120)

	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(bottle, nil).Once()
	suite.eventRepo.EXPECT().ApplyTransaction(ctx,
		mock.MatchedBy(func(txn model.BottleTransaction) bool {
			return txn.BottleID == bottleID &&
				txn.Type == model.TransactionSale &&
				txn.Price != nil && *txn.Price == 120 &&
				txn.Counterparty != nil && *txn.Counterparty == "Auction house"
		}),
		model.StatusCellar,
		mock.MatchedBy(func(updates map[string]interface{}) bool {
			return updates["status"] == model.StatusSold && updates["current_value"] == 120.0
		}),
	).Return(nil)
	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(&sold, nil).Once()

	result, err := suite.engine.Sell(ctx, bottleID, lifecycle.DisposalParams{
		Price:        pointy.Float64(120),
		Counterparty: pointy.String("Auction house"),
	})
	suite.Require().NoError(err)
	suite.Equal(model.StatusSold, result.Status)
	suite.Equal(120.0, *result.CurrentValue)
}

func (suite *EngineTestSuite) TestGift_Success() {
	ctx := context.Background()
	bottleID := uuid.New()
	bottle := suite.cellarBottle(bottleID)
	gifted := *bottle
	gifted.Status = model.StatusGifted

	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(bottle, nil).Once()
	suite.eventRepo.EXPECT().ApplyTransaction(ctx,
		mock.MatchedBy(func(txn model.BottleTransaction) bool {
			return txn.Type == model.TransactionGiftGiven && txn.Price == nil
		}),
		model.StatusCellar,
		mock.MatchedBy(func(updates map[string]interface{}) bool {
			_, touchesValue := updates["current_value"]
			return updates["status"] == model.StatusGifted && !touchesValue
		}),
	).Return(nil)
	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(&gifted, nil).Once()

	result, err := suite.engine.Gift(ctx, bottleID, lifecycle.DisposalParams{
		Counterparty: pointy.String("Dad"),
	})
	suite.Require().NoError(err)
	suite.Equal(model.StatusGifted, result.Status)
}

func (suite *EngineTestSuite) TestMarkDamaged_Success() {
	ctx := context.Background()
	bottleID := uuid.New()
	bottle := suite.cellarBottle(bottleID)
	damaged := *bottle
	damaged.Status = model.StatusDamaged

	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(bottle, nil).Once()
	suite.eventRepo.EXPECT().ApplyTransaction(ctx,
		mock.MatchedBy(func(txn model.BottleTransaction) bool {
			return txn.Type == model.TransactionDamage &&
				txn.Notes != nil && *txn.Notes == "Cork failure, leaked in storage"
		}),
		model.StatusCellar,
		mock.Anything,
	).Return(nil)
	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(&damaged, nil).Once()

	result, err := suite.engine.MarkDamaged(ctx, bottleID, lifecycle.DisposalParams{
		Notes: pointy.String("Cork failure, leaked in storage"),
	})
	suite.Require().NoError(err)
	suite.Equal(model.StatusDamaged, result.Status)
}

func (suite *EngineTestSuite) TestMarkLost_Terminal() {
	ctx := context.Background()
	bottleID := uuid.New()
	bottle := suite.cellarBottle(bottleID)
	bottle.Status = model.StatusLost

	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(bottle, nil)

	result, err := suite.engine.MarkLost(ctx, bottleID, lifecycle.DisposalParams{})
	suite.Require().ErrorIs(err, lifecycle.ErrInvalidTransition)
	suite.Nil(result)
}

func (suite *EngineTestSuite) TestRevalue_Success() {
	ctx := context.Background()
	bottleID := uuid.New()
	bottle := suite.cellarBottle(bottleID)
	revalued := *bottle
	revalued.CurrentValue = pointy.Float64(85)

	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(bottle, nil).Once()
	suite.eventRepo.EXPECT().ApplyTransaction(ctx,
		mock.MatchedBy(func(txn model.BottleTransaction) bool {
			return txn.Type == model.TransactionValuation && txn.Price != nil && *txn.Price == 85
		}),
		model.StatusCellar,
		mock.MatchedBy(func(updates map[string]interface{}) bool {
			_, touchesStatus := updates["status"]
			return updates["current_value"] == 85.0 && !touchesStatus
		}),
	).Return(nil)
	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(&revalued, nil).Once()

	result, err := suite.engine.Revalue(ctx, bottleID, 85, nil, nil)
	suite.Require().NoError(err)
	suite.Equal(model.StatusCellar, result.Status)
	suite.Equal(85.0, *result.CurrentValue)
}

func (suite *EngineTestSuite) TestRevalue_TerminalBottle() {
	ctx := context.Background()
	bottleID := uuid.New()
	bottle := suite.cellarBottle(bottleID)
	bottle.Status = model.StatusGifted

	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(bottle, nil)

	result, err := suite.engine.Revalue(ctx, bottleID, 85, nil, nil)
	suite.Require().ErrorIs(err, lifecycle.ErrInvalidTransition)
	suite.Nil(result)
}

func (suite *EngineTestSuite) TestRecordMovement_Success() {
	ctx := context.Background()
	bottleID := uuid.New()
	bottle := suite.cellarBottle(bottleID)
	moved := *bottle
	moved.Location = pointy.String("Offsite storage")
	moved.Bin = nil

	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(bottle, nil).Once()
	suite.eventRepo.EXPECT().ApplyMovement(ctx,
		mock.MatchedBy(func(movement model.BottleMovement) bool {
			return movement.BottleID == bottleID &&
				movement.FromLocation != nil && *movement.FromLocation == "Rack A" &&
				movement.FromBin != nil && *movement.FromBin == "3" &&
				movement.ToLocation == "Offsite storage" &&
				movement.ToBin == nil
		}),
		mock.MatchedBy(func(updates map[string]interface{}) bool {
			return updates["location"] == "Offsite storage"
		}),
	).Return(nil)
	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(&moved, nil).Once()

	result, err := suite.engine.RecordMovement(ctx, bottleID, "Offsite storage", nil, pointy.String("reorganisation"), nil)
	suite.Require().NoError(err)
	suite.Equal("Offsite storage", *result.Location)
}

func (suite *EngineTestSuite) TestRecordMovement_TerminalBottle() {
	ctx := context.Background()
	bottleID := uuid.New()
	bottle := suite.cellarBottle(bottleID)
	bottle.Status = model.StatusConsumed

	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(bottle, nil)

	result, err := suite.engine.RecordMovement(ctx, bottleID, "Offsite storage", nil, nil, nil)
	suite.Require().ErrorIs(err, lifecycle.ErrInvalidTransition)
	suite.Nil(result)
}

func (suite *EngineTestSuite) TestRecordMovement_LostRace() {
	ctx := context.Background()
	bottleID := uuid.New()
	bottle := suite.cellarBottle(bottleID)

	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(bottle, nil)
	suite.eventRepo.EXPECT().ApplyMovement(ctx, mock.Anything, mock.Anything).Return(repository.ErrStaleBottle)

	result, err := suite.engine.RecordMovement(ctx, bottleID, "Offsite storage", nil, nil, nil)
	suite.Require().ErrorIs(err, lifecycle.ErrInvalidTransition)
	suite.Nil(result)
}

func (suite *EngineTestSuite) TestRecordTasting_LatestWins() {
	ctx := context.Background()
	bottleID := uuid.New()
	bottle := suite.cellarBottle(bottleID)
	tasted := *bottle
	tasted.MyRating = pointy.Int(88)

	older := &model.BottleTasting{
		ID:       uuid.New(),
		BottleID: bottleID,
		TastedAt: time.Now().AddDate(0, -6, 0),
		Rating:   pointy.Int(85),
		Stage:    model.StageSample,
	}

	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(bottle, nil).Once()
	suite.eventRepo.EXPECT().GetLatestTasting(ctx, bottleID).Return(older, nil)
	suite.eventRepo.EXPECT().AppendTasting(ctx,
		mock.MatchedBy(func(tasting model.BottleTasting) bool {
			return tasting.Stage == model.StageSample && tasting.Rating != nil && *tasting.Rating == 88
		}),
		mock.MatchedBy(func(updates map[string]interface{}) bool {
			return updates != nil && updates["my_rating"] != nil
		}),
	).Return(nil)
	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(&tasted, nil).Once()

	result, err := suite.engine.RecordTasting(ctx, bottleID, lifecycle.TastingParams{Rating: pointy.Int(88)})
	suite.Require().NoError(err)
	suite.Equal(88, *result.MyRating)
}

func (suite *EngineTestSuite) TestRecordTasting_BackdatedKeepsCache() {
	ctx := context.Background()
	bottleID := uuid.New()
	bottle := suite.cellarBottle(bottleID)
	bottle.MyRating = pointy.Int(91)

	newest := &model.BottleTasting{
		ID:       uuid.New(),
		BottleID: bottleID,
		TastedAt: time.Now(),
		Rating:   pointy.Int(91),
		Stage:    model.StageSample,
	}

	backdated := time.Now().AddDate(-1, 0, 0)

	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(bottle, nil)
	suite.eventRepo.EXPECT().GetLatestTasting(ctx, bottleID).Return(newest, nil)
	suite.eventRepo.EXPECT().AppendTasting(ctx,
		mock.MatchedBy(func(tasting model.BottleTasting) bool {
			return tasting.TastedAt.Equal(backdated)
		}),
		mock.MatchedBy(func(updates map[string]interface{}) bool { return updates == nil }),
	).Return(nil)

	result, err := suite.engine.RecordTasting(ctx, bottleID, lifecycle.TastingParams{
		Rating:   pointy.Int(70),
		TastedAt: &backdated,
	})
	suite.Require().NoError(err)
	suite.Equal(91, *result.MyRating)
}

func (suite *EngineTestSuite) TestRecordTasting_LegalOnConsumedBottle() {
	ctx := context.Background()
	bottleID := uuid.New()
	bottle := suite.cellarBottle(bottleID)
	bottle.Status = model.StatusConsumed

	suite.bottleRepo.EXPECT().GetBottleByID(ctx, bottleID).Return(bottle, nil)
	suite.eventRepo.EXPECT().GetLatestTasting(ctx, bottleID).Return(nil, nil)
	suite.eventRepo.EXPECT().AppendTasting(ctx,
		mock.MatchedBy(func(tasting model.BottleTasting) bool { return tasting.Stage == model.StageSample }),
		mock.MatchedBy(func(updates map[string]interface{}) bool { return updates != nil }),
	).Return(nil)

	result, err := suite.engine.RecordTasting(ctx, bottleID, lifecycle.TastingParams{Notes: pointy.String("Held up well.")})
	suite.Require().NoError(err)
	suite.NotNil(result)
}
