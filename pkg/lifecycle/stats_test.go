package lifecycle_test

import (
	"context"

	"github.com/google/uuid"
	"go.openly.dev/pointy"

	"cellarbook.org/CellarBook/pkg/lifecycle"
	"cellarbook.org/CellarBook/pkg/model"
	"cellarbook.org/CellarBook/pkg/repository"
)

func (suite *EngineTestSuite) TestComputeStats_Empty() {
	stats := lifecycle.ComputeStats(nil)
	suite.Equal(0, stats.Total)
	suite.Equal(0.0, stats.CellarValue)
	suite.Nil(stats.AvgRating)
}

func (suite *EngineTestSuite) TestComputeStats_MixedStatuses() {
	bottles := []*model.Bottle{
		{Status: model.StatusCellar, CurrentValue: pointy.Float64(40)},
		{Status: model.StatusCellar, CurrentValue: pointy.Float64(60)},
		{Status: model.StatusCellar},
		{Status: model.StatusConsumed, MyRating: pointy.Int(90)},
		{Status: model.StatusConsumed, MyRating: pointy.Int(80)},
		{Status: model.StatusGifted},
		{Status: model.StatusSold, CurrentValue: pointy.Float64(200)},
		{Status: model.StatusDamaged},
		{Status: model.StatusLost},
	}

	stats := lifecycle.ComputeStats(bottles)
	suite.Equal(9, stats.Total)
	suite.Equal(3, stats.InCellar)
	suite.Equal(2, stats.Consumed)
	suite.Equal(1, stats.Gifted)
	suite.Equal(1, stats.Sold)
	suite.Equal(1, stats.Damaged)
	suite.Equal(1, stats.Lost)
	suite.InDelta(100.0, stats.CellarValue, 0.001)
	suite.Require().NotNil(stats.AvgRating)
	suite.InDelta(85.0, *stats.AvgRating, 0.001)
}

func (suite *EngineTestSuite) TestComputeStats_RatingsCountInAnyStatus() {
	bottles := []*model.Bottle{
		{Status: model.StatusCellar, MyRating: pointy.Int(95)},
		{Status: model.StatusSold, MyRating: pointy.Int(85)},
		{Status: model.StatusCellar},
	}

	stats := lifecycle.ComputeStats(bottles)
	suite.Require().NotNil(stats.AvgRating)
	suite.InDelta(90.0, *stats.AvgRating, 0.001)
}

func (suite *EngineTestSuite) TestGetWineStats_Success() {
	ctx := context.Background()
	wineID := uuid.New()
	bottles := []*model.Bottle{
		{WineID: wineID, Status: model.StatusCellar, CurrentValue: pointy.Float64(55)},
		{WineID: wineID, Status: model.StatusConsumed, MyRating: pointy.Int(93)},
	}

	suite.wineRepo.EXPECT().GetWineByID(ctx, wineID).Return(&model.Wine{ID: wineID, Name: "Hermitage"}, nil)
	suite.bottleRepo.EXPECT().GetBottlesForWine(ctx, wineID).Return(bottles, nil)

	stats, err := suite.engine.GetWineStats(ctx, wineID)
	suite.Require().NoError(err)
	suite.Equal(2, stats.Total)
	suite.Equal(1, stats.InCellar)
	suite.InDelta(55.0, stats.CellarValue, 0.001)
}

func (suite *EngineTestSuite) TestGetWineStats_WineNotFound() {
	ctx := context.Background()
	wineID := uuid.New()

	suite.wineRepo.EXPECT().GetWineByID(ctx, wineID).Return(nil, repository.ErrWineNotFound)

	stats, err := suite.engine.GetWineStats(ctx, wineID)
	suite.Require().ErrorIs(err, repository.ErrWineNotFound)
	suite.Nil(stats)
}

func (suite *EngineTestSuite) TestGetCollectionSummary_Success() {
	ctx := context.Background()
	expected := &model.CollectionSummary{
		BottleCount: 12,
		CellarCount: 7,
		CellarValue: 640.50,
		WineCount:   5,
	}

	suite.bottleRepo.EXPECT().GetCollectionSummary(ctx).Return(expected, nil)

	summary, err := suite.engine.GetCollectionSummary(ctx)
	suite.Require().NoError(err)
	suite.Equal(expected, summary)
}
