package catalog_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"cellarbook.org/CellarBook/mocks"
	"cellarbook.org/CellarBook/pkg/catalog"
	"cellarbook.org/CellarBook/pkg/model"
	"cellarbook.org/CellarBook/pkg/repository"
	"cellarbook.org/CellarBook/pkg/validate"
)

type CatalogTestSuite struct {
	suite.Suite
	wineRepo     *mocks.WineRepository
	service      *catalog.Catalog
	observedLogs *observer.ObservedLogs
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (suite *CatalogTestSuite) SetupTest() {
	suite.wineRepo = mocks.NewWineRepository(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	suite.service = catalog.NewCatalog(suite.wineRepo, zap.New(observedZapCore))
}

func (suite *CatalogTestSuite) TestCreateWine_Success() {
	ctx := context.Background()
	wine := model.Wine{
		Name:     "Château Margaux",
		Producer: pointy.String("Château Margaux"),
		Vintage:  pointy.Int(2015),
		Type:     pointy.Pointer(model.WineTypeRed),
	}

	suite.wineRepo.EXPECT().CreateWine(ctx, mock.MatchedBy(func(w model.Wine) bool {
		return w.Name == "Château Margaux" && w.ID != uuid.Nil
	})).RunAndReturn(func(_ context.Context, w model.Wine) (*model.Wine, error) {
		return &w, nil
	})

	created, err := suite.service.CreateWine(ctx, wine)
	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, created.ID)
	suite.Equal("Château Margaux", created.Name)
	suite.Equal(1, suite.observedLogs.FilterMessage("created wine").Len())
}

func (suite *CatalogTestSuite) TestCreateWine_MissingName() {
	wine := model.Wine{Vintage: pointy.Int(2015)}

	created, err := suite.service.CreateWine(context.Background(), wine)
	suite.Require().ErrorIs(err, validate.ErrValidation)
	suite.Nil(created)
}

func (suite *CatalogTestSuite) TestCreateWine_BadVintage() {
	wine := model.Wine{Name: "Test", Vintage: pointy.Int(1500)}

	created, err := suite.service.CreateWine(context.Background(), wine)
	suite.Require().ErrorIs(err, validate.ErrValidation)
	suite.Nil(created)
}

func (suite *CatalogTestSuite) TestGetWine_Success() {
	ctx := context.Background()
	wineID := uuid.New()
	expected := &model.Wine{ID: wineID, Name: "Barolo"}

	suite.wineRepo.EXPECT().GetWineByID(ctx, wineID).Return(expected, nil)

	wine, err := suite.service.GetWine(ctx, wineID)
	suite.Require().NoError(err)
	suite.Equal(expected, wine)
}

func (suite *CatalogTestSuite) TestGetWine_NotFound() {
	ctx := context.Background()
	wineID := uuid.New()

	suite.wineRepo.EXPECT().GetWineByID(ctx, wineID).Return(nil, repository.ErrWineNotFound)

	wine, err := suite.service.GetWine(ctx, wineID)
	suite.Require().ErrorIs(err, repository.ErrWineNotFound)
	suite.Nil(wine)
}

func (suite *CatalogTestSuite) TestListWines_Success() {
	ctx := context.Background()
	expected := []*model.Wine{
		{ID: uuid.New(), Name: "Rioja Reserva"},
		{ID: uuid.New(), Name: "Chablis"},
	}

	suite.wineRepo.EXPECT().GetWines(ctx).Return(expected, nil)

	wines, err := suite.service.ListWines(ctx)
	suite.Require().NoError(err)
	suite.Len(wines, 2)
}

func (suite *CatalogTestSuite) TestUpdateWine_Success() {
	ctx := context.Background()
	wineID := uuid.New()
	existing := &model.Wine{
		ID:      wineID,
		Name:    "Barolo",
		Vintage: pointy.Int(2016),
		Region:  pointy.String("Piedmont"),
	}

	update := model.WineUpdate{
		Name:     pointy.String("Barolo Riserva"),
		Producer: pointy.String("Giacomo Conterno"),
	}

	suite.wineRepo.EXPECT().GetWineByID(ctx, wineID).Return(existing, nil)
	suite.wineRepo.EXPECT().SaveWine(ctx, mock.MatchedBy(func(w *model.Wine) bool {
		return w.ID == wineID &&
			w.Name == "Barolo Riserva" &&
			w.Producer != nil && *w.Producer == "Giacomo Conterno" &&
			w.Vintage != nil && *w.Vintage == 2016 &&
			w.Region != nil && *w.Region == "Piedmont"
	})).RunAndReturn(func(_ context.Context, w *model.Wine) (*model.Wine, error) {
		return w, nil
	})

	updated, err := suite.service.UpdateWine(ctx, wineID, update)
	suite.Require().NoError(err)
	suite.Equal("Barolo Riserva", updated.Name)
}

func (suite *CatalogTestSuite) TestUpdateWine_NotFound() {
	ctx := context.Background()
	wineID := uuid.New()

	suite.wineRepo.EXPECT().GetWineByID(ctx, wineID).Return(nil, repository.ErrWineNotFound)

	updated, err := suite.service.UpdateWine(ctx, wineID, model.WineUpdate{Name: pointy.String("New Name")})
	suite.Require().ErrorIs(err, repository.ErrWineNotFound)
	suite.Nil(updated)
}

func (suite *CatalogTestSuite) TestUpdateWine_BadUpdate() {
	updated, err := suite.service.UpdateWine(context.Background(), uuid.New(), model.WineUpdate{Vintage: pointy.Int(3000)})
	suite.Require().ErrorIs(err, validate.ErrValidation)
	suite.Nil(updated)
}

func (suite *CatalogTestSuite) TestDeleteWine_Success() {
	ctx := context.Background()
	wineID := uuid.New()

	suite.wineRepo.EXPECT().DeleteWine(ctx, wineID).Return(nil)

	suite.Require().NoError(suite.service.DeleteWine(ctx, wineID))
}

func (suite *CatalogTestSuite) TestSearchWines_EmptyQueryListsAll() {
	ctx := context.Background()
	expected := []*model.Wine{{ID: uuid.New(), Name: "Sancerre"}}

	suite.wineRepo.EXPECT().GetWines(ctx).Return(expected, nil)

	wines, err := suite.service.SearchWines(ctx, "")
	suite.Require().NoError(err)
	suite.Len(wines, 1)
}

func (suite *CatalogTestSuite) TestSearchWines_Query() {
	ctx := context.Background()
	expected := []*model.Wine{{ID: uuid.New(), Name: "Sancerre"}}

	suite.wineRepo.EXPECT().SearchWines(ctx, "sancerre").Return(expected, nil)

	wines, err := suite.service.SearchWines(ctx, "sancerre")
	suite.Require().NoError(err)
	suite.Len(wines, 1)
	suite.Equal("Sancerre", wines[0].Name)
}
