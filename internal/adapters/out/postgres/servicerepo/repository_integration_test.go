package servicerepo_test

import (
	"context"
	"testing"

	"laundry/internal/adapters/out/postgres/pgtest"
	"laundry/internal/adapters/out/postgres/servicerepo"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ServiceRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *servicerepo.GormServiceRepository
}

func (suite *ServiceRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.repository = servicerepo.NewGormServiceRepository(database.DB)
}

func (suite *ServiceRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *ServiceRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ServiceRepositoryIntegrationTestSuite) TestGetAll_Empty_ReturnsEmptySlice() {
	services, err := suite.repository.GetAll(context.Background())
	suite.Require().NoError(err)
	suite.NotNil(services)
	suite.Empty(services)
}

func (suite *ServiceRepositoryIntegrationTestSuite) TestGetAll_ReturnsSortedByName() {
	ctx := context.Background()
	suite.seed("Wash", "Cotton", "3.00")
	suite.seed("Dry cleaning", "Silk", "15.75")

	services, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(services, 2)
	suite.Equal("Dry cleaning", services[0].Name())
	suite.Equal("Silk", services[0].MaterialType())
	suite.True(decimal.RequireFromString("15.75").Equal(services[0].Price()))
	suite.Equal("Wash", services[1].Name())
}

func (suite *ServiceRepositoryIntegrationTestSuite) TestFind_Existing() {
	seeded := suite.seed("Ironing", "Linen", "0")

	found, err := suite.repository.Find(context.Background(), seeded.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Equal(seeded.ID(), found.ID())
	suite.True(found.Price().IsZero())
}

func (suite *ServiceRepositoryIntegrationTestSuite) TestFind_Missing_ReturnsNil() {
	found, err := suite.repository.Find(context.Background(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Nil(found)
}

func (suite *ServiceRepositoryIntegrationTestSuite) TestFind_InvalidID() {
	_, err := suite.repository.Find(context.Background(), kernel.UUID{})
	suite.Require().ErrorIs(err, kernel.ErrUUIDIsNotConstructed)
}

func (suite *ServiceRepositoryIntegrationTestSuite) seed(name, material, price string) *catalog.Service {
	s, err := catalog.RestoreService(kernel.NewUUID(), name, material, decimal.RequireFromString(price))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.database.SeedService(context.Background(), s))
	return s
}

func TestServiceRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceRepositoryIntegrationTestSuite))
}
