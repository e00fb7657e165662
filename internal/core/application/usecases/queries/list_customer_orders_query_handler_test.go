package queries_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/pgtest"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ListCustomerOrdersQueryHandlerTestSuite struct {
	suite.Suite
	database  *pgtest.Database
	handler   queries.ListCustomerOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
	wash      *catalog.Service
	dryClean  *catalog.Service
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.handler = queries.NewListCustomerOrdersQueryHandler(database.DB, queries.EmptyAsNotFound)
	suite.orderRepo = orderrepo.NewGormOrderRepository(database.DB)
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.wash = suite.seedService("Wash & fold", "Cotton", "4.99")
	suite.dryClean = suite.seedService("Dry cleaning", "Silk", "15.00")
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) TestHandle_NoOrders_NotFoundByDefault() {
	query, err := queries.NewListCustomerOrdersQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(result)

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal(queries.OrdersParamName, notFound.ParamName)
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) TestHandle_NoOrders_EmptyListPolicy() {
	handler := queries.NewListCustomerOrdersQueryHandler(suite.database.DB, queries.EmptyAsList)
	query, _ := queries.NewListCustomerOrdersQuery(kernel.NewUUID())

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) TestHandle_JoinsServiceAndFiltersByCustomer() {
	customerID := kernel.NewUUID()
	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)

	mine := suite.addOrder(customerID, suite.dryClean, base, order.Pending, "silk shirt")
	suite.addOrder(kernel.NewUUID(), suite.wash, base, order.Pending, "")

	query, _ := queries.NewListCustomerOrdersQuery(customerID)
	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	summary := result[0]
	suite.Equal(mine.ID(), summary.OrderID)
	suite.Equal(customerID, summary.CustomerID)
	suite.Equal(suite.dryClean.ID(), summary.ServiceID)
	suite.Equal("Dry cleaning", summary.ServiceName)
	suite.Equal("Silk", summary.MaterialType)
	suite.True(decimal.RequireFromString("15.00").Equal(summary.Price))
	suite.Equal(mine.Quantity(), summary.Quantity)
	suite.Equal("silk shirt", summary.AdditionalDescription)
	suite.Equal(order.Pending, summary.Status)
	suite.True(summary.DateCreated.Equal(base))
	suite.True(summary.ExpectedDeliveryDate.Equal(mine.ExpectedDeliveryDate()))
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) TestHandle_SortedNewestFirstWithIDTieBreak() {
	customerID := kernel.NewUUID()
	base := time.Now().UTC().Add(-24 * time.Hour).Truncate(time.Microsecond)

	oldest := suite.addOrder(customerID, suite.wash, base, order.Pending, "")
	newest := suite.addOrder(customerID, suite.wash, base.Add(2*time.Hour), order.Cancelled, "")
	tieA := suite.addOrder(customerID, suite.dryClean, base.Add(time.Hour), order.Pending, "")
	tieB := suite.addOrder(customerID, suite.wash, base.Add(time.Hour), order.Completed, "")

	first, second := tieA, tieB
	if tieA.ID().String() < tieB.ID().String() {
		first, second = tieB, tieA
	}

	query, _ := queries.NewListCustomerOrdersQuery(customerID)
	for range 3 {
		result, err := suite.handler.Handle(context.Background(), query)
		suite.Require().NoError(err)
		suite.Require().Len(result, 4)

		suite.Equal(newest.ID(), result[0].OrderID)
		suite.Equal(first.ID(), result[1].OrderID)
		suite.Equal(second.ID(), result[2].OrderID)
		suite.Equal(oldest.ID(), result[3].OrderID)
	}
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.ListCustomerOrdersQuery{})

	suite.Require().ErrorIs(err, queries.ErrListCustomerOrdersQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	customerID := kernel.NewUUID()
	suite.addOrder(customerID, suite.wash, time.Now().UTC(), order.Pending, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	query, _ := queries.NewListCustomerOrdersQuery(customerID)
	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) TestNewListCustomerOrdersQuery_RequiresCustomer() {
	_, err := queries.NewListCustomerOrdersQuery(kernel.UUID{})
	suite.Require().ErrorIs(err, queries.ErrCustomerIDIsRequired)
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) seedService(name, material, price string) *catalog.Service {
	s, err := catalog.RestoreService(kernel.NewUUID(), name, material, decimal.RequireFromString(price))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.database.SeedService(context.Background(), s))
	return s
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) addOrder(
	customerID kernel.UUID,
	service *catalog.Service,
	created time.Time,
	status order.Status,
	description string,
) *order.Order {
	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		customerID,
		service.ID(),
		2,
		created.Add(48*time.Hour),
		description,
		status,
		created,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func TestListCustomerOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListCustomerOrdersQueryHandlerTestSuite))
}
