package cmd

import (
	"laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/servicerepo"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() *commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	h := commands.NewPlaceOrderCommandHandler(f, commands.SystemClock)
	return &h
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() *commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCancelOrderCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() *commands.EditOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewEditOrderCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateGetServicesQueryHandler() queries.GetServicesQueryHandler {
	return queries.NewGetServicesQueryHandler(servicerepo.NewGormServiceRepository(c.gormDB), c.config.EmptyResult)
}

func (c *CompositionRoot) CreateGetServiceQueryHandler() queries.GetServiceQueryHandler {
	return queries.NewGetServiceQueryHandler(servicerepo.NewGormServiceRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.gormDB, c.config.EmptyResult)
}

// CreateServer assembles the HTTP surface over every use case.
func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(http.Handlers{
		PlaceOrder:         c.CreatePlaceOrderCommandHandler(),
		CancelOrder:        c.CreateCancelOrderCommandHandler(),
		EditOrder:          c.CreateEditOrderCommandHandler(),
		GetServices:        c.CreateGetServicesQueryHandler(),
		GetService:         c.CreateGetServiceQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		GetOrderStatus:     c.CreateGetOrderStatusQueryHandler(),
		ListCustomerOrders: c.CreateListCustomerOrdersQueryHandler(),
	}, http.NewHeaderIdentityResolver(c.config.IdentityHeader))
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
