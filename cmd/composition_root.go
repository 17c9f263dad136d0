package cmd

import (
	"log/slog"

	httpin "melodia/internal/adapters/in/http"
	"melodia/internal/adapters/out/notifications"
	"melodia/internal/adapters/out/postgres"
	"melodia/internal/core/application/usecases/commands"
	"melodia/internal/core/application/usecases/queries"
	"melodia/internal/core/domain/services"
	"melodia/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderCartUoWFactory() commands.OrderCartUoWFactory {
	return FuncOrderCartUoWFactory(func() commands.OrderCartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) invoiceUoWFactory() commands.InvoiceUoWFactory {
	return FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSubmitOfferCommandHandler() commands.SubmitOfferCommandHandler {
	return commands.NewSubmitOfferCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAcceptOfferCommandHandler() commands.AcceptOfferCommandHandler {
	return commands.NewAcceptOfferCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRejectOfferCommandHandler() commands.RejectOfferCommandHandler {
	return commands.NewRejectOfferCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRequestRevisionCommandHandler() commands.RequestRevisionCommandHandler {
	return commands.NewRequestRevisionCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	return commands.NewMarkOrderPaidCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(
		c.orderCartUoWFactory(), services.NewCancellationPolicyResolver())
}

func (c *CompositionRoot) CreateDisputeOrderCommandHandler() commands.DisputeOrderCommandHandler {
	return commands.NewDisputeOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateChangeCartLicenseCommandHandler() commands.ChangeCartLicenseCommandHandler {
	return commands.NewChangeCartLicenseCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() commands.CreateInvoiceCommandHandler {
	return commands.NewCreateInvoiceCommandHandler(
		c.invoiceUoWFactory(),
		services.NewInvoiceAssembler(services.NewLicensePricingEngine()))
}

func (c *CompositionRoot) CreateRemindPendingOffersCommandHandler() commands.RemindPendingOffersCommandHandler {
	return commands.NewRemindPendingOffersCommandHandler(
		c.orderUoWFactory(), notifications.NewLoggingDispatcher(c.logger))
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInvoicesQueryHandler() queries.GetInvoicesQueryHandler {
	return queries.NewGetInvoicesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		SubmitOffer:       c.CreateSubmitOfferCommandHandler(),
		AcceptOffer:       c.CreateAcceptOfferCommandHandler(),
		RejectOffer:       c.CreateRejectOfferCommandHandler(),
		DeliverOrder:      c.CreateDeliverOrderCommandHandler(),
		RequestRevision:   c.CreateRequestRevisionCommandHandler(),
		MarkOrderPaid:     c.CreateMarkOrderPaidCommandHandler(),
		CompleteOrder:     c.CreateCompleteOrderCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),
		DisputeOrder:      c.CreateDisputeOrderCommandHandler(),
		UpdateOrder:       c.CreateUpdateOrderCommandHandler(),
		AddCartItem:       c.CreateAddCartItemCommandHandler(),
		ChangeCartLicense: c.CreateChangeCartLicenseCommandHandler(),
		RemoveCartItem:    c.CreateRemoveCartItemCommandHandler(),
		CreateInvoice:     c.CreateCreateInvoiceCommandHandler(),

		GetOrders:   c.CreateGetOrdersQueryHandler(),
		GetOrder:    c.CreateGetOrderQueryHandler(),
		GetCart:     c.CreateGetCartQueryHandler(),
		GetInvoices: c.CreateGetInvoicesQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRemindPendingOffersCommandHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderCartUoWFactory func() commands.OrderCartUoW

func (f FuncOrderCartUoWFactory) Create() commands.OrderCartUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}
