package cmd

import (
	"storefront/internal/adapters/out/postgres"
	redisadapter "storefront/internal/adapters/out/redis"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	redisClient *redis.Client
	uowFactory  postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		redisClient: redisClient,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateSessionStore() ports.SessionStore {
	return redisadapter.NewSessionStore(c.redisClient)
}

func (c *CompositionRoot) CreateOrderStatusNotifier() ports.OrderStatusNotifier {
	return redisadapter.NewOrderStatusNotifier(c.redisClient)
}

func (c *CompositionRoot) CreateCustomerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	return commands.NewRegisterCustomerCommandHandler(c.CreateCustomerUoWFactory())
}

func (c *CompositionRoot) CreateAddAddressCommandHandler() commands.AddAddressCommandHandler {
	return commands.NewAddAddressCommandHandler(c.CreateCustomerUoWFactory())
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.CreateOrderStatusNotifier())
}

func (c *CompositionRoot) CreateRequestCancellationCommandHandler() commands.RequestCancellationCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestCancellationCommandHandler(f, c.CreateOrderStatusNotifier())
}

func (c *CompositionRoot) CreateRequestReturnCommandHandler() commands.RequestReturnCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestReturnCommandHandler(f, c.CreateOrderStatusNotifier())
}

func (c *CompositionRoot) CreateAdvanceFulfillmentCommandHandler() commands.AdvanceFulfillmentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceFulfillmentCommandHandler(f, c.CreateOrderStatusNotifier())
}

func (c *CompositionRoot) CreateAddReviewCommandHandler() commands.AddReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteReviewCommandHandler() commands.DeleteReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCartItemCommandHandler() commands.UpdateCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitContactMessageCommandHandler() commands.SubmitContactMessageCommandHandler {
	var f commands.MessagingUoWFactory = FuncMessagingUoWFactory(func() commands.MessagingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitContactMessageCommandHandler(f)
}

func (c *CompositionRoot) CreateSubscribeNewsletterCommandHandler() commands.SubscribeNewsletterCommandHandler {
	var f commands.MessagingUoWFactory = FuncMessagingUoWFactory(func() commands.MessagingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubscribeNewsletterCommandHandler(f)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReviewsQueryHandler() queries.GetReviewsQueryHandler {
	return queries.NewGetReviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAddressesQueryHandler() queries.GetAddressesQueryHandler {
	return queries.NewGetAddressesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncMessagingUoWFactory func() commands.MessagingUoW

func (f FuncMessagingUoWFactory) Create() commands.MessagingUoW {
	return f()
}
