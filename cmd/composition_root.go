package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	intelegram "dragontea/internal/adapters/in/telegram"
	"dragontea/internal/adapters/out/inmemory"
	"dragontea/internal/adapters/out/postgres"
	"dragontea/internal/adapters/out/telegram"
	"dragontea/internal/core/application/usecases/commands"
	"dragontea/internal/core/application/usecases/queries"
	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/core/domain/services"
	"dragontea/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	gateway            *telegram.Gateway
	pendingAssignments *inmemory.PendingAssignmentBook

	window     services.ServiceWindow
	calculator services.DeliveryCalculator

	staffChatID     int64
	pendingOrderTTL time.Duration
	clock           func() time.Time
}

// NewCompositionRoot parses the raw config and wires every adapter and
// domain service the handlers need. Returns an error on any malformed
// config value so the process fails at startup, not on the first order.
func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	staffChatID, err := strconv.ParseInt(config.StaffChatID, 10, 64)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid STAFF_CHAT_ID: %w", err)
	}

	latitude, err := strconv.ParseFloat(config.StoreLatitude, 64)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid STORE_LATITUDE: %w", err)
	}
	longitude, err := strconv.ParseFloat(config.StoreLongitude, 64)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid STORE_LONGITUDE: %w", err)
	}
	store, err := kernel.NewLocation(latitude, longitude)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid store location: %w", err)
	}

	ratePerKm, err := strconv.Atoi(config.DeliveryRatePerKm)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid DELIVERY_RATE_PER_KM: %w", err)
	}
	calculator, err := services.NewDeliveryCalculator(store, ratePerKm)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid delivery calculator config: %w", err)
	}

	window, err := services.NewServiceWindow(config.ServiceOpenAt, config.ServiceCloseAt)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid service window config: %w", err)
	}

	tz, err := time.LoadLocation(config.StoreTimezone)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid STORE_TIMEZONE: %w", err)
	}

	pendingOrderTTL, err := time.ParseDuration(config.PendingOrderTTL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid PENDING_ORDER_TTL: %w", err)
	}

	courierPromptTTL, err := time.ParseDuration(config.CourierPromptTTL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid COURIER_PROMPT_TTL: %w", err)
	}

	client := telegram.NewClient(config.TelegramBotToken)

	return CompositionRoot{
		gormDB:             gormDB,
		uowFactory:         *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:            telegram.NewGateway(client, staffChatID, config.PaymentProviderToken),
		pendingAssignments: inmemory.NewPendingAssignmentBook(courierPromptTTL),
		window:             window,
		calculator:         calculator,
		staffChatID:        staffChatID,
		pendingOrderTTL:    pendingOrderTTL,
		clock:              storeClock(tz),
	}, nil
}

// storeClock returns a clock reporting wall time in the store's timezone, so
// the service window check follows the store's day rather than the server's.
func storeClock(tz *time.Location) func() time.Time {
	return func() time.Time {
		return time.Now().In(tz)
	}
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateSetCustomerLanguageCommandHandler() commands.SetCustomerLanguageCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCustomerLanguageCommandHandler(f)
}

func (c *CompositionRoot) CreateSetCustomerPhoneCommandHandler() commands.SetCustomerPhoneCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCustomerPhoneCommandHandler(f)
}

func (c *CompositionRoot) CreateSelectVariantCommandHandler() commands.SelectVariantCommandHandler {
	var f commands.ShoppingUoWFactory = FuncShoppingUoWFactory(func() commands.ShoppingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSelectVariantCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeQuantityCommandHandler() commands.ChangeQuantityCommandHandler {
	var f commands.ShoppingUoWFactory = FuncShoppingUoWFactory(func() commands.ShoppingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeQuantityCommandHandler(f)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	var f commands.ShoppingUoWFactory = FuncShoppingUoWFactory(func() commands.ShoppingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClearCartCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.window, c.calculator, c.gateway, c.clock)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	var f commands.OrderCustomerUoWFactory = FuncOrderCustomerUoWFactory(func() commands.OrderCustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPaymentCommandHandler(f, c.gateway, c.gateway)
}

func (c *CompositionRoot) CreateRequestCourierAssignmentCommandHandler() commands.RequestCourierAssignmentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestCourierAssignmentCommandHandler(f, c.gateway, c.pendingAssignments, c.clock)
}

func (c *CompositionRoot) CreateSubmitCourierDataCommandHandler() commands.SubmitCourierDataCommandHandler {
	var f commands.OrderCustomerUoWFactory = FuncOrderCustomerUoWFactory(func() commands.OrderCustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitCourierDataCommandHandler(f, c.pendingAssignments, c.gateway, c.gateway)
}

func (c *CompositionRoot) CreateCloseOrderCommandHandler() commands.CloseOrderCommandHandler {
	var f commands.OrderCustomerUoWFactory = FuncOrderCustomerUoWFactory(func() commands.OrderCustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseOrderCommandHandler(f, c.gateway, c.gateway)
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelStaleOrdersCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetCategoriesQueryHandler() queries.GetCategoriesQueryHandler {
	return queries.NewGetCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrderQueryHandler() queries.GetActiveOrderQueryHandler {
	return queries.NewGetActiveOrderQueryHandler(c.gormDB)
}

// CreateWebhookServer wires the inbound webhook adapter with every command
// handler it dispatches to.
func (c *CompositionRoot) CreateWebhookServer(logger *slog.Logger) *intelegram.WebhookServer {
	handlers := intelegram.Handlers{
		RegisterCustomer:  c.CreateRegisterCustomerCommandHandler(),
		SetLanguage:       c.CreateSetCustomerLanguageCommandHandler(),
		SetPhone:          c.CreateSetCustomerPhoneCommandHandler(),
		SelectVariant:     c.CreateSelectVariantCommandHandler(),
		ChangeQuantity:    c.CreateChangeQuantityCommandHandler(),
		ClearCart:         c.CreateClearCartCommandHandler(),
		Checkout:          c.CreateCheckoutCommandHandler(),
		ConfirmPayment:    c.CreateConfirmPaymentCommandHandler(),
		RequestAssignment: c.CreateRequestCourierAssignmentCommandHandler(),
		SubmitCourierData: c.CreateSubmitCourierDataCommandHandler(),
		CloseOrder:        c.CreateCloseOrderCommandHandler(),
	}

	return intelegram.NewWebhookServer(
		handlers, c.gateway, c.gateway, telegram.OrderIDFromInvoicePayload, c.staffChatID, logger)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCancelStaleOrdersCommandHandler(), c.pendingOrderTTL, logger)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncShoppingUoWFactory func() commands.ShoppingUoW

func (f FuncShoppingUoWFactory) Create() commands.ShoppingUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderCustomerUoWFactory func() commands.OrderCustomerUoW

func (f FuncOrderCustomerUoWFactory) Create() commands.OrderCustomerUoW {
	return f()
}
