package cmd

import (
	"log/slog"

	tshttp "tableside/internal/adapters/in/http"
	"tableside/internal/adapters/out/restapi"
	"tableside/internal/core/application/ordersync"
	"tableside/internal/core/application/sessions"
	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/jobs"
)

type CompositionRoot struct {
	config Config
	logger *slog.Logger

	orderStore *restapi.OrderStore
	menuStore  *restapi.MenuStore
	controller *ordersync.Controller
	registry   *sessions.Registry
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	client := restapi.NewClient(config.BackendBaseURL, nil, logger)
	orderStore := restapi.NewOrderStore(client)

	return CompositionRoot{
		config:     config,
		logger:     logger,
		orderStore: orderStore,
		menuStore:  restapi.NewMenuStore(client),
		controller: ordersync.NewController(orderStore, logger),
		registry:   sessions.NewRegistry(),
	}
}

func (c *CompositionRoot) SyncController() *ordersync.Controller {
	return c.controller
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.registry, c.menuStore)
}

func (c *CompositionRoot) CreateChangeQuantityCommandHandler() commands.ChangeQuantityCommandHandler {
	return commands.NewChangeQuantityCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateSetCustomerCommandHandler() commands.SetCustomerCommandHandler {
	return commands.NewSetCustomerCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.registry, c.controller)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.controller)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.menuStore)
}

func (c *CompositionRoot) CreateGetRoleQueueQueryHandler() queries.GetRoleQueueQueryHandler {
	return queries.NewGetRoleQueueQueryHandler(c.controller)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.controller)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.controller, c.config.RefreshSchedule, c.logger)
}

func (c *CompositionRoot) CreateServer() *tshttp.Server {
	return tshttp.NewServer(
		c.registry,
		c.CreateAddCartItemCommandHandler(),
		c.CreateChangeQuantityCommandHandler(),
		c.CreateSetCustomerCommandHandler(),
		c.CreateSubmitOrderCommandHandler(),
		c.CreateAdvanceOrderCommandHandler(),
		c.CreateGetMenuQueryHandler(),
		c.CreateGetRoleQueueQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
	)
}
