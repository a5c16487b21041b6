//go:build wireinject
// +build wireinject

package di

import (
	"estetica/config"
	"estetica/infras/jwt"
	"estetica/infras/kafka"
	"estetica/infras/otel"
	"estetica/infras/postgres"
	"estetica/infras/redis"
	"estetica/internal/notification"
	"estetica/shared/cache"
	"estetica/shared/lockmap"
	"estetica/transport/http"
	"estetica/transport/http/middleware"
	"estetica/transport/http/router"

	appointmentRepository "estetica/internal/domains/appointment/repository"
	appointmentService "estetica/internal/domains/appointment/service"
	clientRepository "estetica/internal/domains/client/repository"
	clientService "estetica/internal/domains/client/service"
	inventoryRepository "estetica/internal/domains/inventory/repository"
	inventoryService "estetica/internal/domains/inventory/service"
	procedureRepository "estetica/internal/domains/procedure/repository"
	procedureService "estetica/internal/domains/procedure/service"
	receivableRepository "estetica/internal/domains/receivable/repository"
	receivableService "estetica/internal/domains/receivable/service"

	appointmentHandler "estetica/internal/handlers/appointment"
	clientHandler "estetica/internal/handlers/client"
	inventoryHandler "estetica/internal/handlers/inventory"
	procedureHandler "estetica/internal/handlers/procedure"
	receivableHandler "estetica/internal/handlers/receivable"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	lockmap.New,
)

var messaging = wire.NewSet(
	notification.NewDispatcher,
)

var clientDomain = wire.NewSet(
	clientRepository.New,
	clientService.New,
)

var procedureDomain = wire.NewSet(
	procedureRepository.New,
	procedureRepository.NewProcedureProduct,
	procedureService.New,
)

var inventoryDomain = wire.NewSet(
	inventoryRepository.NewProduct,
	inventoryRepository.NewStockMovement,
	inventoryService.New,
)

var receivableDomain = wire.NewSet(
	receivableRepository.New,
	receivableService.New,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.New,
)

var domains = wire.NewSet(
	clientDomain,
	procedureDomain,
	inventoryDomain,
	receivableDomain,
	appointmentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	appointmentHandler.New,
	clientHandler.New,
	procedureHandler.New,
	inventoryHandler.New,
	receivableHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		messaging,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
