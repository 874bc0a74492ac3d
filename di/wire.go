//go:build wireinject
// +build wireinject

package di

import (
	"plotdesk/config"
	"plotdesk/infras/otel"
	"plotdesk/infras/redis"
	"plotdesk/infras/upstream"
	"plotdesk/shared/cache"
	"plotdesk/transport/http"
	"plotdesk/transport/http/middleware"
	"plotdesk/transport/http/router"

	bookingHandler "plotdesk/internal/handlers/booking"
	employeeHandler "plotdesk/internal/handlers/employee"
	helperHandler "plotdesk/internal/handlers/helper"
	partyplotHandler "plotdesk/internal/handlers/partyplot"
	sourceHandler "plotdesk/internal/handlers/source"

	bookingRepository "plotdesk/internal/domains/booking/repository"
	bookingService "plotdesk/internal/domains/booking/service"
	employeeRepository "plotdesk/internal/domains/employee/repository"
	employeeService "plotdesk/internal/domains/employee/service"
	helperRepository "plotdesk/internal/domains/helper/repository"
	helperService "plotdesk/internal/domains/helper/service"
	partyplotRepository "plotdesk/internal/domains/partyplot/repository"
	partyplotService "plotdesk/internal/domains/partyplot/service"
	sourceRepository "plotdesk/internal/domains/source/repository"
	sourceService "plotdesk/internal/domains/source/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	upstream.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var employeeDomain = wire.NewSet(
	employeeRepository.New,
	employeeService.New,
)

var helperDomain = wire.NewSet(
	helperRepository.New,
	helperService.New,
)

var partyplotDomain = wire.NewSet(
	partyplotRepository.New,
	partyplotService.New,
)

var sourceDomain = wire.NewSet(
	sourceRepository.New,
	sourceService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	employeeDomain,
	helperDomain,
	partyplotDomain,
	sourceDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	employeeHandler.New,
	helperHandler.New,
	partyplotHandler.New,
	sourceHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
