//go:build wireinject
// +build wireinject

package di

import (
	"holdhive/config"
	"holdhive/infras/jwt"
	"holdhive/infras/kafka"
	"holdhive/infras/otel"
	"holdhive/infras/postgres"
	"holdhive/infras/redis"
	"holdhive/infras/s3"
	"holdhive/permissions"
	"holdhive/shared/cache"
	"holdhive/transport/http"
	"holdhive/transport/http/middleware"
	"holdhive/transport/http/router"

	paymentRepository "holdhive/internal/domains/payment/repository"
	rentalRepository "holdhive/internal/domains/rental/repository"
	rentalService "holdhive/internal/domains/rental/service"
	reviewRepository "holdhive/internal/domains/review/repository"
	reviewService "holdhive/internal/domains/review/service"
	storageRepository "holdhive/internal/domains/storage/repository"
	storageService "holdhive/internal/domains/storage/service"
	userRepository "holdhive/internal/domains/user/repository"
	userService "holdhive/internal/domains/user/service"

	rentalHandler "holdhive/internal/handlers/rental"
	reviewHandler "holdhive/internal/handlers/review"
	storageHandler "holdhive/internal/handlers/storage"
	userHandler "holdhive/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.TxRunner), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	permissions.Get,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var storageDomain = wire.NewSet(
	storageRepository.New,
	storageService.New,
)

var rentalDomain = wire.NewSet(
	rentalRepository.New,
	rentalService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var domains = wire.NewSet(
	userDomain,
	storageDomain,
	rentalDomain,
	paymentDomain,
	reviewDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	userHandler.New,
	storageHandler.New,
	rentalHandler.New,
	reviewHandler.New,
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
