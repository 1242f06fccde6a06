//go:build wireinject
// +build wireinject

package di

import (
	"flexwork/config"
	"flexwork/infras/fcm"
	"flexwork/infras/jwt"
	"flexwork/infras/postgres"
	"flexwork/infras/redis"
	"flexwork/infras/s3"
	"flexwork/internal/events"
	"flexwork/permissions"
	"flexwork/shared/cache"
	"flexwork/shared/changefeed"
	"flexwork/transport/http"
	"flexwork/transport/http/middleware"
	"flexwork/transport/http/router"

	bookingRepository "flexwork/internal/domains/booking/repository"
	bookingService "flexwork/internal/domains/booking/service"
	exportService "flexwork/internal/domains/export/service"
	invitationRepository "flexwork/internal/domains/invitation/repository"
	invitationService "flexwork/internal/domains/invitation/service"
	notificationRepository "flexwork/internal/domains/notification/repository"
	notificationService "flexwork/internal/domains/notification/service"
	pushTokenService "flexwork/internal/domains/pushtoken/service"
	relayService "flexwork/internal/domains/relay/service"
	teamRepository "flexwork/internal/domains/team/repository"
	teamService "flexwork/internal/domains/team/service"
	userRepository "flexwork/internal/domains/user/repository"
	userService "flexwork/internal/domains/user/service"

	bookingHandler "flexwork/internal/handlers/booking"
	invitationHandler "flexwork/internal/handlers/invitation"
	relayHandler "flexwork/internal/handlers/relay"
	streamHandler "flexwork/internal/handlers/stream"
	teamHandler "flexwork/internal/handlers/team"
	userHandler "flexwork/internal/handlers/user"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	provideOtel,
	redis.New,
	provideKafka,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	changefeed.NewRedisFeed,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var teamDomain = wire.NewSet(
	teamRepository.New,
	teamService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	events.NewPublisher,
	provideBanners,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var domains = wire.NewSet(
	userDomain,
	teamDomain,
	bookingDomain,
	invitationRepository.New,
	invitationService.New,
	pushTokenService.New,
	s3.New,
	exportService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	teamHandler.New,
	userHandler.New,
	invitationHandler.New,
	streamHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		jwt.New,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return nil, nil, nil
}

var relayDomain = wire.NewSet(
	userRepository.New,
	bookingRepository.New,
	notificationDomain,
	fcm.New,
	provideRegistry,
	wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
	wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
	relayService.NewMetrics,
	relayService.New,
	provideBookingEventHandler,
	events.NewConsumer,
)

func InitializeRelay() (*Relay, func(), error) {
	wire.Build(
		config.Get,
		postgres.New,
		provideOtel,
		redis.New,
		provideKafka,
		cache.NewRedisCache,
		changefeed.NewRedisFeed,
		middleware.NewAppMiddleware,
		relayDomain,
		relayHandler.New,
		router.NewRelay,
		http.NewRelay,
		wire.Struct(new(Relay), "*"),
	)

	return nil, nil, nil
}
