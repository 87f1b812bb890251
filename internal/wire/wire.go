//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"gomessaging/internal/chat/handler"
	"gomessaging/internal/chat/repository"
	"gomessaging/internal/chat/service"
	"gomessaging/internal/dbmysql"
	"gomessaging/internal/notif"
	"gomessaging/internal/user"
)

func InitializeApplication() (*Application, error) {
	wire.Build(
		ProvideConfig,
		ProvideLogger,
		ProvideDatabaseConnection,
		ProvideMetrics,
		ProvideTokenManager,
		ProvideRateLimiter,

		ProvideNotificationManager,
		wire.Bind(new(service.Propagator), new(*notif.NotificationManager)),
		dbmysql.NewNotificationRepository,
		wire.Bind(new(notif.NotificationStore), new(*dbmysql.NotificationRepository)),
		notif.NewNotificationService,
		notif.NewNotificationHandler,

		repository.NewStore,
		wire.Bind(new(service.Gateway), new(*repository.Store)),
		ProvideChatService,
		wire.Bind(new(handler.MessagingService), new(*service.ChatService)),
		handler.NewChatHandler,

		user.NewUserRepository,
		wire.Bind(new(user.SystemNotifier), new(*notif.NotificationService)),
		wire.Bind(new(user.AccountDeleter), new(*service.ChatService)),
		user.NewUserService,
		user.NewHandler,

		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
