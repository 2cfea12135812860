package main

import (
	"context"
	"log/slog"
	"os"

	"tetatete/config"
	"tetatete/internal/delivery"
	"tetatete/internal/delivery/http"
	"tetatete/internal/delivery/http/middleware"
	"tetatete/internal/delivery/http/router/handler"
	"tetatete/internal/delivery/ws"
	"tetatete/internal/infra/auth"
	"tetatete/internal/infra/auth/facebook"
	"tetatete/internal/infra/auth/google"
	"tetatete/internal/infra/email"
	logs "tetatete/internal/infra/log"
	"tetatete/internal/infra/payment"
	"tetatete/internal/infra/persistence/postgres"
	"tetatete/internal/infra/storage"
	"tetatete/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCategoryRepository,
			postgres.NewMatchRepository,
			postgres.NewChatRepository,
			postgres.NewNotificationRepository,
			postgres.NewReferenceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			payment.NewStripeService,
			email.NewSMTPSender,
			storage.NewImageStore,
			ws.NewHub,
			ws.NewBroadcaster,
			fx.Annotate(
				google.NewOAuthService,
				fx.ResultTags(`group:"oauth_services"`),
			),
			fx.Annotate(
				facebook.NewOAuthService,
				fx.ResultTags(`group:"oauth_services"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCategoryService,
			impl.NewMatchService,
			impl.NewChatService,
			impl.NewNotificationService,
			impl.NewSubscriptionService,
			impl.NewReferenceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCategoryHandler,
			handler.NewMatchHandler,
			handler.NewChatHandler,
			handler.NewNotificationHandler,
			handler.NewSubscriptionHandler,
			handler.NewReferenceHandler,
			ws.NewHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
