package main

import (
	"context"
	"log/slog"
	"os"

	"pulse/config"
	"pulse/internal/delivery"
	"pulse/internal/delivery/http"
	"pulse/internal/delivery/http/middleware"
	"pulse/internal/delivery/http/router/handler"
	"pulse/internal/delivery/scheduler"
	"pulse/internal/domain/service"
	"pulse/internal/infra/auth"
	logs "pulse/internal/infra/log"
	"pulse/internal/infra/persistence/postgres"
	"pulse/internal/infra/pubsub"
	"pulse/internal/infra/push"
	"pulse/internal/infra/realtime"
	"pulse/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewNotificationRepository,
			postgres.NewScheduleRepository,
			postgres.NewDeviceRepository,
			postgres.NewFollowerRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewConnectionVerifier,
			newRealtimeRegistry,
			newRealtimeGateway,
			newPushSender,
		),
	)
}

// newRealtimeRegistry creates the process-local presence registry
func newRealtimeRegistry(cfg *config.Config, logger *slog.Logger) *realtime.Registry {
	var registryCfg *realtime.Config
	if cfg.Realtime != nil {
		registryCfg = &realtime.Config{
			SendBufferSize: cfg.Realtime.SendBufferSize,
			WriteTimeout:   cfg.Realtime.WriteTimeout,
		}
	}

	return realtime.New(logger, registryCfg)
}

// newRealtimeGateway exposes the registry to the dispatcher
func newRealtimeGateway(registry *realtime.Registry) service.RealtimeGateway {
	return registry
}

// newPushSender creates the push fan-out adapter. Without Firebase
// credentials a disabled sender is used so the rest of the pipeline still
// runs.
func newPushSender(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushSender, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		return push.NewDisabledSender(logger), nil
	}

	return push.NewFCMService(ctx, cfg.Firebase.CredentialsPath)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDispatchService,
			impl.NewNotificationService,
			impl.NewScheduleService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNotificationHandler,
			handler.NewScheduleHandler,
			handler.NewStreamHandler,
			handler.NewStatusHandler,
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
			fx.Annotate(
				scheduler.NewServer,
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
