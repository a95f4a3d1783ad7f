package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"carebridge/config"
	"carebridge/internal/delivery"
	"carebridge/internal/delivery/api"
	"carebridge/internal/delivery/api/middleware"
	"carebridge/internal/delivery/api/router/handler"
	"carebridge/internal/delivery/worker"
	workerhandler "carebridge/internal/delivery/worker/handler"
	"carebridge/internal/domain/service"
	"carebridge/internal/infra/ads"
	"carebridge/internal/infra/auth"
	"carebridge/internal/infra/changefeed"
	"carebridge/internal/infra/lock"
	logs "carebridge/internal/infra/log"
	"carebridge/internal/infra/metrics"
	"carebridge/internal/infra/notification"
	"carebridge/internal/infra/persistence/postgres"
	"carebridge/internal/infra/pubsub"
	"carebridge/internal/infra/storage"
	"carebridge/internal/usecase"
	"carebridge/internal/usecase/impl"

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
			closeSessions,
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
		metrics.Module,
		changefeed.Module,
		pubsub.Module,
		ads.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewActionRepository,
			postgres.NewProfileRepository,
			postgres.NewFamilyRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			notification.ProvideNotificationService,
			notification.NewDevicePermissionPrompter,
			storage.New,
			lock.New,
		),
	)
}

// newMediaSourceSelector builds the media source strategy from config
func newMediaSourceSelector(cfg *config.Config) impl.MediaSourceSelector {
	return impl.MediaSourceSelector{
		Runtime:      cfg.Media.Runtime,
		LocalRoot:    cfg.Media.LocalRoot,
		Client:       &http.Client{Timeout: cfg.Media.FetchTimeout},
		AllowedHosts: cfg.Media.FetchHosts,
		MaxBytes:     cfg.Media.MaxBytes,
	}
}

func newMediaUploader(
	selector impl.MediaSourceSelector,
	mediaStorage service.MediaStorage,
	coordinatorMetrics service.CoordinatorMetrics,
	logger *slog.Logger,
) usecase.MediaUploader {
	return impl.NewMediaUploader(selector, mediaStorage, coordinatorMetrics, nil, logger)
}

func newSubmissionSettings(cfg *config.Config) impl.SubmissionSettings {
	return impl.SubmissionSettings{
		AdErrorPolicy: cfg.Submission.AdErrorPolicy,
		LockTTL:       cfg.Submission.LockTTL,
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newMediaSourceSelector,
			newMediaUploader,
			newSubmissionSettings,
			impl.NewFamilyService,
			impl.NewPermissionService,
			impl.NewDeviceService,
			impl.NewActionService,
			impl.NewPushNotificationSink,
			impl.NewNotificationService,
			impl.NewSubmissionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDeviceHandler,
			handler.NewNotificationHandler,
			handler.NewSubmissionHandler,
			handler.NewActionHandler,
			handler.NewDevHandler,
			workerhandler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// closeSessions stops live change-feed sessions and submission flows before
// the change feed drains.
func closeSessions(lc fx.Lifecycle, notifications usecase.NotificationUsecase, submissions usecase.SubmissionUsecase) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			notifications.Close()
			submissions.Close()

			return nil
		},
	})
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
