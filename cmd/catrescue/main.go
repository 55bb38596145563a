package main

import (
	"context"
	"log/slog"

	"catrescue/config"
	"catrescue/internal/delivery"
	"catrescue/internal/delivery/http"
	"catrescue/internal/delivery/http/middleware"
	"catrescue/internal/delivery/http/router/handler"
	"catrescue/internal/domain/entity"
	"catrescue/internal/errors"
	"catrescue/internal/infra/auth"
	logs "catrescue/internal/infra/log"
	"catrescue/internal/infra/metrics"
	"catrescue/internal/infra/persistence/migrations"
	"catrescue/internal/infra/persistence/postgres"
	"catrescue/internal/infra/pubsub"
	"catrescue/internal/infra/qrcode"
	"catrescue/internal/infra/storage"
	"catrescue/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.WithLogger(newFxLogger),
		injectInfra(),
		injectRepo(),
		injectService(),
		pubsub.Module,
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			checkMigrations,
			delivery.Start,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
		newServiceArea,
	)
}

// newServiceArea exposes the configured pin bounding box.
func newServiceArea(cfg *config.Config) entity.ServiceArea {
	if cfg.ServiceArea == nil {
		return entity.DefaultServiceArea()
	}

	return entity.NewServiceArea(
		cfg.ServiceArea.MinLatitude,
		cfg.ServiceArea.MaxLatitude,
		cfg.ServiceArea.MinLongitude,
		cfg.ServiceArea.MaxLongitude,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewFromConfig,
			storage.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatService,
			impl.NewPinService,
			impl.NewAdoptionListingService,
			impl.NewAdoptionRequestService,
			impl.NewNotificationService,
			impl.NewActivityService,
			impl.NewDeviceService,
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
			handler.NewHealthHandler,
			handler.NewUserHandler,
			handler.NewPinHandler,
			handler.NewCatHandler,
			handler.NewAdoptionListingHandler,
			handler.NewAdoptionRequestHandler,
			handler.NewNotificationHandler,
			handler.NewActivityHandler,
			handler.NewDeviceHandler,
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

// checkMigrations refuses to serve against a schema older or newer than the embedded migrations.
func checkMigrations(db *gorm.DB, logger *slog.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	if err := migrations.CheckDBMigrationStatus(sqlDB); err != nil {
		logger.Error("Database schema is not current, run the migrate command", slog.Any("error", err))

		return err
	}

	return nil
}

// newFxLogger routes fx's own lifecycle events through the application logger.
func newFxLogger(logger *slog.Logger) fxevent.Logger {
	return &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
}
