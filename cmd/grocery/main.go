package main

import (
	"context"
	"log/slog"
	"os"

	"grocery/config"
	"grocery/internal/delivery"
	"grocery/internal/delivery/api"
	"grocery/internal/delivery/api/middleware"
	"grocery/internal/delivery/api/router/handler"
	"grocery/internal/domain/service"
	"grocery/internal/infra/auth"
	"grocery/internal/infra/cache"
	logs "grocery/internal/infra/log"
	"grocery/internal/infra/persistence/migration"
	"grocery/internal/infra/persistence/postgres"
	"grocery/internal/infra/pubsub"
	"grocery/internal/infra/qrcode"
	"grocery/internal/usecase/impl"

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
		injectHealth(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			migration.Register,
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
		cache.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewSupermarketRepository,
			postgres.NewListingRepository,
			postgres.NewShoppingListRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			cache.NewRedisCache,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
		),
		pubsub.Module,
	)
}

// newQRCodeService creates a QR code service from the defaulted qrcode config.
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectHealth() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				postgres.NewHealthChecker,
				fx.ResultTags(`group:"health"`),
			),
			fx.Annotate(
				cache.NewHealthChecker,
				fx.ResultTags(`group:"health"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewSessionService,
			impl.NewProductService,
			impl.NewSupermarketService,
			impl.NewInventoryService,
			impl.NewPriceResolver,
			impl.NewShoppingListService,
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
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewProductHandler,
			handler.NewSupermarketHandler,
			handler.NewInventoryHandler,
			handler.NewShoppingListHandler,
			handler.NewHealthHandler,
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
		),
	)
}

// startServer launches every delivery once the start hooks registered before it, migrations included, have run.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
