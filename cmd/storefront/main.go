package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/delivery/webhook"
	webhookhandler "storefront/internal/delivery/webhook/handler"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/auth/google"
	"storefront/internal/infra/cart"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/metrics"
	"storefront/internal/infra/payment"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/storage"
	"storefront/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
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
			bootstrapAdmin,
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
			metrics.NewWebhookMetrics,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewBillingEventRepository,
			postgres.NewTransactionManager,
			cart.NewRedisStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
			payment.NewStripeClient,
			payment.NewStripeWebhookVerifier,
			storage.NewBlobImageStore,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewUserService,
			impl.NewBillingService,
			impl.NewAdminCatalogService,
			impl.NewAdminOrderService,
			impl.NewAdminUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewOrderHandler,
			handler.NewUserHandler,
			handler.NewAdminProductHandler,
			handler.NewAdminOrderHandler,
			handler.NewAdminUserHandler,
			webhookhandler.NewStripeHandler,
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
				webhook.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// bootstrapAdmin seeds one administrator account from configuration so a
// fresh deployment has a way into the dashboard. Existing accounts with
// the configured email are promoted, not duplicated.
func bootstrapAdmin(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
) error {
	if cfg.AdminBootstrap == nil || cfg.AdminBootstrap.Email == "" {
		return nil
	}

	existing, err := userRepo.FindByEmail(ctx, cfg.AdminBootstrap.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to look up bootstrap admin")
	}

	if existing != nil {
		if existing.Role == entity.RoleAdmin {
			return nil
		}
		existing.Role = entity.RoleAdmin
		if err := userRepo.Update(ctx, existing); err != nil {
			return errors.Wrap(err, "failed to promote bootstrap admin")
		}
		logger.Info("Promoted existing account to administrator",
			slog.String("email", cfg.AdminBootstrap.Email),
		)

		return nil
	}

	hash, err := hasher.Hash(cfg.AdminBootstrap.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash bootstrap admin password")
	}

	admin := &entity.User{
		ID:           uuid.New(),
		Email:        cfg.AdminBootstrap.Email,
		Name:         "Administrator",
		Role:         entity.RoleAdmin,
		Active:       true,
		PasswordHash: hash,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "failed to create bootstrap admin")
	}

	logger.Info("Seeded bootstrap administrator account",
		slog.String("email", cfg.AdminBootstrap.Email),
	)

	return nil
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
