package app

import (
	"context"

	authAPI "github.com/FPFAVILA/raspadinhabet/internal/api/auth"
	paymentAPI "github.com/FPFAVILA/raspadinhabet/internal/api/payment"
	scratchAPI "github.com/FPFAVILA/raspadinhabet/internal/api/scratch"
	"github.com/FPFAVILA/raspadinhabet/internal/config"
	"github.com/FPFAVILA/raspadinhabet/internal/config/env"
	"github.com/FPFAVILA/raspadinhabet/internal/middleware"
	"github.com/FPFAVILA/raspadinhabet/internal/repository"
	"github.com/FPFAVILA/raspadinhabet/internal/repository/auth_repo"
	"github.com/FPFAVILA/raspadinhabet/internal/repository/scratch_repo"
	"github.com/FPFAVILA/raspadinhabet/internal/repository/scratch_stats_repo"
	"github.com/FPFAVILA/raspadinhabet/internal/repository/user_repo"
	"github.com/FPFAVILA/raspadinhabet/internal/service"
	"github.com/FPFAVILA/raspadinhabet/internal/service/auth"
	"github.com/FPFAVILA/raspadinhabet/internal/service/payment"
	"github.com/FPFAVILA/raspadinhabet/internal/service/scratch"
	"github.com/FPFAVILA/raspadinhabet/internal/service/tracking"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	userRepo repository.UserRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// Scratch bits
	scratchCfg       config.ScratchConfig
	scratchRepo      repository.ScratchRepository
	scratchStatsRepo repository.ScratchStatsRepository
	scratchServ      service.ScratchService
	scratchHand      *scratchAPI.Handler

	// Payment bits
	pixCfg      config.PixConfig
	paymentServ service.PaymentService
	paymentHand *paymentAPI.Handler

	// Tracking bits
	trackingCfg  config.TrackingConfig
	trackingServ service.TrackingService

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.JWTCfg(),
			sp.TrackingService(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) ScratchCfg() config.ScratchConfig {
	if sp.scratchCfg == nil {
		cfg, err := env.NewScratchConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get scratch config: " + err.Error())
		}
		sp.scratchCfg = cfg
	}
	return sp.scratchCfg
}

func (sp *ServiceProvider) ScratchRepository(ctx context.Context) repository.ScratchRepository {
	if sp.scratchRepo == nil {
		sp.scratchRepo = scratch_repo.NewScratchRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.scratchRepo
}

func (sp *ServiceProvider) ScratchStatsRepository() repository.ScratchStatsRepository {
	if sp.scratchStatsRepo == nil {
		sp.scratchStatsRepo = scratch_stats_repo.NewScratchStatsRepository()
	}
	return sp.scratchStatsRepo
}

func (sp *ServiceProvider) ScratchService(ctx context.Context) service.ScratchService {
	if sp.scratchServ == nil {
		sp.scratchServ = scratch.NewScratchService(
			sp.ScratchCfg(),
			sp.ScratchRepository(ctx),
			sp.ScratchStatsRepository(),
			sp.TrackingService(),
			sp.TXManager(ctx),
		)
	}
	return sp.scratchServ
}

func (sp *ServiceProvider) ScratchHandler(ctx context.Context) *scratchAPI.Handler {
	if sp.scratchHand == nil {
		sp.scratchHand = scratchAPI.NewHandler(scratchAPI.HandlerDeps{
			Serv: sp.ScratchService(ctx),
		})
	}
	return sp.scratchHand
}

func (sp *ServiceProvider) PixCfg() config.PixConfig {
	if sp.pixCfg == nil {
		cfg, err := env.NewPixConfig()
		if err != nil {
			panic("failed to get pix config: " + err.Error())
		}
		sp.pixCfg = cfg
	}
	return sp.pixCfg
}

func (sp *ServiceProvider) PaymentService() service.PaymentService {
	if sp.paymentServ == nil {
		sp.paymentServ = payment.NewPaymentService(sp.PixCfg())
	}
	return sp.paymentServ
}

func (sp *ServiceProvider) PaymentHandler() *paymentAPI.Handler {
	if sp.paymentHand == nil {
		sp.paymentHand = paymentAPI.NewHandler(paymentAPI.HandlerDeps{Serv: sp.PaymentService()})
	}
	return sp.paymentHand
}

func (sp *ServiceProvider) TrackingCfg() config.TrackingConfig {
	if sp.trackingCfg == nil {
		sp.trackingCfg = env.NewTrackingConfig()
	}
	return sp.trackingCfg
}

func (sp *ServiceProvider) TrackingService() service.TrackingService {
	if sp.trackingServ == nil {
		sp.trackingServ = tracking.NewTrackingService(sp.TrackingCfg())
	}
	return sp.trackingServ
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Scratch endpoints
		scratchHandler := sp.ScratchHandler(ctx)
		r.Route("/scratch", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg()))
			rr.Post("/play", scratchHandler.Play)
			rr.Post("/settle", scratchHandler.Settle)
			rr.Post("/deposit", scratchHandler.Deposit)
			rr.Get("/check-data", scratchHandler.CheckData)
			rr.Get("/stats", scratchHandler.Stats)
		})

		// Payment endpoints
		paymentHandler := sp.PaymentHandler()
		r.Route("/payment", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg()))
			rr.Post("/pix", paymentHandler.CreatePix)
		})

		sp.router = r
	}

	return sp.router
}
