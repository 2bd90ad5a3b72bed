package app

import (
	"time"

	"github.com/avc/payout-console/internal/cache"
	"github.com/avc/payout-console/internal/config"
	"github.com/avc/payout-console/internal/domain"
	"github.com/avc/payout-console/internal/filter"
	"github.com/avc/payout-console/internal/handlers"
	"github.com/avc/payout-console/internal/repository/postgres"
	"github.com/avc/payout-console/internal/service"
	"github.com/avc/payout-console/internal/utils/jwt"
	"github.com/avc/payout-console/internal/validator"
	"github.com/avc/payout-console/internal/worker"
	"go.uber.org/zap"
)

// services содержит все сервисы приложения
type services struct {
	ledger   domain.LedgerClient
	readers  *service.Readers
	commands *service.PayoutCommandService
	overview *service.OverviewService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	merchants *handlers.MerchantsHandler
	payouts   *handlers.PayoutsHandler
	overview  *handlers.OverviewHandler
	audit     *handlers.AuditHandler
	health    *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
}

// initDependencies создает все зависимости приложения
func initDependencies(
	cfg *config.Config,
	db postgres.DBTX,
	dbPinger handlers.Pinger,
	backend cache.Backend,
	cachePinger handlers.Pinger,
	logger *zap.Logger,
) *dependencies {
	// Создание репозиториев
	auditRepo := postgres.NewAuditRepository(db)

	// Создание утилит
	jwtManager := jwt.NewManager(cfg.JWTSecret)
	builder := filter.NewBuilder(cfg.PageSize)

	// Создание сервисов
	ledger := service.NewLedgerClient(cfg.LedgerAddress, cfg.LedgerAPIToken, cfg.LedgerTimeout)
	readers := &service.Readers{
		Merchants: service.NewMerchantReader(ledger, backend, logger),
		Payouts:   service.NewPayoutReader(ledger, backend, logger),
	}
	svcs := &services{
		ledger:   ledger,
		readers:  readers,
		commands: service.NewPayoutCommandService(ledger, validator.New(time.Now), readers, auditRepo, logger),
		overview: service.NewOverviewService(ledger, readers, logger),
	}

	// Создание handlers
	hdlrs := &handlerSet{
		merchants: handlers.NewMerchantsHandler(readers.Merchants, svcs.commands, builder, logger),
		payouts:   handlers.NewPayoutsHandler(readers.Payouts, svcs.commands, builder, logger),
		overview:  handlers.NewOverviewHandler(svcs.overview, builder, logger),
		audit:     handlers.NewAuditHandler(auditRepo, logger),
		health:    handlers.NewHealthHandler(dbPinger, cachePinger, logger),
	}

	// Создание наблюдателя за проведением выплат
	workerPool := worker.NewPool(
		cfg.WatcherWorkers,
		cfg.WatcherQueueSize,
		cfg.WatcherScanInterval,
		ledger,
		readers,
		auditRepo,
		logger,
	)

	return &dependencies{
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
	}
}
