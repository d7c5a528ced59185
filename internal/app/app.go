package app

import (
	"fmt"
	"net/http"
	"time"

	"chitfund-app-go/internal/config"
	"chitfund-app-go/internal/db"
	auctionsdomain "chitfund-app-go/internal/domain/auctions"
	dashboarddomain "chitfund-app-go/internal/domain/dashboard"
	documentsdomain "chitfund-app-go/internal/domain/documents"
	groupsdomain "chitfund-app-go/internal/domain/groups"
	ledgerdomain "chitfund-app-go/internal/domain/ledger"
	membersdomain "chitfund-app-go/internal/domain/members"
	staffdomain "chitfund-app-go/internal/domain/staff"
	transactionsdomain "chitfund-app-go/internal/domain/transactions"
	"chitfund-app-go/internal/repository/filestore"
	auctionsrepo "chitfund-app-go/internal/repository/postgres/auctions"
	dashboardrepo "chitfund-app-go/internal/repository/postgres/dashboard"
	documentsrepo "chitfund-app-go/internal/repository/postgres/documents"
	groupsrepo "chitfund-app-go/internal/repository/postgres/groups"
	ledgerrepo "chitfund-app-go/internal/repository/postgres/ledger"
	membersrepo "chitfund-app-go/internal/repository/postgres/members"
	staffrepo "chitfund-app-go/internal/repository/postgres/staff"
	transactionsrepo "chitfund-app-go/internal/repository/postgres/transactions"
	"chitfund-app-go/internal/transport/httpserver"
	"chitfund-app-go/internal/transport/httpserver/handler"
	"chitfund-app-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(cfg.ReportTimezone)
	if err != nil {
		return nil, fmt.Errorf("load report timezone: %w", err)
	}

	if cfg.DB.AutoMigrate {
		log.Info("app: applying migrations")
		if err := db.Migrate(cfg.DB, log); err != nil {
			return nil, err
		}
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	files, err := filestore.NewLocal(cfg.Uploads.Dir)
	if err != nil {
		closeDB(dbConn, log)
		return nil, fmt.Errorf("init upload store: %w", err)
	}

	staffService := staffdomain.NewService(staffrepo.NewPostgres(dbConn))
	services := handler.Services{
		Members:      membersdomain.NewService(membersrepo.NewPostgres(dbConn)),
		Groups:       groupsdomain.NewService(groupsrepo.NewPostgres(dbConn)),
		Transactions: transactionsdomain.NewService(transactionsrepo.NewPostgres(dbConn)),
		Auctions:     auctionsdomain.NewService(auctionsrepo.NewPostgres(dbConn)),
		Documents:    documentsdomain.NewService(documentsrepo.NewPostgres(dbConn), files, cfg.Uploads.MaxBytes),
		Ledger:       ledgerdomain.NewService(ledgerrepo.NewPostgres(dbConn)),
		Dashboard:    dashboarddomain.NewService(dashboardrepo.NewPostgres(dbConn), location),
		Staff:        staffService,
	}

	log.Info("app: initializing router")
	handlers := handler.New(services, location, log)
	router := httpserver.NewRouter(cfg, handlers, staffService, log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) Env() string {
	return a.cfg.Env
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func closeDB(dbConn *gorm.DB, log logger.Logger) {
	sqlDB, err := dbConn.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error("app: close database failed", "err", err)
	}
}
