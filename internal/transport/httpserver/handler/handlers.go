package handler

import (
	"time"

	auctionsdomain "chitfund-app-go/internal/domain/auctions"
	dashboarddomain "chitfund-app-go/internal/domain/dashboard"
	documentsdomain "chitfund-app-go/internal/domain/documents"
	groupsdomain "chitfund-app-go/internal/domain/groups"
	ledgerdomain "chitfund-app-go/internal/domain/ledger"
	membersdomain "chitfund-app-go/internal/domain/members"
	staffdomain "chitfund-app-go/internal/domain/staff"
	transactionsdomain "chitfund-app-go/internal/domain/transactions"
	"chitfund-app-go/pkg/logger"
)

type Services struct {
	Members      *membersdomain.Service
	Groups       *groupsdomain.Service
	Transactions *transactionsdomain.Service
	Auctions     *auctionsdomain.Service
	Documents    *documentsdomain.Service
	Ledger       *ledgerdomain.Service
	Dashboard    *dashboarddomain.Service
	Staff        *staffdomain.Service
}

type Handlers struct {
	Members      *membersdomain.Service
	Groups       *groupsdomain.Service
	Transactions *transactionsdomain.Service
	Auctions     *auctionsdomain.Service
	Documents    *documentsdomain.Service
	Ledger       *ledgerdomain.Service
	Dashboard    *dashboarddomain.Service
	Staff        *staffdomain.Service
	location     *time.Location
	log          logger.Logger
}

// New builds the handler set. location is used to read date-only query
// parameters.
func New(services Services, location *time.Location, log logger.Logger) *Handlers {
	if location == nil {
		location = time.UTC
	}
	return &Handlers{
		Members:      services.Members,
		Groups:       services.Groups,
		Transactions: services.Transactions,
		Auctions:     services.Auctions,
		Documents:    services.Documents,
		Ledger:       services.Ledger,
		Dashboard:    services.Dashboard,
		Staff:        services.Staff,
		location:     location,
		log:          log,
	}
}
