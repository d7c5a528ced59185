package handler

import (
	"net/http"

	"chitfund-app-go/pkg/money"
)

type dashboardResponse struct {
	TotalMembers       int64                  `json:"totalMembers"`
	ActiveGroups       int64                  `json:"activeGroups"`
	MonthlyCollections string                 `json:"monthlyCollections"`
	PendingAuctions    int64                  `json:"pendingAuctions"`
	PaymentSummary     paymentSummaryResponse `json:"paymentSummary"`
}

type paymentSummaryResponse struct {
	Collected      string  `json:"collected"`
	Pending        string  `json:"pending"`
	Overdue        string  `json:"overdue"`
	CollectionRate float64 `json:"collectionRate"`
}

func (h *Handlers) DashboardMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.Dashboard.Metrics(r.Context())
	if err != nil {
		h.fail(w, "dashboard.metrics: compute metrics failed", err)
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		TotalMembers:       metrics.TotalMembers,
		ActiveGroups:       metrics.ActiveGroups,
		MonthlyCollections: money.Lakh(metrics.MonthlyCollections),
		PendingAuctions:    metrics.PendingAuctions,
		PaymentSummary: paymentSummaryResponse{
			Collected:      money.Lakh(metrics.Payments.Collected),
			Pending:        money.Lakh(metrics.Payments.Pending),
			Overdue:        money.Lakh(metrics.Payments.Overdue),
			CollectionRate: metrics.Payments.CollectionRate,
		},
	})
}
