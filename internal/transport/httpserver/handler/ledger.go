package handler

import (
	"net/http"
	"strings"
	"time"

	ledgerdomain "chitfund-app-go/internal/domain/ledger"
	"chitfund-app-go/pkg/money"
)

type ledgerEntryResponse struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description"`
	Type          string    `json:"type"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
	ReceiptNumber *string   `json:"receiptNumber"`
	Notes         *string   `json:"notes"`
	MemberName    *string   `json:"memberName"`
	GroupName     *string   `json:"groupName"`
}

type ledgerSummaryResponse struct {
	TotalCredits     string `json:"totalCredits"`
	TotalDebits      string `json:"totalDebits"`
	Balance          string `json:"balance"`
	TransactionCount int64  `json:"transactionCount"`
}

func (h *Handlers) ListLedgerEntries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from, err := parseTimeParam(query.Get("startDate"), h.location)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid startDate")
		return
	}
	to, err := parseEndParam(query.Get("endDate"), h.location)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid endDate")
		return
	}

	filter := ledgerdomain.Filter{
		GroupID:  strings.TrimSpace(query.Get("groupId")),
		MemberID: strings.TrimSpace(query.Get("memberId")),
		From:     from,
		To:       to,
	}
	entries, err := h.Ledger.ListEntries(r.Context(), filter)
	if err != nil {
		h.fail(w, "ledger.list: list ledger entries failed", err, "group_id", filter.GroupID, "member_id", filter.MemberID)
		return
	}

	response := make([]ledgerEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, ledgerEntryResponse{
			ID:            entry.ID,
			Date:          entry.Date,
			Description:   entry.Description,
			Type:          entry.Type,
			Amount:        entry.Amount.StringFixed(2),
			Status:        entry.Status,
			ReceiptNumber: entry.ReceiptNumber,
			Notes:         entry.Notes,
			MemberName:    entry.MemberName,
			GroupName:     entry.GroupName,
		})
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) LedgerSummary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := ledgerdomain.SummaryFilter{
		GroupID:  strings.TrimSpace(query.Get("groupId")),
		MemberID: strings.TrimSpace(query.Get("memberId")),
	}

	summary, err := h.Ledger.Summary(r.Context(), filter)
	if err != nil {
		h.fail(w, "ledger.summary: summarize ledger failed", err, "group_id", filter.GroupID, "member_id", filter.MemberID)
		return
	}

	writeJSON(w, http.StatusOK, ledgerSummaryResponse{
		TotalCredits:     money.Lakh(summary.TotalCredits),
		TotalDebits:      money.Lakh(summary.TotalDebits),
		Balance:          money.Lakh(summary.Balance),
		TransactionCount: summary.TransactionCount,
	})
}
