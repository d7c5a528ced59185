package handler

import (
	"net/http"
	"time"

	transactionsdomain "chitfund-app-go/internal/domain/transactions"
	"chitfund-app-go/internal/transport/httpserver/middleware"
	"github.com/shopspring/decimal"
)

type createTransactionRequest struct {
	MemberID string           `json:"memberId" validate:"required"`
	GroupID  string           `json:"groupId" validate:"required"`
	Amount   *decimal.Decimal `json:"amount" validate:"required"`
	Type     string           `json:"type" validate:"required"`
	Status   string           `json:"status"`
	DueDate  *string          `json:"dueDate"`
	PaidDate *string          `json:"paidDate"`
	Notes    *string          `json:"notes" validate:"omitempty,max=1000"`
}

type updateTransactionRequest struct {
	MemberID *string          `json:"memberId"`
	GroupID  *string          `json:"groupId"`
	Amount   *decimal.Decimal `json:"amount"`
	Type     *string          `json:"type"`
	Status   *string          `json:"status"`
	DueDate  *string          `json:"dueDate"`
	PaidDate *string          `json:"paidDate"`
	Notes    *string          `json:"notes" validate:"omitempty,max=1000"`
}

type transactionResponse struct {
	ID            string    `json:"id"`
	MemberID      string    `json:"memberId"`
	GroupID       string    `json:"groupId"`
	Amount        string    `json:"amount"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	DueDate       *string   `json:"dueDate"`
	PaidDate      *string   `json:"paidDate"`
	ReceiptNumber *string   `json:"receiptNumber"`
	Notes         *string   `json:"notes"`
	CreatedBy     *string   `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (h *Handlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	items, err := h.Transactions.ListTransactions(r.Context())
	if err != nil {
		h.fail(w, "transactions.list: list transactions failed", err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponses(items))
}

func (h *Handlers) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := pathID(r)
	transaction, err := h.Transactions.GetTransaction(r.Context(), transactionID)
	if err != nil {
		h.fail(w, "transactions.get: get transaction failed", err, "transaction_id", transactionID)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponse(*transaction))
}

func (h *Handlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := validateRequest(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	dueDate, _, err := patchTime(req.DueDate, h.location)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid dueDate")
		return
	}
	paidDate, _, err := patchTime(req.PaidDate, h.location)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid paidDate")
		return
	}

	user, _ := middleware.UserFromContext(r.Context())
	created, err := h.Transactions.CreateTransaction(r.Context(), transactionsdomain.CreateTransactionInput{
		MemberID:  req.MemberID,
		GroupID:   req.GroupID,
		Amount:    *req.Amount,
		Type:      req.Type,
		Status:    req.Status,
		DueDate:   dueDate,
		PaidDate:  paidDate,
		Notes:     req.Notes,
		CreatedBy: user.ID,
	})
	if err != nil {
		h.fail(w, "transactions.create: create transaction failed", err, "user_id", user.ID, "member_id", req.MemberID, "group_id", req.GroupID)
		return
	}
	writeJSON(w, http.StatusCreated, toTransactionResponse(*created))
}

func (h *Handlers) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var req updateTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := validateRequest(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	dueDate, clearDue, err := patchTime(req.DueDate, h.location)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid dueDate")
		return
	}
	paidDate, clearPaid, err := patchTime(req.PaidDate, h.location)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid paidDate")
		return
	}

	transactionID := pathID(r)
	updated, err := h.Transactions.UpdateTransaction(r.Context(), transactionsdomain.UpdateTransactionInput{
		ID:            transactionID,
		MemberID:      req.MemberID,
		GroupID:       req.GroupID,
		Amount:        req.Amount,
		Type:          req.Type,
		Status:        req.Status,
		DueDate:       dueDate,
		ClearDueDate:  clearDue,
		PaidDate:      paidDate,
		ClearPaidDate: clearPaid,
		Notes:         req.Notes,
	})
	if err != nil {
		h.fail(w, "transactions.update: update transaction failed", err, "transaction_id", transactionID)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponse(*updated))
}

func (h *Handlers) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := pathID(r)
	if err := h.Transactions.DeleteTransaction(r.Context(), transactionID); err != nil {
		h.fail(w, "transactions.delete: delete transaction failed", err, "transaction_id", transactionID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toTransactionResponses(items []transactionsdomain.Transaction) []transactionResponse {
	response := make([]transactionResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toTransactionResponse(item))
	}
	return response
}

func toTransactionResponse(transaction transactionsdomain.Transaction) transactionResponse {
	return transactionResponse{
		ID:            transaction.ID,
		MemberID:      transaction.MemberID,
		GroupID:       transaction.GroupID,
		Amount:        transaction.Amount.StringFixed(2),
		Type:          transaction.Type,
		Status:        transaction.Status,
		DueDate:       formatTimePtr(transaction.DueDate),
		PaidDate:      formatTimePtr(transaction.PaidDate),
		ReceiptNumber: transaction.ReceiptNumber,
		Notes:         transaction.Notes,
		CreatedBy:     transaction.CreatedBy,
		CreatedAt:     transaction.CreatedAt,
		UpdatedAt:     transaction.UpdatedAt,
	}
}
