package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	auctionsdomain "chitfund-app-go/internal/domain/auctions"
	documentsdomain "chitfund-app-go/internal/domain/documents"
	groupsdomain "chitfund-app-go/internal/domain/groups"
	ledgerdomain "chitfund-app-go/internal/domain/ledger"
	membersdomain "chitfund-app-go/internal/domain/members"
	staffdomain "chitfund-app-go/internal/domain/staff"
	transactionsdomain "chitfund-app-go/internal/domain/transactions"
	"gorm.io/gorm"
)

type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// domainErrors is matched in order; an empty message echoes the error text.
var domainErrors = []errorMapping{
	{target: membersdomain.ErrMemberNotFound, status: http.StatusNotFound, code: "member_not_found", message: "Member not found"},
	{target: membersdomain.ErrIntroducerNotFound, status: http.StatusBadRequest, code: "introducer_not_found", message: "Introducer not found"},
	{target: membersdomain.ErrInvalidMember, status: http.StatusBadRequest, code: "invalid_request"},
	{target: groupsdomain.ErrGroupNotFound, status: http.StatusNotFound, code: "chit_group_not_found", message: "Chit group not found"},
	{target: groupsdomain.ErrMemberNotFound, status: http.StatusNotFound, code: "member_not_found", message: "Member not found"},
	{target: groupsdomain.ErrAlreadyInGroup, status: http.StatusConflict, code: "already_in_group", message: "Member already in group"},
	{target: groupsdomain.ErrGroupFull, status: http.StatusConflict, code: "group_full", message: "Chit group is full"},
	{target: groupsdomain.ErrInvalidGroup, status: http.StatusBadRequest, code: "invalid_request"},
	{target: transactionsdomain.ErrTransactionNotFound, status: http.StatusNotFound, code: "transaction_not_found", message: "Transaction not found"},
	{target: transactionsdomain.ErrInvalidTransaction, status: http.StatusBadRequest, code: "invalid_request"},
	{target: auctionsdomain.ErrAuctionNotFound, status: http.StatusNotFound, code: "auction_not_found", message: "Auction not found"},
	{target: auctionsdomain.ErrInvalidAuction, status: http.StatusBadRequest, code: "invalid_request"},
	{target: documentsdomain.ErrFileRequired, status: http.StatusBadRequest, code: "file_required", message: "No file uploaded"},
	{target: documentsdomain.ErrFileTooLarge, status: http.StatusRequestEntityTooLarge, code: "file_too_large", message: "File too large"},
	{target: documentsdomain.ErrUnsupportedFileType, status: http.StatusUnsupportedMediaType, code: "unsupported_file_type", message: "Invalid file type. Only PDF, JPG, and PNG files are allowed."},
	{target: ledgerdomain.ErrInvalidFilter, status: http.StatusBadRequest, code: "invalid_request"},
	{target: staffdomain.ErrUserNotFound, status: http.StatusNotFound, code: "user_not_found", message: "User not found"},
	{target: gorm.ErrDuplicatedKey, status: http.StatusConflict, code: "conflict", message: "Record already exists"},
	{target: gorm.ErrForeignKeyViolated, status: http.StatusConflict, code: "conflict", message: "Record is referenced by or references a missing record"},
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Message: message, Code: code})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// fail maps err to a response. Known domain errors are logged as business
// errors, everything else as an internal error with a 500.
func (h *Handlers) fail(w http.ResponseWriter, op string, err error, args ...any) {
	for _, mapping := range domainErrors {
		if !errors.Is(err, mapping.target) {
			continue
		}
		h.log.BusinessError(op, err, args...)
		message := mapping.message
		if message == "" {
			message = err.Error()
		}
		writeError(w, mapping.status, mapping.code, message)
		return
	}

	h.log.InternalError(op, err, args...)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}
