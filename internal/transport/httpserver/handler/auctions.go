package handler

import (
	"net/http"
	"time"

	auctionsdomain "chitfund-app-go/internal/domain/auctions"
	"github.com/shopspring/decimal"
)

type createAuctionRequest struct {
	GroupID        string           `json:"groupId" validate:"required"`
	RoundNumber    int              `json:"roundNumber" validate:"required,gte=1"`
	AuctionDate    string           `json:"auctionDate" validate:"required"`
	ChitAmount     *decimal.Decimal `json:"chitAmount" validate:"required"`
	DiscountAmount *decimal.Decimal `json:"discountAmount"`
	WinnerID       *string          `json:"winnerId"`
	Status         string           `json:"status"`
}

type updateAuctionRequest struct {
	GroupID        *string          `json:"groupId"`
	RoundNumber    *int             `json:"roundNumber" validate:"omitempty,gte=1"`
	AuctionDate    *string          `json:"auctionDate"`
	ChitAmount     *decimal.Decimal `json:"chitAmount"`
	DiscountAmount *decimal.Decimal `json:"discountAmount"`
	WinnerID       *string          `json:"winnerId"`
	Status         *string          `json:"status"`
}

type auctionResponse struct {
	ID             string    `json:"id"`
	GroupID        string    `json:"groupId"`
	RoundNumber    int       `json:"roundNumber"`
	AuctionDate    time.Time `json:"auctionDate"`
	ChitAmount     string    `json:"chitAmount"`
	DiscountAmount string    `json:"discountAmount"`
	WinnerID       *string   `json:"winnerId"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (h *Handlers) ListAuctions(w http.ResponseWriter, r *http.Request) {
	items, err := h.Auctions.ListAuctions(r.Context())
	if err != nil {
		h.fail(w, "auctions.list: list auctions failed", err)
		return
	}
	writeJSON(w, http.StatusOK, toAuctionResponses(items))
}

func (h *Handlers) ListUpcomingAuctions(w http.ResponseWriter, r *http.Request) {
	items, err := h.Auctions.ListUpcoming(r.Context())
	if err != nil {
		h.fail(w, "auctions.upcoming: list upcoming auctions failed", err)
		return
	}
	writeJSON(w, http.StatusOK, toAuctionResponses(items))
}

func (h *Handlers) GetAuction(w http.ResponseWriter, r *http.Request) {
	auctionID := pathID(r)
	auction, err := h.Auctions.GetAuction(r.Context(), auctionID)
	if err != nil {
		h.fail(w, "auctions.get: get auction failed", err, "auction_id", auctionID)
		return
	}
	writeJSON(w, http.StatusOK, toAuctionResponse(*auction))
}

func (h *Handlers) CreateAuction(w http.ResponseWriter, r *http.Request) {
	var req createAuctionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := validateRequest(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	auctionDate, err := parseTimeRequired(req.AuctionDate, h.location)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid auctionDate")
		return
	}

	created, err := h.Auctions.CreateAuction(r.Context(), auctionsdomain.CreateAuctionInput{
		GroupID:        req.GroupID,
		RoundNumber:    req.RoundNumber,
		AuctionDate:    auctionDate,
		ChitAmount:     *req.ChitAmount,
		DiscountAmount: req.DiscountAmount,
		WinnerID:       req.WinnerID,
		Status:         req.Status,
	})
	if err != nil {
		h.fail(w, "auctions.create: create auction failed", err, "group_id", req.GroupID)
		return
	}
	writeJSON(w, http.StatusCreated, toAuctionResponse(*created))
}

func (h *Handlers) UpdateAuction(w http.ResponseWriter, r *http.Request) {
	var req updateAuctionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := validateRequest(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	auctionID := pathID(r)
	input := auctionsdomain.UpdateAuctionInput{
		ID:             auctionID,
		GroupID:        req.GroupID,
		RoundNumber:    req.RoundNumber,
		ChitAmount:     req.ChitAmount,
		DiscountAmount: req.DiscountAmount,
		WinnerID:       req.WinnerID,
		Status:         req.Status,
	}
	if req.AuctionDate != nil {
		auctionDate, err := parseTimeRequired(*req.AuctionDate, h.location)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid auctionDate")
			return
		}
		input.AuctionDate = &auctionDate
	}

	updated, err := h.Auctions.UpdateAuction(r.Context(), input)
	if err != nil {
		h.fail(w, "auctions.update: update auction failed", err, "auction_id", auctionID)
		return
	}
	writeJSON(w, http.StatusOK, toAuctionResponse(*updated))
}

func (h *Handlers) DeleteAuction(w http.ResponseWriter, r *http.Request) {
	auctionID := pathID(r)
	if err := h.Auctions.DeleteAuction(r.Context(), auctionID); err != nil {
		h.fail(w, "auctions.delete: delete auction failed", err, "auction_id", auctionID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toAuctionResponses(items []auctionsdomain.Auction) []auctionResponse {
	response := make([]auctionResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toAuctionResponse(item))
	}
	return response
}

func toAuctionResponse(auction auctionsdomain.Auction) auctionResponse {
	return auctionResponse{
		ID:             auction.ID,
		GroupID:        auction.GroupID,
		RoundNumber:    auction.RoundNumber,
		AuctionDate:    auction.AuctionDate,
		ChitAmount:     auction.ChitAmount.StringFixed(2),
		DiscountAmount: auction.DiscountAmount.StringFixed(2),
		WinnerID:       auction.WinnerID,
		Status:         auction.Status,
		CreatedAt:      auction.CreatedAt,
		UpdatedAt:      auction.UpdatedAt,
	}
}
