package handler

import (
	"net/http"
	"time"

	membersdomain "chitfund-app-go/internal/domain/members"
)

type createMemberRequest struct {
	FirstName        string  `json:"firstName" validate:"required,max=100"`
	LastName         string  `json:"lastName" validate:"required,max=100"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Phone            string  `json:"phone" validate:"required,max=20"`
	Address          *string `json:"address"`
	PANNumber        *string `json:"panNumber" validate:"omitempty,max=10"`
	AadhaarNumber    *string `json:"aadhaarNumber" validate:"omitempty,max=14"`
	GSTNumber        *string `json:"gstNumber" validate:"omitempty,max=15"`
	FamilyCode       *string `json:"familyCode"`
	IntroducerID     *string `json:"introducerId"`
	NomineeFirstName *string `json:"nomineeFirstName"`
	NomineeLastName  *string `json:"nomineeLastName"`
	NomineeRelation  *string `json:"nomineeRelation"`
	Status           string  `json:"status"`
	RiskScore        int     `json:"riskScore" validate:"gte=0"`
}

type updateMemberRequest struct {
	FirstName        *string `json:"firstName" validate:"omitempty,max=100"`
	LastName         *string `json:"lastName" validate:"omitempty,max=100"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Phone            *string `json:"phone" validate:"omitempty,max=20"`
	Address          *string `json:"address"`
	PANNumber        *string `json:"panNumber" validate:"omitempty,max=10"`
	AadhaarNumber    *string `json:"aadhaarNumber" validate:"omitempty,max=14"`
	GSTNumber        *string `json:"gstNumber" validate:"omitempty,max=15"`
	FamilyCode       *string `json:"familyCode"`
	IntroducerID     *string `json:"introducerId"`
	NomineeFirstName *string `json:"nomineeFirstName"`
	NomineeLastName  *string `json:"nomineeLastName"`
	NomineeRelation  *string `json:"nomineeRelation"`
	Status           *string `json:"status"`
	RiskScore        *int    `json:"riskScore" validate:"omitempty,gte=0"`
}

type memberResponse struct {
	ID               string    `json:"id"`
	MemberCode       string    `json:"memberCode"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            *string   `json:"email"`
	Phone            string    `json:"phone"`
	Address          *string   `json:"address"`
	PANNumber        *string   `json:"panNumber"`
	AadhaarNumber    *string   `json:"aadhaarNumber"`
	GSTNumber        *string   `json:"gstNumber"`
	FamilyCode       *string   `json:"familyCode"`
	IntroducerID     *string   `json:"introducerId"`
	NomineeFirstName *string   `json:"nomineeFirstName"`
	NomineeLastName  *string   `json:"nomineeLastName"`
	NomineeRelation  *string   `json:"nomineeRelation"`
	Status           string    `json:"status"`
	RiskScore        int       `json:"riskScore"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (h *Handlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	items, err := h.Members.ListMembers(r.Context())
	if err != nil {
		h.fail(w, "members.list: list members failed", err)
		return
	}

	response := make([]memberResponse, 0, len(items))
	for _, member := range items {
		response = append(response, toMemberResponse(member))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetMember(w http.ResponseWriter, r *http.Request) {
	memberID := pathID(r)
	member, err := h.Members.GetMember(r.Context(), memberID)
	if err != nil {
		h.fail(w, "members.get: get member failed", err, "member_id", memberID)
		return
	}
	writeJSON(w, http.StatusOK, toMemberResponse(*member))
}

func (h *Handlers) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := validateRequest(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	created, err := h.Members.CreateMember(r.Context(), membersdomain.CreateMemberInput{Profile: membersdomain.Profile{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		PANNumber:        req.PANNumber,
		AadhaarNumber:    req.AadhaarNumber,
		GSTNumber:        req.GSTNumber,
		FamilyCode:       req.FamilyCode,
		IntroducerID:     req.IntroducerID,
		NomineeFirstName: req.NomineeFirstName,
		NomineeLastName:  req.NomineeLastName,
		NomineeRelation:  req.NomineeRelation,
		Status:           req.Status,
		RiskScore:        req.RiskScore,
	}})
	if err != nil {
		h.fail(w, "members.create: create member failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, toMemberResponse(*created))
}

func (h *Handlers) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var req updateMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := validateRequest(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	memberID := pathID(r)
	updated, err := h.Members.UpdateMember(r.Context(), membersdomain.UpdateMemberInput{
		ID:               memberID,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		PANNumber:        req.PANNumber,
		AadhaarNumber:    req.AadhaarNumber,
		GSTNumber:        req.GSTNumber,
		FamilyCode:       req.FamilyCode,
		IntroducerID:     req.IntroducerID,
		NomineeFirstName: req.NomineeFirstName,
		NomineeLastName:  req.NomineeLastName,
		NomineeRelation:  req.NomineeRelation,
		Status:           req.Status,
		RiskScore:        req.RiskScore,
	})
	if err != nil {
		h.fail(w, "members.update: update member failed", err, "member_id", memberID)
		return
	}
	writeJSON(w, http.StatusOK, toMemberResponse(*updated))
}

func (h *Handlers) DeleteMember(w http.ResponseWriter, r *http.Request) {
	memberID := pathID(r)
	if err := h.Members.DeleteMember(r.Context(), memberID); err != nil {
		h.fail(w, "members.delete: delete member failed", err, "member_id", memberID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListMemberTransactions(w http.ResponseWriter, r *http.Request) {
	memberID := pathID(r)
	items, err := h.Transactions.ListMemberTransactions(r.Context(), memberID)
	if err != nil {
		h.fail(w, "members.transactions: list transactions failed", err, "member_id", memberID)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponses(items))
}

func (h *Handlers) ListMemberDocuments(w http.ResponseWriter, r *http.Request) {
	memberID := pathID(r)
	items, err := h.Documents.ListMemberDocuments(r.Context(), memberID)
	if err != nil {
		h.fail(w, "members.documents: list documents failed", err, "member_id", memberID)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentResponses(items))
}

func toMemberResponse(member membersdomain.Member) memberResponse {
	return memberResponse{
		ID:               member.ID,
		MemberCode:       member.MemberCode,
		FirstName:        member.FirstName,
		LastName:         member.LastName,
		Email:            member.Email,
		Phone:            member.Phone,
		Address:          member.Address,
		PANNumber:        member.PANNumber,
		AadhaarNumber:    member.AadhaarNumber,
		GSTNumber:        member.GSTNumber,
		FamilyCode:       member.FamilyCode,
		IntroducerID:     member.IntroducerID,
		NomineeFirstName: member.NomineeFirstName,
		NomineeLastName:  member.NomineeLastName,
		NomineeRelation:  member.NomineeRelation,
		Status:           member.Status,
		RiskScore:        member.RiskScore,
		CreatedAt:        member.CreatedAt,
		UpdatedAt:        member.UpdatedAt,
	}
}
