package handler

import (
	"net/http"
	"time"

	groupsdomain "chitfund-app-go/internal/domain/groups"
	"chitfund-app-go/internal/transport/httpserver/middleware"
	"github.com/shopspring/decimal"
)

type createGroupRequest struct {
	GroupName           string           `json:"groupName" validate:"required,max=200"`
	ChitAmount          *decimal.Decimal `json:"chitAmount" validate:"required"`
	Duration            int              `json:"duration" validate:"required,gt=0"`
	Frequency           string           `json:"frequency" validate:"required"`
	TotalMembers        int              `json:"totalMembers" validate:"required,gt=0"`
	CurrentRound        *int             `json:"currentRound" validate:"omitempty,gte=1"`
	MonthlyContribution *decimal.Decimal `json:"monthlyContribution"`
	StartDate           string           `json:"startDate" validate:"required"`
	EndDate             *string          `json:"endDate"`
	Status              string           `json:"status"`
}

type updateGroupRequest struct {
	GroupName           *string          `json:"groupName" validate:"omitempty,max=200"`
	ChitAmount          *decimal.Decimal `json:"chitAmount"`
	Duration            *int             `json:"duration" validate:"omitempty,gt=0"`
	Frequency           *string          `json:"frequency"`
	TotalMembers        *int             `json:"totalMembers" validate:"omitempty,gt=0"`
	CurrentRound        *int             `json:"currentRound" validate:"omitempty,gte=1"`
	MonthlyContribution *decimal.Decimal `json:"monthlyContribution"`
	StartDate           *string          `json:"startDate"`
	EndDate             *string          `json:"endDate"`
	Status              *string          `json:"status"`
}

type addGroupMemberRequest struct {
	MemberID string `json:"memberId" validate:"required"`
}

type groupResponse struct {
	ID                  string    `json:"id"`
	GroupName           string    `json:"groupName"`
	GroupCode           string    `json:"groupCode"`
	ChitAmount          string    `json:"chitAmount"`
	Duration            int       `json:"duration"`
	Frequency           string    `json:"frequency"`
	TotalMembers        int       `json:"totalMembers"`
	CurrentRound        int       `json:"currentRound"`
	MonthlyContribution string    `json:"monthlyContribution"`
	StartDate           time.Time `json:"startDate"`
	EndDate             *string   `json:"endDate"`
	Status              string    `json:"status"`
	CreatedBy           *string   `json:"createdBy"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type groupMemberResponse struct {
	ID           string    `json:"id"`
	GroupID      string    `json:"groupId"`
	MemberID     string    `json:"memberId"`
	JoinedAt     time.Time `json:"joinedAt"`
	IsWinner     bool      `json:"isWinner"`
	WinningRound *int      `json:"winningRound"`
}

func (h *Handlers) ListGroups(w http.ResponseWriter, r *http.Request) {
	items, err := h.Groups.ListGroups(r.Context())
	if err != nil {
		h.fail(w, "groups.list: list groups failed", err)
		return
	}

	response := make([]groupResponse, 0, len(items))
	for _, group := range items {
		response = append(response, toGroupResponse(group))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetGroup(w http.ResponseWriter, r *http.Request) {
	groupID := pathID(r)
	group, err := h.Groups.GetGroup(r.Context(), groupID)
	if err != nil {
		h.fail(w, "groups.get: get group failed", err, "group_id", groupID)
		return
	}
	writeJSON(w, http.StatusOK, toGroupResponse(*group))
}

func (h *Handlers) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := validateRequest(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	startDate, err := parseTimeRequired(req.StartDate, h.location)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid startDate")
		return
	}
	endDate, _, err := patchTime(req.EndDate, h.location)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid endDate")
		return
	}

	user, _ := middleware.UserFromContext(r.Context())
	created, err := h.Groups.CreateGroup(r.Context(), groupsdomain.CreateGroupInput{
		GroupName:           req.GroupName,
		ChitAmount:          *req.ChitAmount,
		Duration:            req.Duration,
		Frequency:           req.Frequency,
		TotalMembers:        req.TotalMembers,
		CurrentRound:        req.CurrentRound,
		MonthlyContribution: req.MonthlyContribution,
		StartDate:           startDate,
		EndDate:             endDate,
		Status:              req.Status,
		CreatedBy:           user.ID,
	})
	if err != nil {
		h.fail(w, "groups.create: create group failed", err, "user_id", user.ID)
		return
	}
	writeJSON(w, http.StatusCreated, toGroupResponse(*created))
}

func (h *Handlers) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	var req updateGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := validateRequest(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	groupID := pathID(r)
	input := groupsdomain.UpdateGroupInput{
		ID:                  groupID,
		GroupName:           req.GroupName,
		ChitAmount:          req.ChitAmount,
		Duration:            req.Duration,
		Frequency:           req.Frequency,
		TotalMembers:        req.TotalMembers,
		CurrentRound:        req.CurrentRound,
		MonthlyContribution: req.MonthlyContribution,
		Status:              req.Status,
	}
	if req.StartDate != nil {
		startDate, err := parseTimeRequired(*req.StartDate, h.location)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid startDate")
			return
		}
		input.StartDate = &startDate
	}
	endDate, clearEnd, err := patchTime(req.EndDate, h.location)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid endDate")
		return
	}
	input.EndDate = endDate
	input.ClearEndDate = clearEnd

	updated, err := h.Groups.UpdateGroup(r.Context(), input)
	if err != nil {
		h.fail(w, "groups.update: update group failed", err, "group_id", groupID)
		return
	}
	writeJSON(w, http.StatusOK, toGroupResponse(*updated))
}

func (h *Handlers) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	groupID := pathID(r)
	if err := h.Groups.DeleteGroup(r.Context(), groupID); err != nil {
		h.fail(w, "groups.delete: delete group failed", err, "group_id", groupID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListGroupMembers(w http.ResponseWriter, r *http.Request) {
	groupID := pathID(r)
	items, err := h.Groups.ListMembers(r.Context(), groupID)
	if err != nil {
		h.fail(w, "groups.members.list: list group members failed", err, "group_id", groupID)
		return
	}

	response := make([]groupMemberResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toGroupMemberResponse(item))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) AddGroupMember(w http.ResponseWriter, r *http.Request) {
	var req addGroupMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if err := validateRequest(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	groupID := pathID(r)
	added, err := h.Groups.AddMember(r.Context(), groupsdomain.AddMemberInput{GroupID: groupID, MemberID: req.MemberID})
	if err != nil {
		h.fail(w, "groups.members.add: add member failed", err, "group_id", groupID, "member_id", req.MemberID)
		return
	}
	writeJSON(w, http.StatusCreated, toGroupMemberResponse(*added))
}

func toGroupResponse(group groupsdomain.ChitGroup) groupResponse {
	return groupResponse{
		ID:                  group.ID,
		GroupName:           group.GroupName,
		GroupCode:           group.GroupCode,
		ChitAmount:          group.ChitAmount.StringFixed(2),
		Duration:            group.Duration,
		Frequency:           group.Frequency,
		TotalMembers:        group.TotalMembers,
		CurrentRound:        group.CurrentRound,
		MonthlyContribution: group.MonthlyContribution.StringFixed(2),
		StartDate:           group.StartDate,
		EndDate:             formatTimePtr(group.EndDate),
		Status:              group.Status,
		CreatedBy:           group.CreatedBy,
		CreatedAt:           group.CreatedAt,
		UpdatedAt:           group.UpdatedAt,
	}
}

func toGroupMemberResponse(item groupsdomain.GroupMember) groupMemberResponse {
	return groupMemberResponse{
		ID:           item.ID,
		GroupID:      item.GroupID,
		MemberID:     item.MemberID,
		JoinedAt:     item.JoinedAt,
		IsWinner:     item.IsWinner,
		WinningRound: item.WinningRound,
	}
}
