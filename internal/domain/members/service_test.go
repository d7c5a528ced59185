package members

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"
)

type fakeMembersRepo struct {
	members map[string]*Member
}

func newFakeMembersRepo() *fakeMembersRepo {
	return &fakeMembersRepo{members: make(map[string]*Member)}
}

func (r *fakeMembersRepo) ListMembers(ctx context.Context) ([]Member, error) {
	items := make([]Member, 0, len(r.members))
	for _, member := range r.members {
		items = append(items, *member)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *fakeMembersRepo) GetMemberByID(ctx context.Context, memberID string) (*Member, error) {
	member, ok := r.members[memberID]
	if !ok {
		return nil, ErrMemberNotFound
	}
	copied := *member
	return &copied, nil
}

func (r *fakeMembersRepo) CreateMember(ctx context.Context, member *Member) error {
	copied := *member
	r.members[member.ID] = &copied
	return nil
}

func (r *fakeMembersRepo) UpdateMember(ctx context.Context, member *Member) error {
	if _, ok := r.members[member.ID]; !ok {
		return ErrMemberNotFound
	}
	copied := *member
	r.members[member.ID] = &copied
	return nil
}

func (r *fakeMembersRepo) DeleteMember(ctx context.Context, memberID string) (bool, error) {
	if _, ok := r.members[memberID]; !ok {
		return false, nil
	}
	delete(r.members, memberID)
	return true, nil
}

func strPtr(value string) *string {
	return &value
}

func TestCreateMemberThenGet(t *testing.T) {
	repo := newFakeMembersRepo()
	svc := NewService(repo)

	created, err := svc.CreateMember(context.Background(), CreateMemberInput{Profile: Profile{
		FirstName: "  Ravi ",
		LastName:  "Kumar",
		Phone:     "9876543210",
		Email:     strPtr("ravi@example.com"),
		PANNumber: strPtr("abcde1234f"),
		Address:   strPtr("   "),
	}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !strings.HasPrefix(created.MemberCode, "M") {
		t.Fatalf("expected member code with M prefix, got %q", created.MemberCode)
	}
	if created.Status != StatusActive {
		t.Fatalf("expected default status active, got %q", created.Status)
	}
	if created.Address != nil {
		t.Fatalf("expected blank address to be dropped, got %q", *created.Address)
	}

	fetched, err := svc.GetMember(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if fetched.FirstName != "Ravi" || fetched.LastName != "Kumar" {
		t.Fatalf("expected trimmed names, got %q %q", fetched.FirstName, fetched.LastName)
	}
	if fetched.PANNumber == nil || *fetched.PANNumber != "ABCDE1234F" {
		t.Fatalf("expected upper-cased pan, got %v", fetched.PANNumber)
	}
	if fetched.MemberCode != created.MemberCode {
		t.Fatalf("expected code %q, got %q", created.MemberCode, fetched.MemberCode)
	}
}

func TestCreateMemberCodesUnique(t *testing.T) {
	repo := newFakeMembersRepo()
	svc := NewService(repo)

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		member, err := svc.CreateMember(context.Background(), CreateMemberInput{Profile: Profile{
			FirstName: "A",
			LastName:  "B",
			Phone:     "1",
		}})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, ok := seen[member.MemberCode]; ok {
			t.Fatalf("duplicate member code %q", member.MemberCode)
		}
		seen[member.MemberCode] = struct{}{}
	}
}

func TestCreateMemberValidation(t *testing.T) {
	cases := []struct {
		name    string
		profile Profile
	}{
		{name: "missing first name", profile: Profile{LastName: "B", Phone: "1"}},
		{name: "missing last name", profile: Profile{FirstName: "A", Phone: "1"}},
		{name: "missing phone", profile: Profile{FirstName: "A", LastName: "B"}},
		{name: "unknown status", profile: Profile{FirstName: "A", LastName: "B", Phone: "1", Status: "banned"}},
		{name: "negative risk", profile: Profile{FirstName: "A", LastName: "B", Phone: "1", RiskScore: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(newFakeMembersRepo())
			_, err := svc.CreateMember(context.Background(), CreateMemberInput{Profile: tc.profile})
			if !errors.Is(err, ErrInvalidMember) {
				t.Fatalf("expected ErrInvalidMember, got %v", err)
			}
		})
	}
}

func TestCreateMemberUnknownIntroducer(t *testing.T) {
	svc := NewService(newFakeMembersRepo())

	_, err := svc.CreateMember(context.Background(), CreateMemberInput{Profile: Profile{
		FirstName:    "A",
		LastName:     "B",
		Phone:        "1",
		IntroducerID: strPtr("missing"),
	}})
	if !errors.Is(err, ErrIntroducerNotFound) {
		t.Fatalf("expected ErrIntroducerNotFound, got %v", err)
	}
}

func TestUpdateMemberPartial(t *testing.T) {
	repo := newFakeMembersRepo()
	repo.members["mem-1"] = &Member{
		ID:         "mem-1",
		MemberCode: "M1",
		FirstName:  "Old",
		LastName:   "Name",
		Phone:      "111",
		Email:      strPtr("old@example.com"),
		Status:     StatusActive,
	}
	repo.members["mem-2"] = &Member{ID: "mem-2", MemberCode: "M2", FirstName: "Intro", LastName: "Ducer", Phone: "2", Status: StatusActive}

	svc := NewService(repo)
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	updated, err := svc.UpdateMember(context.Background(), UpdateMemberInput{
		ID:           "mem-1",
		FirstName:    strPtr("New"),
		Email:        strPtr(""),
		IntroducerID: strPtr("mem-2"),
		Status:       strPtr("Suspended"),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.FirstName != "New" || updated.LastName != "Name" {
		t.Fatalf("expected only first name changed, got %q %q", updated.FirstName, updated.LastName)
	}
	if updated.Email != nil {
		t.Fatalf("expected email cleared, got %q", *updated.Email)
	}
	if updated.IntroducerID == nil || *updated.IntroducerID != "mem-2" {
		t.Fatalf("expected introducer mem-2, got %v", updated.IntroducerID)
	}
	if updated.Status != StatusSuspended {
		t.Fatalf("expected status suspended, got %q", updated.Status)
	}
	if !updated.UpdatedAt.Equal(fixed) {
		t.Fatalf("expected updated at %v, got %v", fixed, updated.UpdatedAt)
	}
	if repo.members["mem-1"].MemberCode != "M1" {
		t.Fatalf("expected member code unchanged, got %q", repo.members["mem-1"].MemberCode)
	}
}

func TestUpdateMemberSelfIntroducer(t *testing.T) {
	repo := newFakeMembersRepo()
	repo.members["mem-1"] = &Member{ID: "mem-1", FirstName: "A", LastName: "B", Phone: "1", Status: StatusActive}
	svc := NewService(repo)

	_, err := svc.UpdateMember(context.Background(), UpdateMemberInput{ID: "mem-1", IntroducerID: strPtr("mem-1")})
	if !errors.Is(err, ErrInvalidMember) {
		t.Fatalf("expected ErrInvalidMember, got %v", err)
	}
}

func TestUpdateMemberNotFound(t *testing.T) {
	svc := NewService(newFakeMembersRepo())

	_, err := svc.UpdateMember(context.Background(), UpdateMemberInput{ID: "missing", FirstName: strPtr("X")})
	if !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestDeleteMember(t *testing.T) {
	repo := newFakeMembersRepo()
	repo.members["mem-1"] = &Member{ID: "mem-1"}
	svc := NewService(repo)

	if err := svc.DeleteMember(context.Background(), "mem-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := svc.DeleteMember(context.Background(), "mem-1"); !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}
