package members

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"chitfund-app-go/pkg/idgen"
)

const memberCodePrefix = "M"

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) ListMembers(ctx context.Context) ([]Member, error) {
	return s.repo.ListMembers(ctx)
}

func (s *Service) GetMember(ctx context.Context, memberID string) (*Member, error) {
	return s.repo.GetMemberByID(ctx, memberID)
}

func (s *Service) CreateMember(ctx context.Context, input CreateMemberInput) (*Member, error) {
	profile := normalizeProfile(input.Profile)
	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	if err := s.checkIntroducer(ctx, "", profile.IntroducerID); err != nil {
		return nil, err
	}

	code, err := idgen.NewCode(memberCodePrefix)
	if err != nil {
		return nil, fmt.Errorf("generate member code: %w", err)
	}

	member := Member{
		ID:         idgen.NewID(),
		MemberCode: code,
	}
	applyProfile(&member, profile)

	if err := s.repo.CreateMember(ctx, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *Service) UpdateMember(ctx context.Context, input UpdateMemberInput) (*Member, error) {
	member, err := s.repo.GetMemberByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	profile := profileOf(*member)
	mergeProfile(&profile, input)
	profile = normalizeProfile(profile)
	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	if input.IntroducerID != nil {
		if err := s.checkIntroducer(ctx, member.ID, profile.IntroducerID); err != nil {
			return nil, err
		}
	}

	applyProfile(member, profile)
	member.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *Service) DeleteMember(ctx context.Context, memberID string) error {
	deleted, err := s.repo.DeleteMember(ctx, memberID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMemberNotFound
	}
	return nil
}

func (s *Service) checkIntroducer(ctx context.Context, memberID string, introducerID *string) error {
	if introducerID == nil {
		return nil
	}
	if *introducerID == memberID {
		return fmt.Errorf("%w: member cannot introduce themselves", ErrInvalidMember)
	}
	if _, err := s.repo.GetMemberByID(ctx, *introducerID); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return ErrIntroducerNotFound
		}
		return err
	}
	return nil
}

func validateProfile(profile Profile) error {
	if profile.FirstName == "" {
		return fmt.Errorf("%w: first name is required", ErrInvalidMember)
	}
	if profile.LastName == "" {
		return fmt.Errorf("%w: last name is required", ErrInvalidMember)
	}
	if profile.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidMember)
	}
	if !IsValidStatus(profile.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidMember, profile.Status)
	}
	if profile.RiskScore < 0 {
		return fmt.Errorf("%w: risk score must not be negative", ErrInvalidMember)
	}
	return nil
}

func normalizeProfile(profile Profile) Profile {
	profile.FirstName = strings.TrimSpace(profile.FirstName)
	profile.LastName = strings.TrimSpace(profile.LastName)
	profile.Phone = strings.TrimSpace(profile.Phone)
	profile.Status = strings.ToLower(strings.TrimSpace(profile.Status))
	if profile.Status == "" {
		profile.Status = StatusActive
	}

	profile.Email = optionalString(profile.Email)
	profile.Address = optionalString(profile.Address)
	profile.PANNumber = upperOptional(profile.PANNumber)
	profile.AadhaarNumber = optionalString(profile.AadhaarNumber)
	profile.GSTNumber = upperOptional(profile.GSTNumber)
	profile.FamilyCode = optionalString(profile.FamilyCode)
	profile.IntroducerID = optionalString(profile.IntroducerID)
	profile.NomineeFirstName = optionalString(profile.NomineeFirstName)
	profile.NomineeLastName = optionalString(profile.NomineeLastName)
	profile.NomineeRelation = optionalString(profile.NomineeRelation)
	return profile
}

func mergeProfile(profile *Profile, input UpdateMemberInput) {
	if input.FirstName != nil {
		profile.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		profile.LastName = *input.LastName
	}
	if input.Phone != nil {
		profile.Phone = *input.Phone
	}
	if input.Status != nil {
		profile.Status = *input.Status
	}
	if input.RiskScore != nil {
		profile.RiskScore = *input.RiskScore
	}
	mergeOptional(&profile.Email, input.Email)
	mergeOptional(&profile.Address, input.Address)
	mergeOptional(&profile.PANNumber, input.PANNumber)
	mergeOptional(&profile.AadhaarNumber, input.AadhaarNumber)
	mergeOptional(&profile.GSTNumber, input.GSTNumber)
	mergeOptional(&profile.FamilyCode, input.FamilyCode)
	mergeOptional(&profile.IntroducerID, input.IntroducerID)
	mergeOptional(&profile.NomineeFirstName, input.NomineeFirstName)
	mergeOptional(&profile.NomineeLastName, input.NomineeLastName)
	mergeOptional(&profile.NomineeRelation, input.NomineeRelation)
}

func profileOf(member Member) Profile {
	return Profile{
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
	}
}

func applyProfile(member *Member, profile Profile) {
	member.FirstName = profile.FirstName
	member.LastName = profile.LastName
	member.Email = profile.Email
	member.Phone = profile.Phone
	member.Address = profile.Address
	member.PANNumber = profile.PANNumber
	member.AadhaarNumber = profile.AadhaarNumber
	member.GSTNumber = profile.GSTNumber
	member.FamilyCode = profile.FamilyCode
	member.IntroducerID = profile.IntroducerID
	member.NomineeFirstName = profile.NomineeFirstName
	member.NomineeLastName = profile.NomineeLastName
	member.NomineeRelation = profile.NomineeRelation
	member.Status = profile.Status
	member.RiskScore = profile.RiskScore
}

func mergeOptional(dst **string, value *string) {
	if value != nil {
		v := *value
		*dst = &v
	}
}

func optionalString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func upperOptional(value *string) *string {
	value = optionalString(value)
	if value == nil {
		return nil
	}
	upper := strings.ToUpper(*value)
	return &upper
}
