package members

import (
	"context"
	"errors"

	membersdomain "chitfund-app-go/internal/domain/members"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListMembers(ctx context.Context) ([]membersdomain.Member, error) {
	var members []membersdomain.Member
	if err := r.db.WithContext(ctx).
		Order("created_at desc, id desc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *PostgresRepository) GetMemberByID(ctx context.Context, memberID string) (*membersdomain.Member, error) {
	var member membersdomain.Member
	if err := r.db.WithContext(ctx).
		Where("id = ?", memberID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, membersdomain.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *PostgresRepository) CreateMember(ctx context.Context, member *membersdomain.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *PostgresRepository) UpdateMember(ctx context.Context, member *membersdomain.Member) error {
	result := r.db.WithContext(ctx).
		Model(&membersdomain.Member{}).
		Where("id = ?", member.ID).
		Updates(map[string]interface{}{
			"first_name":         member.FirstName,
			"last_name":          member.LastName,
			"email":              member.Email,
			"phone":              member.Phone,
			"address":            member.Address,
			"pan_number":         member.PANNumber,
			"aadhaar_number":     member.AadhaarNumber,
			"gst_number":         member.GSTNumber,
			"family_code":        member.FamilyCode,
			"introducer_id":      member.IntroducerID,
			"nominee_first_name": member.NomineeFirstName,
			"nominee_last_name":  member.NomineeLastName,
			"nominee_relation":   member.NomineeRelation,
			"status":             member.Status,
			"risk_score":         member.RiskScore,
			"updated_at":         member.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return membersdomain.ErrMemberNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteMember(ctx context.Context, memberID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&membersdomain.Member{}, "id = ?", memberID)
	return result.RowsAffected > 0, result.Error
}
