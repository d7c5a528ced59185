package groups

import (
	"context"
	"errors"

	groupsdomain "chitfund-app-go/internal/domain/groups"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(groupsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) ListGroups(ctx context.Context) ([]groupsdomain.ChitGroup, error) {
	var groups []groupsdomain.ChitGroup
	if err := r.db.WithContext(ctx).
		Order("created_at desc, id desc").
		Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *PostgresRepository) GetGroupByID(ctx context.Context, groupID string) (*groupsdomain.ChitGroup, error) {
	return r.findGroup(r.db.WithContext(ctx), groupID)
}

func (r *PostgresRepository) LockGroup(ctx context.Context, groupID string) (*groupsdomain.ChitGroup, error) {
	return r.findGroup(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), groupID)
}

func (r *PostgresRepository) findGroup(query *gorm.DB, groupID string) (*groupsdomain.ChitGroup, error) {
	var group groupsdomain.ChitGroup
	if err := query.Where("id = ?", groupID).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, groupsdomain.ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

func (r *PostgresRepository) CreateGroup(ctx context.Context, group *groupsdomain.ChitGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *PostgresRepository) UpdateGroup(ctx context.Context, group *groupsdomain.ChitGroup) error {
	result := r.db.WithContext(ctx).
		Model(&groupsdomain.ChitGroup{}).
		Where("id = ?", group.ID).
		Updates(map[string]interface{}{
			"group_name":           group.GroupName,
			"chit_amount":          group.ChitAmount,
			"duration":             group.Duration,
			"frequency":            group.Frequency,
			"total_members":        group.TotalMembers,
			"current_round":        group.CurrentRound,
			"monthly_contribution": group.MonthlyContribution,
			"start_date":           group.StartDate,
			"end_date":             group.EndDate,
			"status":               group.Status,
			"updated_at":           group.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return groupsdomain.ErrGroupNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteGroup(ctx context.Context, groupID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&groupsdomain.ChitGroup{}, "id = ?", groupID)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) MemberExists(ctx context.Context, memberID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("members").
		Where("id = ?", memberID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) ListGroupMembers(ctx context.Context, groupID string) ([]groupsdomain.GroupMember, error) {
	var items []groupsdomain.GroupMember
	if err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("joined_at asc, id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) IsGroupMember(ctx context.Context, groupID, memberID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&groupsdomain.GroupMember{}).
		Where("group_id = ? AND member_id = ?", groupID, memberID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) CountGroupMembers(ctx context.Context, groupID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&groupsdomain.GroupMember{}).
		Where("group_id = ?", groupID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) CreateGroupMember(ctx context.Context, groupMember *groupsdomain.GroupMember) error {
	return r.db.WithContext(ctx).Create(groupMember).Error
}
