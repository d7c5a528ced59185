package staff

import (
	"context"
	"errors"
	"time"

	staffdomain "chitfund-app-go/internal/domain/staff"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, userID string) (*staffdomain.User, error) {
	var user staffdomain.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, staffdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) UpsertUser(ctx context.Context, user *staffdomain.User) error {
	updates := map[string]interface{}{
		"role":       user.Role,
		"is_active":  user.IsActive,
		"updated_at": time.Now().UTC(),
	}
	if user.Email != nil {
		updates["email"] = user.Email
	}
	if user.FirstName != nil {
		updates["first_name"] = user.FirstName
	}
	if user.LastName != nil {
		updates["last_name"] = user.LastName
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(updates),
		}).
		Create(user).Error
}
