package staff

import "time"

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleAgent   = "agent"
	RoleStaff   = "staff"
)

type User struct {
	ID        string    `gorm:"primaryKey"`
	Email     *string   `gorm:"column:email"`
	FirstName *string   `gorm:"column:first_name"`
	LastName  *string   `gorm:"column:last_name"`
	Role      string    `gorm:"column:role;not null"`
	IsActive  bool      `gorm:"column:is_active;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "staff_users"
}

type UpsertUserInput struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Role      string
}

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleAgent, RoleStaff:
		return true
	}
	return false
}
