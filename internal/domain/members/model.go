package members

import (
	"strings"
	"time"
)

const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

type Member struct {
	ID               string    `gorm:"primaryKey"`
	MemberCode       string    `gorm:"column:member_code;uniqueIndex;not null"`
	FirstName        string    `gorm:"column:first_name;not null"`
	LastName         string    `gorm:"column:last_name;not null"`
	Email            *string   `gorm:"column:email"`
	Phone            string    `gorm:"column:phone;not null"`
	Address          *string   `gorm:"column:address"`
	PANNumber        *string   `gorm:"column:pan_number"`
	AadhaarNumber    *string   `gorm:"column:aadhaar_number"`
	GSTNumber        *string   `gorm:"column:gst_number"`
	FamilyCode       *string   `gorm:"column:family_code"`
	IntroducerID     *string   `gorm:"column:introducer_id"`
	NomineeFirstName *string   `gorm:"column:nominee_first_name"`
	NomineeLastName  *string   `gorm:"column:nominee_last_name"`
	NomineeRelation  *string   `gorm:"column:nominee_relation"`
	Status           string    `gorm:"column:status;not null"`
	RiskScore        int       `gorm:"column:risk_score;not null"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (m Member) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// Profile carries the editable member fields. Code, id and timestamps are
// always server populated.
type Profile struct {
	FirstName        string
	LastName         string
	Email            *string
	Phone            string
	Address          *string
	PANNumber        *string
	AadhaarNumber    *string
	GSTNumber        *string
	FamilyCode       *string
	IntroducerID     *string
	NomineeFirstName *string
	NomineeLastName  *string
	NomineeRelation  *string
	Status           string
	RiskScore        int
}

type CreateMemberInput struct {
	Profile
}

// UpdateMemberInput is a partial update: nil fields are left untouched and an
// empty optional string clears the stored value.
type UpdateMemberInput struct {
	ID               string
	FirstName        *string
	LastName         *string
	Email            *string
	Phone            *string
	Address          *string
	PANNumber        *string
	AadhaarNumber    *string
	GSTNumber        *string
	FamilyCode       *string
	IntroducerID     *string
	NomineeFirstName *string
	NomineeLastName  *string
	NomineeRelation  *string
	Status           *string
	RiskScore        *int
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	}
	return false
}
