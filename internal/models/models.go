package models

import (
	"strings"
	"time"
)

// User is a registered account. Password holds the bcrypt hash, never plaintext.
type User struct {
	ID           int64  `gorm:"column:user_id;primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password;not null" json:"-"`
	Username     string `gorm:"not null" json:"username"`
	Goal         string `gorm:"type:text;not null" json:"goal"`

	Applications []Application `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// PublicUser is the projection of a user returned to clients.
type PublicUser struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Goal     string `json:"goal"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Goal:     u.Goal,
	}
}

type Application struct {
	ID     int64 `gorm:"column:application_id;primaryKey" json:"application_id"`
	UserID int64 `gorm:"not null;index" json:"user_id"`

	SubmissionDate time.Time `gorm:"type:date;not null" json:"submission_date"`
	Location       string    `gorm:"not null" json:"location"`
	Position       string    `gorm:"not null" json:"position"`
	CompanyName    string    `gorm:"not null" json:"company_name"`
	Status         Status    `gorm:"type:varchar(32);not null" json:"status"`
	Notes          *string   `gorm:"type:text" json:"notes"`
}

func (Application) TableName() string {
	return "applications"
}

// Status is the stage an application has reached. Any valid status may follow any other.
type Status string

const (
	StatusApplied            Status = "Applied"
	StatusInterviewScheduled Status = "Interview Scheduled"
	StatusInterviewCompleted Status = "Interview Completed"
	StatusOfferReceived      Status = "Offer Received"
	StatusRejected           Status = "Rejected"
)

// ValidStatuses lists every accepted status in display order.
var ValidStatuses = []Status{
	StatusApplied,
	StatusInterviewScheduled,
	StatusInterviewCompleted,
	StatusOfferReceived,
	StatusRejected,
}

// InterviewStatuses are the statuses counted as having reached an interview.
var InterviewStatuses = []Status{
	StatusInterviewScheduled,
	StatusInterviewCompleted,
	StatusOfferReceived,
}

func (s Status) IsValid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// StatusList renders ValidStatuses as "Applied, Interview Scheduled, ...".
func StatusList() string {
	names := make([]string, len(ValidStatuses))
	for i, s := range ValidStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
