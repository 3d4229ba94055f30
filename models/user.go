package models

import "time"

type VerificationStatus string
type Role string

const (
	// Verification statuses (gates access to paid/sample content)
	VerificationPending  VerificationStatus = "pending"  // Awaiting admin review
	VerificationApproved VerificationStatus = "approved" // Full access
	VerificationRejected VerificationStatus = "rejected" // Access denied

	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type Profile struct {
	ID                 string             `gorm:"primaryKey" json:"id"`
	FullName           string             `json:"full_name"`
	Email              string             `gorm:"unique;not null" json:"email"`
	Phone              string             `json:"phone"`
	PasswordHash       string             `gorm:"not null" json:"-"`
	VerificationStatus VerificationStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"verification_status"`
	Role               Role               `gorm:"type:VARCHAR(20);default:'user'" json:"role"`
	Cart               Cart               `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	Orders             []Order            `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders"`
	CreatedAt          time.Time          `json:"created_at"`
}
