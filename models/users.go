package models

import "time"

const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleOwner    = "owner"
	RoleAdmin    = "admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255)" json:"name"`
	EmailOrPhone string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email_or_phone"`
	Password     string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         string    `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsOwner reports whether the user may use the owner area.
func (u User) IsOwner() bool {
	return u.Role == RoleOwner || u.Role == RoleAdmin
}
