package models

import "time"

// StatusHistory is one append-only entry of a booking's status trail.
type StatusHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookingID uint      `gorm:"not null;index" json:"booking_id"`
	Status    string    `gorm:"type:varchar(50);not null" json:"status"`
	UpdatedBy string    `gorm:"type:varchar(255);not null" json:"updated_by"`
	Notes     *string   `gorm:"type:text" json:"notes"`
	UpdatedAt time.Time `gorm:"autoCreateTime;index" json:"updated_at"`
}

func (StatusHistory) TableName() string {
	return "status_history"
}
