package models

import "time"

type Booking struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	User           User      `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ServiceID      uint      `gorm:"not null;index" json:"service_id"`
	Service        Service   `gorm:"foreignKey:ServiceID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	BookingDate    string    `gorm:"type:varchar(10);not null" json:"booking_date"`
	TimeSlot       string    `gorm:"type:varchar(50);not null" json:"time_slot"`
	DeliveryType   string    `gorm:"type:varchar(50);not null" json:"delivery_type"`
	EstimatedTotal float64   `gorm:"type:decimal(10,2);not null" json:"estimated_total"`
	Notes          string    `gorm:"type:text" json:"notes"`
	CurrentStatus  string    `gorm:"type:varchar(50);not null;index" json:"current_status"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}
