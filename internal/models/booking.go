package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index:idx_bookings_user_date" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`

	// YYYY-MM-DD
	ReservationDate string `gorm:"size:10;not null;index:idx_bookings_user_date;index:idx_bookings_date_slot" json:"reservation_date"`
	ReservationSlot int    `gorm:"not null;index:idx_bookings_date_slot" json:"reservation_slot"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
