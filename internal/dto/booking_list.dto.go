package dto

import "time"

type BookingDTO struct {
	ID              uint      `json:"id"`
	User            string    `json:"user"`
	FirstName       string    `json:"first_name"`
	ReservationDate string    `json:"reservation_date"`
	ReservationSlot int       `json:"reservation_slot"`
	CreatedAt       time.Time `json:"created_at"`
}
