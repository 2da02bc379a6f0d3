package response_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReservationConfirmed = "confirmed"
	ReservationCompleted = "completed"
	ReservationCancelled = "cancelled"
)

// ReservationSummary is the listing/cancellation shape: formatted date
// and HH:MM bounds next to the raw reservation fields.
type ReservationSummary struct {
	ID              uuid.UUID  `json:"id"`
	ClubID          uuid.UUID  `json:"club_id"`
	ClubName        string     `json:"club_name"`
	Date            string     `json:"date"`
	StartTime       string     `json:"start_time"`
	EndTime         string     `json:"end_time"`
	Duration        float64    `json:"duration"`
	Status          string     `json:"status"`
	EstimatedPrice  float64    `json:"estimated_price"`
	PaymentMethod   string     `json:"payment_method"`
	ReservationTime time.Time  `json:"reservation_time"`
	CreatedAt       time.Time  `json:"created_at"`
	UserID          *uuid.UUID `json:"user_id,omitempty"`
	UserName        string     `json:"user_name"`
	GuestName       string     `json:"guest_name,omitempty"`
}

type TimeSlot struct {
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
	Date        string `json:"date"`
}
