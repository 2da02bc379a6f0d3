package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

type Reservation struct {
	BaseModel
	ClubID uuid.UUID  `gorm:"type:uuid;index;not null" json:"club_id"`
	UserID *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	// Wall-clock start without a timezone; see pkg/utils time helpers.
	StartTime      time.Time `gorm:"not null" json:"reservation_time"`
	Duration       float64   `gorm:"not null;default:1" json:"duration"`
	GuestName      string    `json:"guest_name,omitempty"`
	PaymentMethod  string    `gorm:"not null" json:"payment_method"`
	EstimatedPrice float64   `gorm:"not null" json:"estimated_price"`
}

func (r *Reservation) EndTime() time.Time {
	return r.StartTime.Add(time.Duration(r.Duration * float64(time.Hour)))
}

// Overlaps tests the half-open interval [start, end) against this
// reservation's window, so back-to-back bookings do not collide.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return start.Before(r.EndTime()) && end.After(r.StartTime)
}
