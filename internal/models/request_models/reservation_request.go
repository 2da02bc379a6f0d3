package request_models

type CreateReservationRequest struct {
	ClubID string `json:"club_id" binding:"required,uuid"`
	// Either a full RFC 3339 timestamp or an "HH:MM" string combined
	// with Date.
	ReservationTime string  `json:"reservation_time" binding:"required"`
	Date            string  `json:"date"`
	Duration        float64 `json:"duration" binding:"required,gt=0"`
	PaymentMethod   string  `json:"payment_method" binding:"required,oneof=cash card"`
	GuestName       string  `json:"guest_name"`
}
