package db_models

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseModel
	Rating  float64   `gorm:"not null" json:"rating"`
	Comment string    `json:"comment"`
	ClubID  uuid.UUID `gorm:"type:uuid;index;not null" json:"club_id"`
	UserID  uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
}
