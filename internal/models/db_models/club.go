package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Club struct {
	BaseModel
	Name        string            `gorm:"index;not null" json:"name"`
	Town        string            `gorm:"not null" json:"town"`
	Telephone   string            `gorm:"not null" json:"telephone"`
	HourlyPrice float64           `gorm:"not null" json:"hourly_price"`
	Description string            `json:"description"`
	Address     string            `json:"address"`
	Website     string            `json:"website"`
	SocialMedia map[string]string `gorm:"serializer:json" json:"social_media"`
	Pictures    pq.StringArray    `gorm:"type:text[]" json:"pictures"`
	OwnerID     uuid.UUID         `gorm:"type:uuid;index;not null" json:"owner_id"`

	Reviews      []Review      `gorm:"foreignKey:ClubID" json:"-"`
	Comments     []Comment     `gorm:"foreignKey:ClubID" json:"-"`
	Reservations []Reservation `gorm:"foreignKey:ClubID" json:"-"`
}

func (c *Club) AddPicture(pictureURL string) {
	c.Pictures = append(c.Pictures, pictureURL)
}

// RemovePicture reports whether the URL was present.
func (c *Club) RemovePicture(pictureURL string) bool {
	for i, p := range c.Pictures {
		if p == pictureURL {
			c.Pictures = append(c.Pictures[:i], c.Pictures[i+1:]...)
			return true
		}
	}
	return false
}
