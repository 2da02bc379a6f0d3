package db_models

import (
	"github.com/google/uuid"
)

// Comment threads are two levels deep: top-level comments and flat
// replies referencing them through ParentID.
type Comment struct {
	BaseModel
	Content  string     `gorm:"not null" json:"content"`
	ClubID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"club_id"`
	UserID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	ParentID *uuid.UUID `gorm:"type:uuid;index" json:"parent_id"`
}
