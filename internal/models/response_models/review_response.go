package response_models

import (
	"time"

	"github.com/google/uuid"
)

type ReviewWithUser struct {
	ID        uuid.UUID `json:"id"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	ClubID    uuid.UUID `json:"club_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UserName  string    `json:"user_name"`
	UserRole  string    `json:"user_role"`
}

type CommentWithUser struct {
	ID        uuid.UUID  `json:"id"`
	Content   string     `json:"content"`
	ClubID    uuid.UUID  `json:"club_id"`
	UserID    uuid.UUID  `json:"user_id"`
	ParentID  *uuid.UUID `json:"parent_id"`
	CreatedAt time.Time  `json:"created_at"`
	UserName  string     `json:"user_name"`
	UserRole  string     `json:"user_role"`
}

type CommentThread struct {
	CommentWithUser
	Replies []CommentWithUser `json:"replies"`
}
