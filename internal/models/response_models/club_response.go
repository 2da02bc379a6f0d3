package response_models

import (
	"courtside/internal/models/db_models"
)

// ClubDetails is the club page payload: the club itself plus review
// statistics and the owner's display name.
type ClubDetails struct {
	db_models.Club
	AverageRating float64 `json:"average_rating"`
	ReviewsCount  int64   `json:"reviews_count"`
	CommentsCount int64   `json:"comments_count"`
	OwnerName     string  `json:"owner_name"`
}
