package request_models

type CreateReviewRequest struct {
	ClubID  string  `json:"club_id" binding:"required,uuid"`
	Rating  float64 `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string  `json:"comment"`
}

type CreateCommentRequest struct {
	ClubID   string  `json:"club_id" binding:"required,uuid"`
	Content  string  `json:"content" binding:"required"`
	ParentID *string `json:"parent_id" binding:"omitempty,uuid"`
}
