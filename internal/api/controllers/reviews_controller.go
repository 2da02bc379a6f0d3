package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"courtside/internal/models/request_models"
	"courtside/internal/services"
	"courtside/pkg/middleware"
	"courtside/pkg/utils"
)

type ReviewsController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewsController(reviewService services.ReviewServiceInterface) *ReviewsController {
	return &ReviewsController{
		reviewService: reviewService,
	}
}

// CreateReview godoc
// @Summary Review a club
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.CreateReviewRequest true "Review payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /reviews [post]
func (r *ReviewsController) CreateReview(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrAuthRequired)
		return
	}

	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	review, err := r.reviewService.CreateReview(c.Request.Context(), req, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, review, "Review created successfully")
}

// ListClubReviews godoc
// @Summary List a club's reviews
// @Tags Reviews
// @Produce json
// @Param clubId path string true "Club id"
// @Success 200 {object} utils.APIResponse
// @Router /reviews/club/{clubId} [get]
func (r *ReviewsController) ListClubReviews(c *gin.Context) {
	clubID, err := r.clubID(c)
	if err != nil {
		return
	}

	reviews, err := r.reviewService.ListClubReviews(c.Request.Context(), clubID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "")
}

// ClubRating godoc
// @Summary Get a club's average rating
// @Tags Reviews
// @Produce json
// @Param clubId path string true "Club id"
// @Success 200 {object} utils.APIResponse
// @Router /reviews/club/{clubId}/rating [get]
func (r *ReviewsController) ClubRating(c *gin.Context) {
	clubID, err := r.clubID(c)
	if err != nil {
		return
	}

	rating, err := r.reviewService.AverageRating(c.Request.Context(), clubID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"club_id": clubID, "average_rating": rating}, "")
}

// CreateComment godoc
// @Summary Comment on a club
// @Description Create a comment or a reply to an existing comment
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.CreateCommentRequest true "Comment payload"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /reviews/comments [post]
func (r *ReviewsController) CreateComment(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrAuthRequired)
		return
	}

	var req request_models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	comment, err := r.reviewService.CreateComment(c.Request.Context(), req, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, comment, "Comment created successfully")
}

// ListClubComments godoc
// @Summary List a club's comments with replies
// @Tags Reviews
// @Produce json
// @Param clubId path string true "Club id"
// @Success 200 {object} utils.APIResponse
// @Router /reviews/club/{clubId}/comments [get]
func (r *ReviewsController) ListClubComments(c *gin.Context) {
	clubID, err := r.clubID(c)
	if err != nil {
		return
	}

	comments, err := r.reviewService.ListClubComments(c.Request.Context(), clubID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comments, "")
}

func (r *ReviewsController) clubID(c *gin.Context) (uuid.UUID, error) {
	clubID, err := uuid.Parse(c.Param("clubId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid club id")
		return uuid.Nil, err
	}
	return clubID, nil
}
