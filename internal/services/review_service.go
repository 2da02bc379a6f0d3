package services

import (
	"context"

	"github.com/google/uuid"

	"courtside/internal/models/db_models"
	"courtside/internal/models/request_models"
	"courtside/internal/models/response_models"
	"courtside/internal/repositories"
	"courtside/pkg/utils"
)

type ReviewServiceInterface interface {
	CreateReview(ctx context.Context, req request_models.CreateReviewRequest, userID uuid.UUID) (*db_models.Review, error)
	ListClubReviews(ctx context.Context, clubID uuid.UUID) ([]response_models.ReviewWithUser, error)
	AverageRating(ctx context.Context, clubID uuid.UUID) (float64, error)
	CreateComment(ctx context.Context, req request_models.CreateCommentRequest, userID uuid.UUID) (*db_models.Comment, error)
	ListClubComments(ctx context.Context, clubID uuid.UUID) ([]response_models.CommentThread, error)
}

type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	commentRepo repositories.CommentRepository
	clubRepo    repositories.ClubRepository
	userRepo    repositories.UserRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	commentRepo repositories.CommentRepository,
	clubRepo repositories.ClubRepository,
	userRepo repositories.UserRepository,
) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		commentRepo: commentRepo,
		clubRepo:    clubRepo,
		userRepo:    userRepo,
	}
}

func (s *ReviewService) CreateReview(ctx context.Context, req request_models.CreateReviewRequest, userID uuid.UUID) (*db_models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, utils.ErrInvalidRating
	}

	clubID, err := uuid.Parse(req.ClubID)
	if err != nil {
		return nil, utils.ErrClubNotFound
	}

	club, err := s.clubRepo.FindByID(ctx, clubID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if club == nil {
		return nil, utils.ErrClubNotFound
	}
	if club.OwnerID == userID {
		return nil, utils.ErrOwnClubReview
	}

	review := &db_models.Review{
		Rating:  req.Rating,
		Comment: req.Comment,
		ClubID:  clubID,
		UserID:  userID,
	}
	if err := s.reviewRepo.Insert(ctx, review); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := s.awardBadges(ctx, userID, db_models.BadgeReviewer); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *ReviewService) ListClubReviews(ctx context.Context, clubID uuid.UUID) ([]response_models.ReviewWithUser, error) {
	if err := s.requireClub(ctx, clubID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByClubWithUser(ctx, clubID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return reviews, nil
}

func (s *ReviewService) AverageRating(ctx context.Context, clubID uuid.UUID) (float64, error) {
	if err := s.requireClub(ctx, clubID); err != nil {
		return 0, err
	}

	avg, err := s.reviewRepo.AverageRating(ctx, clubID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return avg, nil
}

func (s *ReviewService) CreateComment(ctx context.Context, req request_models.CreateCommentRequest, userID uuid.UUID) (*db_models.Comment, error) {
	clubID, err := uuid.Parse(req.ClubID)
	if err != nil {
		return nil, utils.ErrClubNotFound
	}
	if err := s.requireClub(ctx, clubID); err != nil {
		return nil, err
	}

	var parentID *uuid.UUID
	if req.ParentID != nil {
		parsed, err := uuid.Parse(*req.ParentID)
		if err != nil {
			return nil, utils.ErrParentCommentNotFound
		}
		parent, err := s.commentRepo.FindByID(ctx, parsed)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if parent == nil {
			return nil, utils.ErrParentCommentNotFound
		}
		parentID = &parsed
	}

	comment := &db_models.Comment{
		Content:  req.Content,
		ClubID:   clubID,
		UserID:   userID,
		ParentID: parentID,
	}
	if err := s.commentRepo.Insert(ctx, comment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := s.awardBadges(ctx, userID, db_models.BadgeCommenter); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *ReviewService) ListClubComments(ctx context.Context, clubID uuid.UUID) ([]response_models.CommentThread, error) {
	if err := s.requireClub(ctx, clubID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByClubWithUser(ctx, clubID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	repliesByParent := make(map[uuid.UUID][]response_models.CommentWithUser)
	for _, c := range comments {
		if c.ParentID != nil {
			repliesByParent[*c.ParentID] = append(repliesByParent[*c.ParentID], c)
		}
	}

	threads := []response_models.CommentThread{}
	for _, c := range comments {
		if c.ParentID != nil {
			continue
		}
		replies := repliesByParent[c.ID]
		if replies == nil {
			replies = []response_models.CommentWithUser{}
		}
		threads = append(threads, response_models.CommentThread{
			CommentWithUser: c,
			Replies:         replies,
		})
	}

	return threads, nil
}

// awardBadges grants the earned badge and, when the user holds both
// reviewer and commenter, active_member on top.
func (s *ReviewService) awardBadges(ctx context.Context, userID uuid.UUID, badge string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	user.AddBadge(badge)
	if user.HasBadge(db_models.BadgeReviewer) && user.HasBadge(db_models.BadgeCommenter) {
		user.AddBadge(db_models.BadgeActiveMember)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ReviewService) requireClub(ctx context.Context, clubID uuid.UUID) error {
	club, err := s.clubRepo.FindByID(ctx, clubID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if club == nil {
		return utils.ErrClubNotFound
	}
	return nil
}
