package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"courtside/internal/models/db_models"
	"courtside/internal/models/request_models"
	"courtside/internal/models/response_models"
	"courtside/internal/repositories/mocks"
	"courtside/internal/services"
	"courtside/pkg/utils"
)

type reviewDeps struct {
	reviewRepo  *mocks.MockReviewRepository
	commentRepo *mocks.MockCommentRepository
	clubRepo    *mocks.MockClubRepository
	userRepo    *mocks.MockUserRepository
	service     services.ReviewServiceInterface
	ctx         context.Context
}

func newReviewDeps(t *testing.T) (*gomock.Controller, reviewDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	reviewRepo := mocks.NewMockReviewRepository(ctrl)
	commentRepo := mocks.NewMockCommentRepository(ctrl)
	clubRepo := mocks.NewMockClubRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := services.NewReviewService(reviewRepo, commentRepo, clubRepo, userRepo)

	return ctrl, reviewDeps{
		reviewRepo:  reviewRepo,
		commentRepo: commentRepo,
		clubRepo:    clubRepo,
		userRepo:    userRepo,
		service:     svc,
		ctx:         context.Background(),
	}
}

func TestCreateReview(t *testing.T) {
	userID := uuid.New()

	t.Run("review awards reviewer badge", func(t *testing.T) {
		ctrl, deps := newReviewDeps(t)
		defer ctrl.Finish()

		club := testClub(uuid.New(), 20)
		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)
		deps.reviewRepo.EXPECT().Insert(deps.ctx, gomock.Any()).Return(nil)

		user := &db_models.User{Username: "alice"}
		user.ID = userID
		deps.userRepo.EXPECT().FindByID(deps.ctx, userID).Return(user, nil)
		deps.userRepo.EXPECT().
			Update(deps.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *db_models.User) error {
				require.True(t, u.HasBadge(db_models.BadgeReviewer))
				require.False(t, u.HasBadge(db_models.BadgeActiveMember))
				return nil
			})

		review, err := deps.service.CreateReview(deps.ctx, request_models.CreateReviewRequest{
			ClubID:  club.ID.String(),
			Rating:  4,
			Comment: "Great courts",
		}, userID)

		require.NoError(t, err)
		require.Equal(t, 4.0, review.Rating)
		require.Equal(t, club.ID, review.ClubID)
	})

	t.Run("reviewer and commenter become active member", func(t *testing.T) {
		ctrl, deps := newReviewDeps(t)
		defer ctrl.Finish()

		club := testClub(uuid.New(), 20)
		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)
		deps.reviewRepo.EXPECT().Insert(deps.ctx, gomock.Any()).Return(nil)

		user := &db_models.User{Username: "alice", Badges: []string{db_models.BadgeCommenter}}
		user.ID = userID
		deps.userRepo.EXPECT().FindByID(deps.ctx, userID).Return(user, nil)
		deps.userRepo.EXPECT().
			Update(deps.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *db_models.User) error {
				require.True(t, u.HasBadge(db_models.BadgeReviewer))
				require.True(t, u.HasBadge(db_models.BadgeCommenter))
				require.True(t, u.HasBadge(db_models.BadgeActiveMember))
				return nil
			})

		_, err := deps.service.CreateReview(deps.ctx, request_models.CreateReviewRequest{
			ClubID: club.ID.String(),
			Rating: 5,
		}, userID)

		require.NoError(t, err)
	})

	t.Run("owner cannot review own club", func(t *testing.T) {
		ctrl, deps := newReviewDeps(t)
		defer ctrl.Finish()

		club := testClub(userID, 20)
		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)

		_, err := deps.service.CreateReview(deps.ctx, request_models.CreateReviewRequest{
			ClubID: club.ID.String(),
			Rating: 5,
		}, userID)

		require.ErrorIs(t, err, utils.ErrOwnClubReview)
	})

	t.Run("unknown club", func(t *testing.T) {
		ctrl, deps := newReviewDeps(t)
		defer ctrl.Finish()

		clubID := uuid.New()
		deps.clubRepo.EXPECT().FindByID(deps.ctx, clubID).Return(nil, nil)

		_, err := deps.service.CreateReview(deps.ctx, request_models.CreateReviewRequest{
			ClubID: clubID.String(),
			Rating: 3,
		}, userID)

		require.ErrorIs(t, err, utils.ErrClubNotFound)
	})

	t.Run("rating out of range", func(t *testing.T) {
		ctrl, deps := newReviewDeps(t)
		defer ctrl.Finish()

		_, err := deps.service.CreateReview(deps.ctx, request_models.CreateReviewRequest{
			ClubID: uuid.New().String(),
			Rating: 6,
		}, userID)

		require.ErrorIs(t, err, utils.ErrInvalidRating)
	})
}

func TestCreateComment(t *testing.T) {
	userID := uuid.New()

	t.Run("comment awards commenter badge", func(t *testing.T) {
		ctrl, deps := newReviewDeps(t)
		defer ctrl.Finish()

		club := testClub(uuid.New(), 20)
		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)
		deps.commentRepo.EXPECT().Insert(deps.ctx, gomock.Any()).Return(nil)

		user := &db_models.User{Username: "bob"}
		user.ID = userID
		deps.userRepo.EXPECT().FindByID(deps.ctx, userID).Return(user, nil)
		deps.userRepo.EXPECT().
			Update(deps.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *db_models.User) error {
				require.True(t, u.HasBadge(db_models.BadgeCommenter))
				return nil
			})

		comment, err := deps.service.CreateComment(deps.ctx, request_models.CreateCommentRequest{
			ClubID:  club.ID.String(),
			Content: "Anyone up for doubles?",
		}, userID)

		require.NoError(t, err)
		require.Nil(t, comment.ParentID)
	})

	t.Run("reply to existing comment", func(t *testing.T) {
		ctrl, deps := newReviewDeps(t)
		defer ctrl.Finish()

		club := testClub(uuid.New(), 20)
		parent := &db_models.Comment{ClubID: club.ID, UserID: uuid.New(), Content: "hello"}
		parent.ID = uuid.New()
		parentID := parent.ID.String()

		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)
		deps.commentRepo.EXPECT().FindByID(deps.ctx, parent.ID).Return(parent, nil)
		deps.commentRepo.EXPECT().Insert(deps.ctx, gomock.Any()).Return(nil)
		user := &db_models.User{Username: "bob"}
		user.ID = userID
		deps.userRepo.EXPECT().FindByID(deps.ctx, userID).Return(user, nil)
		deps.userRepo.EXPECT().Update(deps.ctx, gomock.Any()).Return(nil)

		comment, err := deps.service.CreateComment(deps.ctx, request_models.CreateCommentRequest{
			ClubID:   club.ID.String(),
			Content:  "count me in",
			ParentID: &parentID,
		}, userID)

		require.NoError(t, err)
		require.NotNil(t, comment.ParentID)
		require.Equal(t, parent.ID, *comment.ParentID)
	})

	t.Run("missing parent comment", func(t *testing.T) {
		ctrl, deps := newReviewDeps(t)
		defer ctrl.Finish()

		club := testClub(uuid.New(), 20)
		missing := uuid.New()
		missingID := missing.String()

		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)
		deps.commentRepo.EXPECT().FindByID(deps.ctx, missing).Return(nil, nil)

		_, err := deps.service.CreateComment(deps.ctx, request_models.CreateCommentRequest{
			ClubID:   club.ID.String(),
			Content:  "count me in",
			ParentID: &missingID,
		}, userID)

		require.ErrorIs(t, err, utils.ErrParentCommentNotFound)
	})
}

func TestListClubComments(t *testing.T) {
	t.Run("replies nest under top-level comments", func(t *testing.T) {
		ctrl, deps := newReviewDeps(t)
		defer ctrl.Finish()

		club := testClub(uuid.New(), 20)
		topID := uuid.New()
		flat := []response_models.CommentWithUser{
			{ID: topID, Content: "first", UserName: "alice"},
			{ID: uuid.New(), Content: "reply", ParentID: &topID, UserName: "bob"},
			{ID: uuid.New(), Content: "second", UserName: "carol"},
		}

		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)
		deps.commentRepo.EXPECT().ListByClubWithUser(deps.ctx, club.ID).Return(flat, nil)

		threads, err := deps.service.ListClubComments(deps.ctx, club.ID)

		require.NoError(t, err)
		require.Len(t, threads, 2)
		require.Equal(t, "first", threads[0].Content)
		require.Len(t, threads[0].Replies, 1)
		require.Equal(t, "reply", threads[0].Replies[0].Content)
		require.Empty(t, threads[1].Replies)
	})
}

func TestAverageRatingService(t *testing.T) {
	t.Run("zero when no reviews", func(t *testing.T) {
		ctrl, deps := newReviewDeps(t)
		defer ctrl.Finish()

		club := testClub(uuid.New(), 20)
		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)
		deps.reviewRepo.EXPECT().AverageRating(deps.ctx, club.ID).Return(0.0, nil)

		avg, err := deps.service.AverageRating(deps.ctx, club.ID)

		require.NoError(t, err)
		require.Equal(t, 0.0, avg)
	})
}
