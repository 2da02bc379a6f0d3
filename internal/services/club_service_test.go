package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"courtside/internal/models/db_models"
	"courtside/internal/models/request_models"
	"courtside/internal/repositories/mocks"
	"courtside/internal/services"
	"courtside/pkg/utils"
)

type clubDeps struct {
	clubRepo    *mocks.MockClubRepository
	userRepo    *mocks.MockUserRepository
	reviewRepo  *mocks.MockReviewRepository
	commentRepo *mocks.MockCommentRepository
	service     services.ClubServiceInterface
	ctx         context.Context
}

func newClubDeps(t *testing.T) (*gomock.Controller, clubDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	clubRepo := mocks.NewMockClubRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)
	reviewRepo := mocks.NewMockReviewRepository(ctrl)
	commentRepo := mocks.NewMockCommentRepository(ctrl)
	svc := services.NewClubService(clubRepo, userRepo, reviewRepo, commentRepo)

	return ctrl, clubDeps{
		clubRepo:    clubRepo,
		userRepo:    userRepo,
		reviewRepo:  reviewRepo,
		commentRepo: commentRepo,
		service:     svc,
		ctx:         context.Background(),
	}
}

func TestCreateClub(t *testing.T) {
	t.Run("promotes a student to club owner", func(t *testing.T) {
		ctrl, deps := newClubDeps(t)
		defer ctrl.Finish()

		owner := &db_models.User{Username: "alice", Role: db_models.RoleStudent}
		owner.ID = uuid.New()

		deps.userRepo.EXPECT().FindByID(deps.ctx, owner.ID).Return(owner, nil)
		deps.userRepo.EXPECT().
			Update(deps.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *db_models.User) error {
				require.True(t, u.IsClubOwner)
				require.Equal(t, db_models.RoleClubOwner, u.Role)
				return nil
			})
		deps.clubRepo.EXPECT().Insert(deps.ctx, gomock.Any()).Return(nil)

		club, err := deps.service.CreateClub(deps.ctx, request_models.CreateClubRequest{
			Name:        "Ace Tennis Club",
			Town:        "Springfield",
			Telephone:   "555-0101",
			HourlyPrice: 25,
		}, owner.ID)

		require.NoError(t, err)
		require.Equal(t, owner.ID, club.OwnerID)
		require.NotNil(t, club.Pictures)
	})

	t.Run("existing owner is not updated again", func(t *testing.T) {
		ctrl, deps := newClubDeps(t)
		defer ctrl.Finish()

		owner := &db_models.User{Username: "alice", Role: db_models.RoleClubOwner, IsClubOwner: true}
		owner.ID = uuid.New()

		deps.userRepo.EXPECT().FindByID(deps.ctx, owner.ID).Return(owner, nil)
		deps.clubRepo.EXPECT().Insert(deps.ctx, gomock.Any()).Return(nil)

		_, err := deps.service.CreateClub(deps.ctx, request_models.CreateClubRequest{
			Name:        "Second Club",
			Town:        "Springfield",
			Telephone:   "555-0102",
			HourlyPrice: 30,
		}, owner.ID)

		require.NoError(t, err)
	})
}

func TestUpdateClub(t *testing.T) {
	t.Run("only the owner may update", func(t *testing.T) {
		ctrl, deps := newClubDeps(t)
		defer ctrl.Finish()

		club := testClub(uuid.New(), 20)
		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)

		name := "Renamed"
		_, err := deps.service.UpdateClub(deps.ctx, club.ID, request_models.UpdateClubRequest{Name: &name}, uuid.New())

		require.ErrorIs(t, err, utils.ErrNotClubOwner)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		ctrl, deps := newClubDeps(t)
		defer ctrl.Finish()

		ownerID := uuid.New()
		club := testClub(ownerID, 20)
		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)
		deps.clubRepo.EXPECT().Update(deps.ctx, gomock.Any()).Return(nil)

		price := 35.0
		updated, err := deps.service.UpdateClub(deps.ctx, club.ID, request_models.UpdateClubRequest{HourlyPrice: &price}, ownerID)

		require.NoError(t, err)
		require.Equal(t, 35.0, updated.HourlyPrice)
		require.Equal(t, "Ace Tennis Club", updated.Name)
	})
}

func TestClubPictures(t *testing.T) {
	ownerID := uuid.New()

	t.Run("add and remove", func(t *testing.T) {
		ctrl, deps := newClubDeps(t)
		defer ctrl.Finish()

		club := testClub(ownerID, 20)
		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil).Times(2)
		deps.clubRepo.EXPECT().Update(deps.ctx, gomock.Any()).Return(nil).Times(2)

		updated, err := deps.service.AddPicture(deps.ctx, club.ID, "/uploads/court.jpg", ownerID)
		require.NoError(t, err)
		require.Contains(t, updated.Pictures, "/uploads/court.jpg")

		updated, err = deps.service.RemovePicture(deps.ctx, club.ID, "/uploads/court.jpg", ownerID)
		require.NoError(t, err)
		require.NotContains(t, updated.Pictures, "/uploads/court.jpg")
	})

	t.Run("removing an unknown picture", func(t *testing.T) {
		ctrl, deps := newClubDeps(t)
		defer ctrl.Finish()

		club := testClub(ownerID, 20)
		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)

		_, err := deps.service.RemovePicture(deps.ctx, club.ID, "/uploads/missing.jpg", ownerID)

		require.ErrorIs(t, err, utils.ErrPictureNotFound)
	})
}

func TestGetClubDetails(t *testing.T) {
	t.Run("aggregates rating and counts, then caches", func(t *testing.T) {
		ctrl, deps := newClubDeps(t)
		defer ctrl.Finish()

		owner := &db_models.User{Username: "alice"}
		owner.ID = uuid.New()
		club := testClub(owner.ID, 20)

		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil).Times(1)
		deps.reviewRepo.EXPECT().AverageRating(deps.ctx, club.ID).Return(4.5, nil).Times(1)
		deps.reviewRepo.EXPECT().CountByClub(deps.ctx, club.ID).Return(int64(2), nil).Times(1)
		deps.commentRepo.EXPECT().CountByClub(deps.ctx, club.ID).Return(int64(3), nil).Times(1)
		deps.userRepo.EXPECT().FindByID(deps.ctx, owner.ID).Return(owner, nil).Times(1)

		details, err := deps.service.GetClubDetails(deps.ctx, club.ID)
		require.NoError(t, err)
		require.Equal(t, 4.5, details.AverageRating)
		require.Equal(t, int64(2), details.ReviewsCount)
		require.Equal(t, int64(3), details.CommentsCount)
		require.Equal(t, "alice", details.OwnerName)

		// Second call is served from the cache; the Times(1) expectations
		// above fail if the repos are hit again.
		cached, err := deps.service.GetClubDetails(deps.ctx, club.ID)
		require.NoError(t, err)
		require.Equal(t, details, cached)
	})
}
