package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

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

type reservationDeps struct {
	reservationRepo *mocks.MockReservationRepository
	clubRepo        *mocks.MockClubRepository
	userRepo        *mocks.MockUserRepository
	service         services.ReservationServiceInterface
	ctx             context.Context
}

func newReservationDeps(t *testing.T) (*gomock.Controller, reservationDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	reservationRepo := mocks.NewMockReservationRepository(ctrl)
	clubRepo := mocks.NewMockClubRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := services.NewReservationService(reservationRepo, clubRepo, userRepo)

	return ctrl, reservationDeps{
		reservationRepo: reservationRepo,
		clubRepo:        clubRepo,
		userRepo:        userRepo,
		service:         svc,
		ctx:             context.Background(),
	}
}

func testClub(ownerID uuid.UUID, hourlyPrice float64) *db_models.Club {
	club := &db_models.Club{
		Name:        "Ace Tennis Club",
		Town:        "Springfield",
		HourlyPrice: hourlyPrice,
		OwnerID:     ownerID,
	}
	club.ID = uuid.New()
	return club
}

func TestCreateReservation(t *testing.T) {
	userID := uuid.New()
	tomorrow := time.Now().UTC().Add(24 * time.Hour).Format(utils.DateLayout)

	t.Run("price is hourly price times duration", func(t *testing.T) {
		ctrl, deps := newReservationDeps(t)
		defer ctrl.Finish()

		club := testClub(uuid.New(), 20)
		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)
		deps.reservationRepo.EXPECT().
			InsertIfAvailable(deps.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r *db_models.Reservation) error {
				require.Equal(t, 40.0, r.EstimatedPrice)
				require.Equal(t, 14, r.StartTime.Hour())
				return nil
			})
		user := &db_models.User{Username: "alice"}
		user.ID = userID
		deps.userRepo.EXPECT().FindByID(deps.ctx, userID).Return(user, nil)

		summary, err := deps.service.CreateReservation(deps.ctx, request_models.CreateReservationRequest{
			ClubID:          club.ID.String(),
			ReservationTime: "14:00",
			Date:            tomorrow,
			Duration:        2,
			PaymentMethod:   db_models.PaymentCash,
		}, &userID)

		require.NoError(t, err)
		require.Equal(t, 40.0, summary.EstimatedPrice)
		require.Equal(t, "14:00", summary.StartTime)
		require.Equal(t, "16:00", summary.EndTime)
		require.Equal(t, "alice", summary.UserName)
	})

	t.Run("guest without name is rejected", func(t *testing.T) {
		ctrl, deps := newReservationDeps(t)
		defer ctrl.Finish()

		club := testClub(uuid.New(), 20)
		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)

		_, err := deps.service.CreateReservation(deps.ctx, request_models.CreateReservationRequest{
			ClubID:          club.ID.String(),
			ReservationTime: "14:00",
			Date:            tomorrow,
			Duration:        1,
			PaymentMethod:   db_models.PaymentCard,
		}, nil)

		require.ErrorIs(t, err, utils.ErrGuestNameRequired)
	})

	t.Run("guest paying cash is rejected", func(t *testing.T) {
		ctrl, deps := newReservationDeps(t)
		defer ctrl.Finish()

		club := testClub(uuid.New(), 20)
		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)

		_, err := deps.service.CreateReservation(deps.ctx, request_models.CreateReservationRequest{
			ClubID:          club.ID.String(),
			ReservationTime: "14:00",
			Date:            tomorrow,
			Duration:        1,
			PaymentMethod:   db_models.PaymentCash,
			GuestName:       "Walk-in Guest",
		}, nil)

		require.ErrorIs(t, err, utils.ErrGuestCardOnly)
	})

	t.Run("guest with name and card succeeds", func(t *testing.T) {
		ctrl, deps := newReservationDeps(t)
		defer ctrl.Finish()

		club := testClub(uuid.New(), 15)
		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)
		deps.reservationRepo.EXPECT().InsertIfAvailable(deps.ctx, gomock.Any()).Return(nil)

		summary, err := deps.service.CreateReservation(deps.ctx, request_models.CreateReservationRequest{
			ClubID:          club.ID.String(),
			ReservationTime: "09:00",
			Date:            tomorrow,
			Duration:        1,
			PaymentMethod:   db_models.PaymentCard,
			GuestName:       "Walk-in Guest",
		}, nil)

		require.NoError(t, err)
		require.Equal(t, "Walk-in Guest", summary.GuestName)
		require.Equal(t, "Walk-in Guest", summary.UserName)
		require.Nil(t, summary.UserID)
	})

	t.Run("slot conflict surfaces as conflict error", func(t *testing.T) {
		ctrl, deps := newReservationDeps(t)
		defer ctrl.Finish()

		club := testClub(uuid.New(), 20)
		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)
		deps.reservationRepo.EXPECT().InsertIfAvailable(deps.ctx, gomock.Any()).Return(utils.ErrSlotConflict)

		_, err := deps.service.CreateReservation(deps.ctx, request_models.CreateReservationRequest{
			ClubID:          club.ID.String(),
			ReservationTime: "15:00",
			Date:            tomorrow,
			Duration:        1,
			PaymentMethod:   db_models.PaymentCash,
		}, &userID)

		require.ErrorIs(t, err, utils.ErrSlotConflict)
	})

	t.Run("unknown club", func(t *testing.T) {
		ctrl, deps := newReservationDeps(t)
		defer ctrl.Finish()

		clubID := uuid.New()
		deps.clubRepo.EXPECT().FindByID(deps.ctx, clubID).Return(nil, nil)

		_, err := deps.service.CreateReservation(deps.ctx, request_models.CreateReservationRequest{
			ClubID:          clubID.String(),
			ReservationTime: "15:00",
			Duration:        1,
			PaymentMethod:   db_models.PaymentCash,
		}, &userID)

		require.ErrorIs(t, err, utils.ErrClubNotFound)
	})

	t.Run("zero duration", func(t *testing.T) {
		ctrl, deps := newReservationDeps(t)
		defer ctrl.Finish()

		_, err := deps.service.CreateReservation(deps.ctx, request_models.CreateReservationRequest{
			ClubID:          uuid.New().String(),
			ReservationTime: "15:00",
			Duration:        0,
			PaymentMethod:   db_models.PaymentCash,
		}, &userID)

		require.ErrorIs(t, err, utils.ErrInvalidDuration)
	})
}

func TestCancelReservation(t *testing.T) {
	bookerID := uuid.New()
	ownerID := uuid.New()

	newBooking := func(club *db_models.Club) *db_models.Reservation {
		r := &db_models.Reservation{
			ClubID:         club.ID,
			UserID:         &bookerID,
			StartTime:      time.Now().UTC().Add(48 * time.Hour),
			Duration:       1,
			PaymentMethod:  db_models.PaymentCash,
			EstimatedPrice: 20,
		}
		r.ID = uuid.New()
		return r
	}

	t.Run("booker can cancel", func(t *testing.T) {
		ctrl, deps := newReservationDeps(t)
		defer ctrl.Finish()

		club := testClub(ownerID, 20)
		booking := newBooking(club)
		deps.reservationRepo.EXPECT().FindByID(deps.ctx, booking.ID).Return(booking, nil)
		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)
		deps.reservationRepo.EXPECT().Delete(deps.ctx, booking.ID).Return(nil)
		user := &db_models.User{Username: "alice"}
		user.ID = bookerID
		deps.userRepo.EXPECT().FindByID(deps.ctx, bookerID).Return(user, nil)

		summary, err := deps.service.CancelReservation(deps.ctx, booking.ID, &bookerID)

		require.NoError(t, err)
		require.Equal(t, response_models.ReservationCancelled, summary.Status)
	})

	t.Run("club owner can cancel", func(t *testing.T) {
		ctrl, deps := newReservationDeps(t)
		defer ctrl.Finish()

		club := testClub(ownerID, 20)
		booking := newBooking(club)
		deps.reservationRepo.EXPECT().FindByID(deps.ctx, booking.ID).Return(booking, nil)
		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)
		deps.reservationRepo.EXPECT().Delete(deps.ctx, booking.ID).Return(nil)
		user := &db_models.User{Username: "alice"}
		user.ID = bookerID
		deps.userRepo.EXPECT().FindByID(deps.ctx, bookerID).Return(user, nil)

		summary, err := deps.service.CancelReservation(deps.ctx, booking.ID, &ownerID)

		require.NoError(t, err)
		require.Equal(t, response_models.ReservationCancelled, summary.Status)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		ctrl, deps := newReservationDeps(t)
		defer ctrl.Finish()

		club := testClub(ownerID, 20)
		booking := newBooking(club)
		strangerID := uuid.New()
		deps.reservationRepo.EXPECT().FindByID(deps.ctx, booking.ID).Return(booking, nil)
		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)

		_, err := deps.service.CancelReservation(deps.ctx, booking.ID, &strangerID)

		require.ErrorIs(t, err, utils.ErrNotAllowed)
	})

	t.Run("guest cannot cancel", func(t *testing.T) {
		ctrl, deps := newReservationDeps(t)
		defer ctrl.Finish()

		_, err := deps.service.CancelReservation(deps.ctx, uuid.New(), nil)

		require.ErrorIs(t, err, utils.ErrAuthRequired)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		ctrl, deps := newReservationDeps(t)
		defer ctrl.Finish()

		id := uuid.New()
		deps.reservationRepo.EXPECT().FindByID(deps.ctx, id).Return(nil, nil)

		_, err := deps.service.CancelReservation(deps.ctx, id, &bookerID)

		require.ErrorIs(t, err, utils.ErrReservationNotFound)
	})
}

func TestListClubReservations(t *testing.T) {
	ownerID := uuid.New()

	t.Run("only the owner may list", func(t *testing.T) {
		ctrl, deps := newReservationDeps(t)
		defer ctrl.Finish()

		club := testClub(ownerID, 20)
		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)

		_, err := deps.service.ListClubReservations(deps.ctx, club.ID, uuid.New())

		require.ErrorIs(t, err, utils.ErrNotAllowed)
	})

	t.Run("owner sees bookings sorted by start", func(t *testing.T) {
		ctrl, deps := newReservationDeps(t)
		defer ctrl.Finish()

		club := testClub(ownerID, 20)
		later := db_models.Reservation{ClubID: club.ID, StartTime: time.Now().UTC().Add(72 * time.Hour), Duration: 1, GuestName: "guest"}
		sooner := db_models.Reservation{ClubID: club.ID, StartTime: time.Now().UTC().Add(24 * time.Hour), Duration: 1, GuestName: "guest"}

		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil).AnyTimes()
		deps.reservationRepo.EXPECT().ListByClub(deps.ctx, club.ID).Return([]db_models.Reservation{later, sooner}, nil)

		summaries, err := deps.service.ListClubReservations(deps.ctx, club.ID, ownerID)

		require.NoError(t, err)
		require.Len(t, summaries, 2)
		require.True(t, summaries[0].ReservationTime.Before(summaries[1].ReservationTime))
	})
}

func TestAvailableSlots(t *testing.T) {
	t.Run("booked hours are unavailable", func(t *testing.T) {
		ctrl, deps := newReservationDeps(t)
		defer ctrl.Finish()

		club := testClub(uuid.New(), 20)
		day := time.Now().UTC().Add(24 * time.Hour)
		date := day.Format(utils.DateLayout)
		booking := db_models.Reservation{
			ClubID:    club.ID,
			StartTime: time.Date(day.Year(), day.Month(), day.Day(), 10, 0, 0, 0, time.UTC),
			Duration:  2,
		}

		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)
		deps.reservationRepo.EXPECT().ListByClubOnDay(deps.ctx, club.ID, gomock.Any()).Return([]db_models.Reservation{booking}, nil)

		slots, err := deps.service.AvailableSlots(deps.ctx, club.ID, date)

		require.NoError(t, err)
		require.Len(t, slots, 14)

		byStart := make(map[string]response_models.TimeSlot, len(slots))
		for _, s := range slots {
			byStart[s.StartTime] = s
		}
		require.False(t, byStart["10:00"].IsAvailable)
		require.False(t, byStart["11:00"].IsAvailable)
		for _, h := range []int{8, 9, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21} {
			require.True(t, byStart[fmt.Sprintf("%02d:00", h)].IsAvailable, "hour %d should be free", h)
		}
	})

	t.Run("past date", func(t *testing.T) {
		ctrl, deps := newReservationDeps(t)
		defer ctrl.Finish()

		club := testClub(uuid.New(), 20)
		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)

		yesterday := time.Now().UTC().Add(-24 * time.Hour).Format(utils.DateLayout)
		_, err := deps.service.AvailableSlots(deps.ctx, club.ID, yesterday)

		require.ErrorIs(t, err, utils.ErrPastDate)
	})

	t.Run("bad date format", func(t *testing.T) {
		ctrl, deps := newReservationDeps(t)
		defer ctrl.Finish()

		club := testClub(uuid.New(), 20)
		deps.clubRepo.EXPECT().FindByID(deps.ctx, club.ID).Return(club, nil)

		_, err := deps.service.AvailableSlots(deps.ctx, club.ID, "10-09-2026")

		require.ErrorIs(t, err, utils.ErrInvalidTimeFormat)
	})
}
