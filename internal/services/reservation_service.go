package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"courtside/internal/models/db_models"
	"courtside/internal/models/request_models"
	"courtside/internal/models/response_models"
	"courtside/internal/repositories"
	"courtside/pkg/utils"
)

// Clubs book by the hour between these bounds; the last slot starts at
// SlotLastHour and runs to SlotCloseHour.
const (
	SlotFirstHour = 8
	SlotCloseHour = 22
)

type ReservationServiceInterface interface {
	CreateReservation(ctx context.Context, req request_models.CreateReservationRequest, userID *uuid.UUID) (*response_models.ReservationSummary, error)
	ListMyReservations(ctx context.Context, userID uuid.UUID) ([]response_models.ReservationSummary, error)
	ListClubReservations(ctx context.Context, clubID, requesterID uuid.UUID) ([]response_models.ReservationSummary, error)
	CancelReservation(ctx context.Context, reservationID uuid.UUID, requesterID *uuid.UUID) (*response_models.ReservationSummary, error)
	AvailableSlots(ctx context.Context, clubID uuid.UUID, date string) ([]response_models.TimeSlot, error)
}

type ReservationService struct {
	reservationRepo repositories.ReservationRepository
	clubRepo        repositories.ClubRepository
	userRepo        repositories.UserRepository
}

func NewReservationService(
	reservationRepo repositories.ReservationRepository,
	clubRepo repositories.ClubRepository,
	userRepo repositories.UserRepository,
) ReservationServiceInterface {
	return &ReservationService{
		reservationRepo: reservationRepo,
		clubRepo:        clubRepo,
		userRepo:        userRepo,
	}
}

func (s *ReservationService) CreateReservation(ctx context.Context, req request_models.CreateReservationRequest, userID *uuid.UUID) (*response_models.ReservationSummary, error) {
	if req.Duration <= 0 {
		return nil, utils.ErrInvalidDuration
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

	guestName := ""
	if userID == nil {
		if req.GuestName == "" {
			return nil, utils.ErrGuestNameRequired
		}
		if req.PaymentMethod != db_models.PaymentCard {
			return nil, utils.ErrGuestCardOnly
		}
		guestName = req.GuestName
	}

	start, err := utils.ParseStartTime(req.ReservationTime, req.Date)
	if err != nil {
		return nil, utils.ErrInvalidTimeFormat
	}

	reservation := &db_models.Reservation{
		ClubID:         clubID,
		UserID:         userID,
		StartTime:      start,
		Duration:       req.Duration,
		GuestName:      guestName,
		PaymentMethod:  req.PaymentMethod,
		EstimatedPrice: club.HourlyPrice * req.Duration,
	}

	if err := s.reservationRepo.InsertIfAvailable(ctx, reservation); err != nil {
		if err == utils.ErrSlotConflict || err == utils.ErrClubNotFound {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}

	summary := s.summarize(ctx, reservation, club.Name)
	return &summary, nil
}

func (s *ReservationService) ListMyReservations(ctx context.Context, userID uuid.UUID) ([]response_models.ReservationSummary, error) {
	reservations, err := s.reservationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.summarizeAll(ctx, reservations), nil
}

func (s *ReservationService) ListClubReservations(ctx context.Context, clubID, requesterID uuid.UUID) ([]response_models.ReservationSummary, error) {
	club, err := s.clubRepo.FindByID(ctx, clubID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if club == nil {
		return nil, utils.ErrClubNotFound
	}
	if club.OwnerID != requesterID {
		return nil, utils.ErrNotAllowed
	}

	reservations, err := s.reservationRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.summarizeAll(ctx, reservations), nil
}

func (s *ReservationService) CancelReservation(ctx context.Context, reservationID uuid.UUID, requesterID *uuid.UUID) (*response_models.ReservationSummary, error) {
	if requesterID == nil {
		return nil, utils.ErrAuthRequired
	}

	reservation, err := s.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if reservation == nil {
		return nil, utils.ErrReservationNotFound
	}

	club, err := s.clubRepo.FindByID(ctx, reservation.ClubID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Only the booking user or the club owner may cancel.
	allowed := reservation.UserID != nil && *reservation.UserID == *requesterID
	if !allowed && club != nil && club.OwnerID == *requesterID {
		allowed = true
	}
	if !allowed {
		return nil, utils.ErrNotAllowed
	}

	if err := s.reservationRepo.Delete(ctx, reservationID); err != nil {
		return nil, utils.ErrDatabaseError
	}

	clubName := ""
	if club != nil {
		clubName = club.Name
	}
	summary := s.summarize(ctx, reservation, clubName)
	summary.Status = response_models.ReservationCancelled
	return &summary, nil
}

func (s *ReservationService) AvailableSlots(ctx context.Context, clubID uuid.UUID, date string) ([]response_models.TimeSlot, error) {
	club, err := s.clubRepo.FindByID(ctx, clubID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if club == nil {
		return nil, utils.ErrClubNotFound
	}

	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, utils.ErrInvalidTimeFormat
	}
	today, _ := utils.DayBounds(utils.StripZone(time.Now()))
	if day.Before(today) {
		return nil, utils.ErrPastDate
	}

	reservations, err := s.reservationRepo.ListByClubOnDay(ctx, clubID, day)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Each reservation blocks out whole hours from its start for its
	// integral duration.
	reserved := make(map[int]bool)
	for i := range reservations {
		startHour := reservations[i].StartTime.Hour()
		for h := 0; h < int(reservations[i].Duration); h++ {
			reserved[startHour+h] = true
		}
	}

	slots := make([]response_models.TimeSlot, 0, SlotCloseHour-SlotFirstHour)
	for hour := SlotFirstHour; hour < SlotCloseHour; hour++ {
		slots = append(slots, response_models.TimeSlot{
			StartTime:   fmt.Sprintf("%02d:00", hour),
			EndTime:     fmt.Sprintf("%02d:00", hour+1),
			IsAvailable: !reserved[hour],
			Date:        date,
		})
	}
	return slots, nil
}

func (s *ReservationService) summarize(ctx context.Context, reservation *db_models.Reservation, clubName string) response_models.ReservationSummary {
	status := response_models.ReservationConfirmed
	if reservation.EndTime().Before(utils.StripZone(time.Now())) {
		status = response_models.ReservationCompleted
	}

	userName := reservation.GuestName
	if reservation.UserID != nil {
		if user, err := s.userRepo.FindByID(ctx, *reservation.UserID); err == nil && user != nil {
			userName = user.Username
		}
	}

	return response_models.ReservationSummary{
		ID:              reservation.ID,
		ClubID:          reservation.ClubID,
		ClubName:        clubName,
		Date:            reservation.StartTime.Format(utils.DateLayout),
		StartTime:       reservation.StartTime.Format(utils.HourLayout),
		EndTime:         reservation.EndTime().Format(utils.HourLayout),
		Duration:        reservation.Duration,
		Status:          status,
		EstimatedPrice:  reservation.EstimatedPrice,
		PaymentMethod:   reservation.PaymentMethod,
		ReservationTime: reservation.StartTime,
		CreatedAt:       reservation.CreatedAt,
		UserID:          reservation.UserID,
		UserName:        userName,
		GuestName:       reservation.GuestName,
	}
}

func (s *ReservationService) summarizeAll(ctx context.Context, reservations []db_models.Reservation) []response_models.ReservationSummary {
	clubNames := make(map[uuid.UUID]string)
	summaries := make([]response_models.ReservationSummary, 0, len(reservations))
	for i := range reservations {
		name, ok := clubNames[reservations[i].ClubID]
		if !ok {
			if club, err := s.clubRepo.FindByID(ctx, reservations[i].ClubID); err == nil && club != nil {
				name = club.Name
			}
			clubNames[reservations[i].ClubID] = name
		}
		summaries = append(summaries, s.summarize(ctx, &reservations[i], name))
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].ReservationTime.Before(summaries[j].ReservationTime)
	})
	return summaries
}
