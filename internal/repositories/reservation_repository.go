package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"courtside/internal/models/db_models"
	"courtside/pkg/utils"
)

type ReservationRepository interface {
	// InsertIfAvailable persists the reservation unless it overlaps an
	// existing one for the same club; returns utils.ErrSlotConflict on
	// overlap.
	InsertIfAvailable(ctx context.Context, reservation *db_models.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Reservation, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Reservation, error)
	ListByClub(ctx context.Context, clubID uuid.UUID) ([]db_models.Reservation, error)
	ListByClubOnDay(ctx context.Context, clubID uuid.UUID, day time.Time) ([]db_models.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) InsertIfAvailable(ctx context.Context, reservation *db_models.Reservation) error {
	start := reservation.StartTime
	end := reservation.EndTime()
	dayStart, dayEnd := utils.DayBounds(start)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the club row so concurrent bookings for the same club
		// serialize on the overlap check instead of racing it.
		var club db_models.Club
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&club, "id = ?", reservation.ClubID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrClubNotFound
			}
			return err
		}

		var existing []db_models.Reservation
		if err := tx.
			Where("club_id = ? AND start_time >= ? AND start_time < ?",
				reservation.ClubID, dayStart, dayEnd).
			Find(&existing).Error; err != nil {
			return err
		}

		for i := range existing {
			if existing[i].Overlaps(start, end) {
				return utils.ErrSlotConflict
			}
		}

		return tx.Create(reservation).Error
	})
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Reservation, error) {
	var reservation db_models.Reservation
	err := r.db.WithContext(ctx).First(&reservation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Reservation, error) {
	var reservations []db_models.Reservation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time").
		Find(&reservations).Error
	return reservations, err
}

func (r *reservationRepository) ListByClub(ctx context.Context, clubID uuid.UUID) ([]db_models.Reservation, error) {
	var reservations []db_models.Reservation
	err := r.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("start_time").
		Find(&reservations).Error
	return reservations, err
}

func (r *reservationRepository) ListByClubOnDay(ctx context.Context, clubID uuid.UUID, day time.Time) ([]db_models.Reservation, error) {
	dayStart, dayEnd := utils.DayBounds(day)

	var reservations []db_models.Reservation
	err := r.db.WithContext(ctx).
		Where("club_id = ? AND start_time >= ? AND start_time < ?", clubID, dayStart, dayEnd).
		Order("start_time").
		Find(&reservations).Error
	return reservations, err
}

func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Delete(&db_models.Reservation{}, "id = ?", id).Error
}
