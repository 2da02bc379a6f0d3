package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courtside/internal/models/db_models"
	"courtside/internal/models/response_models"
)

type ReviewRepository interface {
	Insert(ctx context.Context, review *db_models.Review) error
	ListByClubWithUser(ctx context.Context, clubID uuid.UUID) ([]response_models.ReviewWithUser, error)
	AverageRating(ctx context.Context, clubID uuid.UUID) (float64, error)
	CountByClub(ctx context.Context, clubID uuid.UUID) (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Insert(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) ListByClubWithUser(ctx context.Context, clubID uuid.UUID) ([]response_models.ReviewWithUser, error) {
	var reviews []response_models.ReviewWithUser
	err := r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.id, reviews.rating, reviews.comment, reviews.club_id, reviews.user_id, reviews.created_at, users.username AS user_name, users.role AS user_role").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.club_id = ? AND reviews.deleted_at IS NULL", clubID).
		Scan(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) AverageRating(ctx context.Context, clubID uuid.UUID) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Where("club_id = ?", clubID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

func (r *reviewRepository) CountByClub(ctx context.Context, clubID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Where("club_id = ?", clubID).
		Count(&count).Error
	return count, err
}
