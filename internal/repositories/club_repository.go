package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courtside/internal/models/db_models"
	"courtside/internal/models/request_models"
)

type ClubRepository interface {
	Insert(ctx context.Context, club *db_models.Club) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Club, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.Club, error)
	Search(ctx context.Context, filter request_models.ClubSearchFilter) ([]db_models.Club, error)
	Update(ctx context.Context, club *db_models.Club) error
}

type clubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) Insert(ctx context.Context, club *db_models.Club) error {
	return r.db.WithContext(ctx).Create(club).Error
}

func (r *clubRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Club, error) {
	var club db_models.Club
	err := r.db.WithContext(ctx).First(&club, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &club, nil
}

func (r *clubRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.Club, error) {
	var clubs []db_models.Club
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Find(&clubs).Error
	return clubs, err
}

func (r *clubRepository) Search(ctx context.Context, filter request_models.ClubSearchFilter) ([]db_models.Club, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Club{})

	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Town != "" {
		query = query.Where("town ILIKE ?", "%"+filter.Town+"%")
	}
	if filter.MinPrice != nil {
		query = query.Where("hourly_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("hourly_price <= ?", *filter.MaxPrice)
	}

	var clubs []db_models.Club
	err := query.Find(&clubs).Error
	return clubs, err
}

func (r *clubRepository) Update(ctx context.Context, club *db_models.Club) error {
	return r.db.WithContext(ctx).Save(club).Error
}
