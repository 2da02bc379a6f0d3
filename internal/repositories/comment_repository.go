package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courtside/internal/models/db_models"
	"courtside/internal/models/response_models"
)

type CommentRepository interface {
	Insert(ctx context.Context, comment *db_models.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Comment, error)
	ListByClubWithUser(ctx context.Context, clubID uuid.UUID) ([]response_models.CommentWithUser, error)
	CountByClub(ctx context.Context, clubID uuid.UUID) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Insert(ctx context.Context, comment *db_models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Comment, error) {
	var comment db_models.Comment
	err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByClubWithUser(ctx context.Context, clubID uuid.UUID) ([]response_models.CommentWithUser, error) {
	var comments []response_models.CommentWithUser
	err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.content, comments.club_id, comments.user_id, comments.parent_id, comments.created_at, users.username AS user_name, users.role AS user_role").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.club_id = ? AND comments.deleted_at IS NULL", clubID).
		Order("comments.created_at").
		Scan(&comments).Error
	return comments, err
}

func (r *commentRepository) CountByClub(ctx context.Context, clubID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Comment{}).
		Where("club_id = ?", clubID).
		Count(&count).Error
	return count, err
}
