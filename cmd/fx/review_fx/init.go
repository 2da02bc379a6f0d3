package review_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"courtside/internal/repositories"
	"courtside/internal/services"
)

var Module = fx.Provide(
	provideReviewService, provideReviewRepo, provideCommentRepo)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideCommentRepo(db *gorm.DB) repositories.CommentRepository {
	return repositories.NewCommentRepository(db)
}

func provideReviewService(
	reviewRepo repositories.ReviewRepository,
	commentRepo repositories.CommentRepository,
	clubRepo repositories.ClubRepository,
	userRepo repositories.UserRepository,
) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, commentRepo, clubRepo, userRepo)
}
