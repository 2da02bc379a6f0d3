package club_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"courtside/internal/repositories"
	"courtside/internal/services"
)

var Module = fx.Provide(
	provideClubService, provideClubRepo)

func provideClubRepo(db *gorm.DB) repositories.ClubRepository {
	return repositories.NewClubRepository(db)
}

func provideClubService(
	clubRepo repositories.ClubRepository,
	userRepo repositories.UserRepository,
	reviewRepo repositories.ReviewRepository,
	commentRepo repositories.CommentRepository,
) services.ClubServiceInterface {
	return services.NewClubService(clubRepo, userRepo, reviewRepo, commentRepo)
}
