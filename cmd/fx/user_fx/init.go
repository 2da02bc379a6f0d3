package user_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"courtside/internal/repositories"
	"courtside/internal/services"
)

var Module = fx.Provide(
	provideUserService, provideUserRepo)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideUserService(userRepo repositories.UserRepository) services.UserServiceInterface {
	return services.NewUserService(userRepo)
}
