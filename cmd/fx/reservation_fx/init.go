package reservation_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"courtside/internal/repositories"
	"courtside/internal/services"
)

var Module = fx.Provide(
	provideReservationService, provideReservationRepo)

func provideReservationRepo(db *gorm.DB) repositories.ReservationRepository {
	return repositories.NewReservationRepository(db)
}

func provideReservationService(
	reservationRepo repositories.ReservationRepository,
	clubRepo repositories.ClubRepository,
	userRepo repositories.UserRepository,
) services.ReservationServiceInterface {
	return services.NewReservationService(reservationRepo, clubRepo, userRepo)
}
