package controllers_fx

import (
	"go.uber.org/fx"

	"courtside/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewUsersController),
	fx.Provide(controllers.NewClubsController),
	fx.Provide(controllers.NewReviewsController),
	fx.Provide(controllers.NewReservationsController))
