package main

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"courtside/cmd/fx/club_fx"
	"courtside/cmd/fx/controllers_fx"
	"courtside/cmd/fx/db_fx"
	"courtside/cmd/fx/reservation_fx"
	"courtside/cmd/fx/review_fx"
	"courtside/cmd/fx/user_fx"
	"courtside/internal/api/controllers"
	"courtside/pkg/middleware"
	"courtside/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	utils.InitLogger()
	utils.InitMetrics()

	app := fx.New(
		db_fx.Module,
		user_fx.Module,
		club_fx.Module,
		review_fx.Module,
		reservation_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				utils.Logger.Info("starting HTTP server", zap.String("port", port))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					utils.Logger.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			utils.Logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	usersController *controllers.UsersController,
	clubsController *controllers.ClubsController,
	reviewsController *controllers.ReviewsController,
	reservationsController *controllers.ReservationsController) *gin.Engine {

	r := gin.New()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())

	RegisterRoutes(r, authController, usersController, clubsController, reviewsController, reservationsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	usersController *controllers.UsersController,
	clubsController *controllers.ClubsController,
	reviewsController *controllers.ReviewsController,
	reservationsController *controllers.ReservationsController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	r.Static("/uploads", uploadDir)

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authController.Register)
	auth.POST("/login", authController.Login)
	auth.POST("/google/token-exchange", authController.GoogleTokenExchange)

	users := api.Group("/users", middleware.JWTAuthMiddleware())
	users.GET("/me", usersController.Me)
	users.PUT("/me", usersController.UpdateMe)
	users.GET("/:id", usersController.GetUser)

	clubs := api.Group("/clubs")
	clubs.GET("", clubsController.SearchClubs)
	clubs.GET("/owner/:ownerId", clubsController.ClubsByOwner)
	clubs.GET("/:id", clubsController.GetClub)
	clubs.GET("/:id/details", clubsController.GetClubDetails)
	clubs.POST("", middleware.JWTAuthMiddleware(), clubsController.CreateClub)
	clubs.GET("/my-clubs", middleware.JWTAuthMiddleware(), clubsController.MyClubs)
	clubs.PUT("/:id", middleware.JWTAuthMiddleware(), clubsController.UpdateClub)
	clubs.POST("/:id/pictures", middleware.JWTAuthMiddleware(), clubsController.AddPicture)
	clubs.DELETE("/:id/pictures", middleware.JWTAuthMiddleware(), clubsController.RemovePicture)
	clubs.POST("/:id/upload", middleware.JWTAuthMiddleware(), clubsController.UploadPicture)

	reviews := api.Group("/reviews")
	reviews.POST("", middleware.JWTAuthMiddleware(), reviewsController.CreateReview)
	reviews.POST("/comments", middleware.JWTAuthMiddleware(), reviewsController.CreateComment)
	reviews.GET("/club/:clubId", reviewsController.ListClubReviews)
	reviews.GET("/club/:clubId/rating", reviewsController.ClubRating)
	reviews.GET("/club/:clubId/comments", reviewsController.ListClubComments)

	reservations := api.Group("/reservations")
	reservations.POST("", middleware.OptionalAuthMiddleware(), reservationsController.CreateReservation)
	reservations.GET("/my-reservations", middleware.JWTAuthMiddleware(), reservationsController.MyReservations)
	reservations.GET("/club/:clubId", middleware.OptionalAuthMiddleware(), reservationsController.ClubReservations)
	reservations.GET("/available-slots/:clubId", reservationsController.AvailableSlots)
	reservations.DELETE("/:id", middleware.OptionalAuthMiddleware(), reservationsController.CancelReservation)

	// Anything outside the API is handed to the SPA shell.
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			utils.RespondError(c, http.StatusNotFound, "Not found")
			return
		}
		c.File("web/index.html")
	})
}
