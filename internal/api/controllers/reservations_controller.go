package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"courtside/internal/models/request_models"
	"courtside/internal/services"
	"courtside/pkg/middleware"
	"courtside/pkg/utils"
)

type ReservationsController struct {
	reservationService services.ReservationServiceInterface
}

func NewReservationsController(reservationService services.ReservationServiceInterface) *ReservationsController {
	return &ReservationsController{
		reservationService: reservationService,
	}
}

// CreateReservation godoc
// @Summary Book a time slot at a club
// @Description Book a slot as a logged-in user or as a guest paying by card
// @Tags Reservations
// @Accept json
// @Produce json
// @Param request body request_models.CreateReservationRequest true "Reservation payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /reservations [post]
func (r *ReservationsController) CreateReservation(c *gin.Context) {
	var req request_models.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.CurrentUserID(c); ok {
		userID = &id
	}

	summary, err := r.reservationService.CreateReservation(c.Request.Context(), req, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, summary, "Reservation confirmed")
}

// MyReservations godoc
// @Summary List the authenticated user's reservations
// @Tags Reservations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /reservations/my-reservations [get]
func (r *ReservationsController) MyReservations(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrAuthRequired)
		return
	}

	summaries, err := r.reservationService.ListMyReservations(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summaries, "")
}

// ClubReservations godoc
// @Summary List a club's reservations
// @Description Only the club owner may list a club's reservations
// @Tags Reservations
// @Produce json
// @Param clubId path string true "Club id"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /reservations/club/{clubId} [get]
func (r *ReservationsController) ClubReservations(c *gin.Context) {
	clubID, err := uuid.Parse(c.Param("clubId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid club id")
		return
	}

	requesterID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrNotAllowed)
		return
	}

	summaries, err := r.reservationService.ListClubReservations(c.Request.Context(), clubID, requesterID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summaries, "")
}

// CancelReservation godoc
// @Summary Cancel a reservation
// @Description Only the booking user or the club owner may cancel
// @Tags Reservations
// @Produce json
// @Param id path string true "Reservation id"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /reservations/{id} [delete]
func (r *ReservationsController) CancelReservation(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	var requesterID *uuid.UUID
	if id, ok := middleware.CurrentUserID(c); ok {
		requesterID = &id
	}

	summary, err := r.reservationService.CancelReservation(c.Request.Context(), reservationID, requesterID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Reservation cancelled")
}

// AvailableSlots godoc
// @Summary List a club's hourly slots for a day
// @Tags Reservations
// @Produce json
// @Param clubId path string true "Club id"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /reservations/available-slots/{clubId} [get]
func (r *ReservationsController) AvailableSlots(c *gin.Context) {
	clubID, err := uuid.Parse(c.Param("clubId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid club id")
		return
	}

	date := c.Query("date")
	if date == "" {
		utils.RespondError(c, http.StatusBadRequest, "date query parameter is required")
		return
	}

	slots, err := r.reservationService.AvailableSlots(c.Request.Context(), clubID, date)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, slots, "")
}
