package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"courtside/internal/models/request_models"
	"courtside/internal/services"
	"courtside/pkg/middleware"
	"courtside/pkg/utils"
)

// allowedImageTypes lists the content types accepted by the upload
// endpoint.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type ClubsController struct {
	clubService services.ClubServiceInterface
}

func NewClubsController(clubService services.ClubServiceInterface) *ClubsController {
	return &ClubsController{
		clubService: clubService,
	}
}

// CreateClub godoc
// @Summary Create a club
// @Description Create a club owned by the authenticated user
// @Tags Clubs
// @Accept json
// @Produce json
// @Param request body request_models.CreateClubRequest true "Club payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /clubs [post]
func (cc *ClubsController) CreateClub(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrAuthRequired)
		return
	}

	var req request_models.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	club, err := cc.clubService.CreateClub(c.Request.Context(), req, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, club, "Club created successfully")
}

// SearchClubs godoc
// @Summary List clubs
// @Description List clubs filtered by name, town and hourly price bounds
// @Tags Clubs
// @Produce json
// @Param name query string false "Name filter"
// @Param town query string false "Town filter"
// @Param min_price query number false "Minimum hourly price"
// @Param max_price query number false "Maximum hourly price"
// @Success 200 {object} utils.APIResponse
// @Router /clubs [get]
func (cc *ClubsController) SearchClubs(c *gin.Context) {
	filter := request_models.ClubSearchFilter{
		Name: c.Query("name"),
		Town: c.Query("town"),
	}
	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid min_price")
			return
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid max_price")
			return
		}
		filter.MaxPrice = &v
	}

	clubs, err := cc.clubService.SearchClubs(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, clubs, "")
}

// MyClubs godoc
// @Summary List the authenticated user's clubs
// @Tags Clubs
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /clubs/my-clubs [get]
func (cc *ClubsController) MyClubs(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrAuthRequired)
		return
	}

	clubs, err := cc.clubService.GetClubsByOwner(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, clubs, "")
}

// ClubsByOwner godoc
// @Summary List clubs owned by a user
// @Tags Clubs
// @Produce json
// @Param ownerId path string true "Owner id"
// @Success 200 {object} utils.APIResponse
// @Router /clubs/owner/{ownerId} [get]
func (cc *ClubsController) ClubsByOwner(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Param("ownerId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid owner id")
		return
	}

	clubs, err := cc.clubService.GetClubsByOwner(c.Request.Context(), ownerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, clubs, "")
}

// GetClub godoc
// @Summary Get a club by id
// @Tags Clubs
// @Produce json
// @Param id path string true "Club id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /clubs/{id} [get]
func (cc *ClubsController) GetClub(c *gin.Context) {
	clubID, err := cc.clubID(c)
	if err != nil {
		return
	}

	club, err := cc.clubService.GetClub(c.Request.Context(), clubID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, club, "")
}

// GetClubDetails godoc
// @Summary Get a club with aggregated rating and activity counts
// @Tags Clubs
// @Produce json
// @Param id path string true "Club id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /clubs/{id}/details [get]
func (cc *ClubsController) GetClubDetails(c *gin.Context) {
	clubID, err := cc.clubID(c)
	if err != nil {
		return
	}

	details, err := cc.clubService.GetClubDetails(c.Request.Context(), clubID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, details, "")
}

// UpdateClub godoc
// @Summary Update a club
// @Description Update club fields; only the owner may update
// @Tags Clubs
// @Accept json
// @Produce json
// @Param id path string true "Club id"
// @Param request body request_models.UpdateClubRequest true "Update payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /clubs/{id} [put]
func (cc *ClubsController) UpdateClub(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrAuthRequired)
		return
	}
	clubID, err := cc.clubID(c)
	if err != nil {
		return
	}

	var req request_models.UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	club, err := cc.clubService.UpdateClub(c.Request.Context(), clubID, req, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, club, "Club updated successfully")
}

// AddPicture godoc
// @Summary Attach a picture URL to a club
// @Tags Clubs
// @Accept json
// @Produce json
// @Param id path string true "Club id"
// @Param request body request_models.AddPictureRequest true "Picture payload"
// @Success 200 {object} utils.APIResponse
// @Router /clubs/{id}/pictures [post]
func (cc *ClubsController) AddPicture(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrAuthRequired)
		return
	}
	clubID, err := cc.clubID(c)
	if err != nil {
		return
	}

	var req request_models.AddPictureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	club, err := cc.clubService.AddPicture(c.Request.Context(), clubID, req.PictureURL, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, club, "Picture added successfully")
}

// RemovePicture godoc
// @Summary Remove a picture URL from a club
// @Tags Clubs
// @Produce json
// @Param id path string true "Club id"
// @Param picture_url query string true "Picture URL to remove"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /clubs/{id}/pictures [delete]
func (cc *ClubsController) RemovePicture(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrAuthRequired)
		return
	}
	clubID, err := cc.clubID(c)
	if err != nil {
		return
	}

	pictureURL := c.Query("picture_url")
	if pictureURL == "" {
		utils.RespondError(c, http.StatusBadRequest, "picture_url query parameter is required")
		return
	}

	club, err := cc.clubService.RemovePicture(c.Request.Context(), clubID, pictureURL, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, club, "Picture removed successfully")
}

// UploadPicture godoc
// @Summary Upload a club picture
// @Description Store an image file and attach its URL to the club
// @Tags Clubs
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Club id"
// @Param file formData file true "Image file"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /clubs/{id}/upload [post]
func (cc *ClubsController) UploadPicture(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrAuthRequired)
		return
	}
	clubID, err := cc.clubID(c)
	if err != nil {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Image file is required")
		return
	}
	if !allowedImageTypes[file.Header.Get("Content-Type")] {
		utils.RespondError(c, http.StatusBadRequest, "Only JPEG, PNG, GIF and WebP images are allowed")
		return
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		utils.Logger.Error("failed to create upload directory", zap.Error(err))
		utils.RespondError(c, http.StatusInternalServerError, "Failed to store file")
		return
	}

	filename := fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
		utils.Logger.Error("failed to save uploaded file", zap.Error(err))
		utils.RespondError(c, http.StatusInternalServerError, "Failed to store file")
		return
	}

	pictureURL := "/uploads/" + filename
	club, err := cc.clubService.AddPicture(c.Request.Context(), clubID, pictureURL, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"club": club, "picture_url": pictureURL}, "Picture uploaded successfully")
}

func (cc *ClubsController) clubID(c *gin.Context) (uuid.UUID, error) {
	clubID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid club id")
		return uuid.Nil, err
	}
	return clubID, nil
}
