package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courtside/internal/models/request_models"
	"courtside/internal/models/response_models"
	"courtside/internal/services"
	"courtside/pkg/utils"
)

type AuthController struct {
	userService services.UserServiceInterface
}

func NewAuthController(userService services.UserServiceInterface) *AuthController {
	return &AuthController{
		userService: userService,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a user account and return an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AuthController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.userService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	a.setAuthCookie(c, resp)
	utils.RespondCreated(c, resp, "Account created successfully")
}

// Login godoc
// @Summary Login with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.userService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	a.setAuthCookie(c, resp)
	utils.RespondSuccess(c, resp, "Login successful")
}

// GoogleTokenExchange godoc
// @Summary Exchange a Google OAuth code for an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.GoogleTokenExchangeRequest true "OAuth code payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/google/token-exchange [post]
func (a *AuthController) GoogleTokenExchange(c *gin.Context) {
	var req request_models.GoogleTokenExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.userService.LoginWithGoogle(c.Request.Context(), req.Code)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	a.setAuthCookie(c, resp)
	utils.RespondSuccess(c, resp, "Login successful")
}

func (a *AuthController) setAuthCookie(c *gin.Context, resp *response_models.AuthResponse) {
	c.SetCookie("access_token", resp.AccessToken, int(utils.TokenTTL.Seconds()), "/", "", false, true)
}
