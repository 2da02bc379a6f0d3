package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// statusFor maps service sentinel errors to HTTP status codes. Anything
// unmapped is treated as an internal error.
var statusFor = map[error]int{
	ErrUserNotFound:          http.StatusNotFound,
	ErrClubNotFound:          http.StatusNotFound,
	ErrPictureNotFound:       http.StatusNotFound,
	ErrParentCommentNotFound: http.StatusNotFound,
	ErrReservationNotFound:   http.StatusNotFound,

	ErrEmailAlreadyExists:   http.StatusBadRequest,
	ErrUsernameAlreadyTaken: http.StatusBadRequest,
	ErrInvalidUsername:      http.StatusBadRequest,
	ErrOwnClubReview:        http.StatusBadRequest,
	ErrInvalidRating:        http.StatusBadRequest,
	ErrSlotConflict:         http.StatusBadRequest,
	ErrGuestNameRequired:    http.StatusBadRequest,
	ErrGuestCardOnly:        http.StatusBadRequest,
	ErrInvalidTimeFormat:    http.StatusBadRequest,
	ErrInvalidDuration:      http.StatusBadRequest,
	ErrPastDate:             http.StatusBadRequest,

	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrAuthRequired:       http.StatusUnauthorized,

	ErrNotClubOwner: http.StatusForbidden,
	ErrNotAllowed:   http.StatusForbidden,
}

func HandleServiceError(c *gin.Context, err error) {
	for sentinel, code := range statusFor {
		if errors.Is(err, sentinel) {
			RespondError(c, code, sentinel.Error())
			return
		}
	}

	ErrorCount.WithLabelValues(c.FullPath(), "internal").Inc()
	Logger.Error("unhandled service error",
		zap.String("trace_id", c.GetString("trace_id")),
		zap.Error(err))
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}
