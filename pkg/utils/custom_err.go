package utils

import "errors"

var (
	ErrDatabaseError = errors.New("database error")

	ErrUserNotFound         = errors.New("user not found")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrUsernameAlreadyTaken = errors.New("username already taken")
	ErrInvalidUsername      = errors.New("username must contain only letters, numbers, underscores, and hyphens")
	ErrInvalidCredentials   = errors.New("incorrect email or password")
	ErrAuthRequired         = errors.New("authentication required")

	ErrClubNotFound    = errors.New("club not found")
	ErrNotClubOwner    = errors.New("only the club owner can perform this action")
	ErrPictureNotFound = errors.New("picture not found")

	ErrOwnClubReview         = errors.New("club owners cannot review their own clubs")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
	ErrParentCommentNotFound = errors.New("parent comment not found")

	ErrReservationNotFound = errors.New("reservation not found")
	ErrSlotConflict        = errors.New("the requested time slot is already booked")
	ErrGuestNameRequired   = errors.New("guest name is required for non-logged-in users")
	ErrGuestCardOnly       = errors.New("only card payment is allowed for non-logged-in users")
	ErrInvalidTimeFormat   = errors.New("invalid date or time format")
	ErrInvalidDuration     = errors.New("duration must be greater than zero")
	ErrPastDate            = errors.New("cannot book time slots in the past")
	ErrNotAllowed          = errors.New("you don't have permission to perform this action")
)
